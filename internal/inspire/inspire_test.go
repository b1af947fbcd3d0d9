package inspire

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
)

func containsPrompt(s string) bool {
	for _, p := range fallbackPrompts {
		if p == s {
			return true
		}
	}
	return false
}

func TestPromptWithoutCredentialFallsBack(t *testing.T) {
	c := New("", "")
	got := c.Prompt(context.Background())
	if !containsPrompt(got) {
		t.Fatalf("expected a canned prompt, got %q", got)
	}
}

func TestPromptFromService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/prompt" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected auth header %q", got)
		}
		json.NewEncoder(w).Encode(map[string]string{"prompt": "storm light over dunes"})
	}))
	defer srv.Close()

	c := New("test-key", srv.URL)
	if got := c.Prompt(context.Background()); got != "storm light over dunes" {
		t.Fatalf("prompt = %q", got)
	}
}

func TestPromptServiceFailureFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New("test-key", srv.URL)
	if got := c.Prompt(context.Background()); !containsPrompt(got) {
		t.Fatalf("expected a canned prompt on server error, got %q", got)
	}
}

func TestPromptEmptyResponseFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"prompt": ""})
	}))
	defer srv.Close()

	c := New("test-key", srv.URL)
	if got := c.Prompt(context.Background()); !containsPrompt(got) {
		t.Fatalf("expected a canned prompt on empty response, got %q", got)
	}
}

func encodeTestImage(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < w*h; i++ {
		img.Set(i%w, i/w, color.RGBA{R: 200, G: 100, B: 50, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestImageDecodedAndFitted(t *testing.T) {
	payload := encodeTestImage(t, 400, 200)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/image" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var in struct {
			Prompt string `json:"prompt"`
		}
		json.NewDecoder(r.Body).Decode(&in)
		if in.Prompt != "dunes" {
			t.Fatalf("prompt not forwarded, got %q", in.Prompt)
		}
		json.NewEncoder(w).Encode(map[string]string{"image": payload})
	}))
	defer srv.Close()

	c := New("test-key", srv.URL)
	img := c.Image(context.Background(), "dunes", 100, 100)
	if img == nil {
		t.Fatal("expected an image")
	}
	bounds := img.Bounds()
	if bounds.Dx() > 100 || bounds.Dy() > 100 {
		t.Fatalf("image not fitted: %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestImageAbsenceSignals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"image": ""})
	}))
	defer srv.Close()

	tests := []struct {
		name   string
		client *Client
		prompt string
	}{
		{"no credential", New("", srv.URL), "dunes"},
		{"empty prompt", New("test-key", srv.URL), ""},
		{"service declines", New("test-key", srv.URL), "dunes"},
	}
	for _, tt := range tests {
		if img := tt.client.Image(context.Background(), tt.prompt, 100, 100); img != nil {
			t.Fatalf("%s: expected nil image", tt.name)
		}
	}
}

func TestImageGarbagePayloadIsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"image": "!!not-base64!!"})
	}))
	defer srv.Close()

	c := New("test-key", srv.URL)
	if img := c.Image(context.Background(), "dunes", 100, 100); img != nil {
		t.Fatal("undecodable payload must resolve to an absent image")
	}
}

func TestFetchNeverFails(t *testing.T) {
	c := New("test-key", "http://127.0.0.1:1") // nothing listens here
	res := c.Fetch(context.Background(), 100, 100)
	if res.Prompt == "" {
		t.Fatal("Fetch must always produce a prompt")
	}
	if res.Image != nil {
		t.Fatal("an unreachable service must yield an absent image")
	}
}
