// Package inspire talks to an optional inspiration service that suggests
// short painting prompts and matching reference images. It is a pure
// request/response collaborator: it never touches simulation state, and
// every failure mode degrades to a canned prompt or an absent image rather
// than an error.
package inspire

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"time"

	"github.com/disintegration/imaging"

	"github.com/Fandry96/AquaFlow/pkg/core"
)

// Environment variables consulted by NewFromEnv.
const (
	EnvAPIKey  = "AQUAFLOW_API_KEY"
	EnvBaseURL = "AQUAFLOW_INSPIRE_URL"
)

const defaultBaseURL = "https://inspire.aquaflow.dev"

// fallbackPrompts are served whenever the service is unconfigured or
// unreachable.
var fallbackPrompts = []string{
	"a harbor at dusk, masts dissolving into mist",
	"wet stones in a mountain stream",
	"late summer wildflowers leaning into the wind",
	"rooftops after rain, low sun",
	"a single pear on a linen cloth",
	"birches at the edge of a thaw",
	"distant hills under a bruised sky",
	"tide pools holding the last light",
}

// Result is one inspiration fetch. Image is nil when the service produced
// none; Prompt is always non-empty.
type Result struct {
	Prompt string
	Image  image.Image
}

// Client fetches inspiration prompts and images. The zero key disables the
// network entirely.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	rng        *core.RNG
}

// New constructs a client. An empty apiKey yields a client that only serves
// fallbacks; an empty baseURL selects the default endpoint.
func New(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		apiKey:     apiKey,
		baseURL:    baseURL,
		rng:        core.NewRNG(time.Now().UnixNano()),
	}
}

// NewFromEnv constructs a client from AQUAFLOW_API_KEY and
// AQUAFLOW_INSPIRE_URL. A missing key is not an error; it selects fallback
// behavior.
func NewFromEnv() *Client {
	return New(os.Getenv(EnvAPIKey), os.Getenv(EnvBaseURL))
}

// Prompt returns a short painting prompt. On any failure, including a
// missing credential, a canned prompt is returned instead.
func (c *Client) Prompt(ctx context.Context) string {
	if c.apiKey == "" {
		return c.fallbackPrompt()
	}
	var out struct {
		Prompt string `json:"prompt"`
	}
	if err := c.postJSON(ctx, "/v1/prompt", map[string]any{}, &out); err != nil || out.Prompt == "" {
		return c.fallbackPrompt()
	}
	return out.Prompt
}

// Image returns a reference image for the prompt, fitted inside
// maxW*maxH, or nil when the service is unconfigured, fails, or declines.
func (c *Client) Image(ctx context.Context, prompt string, maxW, maxH int) image.Image {
	if c.apiKey == "" || prompt == "" {
		return nil
	}
	var out struct {
		Image string `json:"image"`
	}
	if err := c.postJSON(ctx, "/v1/image", map[string]any{"prompt": prompt}, &out); err != nil || out.Image == "" {
		return nil
	}
	raw, err := base64.StdEncoding.DecodeString(out.Image)
	if err != nil {
		return nil
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil
	}
	if maxW > 0 && maxH > 0 {
		img = imaging.Fit(img, maxW, maxH, imaging.Lanczos)
	}
	return img
}

// Fetch obtains a prompt and, when possible, a matching image sized for the
// panel. It never fails.
func (c *Client) Fetch(ctx context.Context, maxW, maxH int) Result {
	prompt := c.Prompt(ctx)
	return Result{Prompt: prompt, Image: c.Image(ctx, prompt, maxW, maxH)}
}

func (c *Client) fallbackPrompt() string {
	return fallbackPrompts[c.rng.IntN(len(fallbackPrompts))]
}

func (c *Client) postJSON(ctx context.Context, path string, in any, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("inspire service: status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
