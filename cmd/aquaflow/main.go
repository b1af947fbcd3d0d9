//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Fandry96/AquaFlow/internal/app"
	"github.com/Fandry96/AquaFlow/internal/paint"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg := paint.DefaultConfig()
	if cfg.ConfigPath != "" {
		loaded, err := paint.LoadConfig(cfg.ConfigPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		simCfg = loaded
	}
	simCfg.Seed = cfg.Seed

	canvas := paint.NewCanvas(simCfg)
	game := app.New(canvas, cfg)
	size := canvas.Size()

	ebiten.SetWindowTitle("aquaflow")
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.PanelWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
