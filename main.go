package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/leonelquinteros/gotext"

	"wanderer/pkg/game/config"
	"wanderer/pkg/game/content"
	"wanderer/pkg/game/gameplay"
	"wanderer/pkg/game/renderer"
	ebitenrenderer "wanderer/pkg/game/renderer/ebiten"
	"wanderer/pkg/game/renderer/tui"
)

func initGotext() {
	gotext.Configure("po", "en_US.utf8", "default")
}

func main() {
	rendererName := flag.String("renderer", "ebiten", "display backend: ebiten or tui")
	dataDir := flag.String("data", "data", "directory holding rooms.csv and items.csv")
	configPath := flag.String("config", "", "optional YAML config file overriding defaults")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	flag.Parse()

	initGotext()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	catalog := content.LoadCatalog(*dataDir)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	session := gameplay.NewSession(cfg, catalog, rng)

	switch *rendererName {
	case "ebiten":
		renderer.SetRenderer(ebitenrenderer.New())
	case "tui":
		renderer.SetRenderer(tui.New())
	default:
		log.Fatalf("Unknown renderer %q (want ebiten or tui)", *rendererName)
	}

	if err := renderer.Current.Init(); err != nil {
		log.Fatalf("Cannot initialize renderer: %v", err)
	}
	if err := renderer.Current.Run(session); err != nil {
		log.Fatalf("Renderer failed: %v", err)
	}
}
