package main

import (
	"os"

	"github.com/elvispeter1991/flikha-demo/internal/config"
	"github.com/elvispeter1991/flikha-demo/internal/env"
	"github.com/elvispeter1991/flikha-demo/internal/graphics"
	"github.com/elvispeter1991/flikha-demo/internal/lobby"
	"github.com/elvispeter1991/flikha-demo/internal/logger"
)

func main() {
	_ = env.Load(".env")

	log := logger.New()

	path := config.DefaultPath
	if p := os.Getenv("LOBBY_CONFIG"); p != "" {
		path = p
	}
	cfg, _ := config.Load(path)
	cfg = cfg.WithEnvOverrides()

	lby := lobby.New(cfg, log)
	// Post-fade map view is not built yet; leave a trace instead.
	lby.SetOnHidden(func() {
		log.Log("panel hidden: map view not implemented")
	})

	loop := graphics.New("Flikha", cfg.WindowWidth, cfg.WindowHeight)
	loop.Run(lby.Update, lby.Draw)
	lby.Teardown()
}
