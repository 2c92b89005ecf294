package main

import (
	"flag"
	"fmt"

	"modelviewer/internal/env"
	"modelviewer/internal/events"
	"modelviewer/internal/logger"
	"modelviewer/internal/prefs"
	"modelviewer/internal/render"
	"modelviewer/internal/settings"
	"modelviewer/internal/viewer"
)

func main() {
	modelPath := flag.String("model", "", "model file to open on startup (.obj, .gltf, .glb, .iqm, .m3d, .vox)")
	primitive := flag.String("primitive", "", "open a generated primitive instead of a file (cube, sphere, cylinder, cone, torus, knot, plane)")
	settingsPath := flag.String("settings", settings.Path, "settings file")
	restore := flag.Bool("restore", true, "reopen the model from the previous session when no -model is given")
	flag.Parse()

	log := logger.New()
	if err := env.Load(".env"); err != nil {
		log.Logf("env: %v", err)
	}

	cfg, err := settings.Load(*settingsPath)
	if err != nil {
		log.Logf("settings: %v (using defaults)", err)
		cfg = settings.Default()
	}
	cfg.FieldOfView = env.Float32("MODELVIEWER_FOV", cfg.FieldOfView)
	cfg.Movement = env.Float32("MODELVIEWER_MOVEMENT", cfg.Movement)

	pf := prefs.Load()

	bus := events.NewBus()
	bus.Subscribe(func(e events.Event) {
		line := e.Type.String()
		if e.Path != "" {
			line += " " + e.Path
		}
		if e.Message != "" {
			line += ": " + e.Message
		}
		log.Log(line)
	})

	v := viewer.New(cfg, pf, log, bus)
	switch {
	case *primitive != "":
		v.SetStartModel("primitive:" + *primitive)
	case *modelPath != "":
		v.SetStartModel(*modelPath)
	case *restore && pf.LastModel != "":
		v.SetStartModel(pf.LastModel)
	}

	title := env.String("MODELVIEWER_TITLE", "Model Viewer")
	render.Run(title, render.DefaultWidth, render.DefaultHeight, v.Update, v.Draw)
	v.Close()

	fmt.Println("log written to", logger.LogFilePath)
}
