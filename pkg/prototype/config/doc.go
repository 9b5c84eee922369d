/*
Package config reads registrar settings and seed templates from YAML or
JSON.

# Overview

A Config wraps a decoded map[string]any and offers typed accessors that
fall back to a default when a key is missing or has the wrong type:

	cfg, err := config.FromFile("prototypes.yaml")
	if err != nil {
	    log.Fatal(err)
	}

	name := cfg.String("name", "default")
	level := cfg.LogLevel("log_level", slog.LevelInfo)
	templates := cfg.Map("templates")

A typical file:

	name: shapes
	log_level: debug
	metrics: true
	tracing: false
	templates:
	  circle:
	    radius: 10
	    tags: [round]

Load overlays several files in order, later keys replacing earlier ones:

	cfg, err := config.Load("base.yaml", "local.json")

Templates are plain decoded data (maps, slices, scalars). Registering them
is the job of registry.FromConfig.

# Thread Safety

Config is safe for concurrent reads. The underlying map is never modified
after creation.
*/
package config
