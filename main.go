package main

import (
	"github.com/fairwaylabs/swinglab/internal/config"
	"github.com/fairwaylabs/swinglab/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
