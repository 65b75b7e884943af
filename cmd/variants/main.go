// Command variants renders a batch of seeded creature variants and
// writes a manifest.json describing the run.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"creature-forge/internal/batch"
	"creature-forge/internal/config"
	"creature-forge/internal/creature"
	"creature-forge/internal/logging"
	"creature-forge/internal/texture"
)

func main() {
	configPath := flag.String("config", "", "JSON config file")
	defPath := flag.String("def", "", "species definition JSON (default: built-in elephant)")
	texPath := flag.String("texture", "", "shared skin texture (default: per-variant procedural hide)")
	outDir := flag.String("out", "", "output directory")
	count := flag.Int("n", 0, "number of variants")
	size := flag.Int("size", 0, "output image size in pixels")
	quality := flag.Int("quality", 0, "webp quality")
	workers := flag.Int("workers", 0, "parallel workers")
	seed := flag.Uint64("seed", 0, "base seed, variant i uses seed+i")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	logging.SetVerbose(*verbose)

	cfg := config.Config{}
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			logging.Fatal("load config", "err", err)
		}
	}
	cfg.Resolve(config.Flags{
		Definition: *defPath,
		Texture:    *texPath,
		OutputDir:  *outDir,
		Size:       *size,
		Quality:    *quality,
		Workers:    *workers,
		Seed:       *seed,
		Variants:   *count,
	})

	def := creature.Elephant()
	if cfg.DefinitionPath != "" {
		var err error
		def, err = creature.LoadDefinition(cfg.DefinitionPath)
		if err != nil {
			logging.Fatal("load definition", "err", err)
		}
	}

	bcfg := batch.Config{
		Definition:  def,
		OutputDir:   cfg.OutputDir,
		RenderSize:  cfg.RenderSize,
		WebPQuality: cfg.WebPQuality,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		CameraYaw:   cfg.CameraYaw,
		CameraPitch: cfg.CameraPitch,
	}
	if cfg.TexturePath != "" {
		tex, err := texture.Load(cfg.TexturePath)
		if err != nil {
			logging.Fatal("load texture", "err", err)
		}
		bcfg.Texture = tex
	}

	jobs := make([]batch.Job, cfg.Variants)
	for i := range jobs {
		jobs[i] = batch.Job{
			Seed: cfg.Seed + uint64(i),
			Name: fmt.Sprintf("%s_%03d", def.Name, i),
		}
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		logging.Fatal("output dir", "err", err)
	}

	logging.Info("rendering variants", "species", def.Name, "count", len(jobs), "workers", bcfg.Workers)
	start := time.Now()
	results := batch.Run(bcfg, jobs)

	ok, failed := 0, 0
	for _, r := range results {
		if r.Success {
			ok++
		} else {
			failed++
			logging.Error("variant failed", "name", r.Name, "err", r.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, def.Name, cfg.RenderSize, results); err != nil {
		logging.Fatal("write manifest", "err", err)
	}

	logging.Info("done", "ok", ok, "failed", failed, "elapsed", time.Since(start).Round(time.Millisecond))
	if failed > 0 {
		os.Exit(1)
	}
}
