// Package batch renders seeded creature variants in parallel and writes
// a manifest describing the run.
package batch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"creature-forge/internal/camera"
	"creature-forge/internal/creature"
	"creature-forge/internal/mathutil"
	"creature-forge/internal/postprocess"
	"creature-forge/internal/raster"
	"creature-forge/internal/texture"

	"github.com/HugoSmits86/nativewebp"
)

// Config holds all shared resources for a batch run.
type Config struct {
	Definition  creature.Definition
	OutputDir   string
	Texture     *image.NRGBA // nil renders each variant with its own procedural hide
	RenderSize  int
	WebPQuality int
	Supersample int
	Workers     int
	CameraYaw   float64 // degrees
	CameraPitch float64
}

// Job is one variant to render.
type Job struct {
	Seed uint64
	Name string // output file stem
}

// Result holds the outcome of rendering one variant.
type Result struct {
	Name    string
	Seed    uint64
	Success bool
	Error   string
}

// Run renders all jobs using a worker pool.
func Run(cfg Config, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f variants/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	jobChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = renderVariant(cfg, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func renderVariant(cfg Config, job Job) Result {
	fail := func(err error) Result {
		return Result{Name: job.Name, Seed: job.Seed, Error: err.Error()}
	}

	built, err := creature.Assemble(cfg.Definition, creature.AssembleOptions{Seed: job.Seed})
	if err != nil {
		return fail(err)
	}

	tex := cfg.Texture
	if tex == nil {
		tex = texture.GenerateSkin(texture.DefaultSkin(), job.Seed)
	}

	img := raster.Render(built.Mesh, nil, tex, raster.Options{
		Size:        cfg.RenderSize,
		Supersample: cfg.Supersample,
		Camera: camera.Orbit{
			Yaw:   mathutil.Deg2Rad(cfg.CameraYaw),
			Pitch: mathutil.Deg2Rad(cfg.CameraPitch),
		},
	})
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}

	outPath := filepath.Join(cfg.OutputDir, job.Name+".webp")
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fail(err)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fail(err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fail(fmt.Errorf("webp encode: %w", err))
	}

	return Result{Name: job.Name, Seed: job.Seed, Success: true}
}
