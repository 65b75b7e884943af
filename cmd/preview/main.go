// Command preview renders a single creature to a WebP image. With -watch
// it keeps running and re-renders whenever the definition file changes.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"creature-forge/internal/camera"
	"creature-forge/internal/config"
	"creature-forge/internal/creature"
	"creature-forge/internal/logging"
	"creature-forge/internal/mathutil"
	"creature-forge/internal/pose"
	"creature-forge/internal/postprocess"
	"creature-forge/internal/raster"
	"creature-forge/internal/rig"
	"creature-forge/internal/texture"

	"github.com/HugoSmits86/nativewebp"
	"github.com/fsnotify/fsnotify"
)

func main() {
	configPath := flag.String("config", "", "JSON config file")
	defPath := flag.String("def", "", "species definition JSON (default: built-in elephant)")
	texPath := flag.String("texture", "", "skin texture image (default: procedural hide)")
	out := flag.String("out", "preview.webp", "output image path")
	size := flag.Int("size", 0, "output image size in pixels")
	seed := flag.Uint64("seed", 1, "shape variance seed")
	gait := flag.String("gait", "rest", "pose: rest, idle, walk, curious")
	phase := flag.Float64("phase", 0, "gait phase/time in radians or seconds")
	watch := flag.Bool("watch", false, "re-render when the definition file changes")
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
		Size:       *size,
	})

	render := func() error {
		return renderOnce(cfg, *out, *seed, *gait, *phase)
	}

	if err := render(); err != nil {
		logging.Fatal("render", "err", err)
	}
	logging.Info("wrote preview", "path", *out)

	if !*watch || cfg.DefinitionPath == "" {
		return
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logging.Fatal("watch", "err", err)
	}
	defer watcher.Close()
	// Watch the directory: editors often replace files on save, which
	// drops a watch held on the file itself.
	if err := watcher.Add(filepath.Dir(cfg.DefinitionPath)); err != nil {
		logging.Fatal("watch", "err", err)
	}
	logging.Info("watching", "path", cfg.DefinitionPath)

	var pending <-chan time.Time
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if ev.Name != cfg.DefinitionPath {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				// Debounce editor save bursts.
				pending = time.After(150 * time.Millisecond)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logging.Error("watch", "err", err)
		case <-pending:
			pending = nil
			if err := render(); err != nil {
				logging.Error("render", "err", err)
				continue
			}
			logging.Info("re-rendered", "path", *out)
		}
	}
}

func renderOnce(cfg config.Config, out string, seed uint64, gait string, phase float64) error {
	def := creature.Elephant()
	if cfg.DefinitionPath != "" {
		var err error
		def, err = creature.LoadDefinition(cfg.DefinitionPath)
		if err != nil {
			return err
		}
	}

	var rotations rig.Rotations
	switch gait {
	case "rest":
	case "idle":
		rotations = pose.Idle(phase)
	case "walk":
		rotations = pose.Walk(phase)
	case "curious":
		rotations = pose.Curious(phase)
	default:
		return fmt.Errorf("unknown gait %q", gait)
	}

	built, err := creature.Assemble(def, creature.AssembleOptions{
		Seed:      seed,
		Rotations: rotations,
	})
	if err != nil {
		return err
	}

	var tex *image.NRGBA
	if cfg.TexturePath != "" {
		tex, err = texture.Load(cfg.TexturePath)
		if err != nil {
			return err
		}
	} else {
		tex = texture.GenerateSkin(texture.DefaultSkin(), seed)
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

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	return nativewebp.Encode(f, img, nil)
}
