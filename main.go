package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/rfield/go-starspot-raytracer/internal/config"
	"github.com/rfield/go-starspot-raytracer/internal/logger"
	"github.com/rfield/go-starspot-raytracer/pkg/geometry"
	mathpkg "github.com/rfield/go-starspot-raytracer/pkg/math"
	"github.com/rfield/go-starspot-raytracer/pkg/renderer"
	"github.com/rfield/go-starspot-raytracer/pkg/scene"
	"github.com/rfield/go-starspot-raytracer/pkg/viz"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML scene configuration")
	sceneName := flag.String("scene", "", "Built-in scene: 'spotted' or 'binary' (overrides config)")
	array := flag.String("array", "", "Grid to render: flux, mu, t or all (overrides config)")
	outDir := flag.String("out", "", "Output directory (overrides config)")
	format := flag.String("format", "", "Image format: png or bmp (overrides config)")
	resolution := flag.Int("res", 0, "Scene pixel resolution (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg, *sceneName, *array, *outDir, *format, *resolution)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()

	sc, err := buildScene(cfg)
	if err != nil {
		logger.Sugar.Fatalw("building scene", "error", err)
	}

	start := time.Now()
	sc.Trace()
	logger.Sugar.Infow("trace complete",
		"resolution", sc.Res,
		"bodies", len(sc.Bodies),
		"hits", sc.HitCount(),
		"elapsed", time.Since(start))

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		logger.Sugar.Fatalw("creating output directory", "error", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	for _, name := range cfg.Output.Arrays {
		img, err := viz.Render(sc, name)
		if err != nil {
			logger.Sugar.Fatalw("rendering array", "array", name, "error", err)
		}
		path := filepath.Join(cfg.Output.Dir,
			fmt.Sprintf("%s_%s.%s", name, timestamp, cfg.Output.Format))
		if err := writeImage(path, img, cfg.Output.Format); err != nil {
			logger.Sugar.Fatalw("writing image", "path", path, "error", err)
		}
		logger.Sugar.Infow("map saved", "array", name, "path", path)
	}
}

// applyFlags overlays the non-empty CLI flags onto the loaded config.
func applyFlags(cfg *config.Config, sceneName, array, outDir, format string, resolution int) {
	if sceneName != "" {
		cfg.Scene = sceneName
		cfg.Stars = nil
	}
	if array == "all" {
		cfg.Output.Arrays = viz.Arrays()
	} else if array != "" {
		cfg.Output.Arrays = []string{array}
	}
	if outDir != "" {
		cfg.Output.Dir = outDir
	}
	if format != "" {
		cfg.Output.Format = format
	}
	if resolution > 0 {
		cfg.Resolution = resolution
	}
}

// buildScene assembles the traced scene from the config: explicit stars
// when listed, otherwise one of the built-in scenes by name.
func buildScene(cfg *config.Config) (*renderer.Scene, error) {
	if len(cfg.Stars) == 0 {
		switch cfg.Scene {
		case "spotted":
			return scene.NewSpottedStarScene(cfg.Resolution)
		case "binary":
			return scene.NewBinaryScene(cfg.Resolution)
		default:
			return nil, fmt.Errorf("unknown scene %q (available: spotted, binary)", cfg.Scene)
		}
	}

	sc := renderer.NewScene(cfg.Resolution)
	for i, sb := range cfg.Stars {
		star, err := geometry.NewStar(
			mathpkg.NewVec3(sb.Center[0], sb.Center[1], sb.Center[2]),
			sb.Radius,
			mathpkg.NewVec3(sb.Axis[0], sb.Axis[1], sb.Axis[2]),
			sb.Resolution,
		)
		if err != nil {
			return nil, fmt.Errorf("star %d: %w", i, err)
		}
		star.U1 = sb.U1
		star.U2 = sb.U2
		for _, sp := range sb.Spots {
			star.AddSpots(geometry.NewSpot(sp.Lat, sp.Lon, sp.Radius, sp.Contrast))
		}
		scene.InitSurface(star)
		if sb.Inclination != nil {
			star.SetInclination(*sb.Inclination)
		}
		if sb.Meridian != nil {
			star.SetMeridian(*sb.Meridian)
		}
		sc.Add(star)
	}
	return sc, nil
}

func writeImage(path string, img image.Image, format string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return viz.Encode(file, img, format)
}
