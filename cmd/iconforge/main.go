// Command iconforge renders the app icon variants, the Android launcher
// density ladder, and the store artwork into an output directory.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/iconforge/iconforge"
	"github.com/iconforge/iconforge/export"
	"github.com/iconforge/iconforge/recipes"
	"github.com/iconforge/iconforge/text"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file (optional)")
		outDir     = flag.String("out", "", "output directory (overrides config)")
		variant    = flag.String("variant", "", "render a single variant instead of all configured")
		title      = flag.String("title", "", "title text for text-bearing variants (overrides config)")
		verbose    = flag.Bool("verbose", false, "log renderer internals")
	)
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if *verbose {
		iconforge.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if *outDir != "" {
		cfg.Out = *outDir
	}
	if *title != "" {
		cfg.Title = *title
	}
	if *variant != "" {
		cfg.Variants = []string{*variant}
	}

	failed := run(log, cfg)
	if failed > 0 {
		log.Error().Int("failed", failed).Msg("batch finished with failures")
		os.Exit(1)
	}
	log.Info().Msg("batch complete")
}

// run renders every configured variant and the store artwork, returning
// the number of outputs that failed. A failed output never aborts the
// batch; the remaining renders still happen.
func run(log zerolog.Logger, cfg config) int {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		failed  int
		buckets = cfg.buckets()
	)
	fail := func() {
		mu.Lock()
		failed++
		mu.Unlock()
	}

	// Renders are pure, so variants can proceed in parallel.
	for _, name := range cfg.Variants {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			if err := renderVariant(log, cfg, name, buckets); err != nil {
				log.Error().Err(err).Str("variant", name).Msg("variant failed")
				fail()
			}
		}(name)
	}
	wg.Wait()

	// The banner reads a finished store icon back from disk, so it runs
	// after the variants settle.
	if err := renderBanner(log, cfg); err != nil {
		log.Error().Err(err).Msg("feature graphic failed")
		failed++
	}
	return failed
}

// renderVariant produces the master icon, the launcher density ladder
// and the 512px store icon for one variant.
func renderVariant(log zerolog.Logger, cfg config, name string, buckets []export.Bucket) error {
	rec, ok := recipes.Build(name, cfg.Title)
	if !ok {
		return fmt.Errorf("unknown variant %q (have %v)", name, recipes.Names())
	}

	canvas, err := iconforge.Render(rec, recipes.BaseSize, recipes.BaseSize)
	if err != nil {
		return err
	}
	master := canvas.Image()

	dir := filepath.Join(cfg.Out, name)
	if err := export.SavePNG(filepath.Join(dir, "app_icon.png"), master); err != nil {
		return err
	}

	for _, b := range buckets {
		resized := export.Resize(master, b.Size, b.Size)
		path := filepath.Join(dir, "res", "mipmap-"+b.Density, "ic_launcher.png")
		if err := export.SavePNG(path, resized); err != nil {
			return err
		}
		log.Info().Str("variant", name).Str("density", b.Density).Int("size", b.Size).Msg("launcher icon")
	}

	store := export.Resize(master, export.StoreIconSize, export.StoreIconSize)
	if err := export.SavePNG(filepath.Join(dir, "store", "app_icon_512.png"), store); err != nil {
		return err
	}
	log.Info().Str("variant", name).Msg("store icon")
	return nil
}

// renderBanner composes the 1024x500 feature graphic from the store
// icon of the configured banner variant.
func renderBanner(log zerolog.Logger, cfg config) error {
	iconPath := filepath.Join(cfg.Out, cfg.Banner.Variant, "store", "app_icon_512.png")
	icon, err := export.LoadPNG(iconPath)
	if err != nil {
		return err
	}

	banner := export.Banner{
		Title:    cfg.Banner.Title,
		Subtitle: cfg.Banner.Subtitle,
		Bullets:  cfg.Banner.Bullets,
	}
	if len(cfg.Fonts) > 0 {
		res := text.Resolve(cfg.Fonts...)
		for _, p := range res.Skipped {
			log.Warn().Str("path", p).Msg("font candidate skipped")
		}
		log.Info().Stringer("origin", res.Origin).Str("path", res.Path).Msg("banner font")
		banner.Source = res.Source
	}

	c, err := export.FeatureGraphic(icon, banner)
	if err != nil {
		return err
	}
	path := filepath.Join(cfg.Out, "store", "feature_graphic.png")
	if err := export.SavePNG(path, c.Image()); err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("feature graphic")
	return nil
}
