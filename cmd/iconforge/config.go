package main

import (
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/iconforge/iconforge/export"
	"github.com/iconforge/iconforge/recipes"
)

// config drives one batch run. Every field has a compiled-in default;
// a TOML file overrides only the fields it names.
type config struct {
	Out       string         `toml:"out"`
	Title     string         `toml:"title"`
	Variants  []string       `toml:"variants"`
	Fonts     []string       `toml:"fonts"`
	Densities map[string]int `toml:"densities"`
	Banner    bannerConfig   `toml:"banner"`
}

// bannerConfig selects which variant's icon appears on the feature
// graphic and what text runs beside it.
type bannerConfig struct {
	Variant  string   `toml:"variant"`
	Title    string   `toml:"title"`
	Subtitle string   `toml:"subtitle"`
	Bullets  []string `toml:"bullets"`
}

func defaultConfig() config {
	return config{
		Out:      "dist",
		Title:    recipes.DefaultTitle,
		Variants: recipes.Names(),
		Banner: bannerConfig{
			Variant:  "classic",
			Title:    recipes.DefaultTitle,
			Subtitle: "Secure File Sharing",
			Bullets: []string{
				"End-to-end encryption",
				"Secure temporary URLs",
				"PIN-protected access",
			},
		},
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %q", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %q", path)
	}
	return cfg, nil
}

// buckets returns the launcher density ladder with any config overrides
// applied, smallest size first.
func (c config) buckets() []export.Bucket {
	if len(c.Densities) == 0 {
		return export.LauncherBuckets
	}
	out := make([]export.Bucket, 0, len(c.Densities))
	for density, size := range c.Densities {
		out = append(out, export.Bucket{Density: density, Size: size})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Size < out[j].Size })
	return out
}
