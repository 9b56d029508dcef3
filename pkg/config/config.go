// Package config loads snipforge settings: built-in defaults merged with an
// optional snipforge.toml next to the user's snippet files. The variables
// table feeds trigger substitution; display and export settings drive the
// CLI surfaces.
package config

import (
	"os"
	"path/filepath"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/snipforge/snipforge/pkg/errors"
)

// Config is the effective snipforge configuration.
type Config struct {
	Variables map[string]string `koanf:"variables"`
	Display   DisplayConfig     `koanf:"display"`
	Export    ExportConfig      `koanf:"export"`
}

// DisplayConfig controls CLI rendering.
type DisplayConfig struct {
	// Color is "auto", "always" or "never".
	Color string `koanf:"color"`
	// ShowExclusions includes excluded environments in listings.
	ShowExclusions bool `koanf:"show_exclusions"`
}

// ExportConfig controls the default export format.
type ExportConfig struct {
	// Format is "json", "yaml" or "textmate".
	Format string `koanf:"format"`
}

// ConfigFileNames are tried in order inside the working directory.
var ConfigFileNames = []string{".snipforge.toml", "snipforge.toml"}

// Load merges the embedded defaults with the first config file found in
// dir (empty dir skips the file lookup) and unmarshals the result.
func Load(dir string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse,
			"failed to parse embedded defaults")
	}

	if dir != "" {
		if path := findConfigFile(dir); path != "" {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad,
					"failed to load config from %s", path)
			}
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			Squash:           true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse,
			"failed to unmarshal config")
	}

	return &cfg, nil
}

func findConfigFile(dir string) string {
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
