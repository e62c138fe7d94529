package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the user's default render settings, loaded from the optional
// config file. Flags always win over the file; the file wins over the
// built-in defaults.
//
// Example config.toml:
//
//	fields = ["form", "upos", "head", "deprel"]
//	meta = ["sent_id", "text"]
//	color = "black"
type Config struct {
	Fields []string `toml:"fields"`
	Meta   []string `toml:"meta"`
	Color  string   `toml:"color"`
}

// LoadConfig reads the TOML config file at path. A missing file is not an
// error; a file that fails to decode is, so the user learns their defaults
// are not being applied.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}
