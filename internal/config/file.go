package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors config.toml. Pointer fields distinguish "unset" from
// zero values so the file only overrides what it names.
type fileConfig struct {
	NvmDir     *string `toml:"nvm_dir"`
	Socket     *string `toml:"socket"`
	Executable *string `toml:"executable"`
	Sort       *bool   `toml:"sort"`
	NoEnter    *bool   `toml:"no_enter"`
	Trace      *bool   `toml:"trace"`
	LogFile    *string `toml:"log_file"`
}

// loadFile decodes path. A missing file is only an error when the user named
// it explicitly.
func loadFile(path string, explicit bool) (fileConfig, error) {
	var cfg fileConfig
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fileConfig{}, fmt.Errorf("load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}
