package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const configName = "relex.toml"

type config struct {
	Grammar struct {
		Path string `toml:"path"`
	} `toml:"grammar"`
	Parse struct {
		Debug bool `toml:"debug"`
	} `toml:"parse"`
}

// findConfig walks from the working directory towards the filesystem root
// looking for a relex.toml. Returns "" when there is none.
func findConfig() (string, error) {
	dir, e := os.Getwd()
	if e != nil {
		return "", e
	}

	for {
		p := filepath.Join(dir, configName)
		if _, e := os.Stat(p); e == nil {
			return p, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// loadConfig fills in defaults for settings not given on the command line.
// Relative paths in the file are taken relative to the file itself.
func loadConfig() error {
	path, e := findConfig()
	if e != nil || path == "" {
		return e
	}

	var cfg config
	if _, e = toml.DecodeFile(path, &cfg); e != nil {
		return e
	}

	if grammarPath == "" && cfg.Grammar.Path != "" {
		grammarPath = cfg.Grammar.Path
		if !filepath.IsAbs(grammarPath) {
			grammarPath = filepath.Join(filepath.Dir(path), grammarPath)
		}
	}
	cfgDebug = cfg.Parse.Debug
	return nil
}
