package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vaughan0/go-ini"
)

// A config holds the settings shared by the day 23 solutions. Settings come
// from an INI file such as
//
//	[search]
//	maxdepth = 128
//
//	[report]
//	stats = true
//	humanize = false
//
// and are overridden by flags.
type config struct {
	maxDepth int
	stats    bool
	humanize bool
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "amphipod.ini")
}

// loadConfig reads the config file name. A missing file is only an error
// if required is set.
func loadConfig(name string, required bool) (config, error) {
	if name == "" {
		return config{}, nil
	}
	file, err := ini.LoadFile(name)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return config{}, nil
		}
		return config{}, fmt.Errorf("error loading config (%s): %s", name, err)
	}
	cfg, err := parseConfig(file)
	if err != nil {
		return config{}, fmt.Errorf("bad config (%s): %s", name, err)
	}
	return cfg, nil
}

func parseConfig(file ini.File) (config, error) {
	var cfg config
	if s, ok := file.Get("search", "maxdepth"); ok {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("bad search.maxdepth %q", s)
		}
		cfg.maxDepth = n
	}
	for _, b := range []struct {
		key string
		p   *bool
	}{
		{"stats", &cfg.stats},
		{"humanize", &cfg.humanize},
	} {
		s, ok := file.Get("report", b.key)
		if !ok {
			continue
		}
		v, err := strconv.ParseBool(s)
		if err != nil {
			return cfg, fmt.Errorf("bad report.%s %q", b.key, s)
		}
		*b.p = v
	}
	return cfg, nil
}
