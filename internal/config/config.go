// Package config resolves where tasker keeps its data and how it logs.
//
// Values are layered, later sources overriding earlier ones:
//  1. defaults
//  2. .env file (TASKER_ENV_FILE or ./.env), if present
//  3. <root>/config.yaml, if present
//  4. TASKER_* environment variables
//  5. command-line overrides applied by the caller
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDataFile = "tasks.txt"
	DefaultLogLevel = "warn"
	fileName        = "config.yaml"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Root     string `yaml:"-"`
	DataFile string `yaml:"data_file"`
	LogLevel string `yaml:"log_level"`
	Color    *bool  `yaml:"color,omitempty"`
}

// Load builds a Config from defaults, the optional .env file, the optional
// config.yaml under the root and the environment. rootOverride, when
// non-empty, wins over TASKER_ROOT.
func Load(rootOverride string) (*Config, error) {
	envFile := os.Getenv("TASKER_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, envFile, err)
	}

	cfg := &Config{
		Root:     DefaultRoot(),
		DataFile: DefaultDataFile,
		LogLevel: DefaultLogLevel,
	}
	if env := os.Getenv("TASKER_ROOT"); env != "" {
		cfg.Root = env
	}
	if strings.TrimSpace(rootOverride) != "" {
		cfg.Root = rootOverride
	}
	cfg.Root = ExpandHome(cfg.Root)

	if err := cfg.loadFile(filepath.Join(cfg.Root, fileName)); err != nil {
		return nil, err
	}

	if v := os.Getenv("TASKER_DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("TASKER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TASKER_NO_COLOR"); v != "" {
		noColor, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: TASKER_NO_COLOR=%q is not a boolean", ErrInvalid, v)
		}
		color := !noColor
		cfg.Color = &color
	}
	return cfg, nil
}

func DefaultRoot() string {
	home, _ := os.UserHomeDir()
	if home != "" {
		return filepath.Join(home, ".tasker")
	}
	return ".tasker"
}

func (c *Config) loadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	var fileCfg Config
	if err := yaml.Unmarshal(b, &fileCfg); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}
	if strings.TrimSpace(fileCfg.DataFile) != "" {
		c.DataFile = strings.TrimSpace(fileCfg.DataFile)
	}
	if strings.TrimSpace(fileCfg.LogLevel) != "" {
		c.LogLevel = strings.TrimSpace(fileCfg.LogLevel)
	}
	if fileCfg.Color != nil {
		c.Color = fileCfg.Color
	}
	return nil
}

// DataPath is the absolute-or-root-relative location of the task file.
func (c *Config) DataPath() string {
	p := ExpandHome(c.DataFile)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}

func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// ExpandHome resolves a leading "~" to the user's home directory.
func ExpandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok || (rest != "" && rest[0] != os.PathSeparator) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return home + rest
}
