package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// DefaultWidth is the console width the line is truncated to.
	DefaultWidth = 160

	BackendExec   = "exec"
	BackendNative = "native"

	envPrefix = "STATUSLINE"
)

type Config struct {
	ShowGit       bool
	ShowToolchain bool
	ShowModel     bool
	ShowCost      bool
	NoColor       bool
	Width         int
	GitBackend    string
	Timeout       time.Duration
	Verbose       bool
}

// Defaults returns the configuration with every segment enabled.
func Defaults() Config {
	return Config{
		ShowGit:       true,
		ShowToolchain: true,
		ShowModel:     true,
		ShowCost:      true,
		Width:         DefaultWidth,
		GitBackend:    BackendExec,
	}
}

// RegisterFlags adds the statusline flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Bool("no-git", false, "Hide git branch/status")
	fs.Bool("no-toolchain", false, "Hide node/python/rust versions")
	fs.Bool("no-model", false, "Hide model name")
	fs.Bool("no-cost", false, "Hide session cost")
	fs.Bool("no-color", false, "Disable ANSI colors")
	fs.Int("width", DefaultWidth, "Truncate the line to this many cells (0 = no limit)")
	fs.String("git-backend", BackendExec, "How to read repository state: exec (git binary) or native (go-git)")
	fs.Duration("timeout", 0, "Abort external commands after this long (0 = wait)")
	fs.BoolP("verbose", "v", false, "Report failed probes on stderr")
}

// Load resolves the configuration. Precedence: flags > STATUSLINE_* env vars > defaults.
func Load(fs *pflag.FlagSet) Config {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(fs)

	d := Defaults()
	v.SetDefault("width", d.Width)
	v.SetDefault("git-backend", d.GitBackend)

	cfg := Config{
		ShowGit:       !v.GetBool("no-git"),
		ShowToolchain: !v.GetBool("no-toolchain"),
		ShowModel:     !v.GetBool("no-model"),
		ShowCost:      !v.GetBool("no-cost"),
		NoColor:       v.GetBool("no-color"),
		Width:         v.GetInt("width"),
		GitBackend:    strings.ToLower(strings.TrimSpace(v.GetString("git-backend"))),
		Timeout:       v.GetDuration("timeout"),
		Verbose:       v.GetBool("verbose"),
	}

	if cfg.GitBackend != BackendNative {
		cfg.GitBackend = BackendExec
	}
	if cfg.Width < 0 {
		cfg.Width = 0
	}

	// NO_COLOR env
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.NoColor = true
	}

	return cfg
}
