package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jcorbin/rawterm/internal/logger"
	"github.com/jcorbin/rawterm/termkey"
)

// config holds decode's settings; it is read from a TOML file, and then
// overridden by any flags given on the command line.
type config struct {
	Raw            bool `toml:"raw"`
	Mouse          bool `toml:"mouse"`
	Alt            bool `toml:"alt"`
	MaxSequenceLen int  `toml:"max_sequence_len"`

	Log logConfig `toml:"log"`
}

type logConfig struct {
	Level  logger.Level `toml:"level"`
	File   string       `toml:"file"`
	Format string       `toml:"format"`
}

func defaultConfig() config {
	return config{
		Raw:            true,
		MaxSequenceLen: termkey.MaxSequenceLen,
		Log:            logConfig{Level: logger.WarnLevel, Format: "text"},
	}
}

// defaultConfigPath returns $XDG_CONFIG_HOME/rawterm/decode.toml, falling
// back to ~/.config when XDG_CONFIG_HOME is unset.
func defaultConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "rawterm", "decode.toml")
}

// parseConfig parses command line arguments, loading the config file that
// they name, or the default one if it exists.
func parseConfig(args []string, stderr io.Writer) (config, error) {
	cfg := defaultConfig()
	flagged := cfg

	flags := flag.NewFlagSet("decode", flag.ContinueOnError)
	flags.SetOutput(stderr)
	path := flags.String("config", "", "TOML config file (default "+defaultConfigPath()+")")
	flags.BoolVar(&flagged.Raw, "raw", cfg.Raw, "enable terminal raw mode")
	flags.BoolVar(&flagged.Mouse, "mouse", cfg.Mouse, "enable terminal mouse reporting")
	flags.BoolVar(&flagged.Alt, "alt", cfg.Alt, "enable alternate screen usage")
	flags.IntVar(&flagged.MaxSequenceLen, "max-seq", cfg.MaxSequenceLen, "longest control sequence to decode")
	flags.Var(&flagged.Log.Level, "log-level", "log level: debug, info, warn, or error")
	flags.StringVar(&flagged.Log.File, "log-file", cfg.Log.File, "log to file rather than discarding logs while interactive")
	flags.StringVar(&flagged.Log.Format, "log-format", cfg.Log.Format, "log format: text or json")
	if err := flags.Parse(args); err != nil {
		return cfg, err
	}
	if flags.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %q", flags.Args())
	}

	if *path != "" {
		if err := loadConfig(*path, &cfg); err != nil {
			return cfg, err
		}
	} else if def := defaultConfigPath(); def != "" {
		if err := loadConfig(def, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "raw":
			cfg.Raw = flagged.Raw
		case "mouse":
			cfg.Mouse = flagged.Mouse
		case "alt":
			cfg.Alt = flagged.Alt
		case "max-seq":
			cfg.MaxSequenceLen = flagged.MaxSequenceLen
		case "log-level":
			cfg.Log.Level = flagged.Log.Level
		case "log-file":
			cfg.Log.File = flagged.Log.File
		case "log-format":
			cfg.Log.Format = flagged.Log.Format
		}
	})
	return cfg, cfg.validate()
}

func loadConfig(path string, cfg *config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("config %v: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return fmt.Errorf("config %v: unknown keys %v", path, undec)
	}
	return nil
}

func (cfg config) validate() error {
	if cfg.MaxSequenceLen < 1 {
		return fmt.Errorf("max sequence length must be positive, got %v", cfg.MaxSequenceLen)
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", cfg.Log.Format)
	}
	return nil
}

// openLog returns a logger writing to the configured file; with no file
// configured, logs go to stderr only when interactive is false, and are
// discarded otherwise so as not to scribble on the terminal.
func (lc logConfig) openLog(interactive bool) (logger.Logger, func() error, error) {
	noop := func() error { return nil }
	opts := logger.Options{Level: lc.Level, Type: logger.TypeText}
	if lc.Format == "json" {
		opts.Type = logger.TypeJSON
	}
	switch {
	case lc.File != "":
		f, err := os.OpenFile(lc.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
		if err != nil {
			return nil, noop, fmt.Errorf("open log file: %w", err)
		}
		opts.Buffer = f
		return logger.New(opts), f.Close, nil
	case interactive:
		return logger.Discard, noop, nil
	default:
		opts.Buffer = os.Stderr
		return logger.New(opts), noop, nil
	}
}
