// Package config loads dbimport settings from defaults, an optional .env
// file, DBIMPORT_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/ukaji3/dbimport-go/pkg/dbimport"
)

const (
	EnvPrefix = "DBIMPORT"
	// DefaultEnvFile is read from the working directory when present.
	DefaultEnvFile = ".env"
)

// Config keys, shared with the flag names.
const (
	KeySheet        = "sheet"
	KeyOutput       = "output"
	KeyDownloadsDir = "downloads-dir"
	KeyVerbose      = "verbose"
)

// Config holds the resolved settings for a run.
type Config struct {
	Sheet        string `mapstructure:"sheet"`
	Output       string `mapstructure:"output"`
	DownloadsDir string `mapstructure:"downloads-dir"`
	Verbose      bool   `mapstructure:"verbose"`
}

// RegisterFlags defines the configuration flags on flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(KeySheet, dbimport.DefaultSheetName, "Name of the sheet to convert")
	flags.StringP(KeyOutput, "o", dbimport.DefaultOutputFile, "Output JSON file name")
	flags.String(KeyDownloadsDir, dbimport.DefaultDownloadsDir, "Directory under $HOME holding the workbook")
	flags.BoolP(KeyVerbose, "v", false, "Enable debug logging")
}

// Load merges defaults, envFile, environment variables and flags, in
// increasing priority. A missing envFile is not an error; an empty envFile
// skips it.
func Load(flags *pflag.FlagSet, envFile string) (Config, error) {
	var cfg Config

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("error loading env file '%s': %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetDefault(KeySheet, dbimport.DefaultSheetName)
	v.SetDefault(KeyOutput, dbimport.DefaultOutputFile)
	v.SetDefault(KeyDownloadsDir, dbimport.DefaultDownloadsDir)
	v.SetDefault(KeyVerbose, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range []string{KeySheet, KeyOutput, KeyDownloadsDir, KeyVerbose} {
			flag := flags.Lookup(key)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return cfg, fmt.Errorf("error binding flag '--%s': %w", key, err)
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling configuration: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings that cannot name a sheet or a file.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Sheet) == "" {
		return errors.New("sheet name must not be empty")
	}
	if strings.TrimSpace(c.Output) == "" {
		return errors.New("output file name must not be empty")
	}
	return nil
}

// Options converts the configuration into conversion options for homeDir.
func (c Config) Options(homeDir string) dbimport.Options {
	opts := dbimport.DefaultOptions(homeDir)
	opts.SheetName = c.Sheet
	opts.OutputFile = c.Output
	opts.DownloadsDir = c.DownloadsDir
	return opts
}

// NewLogger returns a text logger writing to w: debug level when verbose,
// warnings only otherwise.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
