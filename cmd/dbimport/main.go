// Package main provides the CLI entry point for dbimport.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/ukaji3/dbimport-go/internal/config"
	"github.com/ukaji3/dbimport-go/pkg/dbimport"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	noticeColor  = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
)

// env is the part of the process environment a run depends on.
type env struct {
	fs      afero.Fs
	homeDir func() (string, error)
	workDir string
	envFile string
	now     func() time.Time
	stderr  io.Writer
}

func defaultEnv() env {
	return env{
		fs:      afero.NewOsFs(),
		homeDir: homedir.Dir,
		envFile: config.DefaultEnvFile,
		now:     time.Now,
		stderr:  os.Stderr,
	}
}

func main() {
	if err := newRootCmd(defaultEnv()).Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(e env) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dbimport <workbook.xlsx>",
		Short: "Convert a workbook sheet from ~/Downloads into db.json",
		Long: `dbimport reads the "Base Data" sheet of a workbook in ~/Downloads and
writes its rows to db.json as an array of objects. An existing db.json is
first renamed to db_YYYYMMDD_HHMMSS.json.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd, args, e)
		},
	}

	config.RegisterFlags(rootCmd.Flags())
	return rootCmd
}

func run(cmd *cobra.Command, args []string, e env) error {
	cfg, err := config.Load(cmd.Flags(), e.envFile)
	if err != nil {
		return err
	}

	home, err := e.homeDir()
	if err != nil {
		return fmt.Errorf("failed to get user home directory: %w", err)
	}

	opts := cfg.Options(home)
	opts.WorkDir = e.workDir
	opts.Fs = e.fs
	opts.Now = e.now
	opts.Logger = config.NewLogger(e.stderr, cfg.Verbose)

	out := cmd.OutOrStdout()
	res, err := dbimport.Run(args[0], opts)
	if res != nil && res.ArchivePath != "" {
		noticeColor.Fprintf(out, "Existing file renamed to: %s\n", res.ArchivePath)
	}
	if err != nil {
		return err
	}

	successColor.Fprintf(out, "Conversion complete. Data from '%s' saved to %s\n", res.InputName, res.OutputPath)
	fmt.Fprintf(out, "%s %s, %s in %s\n",
		humanize.Comma(int64(res.Rows)), rowsLabel(res.Rows),
		humanize.Bytes(uint64(res.Bytes)), res.Elapsed.Round(time.Millisecond))
	return nil
}

func rowsLabel(n int) string {
	if n == 1 {
		return "row"
	}
	return "rows"
}
