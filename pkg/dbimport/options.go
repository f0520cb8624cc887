// Package dbimport converts one sheet of a spreadsheet workbook into a JSON
// document, archiving any previous document first.
package dbimport

import (
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

const (
	// DefaultSheetName is the sheet read from the workbook.
	DefaultSheetName = "Base Data"
	// DefaultOutputFile is the JSON file written in the working directory.
	DefaultOutputFile = "db.json"
	// DefaultDownloadsDir is the home subdirectory workbooks are read from.
	DefaultDownloadsDir = "Downloads"
)

// Options configures a conversion run.
type Options struct {
	// SheetName is the sheet to convert.
	SheetName string
	// OutputFile is the output file name, relative to WorkDir.
	OutputFile string
	// DownloadsDir is the directory under HomeDir holding input workbooks.
	DownloadsDir string
	// HomeDir is the invoking user's home directory.
	HomeDir string
	// WorkDir is the directory the output is written to.
	// If empty, OutputFile is used as a path relative to the process.
	WorkDir string
	// Fs is the filesystem used for every file operation.
	// If nil, the OS filesystem is used.
	Fs afero.Fs
	// Now returns the current local time, used for archive names.
	// If nil, time.Now is used.
	Now func() time.Time
	// Logger receives diagnostic logs. If nil, logs are discarded.
	Logger *slog.Logger
}

// DefaultOptions returns options with the default sheet, output file and
// downloads directory for the given home directory.
func DefaultOptions(homeDir string) Options {
	return Options{
		SheetName:    DefaultSheetName,
		OutputFile:   DefaultOutputFile,
		DownloadsDir: DefaultDownloadsDir,
		HomeDir:      homeDir,
	}
}

// InputPath resolves a workbook file name under the downloads directory.
// Absolute names are returned unchanged.
func (o Options) InputPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	downloads := o.DownloadsDir
	if downloads == "" {
		downloads = DefaultDownloadsDir
	}
	return filepath.Join(o.HomeDir, downloads, name)
}

// OutputPath returns the path of the JSON document.
func (o Options) OutputPath() string {
	name := o.OutputFile
	if name == "" {
		name = DefaultOutputFile
	}
	if o.WorkDir == "" {
		return name
	}
	return filepath.Join(o.WorkDir, name)
}

func (o Options) sheetName() string {
	if o.SheetName == "" {
		return DefaultSheetName
	}
	return o.SheetName
}

func (o Options) fs() afero.Fs {
	if o.Fs == nil {
		return afero.NewOsFs()
	}
	return o.Fs
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}
