package dbimport

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/afero"
	"github.com/ukaji3/dbimport-go/pkg/dbimport/output"
)

// Result describes a conversion run.
type Result struct {
	// InputName is the workbook name as given by the caller.
	InputName string
	// InputPath is the resolved workbook path.
	InputPath string
	// OutputPath is the JSON document path.
	OutputPath string
	// ArchivePath is where a previous document was moved, or "" if there was none.
	ArchivePath string
	// Rows is the number of records written.
	Rows int
	// Bytes is the size of the written document.
	Bytes int
	// Elapsed is the wall time of the run.
	Elapsed time.Duration
}

// Run archives any existing output document, converts the configured sheet
// of the named workbook and writes the new document.
//
// The archive step runs before the input is opened, so a missing or invalid
// workbook still leaves the previous document renamed. On error the partial
// Result is returned alongside it.
func Run(name string, opts Options) (*Result, error) {
	start := time.Now()
	fsys := opts.fs()
	log := opts.logger()

	res := &Result{
		InputName:  name,
		InputPath:  opts.InputPath(name),
		OutputPath: opts.OutputPath(),
	}
	log.Debug("Resolved paths", slog.String("input", res.InputPath), slog.String("output", res.OutputPath))

	archived, err := Archive(fsys, res.OutputPath, opts.now())
	if err != nil {
		return res, err
	}
	res.ArchivePath = archived
	if archived != "" {
		log.Debug("Archived previous output", slog.String("path", archived))
	}

	ds, err := Extract(fsys, res.InputPath, opts.sheetName())
	if err != nil {
		return res, err
	}
	log.Debug("Read sheet",
		slog.String("sheet", ds.SheetName),
		slog.Int("columns", len(ds.Columns)),
		slog.Int("rows", ds.Len()))

	data, err := output.ToJSON(ds, output.Indent)
	if err != nil {
		return res, fmt.Errorf("serialization failed: %w", err)
	}

	if err := afero.WriteFile(fsys, res.OutputPath, data, 0644); err != nil {
		return res, fmt.Errorf("failed to write output: %w", err)
	}

	res.Rows = ds.Len()
	res.Bytes = len(data)
	res.Elapsed = time.Since(start)
	log.Debug("Wrote output", slog.String("path", res.OutputPath), slog.Int("bytes", res.Bytes))
	return res, nil
}
