package dbimport

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"
	"github.com/ukaji3/dbimport-go/pkg/dbimport/models"
	"github.com/ukaji3/dbimport-go/pkg/dbimport/parser"
	"github.com/xuri/excelize/v2"
)

// Extract reads the named sheet of the workbook at path.
func Extract(fsys afero.Fs, path, sheetName string) (*models.Dataset, error) {
	file, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: '%s'", ErrFileNotFound, path)
		}
		return nil, NewExtractionError(sheetName, "open", err)
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFormat, path, err)
	}
	defer f.Close()

	if !slices.Contains(f.GetSheetList(), sheetName) {
		return nil, fmt.Errorf("%w: worksheet named '%s' not found in %s", ErrSheetNotFound, sheetName, path)
	}

	columns, rows, err := parser.ReadSheet(f, sheetName)
	if err != nil {
		return nil, NewExtractionError(sheetName, "rows", err)
	}

	return &models.Dataset{
		BookName:  filepath.Base(path),
		SheetName: sheetName,
		Columns:   columns,
		Rows:      rows,
	}, nil
}
