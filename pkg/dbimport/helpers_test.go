package dbimport

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const (
	testHome    = "/home/tester"
	testWorkDir = "/work"
)

var testNow = time.Date(2025, 10, 13, 10, 25, 0, 0, time.Local)

// writeWorkbook saves a single-sheet workbook with the given rows to path.
func writeWorkbook(t *testing.T, fsys afero.Fs, path, sheet string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		require.NoError(t, f.SetSheetName("Sheet1", sheet))
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &rows[i]))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fsys, path, buf.Bytes(), 0644))
}

func peopleRows() [][]interface{} {
	return [][]interface{}{
		{"id", "name"},
		{1, "Alice"},
		{2, "Bob"},
	}
}

func testOptions(fsys afero.Fs) Options {
	opts := DefaultOptions(testHome)
	opts.WorkDir = testWorkDir
	opts.Fs = fsys
	opts.Now = func() time.Time { return testNow }
	return opts
}

// writeWorkbookWithSheetXML saves a workbook whose only sheet, "Sheet1", holds sheetXML verbatim.
func writeWorkbookWithSheetXML(t *testing.T, fsys afero.Fs, path, sheetXML string) {
	t.Helper()

	f := excelize.NewFile()
	buf, err := f.WriteToBuffer()
	require.NoError(t, f.Close())
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	for _, file := range zr.File {
		w, err := zw.Create(file.Name)
		require.NoError(t, err)
		if file.Name == "xl/worksheets/sheet1.xml" {
			_, err = io.WriteString(w, sheetXML)
			require.NoError(t, err)
			continue
		}
		r, err := file.Open()
		require.NoError(t, err)
		_, err = io.Copy(w, r)
		require.NoError(t, err)
		require.NoError(t, r.Close())
	}
	require.NoError(t, zw.Close())
	require.NoError(t, afero.WriteFile(fsys, path, out.Bytes(), 0644))
}
