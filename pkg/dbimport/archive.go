package dbimport

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// ArchiveTimeFormat is the timestamp inserted into archive file names.
const ArchiveTimeFormat = "_20060102_150405"

// ArchiveName returns the archive path for path at time t: the timestamp is
// inserted between the file stem and its extension, in the same directory.
func ArchiveName(path string, t time.Time) string {
	dir, base := filepath.Split(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return dir + stem + t.Format(ArchiveTimeFormat) + ext
}

// Archive renames an existing file at path to its timestamped archive name
// and returns the new path. It returns "" when there is nothing to archive.
//
// The archive name is not checked for an existing file; two archives taken
// within the same second follow the filesystem's rename semantics.
func Archive(fsys afero.Fs, path string, t time.Time) (string, error) {
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return "", &ArchiveError{Path: path, Err: err}
	}
	if !exists {
		return "", nil
	}

	target := ArchiveName(path, t)
	if err := fsys.Rename(path, target); err != nil {
		return "", &ArchiveError{Path: path, Target: target, Err: err}
	}
	return target, nil
}
