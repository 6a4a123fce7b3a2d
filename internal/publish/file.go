package publish

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// StandardFileName is the name of the file a rig description is written to,
// after the optional prefix.
const StandardFileName = "instrument.json"

const (
	dirPermissions  = 0o750
	defaultFileMode = 0o644
	tempFilePattern = ".instrument-*.tmp"
)

// FileWriter writes standard files into Dir.
type FileWriter struct {
	Dir string

	// Mode is applied to written files. Zero means 0644.
	Mode fs.FileMode
}

// Path returns where WriteStandardFile puts a document with prefix.
func (w *FileWriter) Path(prefix string) (string, error) {
	if err := checkPrefix(prefix); err != nil {
		return "", err
	}
	return filepath.Join(w.Dir, prefix+StandardFileName), nil
}

// WriteStandardFile writes doc to <Dir>/<prefix>instrument.json.
//
// The document is written to a temporary file in the same directory, synced,
// then renamed over the target, so readers never see a partial file.
func (w *FileWriter) WriteStandardFile(ctx context.Context, doc []byte, prefix string) (string, error) {
	path, err := w.Path(prefix)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	if err := os.MkdirAll(w.Dir, dirPermissions); err != nil {
		return "", fmt.Errorf("%w: creating %s: %w", ErrWriteFailed, w.Dir, err)
	}

	tmp, err := os.CreateTemp(w.Dir, tempFilePattern)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName) //nolint:errcheck // Best effort cleanup on error path
		}
	}()

	if _, err := tmp.Write(doc); err != nil {
		tmp.Close() //nolint:errcheck // Write error takes precedence
		return "", fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close() //nolint:errcheck // Sync error takes precedence
		return "", fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if err := os.Chmod(tmpName, w.mode()); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	committed = true
	return path, nil
}

func (w *FileWriter) mode() fs.FileMode {
	if w.Mode == 0 {
		return defaultFileMode
	}
	return w.Mode
}

// checkPrefix rejects prefixes that would leave Dir.
func checkPrefix(prefix string) error {
	if strings.ContainsAny(prefix, `/\`) || strings.Contains(prefix, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidPrefix, prefix)
	}
	return nil
}
