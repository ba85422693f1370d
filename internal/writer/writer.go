// Package writer puts generated files on a filesystem.
package writer

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// File is one generated source file.
type File struct {
	// Filename is the name of the file inside the output directory (e.g., "news.py").
	Filename string
	// Content is the rendered source text.
	Content []byte
}

// WriteFiles writes all files to the output directory in order.
// It creates the directory if it doesn't exist. Files written before a
// failure are left in place.
func WriteFiles(fs afero.Fs, files []File, outputDir string) error {
	err := fs.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := afero.WriteFile(fs, outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// Exists reports whether filename is present in dir.
func Exists(fs afero.Fs, dir, filename string) (bool, error) {
	ok, err := afero.Exists(fs, filepath.Join(dir, filename))
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", filename, err)
	}

	return ok, nil
}
