// Package download writes buffer contents to disk, standing in for a browser
// file download.
package download

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidName is returned for names that are empty or would escape the
// downloads directory.
var ErrInvalidName = errors.New("invalid download name")

// Downloader saves files into Dir. An empty Dir means the working directory.
type Downloader struct {
	Dir string
}

// New returns a Downloader rooted at dir.
func New(dir string) *Downloader {
	return &Downloader{Dir: dir}
}

// Save writes content to name inside the downloads directory, creating the
// directory if needed and overwriting any existing file. It returns the path
// written.
func (d *Downloader) Save(name, content string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	dir := d.Dir
	if dir == "" {
		dir = "."
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create downloads dir: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}

	return path, nil
}
