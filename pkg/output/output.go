package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// Fixed names of the two artifacts written into the output directory.
const (
	HTMLFileName = "index.html"
	CSSFileName  = "styles.css"
)

// DefaultDir is the output directory used when no directory is configured.
const DefaultDir = "output"

// Files holds the paths of the written artifacts.
type Files struct {
	HTMLPath string
	CSSPath  string
}

// Write saves the generated HTML document and stylesheet into dir, creating
// the directory first when absent. An empty dir falls back to DefaultDir.
// Each file is fully written and closed in one operation; there is no
// partial-write recovery.
func Write(dir, html, css string) (*Files, error) {
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %q: %w", dir, err)
	}

	files := &Files{
		HTMLPath: filepath.Join(dir, HTMLFileName),
		CSSPath:  filepath.Join(dir, CSSFileName),
	}

	if err := os.WriteFile(files.HTMLPath, []byte(html), 0644); err != nil {
		return nil, fmt.Errorf("failed to write file %q: %w", files.HTMLPath, err)
	}
	if err := os.WriteFile(files.CSSPath, []byte(css), 0644); err != nil {
		return nil, fmt.Errorf("failed to write file %q: %w", files.CSSPath, err)
	}

	return files, nil
}
