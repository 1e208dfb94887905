package source

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// maxFileSize caps how much of a single file the loader will read.
const maxFileSize = 1 << 20 // 1 MiB

var sourceExtensions = map[string]bool{
	".py":   true,
	".js":   true,
	".ts":   true,
	".tsx":  true,
	".jsx":  true,
	".java": true,
	".cpp":  true,
	".go":   true,
	".cs":   true,
	".php":  true,
}

// Loader collects source files from a local directory tree.
type Loader struct {
	ignoredDirs []string
}

// NewLoader creates a loader with the default directory skip list.
func NewLoader() *Loader {
	return &Loader{
		ignoredDirs: []string{".git", "vendor", "node_modules", "dist", "build", "__pycache__"},
	}
}

// LoadDir walks the root directory and returns every readable source file,
// honoring the project's .gitignore when present. Paths are reported
// relative to root with forward slashes.
func (l *Loader) LoadDir(root string) ([]File, error) {
	var matcher *ignore.GitIgnore
	if gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore")); err == nil {
		matcher = gi
	}

	var files []File
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			for _, ign := range l.ignoredDirs {
				if d.Name() == ign {
					return filepath.SkipDir
				}
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if !sourceExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		if matcher != nil && matcher.MatchesPath(rel) {
			return nil
		}

		info, err := d.Info()
		if err != nil || info.Size() > maxFileSize {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			// Unreadable files still count as inputs, just without content.
			files = append(files, File{Path: rel, Size: info.Size()})
			return nil
		}

		files = append(files, File{Path: rel, Content: string(content), Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return files, nil
}

// LoadManifest reads a JSON array of file records, the exchange format
// used by the remote repository fetcher.
func LoadManifest(path string) ([]File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var files []File
	if err := json.Unmarshal(data, &files); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}
	return files, nil
}
