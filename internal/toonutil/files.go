// Package toonutil provides small filesystem helpers shared by the
// TOON CLI, adapted from the teacher CLI's own file-discovery helpers.
package toonutil

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// FindTOONFiles recursively finds every ".toon" file under dir,
// skipping hidden directories and common build/dependency directories
// the way the teacher's own directory walk does for its own source
// extension.
func FindTOONFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != dir && (strings.HasPrefix(name, ".") || name == "node_modules" || name == "vendor") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == ".toon" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
