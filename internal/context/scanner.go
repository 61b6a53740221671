package context

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// DefaultExcludedNames are build, output, and dependency-cache
// directories that are never descended into.
var DefaultExcludedNames = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"target":       true,
	"dist":         true,
	"build":        true,
	"__pycache__":  true,
	"venv":         true,
	"coverage":     true,
}

// DefaultMaxDepth bounds how far below the working directory the
// scanner descends. The root itself is depth 0.
const DefaultMaxDepth = 5

// DefaultLimits returns scan limits with the fixed depth and exclusion
// defaults; count and size bounds come from configuration.
func DefaultLimits(maxFiles, maxFileBytes int) ScanLimits {
	return ScanLimits{
		MaxDepth:      DefaultMaxDepth,
		MaxFiles:      maxFiles,
		MaxFileBytes:  maxFileBytes,
		ExcludedNames: DefaultExcludedNames,
	}
}

// Scan walks the subtree under root and returns the ordered candidate
// files plus the total number of files observed. Traversal is lexical
// (filepath.WalkDir), so the order is deterministic for a fixed
// filesystem state. Symbolic links are never followed. Hidden entries
// and excluded directory names are pruned before descending. Unreadable
// entries are skipped; an unreadable root is a hard error.
func Scan(root string, limits ScanLimits) (ScanResult, error) {
	var result ScanResult

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// Unreadable entry: skip, keep scanning.
			return nil
		}
		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		depth := strings.Count(rel, string(filepath.Separator)) + 1
		name := d.Name()

		if d.IsDir() {
			// Prune before descending so excluded trees cost nothing.
			if strings.HasPrefix(name, ".") || limits.ExcludedNames[name] {
				return filepath.SkipDir
			}
			if depth >= limits.MaxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		if depth > limits.MaxDepth {
			return nil
		}
		if strings.HasPrefix(name, ".") || limits.ExcludedNames[name] {
			return nil
		}
		// Only regular files are candidates; symlinks, sockets, and
		// devices are skipped.
		if !d.Type().IsRegular() {
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			return nil
		}

		result.TotalSeen++

		if info.Size() > int64(limits.MaxFileBytes) {
			return nil
		}
		if len(result.Candidates) >= limits.MaxFiles {
			return nil
		}
		result.Candidates = append(result.Candidates, CandidateFile{
			Path:    path,
			RelPath: rel,
			Size:    info.Size(),
		})
		return nil
	})
	if walkErr != nil {
		return ScanResult{}, walkErr
	}
	return result, nil
}
