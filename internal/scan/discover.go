package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover walks root and returns every file whose slash-separated path
// relative to root matches pattern (doublestar syntax, case-insensitive).
// Paths are returned in walk order and are not sorted afterwards.
//
// An error reading root itself is returned. Entries below root that cannot be
// read are reported to onSkip (when non-nil) and skipped, so one unreadable
// directory does not abort the scan. A symlinked root is followed; symlinked
// directories below it are neither walked nor matched, and symlinks are only
// returned when they resolve to a regular file. Dangling links go to onSkip.
func Discover(root, pattern string, onSkip func(path string, err error)) ([]string, error) {
	pattern = strings.ToLower(pattern)

	walkRoot := root
	if fi, err := os.Lstat(root); err == nil && fi.Mode()&fs.ModeSymlink != 0 {
		walkRoot = root + string(filepath.Separator)
	}

	var files []string
	err := filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == walkRoot {
				return err
			}
			if onSkip != nil {
				onSkip(path, err)
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		ok, err := doublestar.Match(pattern, strings.ToLower(filepath.ToSlash(rel)))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			fi, err := os.Stat(path)
			if err != nil {
				if onSkip != nil {
					onSkip(path, err)
				}
				return nil
			}
			if !fi.Mode().IsRegular() {
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
