// Package imagefile finds image files on disk and turns them into
// orientation-corrected, size-bounded thumbnails.
package imagefile

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// supportedExts are the formats we can decode. RAW and video are not supported.
var supportedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// IsImageFile checks if a file has a supported image extension.
func IsImageFile(name string) bool {
	return supportedExts[strings.ToLower(filepath.Ext(name))]
}

// List returns the image files in dir sorted by path. Hidden files are
// skipped. With recursive set, subdirectories are searched too.
func List(dir string, recursive bool) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot access folder %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	var paths []string
	if recursive {
		err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != dir && isHidden(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if !isHidden(d.Name()) && IsImageFile(d.Name()) {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("cannot walk folder %s: %w", dir, err)
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("cannot read folder %s: %w", dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || isHidden(entry.Name()) {
				continue
			}
			if IsImageFile(entry.Name()) {
				paths = append(paths, filepath.Join(dir, entry.Name()))
			}
		}
	}

	slices.Sort(paths)
	return paths, nil
}

// isHidden matches dotfiles such as macOS "._IMG_0001.JPG" resource forks.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
