package batch

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/nezticle/qlmdenoiser/pipeline"
)

// The file extension identifying manifests.
const ManifestExt = ".txt"

// Returns true if path names a manifest rather than an image.
func IsManifest(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ManifestExt)
}

// Read the image paths listed in a manifest, one per line. Surrounding
// whitespace is trimmed and blank lines are skipped.
func ReadManifest(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &pipeline.Error{Kind: pipeline.ManifestError, Path: path, Err: err}
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}

	if err = scanner.Err(); err != nil {
		return nil, &pipeline.Error{Kind: pipeline.ManifestError, Path: path, Err: err}
	}

	return entries, nil
}
