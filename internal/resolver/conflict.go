package resolver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// uniqueDestination allocates a free path in dir for the given base name.
// On collision the name gets a _1, _2, ... suffix before the extension
// until a free slot is found. Allocation is sequential, not transactional
// against other writers to the same directory.
func uniqueDestination(dir, name string) (string, error) {
	const maxAttempts = 10000

	candidate := filepath.Join(dir, name)
	exists, err := pathExists(candidate)
	if err != nil {
		return "", err
	}
	if !exists {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, attempt, ext))
		exists, err := pathExists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("exhausted destination name slots for %s in %s", name, dir)
}

func pathExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
