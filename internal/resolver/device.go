package resolver

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// checkSameDevice verifies that path and dir live on the same volume before
// a hard link is attempted. Linking across volumes cannot work, so the
// failure is surfaced up front with a clearer message than EXDEV.
func checkSameDevice(path, dir string) error {
	var pathStat, dirStat unix.Stat_t
	if err := unix.Stat(path, &pathStat); err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := unix.Stat(dir, &dirStat); err != nil {
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if pathStat.Dev != dirStat.Dev {
		return fmt.Errorf("cannot hard-link across volumes: %s and %s are on different devices", path, dir)
	}
	return nil
}
