package platform

import (
	"os"
	"runtime"

	"github.com/go-git/go-billy/v5"
)

// Chmod sets file permissions through fs. It is a no-op on Windows, which
// has no Unix permission bits, and on filesystems without billy.Change.
func Chmod(fs billy.Filesystem, path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	ch, ok := fs.(billy.Change)
	if !ok {
		return nil
	}
	return ch.Chmod(path, mode)
}
