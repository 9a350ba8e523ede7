package fs

import "os"

// IsSymlink checks if the path itself is a symbolic link.
func (f *realFS) IsSymlink(path string) (bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return false, err
	}
	return info.Mode()&os.ModeSymlink != 0, nil
}
