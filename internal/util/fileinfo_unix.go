//go:build unix

package util

import "golang.org/x/sys/unix"

// fileInode returns the inode number of path, or 0 if it cannot be read
func fileInode(path string) uint64 {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0
	}
	return uint64(st.Ino)
}
