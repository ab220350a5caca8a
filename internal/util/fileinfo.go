package util

import (
	"fmt"
	"hash/crc32"
	"os"
)

// FileInfo holds what is needed to tell whether a deadline file changed
type FileInfo struct {
	Inode       uint64
	ModTime     int64
	Size        int64
	Fingerprint string
}

// GetFileInfo stats path and fingerprints its content
func GetFileInfo(path string) (*FileInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !stat.Mode().IsRegular() {
		return nil, fmt.Errorf("not a regular file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return &FileInfo{
		Inode:       fileInode(path),
		ModTime:     stat.ModTime().UnixNano(),
		Size:        stat.Size(),
		Fingerprint: fmt.Sprintf("%08x", crc32.ChecksumIEEE(data)),
	}, nil
}

// Equal reports whether two snapshots describe the same content
func (fi *FileInfo) Equal(other *FileInfo) bool {
	if fi == nil || other == nil {
		return fi == other
	}
	return fi.Size == other.Size && fi.Fingerprint == other.Fingerprint
}
