//go:build !unix

package util

func fileInode(path string) uint64 {
	return 0
}
