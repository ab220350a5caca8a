package cache

import (
	"sync"

	"github.com/penwyp/go-conky-deadlines/internal/core/model"
	"github.com/penwyp/go-conky-deadlines/internal/util"
)

type CacheMissReason int

const (
	MissReasonNone CacheMissReason = iota
	MissReasonNotFound
	MissReasonInode
	MissReasonSize
	MissReasonModTime
	MissReasonFingerprint
)

func (r CacheMissReason) String() string {
	switch r {
	case MissReasonNone:
		return "none"
	case MissReasonNotFound:
		return "not_found"
	case MissReasonInode:
		return "inode"
	case MissReasonSize:
		return "size"
	case MissReasonModTime:
		return "modtime"
	case MissReasonFingerprint:
		return "fingerprint"
	default:
		return "unknown"
	}
}

type CacheResult struct {
	Data       *model.DeadlineMap
	Found      bool
	MissReason CacheMissReason
}

type entry struct {
	info *util.FileInfo
	data *model.DeadlineMap
}

// ParseCache keeps the parsed deadline map of each file for as long as the
// file's inode, size, modification time and content fingerprint are
// unchanged.
// Watch mode uses it so a refresh only re-parses the files that changed.
type ParseCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	hits    int
	misses  int
}

func NewParseCache() *ParseCache {
	return &ParseCache{entries: make(map[string]entry)}
}

// Get returns the cached map for path if current still describes the file
// it was parsed from. The returned map is a copy.
func (c *ParseCache) Get(path string, current *util.FileInfo) CacheResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[path]
	if !ok {
		c.misses++
		return CacheResult{MissReason: MissReasonNotFound}
	}

	reason := validate(e.info, current)
	if reason != MissReasonNone {
		util.LogDebugf("Parse cache invalidated for %s: %s changed", path, reason)
		delete(c.entries, path)
		c.misses++
		return CacheResult{MissReason: reason}
	}

	c.hits++
	return CacheResult{Data: model.Merge(nil, e.data), Found: true}
}

func validate(cached, current *util.FileInfo) CacheMissReason {
	if current == nil || cached == nil {
		return MissReasonNotFound
	}
	if cached.Inode != current.Inode {
		return MissReasonInode
	}
	if cached.Size != current.Size {
		return MissReasonSize
	}
	if cached.ModTime != current.ModTime {
		return MissReasonModTime
	}
	if cached.Fingerprint != current.Fingerprint {
		return MissReasonFingerprint
	}
	return MissReasonNone
}

// Set stores data for path, described by info at the time it was read.
func (c *ParseCache) Set(path string, info *util.FileInfo, data *model.DeadlineMap) {
	if info == nil || data == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = entry{info: info, data: model.Merge(nil, data)}
}

func (c *ParseCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Stats returns the number of cached files, hits and misses
func (c *ParseCache) Stats() (entries, hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries), c.hits, c.misses
}
