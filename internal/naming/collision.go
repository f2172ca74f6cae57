package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// CollisionResolver hands out target names for a rename batch. When two
// sources synthesize the same name in one directory, or the name is already
// taken on disk by another file, later claimants get " - dupN" suffixes.
// All methods are goroutine-safe.
type CollisionResolver struct {
	mu     sync.Mutex
	owners map[string]string // target path → source path that claimed it
	exists func(path string) bool
}

// NewCollisionResolver creates a resolver that consults the filesystem.
func NewCollisionResolver() *CollisionResolver {
	return newCollisionResolver(fileExists)
}

func newCollisionResolver(exists func(string) bool) *CollisionResolver {
	return &CollisionResolver{
		owners: make(map[string]string),
		exists: exists,
	}
}

func fileExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// Resolve returns the name source should be renamed to, given the
// synthesized name. The returned value is a base name in source's directory.
func (cr *CollisionResolver) Resolve(source, name string) string {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	dir := filepath.Dir(source)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	candidate := filepath.Join(dir, name)
	for n := 1; !cr.free(source, candidate); n++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s - dup%d%s", stem, n, ext))
	}
	cr.owners[candidate] = source
	return filepath.Base(candidate)
}

func (cr *CollisionResolver) free(source, candidate string) bool {
	if owner, ok := cr.owners[candidate]; ok {
		return owner == source
	}
	return candidate == filepath.Clean(source) || !cr.exists(candidate)
}
