package testcache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/dcode-oj/dcode-cli/api"
)

// Cache keeps canonical testcases on disk, zstd-compressed, so repeated
// runs of the same problem don't refetch them. Entries also stay in memory
// for the lifetime of the process. Custom testcases never enter the cache.
type Cache struct {
	dir string
	mem *xsync.MapOf[int, []api.Testcase]
	enc *zstd.Encoder
	dec *zstd.Decoder
}

func New(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &Cache{
		dir: dir,
		mem: xsync.NewMapOf[int, []api.Testcase](),
		enc: enc,
		dec: dec,
	}, nil
}

func (c *Cache) path(problemID int) string {
	return filepath.Join(c.dir, fmt.Sprintf("problem-%d.json.zst", problemID))
}

// Get returns the cached testcases for a problem, checking memory first and
// disk second.
func (c *Cache) Get(problemID int) ([]api.Testcase, bool) {
	if tcs, ok := c.mem.Load(problemID); ok {
		return tcs, true
	}

	data, err := os.ReadFile(c.path(problemID))
	if err != nil {
		return nil, false
	}
	raw, err := c.dec.DecodeAll(data, nil)
	if err != nil {
		// Corrupt entry; treat as a miss and let Put overwrite it.
		return nil, false
	}
	var tcs []api.Testcase
	if err := json.Unmarshal(raw, &tcs); err != nil {
		return nil, false
	}

	c.mem.Store(problemID, tcs)
	return tcs, true
}

// Put stores the testcases for a problem.
func (c *Cache) Put(problemID int, tcs []api.Testcase) error {
	c.mem.Store(problemID, tcs)

	raw, err := json.Marshal(tcs)
	if err != nil {
		return fmt.Errorf("failed to marshal testcases: %w", err)
	}
	compressed := c.enc.EncodeAll(raw, nil)
	if err := os.WriteFile(c.path(problemID), compressed, 0644); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

// Drop removes a problem's cache entry from memory and disk.
func (c *Cache) Drop(problemID int) error {
	c.mem.Delete(problemID)
	err := os.Remove(c.path(problemID))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove cache entry: %w", err)
	}
	return nil
}
