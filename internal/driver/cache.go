package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when Payload format changes
const cacheSchemaVersion uint16 = 1

// Digest keys one cached pass: hash of the source text plus the pipeline
// fingerprint.
type Digest [sha256.Size]byte

// PassKey builds the cache digest for one source + assembled pipeline.
func PassKey(source []byte, fingerprint string) Digest {
	h := sha256.New()
	h.Write(source)
	h.Write([]byte{0})
	h.Write([]byte(fingerprint))
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// Cache хранит результаты прошедших трансформаций на диске, по одному
// файлу на Digest. Thread-safe for concurrent access.
//
// The configurator core stays cache-free; only the batch CLI layer reads
// and writes here.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Payload stores one transformed output for fast re-runs.
type Payload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Code    string
	MapJSON []byte
	Created int64
}

// OpenCache initializes and returns a disk cache at the standard location.
func OpenCache(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// OpenCacheAt initializes a disk cache rooted at an explicit directory.
func OpenCacheAt(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог "passes" — удобнее чистить и читать глазами
	return filepath.Join(c.dir, "passes", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *Cache) Put(key Digest, payload *Payload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache. A payload with
// a stale schema counts as a miss.
func (c *Cache) Get(key Digest, out *Payload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		_ = f.Close()
	}()
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	if out.Schema != cacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

// NewPayload wraps one pass result for storage.
func NewPayload(code string, mapJSON []byte) *Payload {
	return &Payload{
		Schema:  cacheSchemaVersion,
		Code:    code,
		MapJSON: mapJSON,
		Created: time.Now().Unix(),
	}
}
