package chunk

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/genomere/covstats/compress"
	"github.com/genomere/covstats/errs"
	"github.com/genomere/covstats/internal/collision"
	"github.com/genomere/covstats/internal/hash"
	"github.com/genomere/covstats/internal/options"
	"github.com/genomere/covstats/rle"
)

const (
	fileExt       = ".cov"
	formatVersion = 0x1
	headerSize    = 18
)

var magic = [8]byte{'C', 'O', 'V', 'C', 'H', 'N', 'K', '1'}

// FileStore keeps one chunk per file in a directory, named by the xxHash64 of
// the chunk key. It implements Loader.
//
// The configuration is immutable after construction, so a single instance may
// be shared by any number of concurrently loading workers. Saving and loading
// the same key concurrently is the caller's responsibility to avoid, matching
// the write-once-then-fan-out lifecycle of chunked coverage processing.
type FileStore struct {
	dir   string
	ctype compress.Type
	codec compress.Codec

	mu      sync.Mutex
	tracker *collision.Tracker
}

var _ Loader = (*FileStore)(nil)

// StoreOption configures a FileStore.
type StoreOption = options.Option[*FileStore]

// WithCompression selects the codec used for newly saved chunks. The default
// is LZ4. Loading is unaffected: each file records its own codec.
func WithCompression(t compress.Type) StoreOption {
	return options.New(func(s *FileStore) error {
		codec, err := compress.GetCodec(t)
		if err != nil {
			return err
		}
		s.ctype = t
		s.codec = codec

		return nil
	})
}

// NewFileStore opens (creating if needed) a chunk store directory.
//
// Parameters:
//   - dir: Directory holding the chunk files.
//   - opts: Optional configuration (see WithCompression).
//
// Returns:
//   - *FileStore: The opened store.
//   - error: An error if the configuration is invalid or the directory
//     cannot be created.
func NewFileStore(dir string, opts ...StoreOption) (*FileStore, error) {
	codec, err := compress.GetCodec(compress.TypeLZ4)
	if err != nil {
		return nil, err
	}

	s := &FileStore{
		dir:     dir,
		ctype:   compress.TypeLZ4,
		codec:   codec,
		tracker: collision.NewTracker(),
	}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create chunk directory: %w", err)
	}

	return s, nil
}

// Path returns the file path a chunk key maps to.
func (s *FileStore) Path(key string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%016x%s", hash.ID(key), fileExt))
}

// Save writes the coverage matrix for a chunk key, replacing any previous
// file for that key.
//
// Files are named by the hash of the key, so a second key hashing to the same
// file name would silently replace the first chunk. Save tracks every key it
// has written and returns errs.ErrKeyCollision instead of aliasing.
func (s *FileStore) Save(key string, m *rle.Matrix) error {
	s.mu.Lock()
	err := s.tracker.Track(key, hash.ID(key))
	s.mu.Unlock()
	if err != nil {
		return err
	}

	payload := encodeMatrix(m)
	compressed, err := s.codec.Compress(payload)
	if err != nil {
		return fmt.Errorf("failed to compress chunk %q: %w", key, err)
	}

	buf := make([]byte, 0, headerSize+len(compressed))
	buf = append(buf, magic[:]...)
	buf = append(buf, formatVersion, byte(s.ctype))
	buf = binary.LittleEndian.AppendUint64(buf, hash.Sum64(payload))
	buf = append(buf, compressed...)

	if err := os.WriteFile(s.Path(key), buf, 0o644); err != nil {
		return fmt.Errorf("failed to write chunk %q: %w", key, err)
	}

	return nil
}

// Load reads the coverage matrix stored under a chunk key.
//
// Returns:
//   - *rle.Matrix: The chunk's coverage matrix.
//   - error: errs.ErrChunkNotFound if no file exists for the key,
//     errs.ErrCorruptChunk if the file fails validation, or an I/O error.
func (s *FileStore) Load(key string) (*rle.Matrix, error) {
	raw, err := os.ReadFile(s.Path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", errs.ErrChunkNotFound, key)
		}

		return nil, fmt.Errorf("failed to read chunk %q: %w", key, err)
	}

	if len(raw) < headerSize || !bytes.Equal(raw[:8], magic[:]) {
		return nil, fmt.Errorf("%w: %q is not a chunk file", errs.ErrCorruptChunk, key)
	}
	if raw[8] != formatVersion {
		return nil, fmt.Errorf("%w: unsupported format version %d", errs.ErrCorruptChunk, raw[8])
	}

	codec, err := compress.GetCodec(compress.Type(raw[9]))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrCorruptChunk, err)
	}

	payload, err := codec.Decompress(raw[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrCorruptChunk, err)
	}
	if sum := hash.Sum64(payload); sum != binary.LittleEndian.Uint64(raw[10:headerSize]) {
		return nil, fmt.Errorf("%w: checksum mismatch for %q", errs.ErrCorruptChunk, key)
	}

	return decodeMatrix(payload)
}
