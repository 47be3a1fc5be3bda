package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"

	"tableflip.dev/tripcraft/pkg/itinerary"
)

// Key is the fixed storage key of the itinerary blob.
const Key = "tripcraft_itinerary_v2"

var (
	// ErrNotFound means no itinerary has been saved yet.
	ErrNotFound = errors.New("store: itinerary not found")
	// ErrCorrupt means the stored blob could not be parsed.
	ErrCorrupt = errors.New("store: itinerary data is corrupt")
)

// Persistence loads and saves the single itinerary blob.
type Persistence interface {
	Load(ctx context.Context) (*itinerary.Itinerary, error)
	Save(ctx context.Context, it *itinerary.Itinerary) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Backends accepted by Load.
const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
)

// Option configures Load.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger used by Watch. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Load creates the Persistence selected by cfg.Backend. Diskv is used when no
// backend is named. Callers should Close the result when it implements
// io.Closer.
func Load(cfg Config, opts ...Option) (Persistence, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	switch cfg.Backend() {
	case "", BackendDiskv:
	case BackendSQLite:
		return openSQLite(basePath, o.logger)
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend())
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath, logger: o.logger}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	logger   *zap.Logger
}

func (p *persistence) Load(ctx context.Context) (*itinerary.Itinerary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !p.d.Has(Key) {
		return nil, ErrNotFound
	}
	// Bypass the cache so writes from other processes are seen.
	rc, err := p.d.ReadStream(Key, true)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: read %s: %w", Key, err)
	}
	defer rc.Close()
	val, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", Key, err)
	}
	it, err := itinerary.Unmarshal(val)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return it, nil
}

func (p *persistence) Save(ctx context.Context, it *itinerary.Itinerary) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := itinerary.Marshal(it)
	if err != nil {
		return fmt.Errorf("store: encode itinerary: %w", err)
	}
	if err := p.d.Write(Key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", Key, err)
	}
	return nil
}

// blobPath is the file diskv writes Key to, relative to the base path.
func blobPath() []string {
	pk := keyToPathTransform(Key)
	return append(append([]string{}, pk.Path...), pk.FileName)
}

// keyToPathTransform nests keys by their underscore separated segments, so
// tripcraft_itinerary_v2 lives at tripcraft/itinerary/v2.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "_")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s_%s", strings.Join(pathKey.Path, "_"), pathKey.FileName)
}
