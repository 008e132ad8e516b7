package store

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/diary/pkg/errs"
)

// tempDir receives whole documents before they are renamed into place, so an
// interrupted write never leaves half a document behind.
const tempDir = ".diary-tmp"

// Documents stores diary documents keyed by their slash separated path
// relative to the diary root, e.g. "2024/March_2024.tex".
type Documents interface {
	Has(key string) bool
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	// Keys lists every stored key, sorted.
	Keys(ctx context.Context) []string
	// HasDir reports whether the directory dir exists under the root.
	HasDir(dir string) bool
	// Path is the filesystem path of key.
	Path(key string) string
	BasePath() string
}

// Load creates Documents backed by diskv using the provided config.
func Load(cfg Config) (Documents, error) {
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
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, errs.Filesystem("create", basePath, err)
	}
	return &documents{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      0, // documents change outside the process
		TempDir:           filepath.Join(basePath, tempDir),
		PathPerm:          0o755,
		FilePerm:          0o644,
	}), basePath: basePath}, nil
}

type documents struct {
	d        *diskv.Diskv
	basePath string
}

func (p *documents) BasePath() string {
	return p.basePath
}

func (p *documents) Path(key string) string {
	return filepath.Join(p.basePath, filepath.FromSlash(key))
}

func (p *documents) Has(key string) bool {
	return p.d.Has(key)
}

func (p *documents) Read(key string) ([]byte, error) {
	rc, err := p.d.ReadStream(key, true)
	if err != nil {
		return nil, errs.Filesystem("read", p.Path(key), err)
	}
	defer rc.Close()
	val, err := io.ReadAll(rc)
	if err != nil {
		return nil, errs.Filesystem("read", p.Path(key), err)
	}
	return val, nil
}

func (p *documents) Write(key string, data []byte) error {
	if err := p.d.Write(key, data); err != nil {
		return errs.Filesystem("write", p.Path(key), err)
	}
	return nil
}

func (p *documents) HasDir(dir string) bool {
	info, err := os.Stat(p.Path(dir))
	return err == nil && info.IsDir()
}

func (p *documents) Keys(ctx context.Context) []string {
	all := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if strings.HasPrefix(key, tempDir+"/") {
			continue
		}
		all = append(all, key)
	}
	sort.Strings(all)
	return all
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return strings.Join(pathKey.Path, "/") + "/" + pathKey.FileName
}
