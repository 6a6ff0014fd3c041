// Package download saves assets and thumbnails to disk under a detected
// file extension
package download

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/aryankumar/blox/internal/api"
	"github.com/aryankumar/blox/internal/util"
)

// maxUnwrap limits how many compression layers are peeled off
const maxUnwrap = 3

// Source fetches the raw content behind assets and thumbnails
type Source interface {
	AssetContent(ctx context.Context, id uint64) ([]byte, error)
	Thumbnail(ctx context.Context, id uint64, kind api.ThumbnailType, size string) (api.Thumbnail, error)
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Downloader writes fetched content into a directory
type Downloader struct {
	source Source
	dir    string
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Downloader
type Option func(*Downloader)

// WithClock overrides the time used in file names
func WithClock(now func() time.Time) Option {
	return func(d *Downloader) {
		d.now = now
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(d *Downloader) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// New creates a Downloader writing into dir
func New(source Source, dir string, opts ...Option) *Downloader {
	d := &Downloader{
		source: source,
		dir:    dir,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Asset downloads an asset, decompressing it if needed, and returns the
// path it was written to
func (d *Downloader) Asset(ctx context.Context, id uint64) (string, error) {
	data, err := d.source.AssetContent(ctx, id)
	if err != nil {
		return "", fmt.Errorf("fetching asset %d: %w", id, err)
	}

	payload, fileType, err := Prepare(data)
	if err != nil {
		return "", fmt.Errorf("asset %d: %w", id, err)
	}

	d.logger.Debug("detected asset type", "id", id, "mime", fileType.MIME, "size", len(payload))
	return d.Save(id, fileType.Extension, payload)
}

// Thumbnail renders and downloads a PNG thumbnail, returning its path
func (d *Downloader) Thumbnail(ctx context.Context, id uint64, kind api.ThumbnailType, size string) (string, error) {
	thumb, err := d.source.Thumbnail(ctx, id, kind, size)
	if err != nil {
		return "", fmt.Errorf("rendering thumbnail %d: %w", id, err)
	}

	data, err := d.source.Fetch(ctx, thumb.ImageURL)
	if err != nil {
		return "", fmt.Errorf("fetching thumbnail %d: %w", id, err)
	}

	return d.Save(id, typePNG.Extension, data)
}

// Save writes data to <dir>/<id>-<unix seconds>.<ext>, refusing to
// overwrite an existing file
func (d *Downloader) Save(id uint64, ext string, data []byte) (string, error) {
	if d.dir != "" {
		if err := os.MkdirAll(d.dir, 0755); err != nil {
			return "", fmt.Errorf("creating download directory: %w", err)
		}
	}

	name := strconv.FormatUint(id, 10) + "-" + strconv.FormatInt(d.now().Unix(), 10) + "." + ext
	path := filepath.Join(d.dir, name)

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(path)
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}

	d.logger.Debug("saved download", "path", path, "bytes", len(data))
	return path, nil
}

// Prepare sniffs data, peeling off gzip or zstd layers, and returns the
// final payload with its type
func Prepare(data []byte) ([]byte, FileType, error) {
	for i := 0; ; i++ {
		fileType, ok := Sniff(data)
		if !ok {
			return nil, FileType{}, util.ErrUnknownFileType
		}
		if !fileType.Compressed() {
			return data, fileType, nil
		}
		if i == maxUnwrap {
			return nil, FileType{}, errors.New("too many nested compression layers")
		}

		expanded, err := decompress(data, fileType)
		if err != nil {
			return nil, FileType{}, err
		}
		data = expanded
	}
}
