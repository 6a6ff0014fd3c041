package download

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aryankumar/blox/internal/api"
	"github.com/aryankumar/blox/internal/util"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var rbxm = []byte("<roblox!\x89\xff\r\n\x1a\n\x00\x00rest of the model")

type fakeSource struct {
	asset     []byte
	assetErr  error
	thumb     api.Thumbnail
	fetched   []byte
	fetchedAt string
}

func (f *fakeSource) AssetContent(ctx context.Context, id uint64) ([]byte, error) {
	return f.asset, f.assetErr
}

func (f *fakeSource) Thumbnail(ctx context.Context, id uint64, kind api.ThumbnailType, size string) (api.Thumbnail, error) {
	return f.thumb, nil
}

func (f *fakeSource) Fetch(ctx context.Context, url string) ([]byte, error) {
	f.fetchedAt = url
	return f.fetched, nil
}

func gzipped(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

func zstded(t *testing.T, data []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatalf("zstd writer: %v", err)
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil)
}

func fixedClock() time.Time {
	return time.Unix(1700000000, 0)
}

func TestSniff(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantExt string
		wantOK  bool
	}{
		{"rbxm", rbxm, "rbxm", true},
		{"rbxmx", []byte(`<roblox xmlns:xmime="http://www.w3.org/2005/05/xmlmime" version="4">`), "rbxmx", true},
		{"png", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), "png", true},
		{"jpeg", []byte{0xff, 0xd8, 0xff, 0xe0, 0x00}, "jpg", true},
		{"ogg", []byte("OggS\x00\x02"), "ogg", true},
		{"webp", []byte("RIFF\x10\x00\x00\x00WEBPVP8 "), "webp", true},
		{"mp4", []byte("\x00\x00\x00\x18ftypmp42"), "mp4", true},
		{"gzip", []byte{0x1f, 0x8b, 0x08, 0x00}, "gz", true},
		{"lua text", []byte("print('hello world')\n"), "txt", true},
		{"binary", []byte{0x00, 0x01, 0x02, 0x03, 0xfe}, "", false},
		{"empty", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Sniff(tt.data)
			if ok != tt.wantOK {
				t.Fatalf("Sniff() ok = %v, want %v", ok, tt.wantOK)
			}
			if got.Extension != tt.wantExt {
				t.Errorf("Sniff() extension = %q, want %q", got.Extension, tt.wantExt)
			}
		})
	}
}

func TestPrepare(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantExt string
	}{
		{"plain", rbxm, "rbxm"},
		{"gzip", gzipped(t, rbxm), "rbxm"},
		{"zstd", zstded(t, rbxm), "rbxm"},
		{"gzip inside zstd", zstded(t, gzipped(t, rbxm)), "rbxm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, fileType, err := Prepare(tt.data)
			if err != nil {
				t.Fatalf("Prepare() error = %v", err)
			}
			if fileType.Extension != tt.wantExt {
				t.Errorf("extension = %q, want %q", fileType.Extension, tt.wantExt)
			}
			if !bytes.Equal(payload, rbxm) {
				t.Errorf("payload = %q, want original model", payload)
			}
		})
	}
}

func TestPrepare_Unknown(t *testing.T) {
	_, _, err := Prepare([]byte{0x00, 0x01, 0x02, 0x03})
	if !errors.Is(err, util.ErrUnknownFileType) {
		t.Errorf("Prepare() error = %v, want ErrUnknownFileType", err)
	}

	// A compressed payload that hides an unknown type is still unknown
	_, _, err = Prepare(gzipped(t, []byte{0x00, 0x01, 0x02}))
	if !errors.Is(err, util.ErrUnknownFileType) {
		t.Errorf("Prepare(gzip) error = %v, want ErrUnknownFileType", err)
	}
}

func TestPrepare_CorruptGzip(t *testing.T) {
	_, _, err := Prepare([]byte{0x1f, 0x8b, 0x08, 0x00, 0x01})
	if err == nil {
		t.Fatal("expected error for truncated gzip stream")
	}
}

func TestGunzip_Limit(t *testing.T) {
	bomb := gzipped(t, bytes.Repeat([]byte{0}, 4096))

	tests := []struct {
		name    string
		limit   int64
		wantErr bool
	}{
		{name: "within limit", limit: 4096},
		{name: "over limit", limit: 4095, wantErr: true},
		{name: "far over limit", limit: 16, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := gunzip(bomb, tt.limit)
			if tt.wantErr {
				if !errors.Is(err, util.ErrTooLarge) {
					t.Errorf("gunzip() error = %v, want ErrTooLarge", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("gunzip() error = %v", err)
			}
			if len(out) != 4096 {
				t.Errorf("gunzip() returned %d bytes, want 4096", len(out))
			}
		})
	}
}

func TestDownloader_Asset(t *testing.T) {
	dir := t.TempDir()
	source := &fakeSource{asset: gzipped(t, rbxm)}
	d := New(source, dir, WithClock(fixedClock))

	path, err := d.Asset(context.Background(), 1818)
	if err != nil {
		t.Fatalf("Asset() error = %v", err)
	}

	if want := filepath.Join(dir, "1818-1700000000.rbxm"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(written, rbxm) {
		t.Errorf("written content mismatch")
	}
}

func TestDownloader_AssetUnknownWritesNothing(t *testing.T) {
	dir := t.TempDir()
	d := New(&fakeSource{asset: []byte{0x00, 0x01}}, dir, WithClock(fixedClock))

	if _, err := d.Asset(context.Background(), 1); !errors.Is(err, util.ErrUnknownFileType) {
		t.Fatalf("Asset() error = %v, want ErrUnknownFileType", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("directory has %d entries, want 0", len(entries))
	}
}

func TestDownloader_AssetFetchError(t *testing.T) {
	d := New(&fakeSource{assetErr: util.ErrNotFound}, t.TempDir())
	if _, err := d.Asset(context.Background(), 1); !errors.Is(err, util.ErrNotFound) {
		t.Errorf("Asset() error = %v, want ErrNotFound", err)
	}
}

func TestDownloader_SaveRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	d := New(&fakeSource{}, dir, WithClock(fixedClock))

	if _, err := d.Save(1, "txt", []byte("first")); err != nil {
		t.Fatalf("first Save() error = %v", err)
	}
	if _, err := d.Save(1, "txt", []byte("second")); !errors.Is(err, os.ErrExist) {
		t.Fatalf("second Save() error = %v, want os.ErrExist", err)
	}

	got, _ := os.ReadFile(filepath.Join(dir, "1-1700000000.txt"))
	if string(got) != "first" {
		t.Errorf("file content = %q, want first", got)
	}
}

func TestDownloader_SaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "downloads")
	d := New(&fakeSource{}, dir, WithClock(fixedClock))

	path, err := d.Save(5, "png", []byte("x"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Stat(%q) error = %v", path, err)
	}
}

func TestDownloader_Thumbnail(t *testing.T) {
	dir := t.TempDir()
	source := &fakeSource{
		thumb:   api.Thumbnail{ImageURL: "https://cdn.example/thumb.png", State: "Completed"},
		fetched: []byte("\x89PNG\r\n\x1a\nimage"),
	}
	d := New(source, dir, WithClock(fixedClock))

	path, err := d.Thumbnail(context.Background(), 42, api.ThumbnailAvatar, "")
	if err != nil {
		t.Fatalf("Thumbnail() error = %v", err)
	}
	if filepath.Base(path) != "42-1700000000.png" {
		t.Errorf("file = %q, want 42-1700000000.png", filepath.Base(path))
	}
	if source.fetchedAt != "https://cdn.example/thumb.png" {
		t.Errorf("fetched %q, want the image URL", source.fetchedAt)
	}
}
