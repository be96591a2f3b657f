package sample

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Create opens the destination for Write. An empty path or "-" means
// stdout (never closed). A path ending in ".zst" is zstd-compressed.
func Create(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".zst") {
		return f, nil
	}

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &zstdFile{enc: enc, f: f}, nil
}

// zstdFile closes the encoder (flushing the frame) before the file.
type zstdFile struct {
	enc *zstd.Encoder
	f   *os.File
}

func (z *zstdFile) Write(p []byte) (int, error) { return z.enc.Write(p) }

func (z *zstdFile) Close() error {
	if err := z.enc.Close(); err != nil {
		_ = z.f.Close()
		return err
	}
	return z.f.Close()
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
