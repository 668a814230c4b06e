package tabular

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"lukechampine.com/blake3"
)

// gzipSuffix marks inputs that are decompressed transparently by Open.
const gzipSuffix = ".gz"

// file couples a decompressor with the underlying *os.File so Close
// releases both.
type file struct {
	io.Reader
	closers []io.Closer
}

// Close closes the decompressor (if any) and then the file.
func (f *file) Close() error {
	var first error
	for _, c := range f.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}

// Open opens path for reading. Files ending in ".gz" are decompressed on the
// fly; anything else is returned as-is.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tabular: open %s: %w", path, err)
	}
	if !strings.HasSuffix(path, gzipSuffix) {
		return f, nil
	}

	zr, err := gzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, &ParseError{Source: path, Err: fmt.Errorf("gzip header: %w", err)}
	}

	return &file{Reader: zr, closers: []io.Closer{zr, f}}, nil
}

// ReadFile opens path with Open and hands the stream to parse, closing it
// afterwards. It is the common "one-shot load" used by every loader.
func ReadFile[T any](path string, parse func(io.Reader, string) (T, error)) (T, error) {
	var zero T
	rc, err := Open(path)
	if err != nil {
		return zero, err
	}
	defer rc.Close()

	return parse(rc, path)
}

// Checksum returns the hex BLAKE3-256 digest of the raw bytes of path
// (compressed bytes for .gz files). Used to pin inputs in run reports.
func Checksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("tabular: checksum %s: %w", path, err)
	}
	defer f.Close()

	h := blake3.New(32, nil)
	if _, err = io.Copy(h, f); err != nil {
		return "", fmt.Errorf("tabular: checksum %s: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
