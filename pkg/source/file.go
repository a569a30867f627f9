package source

import (
	"compress/bzip2"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
)

// Compression names the container a file is stored in
type Compression string

const (
	CompressionAuto  Compression = "auto"
	CompressionNone  Compression = "none"
	CompressionGzip  Compression = "gzip"
	CompressionBzip2 Compression = "bzip2"
	CompressionZip   Compression = "zip"
)

// ParseCompression validates a compression name. An empty name means auto.
func ParseCompression(s string) (Compression, error) {
	switch c := Compression(strings.ToLower(strings.TrimSpace(s))); c {
	case "":
		return CompressionAuto, nil
	case CompressionAuto, CompressionNone, CompressionGzip, CompressionBzip2, CompressionZip:
		return c, nil
	default:
		return "", fmt.Errorf("unknown compression %q", s)
	}
}

// Detect picks the compression from a file extension
func Detect(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return CompressionGzip
	case ".bz2", ".bzip2":
		return CompressionBzip2
	case ".zip":
		return CompressionZip
	default:
		return CompressionNone
	}
}

// Config controls how a file is opened
type Config struct {
	Compression Compression
	BufferSize  int
}

// File is a Source reading a possibly compressed file
type File struct {
	*Reader
	Path        string
	Compression Compression // Resolved compression, never auto
	Entry       string      // Name of the zip entry being read

	closers []io.Closer
}

// Open opens path and layers the configured decompressor over it.
// Zip archives are read from their first file entry.
func Open(path string, cfg Config) (*File, error) {
	comp, err := ParseCompression(string(cfg.Compression))
	if err != nil {
		return nil, err
	}
	if comp == CompressionAuto {
		comp = Detect(path)
	}

	f := &File{Path: path, Compression: comp}
	var r io.Reader

	switch comp {
	case CompressionZip:
		zr, err := zip.OpenReader(path)
		if err != nil {
			return nil, fmt.Errorf("open zip %s: %w", path, err)
		}
		f.closers = append(f.closers, zr)

		var entry *zip.File
		for _, zf := range zr.File {
			if !zf.FileInfo().IsDir() {
				entry = zf
				break
			}
		}
		if entry == nil {
			f.Close()
			return nil, fmt.Errorf("zip %s has no file entries", path)
		}
		rc, err := entry.Open()
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open zip entry %s: %w", entry.Name, err)
		}
		f.closers = append(f.closers, rc)
		f.Entry = entry.Name
		r = rc

	default:
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		f.closers = append(f.closers, file)
		r = file

		switch comp {
		case CompressionGzip:
			gz, err := gzip.NewReader(file)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("open gzip %s: %w", path, err)
			}
			f.closers = append(f.closers, gz)
			r = gz
		case CompressionBzip2:
			r = bzip2.NewReader(file)
		}
	}

	f.Reader = NewSize(r, cfg.BufferSize)
	return f, nil
}

// Close releases the decompressors and the file, innermost first
func (f *File) Close() error {
	var errs []error
	for i := len(f.closers) - 1; i >= 0; i-- {
		if err := f.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	f.closers = nil
	return errors.Join(errs...)
}
