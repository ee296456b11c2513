package lisgraph

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"

	"github.com/carbocation/pfx"
)

// Gzip byte code signature, per https://stackoverflow.com/a/19127748/199475
var gzipSig = []byte{0x1f, 0x8b, 0x08}

// Open opens a datastore file for reading, transparently decompressing it
// when it is gzipped. Detection is by magic bytes rather than by filename,
// since datastore mirrors ship both *.tsv and *.tsv.gz.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(ExpandHome(path))
	if err != nil {
		return nil, pfx.Err(err)
	}

	buff := make([]byte, len(gzipSig))
	if _, err := io.ReadFull(f, buff); err != nil {
		// Shorter than a gzip header; must be plain text.
		if _, err := f.Seek(0, 0); err != nil {
			f.Close()
			return nil, pfx.Err(err)
		}
		return f, nil
	}
	if _, err := f.Seek(0, 0); err != nil {
		f.Close()
		return nil, pfx.Err(err)
	}

	if !bytes.Equal(buff, gzipSig) {
		return f, nil
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, pfx.Err(err)
	}

	return &gzipReadCloser{gz: gz, f: f}, nil
}

type gzipReadCloser struct {
	gz *gzip.Reader
	f  *os.File
}

func (c *gzipReadCloser) Read(p []byte) (int, error) {
	return c.gz.Read(p)
}

func (c *gzipReadCloser) Close() error {
	c.gz.Close()

	return c.f.Close()
}
