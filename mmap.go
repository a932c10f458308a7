package stationstats

import (
	"fmt"
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

// InputFile is a measurements file mapped into memory. The mapping is
// read-only and shared, so the whole file behaves like one immutable byte
// buffer whose sub-slices cost nothing.
type InputFile struct {
	f    *os.File
	data mmap.MMap
}

// OpenInput opens and maps the named file and hints the kernel that the
// mapping will be read sequentially and in full. An empty file yields an
// empty buffer without a mapping, since mapping zero bytes fails on most
// platforms.
func OpenInput(path string) (*InputFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat: %w", err)
	}
	if fi.Size() == 0 {
		return &InputFile{f: f}, nil
	}
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap: %w", err)
	}
	advise(data)
	return &InputFile{f: f, data: data}, nil
}

// Bytes returns the file contents; the slice stays valid until Close.
func (in *InputFile) Bytes() []byte {
	return in.data
}

// Close unmaps the buffer and closes the file. Slices obtained from Bytes
// must not be used afterwards.
func (in *InputFile) Close() error {
	if in.data != nil {
		data := in.data
		in.data = nil
		if err := data.Unmap(); err != nil {
			in.f.Close()
			return fmt.Errorf("munmap: %w", err)
		}
	}
	return in.f.Close()
}
