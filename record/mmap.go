package record

import (
	"bytes"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// mmapFile is a read-only, memory-mapped local dataset.
type mmapFile struct {
	*bytes.Reader
	f    *os.File
	data mmap.MMap
}

// openMmap maps path read-only. Empty files are not mapped.
func openMmap(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if fi.Size() == 0 {
		return &mmapFile{Reader: bytes.NewReader(nil), f: f}, nil
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &mmapFile{Reader: bytes.NewReader(m), f: f, data: m}, nil
}

// Close unmaps the file and closes it.
func (m *mmapFile) Close() error {
	if m.data != nil {
		if err := m.data.Unmap(); err != nil {
			m.f.Close()
			return err
		}
		m.data = nil
	}
	if m.f != nil {
		err := m.f.Close()
		m.f = nil
		return err
	}
	return nil
}
