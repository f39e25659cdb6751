package record

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// WriteFile writes rows to path, compressing by suffix (.zst, .lz4).
// The file is written to a temporary name and renamed into place.
func WriteFile(path string, rows [][]float64) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if err := writeCompressed(f, Location{Key: path}.Compression(), rows); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

func writeCompressed(w io.Writer, codec string, rows [][]float64) error {
	switch codec {
	case "zstd":
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return err
		}
		if err := Write(enc, rows); err != nil {
			enc.Close()
			return err
		}
		return enc.Close()
	case "lz4":
		enc := lz4.NewWriter(w)
		if err := Write(enc, rows); err != nil {
			enc.Close()
			return err
		}
		return enc.Close()
	}
	return Write(w, rows)
}
