package gen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/ic-timon/pipebench/record"
)

// Dataset names one vector file: Count vectors of dimension Dim.
type Dataset struct {
	Count int `yaml:"n"`
	Dim   int `yaml:"d"`
}

// Name returns the conventional file name "vectors_<n>_<d>.txt".
func (d Dataset) Name() string { return fmt.Sprintf("vectors_%d_%d.txt", d.Count, d.Dim) }

// WriteDatasets writes every missing dataset into dir, at most parallel files
// at a time (<= 0 means unbounded). Existing files are left untouched.
// Dataset i is generated from seed+i. It returns the paths of the files written.
func WriteDatasets(ctx context.Context, dir string, sets []Dataset, seed int64, parallel int) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	written := make([]bool, len(sets))
	g, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for i, ds := range sets {
		path := filepath.Join(dir, ds.Name())
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil {
				return nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := record.WriteFile(path, RandomVectors(ds.Count, ds.Dim, seed+int64(i))); err != nil {
				return err
			}
			written[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var paths []string
	for i, ok := range written {
		if ok {
			paths = append(paths, filepath.Join(dir, sets[i].Name()))
		}
	}
	return paths, nil
}
