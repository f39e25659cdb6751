package gen

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/fortytw2/leaktest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ic-timon/pipebench/record"
)

func TestRandomVectorsDeterministic(t *testing.T) {
	a := RandomVectors(10, 7, 42)
	b := RandomVectors(10, 7, 42)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, RandomVectors(10, 7, 43))
	for _, v := range a {
		require.Len(t, v, 7)
		for _, x := range v {
			assert.True(t, x >= -1 && x < 1, "%v out of range", x)
		}
	}
}

func TestIntsAndFloatsRange(t *testing.T) {
	for _, x := range Ints(1000, -3, 3, 1) {
		assert.True(t, x >= -3 && x <= 3, "%d out of range", x)
	}
	for _, x := range Floats(1000, 0, 1000, 1) {
		assert.True(t, x >= 0 && x < 1000, "%v out of range", x)
	}
}

func TestBanded(t *testing.T) {
	m := Banded(20, 2, 42)
	require.Len(t, m, 20)
	for i, row := range m {
		require.Len(t, row, 20)
		for j, x := range row {
			if j < i-2 || j > i+2 {
				assert.Equal(t, math.MaxInt, x, "(%d,%d)", i, j)
			} else {
				assert.True(t, x >= -10000 && x <= 10000, "(%d,%d)=%d", i, j, x)
			}
		}
	}
}

func TestLowerTriangular(t *testing.T) {
	m := LowerTriangular(15, 42)
	for i, row := range m {
		for j, x := range row {
			if j > i {
				assert.Equal(t, math.MaxInt, x, "(%d,%d)", i, j)
			} else {
				assert.NotEqual(t, math.MaxInt, x, "(%d,%d)", i, j)
			}
		}
	}
}

func TestWriteDatasets(t *testing.T) {
	defer leaktest.Check(t)()

	dir := filepath.Join(t.TempDir(), "data")
	sets := []Dataset{{Count: 5, Dim: 3}, {Count: 10, Dim: 2}, {Count: 1, Dim: 1}}
	paths, err := WriteDatasets(context.Background(), dir, sets, 7, 2)
	require.NoError(t, err)
	assert.Len(t, paths, 3)

	for i, ds := range sets {
		rows, err := (&record.Source{}).Load(context.Background(), filepath.Join(dir, ds.Name()), ds.Count, ds.Dim)
		require.NoError(t, err, ds.Name())
		assert.Equal(t, RandomVectors(ds.Count, ds.Dim, 7+int64(i)), rows)
	}

	// A second run leaves existing files alone.
	keep := filepath.Join(dir, sets[0].Name())
	require.NoError(t, os.WriteFile(keep, []byte("1 1 9"), 0o644))
	paths, err = WriteDatasets(context.Background(), dir, sets, 7, 0)
	require.NoError(t, err)
	assert.Empty(t, paths)
	body, err := os.ReadFile(keep)
	require.NoError(t, err)
	assert.Equal(t, "1 1 9", string(body))
}

func TestDatasetName(t *testing.T) {
	assert.Equal(t, "vectors_500_100.txt", Dataset{Count: 500, Dim: 100}.Name())
}
