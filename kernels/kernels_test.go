package kernels

import (
	"math"
	"math/rand"
	"testing"

	"github.com/fortytw2/leaktest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ic-timon/pipebench/sched"
)

var (
	testWorkers  = []int{1, 2, 3, 4, 8}
	testPolicies = []sched.Policy{sched.StaticPolicy(), sched.DynamicPolicy(10), sched.DynamicPolicy(5), sched.GuidedPolicy()}
)

func randInts(n, lo, hi int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	v := make([]int, n)
	for i := range v {
		v[i] = lo + rng.Intn(hi-lo+1)
	}
	return v
}

func TestMinMax(t *testing.T) {
	defer leaktest.Check(t)()

	v := randInts(10007, 0, 10000, 1)
	v[1234] = -5
	v[9999] = 20000
	for _, w := range testWorkers {
		lo, hi := MinMaxCritical(v, w)
		assert.Equal(t, -5, lo, "critical workers=%d", w)
		assert.Equal(t, 20000, hi, "critical workers=%d", w)

		lo, hi = MinMaxReduction(v, w)
		assert.Equal(t, -5, lo, "reduction workers=%d", w)
		assert.Equal(t, 20000, hi, "reduction workers=%d", w)
	}
}

func TestMinMaxEmpty(t *testing.T) {
	lo, hi := MinMaxCritical(nil, 4)
	assert.Equal(t, math.MaxInt, lo)
	assert.Equal(t, math.MinInt, hi)
	lo, hi = MinMaxReduction(nil, 4)
	assert.Equal(t, math.MaxInt, lo)
	assert.Equal(t, math.MinInt, hi)
}

func TestScalarProduct(t *testing.T) {
	defer leaktest.Check(t)()

	a := randInts(50001, 0, 1000, 2)
	b := randInts(50001, 0, 1000, 3)
	var want int64
	for i := range a {
		want += int64(a[i]) * int64(b[i])
	}
	for _, w := range testWorkers {
		assert.Equal(t, want, ScalarProduct(a, b, w), "workers=%d", w)
	}
	assert.Equal(t, int64(1*4+2*5), ScalarProduct([]int{1, 2, 3}, []int{4, 5}, 2))
	assert.Zero(t, ScalarProduct(nil, b, 2))
}

func TestIntegral(t *testing.T) {
	defer leaktest.Check(t)()

	// Over [0, 2*pi*k] the integral of sin vanishes; over [0, pi] it is 2.
	for _, w := range testWorkers {
		assert.InDelta(t, 2.0, Integral(math.Sin, 0, math.Pi, 100000, w), 1e-8, "workers=%d", w)
		assert.InDelta(t, 0.0, Integral(math.Sin, 0, 4*math.Pi, 100000, w), 1e-8, "workers=%d", w)
	}
	assert.Zero(t, Integral(math.Sin, 0, 1, 0, 4))

	// Midpoint rule on one interval.
	assert.Equal(t, 3.0, Integral(func(x float64) float64 { return 2 * x }, 1, 2, 1, 1))
}

func TestMaxOfMins(t *testing.T) {
	defer leaktest.Check(t)()

	rng := rand.New(rand.NewSource(4))
	m := make([][]int, 301)
	want := math.MinInt
	for i := range m {
		m[i] = make([]int, 57)
		rowMin := math.MaxInt
		for j := range m[i] {
			m[i][j] = rng.Intn(20001) - 10000
			rowMin = min(rowMin, m[i][j])
		}
		want = max(want, rowMin)
	}
	for _, p := range testPolicies {
		for _, w := range testWorkers {
			assert.Equal(t, want, MaxOfMins(m, w, p), "policy=%v workers=%d", p, w)
		}
	}
}

func TestMaxOfMinsEdges(t *testing.T) {
	assert.Equal(t, math.MinInt, MaxOfMins(nil, 4, sched.StaticPolicy()))
	assert.Equal(t, 3, MaxOfMins([][]int{{5, 3, 9}}, 4, sched.StaticPolicy()))
	assert.Equal(t, math.MaxInt, MaxOfMins([][]int{{1}, {}}, 2, sched.StaticPolicy()))
}

func TestIrregularLoad(t *testing.T) {
	defer leaktest.Check(t)()

	a := randInts(2000, 0, 1000, 5)
	var want float64
	for _, x := range a {
		for j := 0; j < x%1000; j++ {
			want += math.Sin(float64(j) * 0.001)
		}
	}
	for _, p := range testPolicies {
		for _, w := range testWorkers {
			assert.InEpsilon(t, want, IrregularLoad(a, w, p), 1e-9, "policy=%v workers=%d", p, w)
		}
	}
	assert.Zero(t, IrregularLoad([]int{0, 1000, -3}, 2, sched.StaticPolicy()))
}

func TestSumMethods(t *testing.T) {
	defer leaktest.Check(t)()

	rng := rand.New(rand.NewSource(6))
	a := make([]float64, 20000)
	var want float64
	for i := range a {
		a[i] = rng.Float64() * 1000
		want += a[i]
	}
	for _, m := range Methods {
		for _, w := range testWorkers {
			assert.InEpsilon(t, want, Sum(a, w, m), 1e-9, "method=%v workers=%d", m, w)
		}
		assert.Zero(t, Sum(nil, 4, m), "method=%v", m)
	}
}

func TestParseMethod(t *testing.T) {
	for _, m := range Methods {
		got, err := ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := ParseMethod("ATOMIC")
	require.NoError(t, err)
	assert.Equal(t, Atomic, got)

	_, err = ParseMethod("semaphore")
	assert.ErrorIs(t, err, ErrUnknownMethod)
}
