package sched

import (
	"math"
	"sync/atomic"
	"testing"

	"github.com/fortytw2/leaktest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPolicies = []Policy{
	StaticPolicy(),
	{Kind: Static, Chunk: 3},
	DynamicPolicy(1),
	DynamicPolicy(10),
	GuidedPolicy(),
	{Kind: Guided, Chunk: 4},
}

func TestForVisitsEachIndexOnce(t *testing.T) {
	defer leaktest.Check(t)()

	for _, p := range testPolicies {
		for _, n := range []int{1, 2, 7, 100, 1001} {
			for _, workers := range []int{1, 2, 3, 8, 16} {
				hits := make([]atomic.Int32, n)
				For(n, workers, p, func(lo, hi int) {
					for i := lo; i < hi; i++ {
						hits[i].Add(1)
					}
				})
				for i := range hits {
					if got := hits[i].Load(); got != 1 {
						t.Fatalf("policy=%v n=%d workers=%d: index %d visited %d times", p, n, workers, i, got)
					}
				}
			}
		}
	}
}

func TestForEmpty(t *testing.T) {
	called := false
	For(0, 4, StaticPolicy(), func(lo, hi int) { called = true })
	assert.False(t, called)
}

func TestReduceMatchesSequential(t *testing.T) {
	defer leaktest.Check(t)()

	sum := func(lo, hi int) int {
		s := 0
		for i := lo; i < hi; i++ {
			s += i
		}
		return s
	}
	add := func(a, b int) int { return a + b }
	for _, p := range testPolicies {
		for _, n := range []int{0, 1, 5, 999} {
			for _, workers := range []int{0, 1, 2, 6, 32} {
				got := Reduce(n, workers, p, 0, sum, add)
				assert.Equal(t, n*(n-1)/2, got, "policy=%v n=%d workers=%d", p, n, workers)
			}
		}
	}
}

func TestReduceGathersEveryWorker(t *testing.T) {
	defer leaktest.Check(t)()

	const n = 500
	for _, p := range testPolicies {
		for _, workers := range []int{2, 4, 16} {
			got := Reduce(n, workers, p, []int(nil),
				func(lo, hi int) []int {
					out := make([]int, 0, hi-lo)
					for i := lo; i < hi; i++ {
						out = append(out, i)
					}
					return out
				},
				func(a, b []int) []int { return append(a, b...) })
			require.Len(t, got, n, "policy=%v workers=%d", p, workers)
			seen := make([]bool, n)
			for _, i := range got {
				assert.False(t, seen[i], "index %d combined twice", i)
				seen[i] = true
			}
		}
	}
}

func TestReduceMax(t *testing.T) {
	data := []int{4, -2, 17, 9, 17, 3, -50, 11}
	got := Reduce(len(data), 3, DynamicPolicy(2), math.MinInt,
		func(lo, hi int) int {
			m := math.MinInt
			for _, v := range data[lo:hi] {
				m = max(m, v)
			}
			return m
		},
		func(a, b int) int { return max(a, b) })
	assert.Equal(t, 17, got)
}

func TestParsePolicy(t *testing.T) {
	cases := map[string]Policy{
		"static":      StaticPolicy(),
		"":            StaticPolicy(),
		"Dynamic":     DynamicPolicy(0),
		"dynamic,10":  DynamicPolicy(10),
		"guided":      GuidedPolicy(),
		" guided, 4 ": {Kind: Guided, Chunk: 4},
		"static,2":    {Kind: Static, Chunk: 2},
	}
	for in, want := range cases {
		got, err := ParsePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"auto", "dynamic,x", "guided,-1"} {
		_, err := ParsePolicy(bad)
		assert.ErrorIs(t, err, ErrUnknownPolicy, bad)
	}
}

func TestPolicyTextRoundTrip(t *testing.T) {
	for _, p := range testPolicies {
		b, err := p.MarshalText()
		require.NoError(t, err)
		var q Policy
		require.NoError(t, q.UnmarshalText(b))
		assert.Equal(t, p, q)
	}
}

func TestWorkers(t *testing.T) {
	assert.Equal(t, 3, Workers(3))
	assert.Positive(t, Workers(0))
	assert.Equal(t, Workers(0), Workers(-5))
}
