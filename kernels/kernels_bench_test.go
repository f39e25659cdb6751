package kernels

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/ic-timon/pipebench/sched"
)

func BenchmarkMinMax(b *testing.B) {
	v := randInts(1_000_000, 0, 10000, 1)
	for _, w := range []int{1, 4} {
		b.Run(fmt.Sprintf("critical/T%d", w), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				MinMaxCritical(v, w)
			}
		})
		b.Run(fmt.Sprintf("reduction/T%d", w), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				MinMaxReduction(v, w)
			}
		})
	}
}

func BenchmarkIntegral(b *testing.B) {
	for _, w := range []int{1, 4} {
		b.Run(fmt.Sprintf("T%d", w), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Integral(math.Sin, 0, 1e6, 1_000_000, w)
			}
		})
	}
}

func BenchmarkIrregularLoad(b *testing.B) {
	a := randInts(100_000, 0, 1000, 2)
	for _, p := range []sched.Policy{sched.StaticPolicy(), sched.DynamicPolicy(5), sched.GuidedPolicy()} {
		b.Run(p.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				IrregularLoad(a, 4, p)
			}
		})
	}
}

func BenchmarkSum(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	a := make([]float64, 1_000_000)
	for i := range a {
		a[i] = rng.Float64() * 1000
	}
	for _, m := range Methods {
		b.Run(m.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Sum(a, 4, m)
			}
		})
	}
}
