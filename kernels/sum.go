package kernels

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/ic-timon/pipebench/sched"
)

// Method is the synchronisation used to accumulate a sum.
type Method int

const (
	// Reduction folds per-worker partials.
	Reduction Method = iota
	// Atomic adds every element with a compare-and-swap on the float bits.
	Atomic
	// Critical adds every element under a sync.Mutex.
	Critical
	// Lock adds every element under a test-and-set spin lock.
	Lock
)

// Methods lists every Method in benchmark order.
var Methods = []Method{Reduction, Atomic, Critical, Lock}

var methodNames = [...]string{"reduction", "atomic", "critical", "lock"}

func (m Method) String() string {
	if m >= 0 && int(m) < len(methodNames) {
		return methodNames[m]
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ErrUnknownMethod is returned by ParseMethod.
var ErrUnknownMethod = errors.New("unknown sum method")

// ParseMethod maps a method name to its Method.
func ParseMethod(s string) (Method, error) {
	for i, name := range methodNames {
		if strings.EqualFold(s, name) {
			return Method(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Sum adds the elements of a using method m.
func Sum(a []float64, workers int, m Method) float64 {
	switch m {
	case Reduction:
		return sched.Reduce(len(a), workers, sched.StaticPolicy(), 0.0,
			func(lo, hi int) float64 {
				var s float64
				for _, x := range a[lo:hi] {
					s += x
				}
				return s
			},
			func(x, y float64) float64 { return x + y },
		)
	case Atomic:
		var bits atomic.Uint64
		eachElement(a, workers, func(x float64) { atomicAdd(&bits, x) })
		return math.Float64frombits(bits.Load())
	case Critical:
		var (
			mu  sync.Mutex
			sum float64
		)
		eachElement(a, workers, func(x float64) {
			mu.Lock()
			sum += x
			mu.Unlock()
		})
		return sum
	case Lock:
		var (
			l   spinLock
			sum float64
		)
		eachElement(a, workers, func(x float64) {
			l.Lock()
			sum += x
			l.Unlock()
		})
		return sum
	}
	panic(fmt.Sprintf("kernels: unknown sum method %d", int(m)))
}

func eachElement(a []float64, workers int, f func(float64)) {
	sched.For(len(a), workers, sched.StaticPolicy(), func(lo, hi int) {
		for _, x := range a[lo:hi] {
			f(x)
		}
	})
}

func atomicAdd(bits *atomic.Uint64, x float64) {
	for {
		old := bits.Load()
		if bits.CompareAndSwap(old, math.Float64bits(math.Float64frombits(old)+x)) {
			return
		}
	}
}

// spinLock is a test-and-set lock that yields while contended.
type spinLock struct{ held atomic.Bool }

func (l *spinLock) Lock() {
	for !l.held.CompareAndSwap(false, true) {
		runtime.Gosched()
	}
}

func (l *spinLock) Unlock() { l.held.Store(false) }
