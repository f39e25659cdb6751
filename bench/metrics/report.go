package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/ic-timon/pipebench/bench/harness"
)

// LatencyStats summarises a set of timings in milliseconds.
type LatencyStats struct {
	MinMs float64
	P50Ms float64
	MaxMs float64
	AvgMs float64
	N     int
}

// Percentile returns the p-th percentile (0-100) of sorted.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}
	return sorted[int(float64(len(sorted)-1)*p/100)]
}

// LatencyStatsFromDurations computes LatencyStats over durations.
func LatencyStatsFromDurations(durations []time.Duration) LatencyStats {
	if len(durations) == 0 {
		return LatencyStats{}
	}
	ms := make([]float64, len(durations))
	var sum float64
	for i, d := range durations {
		ms[i] = Millis(d)
		sum += ms[i]
	}
	slices.Sort(ms)
	return LatencyStats{
		MinMs: ms[0],
		P50Ms: Percentile(ms, 50),
		MaxMs: ms[len(ms)-1],
		AvgMs: sum / float64(len(ms)),
		N:     len(ms),
	}
}

// Millis converts d to fractional milliseconds.
func Millis(d time.Duration) float64 { return float64(d.Nanoseconds()) / 1e6 }

// ReportPath returns dir/<kernel>_<yyyymmdd>.csv for today.
func ReportPath(dir, kernel string) string {
	return filepath.Join(dir, kernel+"_"+time.Now().Format("20060102")+".csv")
}

var csvHeader = []string{"kernel", "variant", "size", "threads", "runs", "avg_ms", "min_ms", "p50_ms", "max_ms", "speedup", "efficiency", "error"}

// WriteCSV writes one row per measured worker count of every series, and one
// row with threads=1 and the error for series whose baseline failed.
func WriteCSV(series []harness.Series, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Write(csvHeader)
	for _, s := range series {
		c := s.Case
		if s.Err != nil {
			w.Write([]string{c.Kernel, c.Variant, itoa(c.Size), "1", "0", "", "", "", "", "", "", s.Err.Error()})
			continue
		}
		for _, m := range s.Points {
			st := LatencyStatsFromDurations(m.Runs)
			row := []string{c.Kernel, c.Variant, itoa(c.Size), strconv.Itoa(m.Threads), strconv.Itoa(st.N)}
			if m.Err != nil {
				row = append(row, "", "", "", "", "", "", m.Err.Error())
			} else {
				row = append(row, ftoa(Millis(m.Avg)), ftoa(st.MinMs), ftoa(st.P50Ms), ftoa(st.MaxMs),
					strconv.FormatFloat(m.Speedup, 'f', 3, 64), strconv.FormatFloat(m.Efficiency, 'f', 3, 64), "")
			}
			w.Write(row)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func itoa(v int64) string { return strconv.FormatInt(v, 10) }

func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', 3, 64) }
