package metrics

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ic-timon/pipebench/bench/harness"
)

// Separator ends every block of a text log.
const Separator = "--------------------------------------"

// TextLog writes sweep results as plain text blocks:
//
//	Size: 500 vectors of dimension 100 from file vectors_500_100.txt
//	Threads: 1
//	 Time: 12.5 ms (speedup: 1x, efficiency: 1)
//	...
//	--------------------------------------
type TextLog struct {
	// Describe renders a failed baseline on the last title line, as
	// "<title> (<Describe(err)>)". Nil uses err.Error().
	Describe func(error) string

	w   *bufio.Writer
	c   io.Closer
	err error
}

// NewTextLog writes to w.
func NewTextLog(w io.Writer) *TextLog {
	return &TextLog{w: bufio.NewWriter(w)}
}

// CreateTextLog creates (truncating) dir/<name>_log.txt, creating dir if needed.
func CreateTextLog(dir, name string) (*TextLog, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(filepath.Join(dir, name+"_log.txt"))
	if err != nil {
		return nil, err
	}
	l := NewTextLog(f)
	l.c = f
	return l, nil
}

// Preamble writes free-form lines followed by a separator.
func (l *TextLog) Preamble(lines ...string) {
	for _, s := range lines {
		l.line(s)
	}
	l.line(Separator)
}

// Series writes one sweep block.
func (l *TextLog) Series(s harness.Series) {
	title := s.Case.Title
	if s.Err != nil {
		desc := s.Err.Error()
		if l.Describe != nil {
			desc = l.Describe(s.Err)
		}
		if len(title) == 0 {
			title = []string{s.Case.Kernel}
		}
		for _, t := range title[:len(title)-1] {
			l.line(t)
		}
		l.line(fmt.Sprintf("%s (%s)", title[len(title)-1], desc))
		l.line(Separator)
		return
	}
	for _, t := range title {
		l.line(t)
	}
	for _, m := range s.Points {
		l.line("Threads: " + strconv.Itoa(m.Threads))
		if m.Err != nil {
			l.line(" Time: failed (" + m.Err.Error() + ")")
			continue
		}
		l.line(fmt.Sprintf(" Time: %s ms (speedup: %sx, efficiency: %s)", num(Millis(m.Avg)), num(m.Speedup), num(m.Efficiency)))
	}
	l.line(Separator)
}

// Flush writes buffered output and reports the first error seen.
func (l *TextLog) Flush() error {
	if l.err != nil {
		return l.err
	}
	return l.w.Flush()
}

// Close flushes and closes the underlying file, if the log owns one.
func (l *TextLog) Close() error {
	err := l.Flush()
	if l.c != nil {
		if cerr := l.c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func (l *TextLog) line(s string) {
	if l.err != nil {
		return
	}
	if _, err := l.w.WriteString(s); err != nil {
		l.err = err
		return
	}
	l.err = l.w.WriteByte('\n')
}

// num formats v with six significant digits.
func num(v float64) string { return strconv.FormatFloat(v, 'g', 6, 64) }
