package record

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Header holds the dataset metadata stored ahead of the records.
type Header struct {
	Count int // declared number of records
	Dim   int // declared record dimension
}

// Check validates h against a request for n records of dimension dim.
func (h Header) Check(n, dim int) error {
	if h.Dim != dim {
		return &DimensionError{Expected: dim, Declared: h.Dim}
	}
	if h.Count < n {
		return &CountError{Requested: n, Declared: h.Count}
	}
	return nil
}

// maxToken bounds a single number token; longer tokens are malformed.
const maxToken = 4096

// Reader tokenises a dataset stream.
type Reader struct {
	sc     *bufio.Scanner
	header Header
	next   int // index of the next record
}

// NewReader reads and decodes the header from r.
func NewReader(r io.Reader) (*Reader, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxToken)
	sc.Split(bufio.ScanWords)
	rd := &Reader{sc: sc}
	count, err := rd.int(0)
	if err != nil {
		return nil, err
	}
	dim, err := rd.int(1)
	if err != nil {
		return nil, err
	}
	if count < 0 || dim < 0 {
		return nil, &ParseError{Record: -1, Token: fmt.Sprintf("%d %d", count, dim)}
	}
	rd.header = Header{Count: count, Dim: dim}
	return rd, nil
}

// Header returns the decoded header.
func (r *Reader) Header() Header { return r.header }

// Next decodes the next record of Header().Dim values into a fresh slice.
func (r *Reader) Next() ([]float64, error) {
	rec := make([]float64, r.header.Dim)
	for j := range rec {
		tok, err := r.token(r.next, j)
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, &ParseError{Record: r.next, Field: j, Token: tok, cause: err}
		}
		rec[j] = v
	}
	r.next++
	return rec, nil
}

func (r *Reader) int(field int) (int, error) {
	tok, err := r.token(-1, field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &ParseError{Record: -1, Field: field, Token: tok, cause: err}
	}
	return v, nil
}

func (r *Reader) token(rec, field int) (string, error) {
	if r.sc.Scan() {
		return r.sc.Text(), nil
	}
	return "", &ParseError{Record: rec, Field: field, cause: r.sc.Err()}
}

// WriteHeader writes h in text form.
func WriteHeader(w io.Writer, h Header) error {
	_, err := fmt.Fprintf(w, "%d %d\n", h.Count, h.Dim)
	return err
}

// Write writes rows as a dataset whose header declares len(rows) records.
// All rows must share the dimension of the first.
func Write(w io.Writer, rows [][]float64) error {
	dim := 0
	if len(rows) > 0 {
		dim = len(rows[0])
	}
	bw := bufio.NewWriter(w)
	if err := WriteHeader(bw, Header{Count: len(rows), Dim: dim}); err != nil {
		return err
	}
	buf := make([]byte, 0, 32)
	for i, row := range rows {
		if len(row) != dim {
			return fmt.Errorf("record %d has dimension %d, want %d", i, len(row), dim)
		}
		for j, v := range row {
			buf = buf[:0]
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
