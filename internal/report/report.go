// Package report renders sweep results as they are produced.
//
// A Sink receives one header and then one row per alignment offset. Rows are
// written through immediately; nothing is buffered across rows.
package report

import (
	"errors"
	"io"
	"strconv"
)

// ErrHeaderWritten is returned when Header is called twice.
var ErrHeaderWritten = errors.New("report: header already written")

// ErrNoHeader is returned when Row is called before Header.
var ErrNoHeader = errors.New("report: row written before header")

// Sink consumes benchmark rows.
type Sink interface {
	// Header writes the first row: the row label column name followed by one
	// name per operation in declared order.
	Header(label string, names []string) error

	// Row writes one result row. values has one entry per operation name.
	Row(label string, values []float64) error

	// Close finishes the output. It does not close the underlying writer.
	Close() error
}

// New returns the chart sink when chart is set and the plain table sink
// otherwise.
func New(w io.Writer, chart bool) Sink {
	if chart {
		return NewChart(w)
	}
	return NewTable(w)
}

// FormatValue formats seconds with the shortest exact representation.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
