package report

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Table writes comma separated rows.
type Table struct {
	w       *csv.Writer
	columns int
	started bool
}

// NewTable returns a CSV sink writing to w.
func NewTable(w io.Writer) *Table {
	return &Table{w: csv.NewWriter(w)}
}

// Header implements Sink.
func (t *Table) Header(label string, names []string) error {
	if t.started {
		return ErrHeaderWritten
	}
	t.started = true
	t.columns = len(names)

	record := make([]string, 0, len(names)+1)
	record = append(record, label)
	record = append(record, names...)
	return t.write(record)
}

// Row implements Sink.
func (t *Table) Row(label string, values []float64) error {
	if !t.started {
		return ErrNoHeader
	}
	if len(values) != t.columns {
		return fmt.Errorf("report: row %s has %d values, header has %d", label, len(values), t.columns)
	}

	record := make([]string, 0, len(values)+1)
	record = append(record, label)
	for _, v := range values {
		record = append(record, FormatValue(v))
	}
	return t.write(record)
}

// Close implements Sink.
func (t *Table) Close() error {
	t.w.Flush()
	return t.w.Error()
}

func (t *Table) write(record []string) error {
	if err := t.w.Write(record); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	t.w.Flush()
	return t.w.Error()
}
