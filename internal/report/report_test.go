package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableStreamsRows(t *testing.T) {
	var buf bytes.Buffer
	s := NewTable(&buf)

	require.NoError(t, s.Header("Alignment", []string{"for-loop", "Aligned SSE"}))
	assert.Equal(t, "Alignment,for-loop,Aligned SSE\n", buf.String())

	require.NoError(t, s.Row("4", []float64{0.125, 0}))
	assert.Equal(t, "Alignment,for-loop,Aligned SSE\n4,0.125,0\n", buf.String(),
		"row must be visible before Close")

	require.NoError(t, s.Row("16", []float64{0.5, 0.25}))
	require.NoError(t, s.Close())
	assert.Equal(t, "Alignment,for-loop,Aligned SSE\n4,0.125,0\n16,0.5,0.25\n", buf.String())
}

func TestTableQuotesNames(t *testing.T) {
	var buf bytes.Buffer
	s := NewTable(&buf)
	require.NoError(t, s.Header("Alignment", []string{"a,b"}))
	assert.Equal(t, "Alignment,\"a,b\"\n", buf.String())
}

func TestChartLayout(t *testing.T) {
	var buf bytes.Buffer
	s := NewChart(&buf)

	require.NoError(t, s.Header("Alignment", []string{"for-loop", "Unaligned SSE"}))
	require.NoError(t, s.Row("4", []float64{1.5, 0.25}))
	require.NoError(t, s.Row("5", []float64{0, 2}))
	require.NoError(t, s.Close())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<html>\n"))
	assert.Contains(t, out, "['Alignment','for-loop','Unaligned SSE'],\n[4,1.5,0.25],\n[5,0,2]\n        ]);")
	assert.Contains(t, out, "title: 'Alignment vs. Run Time'")
	assert.True(t, strings.HasSuffix(out, "</html>\n"))
}

func TestChartEscapesNames(t *testing.T) {
	var buf bytes.Buffer
	s := NewChart(&buf)
	require.NoError(t, s.Header("Alignment", []string{"it's"}))
	assert.Contains(t, buf.String(), `['Alignment','it\'s']`)
}

func TestChartCloseWithoutHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewChart(&buf).Close())
	assert.Empty(t, buf.String())
}

func TestSinkOrderingErrors(t *testing.T) {
	for name, s := range map[string]Sink{
		"table": NewTable(&bytes.Buffer{}),
		"chart": NewChart(&bytes.Buffer{}),
	} {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, s.Row("4", []float64{1}), ErrNoHeader)
			require.NoError(t, s.Header("Alignment", []string{"x"}))
			assert.ErrorIs(t, s.Header("Alignment", []string{"x"}), ErrHeaderWritten)
			assert.Error(t, s.Row("4", []float64{1, 2}))
		})
	}
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriteErrorsPropagate(t *testing.T) {
	assert.ErrorIs(t, NewChart(failingWriter{}).Header("Alignment", []string{"x"}), errWrite)
	assert.ErrorIs(t, NewTable(failingWriter{}).Header("Alignment", []string{"x"}), errWrite)
}

func TestNew(t *testing.T) {
	assert.IsType(t, &Chart{}, New(&bytes.Buffer{}, true))
	assert.IsType(t, &Table{}, New(&bytes.Buffer{}, false))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "0", FormatValue(0))
	assert.Equal(t, "0.001234", FormatValue(0.001234))
	assert.Equal(t, "12.5", FormatValue(12.5))
}
