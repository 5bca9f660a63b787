package report

import (
	"fmt"
	"io"
	"strings"
)

const chartPrologue = `<html>
  <head>
    <script type="text/javascript" src="https://www.google.com/jsapi"></script>
    <script type="text/javascript">
      google.load("visualization", "1", {packages:["corechart"]});
      google.setOnLoadCallback(drawChart);
      function drawChart() {
        var data = google.visualization.arrayToDataTable([
`

const chartEpilogue = `        ]);
        var options = {
          title: 'Alignment vs. Run Time'
        };
        var chart = new google.visualization.LineChart(document.getElementById('chart_div'));
        chart.draw(data, options);
      }
    </script>
  </head>
  <body>
    <div id="chart_div" style="width: 900px; height: 500px;"></div>
  </body>
</html>
`

var jsQuote = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`)

// Chart writes rows as a Google Visualization data table embedded in an
// HTML page with a line chart of run time over alignment.
type Chart struct {
	w       io.Writer
	columns int
	started bool
}

// NewChart returns an HTML chart sink writing to w.
func NewChart(w io.Writer) *Chart {
	return &Chart{w: w}
}

// Header implements Sink.
func (c *Chart) Header(label string, names []string) error {
	if c.started {
		return ErrHeaderWritten
	}
	c.started = true
	c.columns = len(names)

	var b strings.Builder
	b.WriteString(chartPrologue)
	b.WriteString("['")
	b.WriteString(jsQuote.Replace(label))
	b.WriteString("'")
	for _, n := range names {
		b.WriteString(",'")
		b.WriteString(jsQuote.Replace(n))
		b.WriteString("'")
	}
	b.WriteString("]")
	return c.write(b.String())
}

// Row implements Sink.
func (c *Chart) Row(label string, values []float64) error {
	if !c.started {
		return ErrNoHeader
	}
	if len(values) != c.columns {
		return fmt.Errorf("report: row %s has %d values, header has %d", label, len(values), c.columns)
	}

	var b strings.Builder
	b.WriteString(",\n[")
	b.WriteString(label)
	for _, v := range values {
		b.WriteString(",")
		b.WriteString(FormatValue(v))
	}
	b.WriteString("]")
	return c.write(b.String())
}

// Close implements Sink. It writes the closing markup, or nothing if no
// header was written.
func (c *Chart) Close() error {
	if !c.started {
		return nil
	}
	return c.write("\n" + chartEpilogue)
}

func (c *Chart) write(s string) error {
	if _, err := io.WriteString(c.w, s); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}
