package export

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"strconv"

	"github.com/rollingthunder/specfun/grid"
)

// Table is one titled grid of numbers with any number of data sets sharing
// its headers. Each data set is indexed [row][column].
type Table struct {
	Title                  string
	ColHeaders, RowHeaders []string
	Data                   map[string][][]float64
}

// WriteTablesFile renders tables into an HTML document at filePath.
func WriteTablesFile(tables []Table, filePath string) (err error) {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	return WriteTables(tables, file)
}

func tableSanityCheck(table *Table) error {
	cols := len(table.ColHeaders)
	rows := len(table.RowHeaders)

	for name, dataSet := range table.Data {
		if actualRows := len(dataSet); actualRows != rows {
			return fmt.Errorf("%w: %s/%s has %d rows for %d headers", ErrShape, table.Title, name, actualRows, rows)
		}
		for _, row := range dataSet {
			if len(row) != cols {
				return fmt.Errorf("%w: %s/%s has %d columns for %d headers", ErrShape, table.Title, name, len(row), cols)
			}
		}
	}

	return nil
}

// WriteTables renders tables as one HTML document.
func WriteTables(tables []Table, output io.Writer) error {
	for t := range tables {
		if err := tableSanityCheck(&tables[t]); err != nil {
			return err
		}
	}

	if err := tablesDocument.Execute(output, tables); err != nil {
		return fmt.Errorf("export: executing template: %w", err)
	}
	return nil
}

// TableOneD lays out one-dimensional results with a row per domain point and
// the columns re, im and error.
func TableOneD(title string, d grid.OneD, values grid.Results[[]complex128], errs grid.Results[[]float64]) Table {
	t := Table{
		Title:      title,
		ColHeaders: []string{"re", "im", "error"},
		RowHeaders: headers(d.Values),
		Data:       make(map[string][][]float64, values.Len()),
	}
	for k, name := range values.Names {
		rows := make([][]float64, d.Len())
		for i, z := range values.Values[k] {
			rows[i] = []float64{real(z), imag(z), errs.Values[k][i]}
		}
		t.Data[name] = rows
	}
	return t
}

// TablesTwoD lays out each two-dimensional result as its own table with
// x across and y down, holding data sets re, im and error.
func TablesTwoD(title string, d grid.TwoD, values grid.Results[[][]complex128], errs grid.Results[[][]float64]) []Table {
	tables := make([]Table, 0, values.Len())
	for k, name := range values.Names {
		re := make([][]float64, len(d.Y))
		im := make([][]float64, len(d.Y))
		for j, row := range values.Values[k] {
			re[j] = make([]float64, len(row))
			im[j] = make([]float64, len(row))
			for i, z := range row {
				re[j][i], im[j][i] = real(z), imag(z)
			}
		}
		tables = append(tables, Table{
			Title:      title + " - " + name,
			ColHeaders: headers(d.X),
			RowHeaders: headers(d.Y),
			Data: map[string][][]float64{
				"re":    re,
				"im":    im,
				"error": errs.Values[k],
			},
		})
	}
	return tables
}

func headers(values []float64) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.FormatFloat(v, 'g', 6, 64)
	}
	return out
}

var tablesDocument = template.Must(template.New("document").Funcs(template.FuncMap{
	"mod": func(a, b int) int { return a % b },
}).Parse(document))

const document = `
<!DOCTYPE html>
<html>
<head>
    <style type="text/css">
        .results
        {
            font-family:"Trebuchet MS", Arial, Helvetica, sans-serif;
            width:100%;
            border-collapse:collapse;
        }
        .results td, .results th
        {
            font-size:1em;
            border:1px solid #98bf21;
            padding:3px 7px 2px 7px;
        }
        .results th
        {
            font-size:1.1em;
            text-align:left;
            padding-top:5px;
            padding-bottom:4px;
            background-color:#A7C942;
            color:#ffffff;
        }
        .results tr.alt td
        {
            color:#000000;
            background-color:#EAF2D3;
        }
        caption {
            text-align: left;
        }
    </style>
</head>
<body>
{{range $table := .}}
	<h2>{{.Title}}</h2>
	{{range $dataTitle, $data := $table.Data}}
	<table class="results">
	  <caption>{{$table.Title}} - {{$dataTitle}}</caption>
	  <tr>
	  	<th></th>
		{{range $table.ColHeaders}}<th>{{.}}</th>{{end}}
	  </tr>
	  {{range $index, $element := $data}}
	  <tr {{if eq (mod $index 2) 1}}class="alt"{{end}}>
		<th>{{index $table.RowHeaders $index}}</th>
		{{range $element}}<td>{{printf "%.10g" .}}</td>{{end}}
	  </tr>
	  {{end}}
	</table>
	{{end}}
{{end}}
</body>
</html>
`
