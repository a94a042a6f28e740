package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"math"
	"strconv"
	"strings"

	"wallet/src/utils"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Slice is one named value of a pie chart.
type Slice struct {
	Name  string
	Value float64
}

// Line is one named series of a line chart.
type Line struct {
	Name   string
	Values []float64
}

// RenderPage wraps body in the standalone page template.
func RenderPage(title string, body template.HTML) (string, error) {
	var output bytes.Buffer
	err := templates.ExecuteTemplate(&output, "page.html", map[string]interface{}{
		"Title": title,
		"Body":  body,
	})
	if err != nil {
		return "", err
	}
	return output.String(), nil
}

// GetTableHTML renders a dataframe as an HTML table. Float columns are shown
// with two decimals and NaN cells are left blank.
func GetTableHTML(df dataframe.DataFrame) (template.HTML, error) {
	names := df.Names()
	rows := make([][]string, df.Nrow())
	for i := range rows {
		rows[i] = make([]string, len(names))
	}
	for j, name := range names {
		col := df.Col(name)
		for i := 0; i < df.Nrow(); i++ {
			if col.Type() == series.Float {
				rows[i][j] = FormatFloat(col.Elem(i).Float())
			} else {
				rows[i][j] = col.Elem(i).String()
			}
		}
	}

	var output bytes.Buffer
	err := templates.ExecuteTemplate(&output, "table.html", map[string]interface{}{
		"Columns": names,
		"Rows":    rows,
	})
	if err != nil {
		return "", err
	}
	return template.HTML(output.String()), nil
}

// RenderPieChart renders a pie chart as an embeddable HTML fragment.
func RenderPieChart(title string, slices []Slice, percentage bool) template.HTML {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithAnimation(false),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "1100px",
			Height: "600px",
		}),
	)

	data := make([]opts.PieData, 0, len(slices))
	for i, s := range slices {
		if s.Value <= 0 {
			continue
		}
		data = append(data, opts.PieData{
			Name:  s.Name,
			Value: utils.RoundFloat(s.Value),
			ItemStyle: &opts.ItemStyle{
				Color: utils.GetChartColor(i),
			},
		})
	}

	formatter := "{b}: {c}"
	if percentage {
		formatter = "{b}: {c}%"
	}
	pie.AddSeries(title, data,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: formatter,
		}),
	)
	return chartHTML(pie.RenderContent())
}

// RenderLineChart renders one or more series over shared labels.
func RenderLineChart(title string, labels []string, lines []Line) template.HTML {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithAnimation(false),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithYAxisOpts(opts.YAxis{
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "1100px",
			Height: "600px",
		}),
	)
	line.SetXAxis(labels)

	for i, l := range lines {
		data := make([]opts.LineData, 0, len(l.Values))
		for _, v := range l.Values {
			data = append(data, opts.LineData{Name: FormatMonetaryValue(v), Value: utils.RoundFloat(v)})
		}
		line.AddSeries(l.Name, data,
			charts.WithLineChartOpts(opts.LineChart{
				Smooth: opts.Bool(true),
			}),
			charts.WithAreaStyleOpts(opts.AreaStyle{
				Opacity: 0.2,
			}),
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: utils.GetChartColor(i),
			}),
		)
	}
	return chartHTML(line.RenderContent())
}

// chartHTML makes the rendered chart script safe to run inside wkhtmltopdf,
// whose engine does not support let declarations.
func chartHTML(content []byte) template.HTML {
	return template.HTML(strings.ReplaceAll(string(content), "let ", "var "))
}

func FormatFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatMonetaryValue renders v with the currency symbol and thousands
// separators, e.g. ₹1,234.50.
func FormatMonetaryValue(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	whole, frac, _ := strings.Cut(strconv.FormatFloat(v, 'f', 2, 64), ".")

	var grouped strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}
	return fmt.Sprintf("%s%s%s.%s", sign, utils.CurrencySymbol, grouped.String(), frac)
}

func FormatPercentageValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "%"
}

// GeneratePDF generates a PDF from an array of HTML strings
func GeneratePDF(htmlContents []string) (*bytes.Buffer, error) {
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	// Add each HTML string as a page in the PDF
	for _, html := range htmlContents {
		page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(html)))
		pdfg.AddPage(page)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)

	err = pdfg.Create()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}
