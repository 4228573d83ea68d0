package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/bev-tools/guidance/pkg/models/domain"
)

// Reporter outputs forecast reports to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *domain.ForecastReport) error {
	tmpl := `
{{.Title}} ({{.Scope}} view)
Last actual month index: {{.LastActualMonthIndex}}
Total volume: {{printf "%.1f" .TotalVolume}}
Total GSV: {{printf "%.2f" .TotalGSV}}

{{range .Sections}}
=== {{.Title}} ===
{{range $key, $value := .Summary}}
{{$key}}: {{printf "%.2f" $value}}
{{end}}
{{range .Details}}
- {{.Name}}: TY {{printf "%.1f" .Volume}} / PY {{printf "%.1f" .PYVolume}} / GSV {{printf "%.2f" .GSV}}
  {{.Description}}
{{end}}
{{end}}
`
	t, err := template.New("report").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
