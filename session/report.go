package session

import (
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/plus3/termtris/loop"
)

// Report is the end-of-session summary.
type Report struct {
	ID       string
	Duration time.Duration
	Ticks    uint64
	Actions  int

	Lines     int
	Locks     int
	Holds     int
	HardDrops int
	Dealt     []KindCount
	Clears    []ClearCount

	GameOver bool
	Reason   string

	Systems []loop.SystemStats
}

type KindCount struct {
	Kind  string
	Count int
}

type ClearCount struct {
	Rows  int
	Count int
}

const reportTemplate = `
# Session {{.ID}}

## Play
- **Duration:** {{.Duration | round}}
- **Ticks:** {{.Ticks}}
- **Actions applied:** {{.Actions}}
- **Outcome:** {{if .GameOver}}game over{{else}}unfinished{{end}}{{with .Reason}} ({{.}}){{end}}

## Board
- **Lines cleared:** {{.Lines}}
- **Pieces locked:** {{.Locks}}
- **Hard drops:** {{.HardDrops}}
- **Holds:** {{.Holds}}
{{- range .Clears}}
- **{{.Rows}}-row clears:** {{.Count}}
{{- end}}

## Pieces dealt
{{range .Dealt}}- {{.Kind}}: {{.Count}}
{{end}}
## Systems
{{range .Systems}}- {{printf "%-14s" .Name}} avg {{.AvgDuration}}, max {{.MaxDuration}} over {{.ExecutionCount}} runs
{{end}}`

var reportFuncs = template.FuncMap{
	"round": func(d time.Duration) string {
		return d.Round(time.Millisecond).String()
	},
}

var reportTmpl = template.Must(template.New("report").Funcs(reportFuncs).Parse(reportTemplate))

// Generate writes the report as markdown.
func (r *Report) Generate(w io.Writer) error {
	if err := reportTmpl.Execute(w, r); err != nil {
		return fmt.Errorf("failed to generate session report: %w", err)
	}
	return nil
}
