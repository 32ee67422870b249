// Package report renders search results and AND-OR solutions as aligned
// text or as JSON.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/lvsearch/aostar"
	"github.com/katalvlaran/lvsearch/batch"
	"github.com/katalvlaran/lvsearch/search"
)

// ErrUnknownFormat is returned by ParseFormat for an unsupported name.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects the rendering.
type Format string

// Supported formats.
const (
	Text Format = "text"
	JSON Format = "json"
)

// ParseFormat maps "text" or "json" to a Format. The empty string is Text.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case "", Text:
		return Text, nil
	case JSON:
		return JSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Colors for the status column.
var (
	colorOK   = lipgloss.Color("#2CD7C7")
	colorWarn = lipgloss.Color("#F4D03F")
	colorErr  = lipgloss.Color("#E74C3C")
)

// Printer writes reports to one writer. Not safe for concurrent use.
type Printer struct {
	w        io.Writer
	format   Format
	renderer *lipgloss.Renderer
	styles   map[string]lipgloss.Style
}

// statusCol is the STATUS column of the batch table.
const statusCol = 3

// Option configures a Printer.
type Option func(*Printer)

// WithColor colours the status of text reports and draws batch tables with
// a border. The colours only show when the writer is a terminal that
// supports them.
func WithColor(on bool) Option {
	return func(p *Printer) {
		if !on {
			p.renderer, p.styles = nil, nil
			return
		}
		r := lipgloss.NewRenderer(p.w)
		p.renderer = r
		p.styles = map[string]lipgloss.Style{
			search.Succeeded.String(): r.NewStyle().Foreground(colorOK).Bold(true),
			search.Exhausted.String(): r.NewStyle().Foreground(colorWarn),
			"error":                   r.NewStyle().Foreground(colorErr).Bold(true),
		}
	}
}

// New returns a Printer writing f to w.
func New(w io.Writer, f Format, opts ...Option) *Printer {
	p := &Printer{w: w, format: f}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Printer) status(s string) string {
	if st, ok := p.styles[s]; ok {
		return st.Render(s)
	}
	return s
}

// Result writes one search result under name.
func (p *Printer) Result(name string, res search.Result[string]) error {
	if p.format == JSON {
		return p.json(newResultDoc(name, res))
	}

	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	if name != "" {
		fmt.Fprintf(tw, "problem\t%s\n", name)
	}
	fmt.Fprintf(tw, "strategy\t%s\n", res.Strategy)
	fmt.Fprintf(tw, "status\t%s\n", p.status(res.Status.String()))
	if res.Reason != search.ReasonNone {
		fmt.Fprintf(tw, "reason\t%s\n", res.Reason)
	}
	if res.Found() {
		fmt.Fprintf(tw, "cost\t%s\n", num(res.Cost))
		fmt.Fprintf(tw, "path\t%s\n", strings.Join(res.Path, " "))
		fmt.Fprintf(tw, "states\t%s\n", strings.Join(res.States, " "))
	}
	fmt.Fprintf(tw, "expanded\t%d\n", res.NodesExpanded)
	fmt.Fprintf(tw, "elapsed\t%s\n", res.Elapsed.Round(time.Microsecond))

	return tw.Flush()
}

// Outcomes writes a batch as one table row per job, in job order.
func (p *Printer) Outcomes(outs []batch.Outcome[string]) error {
	if p.format == JSON {
		docs := make([]resultDoc, 0, len(outs))
		for _, o := range outs {
			d := newResultDoc(o.Name, o.Result)
			d.JobID = o.JobID.String()
			if o.Err != nil {
				d.Error = o.Err.Error()
			}
			docs = append(docs, d)
		}
		return p.json(docs)
	}

	header := []string{"JOB", "NAME", "STRATEGY", "STATUS", "REASON", "COST", "EXPANDED", "PATH"}
	rows := make([][]string, 0, len(outs))
	for _, o := range outs {
		status, reason, cost, path := o.Result.Status.String(), string(o.Result.Reason), "-", "-"
		switch {
		case o.Err != nil:
			status, reason = "error", o.Err.Error()
		case o.Result.Found():
			cost, path = num(o.Result.Cost), strings.Join(o.Result.Path, " ")
		}
		if reason == "" {
			reason = "-"
		}
		rows = append(rows, []string{
			o.JobID.String()[:8], o.Name, o.Result.Strategy.String(), status,
			reason, cost, strconv.Itoa(o.Result.NodesExpanded), path,
		})
	}

	if p.styles != nil {
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			Headers(header...).
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				st := p.renderer.NewStyle().Padding(0, 1)
				if row == table.HeaderRow {
					return st.Bold(true)
				}
				if col == statusCol {
					if s, ok := p.styles[rows[row][col]]; ok {
						return s.Padding(0, 1)
					}
				}
				return st
			})
		_, err := fmt.Fprintln(p.w, t.String())
		return err
	}

	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}

	return tw.Flush()
}

// Solution writes an AND-OR solution: the cost, the plan, and one line per
// expanded node of the solution graph listing the children it relies on.
func (p *Printer) Solution(name string, sol *aostar.Solution) error {
	if sol == nil {
		return errors.New("report: nil solution")
	}
	if p.format == JSON {
		return p.json(solutionDoc{
			Name:     name,
			Root:     sol.Root,
			Cost:     sol.Cost,
			Expanded: sol.Expanded,
			Plan:     sol.Plan(),
			Choice:   sol.Choice,
		})
	}

	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	if name != "" {
		fmt.Fprintf(tw, "problem\t%s\n", name)
	}
	fmt.Fprintf(tw, "root\t%s\n", sol.Root)
	fmt.Fprintf(tw, "cost\t%s\n", num(sol.Cost))
	fmt.Fprintf(tw, "expanded\t%d\n", sol.Expanded)
	fmt.Fprintf(tw, "plan\t%s\n", strings.Join(sol.Plan(), " "))
	ids := make([]string, 0, len(sol.Choice))
	for id := range sol.Choice {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintf(tw, "  %s\t→ %s\n", id, strings.Join(sol.Choice[id], " + "))
	}

	return tw.Flush()
}

func (p *Printer) json(v interface{}) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// num prints integral costs without a fraction.
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// resultDoc is the JSON shape of a result. The strategy is rendered with
// String so that results of rejected calls still encode.
type resultDoc struct {
	JobID         string   `json:"job_id,omitempty"`
	Name          string   `json:"name,omitempty"`
	Strategy      string   `json:"strategy"`
	Status        string   `json:"status"`
	Reason        string   `json:"reason,omitempty"`
	Cost          float64  `json:"cost"`
	Path          []string `json:"path"`
	States        []string `json:"states"`
	NodesExpanded int      `json:"nodes_expanded"`
	ElapsedMS     float64  `json:"elapsed_ms"`
	Error         string   `json:"error,omitempty"`
}

func newResultDoc(name string, res search.Result[string]) resultDoc {
	d := resultDoc{
		Name:          name,
		Strategy:      res.Strategy.String(),
		Status:        res.Status.String(),
		Reason:        string(res.Reason),
		Cost:          res.Cost,
		Path:          res.Path,
		States:        res.States,
		NodesExpanded: res.NodesExpanded,
		ElapsedMS:     float64(res.Elapsed) / float64(time.Millisecond),
	}
	if d.Path == nil {
		d.Path = []string{}
	}
	if d.States == nil {
		d.States = []string{}
	}

	return d
}

type solutionDoc struct {
	Name     string              `json:"name,omitempty"`
	Root     string              `json:"root"`
	Cost     float64             `json:"cost"`
	Expanded int                 `json:"expanded"`
	Plan     []string            `json:"plan"`
	Choice   map[string][]string `json:"choice"`
}
