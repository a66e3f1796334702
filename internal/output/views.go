package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/panbanda/funcspace/pkg/analysis"
	"github.com/panbanda/funcspace/pkg/lang"
	"github.com/panbanda/funcspace/pkg/preproc"
	"github.com/panbanda/funcspace/pkg/spaces"
)

// SpacesView renders an analysis report: one row per space, a summary and
// the threshold violations.
type SpacesView struct {
	Report *analysis.Report
}

// RenderData implements Renderable.
func (v *SpacesView) RenderData() any {
	return v.Report
}

func (v *SpacesView) tables() []*Table {
	headers := []string{"Space", "Kind", "Lines", "Cyclo", "Cogn", "Nest", "SLOC", "LLOC", "Volume", "MI"}
	var tables []*Table
	for _, f := range v.Report.Files {
		var rows [][]string
		f.Space.Walk(func(s *spaces.FuncSpace, depth int) bool {
			name := s.DisplayName()
			if depth == 0 {
				name = "(file)"
			}
			rows = append(rows, []string{
				strings.Repeat("  ", depth) + name,
				s.Kind.String(),
				fmt.Sprintf("%d-%d", s.StartLine, s.EndLine),
				strconv.FormatUint(uint64(s.Metrics.Cyclomatic), 10),
				strconv.FormatUint(uint64(s.Metrics.Cognitive), 10),
				strconv.FormatUint(uint64(s.Metrics.MaxNesting), 10),
				strconv.FormatUint(s.Metrics.Loc.SLOC, 10),
				strconv.FormatUint(s.Metrics.Loc.LLOC, 10),
				fmt.Sprintf("%.1f", s.Metrics.Halstead.Volume),
				fmt.Sprintf("%.1f", s.Metrics.MI.VisualStudio),
			})
			return true
		})
		tables = append(tables, NewTable(fmt.Sprintf("%s (%s)", f.Path, f.Language.Display()), headers, rows, nil, nil))
	}
	return tables
}

func (v *SpacesView) summary() *Section {
	s := v.Report.Summary
	p := message.NewPrinter(language.English)
	var b strings.Builder
	p.Fprintf(&b, "Files: %d  Spaces: %d  Functions: %d  Closures: %d\n", s.Files, s.Spaces, s.Functions, s.Closures)
	p.Fprintf(&b, "SLOC: %d  PLOC: %d  LLOC: %d  CLOC: %d  Blank: %d\n", s.SLOC, s.PLOC, s.LLOC, s.CLOC, s.Blank)
	fmt.Fprintf(&b, "Cyclomatic: mean %.2f  p50 %.0f  p90 %.0f  p95 %.0f  max %.0f\n",
		s.Cyclomatic.Mean, s.Cyclomatic.P50, s.Cyclomatic.P90, s.Cyclomatic.P95, s.Cyclomatic.Max)
	fmt.Fprintf(&b, "Cognitive:  mean %.2f  p50 %.0f  p90 %.0f  p95 %.0f  max %.0f",
		s.Cognitive.Mean, s.Cognitive.P50, s.Cognitive.P90, s.Cognitive.P95, s.Cognitive.Max)
	if s.CacheHits > 0 {
		fmt.Fprintf(&b, "\nCache hits: %d", s.CacheHits)
	}
	return &Section{Title: "Summary", Content: b.String()}
}

func (v *SpacesView) violations(colored bool) *Table {
	if len(v.Report.Violations) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(v.Report.Violations))
	for _, viol := range v.Report.Violations {
		value := strconv.FormatUint(uint64(viol.Value), 10)
		if colored {
			value = SeverityColor(severity(viol), value)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%s:%d", viol.Path, viol.Line),
			viol.Function,
			viol.Metric,
			value,
			strconv.FormatUint(uint64(viol.Threshold), 10),
		})
	}
	return NewTable("Violations", []string{"Location", "Function", "Metric", "Value", "Threshold"}, rows, nil, nil)
}

// severity is high once a value reaches twice its threshold.
func severity(v analysis.Violation) string {
	if v.Value >= 2*v.Threshold {
		return "high"
	}
	return "medium"
}

func (v *SpacesView) errors() *Section {
	if len(v.Report.Errors) == 0 {
		return nil
	}
	lines := make([]string, 0, len(v.Report.Errors))
	for _, e := range v.Report.Errors {
		lines = append(lines, e.Error)
	}
	return &Section{Title: "Errors", Content: strings.Join(lines, "\n")}
}

func (v *SpacesView) report(colored bool) *Report {
	r := &Report{Title: "Function Spaces"}
	for _, t := range v.tables() {
		r.Sections = append(r.Sections, t)
	}
	r.Sections = append(r.Sections, v.summary())
	if t := v.violations(colored); t != nil {
		r.Sections = append(r.Sections, t)
	}
	if s := v.errors(); s != nil {
		r.Sections = append(r.Sections, s)
	}
	return r
}

// RenderText implements Renderable.
func (v *SpacesView) RenderText(w io.Writer, colored bool) error {
	return v.report(colored).RenderText(w, colored)
}

// RenderMarkdown implements Renderable.
func (v *SpacesView) RenderMarkdown(w io.Writer) error {
	return v.report(false).RenderMarkdown(w)
}

// OpsFile is the operator and operand view of one file.
type OpsFile struct {
	Path string      `json:"path"`
	Ops  *spaces.Ops `json:"ops"`
}

// OpsView renders the operators and operands of each space.
type OpsView struct {
	Files []OpsFile
}

// RenderData implements Renderable.
func (v *OpsView) RenderData() any {
	return v.Files
}

func (v *OpsView) report() *Report {
	r := &Report{Title: "Operators and Operands"}
	for _, f := range v.Files {
		var rows [][]string
		var walk func(o *spaces.Ops, depth int)
		walk = func(o *spaces.Ops, depth int) {
			name := o.Name
			if name == "" {
				name = "<anonymous>"
			}
			rows = append(rows, []string{
				strings.Repeat("  ", depth) + name,
				fmt.Sprintf("%d-%d", o.StartLine, o.EndLine),
				strings.Join(o.Operators, " "),
				strings.Join(o.Operands, " "),
			})
			for _, child := range o.Spaces {
				walk(child, depth+1)
			}
		}
		walk(f.Ops, 0)
		r.Sections = append(r.Sections, NewTable(f.Path, []string{"Space", "Lines", "Operators", "Operands"}, rows, nil, nil))
	}
	return r
}

// RenderText implements Renderable.
func (v *OpsView) RenderText(w io.Writer, colored bool) error {
	return v.report().RenderText(w, colored)
}

// RenderMarkdown implements Renderable.
func (v *OpsView) RenderMarkdown(w io.Writer) error {
	return v.report().RenderMarkdown(w)
}

// LanguageInfo describes one supported language.
type LanguageInfo struct {
	Name         string   `json:"name"`
	Display      string   `json:"display"`
	Extensions   []string `json:"extensions"`
	Modes        []string `json:"modes"`
	Preprocessed bool     `json:"preprocessed"`
}

// Languages lists every supported language.
func Languages() []LanguageInfo {
	out := make([]LanguageInfo, 0, lang.Count)
	for _, l := range lang.All() {
		d := l.Descriptor()
		out = append(out, LanguageInfo{
			Name:         d.Name,
			Display:      d.Display,
			Extensions:   d.Extensions,
			Modes:        d.Modes,
			Preprocessed: d.Preprocessed,
		})
	}
	return out
}

// LanguagesTable renders the supported languages.
func LanguagesTable() *Table {
	infos := Languages()
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{
			info.Name,
			info.Display,
			strings.Join(info.Extensions, " "),
			strings.Join(info.Modes, " "),
		})
	}
	return NewTable("Supported Languages", []string{"Name", "Display", "Extensions", "Modes"}, rows, nil, infos)
}

// PreprocTable renders collected preprocessor facts.
func PreprocTable(r *preproc.Results) *Table {
	var rows [][]string
	var data []*preproc.FileData
	for _, path := range r.Files() {
		fd, _ := r.File(path)
		data = append(data, fd)
		rows = append(rows, []string{
			path,
			strconv.Itoa(len(fd.Direct)),
			strconv.Itoa(len(fd.Indirect)),
			strconv.Itoa(len(fd.Macros)),
			strings.Join(r.Maskable(path), " "),
		})
	}
	if data == nil {
		data = []*preproc.FileData{}
	}
	return NewTable("Preprocessor", []string{"File", "Includes", "Indirect", "Macros", "Masked"}, rows, nil, data)
}
