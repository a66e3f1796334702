package analysis

import (
	"context"
	"fmt"
	"sort"

	"github.com/panbanda/funcspace/internal/cache"
	"github.com/panbanda/funcspace/internal/fileproc"
	"github.com/panbanda/funcspace/pkg/checker"
	"github.com/panbanda/funcspace/pkg/lang"
	"github.com/panbanda/funcspace/pkg/preproc"
	"github.com/panbanda/funcspace/pkg/source"
	"github.com/panbanda/funcspace/pkg/spaces"
	"github.com/panbanda/funcspace/pkg/stats"
)

// Thresholds flag functions whose own metrics exceed them. Zero disables a
// threshold.
type Thresholds struct {
	Cyclomatic uint32
	Cognitive  uint32
	Nesting    uint32
}

// Options configures AnalyzeFiles.
type Options struct {
	// Workers bounds the number of files parsed concurrently.
	Workers int
	// MaxFileSize skips larger files when > 0.
	MaxFileSize int64
	// Source provides file contents. Defaults to the filesystem.
	Source source.ContentSource
	// Cache stores space trees by content hash. May be nil.
	Cache *cache.Cache
	// Preproc is shared by every file of a preprocessed language. May be
	// nil.
	Preproc    *preproc.Results
	Thresholds Thresholds
	OnProgress fileproc.ProgressFunc
}

// FileResult is the space tree of one file.
type FileResult struct {
	Path     string            `json:"path"`
	Language lang.Language     `json:"language"`
	Space    *spaces.FuncSpace `json:"space"`
	Cached   bool              `json:"-"`
}

// Violation is one function exceeding a threshold.
type Violation struct {
	Path      string `json:"path"`
	Function  string `json:"function"`
	Line      uint32 `json:"line"`
	Metric    string `json:"metric"`
	Value     uint32 `json:"value"`
	Threshold uint32 `json:"threshold"`
}

// FileError is a file that could not be analyzed.
type FileError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// Summary aggregates a project.
type Summary struct {
	Files      int                `json:"files"`
	Spaces     int                `json:"spaces"`
	Functions  int                `json:"functions"`
	Closures   int                `json:"closures"`
	Cyclomatic stats.Distribution `json:"cyclomatic"`
	Cognitive  stats.Distribution `json:"cognitive"`
	SLOC       uint64             `json:"sloc"`
	PLOC       uint64             `json:"ploc"`
	LLOC       uint64             `json:"lloc"`
	CLOC       uint64             `json:"cloc"`
	Blank      uint64             `json:"blank"`
	Languages  map[string]int     `json:"languages"`
	CacheHits  int                `json:"cache_hits"`
}

// Report is the result of analyzing a set of files.
type Report struct {
	Files      []FileResult `json:"files"`
	Summary    Summary      `json:"summary"`
	Violations []Violation  `json:"violations"`
	Errors     []FileError  `json:"errors,omitempty"`
}

// AnalyzeFiles extracts the space tree of every file concurrently. Files
// that fail are reported in Report.Errors and do not stop the others.
// Results keep the order of files. The returned error is only set when ctx
// is cancelled.
func AnalyzeFiles(ctx context.Context, files []string, opts Options) (*Report, error) {
	src := opts.Source
	if src == nil {
		src = source.NewFilesystem()
	}

	results, procErrs := fileproc.MapSourceFiles(ctx, files, src, opts.MaxFileSize, opts.Workers,
		func(path string, content []byte) (FileResult, error) {
			return analyzeFile(path, content, opts)
		}, opts.OnProgress)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &Report{
		Files:      results,
		Violations: []Violation{},
	}
	if procErrs != nil {
		for _, e := range procErrs.Errors {
			report.Errors = append(report.Errors, FileError{Path: e.Path, Error: e.Err.Error()})
		}
		sort.Slice(report.Errors, func(i, j int) bool { return report.Errors[i].Path < report.Errors[j].Path })
	}
	report.Summary = Summarize(results)
	for _, r := range results {
		report.Violations = append(report.Violations, FindViolations(r.Path, r.Space, opts.Thresholds)...)
	}
	return report, nil
}

func analyzeFile(path string, content []byte, opts Options) (FileResult, error) {
	l, ok := lang.Guess(content, path)
	if !ok {
		return FileResult{}, fmt.Errorf("%s: %w", path, lang.ErrUnsupported)
	}

	var pr *preproc.Results
	if l.Descriptor().Preprocessed {
		pr = opts.Preproc
	}
	// Masking depends on the includes of the file, so the masked text is
	// what the cache entry is valid for.
	key := pr.Mask(path, content)

	if space, hit := opts.Cache.LoadSpace(path, l, key); hit {
		return FileResult{Path: path, Language: l, Space: space, Cached: true}, nil
	}

	space, err := GetFunctionSpaces(l, content, path, pr)
	if err != nil {
		return FileResult{}, err
	}
	// A failed store only costs a reparse next time.
	_ = opts.Cache.StoreSpace(path, l, key, space)

	return FileResult{Path: path, Language: l, Space: space}, nil
}

// CollectPreproc gathers preprocessor facts from the files of preprocessed
// languages among files. It returns nil when there are none.
func CollectPreproc(ctx context.Context, files []string, src source.ContentSource, workers int) (*preproc.Results, error) {
	var selected []string
	for _, f := range files {
		if l, ok := lang.FromPath(f); ok && l.Descriptor().Preprocessed {
			selected = append(selected, f)
		}
	}
	if len(selected) == 0 {
		return nil, nil
	}

	if _, ok := src.(*source.FilesystemSource); ok || src == nil {
		return preproc.Collect(ctx, selected, workers)
	}

	contents := make(map[string][]byte, len(selected))
	for _, f := range selected {
		content, err := src.Read(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
		contents[f] = content
	}
	return preproc.CollectSources(ctx, contents)
}

// Summarize aggregates file results. Distributions cover the own metrics
// of functions and closures.
func Summarize(results []FileResult) Summary {
	s := Summary{
		Files:     len(results),
		Languages: make(map[string]int),
	}
	var cyclomatic, cognitive []float64
	for _, r := range results {
		s.Languages[r.Language.String()]++
		if r.Cached {
			s.CacheHits++
		}
		if r.Space == nil {
			continue
		}
		loc := r.Space.Metrics.Loc
		s.SLOC += loc.SLOC
		s.PLOC += loc.PLOC
		s.LLOC += loc.LLOC
		s.CLOC += loc.CLOC
		s.Blank += loc.Blank

		r.Space.Walk(func(space *spaces.FuncSpace, _ int) bool {
			s.Spaces++
			if !space.Kind.IsCallable() {
				return true
			}
			if space.Kind == checker.SpaceClosure {
				s.Closures++
			} else {
				s.Functions++
			}
			cyclomatic = append(cyclomatic, float64(space.Own.Cyclomatic))
			cognitive = append(cognitive, float64(space.Own.Cognitive))
			return true
		})
	}
	s.Cyclomatic = stats.Describe(cyclomatic)
	s.Cognitive = stats.Describe(cognitive)
	return s
}

// FindViolations lists the functions and closures of root whose own
// metrics exceed th, in source order.
func FindViolations(path string, root *spaces.FuncSpace, th Thresholds) []Violation {
	if root == nil {
		return nil
	}
	var out []Violation
	check := func(space *spaces.FuncSpace, metric string, value, limit uint32) {
		if limit > 0 && value > limit {
			out = append(out, Violation{
				Path:      path,
				Function:  space.DisplayName(),
				Line:      space.StartLine,
				Metric:    metric,
				Value:     value,
				Threshold: limit,
			})
		}
	}
	root.Walk(func(space *spaces.FuncSpace, _ int) bool {
		if space.Kind.IsCallable() {
			check(space, "cyclomatic", space.Own.Cyclomatic, th.Cyclomatic)
			check(space, "cognitive", space.Own.Cognitive, th.Cognitive)
			check(space, "nesting", space.Own.MaxNesting, th.Nesting)
		}
		return true
	})
	return out
}
