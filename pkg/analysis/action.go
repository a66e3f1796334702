// Package analysis is the entry point of the metrics engine.
//
// Action parses a source buffer with the grammar of a language and runs a
// Computation over the resulting parser. Metrics and Operations are the
// built-in computations; AnalyzeFiles runs Metrics over many files.
package analysis

import (
	"fmt"

	"github.com/panbanda/funcspace/pkg/lang"
	"github.com/panbanda/funcspace/pkg/parser"
	"github.com/panbanda/funcspace/pkg/preproc"
	"github.com/panbanda/funcspace/pkg/spaces"
)

// Computation is a unit of work over one parsed file. C is the
// configuration the caller passes in, R the result it produces.
type Computation[C, R any] interface {
	Compute(cfg C, p *parser.Parser) (R, error)
}

// Action parses source as language l and runs comp over it. pr is only
// used by preprocessed languages and may be nil. The parser is closed
// before Action returns, so R must not retain tree nodes.
func Action[C, R any](comp Computation[C, R], l lang.Language, source []byte, path string, pr *preproc.Results, cfg C) (R, error) {
	var zero R
	p, err := parser.New(l, source, path, pr)
	if err != nil {
		return zero, err
	}
	defer p.Close()
	return comp.Compute(cfg, p)
}

// MetricsConfig configures the Metrics computation.
type MetricsConfig struct {
	// Path is used in error messages.
	Path string
}

// Metrics extracts the space tree of a file with own and cumulative
// metrics.
type Metrics struct{}

// Compute implements Computation.
func (Metrics) Compute(cfg MetricsConfig, p *parser.Parser) (*spaces.FuncSpace, error) {
	space, err := spaces.Extract(p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Path, err)
	}
	return space, nil
}

// OpsConfig configures the Operations computation.
type OpsConfig struct {
	Path string
}

// Operations extracts the operators and operands of every space of a file.
type Operations struct{}

// Compute implements Computation.
func (Operations) Compute(cfg OpsConfig, p *parser.Parser) (*spaces.Ops, error) {
	ops, err := spaces.ExtractOps(p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Path, err)
	}
	return ops, nil
}

var (
	_ Computation[MetricsConfig, *spaces.FuncSpace] = Metrics{}
	_ Computation[OpsConfig, *spaces.Ops]           = Operations{}
)

// GetFunctionSpaces returns the space tree of source.
func GetFunctionSpaces(l lang.Language, source []byte, path string, pr *preproc.Results) (*spaces.FuncSpace, error) {
	return Action[MetricsConfig, *spaces.FuncSpace](Metrics{}, l, source, path, pr, MetricsConfig{Path: path})
}

// GetOps returns the operator and operand view of source.
func GetOps(l lang.Language, source []byte, path string, pr *preproc.Results) (*spaces.Ops, error) {
	return Action[OpsConfig, *spaces.Ops](Operations{}, l, source, path, pr, OpsConfig{Path: path})
}
