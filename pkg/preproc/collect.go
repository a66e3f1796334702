package preproc

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/sourcegraph/conc/pool"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/panbanda/funcspace/pkg/lang"
)

// Collect reads and scans files concurrently and links their includes.
// Files that cannot be read or parsed are reported in the returned error but
// do not prevent the others from being collected. workers <= 0 uses
// runtime.NumCPU().
func Collect(ctx context.Context, files []string, workers int) (*Results, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		mu    sync.Mutex
		datas []*FileData
		errs  []error
	)
	p := pool.New().WithMaxGoroutines(workers)
	for _, path := range files {
		p.Go(func() {
			if ctx.Err() != nil {
				return
			}
			src, err := os.ReadFile(path)
			if err == nil {
				var fd *FileData
				fd, err = Extract(ctx, path, src)
				if err == nil {
					mu.Lock()
					datas = append(datas, fd)
					mu.Unlock()
					return
				}
			}
			mu.Lock()
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			mu.Unlock()
		})
	}
	p.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res := link(datas)
	if len(errs) > 0 {
		return res, fmt.Errorf("preproc: %d files failed (first: %w)", len(errs), errs[0])
	}
	return res, nil
}

// CollectSources builds Results from in-memory sources keyed by path.
func CollectSources(ctx context.Context, sources map[string][]byte) (*Results, error) {
	datas := make([]*FileData, 0, len(sources))
	for path, src := range sources {
		fd, err := Extract(ctx, path, src)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		datas = append(datas, fd)
	}
	return link(datas), nil
}

// Extract scans one file for include directives and macro definitions.
// Files whose extension is not a preprocessed language are scanned with the
// C grammar.
func Extract(ctx context.Context, path string, src []byte) (*FileData, error) {
	l := lang.C
	if detected, ok := lang.FromPath(path); ok && detected.Descriptor().Preprocessed {
		l = detected
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(l.Grammar())
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	defer tree.Close()

	fd := &FileData{Path: path}
	seen := make(map[string]bool)
	var visit func(n *sitter.Node)
	visit = func(n *sitter.Node) {
		switch n.Type() {
		case "preproc_include":
			if target := includeTarget(n.ChildByFieldName("path"), src); target != "" {
				fd.Direct = append(fd.Direct, target)
			}
			return
		case "preproc_def":
			if name := text(n.ChildByFieldName("name"), src); name != "" && !seen[name] {
				seen[name] = true
				fd.Macros = append(fd.Macros, Macro{
					Name:  name,
					Empty: strings.TrimSpace(text(n.ChildByFieldName("value"), src)) == "",
				})
			}
			return
		case "preproc_function_def":
			if name := text(n.ChildByFieldName("name"), src); name != "" && !seen[name] {
				seen[name] = true
				fd.Macros = append(fd.Macros, Macro{Name: name, Function: true})
			}
			return
		}
		for i := range int(n.NamedChildCount()) {
			visit(n.NamedChild(i))
		}
	}
	visit(tree.RootNode())
	return fd, nil
}

func includeTarget(n *sitter.Node, src []byte) string {
	raw := strings.TrimSpace(text(n, src))
	if len(raw) < 2 {
		return ""
	}
	if (raw[0] == '"' && raw[len(raw)-1] == '"') || (raw[0] == '<' && raw[len(raw)-1] == '>') {
		return raw[1 : len(raw)-1]
	}
	return ""
}

func text(n *sitter.Node, src []byte) string {
	if n == nil {
		return ""
	}
	start, end := n.StartByte(), n.EndByte()
	if start > end || end > uint32(len(src)) {
		return ""
	}
	return string(src[start:end])
}

// link resolves include targets against the collected files, builds the
// include graph and derives each file's indirect includes and maskable
// macros.
func link(datas []*FileData) *Results {
	sort.Slice(datas, func(i, j int) bool { return datas[i].Path < datas[j].Path })

	byBase := make(map[string][]int)
	for i, fd := range datas {
		base := filepath.Base(fd.Path)
		byBase[base] = append(byBase[base], i)
	}

	g := simple.NewDirectedGraph()
	for i := range datas {
		g.AddNode(simple.Node(i))
	}
	for i, fd := range datas {
		for _, inc := range fd.Direct {
			for _, j := range resolve(datas, byBase, inc) {
				if j == i || g.HasEdgeFromTo(int64(i), int64(j)) {
					continue
				}
				g.SetEdge(g.NewEdge(simple.Node(i), simple.Node(j)))
			}
		}
	}

	res := &Results{
		files:    make(map[string]*FileData, len(datas)),
		maskable: make(map[string]map[string]struct{}, len(datas)),
	}
	for i, fd := range datas {
		var reached []string
		var bf traverse.BreadthFirst
		bf.Walk(g, simple.Node(i), func(n graph.Node, _ int) bool {
			if n.ID() != int64(i) {
				reached = append(reached, datas[n.ID()].Path)
			}
			return false
		})
		sort.Strings(reached)
		fd.Indirect = reached

		masks := make(map[string]struct{})
		addEmpty(masks, fd.Macros)
		for _, inc := range reached {
			addEmpty(masks, datas[indexOf(datas, inc)].Macros)
		}
		res.files[fd.Path] = fd
		res.maskable[fd.Path] = masks
	}
	return res
}

// resolve matches an include target against collected paths by suffix.
func resolve(datas []*FileData, byBase map[string][]int, inc string) []int {
	inc = filepath.ToSlash(filepath.Clean(inc))
	var out []int
	for _, i := range byBase[filepath.Base(inc)] {
		p := filepath.ToSlash(datas[i].Path)
		if p == inc || strings.HasSuffix(p, "/"+inc) {
			out = append(out, i)
		}
	}
	return out
}

func indexOf(datas []*FileData, path string) int {
	return sort.Search(len(datas), func(i int) bool { return datas[i].Path >= path })
}

func addEmpty(dst map[string]struct{}, macros []Macro) {
	for _, m := range macros {
		if m.Empty && !m.Function {
			dst[m.Name] = struct{}{}
		}
	}
}
