package metrics

import (
	"github.com/RoaringBitmap/roaring/v2"
	sitter "github.com/smacker/go-tree-sitter"
)

// Loc holds the line counts of a space.
type Loc struct {
	SLOC  uint64 `json:"sloc"`  // source lines spanned
	PLOC  uint64 `json:"ploc"`  // lines holding code tokens
	LLOC  uint64 `json:"lloc"`  // lines where a statement starts
	CLOC  uint64 `json:"cloc"`  // lines holding comments
	Blank uint64 `json:"blank"` // spanned lines with neither code nor comments
}

// Lines tracks the row sets a space's line counts are derived from. Row
// sets make the cumulative view a union, so a row shared by a space and a
// nested space is counted once.
type Lines struct {
	span    *roaring.Bitmap
	code    *roaring.Bitmap
	comment *roaring.Bitmap
	logical *roaring.Bitmap
}

// NewLines returns row sets for a space spanning [startRow, endRow].
func NewLines(startRow, endRow uint32, empty bool) *Lines {
	l := &Lines{
		span:    roaring.New(),
		code:    roaring.New(),
		comment: roaring.New(),
		logical: roaring.New(),
	}
	if !empty {
		l.span.AddRange(uint64(startRow), uint64(endRow)+1)
	}
	return l
}

// Exclude removes rows owned by a nested space from the span.
func (l *Lines) Exclude(startRow, endRow uint32) {
	l.span.RemoveRange(uint64(startRow), uint64(endRow)+1)
}

// Observe records comment rows and the rows of leaf tokens. Comments
// consume their subtree.
func (l *Lines) Observe(v *Visit) (consumed bool) {
	n := v.Node
	if v.Checker.IsComment(n) {
		start, end := Rows(n)
		l.comment.AddRange(uint64(start), uint64(end)+1)
		return true
	}
	if n.ChildCount() == 0 && n.EndByte() > n.StartByte() {
		start, end := Rows(n)
		l.code.AddRange(uint64(start), uint64(end)+1)
	}
	return false
}

// ObserveStatement records the starting row of statements.
func (l *Lines) ObserveStatement(v *Visit) {
	if v.Checker.IsStatement(v.Node) {
		l.logical.Add(v.Node.StartPoint().Row)
	}
}

// Clone returns a deep copy.
func (l *Lines) Clone() *Lines {
	return &Lines{
		span:    l.span.Clone(),
		code:    l.code.Clone(),
		comment: l.comment.Clone(),
		logical: l.logical.Clone(),
	}
}

// Merge unions a nested space's rows into l.
func (l *Lines) Merge(o *Lines) {
	l.span.Or(o.span)
	l.code.Or(o.code)
	l.comment.Or(o.comment)
	l.logical.Or(o.logical)
}

// Loc derives the line counts.
func (l *Lines) Loc() Loc {
	content := roaring.Or(l.code, l.comment)
	source := roaring.Or(l.span, content)
	return Loc{
		SLOC:  source.GetCardinality(),
		PLOC:  l.code.GetCardinality(),
		LLOC:  l.logical.GetCardinality(),
		CLOC:  l.comment.GetCardinality(),
		Blank: source.GetCardinality() - content.GetCardinality(),
	}
}

// Rows returns the first and last row a node occupies. A node ending at
// column 0 of a later row (one that swallowed a trailing newline) does not
// occupy that row.
func Rows(n *sitter.Node) (start, end uint32) {
	start, end = n.StartPoint().Row, n.EndPoint().Row
	if end > start && n.EndPoint().Column == 0 {
		end--
	}
	return start, end
}
