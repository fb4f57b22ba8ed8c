package lang

import "iter"

// Document is the root of a parsed source: constant declarations followed
// by the single top-level value.
type Document struct {
	Decls []*ConstDecl
	Value Node

	source string // original text, for error context during evaluation
}

// Constants returns an iterator over the declarations in source order.
func (doc *Document) Constants() iter.Seq[*ConstDecl] {
	return func(yield func(*ConstDecl) bool) {
		for _, decl := range doc.Decls {
			if !yield(decl) {
				return
			}
		}
	}
}

// Node is a value expression in the syntax tree.
type Node interface {
	Position() Position
	node()
}

// NumberLit is an octal integer literal such as 0o17.
type NumberLit struct {
	Pos     Position
	Literal string // including the 0o prefix
}

// StringLit is a bracketed string literal such as [[text]].
type StringLit struct {
	Pos     Position
	Literal string // including the [[ and ]] delimiters
}

// Body returns the literal text between the delimiters.
func (s *StringLit) Body() string {
	if len(s.Literal) < 4 {
		return ""
	}

	return s.Literal[2 : len(s.Literal)-2]
}

// ConstRef is a reference to a declared constant such as $name$.
type ConstRef struct {
	Pos     Position
	Literal string // including the $ delimiters
}

// Name returns the referenced constant name.
func (c *ConstRef) Name() string {
	if len(c.Literal) < 2 {
		return ""
	}

	return c.Literal[1 : len(c.Literal)-1]
}

// DictLit is a dictionary literal: @{ key = value; ... }.
type DictLit struct {
	Pos   Position
	Pairs []*Pair
}

// Pair is a single key = value; entry of a [DictLit].
type Pair struct {
	Pos   Position
	Key   string
	Value Node
}

// ConstDecl declares a named constant: var name value.
type ConstDecl struct {
	Pos   Position
	Name  string
	Value Node
}

func (n *NumberLit) Position() Position { return n.Pos }
func (n *StringLit) Position() Position { return n.Pos }
func (n *ConstRef) Position() Position  { return n.Pos }
func (n *DictLit) Position() Position   { return n.Pos }

func (*NumberLit) node() {}
func (*StringLit) node() {}
func (*ConstRef) node()  {}
func (*DictLit) node()   {}
