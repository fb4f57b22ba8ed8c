package lang

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// Format writes doc as canonical source text.
//
// With indent zero each dictionary is written on a single line. Otherwise
// every pair is written on its own line, nested indent spaces deeper than
// its dictionary. Output ends with a newline. Nothing is written if an
// error occurs.
func (doc *Document) Format(_ context.Context, w io.Writer, indent int) error {
	p := printer{indent: max(indent, 0)}

	for decl := range doc.Constants() {
		p.put("var ", decl.Name, " ")

		if err := p.node(decl.Value, 0); err != nil {
			return err
		}

		p.put("\n")
	}

	if len(doc.Decls) > 0 && p.indent > 0 {
		p.put("\n")
	}

	if err := p.node(doc.Value, 0); err != nil {
		return err
	}

	p.put("\n")

	return p.flush(w)
}

// Format writes v as source text that evaluates to an equal value.
// The layout matches [Document.Format].
//
// Negative integers, text containing "]]" or ending in "]", and keys that
// are not valid names cannot be written and yield [ErrUnrepresentable].
func (v Value) Format(_ context.Context, w io.Writer, indent int) error {
	p := printer{indent: max(indent, 0)}

	if err := p.value(v, 0); err != nil {
		return err
	}

	p.put("\n")

	return p.flush(w)
}

// Print writes an indented dump of the syntax tree of doc.
func (doc *Document) Print(w io.Writer) error {
	p := printer{indent: 2}

	for decl := range doc.Constants() {
		p.put("Constant: ", decl.Name, " @ ", decl.Pos.String(), "\n")
		p.dump(decl.Value, 1)
	}

	p.put("Value:\n")
	p.dump(doc.Value, 1)

	return p.flush(w)
}

// printer accumulates output so that a failed format writes nothing.
type printer struct {
	sb     strings.Builder
	indent int
}

func (p *printer) put(s ...string) {
	for _, str := range s {
		p.sb.WriteString(str)
	}
}

func (p *printer) pad(depth int) {
	p.sb.WriteString(strings.Repeat(" ", depth*p.indent))
}

func (p *printer) flush(w io.Writer) error {
	_, err := io.WriteString(w, p.sb.String())

	return err
}

// open writes the start of a dictionary with n entries.
func (p *printer) open(n int) {
	switch {
	case n == 0:
		p.put("@{")
	case p.indent == 0:
		p.put("@{ ")
	default:
		p.put("@{\n")
	}
}

// entry writes the prefix of a single pair.
func (p *printer) entry(key string, depth int) {
	if p.indent > 0 {
		p.pad(depth + 1)
	}

	p.put(key, " = ")
}

// end writes the terminator of a single pair.
func (p *printer) end() {
	if p.indent > 0 {
		p.put(";\n")
	} else {
		p.put("; ")
	}
}

// close writes the end of a dictionary with n entries.
func (p *printer) close(n int, depth int) {
	if n > 0 && p.indent > 0 {
		p.pad(depth)
	}

	p.put("}")
}

func (p *printer) node(n Node, depth int) error {
	switch n := n.(type) {
	case *NumberLit:
		p.put(n.Literal)

	case *StringLit:
		p.put(n.Literal)

	case *ConstRef:
		p.put(n.Literal)

	case *DictLit:
		p.open(len(n.Pairs))

		for _, pair := range n.Pairs {
			p.entry(pair.Key, depth)

			if err := p.node(pair.Value, depth+1); err != nil {
				return err
			}

			p.end()
		}

		p.close(len(n.Pairs), depth)

	default:
		return ErrInvalidNode
	}

	return nil
}

func (p *printer) value(v Value, depth int) error {
	switch v.Kind {
	case KindInteger:
		if v.Integer < 0 {
			return ErrUnrepresentable.
				Msgf("negative integer %d has no octal literal", v.Integer).
				With(slog.Int64("integer", v.Integer))
		}

		p.put("0o", strconv.FormatInt(v.Integer, 8))

	case KindText:
		if strings.Contains(v.Text, "]]") || strings.HasSuffix(v.Text, "]") {
			return ErrUnrepresentable.
				Msgf("text %q cannot be delimited by [[ ]]", v.Text)
		}

		p.put("[[", v.Text, "]]")

	case KindDict:
		p.open(v.Dict.Len())

		for key, item := range v.Dict.All() {
			if !IsName(key) {
				return ErrUnrepresentable.
					Msgf("key %q is not a valid name", key)
			}

			p.entry(key, depth)

			if err := p.value(item, depth+1); err != nil {
				return err
			}

			p.end()
		}

		p.close(v.Dict.Len(), depth)

	default:
		return ErrInvalidNode
	}

	return nil
}

// dump writes one line per node, nested nodes indented one level deeper.
func (p *printer) dump(n Node, depth int) {
	p.pad(depth)

	switch n := n.(type) {
	case *NumberLit:
		p.put("Number: ", n.Literal, " @ ", n.Pos.String(), "\n")

	case *StringLit:
		p.put("String: ", strconv.Quote(n.Body()), " @ ", n.Pos.String(), "\n")

	case *ConstRef:
		p.put("Reference: ", n.Name(), " @ ", n.Pos.String(), "\n")

	case *DictLit:
		if len(n.Pairs) == 0 {
			p.put("Dictionary: (empty) @ ", n.Pos.String(), "\n")

			return
		}

		p.put("Dictionary @ ", n.Pos.String(), "\n")

		for _, pair := range n.Pairs {
			p.pad(depth + 1)
			p.put("Key: ", pair.Key, "\n")
			p.dump(pair.Value, depth+2)
		}

	default:
		p.put("(invalid)\n")
	}
}
