package cli

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/ucfg/lang"
	"github.com/ardnew/ucfg/log"
)

// Exit reports err and returns the process exit status for it.
//
// A nil error yields 0. A syntax or semantic [lang.Error] is written to w
// as "Syntax error: ..." or "Semantic error: ...", with the label styled
// when w is a terminal. A syntax error with a position continues with
// "Syntax error at line L, column C:", the source context and the
// detail on its own line.
// Any other error is logged. Every failure yields 1.
func Exit(w io.Writer, err error) int {
	if err == nil {
		return 0
	}

	var le *lang.Error
	if !errors.As(err, &le) || le.Kind() == 0 {
		log.Error("command failed", slog.Any("error", err))

		return 1
	}

	label := le.Kind().String() + " error"
	style := lipgloss.NewRenderer(w).NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("1"))

	var b strings.Builder

	b.WriteString(style.Render(label + ":"))
	b.WriteString(" ")
	b.WriteString(strings.TrimRight(le.Error(), "\n"))

	// A positioned syntax error ends with the source context; its detail
	// follows on the last line.
	if _, ok := le.Position(); ok && le.Kind() == lang.SyntaxKind {
		b.WriteString("\n")
		b.WriteString(le.Detail())
	}

	b.WriteString("\n")

	_, _ = io.WriteString(w, b.String())

	return 1
}
