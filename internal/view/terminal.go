package view

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"bookvault/internal/book"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	idStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	formStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	cardStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(60)
)

// Terminal is a line-oriented presenter. Status and form messages are written
// as they arrive; the book list is kept and written by Flush.
type Terminal struct {
	mu        sync.Mutex
	out       io.Writer
	errOut    io.Writer
	current   Projection
	formReset bool
}

func NewTerminal(out, errOut io.Writer) *Terminal {
	return &Terminal{out: out, errOut: errOut, current: Project(nil)}
}

func (t *Terminal) SetStatus(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, statusStyle.Render(msg))
}

func (t *Terminal) SetFormMessage(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, formStyle.Render(msg))
}

// ResetForm records that the submitted input was accepted.
func (t *Terminal) ResetForm() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.formReset = true
}

func (t *Terminal) Render(books []book.Book) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = Project(books)
}

func (t *Terminal) RemoveCard(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = t.current.Without(id)
}

func (t *Terminal) Alert(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.errOut, alertStyle.Render(msg))
}

// FormReset reports whether ResetForm was called.
func (t *Terminal) FormReset() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.formReset
}

// Current returns the projection last rendered.
func (t *Terminal) Current() Projection {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Flush writes the current projection.
func (t *Terminal) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := io.WriteString(t.out, Format(t.current))
	return err
}

// Format renders p as styled text.
func Format(p Projection) string {
	if len(p.Cards) == 0 {
		return mutedStyle.Render(p.Empty) + "\n"
	}

	var sb strings.Builder
	for _, c := range p.Cards {
		sb.WriteString(cardStyle.Render(formatCard(c)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatCard(c Card) string {
	lines := []string{
		titleStyle.Render(c.Title),
		mutedStyle.Render(c.Byline),
	}
	if c.HasImage {
		lines = append(lines, c.Image)
	} else {
		lines = append(lines, mutedStyle.Render("["+c.Image+"]"))
	}
	if c.Description != "" {
		lines = append(lines, "", c.Description)
	}
	lines = append(lines, idStyle.Render("delete: bookvault delete "+c.ID))
	return strings.Join(lines, "\n")
}
