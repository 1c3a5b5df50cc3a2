package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var keywords = []string{"insert", "select"}

// CommandHighlighter colors echoed command lines in the transcript.
type CommandHighlighter struct {
	keywords     map[string]bool
	keywordStyle lipgloss.Style
	metaStyle    lipgloss.Style
	numberStyle  lipgloss.Style
	emailStyle   lipgloss.Style
}

func NewCommandHighlighter() *CommandHighlighter {
	h := &CommandHighlighter{keywords: make(map[string]bool)}
	for _, kw := range keywords {
		h.keywords[kw] = true
	}

	h.keywordStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF79C6")).
		Bold(true)

	h.metaStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8BE9FD")).
		Bold(true)

	h.numberStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#BD93F9"))

	h.emailStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F1FA8C"))

	return h
}

// Highlight renders line word by word. Whitespace is collapsed to single
// spaces, which is fine for display since tokens are whitespace-delimited.
func (h *CommandHighlighter) Highlight(line string) string {
	words := strings.Fields(line)
	highlighted := make([]string, 0, len(words))

	for i, word := range words {
		switch {
		case i == 0 && strings.HasPrefix(word, "."):
			highlighted = append(highlighted, h.metaStyle.Render(word))
		case i == 0 && h.keywords[word]:
			highlighted = append(highlighted, h.keywordStyle.Render(word))
		case isNumeric(word):
			highlighted = append(highlighted, h.numberStyle.Render(word))
		case strings.Contains(word, "@"):
			highlighted = append(highlighted, h.emailStyle.Render(word))
		default:
			highlighted = append(highlighted, word)
		}
	}

	return strings.Join(highlighted, " ")
}

// isNumeric checks if a string is an optionally signed integer
func isNumeric(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
