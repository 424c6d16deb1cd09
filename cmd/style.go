package cmd

import (
	"os"
	"strings"

	"github.com/arcanaland/cribbage/internal/card"
	colorize "github.com/fatih/color"
	"golang.org/x/term"
)

// cardString renders a card with its suit colour
func cardString(c card.Card) string {
	if c.Suit().Red() {
		return colorize.HiRedString(c.String())
	}
	return colorize.HiWhiteString(c.String())
}

// cardsString renders cards separated by spaces
func cardsString(cards []card.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = cardString(c)
	}
	return strings.Join(parts, " ")
}

// label renders a field label the way every command prints them
func label(s string) string {
	return colorize.CyanString(s)
}

// terminalWidth returns the width of stdout, or 80 when it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// wrapText wraps text to a specified width. Width is measured on the text
// with ANSI escapes removed.
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		switch {
		case len(currentLine) == 0:
			currentLine = word
		case visibleLen(currentLine)+1+visibleLen(word) <= width:
			currentLine += " " + word
		default:
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

func visibleLen(s string) int {
	return len([]rune(stripAnsi(s)))
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
