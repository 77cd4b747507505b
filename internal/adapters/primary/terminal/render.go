// Package terminal prints search results and artwork details for the CLI.
package terminal

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"artwork-search-service/internal/core/services"
)

var (
	titleColor   = color.New(color.Bold)
	labelColor   = color.New(color.FgCyan)
	messageColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.Faint)
)

// RenderSearch prints one block per card, or the inline message when the
// search produced no cards.
func RenderSearch(w io.Writer, result *services.SearchResult) {
	switch result.Status {
	case services.StatusError:
		errorColor.Fprintln(w, result.Message)
		return
	case services.StatusEmpty, services.StatusPrompt:
		messageColor.Fprintln(w, result.Message)
		return
	}

	for i, card := range result.Cards {
		if i > 0 {
			fmt.Fprintln(w)
		}
		titleColor.Fprintf(w, "[%d] %s\n", card.ID, card.Title)
		labelColor.Fprint(w, "    Artist: ")
		fmt.Fprintln(w, card.Artist)
		dimColor.Fprintf(w, "    %s\n", card.ImageURL)
	}
}

// RenderModal prints every detail field of one artwork.
func RenderModal(w io.Writer, content *services.ModalContent) {
	titleColor.Fprintln(w, content.Title)

	fields := []struct {
		label string
		value string
	}{
		{"Artist", content.Artist},
		{"Date", content.Date},
		{"Medium", content.Medium},
		{"Credit Line", content.CreditLine},
		{"Place of Origin", content.PlaceOfOrigin},
		{"Gallery", content.Gallery},
		{"Image", content.ImageURL},
	}
	for _, f := range fields {
		labelColor.Fprintf(w, "%-17s", f.label+":")
		fmt.Fprintln(w, f.value)
	}
}
