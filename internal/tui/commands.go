package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/pders01/quip/internal/debuglog"
	"github.com/pders01/quip/internal/quotes"
)

// search runs one lookup off the UI goroutine. The searcher recovers from
// panics, so a searchResultMsg always arrives and loading always ends.
func (a *App) search(topic string) tea.Cmd {
	searcher := a.searcher
	return func() tea.Msg {
		records, err := searcher.Search(context.Background(), topic)
		return searchResultMsg{topic: topic, records: records, err: err}
	}
}

func (a *App) getRenderer() (*glamour.TermRenderer, error) {
	wordWrapWidth := a.width - 8
	if maxWidth := a.config.UI.WordWrapMaxWidth; maxWidth > 0 && wordWrapWidth > maxWidth {
		wordWrapWidth = maxWidth
	}
	if minWidth := a.config.UI.WordWrapMinWidth; wordWrapWidth < minWidth {
		wordWrapWidth = minWidth
	}
	if wordWrapWidth < 20 {
		wordWrapWidth = 20
	}

	if a.glamourRenderer == nil || a.rendererWidth != wordWrapWidth {
		styleOpt := glamour.WithAutoStyle()
		if style := a.config.UI.Style; style != "" && style != "auto" {
			styleOpt = glamour.WithStandardStyle(style)
		}
		r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(wordWrapWidth))
		if err != nil {
			return nil, err
		}
		a.glamourRenderer = r
		a.rendererWidth = wordWrapWidth
	}
	return a.glamourRenderer, nil
}

// renderQuotes renders records through glamour, falling back to plain text
// if the renderer cannot be built or fails.
func (a *App) renderQuotes(records []quotes.Record) string {
	r, err := a.getRenderer()
	if err == nil {
		var out string
		out, err = r.Render(quoteMarkdown(records))
		if err == nil {
			return out
		}
	}
	debuglog.Warnf("%v", wrapErr("rendering quotes", err))
	return plainQuotes(records)
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`>`, `\>`,
	`#`, `\#`,
)

// quoteMarkdown renders each record as a blockquote followed by its
// attribution, in list order.
func quoteMarkdown(records []quotes.Record) string {
	var b strings.Builder
	for i, r := range records {
		if i > 0 {
			b.WriteString("\n")
		}
		quote := strings.Split(markdownEscaper.Replace(r.Quote), "\n")
		quote[0] = "\"" + quote[0]
		quote[len(quote)-1] += "\""
		for _, line := range quote {
			b.WriteString(strings.TrimRight("> "+line, " ") + "\n")
		}
		fmt.Fprintf(&b, ">\n> — %s\n", markdownEscaper.Replace(r.Author))
	}
	return b.String()
}

// plainQuotes formats records without styling, for when glamour fails.
func plainQuotes(records []quotes.Record) string {
	var b strings.Builder
	for i, r := range records {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "\"%s\"\n  — %s\n", r.Quote, r.Author)
	}
	return b.String()
}

// wrapErr formats an error with a contextual prefix.
func wrapErr(action string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", action, err)
}
