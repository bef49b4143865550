package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/pders01/quip/internal/config"
	"github.com/pders01/quip/internal/quotes"
)

func TestBanner(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"dev", "Motivational Quotes"},
		{"1.2.0", "v1.2.0"},
		{"v2.0.0", "v2.0.0"},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Contains(t, Banner(tt.version), tt.want)
		})
	}
	assert.NotContains(t, Banner("dev"), "vdev")
}

func TestRenderHeading(t *testing.T) {
	heading := RenderHeading()
	assert.Contains(t, heading, "MOTIVATIONAL")
	assert.Contains(t, heading, "QUOTES!")
	assert.Equal(t, len(HeadingLines), lipgloss.Height(heading))
}

func TestApplyTheme(t *testing.T) {
	saved := PrimaryColor
	defer func() {
		PrimaryColor = saved
		rebuildStyles()
	}()

	ApplyTheme(config.UIColors{Primary: "#123456"})
	assert.Equal(t, lipgloss.Color("#123456"), PrimaryColor)

	ApplyTheme(config.UIColors{})
	assert.Equal(t, lipgloss.Color("#123456"), PrimaryColor, "empty values keep the current color")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", truncate("hello", 5))
	assert.Equal(t, "hel…", truncate("hello", 4))
	assert.Equal(t, "…", truncate("hello", 1))
	assert.Equal(t, "", truncate("hello", 0))
}

func TestMsgResultsCount(t *testing.T) {
	assert.Equal(t, `1 quote for "success"`, MsgResultsCount("success", 1))
	assert.Equal(t, `3 quotes for "success"`, MsgResultsCount("success", 3))
}

func TestPlainQuotes(t *testing.T) {
	out := plainQuotes([]quotes.Record{
		{Quote: "Do it.", Author: "A"},
		{Quote: "Keep going.", Author: "B"},
	})
	assert.Equal(t, "\"Do it.\"\n  — A\n\n\"Keep going.\"\n  — B\n", out)
}

func TestQuoteMarkdownEscapes(t *testing.T) {
	md := quoteMarkdown([]quotes.Record{{Quote: "*bold* move", Author: "_me_"}})
	assert.True(t, strings.HasPrefix(md, `> "\*bold\* move"`))
	assert.Contains(t, md, `— \_me\_`)
}

func TestQuoteMarkdownKeepsParagraphsInBlockquote(t *testing.T) {
	md := quoteMarkdown([]quotes.Record{{Quote: "First para.\n\nSecond para.", Author: "A"}})

	assert.Equal(t, "> \"First para.\n>\n> Second para.\"\n>\n> — A\n", md)
	for _, line := range strings.Split(strings.TrimSuffix(md, "\n"), "\n") {
		assert.True(t, strings.HasPrefix(line, ">"), "line %q left the blockquote", line)
	}
}

func TestStatusKindColor(t *testing.T) {
	assert.Equal(t, MutedColor, StatusInfo.color())
	assert.Equal(t, SuccessColor, StatusSuccess.color())
	assert.Equal(t, ErrorColor, StatusError.color())
}
