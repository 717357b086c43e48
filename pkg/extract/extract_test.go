package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromText(t *testing.T) {
	input := "https://a/x.pdf\n\n  https://b/y.pdf  \r\nnot-a-url\n"

	got := FromText(input)

	assert.Equal(t, []string{"https://a/x.pdf", "https://b/y.pdf", "not-a-url"}, got)
}

func TestFromText_Empty(t *testing.T) {
	assert.Empty(t, FromText(""))
	assert.Empty(t, FromText("\n\n\n"))
}

func TestFromRows(t *testing.T) {
	rows := [][]string{
		{"https://a/x.pdf", "ignored", "also ignored"},
		{},
		{"  "},
		{"https://b/y.pdf"},
	}

	got := FromRows(rows)

	assert.Equal(t, []string{"https://a/x.pdf", "https://b/y.pdf"}, got)
}

func TestFromCSV(t *testing.T) {
	input := "https://a/x.pdf,some description\nhttps://b/y.pdf\nhttps://c/z.pdf,extra,cols\n"

	got, err := FromCSV(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, []string{"https://a/x.pdf", "https://b/y.pdf", "https://c/z.pdf"}, got)
}

func TestFromCSV_ParseError(t *testing.T) {
	// Unterminated quote
	input := "\"https://a/x.pdf\nhttps://b/y.pdf"

	got, err := FromCSV(strings.NewReader(input))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse csv")
	assert.Nil(t, got)
}

func TestFromHTML(t *testing.T) {
	input := `<html><body>
		<a href="https://a/x.pdf">first</a>
		<p>text</p>
		<a href="  https://b/y.pdf ">second</a>
		<a href="">blank</a>
		<a>no href</a>
		<a href="mailto:someone@example.com">mail</a>
	</body></html>`

	got, err := FromHTML(strings.NewReader(input))

	require.NoError(t, err)
	// Scheme filtering is the registry's job, so mailto: passes through
	assert.Equal(t, []string{"https://a/x.pdf", "https://b/y.pdf", "mailto:someone@example.com"}, got)
}

func TestFromHTML_NoAnchors(t *testing.T) {
	got, err := FromHTML(strings.NewReader("<html><body><p>nothing here</p></body></html>"))

	require.NoError(t, err)
	assert.Empty(t, got)
}
