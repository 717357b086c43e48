// Package extract turns raw user input (freeform text, tabular data or
// an HTML document) into an ordered sequence of candidate URL strings.
// No URL validation happens here; the registry applies the scheme
// filter when candidates are appended.
package extract

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FromText splits newline-delimited freeform text into candidates, one
// per non-blank line, trimmed, in input order.
func FromText(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// FromRows takes the first column of each row of a tabular structure.
// Rows with no columns or a blank first cell are skipped.
func FromRows(rows [][]string) []string {
	var out []string
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell := strings.TrimSpace(row[0])
		if cell == "" {
			continue
		}
		out = append(out, cell)
	}
	return out
}

// FromCSV parses CSV input and extracts the first column of every row.
// A parse error is reported to the caller and produces no candidates.
func FromCSV(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows may be ragged

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return FromRows(rows), nil
}

// FromHTML collects the href attribute of every anchor in the document,
// in document order.
func FromHTML(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var out []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists {
			return
		}
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}
		out = append(out, href)
	})
	return out, nil
}
