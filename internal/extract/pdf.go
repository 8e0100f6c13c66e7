// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"bytes"
	"sort"
	"strings"

	ltpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// maxPDFPages bounds extraction time for very large documents. Contract
// amendment packets are short; anything beyond this is truncated.
const maxPDFPages = 100

var pdfConfig = model.NewDefaultConfiguration()

// extractPDFText extracts row-oriented text from a PDF. The file is
// validated with pdfcpu first so corrupt input surfaces as a ParseError
// instead of a garbled clause map.
func extractPDFText(path string) (string, error) {
	if err := api.ValidateFile(path, pdfConfig); err != nil {
		return "", &ParseError{Path: path, Format: "pdf", Err: err}
	}

	f, r, err := ltpdf.Open(path)
	if err != nil {
		return "", &ParseError{Path: path, Format: "pdf", Err: err}
	}
	defer f.Close()

	pageCount := r.NumPage()
	if pageCount > maxPDFPages {
		pageCount = maxPDFPages
	}

	var buf bytes.Buffer
	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := extractPageRows(page)
		if err != nil {
			continue
		}
		if buf.Len() > 0 && !strings.HasSuffix(buf.String(), "\n") {
			buf.WriteString("\n")
		}
		buf.WriteString(text)
	}

	return buf.String(), nil
}

// extractPageRows reconstructs reading order from row coordinates. Rows
// become lines; elements within a row are joined with coordinate-based
// spacing so clause numbers keep their following whitespace.
func extractPageRows(page ltpdf.Page) (string, error) {
	rows, err := page.GetTextByRow()
	if err != nil {
		// Row extraction can fail on unusual content streams; plain text
		// is a usable fallback.
		return page.GetPlainText(nil)
	}

	sorted := make([]*ltpdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sorted = append(sorted, row)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		return averageY(sorted[i].Content) < averageY(sorted[j].Content)
	})

	var buf bytes.Buffer
	for _, row := range sorted {
		line := joinRowText(row.Content)
		if strings.TrimSpace(line) == "" {
			continue
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}
	return buf.String(), nil
}

func averageY(elements []ltpdf.Text) float64 {
	if len(elements) == 0 {
		return 0
	}
	var total float64
	for _, e := range elements {
		total += e.Y
	}
	return total / float64(len(elements))
}

// joinRowText joins a row's text elements left to right, inserting a
// space where the horizontal gap exceeds 20% of the font size.
func joinRowText(elements []ltpdf.Text) string {
	sorted := make([]ltpdf.Text, len(elements))
	copy(sorted, elements)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	var buf bytes.Buffer
	for i, e := range sorted {
		buf.WriteString(e.S)
		if i == len(sorted)-1 {
			continue
		}
		gap := sorted[i+1].X - (e.X + e.W)
		fontSize := e.FontSize
		if fontSize <= 0 {
			fontSize = 12
		}
		if gap > fontSize*0.2 {
			buf.WriteString(" ")
		}
	}
	return buf.String()
}
