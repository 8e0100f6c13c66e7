// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"archive/zip"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	docxParaRe   = regexp.MustCompile(`<w:p[^>]*>|</w:p>`)
	docxTabRe    = regexp.MustCompile(`<w:tab[^>]*/?>`)
	docxBreakRe  = regexp.MustCompile(`<w:br[^>]*/?>`)
	docxAnyTagRe = regexp.MustCompile(`<[^>]*>`)
	docxSpacesRe = regexp.MustCompile(`[ \t]+`)
)

// extractDocxText extracts paragraph text from a Word document. A .docx
// file is a zip archive; the body lives in word/document.xml. Paragraph
// boundaries become newlines so clause headings stay at line starts.
func extractDocxText(path string) (string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return "", &ParseError{Path: path, Format: "docx", Err: err}
	}
	defer reader.Close()

	var documentFile *zip.File
	for _, file := range reader.File {
		if file.Name == "word/document.xml" {
			documentFile = file
			break
		}
	}
	if documentFile == nil {
		return "", &ParseError{Path: path, Format: "docx", Err: fmt.Errorf("word/document.xml not found in archive")}
	}

	rc, err := documentFile.Open()
	if err != nil {
		return "", &ParseError{Path: path, Format: "docx", Err: err}
	}
	raw, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return "", &ParseError{Path: path, Format: "docx", Err: err}
	}

	return cleanDocxXML(string(raw)), nil
}

// cleanDocxXML flattens WordprocessingML to plain text: paragraphs and
// explicit breaks become newlines, tabs become tabs, every other tag is
// stripped, entities are decoded, and whitespace is tidied per line.
func cleanDocxXML(xml string) string {
	text := docxParaRe.ReplaceAllString(xml, "\n")
	text = docxBreakRe.ReplaceAllString(text, "\n")
	text = docxTabRe.ReplaceAllString(text, "\t")
	text = docxAnyTagRe.ReplaceAllString(text, "")

	text = decodeXMLEntities(text)
	text = strings.ReplaceAll(text, "\u00a0", " ")

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(docxSpacesRe.ReplaceAllString(line, " "))
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}

func decodeXMLEntities(s string) string {
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&quot;", "\"")
	s = strings.ReplaceAll(s, "&apos;", "'")
	s = strings.ReplaceAll(s, "&amp;", "&")
	return s
}
