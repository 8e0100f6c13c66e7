// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func writeDocx(t *testing.T, documentXML string) string {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("failed to create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("failed to write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	return writeFile(t, "doc.docx", buf.Bytes())
}

func TestCanExtract(t *testing.T) {
	for _, path := range []string{"a.txt", "b.md", "c.docx", "d.pdf", "UPPER.TXT"} {
		if !CanExtract(path) {
			t.Errorf("expected %s to be supported", path)
		}
	}
	for _, path := range []string{"a.doc", "b.rtf", "c", "d.xlsx"} {
		if CanExtract(path) {
			t.Errorf("expected %s to be unsupported", path)
		}
	}
}

func TestText_PlainText(t *testing.T) {
	path := writeFile(t, "doc.txt", []byte("1. First\r\n2. Second\r"))
	text, err := Text(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "1. First\n2. Second\n" {
		t.Errorf("expected line endings normalized, got %q", text)
	}
}

func TestText_Markdown(t *testing.T) {
	path := writeFile(t, "doc.md", []byte("# Title\n\n1. First clause\n"))
	text, err := Text(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "1. First clause") {
		t.Errorf("unexpected text %q", text)
	}
}

func TestText_InvalidUTF8(t *testing.T) {
	path := writeFile(t, "doc.txt", []byte{0xff, 0xfe, 0x00, 0x41})
	_, err := Text(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestText_UnsupportedFormat(t *testing.T) {
	path := writeFile(t, "doc.rtf", []byte("{\\rtf1}"))
	_, err := Text(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if parseErr.Format != "rtf" {
		t.Errorf("expected format rtf, got %q", parseErr.Format)
	}
}

func TestText_MissingFile(t *testing.T) {
	if _, err := Text(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestText_Docx(t *testing.T) {
	path := writeDocx(t, `<?xml version="1.0"?><w:document xmlns:w="ns">`+
		`<w:body><w:p><w:r><w:t>1. First clause</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>2. Second</w:t><w:tab/><w:t>clause</w:t></w:r></w:p>`+
		`</w:body></w:document>`)

	text, err := Text(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", text)
	}
	if lines[0] != "1. First clause" {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2. Second") {
		t.Errorf("unexpected second line %q", lines[1])
	}
}

func TestText_DocxEntitiesAndBreaks(t *testing.T) {
	path := writeDocx(t, `<w:document><w:body>`+
		`<w:p><w:r><w:t>Terms &amp; Conditions</w:t><w:br/><w:t>apply</w:t></w:r></w:p>`+
		`</w:body></w:document>`)

	text, err := Text(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "Terms & Conditions") {
		t.Errorf("expected entity decoded, got %q", text)
	}
	if !strings.Contains(text, "\napply") {
		t.Errorf("expected break converted to newline, got %q", text)
	}
}

func TestText_DocxWithoutDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("word/styles.xml")
	w.Write([]byte("<styles/>"))
	zw.Close()
	path := writeFile(t, "doc.docx", buf.Bytes())

	_, err := Text(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestText_CorruptDocx(t *testing.T) {
	path := writeFile(t, "doc.docx", []byte("not a zip archive"))
	_, err := Text(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestText_CorruptPDF(t *testing.T) {
	path := writeFile(t, "doc.pdf", []byte("%PDF-1.4 truncated garbage"))
	_, err := Text(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}
