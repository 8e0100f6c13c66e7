// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extract turns binary document formats into line-oriented text.
// The clause segmenter only needs original line breaks preserved so that
// clause headings appear at line starts; everything else about the
// source format is flattened here.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ParseError reports a document that could not be turned into usable
// text. It is a per-document failure: the affected document is reported
// as NEEDS_REVIEW and the rest of the batch continues.
type ParseError struct {
	Path   string
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot extract text from %s (%s): %v", e.Path, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SupportedExtensions lists the file extensions the router dispatches.
func SupportedExtensions() []string {
	return []string{".txt", ".md", ".docx", ".pdf"}
}

// CanExtract reports whether path has a supported extension.
func CanExtract(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range SupportedExtensions() {
		if ext == s {
			return true
		}
	}
	return false
}

// Text extracts raw text from the document at path, dispatching on the
// file extension.
func Text(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt", ".md":
		return extractPlainText(path)
	case ".docx":
		return extractDocxText(path)
	case ".pdf":
		return extractPDFText(path)
	default:
		return "", &ParseError{
			Path:   path,
			Format: strings.TrimPrefix(ext, "."),
			Err:    fmt.Errorf("unsupported file format"),
		}
	}
}
