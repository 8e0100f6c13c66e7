// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"errors"
	"os"
	"strings"
	"unicode/utf8"
)

var errNotUTF8 = errors.New("content is not valid UTF-8 text")

// extractPlainText reads a text file as-is, normalizing line endings.
func extractPlainText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ParseError{Path: path, Format: "text", Err: err}
	}
	if !utf8.Valid(data) {
		return "", &ParseError{Path: path, Format: "text", Err: errNotUTF8}
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text, nil
}
