// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package platform

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Detect extracts the text of the PDF at path and identifies the issuing
// platform, trip count, and page count. A file that cannot be parsed as a
// PDF is an error.
func Detect(path string) (Meta, error) {
	content, pages, err := extractText(path)
	if err != nil {
		return Meta{}, err
	}

	tag, count := DetectText(content)
	return Meta{Platform: tag, TripCount: count, Pages: pages}, nil
}

// extractText returns the document text flattened to a single string with
// blank lines removed, plus the page count. Platform markers sometimes span
// line breaks in the extracted text, which the flattening glues back
// together.
func extractText(path string) (string, int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("parsing %s: not a valid PDF: %w", path, err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", 0, fmt.Errorf("extracting text from %s: %w", path, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", 0, fmt.Errorf("reading text from %s: %w", path, err)
	}

	return flatten(buf.String()), r.NumPage(), nil
}

// flatten joins all non-blank lines into one string.
func flatten(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		b.WriteString(line)
	}
	return b.String()
}
