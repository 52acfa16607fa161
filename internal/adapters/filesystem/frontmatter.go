package filesystem

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"friendtracker/internal/domain"
)

const headerDelimiter = "---"

// splitHeader separates a document into its raw frontmatter block and its
// free-form body. The header starts with a `---` line at byte zero and
// ends at the next line that is exactly `---`. The body is returned
// verbatim, byte for byte.
func splitHeader(content string) (header, body string, ok bool) {
	if !strings.HasPrefix(content, headerDelimiter+"\n") {
		return "", "", false
	}

	pos := len(headerDelimiter) + 1
	for pos <= len(content) {
		lineEnd := strings.IndexByte(content[pos:], '\n')
		if lineEnd < 0 {
			if content[pos:] == headerDelimiter {
				return content[len(headerDelimiter)+1 : pos], "", true
			}
			return "", "", false
		}
		if content[pos:pos+lineEnd] == headerDelimiter {
			return content[len(headerDelimiter)+1 : pos], content[pos+lineEnd+1:], true
		}
		pos += lineEnd + 1
	}
	return "", "", false
}

// parseDocument decodes a contact document into its header record and
// body. A document without a frontmatter block yields a nil record and
// the full content as body.
func parseDocument(content string) (*domain.Record, string, error) {
	header, body, ok := splitHeader(content)
	if !ok {
		return nil, content, nil
	}

	var rec domain.Record
	if err := yaml.Unmarshal([]byte(header), &rec); err != nil {
		return nil, body, fmt.Errorf("parse contact header: %w", err)
	}
	return &rec, body, nil
}

// renderDocument serializes a header record and body back into document
// form. The body is appended untouched.
func renderDocument(rec *domain.Record, body string) (string, error) {
	out, err := yaml.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("render contact header: %w", err)
	}

	var b strings.Builder
	b.WriteString(headerDelimiter)
	b.WriteByte('\n')
	b.Write(out)
	b.WriteString(headerDelimiter)
	b.WriteByte('\n')
	b.WriteString(body)
	return b.String(), nil
}
