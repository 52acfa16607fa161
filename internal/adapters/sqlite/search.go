package sqlite

import (
	"strings"

	"friendtracker/internal/domain"
)

const snippetLimit = 120

// Search returns matches for a case-insensitive keyword across contact
// fields, interaction entries, and note bodies
func (idx *Index) Search(query string) ([]domain.SearchResult, error) {
	pattern := "%" + escapeLike(query) + "%"

	var results []domain.SearchResult

	rows, err := idx.db.Query(`
		SELECT path, name,
			CASE
				WHEN name LIKE ? ESCAPE '\' THEN 'name'
				WHEN relationship LIKE ? ESCAPE '\' THEN 'relationship'
				WHEN email LIKE ? ESCAPE '\' THEN 'email'
				WHEN phone LIKE ? ESCAPE '\' THEN 'phone'
				WHEN notes LIKE ? ESCAPE '\' THEN 'notes'
				ELSE 'body'
			END AS field,
			CASE
				WHEN name LIKE ? ESCAPE '\' THEN name
				WHEN relationship LIKE ? ESCAPE '\' THEN relationship
				WHEN email LIKE ? ESCAPE '\' THEN email
				WHEN phone LIKE ? ESCAPE '\' THEN phone
				WHEN notes LIKE ? ESCAPE '\' THEN notes
				ELSE body
			END AS snippet
		FROM contacts
		WHERE name LIKE ? ESCAPE '\'
			OR relationship LIKE ? ESCAPE '\'
			OR email LIKE ? ESCAPE '\'
			OR phone LIKE ? ESCAPE '\'
			OR notes LIKE ? ESCAPE '\'
			OR body LIKE ? ESCAPE '\'
		ORDER BY name
	`, pattern, pattern, pattern, pattern, pattern,
		pattern, pattern, pattern, pattern, pattern,
		pattern, pattern, pattern, pattern, pattern, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var r domain.SearchResult
		if err := rows.Scan(&r.Path, &r.Name, &r.Field, &r.Snippet); err != nil {
			return nil, err
		}
		r.Snippet = trimSnippet(r.Snippet, query)
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	interactionRows, err := idx.db.Query(`
		SELECT i.path, c.name, i.date, i.text
		FROM interactions i
		JOIN contacts c ON c.path = i.path
		WHERE i.text LIKE ? ESCAPE '\'
		ORDER BY i.date DESC
	`, pattern)
	if err != nil {
		return nil, err
	}
	defer interactionRows.Close()

	for interactionRows.Next() {
		var r domain.SearchResult
		var date, text string
		if err := interactionRows.Scan(&r.Path, &r.Name, &date, &text); err != nil {
			return nil, err
		}
		r.Field = "interaction"
		r.Snippet = date + ": " + trimSnippet(text, query)
		results = append(results, r)
	}
	return results, interactionRows.Err()
}

// escapeLike escapes the LIKE metacharacters in a user query
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

// trimSnippet shortens a long match around the first occurrence of the
// query so multi-paragraph bodies stay readable in a result row. It
// slices on rune boundaries so multi-byte text is never split.
func trimSnippet(text, query string) string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
	runes := []rune(text)
	if len(runes) <= snippetLimit {
		return text
	}

	pos := 0
	if i := strings.Index(strings.ToLower(text), strings.ToLower(query)); i > 0 {
		pos = len([]rune(text[:i]))
	}
	start := pos - snippetLimit/2
	if start < 0 {
		start = 0
	}
	end := start + snippetLimit
	if end > len(runes) {
		end = len(runes)
		start = end - snippetLimit
	}

	snippet := string(runes[start:end])
	if start > 0 {
		snippet = "…" + snippet
	}
	if end < len(runes) {
		snippet += "…"
	}
	return snippet
}
