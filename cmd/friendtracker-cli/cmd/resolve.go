package cmd

import (
	"fmt"
	"strings"
)

// resolveContact finds the document path for a contact name,
// case-insensitively.
func resolveContact(name string) (string, error) {
	docs, err := GetStore().List()
	if err != nil {
		return "", err
	}
	for _, doc := range docs {
		if doc.Record != nil && strings.EqualFold(doc.Record.Name, name) {
			return doc.Path, nil
		}
	}
	return "", fmt.Errorf("no contact named %q", name)
}
