package domain

// SearchResult is one match from the contact search index.
type SearchResult struct {
	Path    string // backing document path
	Name    string // contact name
	Field   string // where the match occurred: name, relationship, interaction, body
	Snippet string // the matched text
}

// IndexStats summarizes one index sync pass.
type IndexStats struct {
	FilesScanned        int
	ContactsIndexed     int
	InteractionsIndexed int
	FilesSkipped        int
}
