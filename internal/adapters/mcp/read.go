package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"friendtracker/internal/application"
	"friendtracker/internal/application/commands"
	"friendtracker/internal/domain"
	"friendtracker/internal/ports"
)

// RegisterReadTools adds all read-only contact tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store ports.ContactStore, index ports.ContactIndex) {
	agg := application.NewAggregator(store)
	s.AddTool(listContactsTool(), listContactsHandler(agg))
	s.AddTool(getContactTool(), getContactHandler(store))
	s.AddTool(searchTool(), searchHandler(index))
}

// --- list_contacts ---

func listContactsTool() mcp.Tool {
	return mcp.NewTool("list_contacts",
		mcp.WithDescription("List contacts with ages, upcoming birthdays, and last interactions. Optionally sorted and filtered."),
		mcp.WithString("sort",
			mcp.Description("Sort column: name, age, birthday, daysUntilBirthday, relationship, lastInteraction. Defaults to name."),
		),
		mcp.WithString("relationship",
			mcp.Description("Only contacts with this relationship value (e.g. friend, family)."),
		),
	)
}

func listContactsHandler(agg *application.Aggregator) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sort := domain.SortConfig{Column: domain.SortByName, Direction: domain.Ascending}
		if col := req.GetString("sort", ""); col != "" {
			sort.Column = domain.SortColumn(col)
		}
		filter := domain.Filter{
			Relationship: strings.ToLower(req.GetString("relationship", "")),
		}

		cmd := commands.NewListContactsCommand(agg, sort, filter)
		contacts, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(contacts) == 0 {
			return mcp.NewToolResultText("No contacts."), nil
		}

		var sb strings.Builder
		for _, c := range contacts {
			sb.WriteString(formatContactLine(c))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- get_contact ---

func getContactTool() mcp.Tool {
	return mcp.NewTool("get_contact",
		mcp.WithDescription("Read one contact: all header fields, the interaction log, and the free-form notes."),
		mcp.WithString("name",
			mcp.Description("Contact name"),
			mcp.Required(),
		),
	)
}

func getContactHandler(store ports.ContactStore) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")
		if name == "" {
			return toolError(fmt.Errorf("name is required"))
		}

		path, err := resolveContact(store, name)
		if err != nil {
			return toolError(err)
		}
		rec, body, err := store.Read(path)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "name: %s\n", rec.Name)
		for _, field := range []string{"birthday", "email", "phone", "address", "relationship", "notes"} {
			if v := rec.Field(field); v != "" {
				fmt.Fprintf(&sb, "%s: %s\n", field, v)
			}
		}
		for k := range rec.Extras {
			fmt.Fprintf(&sb, "%s: %s\n", k, rec.Field(k))
		}
		if len(rec.Interactions) > 0 {
			sb.WriteString("\ninteractions:\n")
			for _, in := range rec.Interactions {
				fmt.Fprintf(&sb, "  %s  %s\n", in.Date, in.Text)
			}
		}
		if strings.TrimSpace(body) != "" {
			sb.WriteString("\n")
			sb.WriteString(body)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Full-text search across contact fields, interaction entries, and notes."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
	)
}

func searchHandler(index ports.ContactIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")

		cmd := commands.NewSearchCommand(index, query)
		results, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%s  [%s]  %s\n", r.Name, r.Field, r.Snippet)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

// resolveContact finds the document path for a contact name,
// case-insensitively.
func resolveContact(store ports.ContactStore, name string) (string, error) {
	docs, err := store.List()
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

func formatContactLine(c domain.Contact) string {
	var parts []string
	parts = append(parts, c.Name)
	if c.Age != nil {
		parts = append(parts, fmt.Sprintf("age %d", *c.Age))
	}
	if c.FormattedBirthday != "" {
		parts = append(parts, c.FormattedBirthday)
	}
	if c.DaysUntilBirthday != nil {
		parts = append(parts, fmt.Sprintf("birthday in %dd", *c.DaysUntilBirthday))
	}
	if c.Relationship != "" {
		parts = append(parts, c.Relationship)
	}
	if c.LastInteraction != "" {
		parts = append(parts, "last seen "+c.LastInteraction+" ago")
	}
	return strings.Join(parts, "  ")
}
