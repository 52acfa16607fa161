package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"friendtracker/internal/application/commands"
	"friendtracker/internal/ports"
)

// RegisterWriteTools adds all contact-mutating tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, store ports.ContactStore) {
	s.AddTool(addContactTool(), addContactHandler(store))
	s.AddTool(logInteractionTool(), logInteractionHandler(store))
	s.AddTool(appendNoteTool(), appendNoteHandler(store))
	s.AddTool(setFieldTool(), setFieldHandler(store))
	s.AddTool(trashContactTool(), trashContactHandler(store))
}

// --- add_contact ---

func addContactTool() mcp.Tool {
	return mcp.NewTool("add_contact",
		mcp.WithDescription("Create a new contact document. Only the name is required."),
		mcp.WithString("name",
			mcp.Description("Contact name"),
			mcp.Required(),
		),
		mcp.WithString("birthday",
			mcp.Description("Birthday as YYYY-MM-DD"),
		),
		mcp.WithString("email",
			mcp.Description("Email address"),
		),
		mcp.WithString("phone",
			mcp.Description("Phone number"),
		),
		mcp.WithString("relationship",
			mcp.Description("Relationship (e.g. friend, family, colleague)"),
		),
	)
}

func addContactHandler(store ports.ContactStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewCreateContactCommand(store, req.GetString("name", ""))
		cmd.Birthday = req.GetString("birthday", "")
		cmd.Email = req.GetString("email", "")
		cmd.Phone = req.GetString("phone", "")
		cmd.Relationship = req.GetString("relationship", "")

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- log_interaction ---

func logInteractionTool() mcp.Tool {
	return mcp.NewTool("log_interaction",
		mcp.WithDescription("Log a dated interaction with a contact."),
		mcp.WithString("name",
			mcp.Description("Contact name"),
			mcp.Required(),
		),
		mcp.WithString("date",
			mcp.Description("Date as YYYY-MM-DD"),
			mcp.Required(),
		),
		mcp.WithString("text",
			mcp.Description("What happened"),
			mcp.Required(),
		),
	)
}

func logInteractionHandler(store ports.ContactStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := resolveContact(store, req.GetString("name", ""))
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewAddInteractionCommand(store, path,
			req.GetString("date", ""), req.GetString("text", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- append_note ---

func appendNoteTool() mcp.Tool {
	return mcp.NewTool("append_note",
		mcp.WithDescription("Append a paragraph to a contact's free-form notes, the markdown body below the header."),
		mcp.WithString("name",
			mcp.Description("Contact name"),
			mcp.Required(),
		),
		mcp.WithString("text",
			mcp.Description("Note text"),
			mcp.Required(),
		),
	)
}

func appendNoteHandler(store ports.ContactStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := resolveContact(store, req.GetString("name", ""))
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewAppendNoteCommand(store, path, req.GetString("text", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- set_field ---

func setFieldTool() mcp.Tool {
	return mcp.NewTool("set_field",
		mcp.WithDescription("Set one header field on a contact. Unknown field names become custom fields. An empty value clears the field."),
		mcp.WithString("name",
			mcp.Description("Contact name"),
			mcp.Required(),
		),
		mcp.WithString("field",
			mcp.Description("Field to set (birthday, email, phone, address, relationship, notes, or a custom name)"),
			mcp.Required(),
		),
		mcp.WithString("value",
			mcp.Description("New value. Empty clears the field."),
		),
	)
}

func setFieldHandler(store ports.ContactStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")
		field := req.GetString("field", "")

		path, err := resolveContact(store, name)
		if err != nil {
			return toolError(err)
		}

		// Renames go through the rename flow so the filename follows.
		if field == "name" {
			cmd := commands.NewRenameContactCommand(store, path, req.GetString("value", ""))
			result, err := cmd.Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message), nil
		}

		cmd := commands.NewSetFieldCommand(store, path, field, req.GetString("value", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- trash_contact ---

func trashContactTool() mcp.Tool {
	return mcp.NewTool("trash_contact",
		mcp.WithDescription("Move a contact document to the collection's trash folder. Nothing is deleted."),
		mcp.WithString("name",
			mcp.Description("Contact name"),
			mcp.Required(),
		),
	)
}

func trashContactHandler(store ports.ContactStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")
		path, err := resolveContact(store, name)
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewTrashContactCommand(store, path)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s (%s)", result.Message, name)), nil
	}
}
