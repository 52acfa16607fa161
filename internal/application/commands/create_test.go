package commands

import (
	"context"
	"testing"
)

func TestCreateContactCommand_Validate(t *testing.T) {
	tests := []struct {
		name     string
		contact  string
		birthday string
		wantErr  bool
		errMsg   string
	}{
		{
			name:    "valid minimal contact",
			contact: "Ada Lovelace",
			wantErr: false,
		},
		{
			name:     "valid contact with birthday",
			contact:  "Ada Lovelace",
			birthday: "1990-03-04",
			wantErr:  false,
		},
		{
			name:    "empty name",
			contact: "",
			wantErr: true,
			errMsg:  "name is required",
		},
		{
			name:    "whitespace-only name",
			contact: "   ",
			wantErr: true,
			errMsg:  "name is required",
		},
		{
			name:     "malformed birthday",
			contact:  "Ada",
			birthday: "03/04/1990",
			wantErr:  true,
			errMsg:   "expected YYYY-MM-DD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &CreateContactCommand{
				Name:     tt.contact,
				Birthday: tt.birthday,
			}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestCreateContactCommand_Execute(t *testing.T) {
	store := newMemStore()

	cmd := NewCreateContactCommand(store, "Ada Lovelace")
	cmd.Birthday = "1990-03-04"
	cmd.Relationship = "Friend"

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	rec, _, err := store.Read(result.Path)
	if err != nil {
		t.Fatalf("created contact not readable: %v", err)
	}
	if rec.Name != "Ada Lovelace" {
		t.Errorf("name = %q", rec.Name)
	}
	if rec.Relationship != "friend" {
		t.Errorf("relationship should be stored lowercase, got %q", rec.Relationship)
	}
	if rec.Created == "" || rec.Updated == "" {
		t.Errorf("created/updated stamps missing: %+v", rec)
	}
}

func TestCreateContactCommand_DuplicateName(t *testing.T) {
	store := newMemStore()

	first, err := NewCreateContactCommand(store, "Ada").Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewCreateContactCommand(store, "Ada").Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if first.Path == second.Path {
		t.Errorf("duplicate name should get a de-duplicated path, both got %s", first.Path)
	}
}
