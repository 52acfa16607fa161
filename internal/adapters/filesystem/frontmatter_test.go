package filesystem

import (
	"strings"
	"testing"

	"friendtracker/internal/domain"
)

func TestSplitHeader(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantHeader string
		wantBody   string
		wantOK     bool
	}{
		{
			name:       "header and body",
			content:    "---\nname: Ada\n---\nSome notes.\n",
			wantHeader: "name: Ada\n",
			wantBody:   "Some notes.\n",
			wantOK:     true,
		},
		{
			name:       "header without body",
			content:    "---\nname: Ada\n---\n",
			wantHeader: "name: Ada\n",
			wantBody:   "",
			wantOK:     true,
		},
		{
			name:       "closing delimiter at end of file without newline",
			content:    "---\nname: Ada\n---",
			wantHeader: "name: Ada\n",
			wantBody:   "",
			wantOK:     true,
		},
		{
			name:    "no header",
			content: "Just some markdown.\n",
			wantOK:  false,
		},
		{
			name:    "delimiter not at byte zero",
			content: "\n---\nname: Ada\n---\n",
			wantOK:  false,
		},
		{
			name:    "unterminated header",
			content: "---\nname: Ada\n",
			wantOK:  false,
		},
		{
			name:       "body containing delimiter-like line",
			content:    "---\nname: Ada\n---\nbefore\n---\nafter\n",
			wantHeader: "name: Ada\n",
			wantBody:   "before\n---\nafter\n",
			wantOK:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header, body, ok := splitHeader(tt.content)
			if ok != tt.wantOK {
				t.Fatalf("splitHeader() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if header != tt.wantHeader {
				t.Errorf("header = %q, want %q", header, tt.wantHeader)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestParseDocument(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		content := "---\nname: Ada Lovelace\nbirthday: \"1815-12-10\"\nrelationship: colleague\ninteractions:\n  - date: \"2024-01-15\"\n    text: coffee\n---\nShe wrote the first program.\n"

		rec, body, err := parseDocument(content)
		if err != nil {
			t.Fatalf("parseDocument() error = %v", err)
		}
		if rec.Name != "Ada Lovelace" {
			t.Errorf("Name = %q, want %q", rec.Name, "Ada Lovelace")
		}
		if rec.Birthday != "1815-12-10" {
			t.Errorf("Birthday = %q, want %q", rec.Birthday, "1815-12-10")
		}
		if len(rec.Interactions) != 1 || rec.Interactions[0].Text != "coffee" {
			t.Errorf("Interactions = %+v, want one coffee entry", rec.Interactions)
		}
		if body != "She wrote the first program.\n" {
			t.Errorf("body = %q", body)
		}
	})

	t.Run("unknown keys land in extras", func(t *testing.T) {
		content := "---\nname: Ada\nfavorite color: blue\n---\n"

		rec, _, err := parseDocument(content)
		if err != nil {
			t.Fatalf("parseDocument() error = %v", err)
		}
		if got := rec.Field("favorite color"); got != "blue" {
			t.Errorf("Field(favorite color) = %q, want %q", got, "blue")
		}
	})

	t.Run("no header", func(t *testing.T) {
		rec, body, err := parseDocument("plain markdown\n")
		if err != nil {
			t.Fatalf("parseDocument() error = %v", err)
		}
		if rec != nil {
			t.Errorf("record = %+v, want nil", rec)
		}
		if body != "plain markdown\n" {
			t.Errorf("body = %q", body)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, _, err := parseDocument("---\nname: [unclosed\n---\n")
		if err == nil {
			t.Fatal("parseDocument() expected error for malformed yaml")
		}
		if !strings.Contains(err.Error(), "parse contact header") {
			t.Errorf("error = %v, want parse contact header wrapping", err)
		}
	})
}

func TestRenderDocumentRoundTrip(t *testing.T) {
	rec := &domain.Record{
		Name:         "Grace Hopper",
		Birthday:     "1906-12-09",
		Relationship: "mentor",
		Interactions: []domain.Interaction{
			{Date: "2024-03-01", Text: "talked about compilers"},
		},
	}
	rec.SetField("ship", "USS Hopper")
	body := "Invented the term debugging.\n"

	content, err := renderDocument(rec, body)
	if err != nil {
		t.Fatalf("renderDocument() error = %v", err)
	}

	got, gotBody, err := parseDocument(content)
	if err != nil {
		t.Fatalf("parseDocument() error = %v", err)
	}
	if got.Name != rec.Name || got.Birthday != rec.Birthday || got.Relationship != rec.Relationship {
		t.Errorf("round trip changed header: got %+v", got)
	}
	if got.Field("ship") != "USS Hopper" {
		t.Errorf("Field(ship) = %q, want %q", got.Field("ship"), "USS Hopper")
	}
	if len(got.Interactions) != 1 || got.Interactions[0].Date != "2024-03-01" {
		t.Errorf("Interactions = %+v", got.Interactions)
	}
	if gotBody != body {
		t.Errorf("body = %q, want %q", gotBody, body)
	}
}

func TestRenderDocumentOmitsEmptyFields(t *testing.T) {
	content, err := renderDocument(&domain.Record{Name: "Ada"}, "")
	if err != nil {
		t.Fatalf("renderDocument() error = %v", err)
	}
	if strings.Contains(content, "email") || strings.Contains(content, "interactions") {
		t.Errorf("empty fields serialized: %q", content)
	}
}
