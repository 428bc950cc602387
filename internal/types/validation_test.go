package types

import (
	"strings"
	"testing"
)

func TestValidateIDPresent(t *testing.T) {
	t.Parallel()
	if err := ValidateIDPresent("col1", "collectionId"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateIDPresent("  ", "collectionId"); err == nil {
		t.Fatal("expected error for blank id")
	}
}

func TestValidateMessageText(t *testing.T) {
	t.Parallel()
	if err := ValidateMessageText(strings.Repeat("x", MaxMessageLength)); err != nil {
		t.Fatalf("message at limit should pass: %v", err)
	}
	if err := ValidateMessageText(strings.Repeat("x", MaxMessageLength+1)); err == nil {
		t.Fatal("message over limit should fail")
	}
	// Multi-byte runes count as single characters.
	if err := ValidateMessageText(strings.Repeat("é", MaxMessageLength)); err != nil {
		t.Fatalf("multi-byte message at limit should pass: %v", err)
	}
}

func TestValidateContact(t *testing.T) {
	t.Parallel()
	ok := Contact{Name: "Ana", Email: "ana@example.com", Phone: "+55 11 99999-0000"}
	if err := ValidateContact(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateContact(Contact{Email: "ana@example.com"}); err == nil {
		t.Fatal("expected error for missing name")
	}
	if err := ValidateContact(Contact{Name: "Ana", Email: "not-an-email"}); err == nil {
		t.Fatal("expected error for invalid email")
	}
}

func TestCardPatchLastWriteWins(t *testing.T) {
	t.Parallel()
	c := Card{ID: "card-1"}
	first, second := "first", "second"
	CardPatch{Title: &first}.Apply(&c)
	CardPatch{Title: &second}.Apply(&c)
	if c.Title != "second" {
		t.Fatalf("title = %q, want %q", c.Title, "second")
	}

	// Nil fields leave current values untouched.
	msg := "hello"
	CardPatch{MessageText: &msg}.Apply(&c)
	if c.Title != "second" || c.MessageText != "hello" {
		t.Fatalf("patch clobbered unrelated field: %+v", c)
	}
}
