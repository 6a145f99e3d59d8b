package domain

import "testing"

func TestNewCase_Normalizes(t *testing.T) {
	c, err := NewCase(" Acme CORP ", "  quarterly audit  ")
	if err != nil {
		t.Fatalf("NewCase returned error: %v", err)
	}
	if c.Name != "acme corp" {
		t.Fatalf("expected normalized name, got %q", c.Name)
	}
	if c.Description != "quarterly audit" {
		t.Fatalf("expected trimmed description, got %q", c.Description)
	}
	if c.DisplayName() != "Acme Corp" {
		t.Fatalf("unexpected display name %q", c.DisplayName())
	}
}

func TestNewCase_RequiredFields(t *testing.T) {
	_, err := NewCase("   ", "")
	if err == nil {
		t.Fatalf("expected error")
	}
	if msg := validationMessage(t, err); msg != "Name is required; Description is required" {
		t.Fatalf("unexpected message %q", msg)
	}
}
