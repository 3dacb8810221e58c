package mysql

import "testing"

func TestQuoteIdent(t *testing.T) {
	d := New()
	if got := d.QuoteIdent("users"); got != "`users`" {
		t.Errorf("Expected `users`, got %s", got)
	}
	if got := d.QuoteIdent("we`ird"); got != "`we``ird`" {
		t.Errorf("Expected `we``ird`, got %s", got)
	}
}

func TestQuoteValue(t *testing.T) {
	got, err := New().QuoteValue("a'b")
	if err != nil || got != "'a''b'" {
		t.Errorf("Expected 'a''b', got %s err=%v", got, err)
	}
}

func TestPlaceholder(t *testing.T) {
	if got := New().Placeholder("x"); got != ":x" {
		t.Errorf("Expected :x, got %s", got)
	}
}
