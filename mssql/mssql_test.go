package mssql

import "testing"

func TestQuoteIdent(t *testing.T) {
	d := New()
	if got := d.QuoteIdent("users"); got != "[users]" {
		t.Errorf("Expected [users], got %s", got)
	}
	if got := d.QuoteIdent("we]ird"); got != "[we]]ird]" {
		t.Errorf("Expected [we]]ird], got %s", got)
	}
}

func TestQuoteValue_BoolsAreBits(t *testing.T) {
	if got, _ := New().QuoteValue(true); got != "1" {
		t.Errorf("Expected 1, got %s", got)
	}
}

func TestPlaceholder(t *testing.T) {
	if got := New().Placeholder("x"); got != "@x" {
		t.Errorf("Expected @x, got %s", got)
	}
}
