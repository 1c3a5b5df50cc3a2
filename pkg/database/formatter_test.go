package database

import (
	"testing"

	"rowstore/pkg/planner"
	"rowstore/pkg/row"
)

// TestFormatResult_Select tests formatting of select results
func TestFormatResult_Select(t *testing.T) {
	raw := &planner.SelectQueryResult{
		Rows: []row.Row{
			{ID: 1, Username: "alice", Email: "alice@example.com"},
			{ID: 2, Username: "bob", Email: "bob@example.com"},
		},
	}

	result := formatResult(raw)

	if !result.Success {
		t.Error("expected Success=true")
	}

	if len(result.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(result.Rows))
	}

	if result.Rows[1][0] != "2" || result.Rows[1][1] != "bob" || result.Rows[1][2] != "bob@example.com" {
		t.Errorf("unexpected row[1]: %v", result.Rows[1])
	}

	wantLines := []string{"(1, alice, alice@example.com)", "(2, bob, bob@example.com)", "Executed."}
	if len(result.Lines) != len(wantLines) {
		t.Fatalf("expected %d lines, got %v", len(wantLines), result.Lines)
	}
	for i, l := range wantLines {
		if result.Lines[i] != l {
			t.Errorf("line %d = %q, want %q", i, result.Lines[i], l)
		}
	}

	if result.Message != "2 row(s) returned" {
		t.Errorf("unexpected message %q", result.Message)
	}
}

// TestFormatResult_SelectEmpty tests formatting of empty select results
func TestFormatResult_SelectEmpty(t *testing.T) {
	result := formatResult(&planner.SelectQueryResult{})

	if !result.Success {
		t.Error("expected Success=true for empty result")
	}
	if len(result.Rows) != 0 {
		t.Errorf("expected 0 rows, got %d", len(result.Rows))
	}
	if len(result.Lines) != 1 || result.Lines[0] != MsgExecuted {
		t.Errorf("expected only %q, got %v", MsgExecuted, result.Lines)
	}
}

// TestFormatResult_Insert tests formatting of insert results
func TestFormatResult_Insert(t *testing.T) {
	result := formatResult(&planner.DMLResult{RowsAffected: 1})

	if !result.Success || result.RowsAffected != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
	if result.Message != "1 row(s) inserted" {
		t.Errorf("unexpected message %q", result.Message)
	}
}

func TestUnrecognizedKeyword(t *testing.T) {
	if got := UnrecognizedKeyword("foo bar"); got != "Unrecognized keyword at start of 'foo bar'." {
		t.Errorf("got %q", got)
	}
}
