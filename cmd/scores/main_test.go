package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/automoto/lostpath/game"
)

var at = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	scores := []game.ScoreEntry{
		{Score: 2600, Level: 3, At: at},
		{Score: 900, Level: 2, At: at},
	}
	if err := writeCSV(&buf, scores); err != nil {
		t.Fatalf("writeCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 rows:\n%s", len(lines), buf.String())
	}
	if lines[0] != "score,level,at" {
		t.Errorf("header = %q, want score,level,at", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2600,3,") {
		t.Errorf("first row = %q, want the best score first", lines[1])
	}
}

func TestWriteTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := writeTable(&buf, nil); err != nil {
		t.Fatalf("writeTable: %v", err)
	}
	if got := buf.String(); got != "no scores yet\n" {
		t.Errorf("output = %q", got)
	}
}

func TestWriteTableRanks(t *testing.T) {
	var buf bytes.Buffer
	scores := []game.ScoreEntry{{Score: 800, Level: 2, At: at}, {Score: 50, Level: 1, At: at}}
	if err := writeTable(&buf, scores); err != nil {
		t.Fatalf("writeTable: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, " 1.    800  level 2") || !strings.Contains(out, " 2.     50  level 1") {
		t.Errorf("unexpected table:\n%s", out)
	}
}
