package chat

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestLogWritesCSV(t *testing.T) {
	dir := t.TempDir()
	start := time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC)

	l, err := OpenLog(dir, start, zap.NewNop())
	if err != nil {
		t.Fatalf("OpenLog failed: %v", err)
	}

	l.Append(Message{Role: RoleUser, Text: "hi neko", Time: start})
	l.Append(Message{Role: RoleNeko, Text: "Meow, hi!", Time: start.Add(2 * time.Second)})
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	path := filepath.Join(dir, "chat_20260830_140500.csv")
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("expected session file at %s: %v", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading CSV back: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "time" || rows[0][1] != "role" || rows[0][2] != "text" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][1] != RoleUser || rows[1][2] != "hi neko" {
		t.Errorf("unexpected first row: %v", rows[1])
	}
	if rows[2][1] != RoleNeko || rows[2][2] != "Meow, hi!" {
		t.Errorf("unexpected second row: %v", rows[2])
	}
	if rows[1][0] != "2026-08-30T14:05:00Z" {
		t.Errorf("timestamp not RFC3339: %s", rows[1][0])
	}
}

func TestLogCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	l, err := OpenLog(dir, time.Now(), zap.NewNop())
	if err != nil {
		t.Fatalf("OpenLog failed: %v", err)
	}
	l.Close()

	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one file in %s, got %v (err %v)", dir, entries, err)
	}
}
