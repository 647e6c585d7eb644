package main_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

func buildCLI(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping CLI build in short mode")
	}
	bin := filepath.Join(t.TempDir(), "devlingo.bin")
	// Use the full import path so it builds regardless of the current working directory.
	build := exec.Command("go", "build", "-o", bin, "github.com/japaniel/devlingo/cmd/devlingo")
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("failed to build CLI: %v", err)
	}
	return bin
}

func TestCLI_GenerateWithCatalog(t *testing.T) {
	bin := buildCLI(t)
	tmp := t.TempDir()
	outDir := filepath.Join(tmp, "Data", "Phrases")
	dbPath := filepath.Join(tmp, "catalog.db")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	cmd := exec.CommandContext(ctx, bin, "generate", "--out", outDir, "--catalog", dbPath)
	cmd.Dir = tmp
	out, err := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		t.Fatalf("cli timed out, output:\n%s", out)
	}
	if err != nil {
		t.Fatalf("cli failed: %v\noutput:\n%s", err, out)
	}
	if !strings.Contains(string(out), "Generation complete") {
		t.Fatalf("unexpected CLI output; expected success message, got:\n%s", out)
	}

	for _, name := range []string{"slack.json", "email.json"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}

	dbConn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	defer dbConn.Close()

	var reading string
	if err := dbConn.QueryRow(`SELECT reading FROM translations WHERE phrase_id = 'slack_004' AND language = 'ja'`).Scan(&reading); err != nil {
		t.Fatalf("db query failed: %v", err)
	}
	if reading == "" || strings.ContainsRune(reading, '対') {
		t.Fatalf("expected kana reading for slack_004, got %q", reading)
	}
}

func TestCLI_InvalidConfigExitsNonZero(t *testing.T) {
	bin := buildCLI(t)
	tmp := t.TempDir()

	cmd := exec.Command(bin, "--out", filepath.Join(tmp, "out"), "--pattern", "phrases.json")
	cmd.Dir = tmp
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected exit error, got %v\noutput:\n%s", err, out)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "file_pattern") {
		t.Fatalf("expected error to name file_pattern, got:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(tmp, "out")); !os.IsNotExist(err) {
		t.Fatalf("output dir must not be created on failure")
	}
}
