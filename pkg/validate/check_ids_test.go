package validate

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckIDs_Mixed(t *testing.T) {
	input := strings.Join([]string{"1", " 2 ", "", "zero", "0", "35"}, "\n")
	var out bytes.Buffer

	res, err := CheckIDs(context.Background(), NewProductIDValidator(), strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Valid != 3 || res.Invalid != 2 {
		t.Fatalf("unexpected counters: %+v", res)
	}
	if got := out.String(); got != "1\n2\n35\n" {
		t.Fatalf("unexpected output: %q", got)
	}
	if res.String() != "3 valid / 2 invalid" {
		t.Fatalf("unexpected summary: %s", res)
	}
}

func TestCheckIDs_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := CheckIDs(ctx, NewProductIDValidator(), strings.NewReader("1\n2\n"), &bytes.Buffer{})
	if err == nil {
		t.Fatalf("expected context error")
	}
}

func TestCheckFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.txt")
	if err := os.WriteFile(path, []byte("10\n-3\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	res, err := CheckFile(context.Background(), NewProductIDValidator(), path, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Valid != 1 || res.Invalid != 1 || out.String() != "10\n" {
		t.Fatalf("unexpected result: %+v out=%q", res, out.String())
	}
}

func TestCheckFile_Missing(t *testing.T) {
	_, err := CheckFile(context.Background(), NewProductIDValidator(), filepath.Join(t.TempDir(), "nope"), &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "open file") {
		t.Fatalf("expected open error, got %v", err)
	}
}
