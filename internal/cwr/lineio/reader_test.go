package lineio

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReaderSplitsCRLF(t *testing.T) {
	r := New(strings.NewReader("HDR1\r\nGRH2\r\nTRL3\r\n"))
	lines, err := All(r)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"HDR1", "GRH2", "TRL3"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), lines)
	}
	for i, w := range want {
		if string(lines[i]) != w {
			t.Errorf("line %d: got %q want %q", i, lines[i], w)
		}
	}
}

func TestReaderAcceptsLoneLFWithWarning(t *testing.T) {
	r := New(strings.NewReader("HDR1\nGRH2\n"))
	_, line, warnings, err := r.Next()
	if err != nil {
		t.Fatal(err)
	}
	if string(line) != "HDR1" {
		t.Fatalf("got %q", line)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one lone-LF warning, got %v", warnings)
	}
}

func TestReaderSuppressesTrailingBlankLine(t *testing.T) {
	r := New(strings.NewReader("HDR1\r\n"))
	lines, err := All(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected exactly one line, got %v", lines)
	}
}

func TestReaderHandlesMissingFinalDelimiter(t *testing.T) {
	r := New(strings.NewReader("HDR1\r\nTRL2"))
	lines, err := All(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 || string(lines[1]) != "TRL2" {
		t.Fatalf("got %v", lines)
	}
}

func TestReaderTracksLineNumbers(t *testing.T) {
	r := New(strings.NewReader("A\r\nB\r\nC\r\n"))
	for i := 1; i <= 3; i++ {
		n, _, _, err := r.Next()
		if err != nil {
			t.Fatal(err)
		}
		if n != i {
			t.Fatalf("got line number %d, want %d", n, i)
		}
	}
	if _, _, _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
}
