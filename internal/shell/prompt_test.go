package shell

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestIntInRangeRepromptsOnBadInput(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("abc\n-1\n7\n 2 \n"), &out)

	got, err := p.IntInRange("Zone: ", 1, 3)
	if err != nil {
		t.Fatalf("IntInRange error: %v", err)
	}
	if got != 2 {
		t.Fatalf("IntInRange = %d, want 2", got)
	}
	text := out.String()
	if strings.Count(text, "Zone: ") != 4 {
		t.Fatalf("expected 4 prompts, got output %q", text)
	}
	if strings.Count(text, "Please enter a whole number.") != 2 {
		t.Fatalf("expected 2 whole-number rejections, got %q", text)
	}
	if !strings.Contains(text, "Please enter a number from 1 to 3.") {
		t.Fatalf("expected range rejection, got %q", text)
	}
}

func TestIntInRangeOverflow(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("99999999999999999999999\n1\n"), &out)
	got, err := p.IntInRange("Zone: ", 1, 3)
	if err != nil || got != 1 {
		t.Fatalf("IntInRange = %d, %v", got, err)
	}
	if !strings.Contains(out.String(), "Please enter a number from 1 to 3.") {
		t.Fatalf("expected range rejection, got %q", out.String())
	}
}

func TestNonNegativeInt(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\n1.5\n0\n"), &out)

	got, err := p.NonNegativeInt("Adults: ", 999)
	if err != nil {
		t.Fatalf("NonNegativeInt error: %v", err)
	}
	if got != 0 {
		t.Fatalf("NonNegativeInt = %d, want 0", got)
	}
	text := out.String()
	if !strings.Contains(text, "Please enter a number (0 or more).") {
		t.Fatalf("expected empty-input rejection, got %q", text)
	}
	if !strings.Contains(text, "Please enter a whole number (0 or more).") {
		t.Fatalf("expected non-digit rejection, got %q", text)
	}
}

func TestPromptInputClosed(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("x\n"), &out)
	if _, err := p.IntInRange("Zone: ", 1, 3); !errors.Is(err, ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
}

func TestPromptLastLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("3"), &out)
	got, err := p.IntInRange("Zone: ", 1, 3)
	if err != nil || got != 3 {
		t.Fatalf("IntInRange = %d, %v", got, err)
	}
}

func TestConfirm(t *testing.T) {
	tests := map[string]bool{"y\n": true, "Y\n": true, " y \n": true, "yes\n": false, "n\n": false, "\n": false}
	for in, want := range tests {
		p := NewPrompter(strings.NewReader(in), &bytes.Buffer{})
		got, err := p.Confirm("Again? ")
		if err != nil {
			t.Fatalf("Confirm(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("Confirm(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNonNegativeIntRejectsAboveMax(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("2000000000000000\n99999999999999999999999\n1000\n999\n"), &out)

	got, err := p.NonNegativeInt("Adults: ", 999)
	if err != nil {
		t.Fatalf("NonNegativeInt error: %v", err)
	}
	if got != 999 {
		t.Fatalf("NonNegativeInt = %d, want 999", got)
	}
	if n := strings.Count(out.String(), "Please enter a number from 0 to 999."); n != 3 {
		t.Fatalf("expected 3 range rejections, got %d in %q", n, out.String())
	}
}
