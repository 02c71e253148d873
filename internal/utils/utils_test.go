package utils

import (
	"bytes"
	"strings"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
)

func TestFormatCents(t *testing.T) {
	if got := FormatCents(12630); got != "12630 cents" {
		t.Fatalf("FormatCents = %q", got)
	}
	if got := FormatCents(0); got != "0 cents" {
		t.Fatalf("FormatCents(0) = %q", got)
	}
}

func TestFormatDollars(t *testing.T) {
	tests := map[int64]string{
		0:         "$0.00",
		5:         "$0.05",
		12630:     "$126.30",
		123456789: "$1,234,567.89",
		-2105:     "-$21.05",
	}
	for in, want := range tests {
		if got := FormatDollars(in); got != want {
			t.Fatalf("FormatDollars(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestIsDigits(t *testing.T) {
	ok := []string{"0", "3", "0012", "42"}
	bad := []string{"", " 1", "-1", "+2", "1.5", "two", "1e3", "١"}
	for _, s := range ok {
		if !IsDigits(s) {
			t.Fatalf("IsDigits(%q) = false", s)
		}
	}
	for _, s := range bad {
		if IsDigits(s) {
			t.Fatalf("IsDigits(%q) = true", s)
		}
	}
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2026, 3, 4, 5, 6, 7, 0, time.Local)
	if got := FormatDateTime(ts); got != "2026-03-04 05:06:07" {
		t.Fatalf("FormatDateTime = %q", got)
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := SafeFilenamePart(" a/b:c "); got != "a_b_c" {
		t.Fatalf("SafeFilenamePart = %q", got)
	}
	if got := SafeFilenamePart(""); got != "NA" {
		t.Fatalf("SafeFilenamePart(empty) = %q", got)
	}
}

func TestInitLoggerAndLogEvent(t *testing.T) {
	if err := InitLogger("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if err := InitLogger("info"); err != nil {
		t.Fatalf("InitLogger error: %v", err)
	}

	prev := log.StandardLogger().Out
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	LogEvent(" req-1 ", "voucher", "issue", "issued")
	out := buf.String()
	for _, want := range []string{"module=VOUCHER", "action=issue", "request_id=req-1", "msg=issued"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log line %q missing %q", out, want)
		}
	}
}
