package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"wunderwohn/internal/domain"
)

func TestDateParseAndFormat(t *testing.T) {
	d, err := domain.ParseDate("2025-06-01")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if d.String() != "2025-06-01" {
		t.Fatalf("round trip: %s", d)
	}
	if !d.Equal(domain.NewDate(2025, time.June, 1)) {
		t.Fatalf("NewDate mismatch")
	}

	for _, bad := range []string{"", "01.06.2025", "2025-6-1", "2025-06-01T00:00:00Z", "not-a-date"} {
		if _, err := domain.ParseDate(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestNightsUntil(t *testing.T) {
	cases := []struct {
		in, out string
		nights  int
	}{
		{"2025-06-01", "2025-06-04", 3},
		{"2025-06-01", "2025-06-02", 1},
		{"2025-06-01", "2025-06-01", 0},
		{"2025-06-04", "2025-06-01", -3},
		{"2025-12-30", "2026-01-02", 3}, // across a year boundary
	}
	for _, c := range cases {
		in, _ := domain.ParseDate(c.in)
		out, _ := domain.ParseDate(c.out)
		if got := in.NightsUntil(out); got != c.nights {
			t.Fatalf("%s..%s: expected %d nights, got %d", c.in, c.out, c.nights, got)
		}
	}
}

func TestDateJSON(t *testing.T) {
	d, _ := domain.ParseDate("2025-06-04")
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if string(b) != `"2025-06-04"` {
		t.Fatalf("marshal: %s", b)
	}

	var back domain.Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("err: %v", err)
	}
	if !back.Equal(d) {
		t.Fatalf("unmarshal mismatch: %s", back)
	}
	if err := json.Unmarshal([]byte(`"bogus"`), &back); err == nil {
		t.Fatalf("expected error for bogus date")
	}
}
