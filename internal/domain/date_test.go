package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "valid ISO date", input: "2026-08-31", want: NewDate(2026, time.August, 31)},
		{name: "leap day", input: "2024-02-29", want: NewDate(2024, time.February, 29)},
		{name: "not a date", input: "yesterday", wantErr: true},
		{name: "wrong layout", input: "31/08/2026", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestDateAddDays(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		from Date
		days int
		want Date
	}{
		{name: "same day", from: NewDate(2026, time.March, 14), days: 0, want: NewDate(2026, time.March, 14)},
		{name: "within month", from: NewDate(2026, time.March, 14), days: 6, want: NewDate(2026, time.March, 20)},
		{name: "across month boundary", from: NewDate(2026, time.January, 30), days: 5, want: NewDate(2026, time.February, 4)},
		{name: "across year boundary", from: NewDate(2025, time.December, 30), days: 3, want: NewDate(2026, time.January, 2)},
		{name: "negative", from: NewDate(2026, time.March, 1), days: -1, want: NewDate(2026, time.February, 28)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.AddDays(tc.days); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestDateOrdering(t *testing.T) {
	t.Parallel()

	earlier := NewDate(2026, time.May, 1)
	later := NewDate(2026, time.May, 2)

	if !earlier.Before(later) {
		t.Error("expected earlier.Before(later)")
	}
	if !later.After(earlier) {
		t.Error("expected later.After(earlier)")
	}
	if earlier.After(later) || later.Before(earlier) {
		t.Error("ordering is inverted")
	}
	if !earlier.Equal(NewDate(2026, time.May, 1)) {
		t.Error("expected equal dates to compare equal")
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	t.Parallel()

	d := NewDate(2026, time.August, 31)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `"2026-08-31"` {
		t.Errorf("expected \"2026-08-31\", got %s", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back != d {
		t.Errorf("round trip changed the date: %v -> %v", d, back)
	}

	if err := json.Unmarshal([]byte(`"soon"`), &back); err == nil {
		t.Error("expected error for malformed date string")
	}
}
