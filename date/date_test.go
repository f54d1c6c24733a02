package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNew_Normalizes(t *testing.T) {
	// Overflow days roll into the next month.
	got := New(2025, time.January, 32)
	if want := New(2025, time.February, 1); got != want {
		t.Errorf("New(2025, 1, 32) = %v, want %v", got, want)
	}
}

func TestAdd(t *testing.T) {
	d := New(2025, time.December, 30)
	if got, want := d.Add(5), New(2026, time.January, 4); got != want {
		t.Errorf("Add(5) = %v, want %v", got, want)
	}
	if got, want := d.Add(-30), New(2025, time.November, 30); got != want {
		t.Errorf("Add(-30) = %v, want %v", got, want)
	}
}

func TestSub(t *testing.T) {
	a := New(2025, time.January, 6)
	b := New(2025, time.August, 22)
	if got := b.Sub(a); got != 228 {
		t.Errorf("Sub() = %d, want 228", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2025-01-06", New(2025, time.January, 6), false},
		{"2025-1-6", New(2025, time.January, 6), false}, // lenient format
		{"06/01/2025", Date{}, true},
		{"not a date", Date{}, true},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestJSONRoundtrip(t *testing.T) {
	d := New(2025, time.August, 22)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != `"2025-08-22"` {
		t.Errorf("Marshal() = %s, want %q", b, `"2025-08-22"`)
	}
	var got Date
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got != d {
		t.Errorf("roundtrip = %v, want %v", got, d)
	}
}

func TestIsZero(t *testing.T) {
	var d Date
	if !d.IsZero() {
		t.Error("zero value IsZero() = false")
	}
	if New(2025, time.January, 1).IsZero() {
		t.Error("real date IsZero() = true")
	}
}
