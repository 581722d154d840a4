package datemath_test

import "testing"

func TestResolveTimeKeywords(t *testing.T) {
	r := newResolver(t)

	tests := []struct {
		text   string
		want   string
		wantOK bool
	}{
		{"let's meet in the evening", "18:00", true},
		{"do it in the morning", "09:00", true},
		{"this afternoon works", "14:00", true},
		{"late at night", "20:00", true},
		{"around noon", "12:00", true},
		{"nothing here", "", false},
	}

	for _, tt := range tests {
		got, ok := r.ResolveTime(tt.text)
		if ok != tt.wantOK {
			t.Errorf("ResolveTime(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			continue
		}
		if got != tt.want {
			t.Errorf("ResolveTime(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestResolveTimeTableOrderWins(t *testing.T) {
	r := newResolver(t)

	// "morning" precedes "evening" in the keyword table, so it wins even
	// though "evening" occurs first in the text.
	got, ok := r.ResolveTime("evening or morning, either works")
	if !ok || got != "09:00" {
		t.Errorf("ResolveTime = %q (ok=%v), want 09:00", got, ok)
	}
}

func TestResolveTimeNumeric(t *testing.T) {
	r := newResolver(t)

	tests := []struct {
		text   string
		want   string
		wantOK bool
	}{
		{"call at 3pm", "15:00", true},
		{"call at 9", "09:00", true},
		{"meet at 12am", "00:00", true},
		{"meet at 12pm", "12:00", true},
		{"at 15:30", "15:30", true},
		{"at 7:45 am", "07:45", true},
		{"at 99", "", false},
	}

	for _, tt := range tests {
		got, ok := r.ResolveTime(tt.text)
		if ok != tt.wantOK {
			t.Errorf("ResolveTime(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			continue
		}
		if got != tt.want {
			t.Errorf("ResolveTime(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
