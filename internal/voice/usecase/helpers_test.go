package usecase

import "testing"

func TestSanitizeJSONResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare object",
			in:   `{"title": "Buy milk"}`,
			want: `{"title": "Buy milk"}`,
		},
		{
			name: "json code fence",
			in:   "```json\n{\"title\": \"Buy milk\"}\n```",
			want: `{"title": "Buy milk"}`,
		},
		{
			name: "plain code fence",
			in:   "```\n{\"title\": \"Buy milk\"}\n```",
			want: `{"title": "Buy milk"}`,
		},
		{
			name: "leading prose",
			in:   "Here is the task you asked for:\n{\"title\": \"Buy milk\"} Hope that helps!",
			want: `{"title": "Buy milk"}`,
		},
		{
			name: "nested braces kept",
			in:   "answer: {\"a\": {\"b\": 1}} done",
			want: `{"a": {"b": 1}}`,
		},
		{
			name: "no object at all",
			in:   "  sorry, I cannot do that  ",
			want: "sorry, I cannot do that",
		},
		{
			name: "closing brace before opening",
			in:   "} nope {",
			want: "} nope {",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeJSONResponse(tt.in); got != tt.want {
				t.Errorf("sanitizeJSONResponse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRepairConfidence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"high", "high"},
		{"  HIGH  ", "high"},
		{"low", "low"},
		{"medium", "medium"},
		{"", "medium"},
		{"certain", "medium"},
	}

	for _, tt := range tests {
		if got := repairConfidence(tt.in); string(got) != tt.want {
			t.Errorf("repairConfidence(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
