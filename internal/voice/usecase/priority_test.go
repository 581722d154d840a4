package usecase

import (
	"testing"

	"personal-task-tracker/internal/model"
)

func TestClassifyPriority(t *testing.T) {
	tests := []struct {
		text string
		want model.Priority
	}{
		{"this is urgent", model.PriorityUrgent},
		{"CRITICAL bug fix", model.PriorityUrgent},
		{"high importance", model.PriorityHigh},
		{"important meeting", model.PriorityHigh},
		{"low effort chore", model.PriorityLow},
		{"just a task", model.PriorityMedium},
		{"", model.PriorityMedium},
	}

	for _, tt := range tests {
		if got := classifyPriority(tt.text); got != tt.want {
			t.Errorf("classifyPriority(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestClassifyPriorityPrecedence(t *testing.T) {
	// Checks are ordered Urgent > High > Low: the first bucket wins even
	// when a lower keyword occurs earlier in the text.
	if got := classifyPriority("low but urgent task"); got != model.PriorityUrgent {
		t.Errorf("classifyPriority precedence = %s, want Urgent", got)
	}
	if got := classifyPriority("low and important"); got != model.PriorityHigh {
		t.Errorf("classifyPriority precedence = %s, want High", got)
	}
}
