package usecase

import (
	"strings"

	"personal-task-tracker/internal/model"
)

// priorityKeywords is checked in order: the first bucket with a keyword
// contained in the text wins, so "low but urgent" resolves to Urgent.
var priorityKeywords = []struct {
	keywords []string
	priority model.Priority
}{
	{[]string{"urgent", "critical"}, model.PriorityUrgent},
	{[]string{"high", "important"}, model.PriorityHigh},
	{[]string{"low"}, model.PriorityLow},
}

// classifyPriority maps free text to a priority level. Total: unmatched text
// defaults to Medium.
func classifyPriority(text string) model.Priority {
	lower := strings.ToLower(text)
	for _, bucket := range priorityKeywords {
		for _, kw := range bucket.keywords {
			if strings.Contains(lower, kw) {
				return bucket.priority
			}
		}
	}
	return model.PriorityMedium
}
