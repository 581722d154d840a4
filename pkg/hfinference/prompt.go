package hfinference

import "fmt"

// taskParsingPromptTemplate is the instruction prompt for parsing a voice
// command into a single structured task. Placeholders: transcript, current
// date, current time.
const taskParsingPromptTemplate = `<s>[INST] You are a task parsing assistant. Parse the following voice command and extract task information.

Voice Command: "%s"

Current date: %s
Current time: %s

Extract:
1. Title: Clean task description (capitalize first letter, remove "create", "add", "task to" prefixes)
2. Due Date: Parse dates (tomorrow, next Monday, in 3 days, January 15, etc.)
3. Due Time: Extract time from phrases like "evening" (18:00), "morning" (09:00), "afternoon" (14:00), "night" (20:00), or specific times
4. Priority: urgent/critical=Urgent, high/important=High, low=Low, default=Medium
5. Status: Always "To Do"

Time mappings:
- morning = 09:00
- afternoon = 14:00
- evening = 18:00
- night = 20:00
- noon = 12:00
- midnight = 00:00

Return ONLY valid JSON (no markdown):
{
  "title": "Clean task title with proper capitalization",
  "description": null,
  "priority": "Low|Medium|High|Urgent",
  "dueDate": "YYYY-MM-DD or null",
  "dueTime": "HH:MM or null",
  "status": "To Do",
  "confidence": "high|medium|low"
}
[/INST]`

// BuildTaskPrompt builds the full task-parsing prompt. The caller supplies
// the current date and time so relative expressions resolve against real
// invocation time.
func BuildTaskPrompt(transcript, currentDate, currentTime string) string {
	return fmt.Sprintf(taskParsingPromptTemplate, transcript, currentDate, currentTime)
}
