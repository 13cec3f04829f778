package usecase

import (
	"regexp"
	"strings"
)

var (
	reBracketed  = regexp.MustCompile(`\[[^\]]*\]`)
	reChatPrefix = regexp.MustCompile(`^([A-Z][\w.'-]*(?: [A-Z][\w.'-]*)?):\s+`)
	reMeridiem   = regexp.MustCompile(`(?i)\b([ap])\.m\.?`)
	reHSpace     = regexp.MustCompile(`[ \t\f\v\x{00A0}]+`)
	reBlankLines = regexp.MustCompile(`\n{2,}`)
)

// taskLabels look like a "Name: " prefix but carry meaning for the strategies.
var taskLabels = map[string]struct{}{
	"reminder": {}, "reminders": {},
	"todo": {}, "todos": {}, "to-do": {}, "to-dos": {},
	"task": {}, "tasks": {},
	"action item": {}, "action items": {},
	"deadline": {}, "note": {}, "notes": {},
}

var quoteReplacer = strings.NewReplacer("’", "'", "‘", "'", "“", `"`, "”", `"`, "\r\n", "\n", "\r", "\n")

// preprocess normalizes raw text before any strategy runs: bracketed metadata
// and a leading "Name: " chat prefix are dropped and whitespace is collapsed.
// Line breaks survive so list strategies can still see list items.
func preprocess(text string) string {
	text = quoteReplacer.Replace(text)
	text = reBracketed.ReplaceAllString(text, " ")
	text = reMeridiem.ReplaceAllString(text, "${1}m")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(reHSpace.ReplaceAllString(line, " "))
	}
	text = strings.TrimSpace(strings.Join(lines, "\n"))
	text = reBlankLines.ReplaceAllString(text, "\n")

	return stripChatPrefix(text)
}

func stripChatPrefix(text string) string {
	m := reChatPrefix.FindStringSubmatchIndex(text)
	if m == nil {
		return text
	}
	if _, ok := taskLabels[strings.ToLower(text[m[2]:m[3]])]; ok {
		return text
	}
	return text[m[1]:]
}
