package parser

import "strings"

// LabelSeparator splits a survey question from the course it asks about.
const LabelSeparator = " - "

// CourseLabel extracts the course name from a header cell.
// "Please rank - Intro to Systems" yields "Intro to Systems"; text without the
// separator is returned unchanged.
func CourseLabel(text string) string {
	idx := strings.LastIndex(text, LabelSeparator)
	if idx < 0 {
		return text
	}
	return strings.TrimSpace(text[idx+len(LabelSeparator):])
}
