package llm

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

var codeFence = regexp.MustCompile("```(?:json)?")

var trainingMarkers = []string{"[TRAINING MATERIAL]", "[TRAINING]"}

// Sanitize strips markdown code fences and training labels from a reply.
func Sanitize(text string) string {
	text = codeFence.ReplaceAllString(text, "")
	for _, marker := range trainingMarkers {
		text = strings.ReplaceAll(text, marker, "")
	}
	return strings.TrimSpace(text)
}

// RepairJSON extracts the outermost {...} span from a reply and reports
// whether it parses. Quotes are never rewritten.
func RepairJSON(text string) (string, bool) {
	text = Sanitize(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && end >= start {
		text = text[start : end+1]
	}

	return text, gjson.Valid(text)
}
