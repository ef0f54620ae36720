package util

import "strings"

// StripCodeFences extracts the payload from a markdown-fenced reply.
// LLMs wrap JSON in ```json ... ``` more often than not, sometimes with
// commentary around the fences, so we search for the fence markers instead
// of trimming fixed prefixes.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)

	start := strings.Index(s, "```")
	if start < 0 {
		return s
	}
	s = s[start+3:]
	// drop the language tag up to the end of the fence line
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		first := strings.TrimSpace(s[:nl])
		if first == "" || isFenceTag(first) {
			s = s[nl+1:]
		}
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	if end := strings.LastIndex(s, "```"); end >= 0 {
		s = s[:end]
	}
	return strings.TrimSpace(s)
}

func isFenceTag(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
