package assessment

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"talentloop/internal/domain"
)

// CleanLLMJSON strips ```json fences and a BOM, leaving the payload usable.
func CleanLLMJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	s = strings.TrimPrefix(s, "\uFEFF")

	reStart := regexp.MustCompile("(?is)^\\s*```(?:json)?\\s*")
	reEnd := regexp.MustCompile("(?is)\\s*```\\s*$")
	s = reStart.ReplaceAllString(s, "")
	s = reEnd.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// extractFirstJSONObject returns the first balanced {...} block, respecting
// string literals and escapes.
func extractFirstJSONObject(input string) string {
	start := strings.IndexByte(input, '{')
	if start == -1 {
		return ""
	}

	inString := false
	escape := false
	depth := 0

	for i := start; i < len(input); i++ {
		ch := input[i]

		if inString {
			if escape {
				escape = false
				continue
			}
			if ch == '\\' {
				escape = true
				continue
			}
			if ch == '"' {
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return input[start : i+1]
			}
			if depth < 0 {
				return ""
			}
		}
	}

	return ""
}

// ParseLLMAssessment turns a raw model reply into an LLMAssessment. Models
// wrap JSON in fences or prose often enough that we clean and extract before
// unmarshaling. Anything still unparseable is a ValidationError; no partial
// or coerced document is ever returned.
func ParseLLMAssessment(raw string) (domain.LLMAssessment, error) {
	cleaned := CleanLLMJSON(raw)

	candidate := extractFirstJSONObject(cleaned)
	if candidate == "" {
		candidate = extractFirstJSONObject(raw)
	}
	if candidate == "" {
		return domain.LLMAssessment{}, fmt.Errorf("%w: no JSON object in submission", domain.ErrValidation)
	}

	var out domain.LLMAssessment
	if err := json.Unmarshal([]byte(candidate), &out); err != nil {
		return domain.LLMAssessment{}, fmt.Errorf("%w: parse llm assessment: %v", domain.ErrValidation, err)
	}
	return out, nil
}
