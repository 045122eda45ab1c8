package email

import (
	"strings"

	"github.com/sasank-sasi/Vertx/internal/models"
)

var (
	greetings     = []string{"dear", "hi", "hello"}
	signatures    = []string{"best regards", "sincerely", "regards"}
	callToActions = []string{"let's connect", "would love to", "looking forward", "please let me know"}
)

// Verify runs the four advisory heuristics against a draft body. The result
// never blocks sending; callers decide what to do with a failing draft.
func Verify(draft models.EmailDraft) map[string]bool {
	body := strings.ToLower(draft.Body)

	return map[string]bool{
		"has_greeting":       containsAny(body, greetings),
		"has_signature":      containsAny(body, signatures),
		"proper_length":      len(draft.Body) >= 100 && len(draft.Body) <= 2000,
		"has_call_to_action": containsAny(body, callToActions),
	}
}

func containsAny(body string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(body, phrase) {
			return true
		}
	}
	return false
}
