package models

// CompletionRequest is one chat-completion call to an LLM provider.
// Temperature and MaxTokens differ between the match scorer (0.3, small
// budget) and the email generator (0.7, large budget), so they travel with
// the request.
type CompletionRequest struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}
