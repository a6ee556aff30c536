package report

import (
	tiktoken "github.com/pkoukk/tiktoken-go"
)

// TokenCounter measures how many tokens a rendered report costs when
// fed to an LLM, so agent-facing callers can budget their context.
type TokenCounter struct {
	encoder *tiktoken.Tiktoken
}

// NewTokenCounter creates a counter using the cl100k_base encoding.
// On encoder failure the counter still works via approximation.
func NewTokenCounter() (*TokenCounter, error) {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return &TokenCounter{}, err
	}
	return &TokenCounter{encoder: enc}, nil
}

// Count returns the token count of the given text, approximating with
// one token per four characters when no encoder is available.
func (tc *TokenCounter) Count(text string) int {
	if tc.encoder == nil {
		return len(text) / 4
	}
	return len(tc.encoder.Encode(text, nil, nil))
}

// Stamp renders the result once, records its token cost on the result,
// and returns the count.
func (tc *TokenCounter) Stamp(result *Result) int {
	rendered, err := formatJSON(*result)
	if err != nil {
		return 0
	}
	result.TokenCount = tc.Count(rendered)
	return result.TokenCount
}
