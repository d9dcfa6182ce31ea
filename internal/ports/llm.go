package ports

import "context"

type ChatMessage struct {
	Role    string
	Content string
}

// LLMClient is the hosted language-model API used for extraction and speech-to-text.
type LLMClient interface {
	Complete(ctx context.Context, messages []ChatMessage, temperature float64) (string, error)
	TranscribeFile(ctx context.Context, path string) (string, error)
}
