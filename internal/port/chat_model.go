package port

import (
	"context"

	"lcintel/internal/domain"
)

// ChatModel abstracts conversational LLM completion.
type ChatModel interface {
	Complete(ctx context.Context, system string, history []domain.ChatMessage) (string, error)
}
