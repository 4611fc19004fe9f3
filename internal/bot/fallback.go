package bot

import (
	"context"
	"sync"

	"github.com/sashabaranov/go-openai"

	"robomua/aiysha-bot/internal/llm"
)

// Fallback answers free text no intent rule matched. Two strategies exist
// because deployments have historically disagreed on which is canonical.
type Fallback interface {
	Reply(ctx context.Context, user, text string) (string, error)
}

// StaticFallback returns a fixed "didn't get that" reply.
type StaticFallback struct{}

func (StaticFallback) Reply(context.Context, string, string) (string, error) {
	return staticFallbackBody, nil
}

// ModelFallback delegates to the LLM, keeping a per-user conversation history.
type ModelFallback struct {
	client *llm.Client

	mu      sync.Mutex
	history map[string][]openai.ChatCompletionMessage
}

func NewModelFallback(client *llm.Client) *ModelFallback {
	return &ModelFallback{
		client:  client,
		history: make(map[string][]openai.ChatCompletionMessage),
	}
}

func (f *ModelFallback) Reply(ctx context.Context, user, text string) (string, error) {
	f.mu.Lock()
	history := f.history[user]
	f.mu.Unlock()

	answer, history, err := f.client.Respond(ctx, text, history)
	if err != nil {
		return "", err
	}

	f.mu.Lock()
	f.history[user] = history
	f.mu.Unlock()
	return answer, nil
}
