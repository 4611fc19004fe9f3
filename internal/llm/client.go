package llm

import (
	"context"
	"time"

	"github.com/sashabaranov/go-openai"
)

const systemPrompt = `You are AIySha, a personal beauty advisor powered by yShade.AI.
As an AI expert in skincare, makeup, and wellness, you offer personalized beauty advice.
From crafting your unique skincare routine to decoding the latest makeup trends, you are equipped with the latest insights.
You provide a beauty experience that's tailored just for the user, with your guidance every step of the way.
Your responses are always clear and concise. If you do not have a response, just say so, and do not make up answers.`

// historyWindow bounds how many prior exchanges are replayed per request.
const historyWindow = 10

type Client struct {
	api    *openai.Client
	model  string
	system string
}

// NewClient builds the fallback responder. extraContext, when non-empty, is
// appended to the system prompt (brand info scraped at startup).
func NewClient(apiKey, model, extraContext string) *Client {
	system := systemPrompt
	if extraContext != "" {
		system += "\n\nAbout roboMUA:\n" + extraContext
	}
	return &Client{api: openai.NewClient(apiKey), model: model, system: system}
}

// Respond answers one free-text message given the user's prior exchanges. The
// updated history is returned alongside the reply.
func (c *Client) Respond(ctx context.Context, text string, history []openai.ChatCompletionMessage) (string, []openai.ChatCompletionMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	if len(history) > historyWindow*2 {
		history = history[len(history)-historyWindow*2:]
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{Role: "system", Content: c.system})
	messages = append(messages, history...)
	messages = append(messages, openai.ChatCompletionMessage{Role: "user", Content: text})

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		Messages:  messages,
		MaxTokens: 250,
	})
	if err != nil {
		return "", history, err
	}
	answer := resp.Choices[0].Message.Content

	history = append(history,
		openai.ChatCompletionMessage{Role: "user", Content: text},
		openai.ChatCompletionMessage{Role: "assistant", Content: answer},
	)
	return answer, history, nil
}
