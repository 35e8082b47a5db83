package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"reacjilator/core"
)

const (
	DefaultModel     = "claude-3-5-haiku-latest"
	defaultMaxTokens = 4096
)

// messagesAPI is the subset of anthropic.MessageService used by AnthropicTranslator
type messagesAPI interface {
	New(ctx context.Context, body anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// AnthropicTranslator implements clients.Translator by prompting a Claude model
type AnthropicTranslator struct {
	messages  messagesAPI
	model     anthropic.Model
	maxTokens int64
}

// NewAnthropicTranslator creates a translator using the Messages API
func NewAnthropicTranslator(apiKey, model string) (*AnthropicTranslator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key cannot be empty")
	}
	if model == "" {
		model = DefaultModel
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicTranslator{
		messages:  &client.Messages,
		model:     anthropic.Model(model),
		maxTokens: defaultMaxTokens,
	}, nil
}

func systemPrompt(targetLanguage string) string {
	return fmt.Sprintf(
		"You are a translation engine. Translate the user's Slack message into the language "+
			"with ISO 639-1 code %q. Preserve Slack formatting, emoji codes, mentions and links. "+
			"Reply with the translated text only, without quotes or commentary.",
		targetLanguage,
	)
}

// Translate translates text into targetLanguage
func (t *AnthropicTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	message, err := t.messages.New(ctx, anthropic.MessageNewParams{
		Model:     t.model,
		MaxTokens: t.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt(targetLanguage)}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: anthropic translate to %s: %w", core.ErrTranslation, targetLanguage, err)
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	translated := strings.TrimSpace(sb.String())
	if translated == "" {
		return "", fmt.Errorf("%w: anthropic returned no text for %s", core.ErrTranslation, targetLanguage)
	}

	return translated, nil
}
