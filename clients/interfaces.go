package clients

import (
	"context"
)

// SlackClient defines the Slack Web API operations used by the relay
type SlackClient interface {
	// GetConversationReplies returns the messages of a thread, oldest first
	GetConversationReplies(ctx context.Context, params SlackConversationRepliesParameters) ([]SlackMessage, error)

	// PostMessage sends a message to a Slack channel
	PostMessage(ctx context.Context, channelID string, params SlackMessageParams) (*SlackPostMessageResponse, error)
}

// Translator translates text into a target language
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}
