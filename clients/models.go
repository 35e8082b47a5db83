package clients

import (
	"github.com/samber/mo"
	"github.com/slack-go/slack"
)

// SlackConversationRepliesParameters represents parameters for conversations.replies
type SlackConversationRepliesParameters struct {
	Channel   string
	TS        string
	Limit     int // page size; the adapter follows cursors until the thread is exhausted
	Inclusive bool
	// Oldest and Latest narrow the result to a time window when set
	Oldest string
	Latest string
}

// SlackMessage represents a message returned by conversations.replies
type SlackMessage struct {
	Text     string
	TS       string
	ThreadTS string
	SubType  string
	BotID    string
	Blocks   []slack.Block
}

// SlackMessageParams holds parameters for sending Slack messages
type SlackMessageParams struct {
	Text     string
	ThreadTS mo.Option[string]
	Blocks   []slack.Block
	Username string
}

// SlackPostMessageResponse represents the response from posting a message to Slack
type SlackPostMessageResponse struct {
	Channel   string
	Timestamp string
}
