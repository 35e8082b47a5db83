package models

import "github.com/slack-go/slack"

// TranslationResult is a successful translation of a source message
type TranslationResult struct {
	OriginalText   string
	TranslatedText string
	TargetLanguage string
}

// OutboundReply is a formatted reply ready to be posted into a thread
type OutboundReply struct {
	// Text is the notification fallback shown by clients that do not render blocks
	Text   string
	Blocks []slack.Block
	// Body is the rendered body text stored in the reply; it is what later runs
	// compare against when deduplicating
	Body string
}
