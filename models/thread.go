package models

import "github.com/samber/mo"

// ThreadMessage is a single Slack message as seen by the relay.
// The first element of a fetched thread is always the reacted-to message.
type ThreadMessage struct {
	Text     string
	TS       string
	ThreadTS mo.Option[string]
	IsReply  bool
	// RepliedContent is the rendered translation body of a reply previously posted
	// by the relay. Absent for every other message.
	RepliedContent mo.Option[string]
}

// ThreadAnchor returns the timestamp a reply to this message should be posted under
func (m ThreadMessage) ThreadAnchor() string {
	return m.ThreadTS.OrElse(m.TS)
}

// BelongsToOtherThread returns true when the message is a reply inside a thread
// rooted at a different message
func (m ThreadMessage) BelongsToOtherThread() bool {
	threadTS, ok := m.ThreadTS.Get()
	return ok && threadTS != m.TS
}
