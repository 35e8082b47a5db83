package relay

import "reacjilator/models"

// AlreadyReplied reports whether a reply in the thread already carries candidate
// as its rendered body. The root message is never considered.
func AlreadyReplied(thread []models.ThreadMessage, candidate string) bool {
	for _, msg := range thread {
		if !msg.IsReply {
			continue
		}
		if content, ok := msg.RepliedContent.Get(); ok && content == candidate {
			return true
		}
	}
	return false
}
