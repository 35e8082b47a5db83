package relay

import (
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"

	"reacjilator/models"
)

func TestAlreadyReplied(t *testing.T) {
	root := models.ThreadMessage{Text: "Hello", TS: testRootTS, RepliedContent: mo.Some("Hello")}
	humanReply := models.ThreadMessage{Text: "Hola", TS: testReplyTS, ThreadTS: mo.Some(testRootTS), IsReply: true}
	botReply := models.ThreadMessage{
		Text:           "Bonjour",
		TS:             testBotTS,
		ThreadTS:       mo.Some(testRootTS),
		IsReply:        true,
		RepliedContent: mo.Some("Bonjour"),
	}

	t.Run("MatchingReply", func(t *testing.T) {
		assert.True(t, AlreadyReplied([]models.ThreadMessage{root, humanReply, botReply}, "Bonjour"))
	})

	t.Run("DifferentTranslation", func(t *testing.T) {
		assert.False(t, AlreadyReplied([]models.ThreadMessage{root, humanReply, botReply}, "Bonjour!"))
	})

	t.Run("RootMessageIsIgnored", func(t *testing.T) {
		assert.False(t, AlreadyReplied([]models.ThreadMessage{root}, "Hello"))
	})

	t.Run("ReplyWithoutRenderedBodyIsIgnored", func(t *testing.T) {
		assert.False(t, AlreadyReplied([]models.ThreadMessage{root, humanReply}, "Hola"))
	})

	t.Run("EmptyThread", func(t *testing.T) {
		assert.False(t, AlreadyReplied(nil, "Bonjour"))
	})
}
