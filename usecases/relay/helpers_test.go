package relay

import (
	"testing"
	"time"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/require"

	"reacjilator/clients"
	"reacjilator/languages"
	"reacjilator/models"
)

const (
	testChannel  = "C123456"
	testRootTS   = "1700000000.000100"
	testReplyTS  = "1700000050.000200"
	testBotTS    = "1700000100.000300"
	testUsername = "Reacjilator Bot"
)

func testDirectory(t *testing.T) *languages.Directory {
	t.Helper()
	dir, err := languages.New(map[string]string{
		"jp": "ja",
		"fr": "fr",
		"us": "en",
		"cn": "zh-CN",
	})
	require.NoError(t, err)
	return dir
}

func setupRelayUseCase(t *testing.T) (*RelayUseCase, *clients.MockSlackClient, *clients.MockTranslator) {
	t.Helper()
	mockSlackClient := &clients.MockSlackClient{}
	mockTranslator := &clients.MockTranslator{}

	useCase := NewRelayUseCase(mockSlackClient, mockTranslator, testDirectory(t), Config{
		CallTimeout:      5 * time.Second,
		ThreadFetchLimit: 100,
		BotUsername:      testUsername,
	})

	return useCase, mockSlackClient, mockTranslator
}

func createTestReactionEvent(reaction string) models.ReactionEvent {
	return models.ReactionEvent{
		Type:      models.EventTypeReactionAdded,
		Reaction:  reaction,
		User:      "U123456",
		ItemType:  models.ItemTypeMessage,
		Channel:   testChannel,
		MessageTS: testRootTS,
	}
}

func repliesParams(ts string) clients.SlackConversationRepliesParameters {
	return clients.SlackConversationRepliesParameters{
		Channel:   testChannel,
		TS:        ts,
		Limit:     100,
		Inclusive: true,
	}
}

func windowParams(ts string) clients.SlackConversationRepliesParameters {
	params := repliesParams(ts)
	params.Oldest = ts
	params.Latest = ts
	return params
}

func rootMessage(text string) clients.SlackMessage {
	return clients.SlackMessage{Text: text, TS: testRootTS}
}

func translationReply(body, ts string) clients.SlackMessage {
	return clients.SlackMessage{
		Text:     body,
		TS:       ts,
		ThreadTS: testRootTS,
		SubType:  "bot_message",
		BotID:    "B123456",
		Blocks: []slack.Block{
			slack.NewSectionBlock(
				slack.NewTextBlockObject(slack.MarkdownType, body, false, false),
				nil,
				nil,
				slack.SectionBlockOptionBlockID(TranslationBodyBlockID),
			),
		},
	}
}
