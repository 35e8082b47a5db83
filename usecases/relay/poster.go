package relay

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/samber/mo"
	"github.com/slack-go/slack"

	"reacjilator/clients"
	"reacjilator/core"
	"reacjilator/models"
	"reacjilator/utils"
)

const (
	// TranslationBodyBlockID marks the section holding the translated text.
	// Deduplication reads it back from earlier replies.
	TranslationBodyBlockID = "translation_body"
	captionBlockID         = "translation_caption"
	originalBlockID        = "translation_original"
	unsupportedBlockID     = "translation_unsupported"

	maxBlockTextLength = 3000
)

// RenderBody returns the body text exactly as it is stored in a posted reply
func RenderBody(translation string) string {
	return utils.TruncateRunes(translation, maxBlockTextLength)
}

// BuildReply formats the reply for a source message. A translated reply needs both
// non-empty source text and a non-empty translation; anything else gets the
// unsupported notice.
func BuildReply(
	original models.ThreadMessage,
	translation mo.Option[string],
	languageCode string,
	emoji string,
) models.OutboundReply {
	translated, ok := translation.Get()
	if strings.TrimSpace(original.Text) == "" || !ok || strings.TrimSpace(translated) == "" {
		return buildUnsupportedReply(emoji)
	}

	body := RenderBody(translated)
	caption := fmt.Sprintf("_The message is translated in_ :%s: _(%s)_", emoji, languageCode)

	blocks := []slack.Block{
		slack.NewContextBlock(
			captionBlockID,
			slack.NewTextBlockObject(slack.MarkdownType, caption, false, false),
		),
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, body, false, false),
			nil,
			nil,
			slack.SectionBlockOptionBlockID(TranslationBodyBlockID),
		),
		slack.NewContextBlock(
			originalBlockID,
			slack.NewTextBlockObject(slack.PlainTextType, utils.TruncateRunes(original.Text, maxBlockTextLength), false, false),
		),
	}

	return models.OutboundReply{
		Text:   body,
		Blocks: blocks,
		Body:   body,
	}
}

func buildUnsupportedReply(emoji string) models.OutboundReply {
	notice := fmt.Sprintf("_Sorry, the language is not supported!_ :persevere: (:%s:)", emoji)

	return models.OutboundReply{
		Text: notice,
		Blocks: []slack.Block{
			slack.NewSectionBlock(
				slack.NewTextBlockObject(slack.MarkdownType, notice, false, false),
				nil,
				nil,
				slack.SectionBlockOptionBlockID(unsupportedBlockID),
			),
		},
	}
}

// Post sends exactly one reply into the thread of the original message and
// returns the timestamp of the posted reply
func (s *RelayUseCase) Post(
	ctx context.Context,
	original models.ThreadMessage,
	translation mo.Option[string],
	languageCode string,
	channel string,
	emoji string,
) (string, error) {
	reply := BuildReply(original, translation, languageCode, emoji)
	threadTS := original.ThreadAnchor()

	callCtx, cancel := s.withCallTimeout(ctx)
	defer cancel()

	response, err := s.slackClient.PostMessage(callCtx, channel, clients.SlackMessageParams{
		Text:     reply.Text,
		ThreadTS: mo.Some(threadTS),
		Blocks:   reply.Blocks,
		Username: s.config.BotUsername,
	})
	if err != nil {
		return "", fmt.Errorf("%w: chat.postMessage to %s (thread %s): %w", core.ErrDelivery, channel, threadTS, err)
	}

	log.Printf("📤 Posted reply %s in thread %s of channel %s", response.Timestamp, threadTS, channel)
	return response.Timestamp, nil
}
