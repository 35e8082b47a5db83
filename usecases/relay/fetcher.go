package relay

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"
	"github.com/slack-go/slack"

	"reacjilator/clients"
	"reacjilator/core"
	"reacjilator/models"
)

const botMessageSubType = "bot_message"

// FetchThread returns the thread around the reacted-to message, oldest first, with
// the reacted-to message itself as element 0. When that message is a reply inside
// another thread, the parent thread is loaded as well so earlier replies are visible.
func (s *RelayUseCase) FetchThread(ctx context.Context, channel, ts string) ([]models.ThreadMessage, error) {
	messages, err := s.fetchReplies(ctx, s.repliesParams(channel, ts))
	if err != nil {
		return nil, err
	}

	targetIdx, found := indexOfTS(messages, ts)
	if !found {
		// Slack answers a reply ts with its whole thread, which may not reach the reply
		target, err := s.fetchMessage(ctx, channel, ts)
		if err != nil {
			return nil, err
		}
		messages = append([]models.ThreadMessage{target}, messages...)
		targetIdx = 0
	}
	target := messages[targetIdx]

	if !target.BelongsToOtherThread() {
		return moveToFront(messages, targetIdx), nil
	}

	parentTS := target.ThreadAnchor()
	log.Printf("🧵 Message %s is a reply in thread %s - loading parent thread", ts, parentTS)

	parentThread, err := s.fetchReplies(ctx, s.repliesParams(channel, parentTS))
	if err != nil {
		return nil, err
	}

	thread := make([]models.ThreadMessage, 0, len(parentThread)+1)
	thread = append(thread, target)
	for _, msg := range parentThread {
		if msg.TS != target.TS {
			thread = append(thread, msg)
		}
	}

	return thread, nil
}

// fetchMessage loads exactly the message at ts by narrowing the window to that timestamp
func (s *RelayUseCase) fetchMessage(ctx context.Context, channel, ts string) (models.ThreadMessage, error) {
	params := s.repliesParams(channel, ts)
	params.Oldest = ts
	params.Latest = ts

	messages, err := s.fetchReplies(ctx, params)
	if err != nil {
		return models.ThreadMessage{}, err
	}

	idx, found := indexOfTS(messages, ts)
	if !found {
		return models.ThreadMessage{}, fmt.Errorf("%w: message %s not found in %s", core.ErrFetch, ts, channel)
	}
	return messages[idx], nil
}

func (s *RelayUseCase) repliesParams(channel, ts string) clients.SlackConversationRepliesParameters {
	return clients.SlackConversationRepliesParameters{
		Channel:   channel,
		TS:        ts,
		Limit:     s.config.ThreadFetchLimit,
		Inclusive: true,
	}
}

func (s *RelayUseCase) fetchReplies(ctx context.Context, params clients.SlackConversationRepliesParameters) ([]models.ThreadMessage, error) {
	callCtx, cancel := s.withCallTimeout(ctx)
	defer cancel()

	messages, err := s.slackClient.GetConversationReplies(callCtx, params)
	if err != nil {
		return nil, fmt.Errorf("%w: conversations.replies for %s/%s: %w", core.ErrFetch, params.Channel, params.TS, err)
	}
	if len(messages) == 0 {
		return nil, fmt.Errorf("%w: conversations.replies for %s/%s returned no messages", core.ErrFetch, params.Channel, params.TS)
	}

	thread := make([]models.ThreadMessage, 0, len(messages))
	for _, msg := range messages {
		thread = append(thread, toThreadMessage(msg))
	}
	return thread, nil
}

func toThreadMessage(msg clients.SlackMessage) models.ThreadMessage {
	threadTS := mo.None[string]()
	if msg.ThreadTS != "" {
		threadTS = mo.Some(msg.ThreadTS)
	}

	// Only bot posts can be earlier translations; user block ids are not trusted
	repliedContent := mo.None[string]()
	if isBotMessage(msg) {
		repliedContent = renderedBody(msg.Blocks)
	}

	return models.ThreadMessage{
		Text:           msg.Text,
		TS:             msg.TS,
		ThreadTS:       threadTS,
		IsReply:        msg.ThreadTS != "" && msg.ThreadTS != msg.TS,
		RepliedContent: repliedContent,
	}
}

func isBotMessage(msg clients.SlackMessage) bool {
	return msg.BotID != "" || msg.SubType == botMessageSubType
}

// renderedBody extracts the translation body a previous run posted, if any
func renderedBody(blocks []slack.Block) mo.Option[string] {
	for _, block := range blocks {
		section, ok := block.(*slack.SectionBlock)
		if !ok || section.BlockID != TranslationBodyBlockID || section.Text == nil {
			continue
		}
		return mo.Some(section.Text.Text)
	}
	return mo.None[string]()
}

func indexOfTS(messages []models.ThreadMessage, ts string) (int, bool) {
	for i, msg := range messages {
		if msg.TS == ts {
			return i, true
		}
	}
	return 0, false
}

func moveToFront(messages []models.ThreadMessage, idx int) []models.ThreadMessage {
	if idx == 0 {
		return messages
	}

	reordered := make([]models.ThreadMessage, 0, len(messages))
	reordered = append(reordered, messages[idx])
	reordered = append(reordered, messages[:idx]...)
	reordered = append(reordered, messages[idx+1:]...)
	return reordered
}
