package slack

import (
	"context"
	"log"

	"github.com/slack-go/slack"

	"reacjilator/clients"
)

// maxReplyPages caps how many conversations.replies pages a single fetch follows
const maxReplyPages = 10

// SlackClient implements the clients.SlackClient interface using the slack-go/slack SDK
type SlackClient struct {
	*slack.Client
}

// NewSlackClient creates a new Slack client with the provided bot token
func NewSlackClient(authToken string, options ...slack.Option) *SlackClient {
	return &SlackClient{
		Client: slack.New(authToken, options...),
	}
}

// GetConversationReplies fetches a thread via conversations.replies, following
// cursors for up to maxReplyPages pages
func (c *SlackClient) GetConversationReplies(
	ctx context.Context,
	params clients.SlackConversationRepliesParameters,
) ([]clients.SlackMessage, error) {
	sdkParams := &slack.GetConversationRepliesParameters{
		ChannelID: params.Channel,
		Timestamp: params.TS,
		Limit:     params.Limit,
		Inclusive: params.Inclusive,
		Oldest:    params.Oldest,
		Latest:    params.Latest,
	}

	var result []clients.SlackMessage
	for page := 1; ; page++ {
		messages, hasMore, nextCursor, err := c.Client.GetConversationRepliesContext(ctx, sdkParams)
		if err != nil {
			return nil, err
		}

		for _, msg := range messages {
			result = append(result, clients.SlackMessage{
				Text:     msg.Text,
				TS:       msg.Timestamp,
				ThreadTS: msg.ThreadTimestamp,
				SubType:  msg.SubType,
				BotID:    msg.BotID,
				Blocks:   msg.Blocks.BlockSet,
			})
		}

		if !hasMore || nextCursor == "" {
			break
		}
		if page >= maxReplyPages {
			log.Printf("⚠️ Thread %s in %s has more than %d pages - stopping pagination", params.TS, params.Channel, maxReplyPages)
			break
		}
		sdkParams.Cursor = nextCursor
	}

	return result, nil
}

// PostMessage sends a message to a Slack channel
func (c *SlackClient) PostMessage(
	ctx context.Context,
	channelID string,
	params clients.SlackMessageParams,
) (*clients.SlackPostMessageResponse, error) {
	var sdkOptions []slack.MsgOption
	if params.Text != "" {
		sdkOptions = append(sdkOptions, slack.MsgOptionText(params.Text, false))
	}
	if threadTS, ok := params.ThreadTS.Get(); ok && threadTS != "" {
		sdkOptions = append(sdkOptions, slack.MsgOptionTS(threadTS))
	}
	if len(params.Blocks) > 0 {
		sdkOptions = append(sdkOptions, slack.MsgOptionBlocks(params.Blocks...))
	}
	if params.Username != "" {
		sdkOptions = append(sdkOptions, slack.MsgOptionUsername(params.Username))
	}

	channel, timestamp, err := c.Client.PostMessageContext(ctx, channelID, sdkOptions...)
	if err != nil {
		return nil, err
	}

	return &clients.SlackPostMessageResponse{
		Channel:   channel,
		Timestamp: timestamp,
	}, nil
}
