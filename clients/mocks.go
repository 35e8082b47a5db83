package clients

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSlackClient is a mock implementation of SlackClient
type MockSlackClient struct {
	mock.Mock
}

func (m *MockSlackClient) GetConversationReplies(
	ctx context.Context,
	params SlackConversationRepliesParameters,
) ([]SlackMessage, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]SlackMessage), args.Error(1)
}

func (m *MockSlackClient) PostMessage(
	ctx context.Context,
	channelID string,
	params SlackMessageParams,
) (*SlackPostMessageResponse, error) {
	args := m.Called(ctx, channelID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SlackPostMessageResponse), args.Error(1)
}

// MockTranslator is a mock implementation of Translator
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	args := m.Called(ctx, text, targetLanguage)
	return args.String(0), args.Error(1)
}
