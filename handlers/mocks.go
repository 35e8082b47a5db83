package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"reacjilator/models"
)

// MockReactionProcessor implements ReactionProcessor for testing
type MockReactionProcessor struct {
	mock.Mock
}

func (m *MockReactionProcessor) ProcessReactionAdded(ctx context.Context, event models.ReactionEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockReactionDispatcher implements ReactionDispatcher for testing
type MockReactionDispatcher struct {
	mock.Mock
}

func (m *MockReactionDispatcher) Dispatch(transport string, event models.ReactionEvent) {
	m.Called(transport, event)
}
