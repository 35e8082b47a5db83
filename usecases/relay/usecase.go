package relay

import (
	"context"
	"time"

	"reacjilator/clients"
	"reacjilator/languages"
)

const (
	DefaultCallTimeout      = 10 * time.Second
	DefaultThreadFetchLimit = 100
)

// Config holds the tunables of the relay pipeline
type Config struct {
	// CallTimeout bounds each external call (fetch, translate, post). Zero disables it.
	CallTimeout      time.Duration
	ThreadFetchLimit int
	BotUsername      string
}

// RelayUseCase turns flag reactions into translated thread replies
type RelayUseCase struct {
	slackClient clients.SlackClient
	translator  clients.Translator
	directory   *languages.Directory
	config      Config
}

// NewRelayUseCase creates a new instance of RelayUseCase
func NewRelayUseCase(
	slackClient clients.SlackClient,
	translator clients.Translator,
	directory *languages.Directory,
	config Config,
) *RelayUseCase {
	if config.ThreadFetchLimit <= 0 {
		config.ThreadFetchLimit = DefaultThreadFetchLimit
	}

	return &RelayUseCase{
		slackClient: slackClient,
		translator:  translator,
		directory:   directory,
		config:      config,
	}
}

func (s *RelayUseCase) withCallTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.config.CallTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.config.CallTimeout)
}
