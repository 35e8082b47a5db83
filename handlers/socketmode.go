package handlers

import (
	"context"
	"log"

	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
)

type SocketModeHandler struct {
	client     *socketmode.Client
	dispatcher ReactionDispatcher
	ack        func(req socketmode.Request)
}

func NewSocketModeHandler(client *socketmode.Client, dispatcher ReactionDispatcher) *SocketModeHandler {
	return &SocketModeHandler{
		client:     client,
		dispatcher: dispatcher,
		ack: func(req socketmode.Request) {
			client.Ack(req)
		},
	}
}

// Run keeps the Socket Mode connection open until ctx is cancelled
func (h *SocketModeHandler) Run(ctx context.Context) error {
	log.Printf("📋 Starting to run Socket Mode connection")
	go h.consumeEvents(ctx)

	if err := h.client.RunContext(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	log.Printf("📋 Completed successfully - Socket Mode connection closed")
	return nil
}

func (h *SocketModeHandler) consumeEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-h.client.Events:
			if !ok {
				return
			}
			h.handleEvent(evt)
		}
	}
}

func (h *SocketModeHandler) handleEvent(evt socketmode.Event) {
	switch evt.Type {
	case socketmode.EventTypeConnecting:
		log.Printf("🔌 Connecting to Slack with Socket Mode...")
	case socketmode.EventTypeConnected:
		log.Printf("✅ Connected to Slack with Socket Mode")
	case socketmode.EventTypeConnectionError:
		log.Printf("❌ Socket Mode connection failed, retrying")
	case socketmode.EventTypeEventsAPI:
		eventsAPIEvent, ok := evt.Data.(slackevents.EventsAPIEvent)
		if !ok {
			log.Printf("❌ Unexpected Socket Mode payload: %T", evt.Data)
			return
		}
		// Acknowledge first so Slack does not redeliver while the relay runs
		if evt.Request != nil {
			h.ack(*evt.Request)
		}
		dispatchEventsAPIEvent(h.dispatcher, TransportSocketMode, eventsAPIEvent)
	default:
		log.Printf("⏭️ Ignoring Socket Mode event: %s", evt.Type)
	}
}
