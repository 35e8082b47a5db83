package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"

	"reacjilator/models"
)

// maxSlackEventBodyBytes bounds the request body read before signature verification
const maxSlackEventBodyBytes = 1 << 20

type SlackEventsHandler struct {
	signingSecret     string
	verificationToken string
	dispatcher        ReactionDispatcher
}

func NewSlackEventsHandler(
	signingSecret string,
	verificationToken string,
	dispatcher ReactionDispatcher,
) *SlackEventsHandler {
	return &SlackEventsHandler{
		signingSecret:     signingSecret,
		verificationToken: verificationToken,
		dispatcher:        dispatcher,
	}
}

// verifySlackSignature checks the v0 request signature and its timestamp freshness
func (h *SlackEventsHandler) verifySlackSignature(r *http.Request, body []byte) error {
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		return fmt.Errorf("invalid signature headers: %w", err)
	}
	if _, err := verifier.Write(body); err != nil {
		return fmt.Errorf("failed to hash request body: %w", err)
	}
	if err := verifier.Ensure(); err != nil {
		return fmt.Errorf("signature verification failed: %w", err)
	}
	return nil
}

func (h *SlackEventsHandler) parseOptions() []slackevents.Option {
	if h.verificationToken == "" {
		return []slackevents.Option{slackevents.OptionNoVerifyToken()}
	}
	return []slackevents.Option{
		slackevents.OptionVerifyToken(&slackevents.TokenComparator{VerificationToken: h.verificationToken}),
	}
}

func (h *SlackEventsHandler) HandleSlackEvent(w http.ResponseWriter, r *http.Request) {
	log.Printf("📨 Slack event received from %s", r.RemoteAddr)

	// Read raw body for signature verification
	bodyBytes, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSlackEventBodyBytes))
	if err != nil {
		log.Printf("❌ Failed to read request body: %v", err)
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	if err := h.verifySlackSignature(r, bodyBytes); err != nil {
		log.Printf("❌ Slack signature verification failed: %v", err)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	eventsAPIEvent, err := slackevents.ParseEvent(json.RawMessage(bodyBytes), h.parseOptions()...)
	if err != nil {
		log.Printf("❌ Failed to parse Slack event: %v", err)
		http.Error(w, "failed to parse body", http.StatusBadRequest)
		return
	}

	switch eventsAPIEvent.Type {
	case slackevents.URLVerification:
		log.Printf("🔐 Slack URL verification challenge received")
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(bodyBytes, &challenge); err != nil || challenge.Challenge == "" {
			log.Printf("❌ Challenge not found in verification request")
			http.Error(w, "challenge not found", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		if _, err := w.Write([]byte(challenge.Challenge)); err != nil {
			log.Printf("❌ Failed to write challenge response: %v", err)
		}
		return
	case slackevents.CallbackEvent:
		if retryNum := r.Header.Get("X-Slack-Retry-Num"); retryNum != "" {
			log.Printf("🔁 Slack redelivery #%s (%s)", retryNum, r.Header.Get("X-Slack-Retry-Reason"))
		}
		dispatchEventsAPIEvent(h.dispatcher, TransportWebhook, eventsAPIEvent)
	default:
		log.Printf("📋 Non-event callback received: %s", eventsAPIEvent.Type)
	}

	// Slack only needs the acknowledgement; processing continues on the worker pool
	w.WriteHeader(http.StatusOK)
}

func (h *SlackEventsHandler) SetupEndpoints(router *mux.Router) {
	log.Printf("🚀 Registering Slack webhook endpoints")

	router.HandleFunc("/slack/events", h.HandleSlackEvent).Methods("POST")
	log.Printf("✅ POST /slack/events endpoint registered")
}

// dispatchEventsAPIEvent forwards reaction_added callbacks and reports whether one was dispatched
func dispatchEventsAPIEvent(dispatcher ReactionDispatcher, transport string, event slackevents.EventsAPIEvent) bool {
	if event.Type != slackevents.CallbackEvent {
		return false
	}

	reaction, ok := event.InnerEvent.Data.(*slackevents.ReactionAddedEvent)
	if !ok {
		log.Printf("⏭️ Ignoring %s event: %s", transport, event.InnerEvent.Type)
		return false
	}

	dispatcher.Dispatch(transport, reactionEventFromSlack(reaction))
	return true
}

func reactionEventFromSlack(ev *slackevents.ReactionAddedEvent) models.ReactionEvent {
	return models.ReactionEvent{
		Type:      ev.Type,
		Reaction:  ev.Reaction,
		User:      ev.User,
		ItemType:  ev.Item.Type,
		Channel:   ev.Item.Channel,
		MessageTS: ev.Item.Timestamp,
	}
}
