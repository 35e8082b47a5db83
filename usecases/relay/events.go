package relay

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/samber/mo"

	"reacjilator/core"
	"reacjilator/metrics"
	"reacjilator/models"
)

// ProcessReactionAdded runs the full pipeline for one reaction event:
// classify, fetch the thread, translate, deduplicate, post.
// Skipped and duplicate events return nil; every failure is returned wrapped
// in one of core.ErrFetch, core.ErrTranslation or core.ErrDelivery.
func (s *RelayUseCase) ProcessReactionAdded(ctx context.Context, event models.ReactionEvent) error {
	runID := core.NewID("run")
	log.Printf(
		"📋 Starting to process reaction %s on message %s in channel %s (run: %s)",
		event.Reaction,
		event.MessageTS,
		event.Channel,
		runID,
	)

	classification, reason := classify(event, s.directory)
	if reason != SkipNone {
		log.Printf("⏭️ Ignoring reaction %s on %s item (reason: %s, run: %s)", event.Reaction, event.ItemType, reason, runID)
		metrics.IncClassificationSkip(string(reason))
		return nil
	}

	log.Printf(
		"🌐 Reaction %s resolved to language %s via %s policy (run: %s)",
		classification.Reaction,
		classification.LanguageCode,
		classification.Policy,
		runID,
	)

	thread, err := s.FetchThread(ctx, classification.Channel, classification.MessageTS)
	if err != nil {
		log.Printf("❌ Failed to fetch message %s in channel %s: %v (run: %s)", classification.MessageTS, classification.Channel, err, runID)
		metrics.IncFetchError()
		return err
	}
	original := thread[0]

	if strings.TrimSpace(original.Text) == "" {
		log.Printf("⚠️ Message %s has no text - posting unsupported notice (run: %s)", original.TS, runID)
		if _, err := s.Post(ctx, original, mo.None[string](), classification.LanguageCode, classification.Channel, classification.Reaction); err != nil {
			log.Printf("❌ Failed to post unsupported notice: %v (run: %s)", err, runID)
			metrics.IncReply(metrics.ReplyError)
			return err
		}
		metrics.IncReply(metrics.ReplyUnsupported)
		log.Printf("📋 Completed successfully - posted unsupported notice (run: %s)", runID)
		return nil
	}

	result, err := s.translate(ctx, original.Text, classification.LanguageCode)
	if err != nil {
		log.Printf("❌ Failed to translate message %s to %s: %v (run: %s)", original.TS, classification.LanguageCode, err, runID)
		metrics.IncTranslation(metrics.StatusError)
		return err
	}
	metrics.IncTranslation(metrics.StatusOK)

	candidate := BuildReply(original, mo.Some(result.TranslatedText), result.TargetLanguage, classification.Reaction)
	if AlreadyReplied(thread, candidate.Body) {
		log.Printf("⏭️ Translation to %s already posted in thread %s - skipping (run: %s)", result.TargetLanguage, original.ThreadAnchor(), runID)
		metrics.IncReply(metrics.ReplyDuplicate)
		return nil
	}

	replyTS, err := s.Post(ctx, original, mo.Some(result.TranslatedText), result.TargetLanguage, classification.Channel, classification.Reaction)
	if err != nil {
		log.Printf("❌ Failed to post translation: %v (run: %s)", err, runID)
		metrics.IncReply(metrics.ReplyError)
		return err
	}
	metrics.IncReply(metrics.ReplyPosted)

	log.Printf("📋 Completed successfully - posted %s translation %s (run: %s)", result.TargetLanguage, replyTS, runID)
	return nil
}

func (s *RelayUseCase) translate(ctx context.Context, text, languageCode string) (*models.TranslationResult, error) {
	callCtx, cancel := s.withCallTimeout(ctx)
	defer cancel()

	translated, err := s.translator.Translate(callCtx, text, languageCode)
	if err != nil {
		if !core.IsTranslationError(err) {
			err = fmt.Errorf("%w: %w", core.ErrTranslation, err)
		}
		return nil, err
	}
	if strings.TrimSpace(translated) == "" {
		return nil, fmt.Errorf("%w: provider returned empty text for %s", core.ErrTranslation, languageCode)
	}

	return &models.TranslationResult{
		OriginalText:   text,
		TranslatedText: translated,
		TargetLanguage: languageCode,
	}, nil
}
