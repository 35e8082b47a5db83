package relay

import (
	"regexp"

	"github.com/samber/mo"

	"reacjilator/languages"
	"reacjilator/models"
)

// SkipReason explains why an event was not acted on. Empty means actionable.
type SkipReason string

const (
	SkipNone         SkipReason = ""
	SkipEventType    SkipReason = "event_type"
	SkipItemType     SkipReason = "item_type"
	SkipUnknownEmoji SkipReason = "unknown_emoji"
	SkipNoLanguage   SkipReason = "no_language"
)

var flagPattern = regexp.MustCompile(`^flag-(\w+)$`)

// Classify decides whether a reaction event should be translated and to which language.
// It is pure: the same event and directory always give the same result.
func Classify(event models.ReactionEvent, directory *languages.Directory) mo.Option[models.Classification] {
	classification, reason := classify(event, directory)
	if reason != SkipNone {
		return mo.None[models.Classification]()
	}
	return mo.Some(classification)
}

func classify(event models.ReactionEvent, directory *languages.Directory) (models.Classification, SkipReason) {
	if event.Type != models.EventTypeReactionAdded {
		return models.Classification{}, SkipEventType
	}
	if event.ItemType != models.ItemTypeMessage {
		return models.Classification{}, SkipItemType
	}

	key, policy, ok := resolveKey(event.Reaction, directory)
	if !ok {
		return models.Classification{}, SkipUnknownEmoji
	}

	languageCode, ok := directory.Lookup(key).Get()
	if !ok {
		return models.Classification{}, SkipNoLanguage
	}

	return models.Classification{
		Channel:      event.Channel,
		MessageTS:    event.MessageTS,
		Reaction:     event.Reaction,
		CountryCode:  key,
		LanguageCode: languageCode,
		Policy:       policy,
	}, SkipNone
}

// resolveKey applies the resolution policies in order: flag-prefixed first, then bare
func resolveKey(reaction string, directory *languages.Directory) (string, models.ResolutionPolicy, bool) {
	if match := flagPattern.FindStringSubmatch(reaction); match != nil {
		return match[1], models.PolicyFlagPrefixed, true
	}
	if directory.Has(reaction) {
		return reaction, models.PolicyBare, true
	}
	return "", "", false
}
