package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reacjilator/languages"
	"reacjilator/models"
)

func TestClassify(t *testing.T) {
	dir := testDirectory(t)

	t.Run("FlagPrefixed", func(t *testing.T) {
		result := Classify(createTestReactionEvent("flag-jp"), dir)

		classification, ok := result.Get()
		require.True(t, ok)
		assert.Equal(t, "ja", classification.LanguageCode)
		assert.Equal(t, "jp", classification.CountryCode)
		assert.Equal(t, models.PolicyFlagPrefixed, classification.Policy)
		assert.Equal(t, testChannel, classification.Channel)
		assert.Equal(t, testRootTS, classification.MessageTS)
		assert.Equal(t, "flag-jp", classification.Reaction)
	})

	t.Run("Bare", func(t *testing.T) {
		result := Classify(createTestReactionEvent("jp"), dir)

		classification, ok := result.Get()
		require.True(t, ok)
		assert.Equal(t, "ja", classification.LanguageCode)
		assert.Equal(t, models.PolicyBare, classification.Policy)
	})

	t.Run("BareAndFlagPrefixedAgree", func(t *testing.T) {
		for _, key := range []string{"jp", "fr", "us", "cn"} {
			flag := Classify(createTestReactionEvent("flag-"+key), dir)
			bare := Classify(createTestReactionEvent(key), dir)
			require.True(t, flag.IsPresent())
			require.True(t, bare.IsPresent())
			assert.Equal(t, flag.MustGet().LanguageCode, bare.MustGet().LanguageCode, "key %s", key)
		}
	})

	t.Run("Skip_NotReactionAdded", func(t *testing.T) {
		event := createTestReactionEvent("flag-jp")
		event.Type = "reaction_removed"

		_, reason := classify(event, dir)
		assert.Equal(t, SkipEventType, reason)
		assert.True(t, Classify(event, dir).IsAbsent())
	})

	t.Run("Skip_NotMessageItem", func(t *testing.T) {
		event := createTestReactionEvent("flag-jp")
		event.ItemType = "file"

		_, reason := classify(event, dir)
		assert.Equal(t, SkipItemType, reason)
		assert.True(t, Classify(event, dir).IsAbsent())
	})

	t.Run("Skip_FlagWithoutLanguage", func(t *testing.T) {
		for _, reaction := range []string{"flag-ch", "flag-be", "flag-zz"} {
			_, reason := classify(createTestReactionEvent(reaction), dir)
			assert.Equal(t, SkipNoLanguage, reason, reaction)
		}
	})

	t.Run("Skip_BareNotInDirectory", func(t *testing.T) {
		for _, reaction := range []string{"smile", "thumbsup", "ch", "white_check_mark"} {
			_, reason := classify(createTestReactionEvent(reaction), dir)
			assert.Equal(t, SkipUnknownEmoji, reason, reaction)
		}
	})

	t.Run("FlagPrefixMustLeadIdentifier", func(t *testing.T) {
		_, reason := classify(createTestReactionEvent("red-flag-jp"), dir)
		assert.Equal(t, SkipUnknownEmoji, reason)
	})

	t.Run("Deterministic", func(t *testing.T) {
		event := createTestReactionEvent("flag-fr")
		first := Classify(event, dir)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, Classify(event, dir))
		}
	})
}

func TestClassify_DefaultDirectory(t *testing.T) {
	dir := languages.Default()

	tests := []struct {
		reaction string
		expected string
	}{
		{reaction: "flag-jp", expected: "ja"},
		{reaction: "jp", expected: "ja"},
		{reaction: "flag-mx", expected: "es"},
		{reaction: "flag-tw", expected: "zh-TW"},
		{reaction: "flag-england", expected: "en"},
		{reaction: "kr", expected: "ko"},
	}

	for _, tt := range tests {
		t.Run(tt.reaction, func(t *testing.T) {
			result := Classify(createTestReactionEvent(tt.reaction), dir)
			require.True(t, result.IsPresent())
			assert.Equal(t, tt.expected, result.MustGet().LanguageCode)
		})
	}
}
