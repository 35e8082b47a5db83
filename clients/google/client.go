package google

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"

	"reacjilator/core"
)

// translateAPI is the subset of *translate.Client used by GoogleTranslator
type translateAPI interface {
	Translate(ctx context.Context, inputs []string, target language.Tag, opts *translate.Options) ([]translate.Translation, error)
	Close() error
}

// GoogleTranslator implements clients.Translator on top of the Cloud Translation API
type GoogleTranslator struct {
	api translateAPI
}

// NewGoogleTranslator creates a translator authenticated with an API key.
// projectID is optional and only used for quota attribution.
func NewGoogleTranslator(ctx context.Context, apiKey, projectID string) (*GoogleTranslator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("google translate API key cannot be empty")
	}

	opts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if projectID != "" {
		opts = append(opts, option.WithQuotaProject(projectID))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create google translate client: %w", err)
	}

	return &GoogleTranslator{api: client}, nil
}

// Translate translates text into targetLanguage, letting the API detect the source language
func (t *GoogleTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	target, err := language.Parse(targetLanguage)
	if err != nil {
		return "", fmt.Errorf("%w: unsupported target language %q: %w", core.ErrTranslation, targetLanguage, err)
	}

	translations, err := t.api.Translate(ctx, []string{text}, target, &translate.Options{Format: translate.Text})
	if err != nil {
		return "", fmt.Errorf("%w: google translate to %s: %w", core.ErrTranslation, targetLanguage, err)
	}
	if len(translations) == 0 || strings.TrimSpace(translations[0].Text) == "" {
		return "", fmt.Errorf("%w: google translate returned no text for %s", core.ErrTranslation, targetLanguage)
	}

	return translations[0].Text, nil
}

func (t *GoogleTranslator) Close() error {
	return t.api.Close()
}
