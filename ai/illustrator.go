package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"SpliceSafari/catalog"
	"SpliceSafari/core"
	"SpliceSafari/lib/sl"
	"SpliceSafari/render"
)

const configuredReason = "Configured"

// ImageGenerator is an external image capability
type ImageGenerator interface {
	Model() string
	Generate(ctx context.Context, prompt string) (*GeneratedImage, error)
}

// Outcome is the typed result of one external attempt: either a data URI
// or the reason the attempt failed
type Outcome struct {
	DataURI string
	Failure string
}

func (o Outcome) OK() bool {
	return o.Failure == "" && o.DataURI != ""
}

type state int

const (
	stateCheckConfig state = iota
	stateAttemptExternal
	stateFallback
	stateDone
)

// Illustrator acquires a poster: one external attempt, then the local renderer.
// It never returns an error.
type Illustrator struct {
	generator ImageGenerator
	provider  string
	reason    string
	captions  []string
	random    catalog.Random
	log       *slog.Logger
}

// NewIllustrator builds an illustrator. A nil generator disables the external
// path for the lifetime of the process; unavailable explains why.
func NewIllustrator(generator ImageGenerator, provider, unavailable string, captions []string, random catalog.Random, log *slog.Logger) *Illustrator {
	if random == nil {
		random = catalog.Global
	}
	if generator == nil && unavailable == "" {
		unavailable = "no image generator configured"
	}
	return &Illustrator{
		generator: generator,
		provider:  provider,
		reason:    unavailable,
		captions:  captions,
		random:    random,
		log:       log.With(sl.Module("illustrator")),
	}
}

// NewIllustratorFromConfig wires the provider selected in the config.
// Missing credentials are not an error: the fallback renderer takes over.
func NewIllustratorFromConfig(ctx context.Context, conf *core.Config, captions []string, log *slog.Logger) *Illustrator {
	switch conf.ImageProvider {
	case core.ProviderGemini:
		if strings.TrimSpace(conf.Gemini.ApiKey) == "" {
			return NewIllustrator(nil, conf.ImageProvider, "GEMINI_API_KEY not set (export/set it or place it in .env)", captions, nil, log)
		}
		client, err := NewGeminiClient(ctx, strings.TrimSpace(conf.Gemini.ApiKey), conf.Gemini.ImageModel, log)
		if err != nil {
			log.Error("creating gemini client", sl.Err(err))
			return NewIllustrator(nil, conf.ImageProvider, fmt.Sprintf("GenAI client unavailable: %v", err), captions, nil, log)
		}
		return NewIllustrator(client, conf.ImageProvider, "", captions, nil, log)
	default:
		if strings.TrimSpace(conf.OpenAI.ApiKey) == "" {
			return NewIllustrator(nil, conf.ImageProvider, "OPENAI_API_KEY not set (export/set it or place it in .env)", captions, nil, log)
		}
		client := NewOpenAIClient(strings.TrimSpace(conf.OpenAI.ApiKey), conf.OpenAI.BaseURL, conf.OpenAI.ImageModel, conf.OpenAI.Timeout, log)
		return NewIllustrator(client, conf.ImageProvider, "", captions, nil, log)
	}
}

func (i *Illustrator) Illustrate(ctx context.Context, animalA, animalB, speciesName string) core.ImageResult {
	log := i.log.With(
		slog.String("a", animalA),
		slog.String("b", animalB),
	)

	var result core.ImageResult
	current := stateCheckConfig
	for current != stateDone {
		switch current {
		case stateCheckConfig:
			if i.generator == nil {
				log.Info("image generator unavailable; fallback illustrator engaged", slog.String("reason", i.reason))
				current = stateFallback
				continue
			}
			current = stateAttemptExternal

		case stateAttemptExternal:
			outcome := i.attempt(ctx, ComposePrompt(animalA, animalB, speciesName))
			if outcome.OK() {
				result = core.ImageResult{ImageData: outcome.DataURI, Source: core.SourceAI}
				current = stateDone
				continue
			}
			log.With(
				slog.String("provider", i.provider),
				slog.String("model", i.generator.Model()),
			).Warn("image generation failed, falling back to SVG", slog.String("reason", outcome.Failure))
			current = stateFallback

		case stateFallback:
			caption := catalog.Choice(i.random, i.captions)
			result = core.ImageResult{
				ImageData: render.Poster(animalA, animalB, speciesName, caption),
				Source:    core.SourceFallback,
			}
			current = stateDone
		}
	}
	return result
}

// attempt makes exactly one call to the generator and reports it as an Outcome
func (i *Illustrator) attempt(ctx context.Context, prompt string) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = Outcome{Failure: fmt.Sprintf("generator panic: %v", r)}
		}
	}()

	image, err := i.generator.Generate(ctx, prompt)
	if err != nil {
		return Outcome{Failure: err.Error()}
	}
	if image == nil || len(image.Data) == 0 {
		return Outcome{Failure: "generator returned no image payload"}
	}
	return Outcome{DataURI: DataURI(image.MimeType, image.Data)}
}

// DataURI wraps raw image bytes as a base64 data URI
func DataURI(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = "image/png"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Status reports the external capability; it reads only immutable state
func (i *Illustrator) Status() core.ConfigStatus {
	if i.generator == nil {
		return core.ConfigStatus{
			Available: false,
			Provider:  i.provider,
			Reason:    i.reason,
		}
	}
	return core.ConfigStatus{
		Available: true,
		Provider:  i.provider,
		Model:     i.generator.Model(),
		Reason:    configuredReason,
	}
}
