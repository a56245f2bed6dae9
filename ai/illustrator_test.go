package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"SpliceSafari/catalog"
	"SpliceSafari/core"
	"SpliceSafari/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockGenerator struct {
	calls      int
	lastPrompt string
	image      *GeneratedImage
	err        error
	panicWith  any
}

func (m *mockGenerator) Model() string { return "mock-image-1" }

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (*GeneratedImage, error) {
	m.calls++
	m.lastPrompt = prompt
	if m.panicWith != nil {
		panic(m.panicWith)
	}
	return m.image, m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestIllustrator(gen ImageGenerator) *Illustrator {
	return NewIllustrator(gen, core.ProviderOpenAI, "", catalog.Punchlines, nil, discardLogger())
}

func assertFallback(t *testing.T, res core.ImageResult) {
	t.Helper()
	assert.Equal(t, core.SourceFallback, res.Source)
	require.True(t, strings.HasPrefix(res.ImageData, render.DataURIPrefix))
	_, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(res.ImageData, render.DataURIPrefix))
	assert.NoError(t, err)
}

func TestIllustrator_Illustrate(t *testing.T) {
	ctx := context.Background()

	t.Run("unconfigured generator falls back without calling out", func(t *testing.T) {
		ill := NewIllustrator(nil, core.ProviderOpenAI, "OPENAI_API_KEY not set", catalog.Punchlines, nil, discardLogger())

		res := ill.Illustrate(ctx, "Lion", "Zebra", "Turbo LioBra")

		assertFallback(t, res)
	})

	t.Run("generator error falls back and is swallowed", func(t *testing.T) {
		gen := &mockGenerator{err: errors.New("429 quota exceeded")}

		res := newTestIllustrator(gen).Illustrate(ctx, "Lion", "Zebra", "Turbo LioBra")

		assert.Equal(t, 1, gen.calls, "exactly one attempt, no retries")
		assertFallback(t, res)
	})

	t.Run("timeout from the client is treated like any failure", func(t *testing.T) {
		gen := &mockGenerator{err: context.DeadlineExceeded}

		res := newTestIllustrator(gen).Illustrate(ctx, "Otter", "Wolf", "Dizzy OttOlf")

		assertFallback(t, res)
	})

	t.Run("empty payload falls back", func(t *testing.T) {
		for _, img := range []*GeneratedImage{nil, {MimeType: "image/png"}} {
			gen := &mockGenerator{image: img}
			res := newTestIllustrator(gen).Illustrate(ctx, "Koala", "Moose", "Neon KoaOse")
			assertFallback(t, res)
		}
	})

	t.Run("panicking generator falls back", func(t *testing.T) {
		gen := &mockGenerator{panicWith: "nil map"}

		res := newTestIllustrator(gen).Illustrate(ctx, "Koala", "Moose", "Neon KoaOse")

		assertFallback(t, res)
	})

	t.Run("successful generation is tagged ai", func(t *testing.T) {
		payload := []byte("\x89PNG fake image bytes")
		gen := &mockGenerator{image: &GeneratedImage{Data: payload, MimeType: "image/png"}}

		res := newTestIllustrator(gen).Illustrate(ctx, "Panda", "Falcon", "Cosmic PanCon")

		assert.Equal(t, core.SourceAI, res.Source)
		assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(payload), res.ImageData)
		assert.Contains(t, gen.lastPrompt, "combines a Panda and a Falcon")
		assert.Contains(t, gen.lastPrompt, "'Cosmic PanCon'")
	})
}

func TestIllustrator_Status(t *testing.T) {
	t.Run("unavailable", func(t *testing.T) {
		ill := NewIllustrator(nil, core.ProviderOpenAI, "OPENAI_API_KEY not set", nil, nil, discardLogger())
		st := ill.Status()
		assert.False(t, st.Available)
		assert.Empty(t, st.Model)
		assert.Equal(t, "OPENAI_API_KEY not set", st.Reason)
	})

	t.Run("unavailable without explicit reason still explains", func(t *testing.T) {
		st := NewIllustrator(nil, "", "", nil, nil, discardLogger()).Status()
		assert.NotEmpty(t, st.Reason)
	})

	t.Run("available", func(t *testing.T) {
		st := newTestIllustrator(&mockGenerator{}).Status()
		assert.True(t, st.Available)
		assert.Equal(t, "mock-image-1", st.Model)
		assert.Equal(t, "Configured", st.Reason)
		assert.Equal(t, core.ProviderOpenAI, st.Provider)
	})
}

func TestNewIllustratorFromConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("openai without key is disabled", func(t *testing.T) {
		conf := &core.Config{ImageProvider: core.ProviderOpenAI}
		conf.OpenAI.ApiKey = "   "

		st := NewIllustratorFromConfig(ctx, conf, catalog.Punchlines, discardLogger()).Status()

		assert.False(t, st.Available)
		assert.Contains(t, st.Reason, "OPENAI_API_KEY")
	})

	t.Run("openai with key is enabled", func(t *testing.T) {
		conf := &core.Config{ImageProvider: core.ProviderOpenAI}
		conf.OpenAI.ApiKey = "sk-test"
		conf.OpenAI.ImageModel = "gpt-image-1"

		st := NewIllustratorFromConfig(ctx, conf, catalog.Punchlines, discardLogger()).Status()

		assert.True(t, st.Available)
		assert.Equal(t, "gpt-image-1", st.Model)
	})

	t.Run("gemini without key is disabled", func(t *testing.T) {
		conf := &core.Config{ImageProvider: core.ProviderGemini}

		st := NewIllustratorFromConfig(ctx, conf, catalog.Punchlines, discardLogger()).Status()

		assert.False(t, st.Available)
		assert.Contains(t, st.Reason, "GEMINI_API_KEY")
		assert.Equal(t, core.ProviderGemini, st.Provider)
	})
}
