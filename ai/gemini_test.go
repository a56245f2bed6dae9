package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type mockImageModels struct {
	gotModel  string
	gotPrompt string
	gotConfig *genai.GenerateImagesConfig
	resp      *genai.GenerateImagesResponse
	err       error
}

func (m *mockImageModels) GenerateImages(ctx context.Context, model, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error) {
	m.gotModel, m.gotPrompt, m.gotConfig = model, prompt, config
	return m.resp, m.err
}

func newTestGemini(models imageModels) *GeminiClient {
	return &GeminiClient{models: models, model: "imagen-test", log: discardLogger()}
}

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "imagen-test", discardLogger())
	assert.Error(t, err)
}

func TestGeminiClient_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the first image", func(t *testing.T) {
		models := &mockImageModels{resp: &genai.GenerateImagesResponse{
			GeneratedImages: []*genai.GeneratedImage{
				{Image: &genai.Image{ImageBytes: []byte("jpeg-bytes"), MIMEType: "image/jpeg"}},
			},
		}}

		img, err := newTestGemini(models).Generate(ctx, "a koala-moose")

		require.NoError(t, err)
		assert.Equal(t, []byte("jpeg-bytes"), img.Data)
		assert.Equal(t, "image/jpeg", img.MimeType)
		assert.Equal(t, "imagen-test", models.gotModel)
		assert.Equal(t, "a koala-moose", models.gotPrompt)
		require.NotNil(t, models.gotConfig)
		assert.EqualValues(t, 1, models.gotConfig.NumberOfImages)
	})

	t.Run("missing mime type defaults to png", func(t *testing.T) {
		models := &mockImageModels{resp: &genai.GenerateImagesResponse{
			GeneratedImages: []*genai.GeneratedImage{{Image: &genai.Image{ImageBytes: []byte("x")}}},
		}}

		img, err := newTestGemini(models).Generate(ctx, "p")
		require.NoError(t, err)
		assert.Equal(t, "image/png", img.MimeType)
	})

	t.Run("sdk error is wrapped", func(t *testing.T) {
		sdkErr := errors.New("quota")
		_, err := newTestGemini(&mockImageModels{err: sdkErr}).Generate(ctx, "p")
		assert.ErrorIs(t, err, sdkErr)
	})

	t.Run("no images is an error", func(t *testing.T) {
		_, err := newTestGemini(&mockImageModels{resp: &genai.GenerateImagesResponse{}}).Generate(ctx, "p")
		assert.Error(t, err)
	})

	t.Run("filtered image reports the reason", func(t *testing.T) {
		models := &mockImageModels{resp: &genai.GenerateImagesResponse{
			GeneratedImages: []*genai.GeneratedImage{{RAIFilteredReason: "safety"}},
		}}

		_, err := newTestGemini(models).Generate(ctx, "p")
		assert.ErrorContains(t, err, "safety")
	})
}
