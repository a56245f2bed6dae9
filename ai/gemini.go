package ai

import (
	"context"
	"fmt"
	"log/slog"

	"SpliceSafari/lib/sl"

	"google.golang.org/genai"
)

// imageModels is the part of genai.Models used here
type imageModels interface {
	GenerateImages(ctx context.Context, model, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
}

// GeminiClient generates images with Imagen through the Gemini API
type GeminiClient struct {
	models imageModels
	model  string
	log    *slog.Logger
}

func NewGeminiClient(ctx context.Context, apiKey, model string, log *slog.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating GenAI client: %w", err)
	}
	return &GeminiClient{
		models: client.Models,
		model:  model,
		log:    log.With(sl.Module("gemini")),
	}, nil
}

func (c *GeminiClient) Model() string {
	return c.model
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string) (*GeneratedImage, error) {
	resp, err := c.models.GenerateImages(ctx, c.model, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    "1:1",
	})
	if err != nil {
		return nil, fmt.Errorf("GenAI generate images: %w", err)
	}
	if resp == nil || len(resp.GeneratedImages) == 0 {
		return nil, fmt.Errorf("GenAI returned no images")
	}

	generated := resp.GeneratedImages[0]
	if generated.Image == nil || len(generated.Image.ImageBytes) == 0 {
		if generated.RAIFilteredReason != "" {
			return nil, fmt.Errorf("image filtered: %s", generated.RAIFilteredReason)
		}
		return nil, fmt.Errorf("GenAI returned an empty image")
	}

	mimeType := generated.Image.MIMEType
	if mimeType == "" {
		mimeType = "image/png"
	}
	c.log.With(
		slog.String("mime", mimeType),
		slog.Int("bytes", len(generated.Image.ImageBytes)),
	).Debug("image generated")

	return &GeneratedImage{
		Data:     generated.Image.ImageBytes,
		MimeType: mimeType,
	}, nil
}
