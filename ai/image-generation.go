package ai

const (
	imageSize           = "1024x1024"
	imageQuality        = "standard"
	imageResponseFormat = "b64_json"
)

// ImageGenerationRequest represents a request to the OpenAI Images API
type ImageGenerationRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	Quality        string `json:"quality"`
	ResponseFormat string `json:"response_format"`
}

// ImageGenerationResponse represents the response from the OpenAI Images API
type ImageGenerationResponse struct {
	Created int64       `json:"created"`
	Data    []ImageData `json:"data"`
	Error   *Error      `json:"error"`
}

// ImageData represents a single generated image
type ImageData struct {
	URL           string `json:"url"`
	B64JSON       string `json:"b64_json"`
	RevisedPrompt string `json:"revised_prompt"`
}

type Error struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

// NewImageRequest creates a single-image request with the fixed generation parameters
func NewImageRequest(model, prompt string) *ImageGenerationRequest {
	return &ImageGenerationRequest{
		Model:          model,
		Prompt:         prompt,
		N:              1,
		Size:           imageSize,
		Quality:        imageQuality,
		ResponseFormat: imageResponseFormat,
	}
}

// GeneratedImage is what an ImageGenerator hands back on success
type GeneratedImage struct {
	Data     []byte
	MimeType string
}
