package core

import "context"

// Source marks where a poster came from
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// ImageResult is a self-contained data URI plus its provenance
type ImageResult struct {
	ImageData string
	Source    Source
}

// Mashup is the outcome of one spin; it is never stored
type Mashup struct {
	Animals     [2]string
	SpeciesName string
	Image       ImageResult
}

// ConfigStatus describes whether the external image capability can be used
type ConfigStatus struct {
	Available bool
	Provider  string
	Model     string
	Reason    string
}

type MashupService interface {
	Spin(ctx context.Context) (*Mashup, error)
	Status() ConfigStatus
}
