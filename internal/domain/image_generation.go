package domain

import (
	"context"
)

// ImageGenerationRequest represents the parameters for image generation
type ImageGenerationRequest struct {
	Prompt    string
	NumImages int
	Size      string
}

// ImageGenerationResponse represents the response from the image generation service
type ImageGenerationResponse struct {
	URLs          []string
	RevisedPrompt string
}

// ImageGenerator defines the interface for image generation operations
type ImageGenerator interface {
	// GenerateImage generates images for the provided prompt and returns their transient URLs
	GenerateImage(ctx context.Context, req ImageGenerationRequest) (*ImageGenerationResponse, error)
}
