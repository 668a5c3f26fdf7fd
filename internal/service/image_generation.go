package service

import (
	"context"

	"github.com/basel-ax/dalleimg/internal/config"
	"github.com/basel-ax/dalleimg/internal/domain"
)

// ImageGenerationService applies configured defaults to image generation requests
type ImageGenerationService struct {
	generator domain.ImageGenerator
	config    *config.Config
}

// NewImageGenerationService creates a new image generation service
func NewImageGenerationService(generator domain.ImageGenerator, cfg *config.Config) *ImageGenerationService {
	return &ImageGenerationService{
		generator: generator,
		config:    cfg,
	}
}

// GenerateImage implements the image generation request
func (s *ImageGenerationService) GenerateImage(ctx context.Context, req domain.ImageGenerationRequest) (*domain.ImageGenerationResponse, error) {
	// Set default values if not provided
	if req.NumImages == 0 {
		req.NumImages = s.config.ImageCount
	}
	if req.NumImages == 0 {
		req.NumImages = 1
	}
	if req.Size == "" {
		req.Size = s.config.ImageSize
	}

	resp, err := s.generator.GenerateImage(ctx, req)
	if err != nil {
		return nil, err
	}

	if len(resp.URLs) == 0 {
		return nil, domain.NewDomainError(domain.ErrCodeGeneration, "no image URL returned", nil)
	}

	return resp, nil
}

// ImageURL generates images for prompt and returns the URL of the first one
func (s *ImageGenerationService) ImageURL(ctx context.Context, prompt string) (string, error) {
	resp, err := s.GenerateImage(ctx, domain.ImageGenerationRequest{Prompt: prompt})
	if err != nil {
		return "", err
	}
	return resp.URLs[0], nil
}
