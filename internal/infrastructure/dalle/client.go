package dalle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/basel-ax/dalleimg/internal/domain"
)

// Client represents the OpenAI Images API client
type Client struct {
	client *openai.Client
	model  openai.ImageModel
}

// NewClient creates a new image generation client. Retries are disabled so a
// failed call surfaces immediately.
func NewClient(apiKey, baseURL, model string, timeout time.Duration) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(timeout),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(opts...)
	return &Client{
		client: &client,
		model:  openai.ImageModel(model),
	}
}

// GenerateImage implements domain.ImageGenerator
func (c *Client) GenerateImage(ctx context.Context, req domain.ImageGenerationRequest) (*domain.ImageGenerationResponse, error) {
	resp, err := c.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:         req.Prompt,
		Model:          c.model,
		N:              openai.Int(int64(req.NumImages)),
		Size:           openai.ImageGenerateParamsSize(req.Size),
		ResponseFormat: openai.ImageGenerateParamsResponseFormatURL,
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return nil, domain.NewDomainError(domain.ErrCodeGeneration,
				fmt.Sprintf("openai API error (status %d)", apiErr.StatusCode), err)
		}
		return nil, domain.NewDomainError(domain.ErrCodeGeneration, "openai request failed", err)
	}

	if len(resp.Data) == 0 {
		return nil, domain.NewDomainError(domain.ErrCodeGeneration, "no images returned from openai", nil)
	}

	out := &domain.ImageGenerationResponse{
		URLs:          make([]string, 0, len(resp.Data)),
		RevisedPrompt: resp.Data[0].RevisedPrompt,
	}
	for _, img := range resp.Data {
		if img.URL == "" {
			continue
		}
		out.URLs = append(out.URLs, img.URL)
	}

	if len(out.URLs) == 0 {
		return nil, domain.NewDomainError(domain.ErrCodeGeneration, "openai returned images without URLs", nil)
	}

	return out, nil
}
