package usecase

import (
	"context"
	"strings"

	"insight-gateway/internal/domain/entity"
	"insight-gateway/internal/domain/repository"
)

const pngDataURLPrefix = "data:image/png;base64,"

type ImageService struct {
	provider repository.ImageProvider
}

func NewImageService(p repository.ImageProvider) *ImageService {
	return &ImageService{provider: p}
}

func (s *ImageService) Generate(ctx context.Context, req entity.ImageRequest) (*entity.ImageResponse, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, entity.ErrPromptRequired
	}

	size := strings.TrimSpace(req.Size)
	if size == "" {
		size = entity.DefaultImageSize
	}

	payload, err := s.provider.GenerateImage(ctx, prompt, size)
	if err != nil {
		return nil, &entity.ProviderError{Op: "image", Err: err}
	}
	if payload == "" {
		return nil, entity.ErrEmptyProviderResult
	}

	return &entity.ImageResponse{Image: pngDataURLPrefix + payload}, nil
}
