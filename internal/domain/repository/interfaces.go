package repository

import (
	"context"
)

type InsightProvider interface {
	GenerateText(ctx context.Context, prompt string, maxTokens int) (string, error)
	// GenerateObject returns raw JSON shaped as {"summary": "...", "anomalies": ["..."]}.
	GenerateObject(ctx context.Context, prompt string) (string, error)
}

type ImageProvider interface {
	// GenerateImage returns the base64 PNG payload, or "" if the provider sent none.
	GenerateImage(ctx context.Context, prompt, size string) (string, error)
}

type RequestLimiter interface {
	Allow(ctx context.Context, clientKey string) (bool, error)
}
