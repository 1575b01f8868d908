package client

import (
	"context"
	"encoding/base64"
	"strconv"
	"strings"

	"google.golang.org/genai"
)

// GeminiClient serves insights through Gemini models and images through Imagen.
type GeminiClient struct {
	client     *genai.Client
	model      string
	imageModel string
}

type GeminiConfig struct {
	APIKey     string
	Project    string
	Location   string
	BaseURL    string
	Model      string
	ImageModel string
}

func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.APIKey == "" && cfg.Project != "" {
		cc = &genai.ClientConfig{
			Project:  cfg.Project,
			Location: cfg.Location,
			Backend:  genai.BackendVertexAI,
		}
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, err
	}
	return NewGeminiClientFromClient(client, cfg.Model, cfg.ImageModel), nil
}

func NewGeminiClientFromClient(c *genai.Client, model, imageModel string) *GeminiClient {
	return &GeminiClient{
		client:     c,
		model:      model,
		imageModel: imageModel,
	}
}

func (g *GeminiClient) GenerateText(ctx context.Context, prompt string, maxTokens int) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
	})
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

var insightSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"summary": {Type: genai.TypeString},
		"anomalies": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	},
	Required:         []string{"summary", "anomalies"},
	PropertyOrdering: []string{"summary", "anomalies"},
}

func (g *GeminiClient) GenerateObject(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   insightSchema,
	})
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

func (g *GeminiClient) GenerateImage(ctx context.Context, prompt, size string) (string, error) {
	result, err := g.client.Models.GenerateImages(ctx, g.imageModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    aspectRatio(size),
		OutputMIMEType: "image/png",
	})
	if err != nil {
		return "", err
	}
	if result == nil || len(result.GeneratedImages) == 0 {
		return "", nil
	}
	img := result.GeneratedImages[0].Image
	if img == nil || len(img.ImageBytes) == 0 {
		return "", nil
	}
	return base64.StdEncoding.EncodeToString(img.ImageBytes), nil
}

// Imagen takes an aspect ratio instead of pixel dimensions.
var imagenRatios = []struct {
	name  string
	value float64
}{
	{"1:1", 1},
	{"3:4", 3.0 / 4},
	{"4:3", 4.0 / 3},
	{"9:16", 9.0 / 16},
	{"16:9", 16.0 / 9},
}

// aspectRatio maps a "WxH" size to the closest ratio Imagen supports.
// Anything unparsable is treated as square.
func aspectRatio(size string) string {
	w, h, ok := strings.Cut(strings.ToLower(size), "x")
	if !ok {
		return "1:1"
	}
	width, err1 := strconv.ParseFloat(strings.TrimSpace(w), 64)
	height, err2 := strconv.ParseFloat(strings.TrimSpace(h), 64)
	if err1 != nil || err2 != nil || width <= 0 || height <= 0 {
		return "1:1"
	}

	target := width / height
	best, bestDiff := "1:1", -1.0
	for _, r := range imagenRatios {
		diff := target - r.value
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			best, bestDiff = r.name, diff
		}
	}
	return best
}
