package entity

const DefaultImageSize = "1024x1024"

type ImageRequest struct {
	Prompt string `json:"prompt"`
	Size   string `json:"size"`
}

type ImageResponse struct {
	Image string `json:"image"` // data:image/png;base64,...
}
