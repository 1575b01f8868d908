package client

import (
	"context"
)

// UnavailableClient stands in for a provider whose SDK client could not be
// built at startup. Every call fails with the construction error.
type UnavailableClient struct {
	Err error
}

func (u UnavailableClient) GenerateText(context.Context, string, int) (string, error) {
	return "", u.Err
}

func (u UnavailableClient) GenerateObject(context.Context, string) (string, error) {
	return "", u.Err
}

func (u UnavailableClient) GenerateImage(context.Context, string, string) (string, error) {
	return "", u.Err
}
