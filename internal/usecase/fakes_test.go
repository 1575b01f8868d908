package usecase

import (
	"context"
)

type fakeInsightProvider struct {
	text      string
	object    string
	err       error
	calls     int
	lastMax   int
	lastInput string
}

func (f *fakeInsightProvider) GenerateText(_ context.Context, prompt string, maxTokens int) (string, error) {
	f.calls++
	f.lastInput = prompt
	f.lastMax = maxTokens
	return f.text, f.err
}

func (f *fakeInsightProvider) GenerateObject(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.lastInput = prompt
	return f.object, f.err
}

type fakeImageProvider struct {
	payload  string
	err      error
	calls    int
	lastSize string
}

func (f *fakeImageProvider) GenerateImage(_ context.Context, _ string, size string) (string, error) {
	f.calls++
	f.lastSize = size
	return f.payload, f.err
}
