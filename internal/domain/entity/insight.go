package entity

import (
	"bytes"
	"encoding/json"
)

type InsightMode string

const (
	ModeText   InsightMode = "text"
	ModeObject InsightMode = "object"
)

// UnmarshalJSON accepts any JSON value. Only the string "object" selects
// structured output, everything else falls back to free text.
func (m *InsightMode) UnmarshalJSON(data []byte) error {
	*m = ModeText
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	if InsightMode(s) == ModeObject {
		*m = ModeObject
	}
	return nil
}

type InsightRequest struct {
	Prompt string      `json:"prompt"`
	Mode   InsightMode `json:"mode"`
}

type InsightText struct {
	Insight string `json:"insight"`
}

type InsightObject struct {
	Summary   string   `json:"summary"`
	Anomalies []string `json:"anomalies"`
}
