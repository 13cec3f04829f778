package main

import (
	"encoding/json"
	"io"

	"task-capture/pkg/datemath"
)

type voiceJSON struct {
	Title    string                   `json:"title"`
	Category string                   `json:"category,omitempty"`
	Priority string                   `json:"priority"`
	When     *datemath.ParsedDateTime `json:"when,omitempty"`
}

type resolveJSON struct {
	Found  bool                     `json:"found"`
	Result *datemath.ParsedDateTime `json:"result,omitempty"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
