package handler

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/basel-ax/dalleimg/internal/domain"
)

// Runner executes one pipeline invocation
type Runner interface {
	Run(ctx context.Context) domain.RunResult
}

type responseBody struct {
	Msg   string `json:"msg"`
	Error string `json:"error"`
}

// Body renders the {msg, error} document returned to callers
func Body(result domain.RunResult) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	// encoding two strings cannot fail
	_ = enc.Encode(responseBody{Msg: result.Message, Error: result.Error})
	return bytes.TrimRight(buf.Bytes(), "\n")
}
