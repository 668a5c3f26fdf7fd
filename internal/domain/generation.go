package domain

import (
	"context"
	"time"
)

const (
	StatusSucceeded = "Succeeded"
	StatusFailed    = "Failed"
)

// RunResult is the outcome of one pipeline invocation
type RunResult struct {
	RunID       string
	StatusCode  int
	Message     string
	Error       string
	Description string
	Quote       string
	Author      string
	ImageType   string
	Key         string
}

// Generation is a run history row
type Generation struct {
	ID          int
	RunID       string
	Description string
	ImageKey    string
	Status      string
	Error       string
	CreatedAt   time.Time
}

// GenerationRecorder stores run history
type GenerationRecorder interface {
	Record(ctx context.Context, g Generation) error
}
