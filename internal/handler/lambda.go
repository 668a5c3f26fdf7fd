package handler

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
)

// LambdaHandler adapts a Runner to the Lambda runtime. The trigger event is
// ignored; failures are reported in the response rather than as an invocation
// error so the platform does not retry.
type LambdaHandler struct {
	runner Runner
}

// NewLambdaHandler creates a new Lambda handler
func NewLambdaHandler(runner Runner) *LambdaHandler {
	return &LambdaHandler{runner: runner}
}

// Handle runs the pipeline once
func (h *LambdaHandler) Handle(ctx context.Context, _ json.RawMessage) (events.APIGatewayProxyResponse, error) {
	result := h.runner.Run(ctx)

	return events.APIGatewayProxyResponse{
		StatusCode: result.StatusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(Body(result)),
	}, nil
}
