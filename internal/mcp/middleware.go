package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// maxPayloadChars bounds how much of a request or response body a single
// debug line can carry.
const maxPayloadChars = 2048

// trafficLoggingMiddleware emits one debug line per MCP request and one per
// response, tagged with the traffic direction. Payload rendering is skipped
// entirely unless the logger has debug enabled, so the middleware costs
// nothing at the default info level.
func trafficLoggingMiddleware(logger *slog.Logger, direction string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
				return next(ctx, method, req)
			}

			logger.Debug("mcp traffic",
				"direction", direction, "stage", "request", "method", method,
				"params", renderPayload(requestParams(req)))

			result, err := next(ctx, method, req)

			// Notifications have no response worth logging.
			if !strings.HasPrefix(method, "notifications/") {
				attrs := []any{
					"direction", direction, "stage", "response", "method", method,
					"result", renderPayload(result),
				}
				if err != nil {
					attrs = append(attrs, "error", err)
				}
				logger.Debug("mcp traffic", attrs...)
			}

			return result, err
		}
	}
}

// requestParams extracts the request parameters without trusting the SDK's
// concrete request types not to panic on nil receivers.
func requestParams(req sdkmcp.Request) any {
	if req == nil {
		return nil
	}
	defer func() { recover() }()
	return req.GetParams()
}

func renderPayload(payload any) string {
	if payload == nil {
		return "<nil>"
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%T", payload)
	}
	if len(data) > maxPayloadChars {
		return string(data[:maxPayloadChars]) + "..."
	}
	return string(data)
}
