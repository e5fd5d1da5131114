package threadapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/CrestNiraj12/threadreader/domain"
)

// ProcessPath is the server endpoint that collapses a thread into text.
const ProcessPath = "/process_thread"

type processRequest struct {
	URL string `json:"url"`
}

type processResponse struct {
	Text   string `json:"text"`
	Error  string `json:"error"`
	Cached bool   `json:"cached"`
}

// Process implements app.ThreadProcessor.
func (c *Client) Process(ctx context.Context, threadURL string) (domain.ThreadResult, error) {
	threadURL = strings.TrimSpace(threadURL)
	if threadURL == "" {
		return domain.ThreadResult{}, domain.ErrEmptyURL
	}

	ctx, span := c.tracer.Start(ctx, "threadapi.Process",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("thread.url", threadURL)),
	)
	defer span.End()

	payload, err := json.Marshal(processRequest{URL: threadURL})
	if err != nil {
		return domain.ThreadResult{}, fmt.Errorf("encoding request: %w", err)
	}

	start := time.Now()
	resp, err := c.postJSON(ctx, ProcessPath, payload)
	log := c.log.With().
		Str("request_id", resp.requestID).
		Str("url", threadURL).
		Dur("elapsed", time.Since(start)).
		Logger()
	span.SetAttributes(attribute.String("request.id", resp.requestID))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		log.Warn().Err(err).Msg("thread request failed")
		return domain.ThreadResult{}, fmt.Errorf("processing thread: %w", err)
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.status))

	body, err := decodeResponse(resp.body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode")
		log.Warn().Err(err).Int("status", resp.status).Msg("undecodable thread response")
		return domain.ThreadResult{}, err
	}

	if resp.status < 200 || resp.status >= 300 {
		apiErr := &domain.APIError{StatusCode: resp.status, Message: body.Error}
		span.SetStatus(codes.Error, apiErr.Error())
		log.Info().Int("status", resp.status).Str("error", body.Error).Msg("thread rejected by server")
		return domain.ThreadResult{}, apiErr
	}

	span.SetAttributes(attribute.Bool("thread.cached", body.Cached))
	log.Info().Int("status", resp.status).Bool("cached", body.Cached).Int("text_len", len(body.Text)).Msg("thread processed")
	return domain.ThreadResult{Text: body.Text, Cached: body.Cached}, nil
}

// decodeResponse requires a JSON object; null, arrays and scalars are
// malformed whatever the status code.
func decodeResponse(data []byte) (processResponse, error) {
	var body *processResponse
	if err := json.Unmarshal(data, &body); err != nil {
		return processResponse{}, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if body == nil {
		return processResponse{}, fmt.Errorf("%w: null body", domain.ErrMalformedResponse)
	}
	return *body, nil
}
