package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/planqa-cli/internal/core/domain"
)

type stubChat struct {
	result domain.ChatResult
	err    error
	gotMsg string
}

func (s *stubChat) Chat(_ context.Context, message string) (domain.ChatResult, error) {
	s.gotMsg = message
	return s.result, s.err
}

type stubEval struct {
	report domain.EvalReport
	err    error
}

func (s *stubEval) Run(context.Context) (domain.EvalReport, error) {
	return s.report, s.err
}

func newTestServer(chat *stubChat, eval *stubEval) http.Handler {
	return NewServer(":0", chat, eval).router()
}

func TestHealth(t *testing.T) {
	handler := newTestServer(&stubChat{}, &stubEval{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestChatQA(t *testing.T) {
	chat := &stubChat{result: domain.ChatResult{
		Type:    domain.ModeQA,
		Answer:  "FD1 is fire rated, per spec.pdf page 3.",
		Sources: []domain.SourceRef{{FileName: "spec.pdf", Page: 3}},
	}}
	handler := newTestServer(chat, &stubEval{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"What is FD1?"}`))
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "What is FD1?", chat.gotMsg)

	var result domain.ChatResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, domain.ModeQA, result.Type)
	assert.Equal(t, "FD1 is fire rated, per spec.pdf page 3.", result.Answer)
	require.Len(t, result.Sources, 1)
	assert.Equal(t, 3, result.Sources[0].Page)
}

func TestChatStructured(t *testing.T) {
	chat := &stubChat{result: domain.ChatResult{
		Type:  domain.ModeStructured,
		Doors: []domain.DoorRecord{{Mark: "FD1", Location: "Corridor"}},
	}}
	handler := newTestServer(chat, &stubEval{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"Generate a door schedule"}`))
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result domain.ChatResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, domain.ModeStructured, result.Type)
	require.Len(t, result.Doors, 1)
	assert.Equal(t, "FD1", result.Doors[0].Mark)
}

func TestChatBadRequests(t *testing.T) {
	handler := newTestServer(&stubChat{}, &stubEval{})

	for name, body := range map[string]string{
		"invalid json":  `{`,
		"empty message": `{"message":"  "}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestChatErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"generation failed", domain.ErrGenerationFailed, http.StatusBadGateway},
		{"backend unavailable", domain.ErrCompletionUnavailable, http.StatusBadGateway},
		{"index missing", domain.ErrIndexMissing, http.StatusServiceUnavailable},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestServer(&stubChat{err: tt.err}, &stubEval{})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"hi"}`))
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)

			var body errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestEval(t *testing.T) {
	eval := &stubEval{report: domain.EvalReport{
		RunID:   "run-1",
		Summary: domain.EvalSummary{LooksCorrect: 3, PartiallyCorrect: 1, Wrong: 1},
	}}
	handler := newTestServer(&stubChat{}, eval)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/eval", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var report domain.EvalReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "run-1", report.RunID)
	assert.Equal(t, 3, report.Summary.LooksCorrect)
}

func TestCORSHeaders(t *testing.T) {
	handler := newTestServer(&stubChat{}, &stubEval{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/chat", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
