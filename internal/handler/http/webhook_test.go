package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/crewpay/crewpay-backend-go/internal/domain/payout"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPayoutService scripts ProcessWebhook results per test case.
type stubPayoutService struct {
	result payout.WebhookResult
	err    error

	lastRequest *payout.WebhookRequest
}

func (s *stubPayoutService) ProcessWebhook(ctx context.Context, req payout.WebhookRequest) (payout.WebhookResult, error) {
	s.lastRequest = &req
	if s.err != nil {
		return payout.WebhookResult{}, s.err
	}
	return s.result, nil
}

func (s *stubPayoutService) CreateManual(ctx context.Context, req payout.CreateManualPayoutRequest) ([]payout.PayoutResponse, error) {
	return nil, nil
}

func (s *stubPayoutService) List(ctx context.Context, filter payout.PayoutFilter) (payout.ListPayoutsResponse, error) {
	return payout.ListPayoutsResponse{}, nil
}

func (s *stubPayoutService) Get(ctx context.Context, id string) (payout.PayoutResponse, error) {
	return payout.PayoutResponse{}, nil
}

func (s *stubPayoutService) Update(ctx context.Context, req payout.UpdatePayoutRequest) (payout.PayoutResponse, error) {
	return payout.PayoutResponse{}, nil
}

func (s *stubPayoutService) Delete(ctx context.Context, id string) error {
	return nil
}

func postWebhook(t *testing.T, handler WebhookHandler, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/project-webhook", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	handler.ProjectWebhook(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestProjectWebhook_Success(t *testing.T) {
	stub := &stubPayoutService{
		result: payout.WebhookResult{
			Message: `Created 2 payout(s) for project "Website Redesign"`,
			Payouts: []payout.PayoutResponse{
				{ID: "p1", EmployeeName: "Alice Smith", Amount: decimal.RequireFromString("300")},
				{ID: "p2", EmployeeName: "Bob Jones (Quoted By Bonus)", Amount: decimal.RequireFromString("40")},
			},
		},
	}
	handler := NewWebhookHandler(stub, "")

	rec := postWebhook(t, handler, `{
		"project_value": 2000,
		"project_title": "Website Redesign",
		"quoted_by_name": "Bob Jones",
		"first_time": false,
		"employees_assigned": ["Alice Smith"],
		"job_id": "job-123"
	}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["payouts"], 2)

	require.NotNil(t, stub.lastRequest)
	assert.Equal(t, "Website Redesign", stub.lastRequest.ProjectTitle)
	require.NotNil(t, stub.lastRequest.JobID)
	assert.Equal(t, "job-123", *stub.lastRequest.JobID)
}

func TestProjectWebhook_MalformedJSON(t *testing.T) {
	handler := NewWebhookHandler(&stubPayoutService{}, "")

	rec := postWebhook(t, handler, `{not json`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Missing required fields", body["error"])
}

func TestProjectWebhook_ErrorMapping(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantError string
	}{
		{
			name:      "missing fields",
			err:       payout.ErrMissingFields,
			wantCode:  http.StatusBadRequest,
			wantError: "Missing required fields",
		},
		{
			name:      "no matching employees",
			err:       payout.ErrNoMatchingEmployees,
			wantCode:  http.StatusBadRequest,
			wantError: "No matching project-based employees found",
		},
		{
			name:      "nothing to pay",
			err:       payout.ErrNoPayoutsCalculated,
			wantCode:  http.StatusBadRequest,
			wantError: "No payouts could be calculated",
		},
		{
			name:      "unexpected failure",
			err:       assert.AnError,
			wantCode:  http.StatusInternalServerError,
			wantError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewWebhookHandler(&stubPayoutService{err: tt.err}, "")

			rec := postWebhook(t, handler, `{
				"project_value": 1000,
				"project_title": "Anything",
				"employees_assigned": ["Nobody"]
			}`, nil)

			assert.Equal(t, tt.wantCode, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tt.wantError, body["error"])
		})
	}
}

func TestProjectWebhook_DuplicateJob(t *testing.T) {
	dup := &payout.DuplicateJobError{
		JobID: "job-123",
		Existing: []payout.Payout{
			{ID: "p1", EmployeeName: "Alice Smith", Amount: decimal.RequireFromString("300")},
		},
	}
	handler := NewWebhookHandler(&stubPayoutService{err: dup}, "")

	rec := postWebhook(t, handler, `{
		"project_value": 2000,
		"project_title": "Website Redesign",
		"employees_assigned": ["Alice Smith"],
		"job_id": "job-123"
	}`, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Duplicate payouts", body["error"])

	existing, ok := body["existing_payouts"].([]interface{})
	require.True(t, ok)
	require.Len(t, existing, 1)
	row := existing[0].(map[string]interface{})
	assert.Equal(t, "Alice Smith", row["employee_name"])
}

func TestProjectWebhook_SharedSecret(t *testing.T) {
	handler := NewWebhookHandler(&stubPayoutService{}, "s3cret")

	t.Run("missing secret is rejected", func(t *testing.T) {
		rec := postWebhook(t, handler, `{}`, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Unauthorized", body["error"])
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		rec := postWebhook(t, handler, `{}`, map[string]string{"X-Webhook-Secret": "nope"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("correct secret passes through", func(t *testing.T) {
		rec := postWebhook(t, handler, `{
			"project_value": 100,
			"project_title": "Small Job",
			"employees_assigned": ["Alice Smith"]
		}`, map[string]string{"X-Webhook-Secret": "s3cret"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestProjectWebhook_OmittedJobIDSkipsDedup(t *testing.T) {
	stub := &stubPayoutService{
		result: payout.WebhookResult{Message: "ok"},
	}
	handler := NewWebhookHandler(stub, "")

	rec := postWebhook(t, handler, `{
		"project_value": 500,
		"project_title": "Rush Job",
		"employees_assigned": ["Alice Smith"]
	}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.lastRequest)
	assert.Nil(t, stub.lastRequest.JobID)
}
