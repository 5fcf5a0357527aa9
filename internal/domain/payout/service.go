package payout

import (
	"context"
)

// WebhookResult is the outcome of a successful webhook calculation.
type WebhookResult struct {
	Message string
	Payouts []PayoutResponse

	// Names from employees_assigned that resolved but were skipped for
	// a zero rate at the given collaborator count.
	Skipped []string
}

// PayoutService defines business logic for payout operations
type PayoutService interface {
	// ProcessWebhook computes and persists project payouts for an
	// upstream "project closed" event. Bonus percentages are loaded
	// fresh from settings on every call.
	ProcessWebhook(ctx context.Context, req WebhookRequest) (WebhookResult, error)

	// CreateManual creates payouts from the calculator (source=manual).
	CreateManual(ctx context.Context, req CreateManualPayoutRequest) ([]PayoutResponse, error)

	List(ctx context.Context, filter PayoutFilter) (ListPayoutsResponse, error)

	Get(ctx context.Context, id string) (PayoutResponse, error)

	// Update hand-edits a payout row, recomputing the amount from the
	// edited inputs and recording the audit trail.
	Update(ctx context.Context, req UpdatePayoutRequest) (PayoutResponse, error)

	Delete(ctx context.Context, id string) error
}
