package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Fund is the record of one completed payment. TransactionID is the dedup
// key: at most one fund per gateway transaction.
type Fund struct {
	ID            uuid.UUID
	TransactionID string
	Amount        decimal.Decimal
	Email         string
	DonorName     string
	Avatar        string
	FundingDate   time.Time
}

type CheckoutStatus string

const (
	CheckoutStatusCreated CheckoutStatus = "created"
	CheckoutStatusPaid    CheckoutStatus = "paid"
	CheckoutStatusFailed  CheckoutStatus = "failed"
)

func (s CheckoutStatus) String() string {
	return string(s)
}

// CheckoutSession tracks a hosted payment session from creation until the
// gateway reports it paid or failed. The gateway never calls us back with a
// guarantee, so unresolved sessions are polled by a background job.
type CheckoutSession struct {
	ID        uuid.UUID
	SessionID string
	Email     string
	Name      string
	Avatar    string
	Amount    decimal.Decimal
	Status    CheckoutStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PaymentStatus is the gateway's report for a checkout session.
type PaymentStatus struct {
	Paid          bool
	Failed        bool
	TransactionID string
	Amount        decimal.Decimal
	Email         string
}

// Stats is the admin/volunteer dashboard aggregate. TotalUsers counts users
// with the donor role, matching the dashboard's "registered donors" figure.
type Stats struct {
	TotalUsers    int64
	TotalRequests int64
	TotalFunds    decimal.Decimal
}
