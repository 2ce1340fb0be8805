package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
)

type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusInprogress RequestStatus = "inprogress"
	RequestStatusDone       RequestStatus = "done"
	RequestStatusCancelled  RequestStatus = "cancelled"
)

func (s RequestStatus) String() string {
	return string(s)
}

func (s RequestStatus) Validate() error {
	switch s {
	case RequestStatusPending, RequestStatusInprogress, RequestStatusDone, RequestStatusCancelled:
		return nil
	default:
		return fmt.Errorf("%w: unknown request status %q", ErrInvalidArgument, string(s))
	}
}

// Terminal reports whether no further donor or requester action is expected.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusDone || s == RequestStatusCancelled
}

type DonationRequest struct {
	ID             uuid.UUID
	RequesterEmail string
	RecipientName  string
	BloodGroup     string
	District       string
	Upazila        string
	Hospital       string
	Address        string
	DonationDate   string
	DonationTime   string
	Message        string
	Status         RequestStatus
	DonorName      string
	DonorEmail     string
	RequestedAt    time.Time
	UpdatedAt      time.Time
}

// RequestDetails holds the fields that are mutable while a request is pending.
// RequesterEmail, Status and the donor fields are never written through this.
type RequestDetails struct {
	RecipientName string
	BloodGroup    string
	District      string
	Upazila       string
	Hospital      string
	Address       string
	DonationDate  string
	DonationTime  string
	Message       string
}

// DonorPatch is the state change produced by a granted AcceptRequest.
type DonorPatch struct {
	DonorName  string
	DonorEmail string
	Status     RequestStatus
}

type RequestFilter struct {
	Status *RequestStatus
	Page   uint64
	Limit  uint64
}
