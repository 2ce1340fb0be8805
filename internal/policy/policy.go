// Package policy is the single decision point for every resource-mutating
// operation. It is a pure function of already-fetched records: the caller
// loads the acting user and the target, asks Decide, and applies the returned
// patch. The engine performs no I/O and holds no state between calls, so the
// rules are unit-testable without a database.
package policy

import (
	"fmt"

	"github.com/aidex-platform/aidex-server/internal/entity"
)

type Action int

const (
	ActionCreateRequest Action = iota
	ActionEditRequestDetails
	ActionAcceptRequest
	ActionUpdateRequestStatus
	ActionDeleteRequest
	ActionEditOwnProfile
	ActionViewAllUsers
	ActionViewAllRequests
	ActionViewAggregateStatistics
	ActionChangeUserRoleOrStatus
)

func (a Action) String() string {
	switch a {
	case ActionCreateRequest:
		return "CreateRequest"
	case ActionEditRequestDetails:
		return "EditRequestDetails"
	case ActionAcceptRequest:
		return "AcceptRequest"
	case ActionUpdateRequestStatus:
		return "UpdateRequestStatus"
	case ActionDeleteRequest:
		return "DeleteRequest"
	case ActionEditOwnProfile:
		return "EditOwnProfile"
	case ActionViewAllUsers:
		return "ViewAllUsers"
	case ActionViewAllRequests:
		return "ViewAllRequests"
	case ActionViewAggregateStatistics:
		return "ViewAggregateStatistics"
	case ActionChangeUserRoleOrStatus:
		return "ChangeUserRoleOrStatus"
	}

	return fmt.Sprintf("Action(%d)", int(a))
}

// Target carries whichever record the action applies to. Request is set for
// request-level actions, Email for user-level ones, NewStatus only for
// UpdateRequestStatus.
type Target struct {
	Request   *entity.DonationRequest
	Email     string
	NewStatus entity.RequestStatus
}

// Engine evaluates the access rules. transitions, when non-nil, restricts
// which status values UpdateRequestStatus may write from a given prior
// status. A nil table keeps the historical behavior: any authorized actor may
// write any status, including reopening a terminal request.
type Engine struct {
	transitions map[entity.RequestStatus][]entity.RequestStatus
}

func New() *Engine {
	return &Engine{}
}

// NewStrict restricts status writes to the transitions that occur in the
// normal request lifecycle: an in-progress request may be completed,
// cancelled or released back to pending, and a pending request may be
// cancelled outright.
func NewStrict() *Engine {
	return &Engine{
		transitions: map[entity.RequestStatus][]entity.RequestStatus{
			entity.RequestStatusInprogress: {
				entity.RequestStatusDone,
				entity.RequestStatusCancelled,
				entity.RequestStatusPending,
			},
			entity.RequestStatusPending: {
				entity.RequestStatusCancelled,
			},
		},
	}
}

// Decide returns nil if actor may perform action on target, or a deny error
// wrapping one of the entity sentinel reasons. Rules are evaluated in
// precedence order; the first matching rule decides.
func (e *Engine) Decide(actor entity.User, action Action, target Target) error {
	if actor.Email == "" {
		return fmt.Errorf("%s: %w", action, entity.ErrUnknownUser)
	}

	switch action {
	case ActionCreateRequest:
		return e.decideCreateRequest(actor, target)

	case ActionEditRequestDetails:
		return e.decideEditRequestDetails(actor, target)

	case ActionAcceptRequest:
		return e.decideAcceptRequest(actor, target)

	case ActionUpdateRequestStatus:
		return e.decideUpdateRequestStatus(actor, target)

	case ActionDeleteRequest:
		return e.decideDeleteRequest(actor, target)

	case ActionEditOwnProfile:
		if target.Email != actor.Email {
			return fmt.Errorf("%s: target %q, principal %q: %w",
				action, target.Email, actor.Email, entity.ErrIdentityMismatch)
		}

		return nil

	case ActionViewAllUsers:
		if actor.Role != entity.RoleAdmin {
			return fmt.Errorf("%s: role %q: %w", action, actor.Role, entity.ErrUnauthorized)
		}

		return nil

	case ActionViewAllRequests, ActionViewAggregateStatistics:
		if actor.Role != entity.RoleAdmin && actor.Role != entity.RoleVolunteer {
			return fmt.Errorf("%s: role %q: %w", action, actor.Role, entity.ErrUnauthorized)
		}

		return nil

	case ActionChangeUserRoleOrStatus:
		if actor.Role != entity.RoleAdmin {
			return fmt.Errorf("%s: role %q: %w", action, actor.Role, entity.ErrForbidden)
		}

		return nil
	}

	return fmt.Errorf("%s: %w", action, entity.ErrForbidden)
}

func (e *Engine) decideCreateRequest(actor entity.User, target Target) error {
	if actor.Status != entity.UserStatusActive {
		return fmt.Errorf("CreateRequest: user %q status %q: %w",
			actor.Email, actor.Status, entity.ErrAccountBlocked)
	}

	if target.Email != actor.Email {
		return fmt.Errorf("CreateRequest: requester %q, principal %q: %w",
			target.Email, actor.Email, entity.ErrIdentityMismatch)
	}

	return nil
}

func (e *Engine) decideEditRequestDetails(actor entity.User, target Target) error {
	req := target.Request
	if req == nil {
		return fmt.Errorf("EditRequestDetails: %w", entity.ErrNotFound)
	}

	// The pending gate comes first: even an admin may not edit the details
	// of a request a donor has already picked up.
	if req.Status != entity.RequestStatusPending {
		return fmt.Errorf("EditRequestDetails: request %s status %q: %w",
			req.ID, req.Status, entity.ErrNotEditable)
	}

	if req.RequesterEmail != actor.Email && actor.Role != entity.RoleAdmin {
		return fmt.Errorf("EditRequestDetails: user %q: %w", actor.Email, entity.ErrForbidden)
	}

	return nil
}

func (e *Engine) decideAcceptRequest(actor entity.User, target Target) error {
	req := target.Request
	if req == nil {
		return fmt.Errorf("AcceptRequest: %w", entity.ErrNotFound)
	}

	if actor.Role != entity.RoleDonor {
		return fmt.Errorf("AcceptRequest: user %q role %q: %w",
			actor.Email, actor.Role, entity.ErrNotDonor)
	}

	if req.Status != entity.RequestStatusPending {
		return fmt.Errorf("AcceptRequest: request %s status %q: %w",
			req.ID, req.Status, entity.ErrNotPending)
	}

	return nil
}

func (e *Engine) decideUpdateRequestStatus(actor entity.User, target Target) error {
	req := target.Request
	if req == nil {
		return fmt.Errorf("UpdateRequestStatus: %w", entity.ErrNotFound)
	}

	authorized := actor.Role == entity.RoleAdmin ||
		actor.Role == entity.RoleVolunteer ||
		(actor.Role == entity.RoleDonor &&
			req.RequesterEmail == actor.Email &&
			req.Status == entity.RequestStatusInprogress)
	if !authorized {
		return fmt.Errorf("UpdateRequestStatus: user %q role %q: %w",
			actor.Email, actor.Role, entity.ErrForbidden)
	}

	if e.transitions != nil {
		for _, next := range e.transitions[req.Status] {
			if next == target.NewStatus {
				return nil
			}
		}

		return fmt.Errorf("UpdateRequestStatus: %q -> %q: %w",
			req.Status, target.NewStatus, entity.ErrInvalidTransition)
	}

	return nil
}

func (e *Engine) decideDeleteRequest(actor entity.User, target Target) error {
	req := target.Request
	if req == nil {
		return fmt.Errorf("DeleteRequest: %w", entity.ErrNotFound)
	}

	if req.RequesterEmail != actor.Email && actor.Role != entity.RoleAdmin {
		return fmt.Errorf("DeleteRequest: user %q: %w", actor.Email, entity.ErrForbidden)
	}

	return nil
}

// AcceptPatch is the state change a granted AcceptRequest must apply: the
// request moves to inprogress and gains the accepting donor's name and email.
func (e *Engine) AcceptPatch(actor entity.User) entity.DonorPatch {
	return entity.DonorPatch{
		DonorName:  actor.Name,
		DonorEmail: actor.Email,
		Status:     entity.RequestStatusInprogress,
	}
}
