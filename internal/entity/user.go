package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
)

type Role string

const (
	RoleDonor     Role = "donor"
	RoleAdmin     Role = "admin"
	RoleVolunteer Role = "volunteer"
	RoleRequester Role = "requester"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) Validate() error {
	switch r {
	case RoleDonor, RoleAdmin, RoleVolunteer, RoleRequester:
		return nil
	default:
		return fmt.Errorf("%w: unknown role %q", ErrInvalidArgument, string(r))
	}
}

type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

func (s UserStatus) String() string {
	return string(s)
}

func (s UserStatus) Validate() error {
	switch s {
	case UserStatusActive, UserStatusBlocked:
		return nil
	default:
		return fmt.Errorf("%w: unknown user status %q", ErrInvalidArgument, string(s))
	}
}

type User struct {
	ID         uuid.UUID
	Email      string
	Name       string
	Role       Role
	Status     UserStatus
	BloodGroup string
	District   string
	Upazila    string
	Avatar     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ProfilePatch holds the self-service editable profile fields.
type ProfilePatch struct {
	Name       string
	BloodGroup string
	District   string
	Upazila    string
	Avatar     string
}

// RoleStatusPatch is applied by admins only. Nil fields are left unchanged.
type RoleStatusPatch struct {
	Role   *Role
	Status *UserStatus
}

type UserFilter struct {
	Role   *Role
	Status *UserStatus
	Page   uint64
	Limit  uint64
}

// DonorFilter narrows the public donor search. Empty fields match everything.
type DonorFilter struct {
	BloodGroup string
	District   string
	Upazila    string
}
