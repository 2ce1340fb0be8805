package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aidex-platform/aidex-server/internal/entity"
)

type UserEntity struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	BloodGroup string    `json:"bloodGroup"`
	District   string    `json:"district"`
	Upazila    string    `json:"upazila"`
	Avatar     string    `json:"avatar,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func userToAPI(u entity.User) UserEntity {
	return UserEntity{
		ID:         u.ID.String(),
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role.String(),
		Status:     u.Status.String(),
		BloodGroup: u.BloodGroup,
		District:   u.District,
		Upazila:    u.Upazila,
		Avatar:     u.Avatar,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func usersToAPI(users []entity.User) []UserEntity {
	res := make([]UserEntity, 0, len(users))
	for _, u := range users {
		res = append(res, userToAPI(u))
	}

	return res
}

type RegisterRequest struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	BloodGroup string `json:"bloodGroup"`
	District   string `json:"district"`
	Upazila    string `json:"upazila"`
	Avatar     string `json:"avatar"`
}

type RegisterResponse struct {
	User UserEntity `json:"user"`
}

// Register creates the user record for the authenticated principal
// @Summary Register user
// @Description Creates the user record bound to the verified identity
// @Tags users
// @Accept json
// @Produce json
// @Param RegisterRequest body RegisterRequest true "User registration request"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Email does not match the verified identity"
// @Failure 409 {object} ErrorResponse "User with this email already exists"
// @Failure 500 {object} ErrorResponse "Failed to register user"
// @Router /users [post]
// @Security BearerAuth
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	user, err := h.s.Register(ctx, entity.User{
		Email:      req.Email,
		Name:       req.Name,
		Role:       entity.Role(req.Role),
		BloodGroup: req.BloodGroup,
		District:   req.District,
		Upazila:    req.Upazila,
		Avatar:     req.Avatar,
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to register user")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, RegisterResponse{User: userToAPI(user)})
}

type MeResponse struct {
	User UserEntity `json:"user"`
}

// Me returns the authenticated user's own record
// @Summary Own user record
// @Tags users
// @Produce json
// @Success 200 {object} MeResponse
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "No account for this identity"
// @Failure 500 {object} ErrorResponse "Failed to get user"
// @Router /users/me [get]
// @Security BearerAuth
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.s.Me(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get user")
		return
	}

	SendJSON(ctx, w, http.StatusOK, MeResponse{User: userToAPI(user)})
}

type UpdateProfileRequest struct {
	Name       string `json:"name"`
	BloodGroup string `json:"bloodGroup"`
	District   string `json:"district"`
	Upazila    string `json:"upazila"`
	Avatar     string `json:"avatar"`
}

type UpdateProfileResponse struct {
	User UserEntity `json:"user"`
}

// UpdateProfile updates the authenticated user's own profile
// @Summary Update own profile
// @Description Updates profile fields, never role or status
// @Tags users
// @Accept json
// @Produce json
// @Param UpdateProfileRequest body UpdateProfileRequest true "Profile update request"
// @Success 200 {object} UpdateProfileResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "No account for this identity"
// @Failure 500 {object} ErrorResponse "Failed to update profile"
// @Router /users/me [put]
// @Security BearerAuth
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email, err := entity.PrincipalFromCtx(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "Authentication required")
		return
	}

	var req UpdateProfileRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	user, err := h.s.UpdateProfile(ctx, email, entity.ProfilePatch{
		Name:       req.Name,
		BloodGroup: req.BloodGroup,
		District:   req.District,
		Upazila:    req.Upazila,
		Avatar:     req.Avatar,
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to update profile")
		return
	}

	SendJSON(ctx, w, http.StatusOK, UpdateProfileResponse{User: userToAPI(user)})
}

type UsersResponse struct {
	Users      []UserEntity `json:"users"`
	TotalCount int          `json:"totalCount"`
}

// Users lists all users, admin only
// @Summary List users
// @Description Lists users with optional role and status filters
// @Tags users
// @Produce json
// @Param role query string false "Filter by role"
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size (default 10)"
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} UsersResponse
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Not enough rights"
// @Failure 500 {object} ErrorResponse "Failed to list users"
// @Router /users [get]
// @Security BearerAuth
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, totalCount, err := h.s.Users(ctx, parseUserFilter(r.URL.Query()))
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to list users")
		return
	}

	SendJSON(ctx, w, http.StatusOK, UsersResponse{Users: usersToAPI(users), TotalCount: totalCount})
}

func parseUserFilter(url url.Values) entity.UserFilter {
	page, limit := parsePagination(url)

	filter := entity.UserFilter{
		Page:  page,
		Limit: limit,
	}

	if v := url.Get("role"); v != "" {
		role := entity.Role(v)
		filter.Role = &role
	}

	if v := url.Get("status"); v != "" {
		status := entity.UserStatus(v)
		filter.Status = &status
	}

	return filter
}

type SetUserRoleStatusRequest struct {
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

type SetUserRoleStatusResponse struct {
}

// SetUserRoleStatus changes another user's role or status, admin only
// @Summary Change user role or status
// @Tags users
// @Accept json
// @Produce json
// @Param email path string true "User email"
// @Param SetUserRoleStatusRequest body SetUserRoleStatusRequest true "Role/status change request"
// @Success 200 {object} SetUserRoleStatusResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Not enough rights"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Failed to change user"
// @Router /users/{email} [patch]
// @Security BearerAuth
func (h *Handler) SetUserRoleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email := chi.URLParam(r, "email")
	if email == "" {
		SendJSONErr(ctx, w, http.StatusBadRequest, nil, "email is required")
		return
	}

	var req SetUserRoleStatusRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	var patch entity.RoleStatusPatch

	if req.Role != nil {
		role := entity.Role(*req.Role)
		patch.Role = &role
	}

	if req.Status != nil {
		status := entity.UserStatus(*req.Status)
		patch.Status = &status
	}

	err = h.s.SetUserRoleStatus(ctx, email, patch)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to change user")
		return
	}

	SendJSON(ctx, w, http.StatusOK, SetUserRoleStatusResponse{})
}

type DonorsResponse struct {
	Donors []UserEntity `json:"donors"`
}

// Donors is the public donor search
// @Summary Search donors
// @Description Lists active donors matching blood group, district and upazila
// @Tags donors
// @Produce json
// @Param bloodGroup query string false "Blood group, e.g. A+"
// @Param district query string false "District"
// @Param upazila query string false "Upazila"
// @Success 200 {object} DonorsResponse
// @Failure 500 {object} ErrorResponse "Failed to search donors"
// @Router /donors [get]
func (h *Handler) Donors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	donors, err := h.s.Donors(ctx, entity.DonorFilter{
		BloodGroup: r.URL.Query().Get("bloodGroup"),
		District:   r.URL.Query().Get("district"),
		Upazila:    r.URL.Query().Get("upazila"),
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to search donors")
		return
	}

	SendJSON(ctx, w, http.StatusOK, DonorsResponse{Donors: usersToAPI(donors)})
}
