package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aidex-platform/aidex-server/internal/entity"
)

type RequestEntity struct {
	ID             string    `json:"id"`
	RequesterEmail string    `json:"requesterEmail"`
	RecipientName  string    `json:"recipientName"`
	BloodGroup     string    `json:"bloodGroup"`
	District       string    `json:"district"`
	Upazila        string    `json:"upazila"`
	Hospital       string    `json:"hospital"`
	Address        string    `json:"address"`
	DonationDate   string    `json:"donationDate"`
	DonationTime   string    `json:"donationTime"`
	Message        string    `json:"message,omitempty"`
	Status         string    `json:"status"`
	DonorName      string    `json:"donorName,omitempty"`
	DonorEmail     string    `json:"donorEmail,omitempty"`
	RequestedAt    time.Time `json:"requestedAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func requestToAPI(req entity.DonationRequest) RequestEntity {
	return RequestEntity{
		ID:             req.ID.String(),
		RequesterEmail: req.RequesterEmail,
		RecipientName:  req.RecipientName,
		BloodGroup:     req.BloodGroup,
		District:       req.District,
		Upazila:        req.Upazila,
		Hospital:       req.Hospital,
		Address:        req.Address,
		DonationDate:   req.DonationDate,
		DonationTime:   req.DonationTime,
		Message:        req.Message,
		Status:         req.Status.String(),
		DonorName:      req.DonorName,
		DonorEmail:     req.DonorEmail,
		RequestedAt:    req.RequestedAt,
		UpdatedAt:      req.UpdatedAt,
	}
}

func requestsToAPI(requests []entity.DonationRequest) []RequestEntity {
	res := make([]RequestEntity, 0, len(requests))
	for _, req := range requests {
		res = append(res, requestToAPI(req))
	}

	return res
}

type CreateRequestRequest struct {
	RecipientName string `json:"recipientName"`
	BloodGroup    string `json:"bloodGroup"`
	District      string `json:"district"`
	Upazila       string `json:"upazila"`
	Hospital      string `json:"hospital"`
	Address       string `json:"address"`
	DonationDate  string `json:"donationDate"`
	DonationTime  string `json:"donationTime"`
	Message       string `json:"message"`
}

type CreateRequestResponse struct {
	Request RequestEntity `json:"request"`
}

// CreateRequest creates a donation request owned by the authenticated user
// @Summary Create donation request
// @Tags requests
// @Accept json
// @Produce json
// @Param CreateRequestRequest body CreateRequestRequest true "Donation request"
// @Success 201 {object} CreateRequestResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "No account for this identity"
// @Failure 409 {object} ErrorResponse "Account is blocked"
// @Failure 500 {object} ErrorResponse "Failed to create request"
// @Router /requests [post]
// @Security BearerAuth
func (h *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateRequestRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	created, err := h.s.CreateRequest(ctx, entity.DonationRequest{
		RecipientName: req.RecipientName,
		BloodGroup:    req.BloodGroup,
		District:      req.District,
		Upazila:       req.Upazila,
		Hospital:      req.Hospital,
		Address:       req.Address,
		DonationDate:  req.DonationDate,
		DonationTime:  req.DonationTime,
		Message:       req.Message,
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to create request")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, CreateRequestResponse{Request: requestToAPI(created)})
}

type RequestsResponse struct {
	Requests   []RequestEntity `json:"requests"`
	TotalCount int             `json:"totalCount"`
}

// Requests lists all donation requests, admin and volunteer only
// @Summary List donation requests
// @Tags requests
// @Produce json
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size (default 10)"
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} RequestsResponse
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Not enough rights"
// @Failure 500 {object} ErrorResponse "Failed to list requests"
// @Router /requests [get]
// @Security BearerAuth
func (h *Handler) Requests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, limit := parsePagination(r.URL.Query())

	filter := entity.RequestFilter{
		Page:  page,
		Limit: limit,
	}

	if v := r.URL.Query().Get("status"); v != "" {
		status := entity.RequestStatus(v)
		filter.Status = &status
	}

	requests, totalCount, err := h.s.Requests(ctx, filter)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to list requests")
		return
	}

	SendJSON(ctx, w, http.StatusOK, RequestsResponse{Requests: requestsToAPI(requests), TotalCount: totalCount})
}

// PendingRequests is the public board of open donation requests
// @Summary List pending donation requests
// @Tags requests
// @Produce json
// @Param limit query int false "Page size (default 10)"
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} RequestsResponse
// @Failure 500 {object} ErrorResponse "Failed to list requests"
// @Router /requests/pending [get]
func (h *Handler) PendingRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, limit := parsePagination(r.URL.Query())

	requests, totalCount, err := h.s.PendingRequests(ctx, page, limit)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to list requests")
		return
	}

	SendJSON(ctx, w, http.StatusOK, RequestsResponse{Requests: requestsToAPI(requests), TotalCount: totalCount})
}

type MyRequestsResponse struct {
	Requests []RequestEntity `json:"requests"`
}

// MyRequests lists the authenticated user's own donation requests
// @Summary List own donation requests
// @Tags requests
// @Produce json
// @Success 200 {object} MyRequestsResponse
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "No account for this identity"
// @Failure 500 {object} ErrorResponse "Failed to list requests"
// @Router /requests/my [get]
// @Security BearerAuth
func (h *Handler) MyRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requests, err := h.s.MyRequests(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to list requests")
		return
	}

	SendJSON(ctx, w, http.StatusOK, MyRequestsResponse{Requests: requestsToAPI(requests)})
}

type RequestResponse struct {
	Request RequestEntity `json:"request"`
}

// Request returns a single donation request
// @Summary Get donation request
// @Tags requests
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Success 200 {object} RequestResponse
// @Failure 400 {object} ErrorResponse "'id' must be a UUID"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 500 {object} ErrorResponse "Failed to get request"
// @Router /requests/{id} [get]
// @Security BearerAuth
func (h *Handler) Request(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := requestID(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	req, err := h.s.Request(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get request")
		return
	}

	SendJSON(ctx, w, http.StatusOK, RequestResponse{Request: requestToAPI(req)})
}

type EditRequestRequest struct {
	RecipientName string `json:"recipientName"`
	BloodGroup    string `json:"bloodGroup"`
	District      string `json:"district"`
	Upazila       string `json:"upazila"`
	Hospital      string `json:"hospital"`
	Address       string `json:"address"`
	DonationDate  string `json:"donationDate"`
	DonationTime  string `json:"donationTime"`
	Message       string `json:"message"`
}

type EditRequestResponse struct {
	Request RequestEntity `json:"request"`
}

// EditRequest updates a pending donation request's details
// @Summary Edit donation request
// @Description Details are editable only while the request is pending
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Param EditRequestRequest body EditRequestRequest true "Updated details"
// @Success 200 {object} EditRequestResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "Request is no longer editable"
// @Failure 500 {object} ErrorResponse "Failed to update request"
// @Router /requests/{id} [put]
// @Security BearerAuth
func (h *Handler) EditRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := requestID(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	var req EditRequestRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	updated, err := h.s.EditRequest(ctx, id, entity.RequestDetails{
		RecipientName: req.RecipientName,
		BloodGroup:    req.BloodGroup,
		District:      req.District,
		Upazila:       req.Upazila,
		Hospital:      req.Hospital,
		Address:       req.Address,
		DonationDate:  req.DonationDate,
		DonationTime:  req.DonationTime,
		Message:       req.Message,
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to update request")
		return
	}

	SendJSON(ctx, w, http.StatusOK, EditRequestResponse{Request: requestToAPI(updated)})
}

type AcceptRequestResponse struct {
	Request RequestEntity `json:"request"`
}

// AcceptRequest lets a donor pick up a pending donation request
// @Summary Accept donation request
// @Description Assigns the acting donor and moves the request to inprogress
// @Tags requests
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Success 200 {object} AcceptRequestResponse
// @Failure 400 {object} ErrorResponse "'id' must be a UUID"
// @Failure 403 {object} ErrorResponse "Only donors can accept donation requests"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "Request is no longer pending"
// @Failure 500 {object} ErrorResponse "Failed to accept request"
// @Router /requests/{id}/accept [post]
// @Security BearerAuth
func (h *Handler) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := requestID(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	accepted, err := h.s.AcceptRequest(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to accept request")
		return
	}

	SendJSON(ctx, w, http.StatusOK, AcceptRequestResponse{Request: requestToAPI(accepted)})
}

type UpdateRequestStatusRequest struct {
	Status string `json:"status"`
}

type UpdateRequestStatusResponse struct {
}

// UpdateRequestStatus moves a donation request through its lifecycle
// @Summary Update donation request status
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Param UpdateRequestStatusRequest body UpdateRequestStatusRequest true "New status"
// @Success 200 {object} UpdateRequestStatusResponse
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 403 {object} ErrorResponse "Not enough rights"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "Status transition is not allowed"
// @Failure 500 {object} ErrorResponse "Failed to update status"
// @Router /requests/{id}/status [patch]
// @Security BearerAuth
func (h *Handler) UpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := requestID(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	var req UpdateRequestStatusRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	err = h.s.UpdateRequestStatus(ctx, id, entity.RequestStatus(req.Status))
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to update status")
		return
	}

	SendJSON(ctx, w, http.StatusOK, UpdateRequestStatusResponse{})
}

type DeleteRequestResponse struct {
}

// DeleteRequest removes a donation request
// @Summary Delete donation request
// @Tags requests
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Success 200 {object} DeleteRequestResponse
// @Failure 400 {object} ErrorResponse "'id' must be a UUID"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 500 {object} ErrorResponse "Failed to delete request"
// @Router /requests/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := requestID(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	err = h.s.DeleteRequest(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to delete request")
		return
	}

	SendJSON(ctx, w, http.StatusOK, DeleteRequestResponse{})
}
