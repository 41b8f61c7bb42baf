package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffpay/staffpay-backend-go/internal/domain/advance"
	"github.com/staffpay/staffpay-backend-go/internal/handler/http/response"
)

type AdvanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
}

type AdvanceHandlerImpl struct {
	advanceService advance.AdvanceService
}

func NewAdvanceHandler(advanceService advance.AdvanceService) AdvanceHandler {
	return &AdvanceHandlerImpl{
		advanceService: advanceService,
	}
}

// Create implements AdvanceHandler. The employee is taken from the token,
// staff can only file requests for themselves.
func (h *AdvanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq advance.CreateAdvanceRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create advance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	employeeID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	createReq.EmployeeID = employeeID

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.advanceService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create advance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Advance request created", "advance_id", created.ID, "employee_id", employeeID)
	response.Created(w, "Advance request submitted", created)
}

// Decide implements AdvanceHandler.
func (h *AdvanceHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var decideReq advance.DecideAdvanceRequest

	if err := json.NewDecoder(r.Body).Decode(&decideReq); err != nil {
		slog.Error("Decide advance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	decideReq.ID = chi.URLParam(r, "id")

	if err := decideReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	decided, err := h.advanceService.Decide(r.Context(), decideReq)
	if err != nil {
		slog.Error("Decide advance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Advance request decided", "advance_id", decided.ID, "status", decided.Status)
	response.SuccessWithMessage(w, "Advance request decided", decided)
}

// List implements AdvanceHandler.
func (h *AdvanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	advances, err := h.advanceService.List(r.Context())
	if err != nil {
		slog.Error("List advances service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, advances)
}

// ListMine implements AdvanceHandler.
func (h *AdvanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	employeeID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	advances, err := h.advanceService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		slog.Error("List advances service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, advances)
}

// ListByEmployee implements AdvanceHandler.
func (h *AdvanceHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	advances, err := h.advanceService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		slog.Error("List advances service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, advances)
}
