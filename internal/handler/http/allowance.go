package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffpay/staffpay-backend-go/internal/domain/allowance"
	"github.com/staffpay/staffpay-backend-go/internal/handler/http/response"
)

type AllowanceHandler interface {
	Grant(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
}

type AllowanceHandlerImpl struct {
	allowanceService allowance.AllowanceService
}

func NewAllowanceHandler(allowanceService allowance.AllowanceService) AllowanceHandler {
	return &AllowanceHandlerImpl{
		allowanceService: allowanceService,
	}
}

// Grant implements AllowanceHandler.
func (h *AllowanceHandlerImpl) Grant(w http.ResponseWriter, r *http.Request) {
	var grantReq allowance.GrantAllowanceRequest

	if err := json.NewDecoder(r.Body).Decode(&grantReq); err != nil {
		slog.Error("Grant allowance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	grantReq.EmployeeID = chi.URLParam(r, "id")

	if err := grantReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	granted, err := h.allowanceService.Grant(r.Context(), grantReq)
	if err != nil {
		slog.Error("Grant allowance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Allowance granted", "allowance_id", granted.ID, "employee_id", grantReq.EmployeeID)
	response.Created(w, "Allowance granted", granted)
}

// ListMine implements AllowanceHandler.
func (h *AllowanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	employeeID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	allowances, err := h.allowanceService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		slog.Error("List allowances service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, allowances)
}

// ListByEmployee implements AllowanceHandler.
func (h *AllowanceHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	allowances, err := h.allowanceService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		slog.Error("List allowances service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, allowances)
}
