package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffpay/staffpay-backend-go/internal/domain/payment"
	"github.com/staffpay/staffpay-backend-go/internal/handler/http/response"
)

type PaymentHandler interface {
	Settle(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
}

type PaymentHandlerImpl struct {
	paymentService payment.PaymentService
}

func NewPaymentHandler(paymentService payment.PaymentService) PaymentHandler {
	return &PaymentHandlerImpl{
		paymentService: paymentService,
	}
}

// Settle implements PaymentHandler.
func (h *PaymentHandlerImpl) Settle(w http.ResponseWriter, r *http.Request) {
	var settleReq payment.SettleRequest

	if err := json.NewDecoder(r.Body).Decode(&settleReq); err != nil {
		slog.Error("Settle decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := settleReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	settled, err := h.paymentService.Settle(r.Context(), settleReq)
	if err != nil {
		slog.Error("Settle service error", "error", err, "employee_id", settleReq.EmployeeID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Salary settled",
		"payment_id", settled.ID,
		"employee_id", settled.EmployeeID,
		"month", settled.Month,
		"year", settled.Year,
	)
	response.Created(w, "Salary settled", settled)
}

// List implements PaymentHandler.
func (h *PaymentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentService.ListAll(r.Context())
	if err != nil {
		slog.Error("List payments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, payments)
}

// ListMine implements PaymentHandler.
func (h *PaymentHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	employeeID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	payments, err := h.paymentService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		slog.Error("List payments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, payments)
}

// ListByEmployee implements PaymentHandler.
func (h *PaymentHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	payments, err := h.paymentService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		slog.Error("List payments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, payments)
}
