package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffpay/staffpay-backend-go/internal/domain/user"
	"github.com/staffpay/staffpay-backend-go/internal/handler/http/response"
	"github.com/staffpay/staffpay-backend-go/internal/service/file"
)

type UserHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	RaiseSalary(w http.ResponseWriter, r *http.Request)
	FinancialDetails(w http.ResponseWriter, r *http.Request)
	MyFinancialDetails(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
	fileService file.FileService
}

func NewUserHandler(userService user.UserService, fileService file.FileService) UserHandler {
	return &UserHandlerImpl{
		userService: userService,
		fileService: fileService,
	}
}

// Register implements UserHandler. The body is multipart: a 'data' field
// carrying the account JSON and an optional 'photo' file.
func (h *UserHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq user.RegisterUserRequest

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	// Get JSON data from 'data' field
	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return
	}

	if err := json.Unmarshal([]byte(dataJSON), &registerReq); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := registerReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Optional profile photo. Usernames are unique, so the file is keyed
	// by username before the account row exists.
	photo, photoHeader, err := r.FormFile("photo")
	if err == nil {
		defer photo.Close()

		photoURL, uploadErr := h.fileService.UploadProfilePhoto(r.Context(), registerReq.Username, photo, photoHeader.Filename)
		if uploadErr != nil {
			slog.Error("Profile photo upload error", "error", uploadErr)
			response.BadRequest(w, "Invalid profile photo", nil)
			return
		}
		registerReq.PhotoURL = &photoURL
	} else if err != http.ErrMissingFile {
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}

	// Call service
	userResponse, err := h.userService.Register(r.Context(), registerReq)
	if err != nil {
		slog.Error("Register service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User registered successfully", "username", userResponse.Username)
	response.Created(w, "User registered successfully", userResponse)
}

// List implements UserHandler.
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		slog.Error("List users service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

// Delete implements UserHandler.
func (h *UserHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.userService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User deleted successfully", "user_id", id)
	response.SuccessWithMessage(w, "User deleted successfully", nil)
}

// RaiseSalary implements UserHandler.
func (h *UserHandlerImpl) RaiseSalary(w http.ResponseWriter, r *http.Request) {
	var raiseReq user.RaiseSalaryRequest

	if err := json.NewDecoder(r.Body).Decode(&raiseReq); err != nil {
		slog.Error("RaiseSalary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	raiseReq.EmployeeID = chi.URLParam(r, "id")

	if err := raiseReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.userService.RaiseSalary(r.Context(), raiseReq); err != nil {
		slog.Error("RaiseSalary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Salary updated successfully", "user_id", raiseReq.EmployeeID)
	response.SuccessWithMessage(w, "Salary updated successfully", nil)
}

// FinancialDetails implements UserHandler.
func (h *UserHandlerImpl) FinancialDetails(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	details, err := h.userService.FinancialDetails(r.Context(), id)
	if err != nil {
		slog.Error("FinancialDetails service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, details)
}

// MyFinancialDetails implements UserHandler.
func (h *UserHandlerImpl) MyFinancialDetails(w http.ResponseWriter, r *http.Request) {
	id, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	details, err := h.userService.FinancialDetails(r.Context(), id)
	if err != nil {
		slog.Error("FinancialDetails service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, details)
}
