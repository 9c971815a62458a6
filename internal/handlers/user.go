package handlers

import (
	"Reminder/internal/model"
	"Reminder/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	validate    *validator.Validate
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, v *validator.Validate) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, validate: v}
}

type createUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}

type patchUserRequest struct {
	Email *string `json:"email" validate:"omitnil,email"`
	Name  *string `json:"name" validate:"omitnil,min=1"`
}

const userNotFound = "user not found"

// List все пользователи
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.List(r.Context())
	if err != nil {
		writeError(w, h.Logger, "ListUsers", err, userNotFound)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// Create регистрация пользователя
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Logger, "CreateUser", err, userNotFound)
		return
	}
	if err := validateStruct(h.validate, req); err != nil {
		writeError(w, h.Logger, "CreateUser", err, userNotFound)
		return
	}

	user, err := h.UserService.Create(r.Context(), req.Email, req.Name)
	if err != nil {
		writeError(w, h.Logger, "CreateUser", err, userNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user, err := h.UserService.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.Logger, "GetUser", err, userNotFound, "user_id", id)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req patchUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Logger, "UpdateUser", err, userNotFound, "user_id", id)
		return
	}
	if err := validateStruct(h.validate, req); err != nil {
		writeError(w, h.Logger, "UpdateUser", err, userNotFound, "user_id", id)
		return
	}

	user, err := h.UserService.Update(r.Context(), id, model.UserPatch{Email: req.Email, Name: req.Name})
	if err != nil {
		writeError(w, h.Logger, "UpdateUser", err, userNotFound, "user_id", id)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.UserService.Delete(r.Context(), id); err != nil {
		writeError(w, h.Logger, "DeleteUser", err, userNotFound, "user_id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
