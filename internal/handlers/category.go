package handlers

import (
	"Reminder/internal/model"
	"Reminder/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	CategoryService *service.CategoryService
	Logger          *zap.SugaredLogger
	validate        *validator.Validate
}

func NewCategoryHandler(categoryService *service.CategoryService, logger *zap.SugaredLogger, v *validator.Validate) *CategoryHandler {
	return &CategoryHandler{CategoryService: categoryService, Logger: logger, validate: v}
}

type createCategoryRequest struct {
	UserID string  `json:"userId" validate:"required"`
	Name   string  `json:"name" validate:"required"`
	Color  *string `json:"color"`
}

type patchCategoryRequest struct {
	Name  *string                `json:"name" validate:"omitnil,min=1"`
	Color model.Optional[string] `json:"color"`
}

const categoryNotFound = "category not found"

// List категории пользователя из ?userId=
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := requireQuery(r, "userId")
	if err != nil {
		writeError(w, h.Logger, "ListCategories", err, categoryNotFound)
		return
	}
	list, err := h.CategoryService.List(r.Context(), userID)
	if err != nil {
		writeError(w, h.Logger, "ListCategories", err, categoryNotFound, "user_id", userID)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Logger, "CreateCategory", err, categoryNotFound)
		return
	}
	if err := validateStruct(h.validate, req); err != nil {
		writeError(w, h.Logger, "CreateCategory", err, categoryNotFound)
		return
	}

	c, err := h.CategoryService.Create(r.Context(), req.UserID, req.Name, emptyAsNil(req.Color))
	if err != nil {
		writeError(w, h.Logger, "CreateCategory", err, categoryNotFound, "user_id", req.UserID)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	c, err := h.CategoryService.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.Logger, "GetCategory", err, categoryNotFound, "category_id", id)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req patchCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Logger, "UpdateCategory", err, categoryNotFound, "category_id", id)
		return
	}
	if err := validateStruct(h.validate, req); err != nil {
		writeError(w, h.Logger, "UpdateCategory", err, categoryNotFound, "category_id", id)
		return
	}

	patch := model.CategoryPatch{Name: req.Name, Color: model.EmptyAsNull(req.Color)}
	c, err := h.CategoryService.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, h.Logger, "UpdateCategory", err, categoryNotFound, "category_id", id)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.CategoryService.Delete(r.Context(), id); err != nil {
		writeError(w, h.Logger, "DeleteCategory", err, categoryNotFound, "category_id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
