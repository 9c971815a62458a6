package handlers

import (
	"Reminder/internal/model"
	"Reminder/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// TodoHandler задачи и их картинки.
type TodoHandler struct {
	TodoService *service.TodoService
	Logger      *zap.SugaredLogger
	validate    *validator.Validate
}

func NewTodoHandler(todoService *service.TodoService, logger *zap.SugaredLogger, v *validator.Validate) *TodoHandler {
	return &TodoHandler{TodoService: todoService, Logger: logger, validate: v}
}

type createTodoRequest struct {
	UserID      string  `json:"userId" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	CategoryID  *string `json:"categoryId"`
	DueDate     *string `json:"dueDate" validate:"omitnil,duedate"`
}

// patchTodoRequest: null или "" в необязательных полях очищают их.
type patchTodoRequest struct {
	Title       *string                `json:"title" validate:"omitnil,min=1"`
	Description model.Optional[string] `json:"description"`
	Completed   *bool                  `json:"completed"`
	CategoryID  model.Optional[string] `json:"categoryId"`
	DueDate     model.Optional[string] `json:"dueDate" validate:"omitempty,duedate"`
}

type imageUploadRequest struct {
	FileName    string `json:"fileName" validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
	UserID      string `json:"userId" validate:"required"`
}

type imageURLResponse struct {
	ImageURL string `json:"imageUrl"`
}

const todoNotFound = "todo not found"

// List задачи пользователя из ?userId=, новые первыми
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := requireQuery(r, "userId")
	if err != nil {
		writeError(w, h.Logger, "ListTodos", err, todoNotFound)
		return
	}
	list, err := h.TodoService.List(r.Context(), userID)
	if err != nil {
		writeError(w, h.Logger, "ListTodos", err, todoNotFound, "user_id", userID)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTodoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Logger, "CreateTodo", err, todoNotFound)
		return
	}
	req.Description = emptyAsNil(req.Description)
	req.CategoryID = emptyAsNil(req.CategoryID)
	req.DueDate = emptyAsNil(req.DueDate)
	if err := validateStruct(h.validate, req); err != nil {
		writeError(w, h.Logger, "CreateTodo", err, todoNotFound)
		return
	}

	t, err := h.TodoService.Create(r.Context(), req.UserID, model.NewTodo{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		DueDate:     req.DueDate,
	})
	if err != nil {
		writeError(w, h.Logger, "CreateTodo", err, todoNotFound, "user_id", req.UserID)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	t, err := h.TodoService.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.Logger, "GetTodo", err, todoNotFound, "todo_id", id)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req patchTodoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Logger, "UpdateTodo", err, todoNotFound, "todo_id", id)
		return
	}
	req.Description = model.EmptyAsNull(req.Description)
	req.CategoryID = model.EmptyAsNull(req.CategoryID)
	req.DueDate = model.EmptyAsNull(req.DueDate)
	if err := validateStruct(h.validate, req); err != nil {
		writeError(w, h.Logger, "UpdateTodo", err, todoNotFound, "todo_id", id)
		return
	}

	t, err := h.TodoService.Update(r.Context(), id, model.TodoPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		CategoryID:  req.CategoryID,
		DueDate:     req.DueDate,
	})
	if err != nil {
		writeError(w, h.Logger, "UpdateTodo", err, todoNotFound, "todo_id", id)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Delete удаляет задачу и, если получится, её картинку
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.TodoService.Delete(r.Context(), id); err != nil {
		writeError(w, h.Logger, "DeleteTodo", err, todoNotFound, "todo_id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RequestImageUpload выдаёт ссылку для прямой загрузки картинки в хранилище
func (h *TodoHandler) RequestImageUpload(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req imageUploadRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Logger, "RequestImageUpload", err, todoNotFound, "todo_id", id)
		return
	}
	if err := validateStruct(h.validate, req); err != nil {
		writeError(w, h.Logger, "RequestImageUpload", err, todoNotFound, "todo_id", id)
		return
	}

	slot, err := h.TodoService.RequestImageUpload(r.Context(), id, req.UserID, req.FileName, req.ContentType)
	if err != nil {
		writeError(w, h.Logger, "RequestImageUpload", err, todoNotFound, "todo_id", id)
		return
	}
	writeJSON(w, http.StatusOK, slot)
}

// GetImage ссылка на картинку задачи; ?signed=true даёт подписанную ссылку на чтение
func (h *TodoHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	signed := r.URL.Query().Get("signed") == "true"
	u, err := h.TodoService.ImageURL(r.Context(), id, signed)
	if err != nil {
		writeError(w, h.Logger, "GetImage", err, todoNotFound, "todo_id", id)
		return
	}
	writeJSON(w, http.StatusOK, imageURLResponse{ImageURL: u})
}
