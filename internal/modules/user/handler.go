package user

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/reqres-users/internal/httpx"
	"github.com/georgemunganga/reqres-users/internal/pagination"
)

const (
	msgInvalidID = "Invalid user id"
	msgNotFound  = "User not found"
)

// Handler exposes user HTTP endpoints.
type Handler struct {
	service Service
	log     *slog.Logger
	now     func() time.Time
}

func NewHandler(service Service, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{service: service, log: log, now: time.Now}
}

// WithClock replaces the time source used for createdAt/updatedAt.
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Route("/api/users", func(r chi.Router) {
		r.Get("/", h.listUsers)              // GET    /api/users/?page=1&size=50
		r.Post("/", h.createUser)            // POST   /api/users/
		r.Get("/{user_id}", h.getUser)       // GET    /api/users/{user_id}
		r.Patch("/{user_id}", h.updateUser)  // PATCH  /api/users/{user_id}
		r.Delete("/{user_id}", h.deleteUser) // DELETE /api/users/{user_id}
	})
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	var verr httpx.ValidationError
	params := pagination.Params{
		Page: httpx.QueryInt(r, "page", pagination.DefaultPage, 1, 0, &verr),
		Size: httpx.QueryInt(r, "size", pagination.DefaultSize, 1, pagination.MaxSize, &verr),
	}
	if verr.Err() != nil {
		httpx.WriteValidation(w, &verr)
		return
	}

	page, err := h.service.ListUsers(r.Context(), params)
	if err != nil {
		h.internalError(w, r, "list users", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}
	u, err := h.service.GetUser(r.Context(), id)
	switch {
	case errors.Is(err, ErrInvalidID):
		httpx.WriteDetail(w, http.StatusUnprocessableEntity, msgInvalidID)
	case errors.Is(err, ErrNotFound):
		httpx.WriteEmptyObject(w, http.StatusNotFound)
	case err != nil:
		h.internalError(w, r, "get user", err, "user_id", id)
	default:
		httpx.WriteJSON(w, http.StatusOK, UserResponse{Data: u, Support: Support})
	}
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	req, err := decodeUserRequest(r)
	if verr, ok := httpx.AsValidation(err); ok {
		httpx.WriteValidation(w, verr)
		return
	}
	createdAt := FormatTimestamp(h.now())

	u, err := h.service.CreateUser(r.Context(), req)
	if err != nil {
		h.internalError(w, r, "create user", err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, CreateResponse{
		Name:      u.FirstName,
		Job:       u.Job,
		ID:        strconv.FormatInt(u.ID, 10),
		CreatedAt: createdAt,
	})
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}
	req, err := decodeUserRequest(r)
	if verr, ok := httpx.AsValidation(err); ok {
		httpx.WriteValidation(w, verr)
		return
	}
	updatedAt := FormatTimestamp(h.now())

	u, err := h.service.UpdateUser(r.Context(), id, req)
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.WriteDetail(w, http.StatusNotFound, msgNotFound)
	case err != nil:
		h.internalError(w, r, "update user", err, "user_id", id)
	default:
		httpx.WriteJSON(w, http.StatusOK, UpdateResponse{
			Name:      u.FirstName,
			Job:       u.Job,
			UpdatedAt: updatedAt,
		})
	}
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}
	err := h.service.DeleteUser(r.Context(), id)
	switch {
	case errors.Is(err, ErrInvalidID):
		httpx.WriteDetail(w, http.StatusUnprocessableEntity, msgInvalidID)
	case errors.Is(err, ErrNotFound):
		httpx.WriteDetail(w, http.StatusNotFound, msgNotFound)
	case err != nil:
		h.internalError(w, r, "delete user", err, "user_id", id)
	default:
		httpx.WriteNoContent(w)
	}
}

// userID parses {user_id}; on failure it has already answered with 422.
func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := httpx.PathInt(r, "user_id")
	if err != nil {
		verr, _ := httpx.AsValidation(err)
		httpx.WriteValidation(w, verr)
		return 0, false
	}
	return id, true
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, op string, err error, args ...any) {
	h.log.ErrorContext(r.Context(), op+" failed", append(args, "error", err)...)
	httpx.WriteInternal(w)
}
