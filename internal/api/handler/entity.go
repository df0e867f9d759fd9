package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/yogi-fashion/embroidery-service/internal/api"
)

// crudService is what every entity service offers the HTTP layer. T is the
// stored record and R the request payload.
type crudService[T, R any] interface {
	Create(ctx context.Context, req R) (*T, error)
	Update(ctx context.Context, id uuid.UUID, req R) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	List(ctx context.Context) ([]T, error)
}

// EntityHandler serves the collection at prefix and its members at
// prefix/{id}.
type EntityHandler[T, R any] struct {
	prefix  string
	service crudService[T, R]
	list    func(r *http.Request) ([]T, error)
}

func newEntityHandler[T, R any](prefix string, svc crudService[T, R]) *EntityHandler[T, R] {
	h := &EntityHandler[T, R]{prefix: prefix, service: svc}
	h.list = func(r *http.Request) ([]T, error) { return svc.List(r.Context()) }
	return h
}

func (h *EntityHandler[T, R]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := pathID(r, h.prefix)

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.handleList(w, r)
		case http.MethodPost:
			h.handleCreate(w, r)
		default:
			api.MethodNotAllowed(w)
		}
		return
	}

	id, ok := parseID(w, path)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r, id)
	case http.MethodPut:
		h.handleUpdate(w, r, id)
	case http.MethodDelete:
		h.handleDelete(w, r, id)
	default:
		api.MethodNotAllowed(w)
	}
}

func (h *EntityHandler[T, R]) handleList(w http.ResponseWriter, r *http.Request) {
	recs, err := h.list(r)
	if err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, recs)
}

func (h *EntityHandler[T, R]) handleGet(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	rec, err := h.service.Get(r.Context(), id)
	if err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, rec)
}

func (h *EntityHandler[T, R]) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req R
	if !decodeJSON(w, r, &req) {
		return
	}

	rec, err := h.service.Create(r.Context(), req)
	if err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusCreated, rec)
}

func (h *EntityHandler[T, R]) handleUpdate(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req R
	if !decodeJSON(w, r, &req) {
		return
	}

	rec, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, rec)
}

func (h *EntityHandler[T, R]) handleDelete(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if err := h.service.Delete(r.Context(), id); err != nil {
		api.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
