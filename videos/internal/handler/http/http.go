package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/abhishek622/catflix/internal/apperr"
	"github.com/abhishek622/catflix/internal/httputil"
	"github.com/abhishek622/catflix/videos/pkg/model"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type controller interface {
	Get(ctx context.Context, hash string) (*model.Video, error)
	List(ctx context.Context) ([]model.Video, error)
	ListByAuthor(ctx context.Context, author string) ([]model.Video, error)
	Create(ctx context.Context, v *model.Video) error
	Update(ctx context.Context, v *model.Video) error
	Delete(ctx context.Context, hash string) error
	DeleteByAuthor(ctx context.Context, author string) error
	DeleteAll(ctx context.Context) error
}

// Handler defines the videos HTTP handler.
type Handler struct {
	ctrl   controller
	logger *zap.Logger
}

// New creates a new videos HTTP handler.
func New(ctrl controller, logger *zap.Logger) *Handler {
	return &Handler{ctrl: ctrl, logger: logger}
}

// Register mounts the videos routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/videos", h.readAll)
	r.Delete("/videos", h.deleteAll)
	r.Get("/videos/user/{author}", h.readFromAuthor)
	r.Delete("/videos/user/{author}", h.deleteFromAuthor)
	r.Post("/videos/{hash}", h.createOne)
	r.Get("/videos/{hash}", h.readOne)
	r.Put("/videos/{hash}", h.updateOne)
	r.Delete("/videos/{hash}", h.deleteOne)
}

func (h *Handler) readAll(w http.ResponseWriter, r *http.Request) {
	videos, err := h.ctrl.List(r.Context())
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, videos)
}

func (h *Handler) deleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.DeleteAll(r.Context()); err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) readFromAuthor(w http.ResponseWriter, r *http.Request) {
	videos, err := h.ctrl.ListByAuthor(r.Context(), chi.URLParam(r, "author"))
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, videos)
}

func (h *Handler) deleteFromAuthor(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.DeleteByAuthor(r.Context(), chi.URLParam(r, "author")); err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) createOne(w http.ResponseWriter, r *http.Request) {
	v, err := decodeFor(r)
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	if err := h.ctrl.Create(r.Context(), v); err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) readOne(w http.ResponseWriter, r *http.Request) {
	v, err := h.ctrl.Get(r.Context(), chi.URLParam(r, "hash"))
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, v)
}

func (h *Handler) updateOne(w http.ResponseWriter, r *http.Request) {
	v, err := decodeFor(r)
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	if err := h.ctrl.Update(r.Context(), v); err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteOne(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.Delete(r.Context(), chi.URLParam(r, "hash")); err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func decodeFor(r *http.Request) (*model.Video, error) {
	var v model.Video
	if err := httputil.DecodeJSON(r, &v); err != nil {
		return nil, err
	}
	if hash := chi.URLParam(r, "hash"); v.Hash != hash {
		return nil, fmt.Errorf("%w: hash %q does not match path %q", apperr.ErrInvalidInput, v.Hash, hash)
	}
	return &v, nil
}
