package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/abhishek622/catflix/internal/apperr"
	"github.com/abhishek622/catflix/internal/httputil"
	"github.com/abhishek622/catflix/users/pkg/model"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type controller interface {
	Get(ctx context.Context, pseudo string) (*model.User, error)
	Create(ctx context.Context, u model.UserWithCredentials) error
	Update(ctx context.Context, u model.UserWithCredentials) error
	Delete(ctx context.Context, pseudo string) error
}

// Handler defines the users HTTP handler.
type Handler struct {
	ctrl   controller
	logger *zap.Logger
}

// New creates a new users HTTP handler.
func New(ctrl controller, logger *zap.Logger) *Handler {
	return &Handler{ctrl: ctrl, logger: logger}
}

// Register mounts the users routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Post("/users/{pseudo}", h.createOne)
	r.Get("/users/{pseudo}", h.readOne)
	r.Put("/users/{pseudo}", h.updateOne)
	r.Delete("/users/{pseudo}", h.deleteOne)
}

func (h *Handler) createOne(w http.ResponseWriter, r *http.Request) {
	u, err := decodeFor(r)
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	if err := h.ctrl.Create(r.Context(), u); err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) readOne(w http.ResponseWriter, r *http.Request) {
	u, err := h.ctrl.Get(r.Context(), chi.URLParam(r, "pseudo"))
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) updateOne(w http.ResponseWriter, r *http.Request) {
	u, err := decodeFor(r)
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	if err := h.ctrl.Update(r.Context(), u); err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteOne(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.Delete(r.Context(), chi.URLParam(r, "pseudo")); err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func decodeFor(r *http.Request) (model.UserWithCredentials, error) {
	var u model.UserWithCredentials
	if err := httputil.DecodeJSON(r, &u); err != nil {
		return u, err
	}
	if pseudo := chi.URLParam(r, "pseudo"); u.Pseudo != pseudo {
		return u, fmt.Errorf("%w: pseudo %q does not match path %q", apperr.ErrInvalidInput, u.Pseudo, pseudo)
	}
	return u, nil
}
