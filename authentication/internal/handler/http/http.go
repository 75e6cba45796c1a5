package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/abhishek622/catflix/authentication/pkg/model"
	"github.com/abhishek622/catflix/internal/apperr"
	"github.com/abhishek622/catflix/internal/httputil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type controller interface {
	Connect(ctx context.Context, creds model.Credentials) (string, error)
	Verify(ctx context.Context, token string) (string, error)
	Create(ctx context.Context, creds model.Credentials) error
	Update(ctx context.Context, creds model.Credentials) error
	Delete(ctx context.Context, pseudo string) error
}

// Handler defines the authentication HTTP handler.
type Handler struct {
	ctrl   controller
	logger *zap.Logger
}

// New creates a new authentication HTTP handler.
func New(ctrl controller, logger *zap.Logger) *Handler {
	return &Handler{ctrl: ctrl, logger: logger}
}

// Register mounts the authentication routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Route("/authentication", func(r chi.Router) {
		r.Post("/connect", h.connect)
		r.Post("/verify", h.verify)
		r.Post("/{pseudo}", h.createOne)
		r.Put("/{pseudo}", h.updateOne)
		r.Delete("/{pseudo}", h.deleteOne)
	})
}

func (h *Handler) connect(w http.ResponseWriter, r *http.Request) {
	var creds model.Credentials
	if err := httputil.DecodeJSON(r, &creds); err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	token, err := h.ctrl.Connect(r.Context(), creds)
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	httputil.WriteText(w, http.StatusOK, token)
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	token, err := httputil.ReadText(r)
	if err != nil {
		httputil.WriteError(w, h.logger, apperr.ErrUnauthorized)
		return
	}
	pseudo, err := h.ctrl.Verify(r.Context(), token)
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	httputil.WriteText(w, http.StatusOK, pseudo)
}

func (h *Handler) createOne(w http.ResponseWriter, r *http.Request) {
	creds, err := decodeFor(r)
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	if err := h.ctrl.Create(r.Context(), creds); err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) updateOne(w http.ResponseWriter, r *http.Request) {
	creds, err := decodeFor(r)
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	if err := h.ctrl.Update(r.Context(), creds); err != nil {
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

func decodeFor(r *http.Request) (model.Credentials, error) {
	var creds model.Credentials
	if err := httputil.DecodeJSON(r, &creds); err != nil {
		return creds, err
	}
	if pseudo := chi.URLParam(r, "pseudo"); creds.Pseudo != pseudo {
		return creds, fmt.Errorf("%w: pseudo %q does not match path %q", apperr.ErrInvalidInput, creds.Pseudo, pseudo)
	}
	return creds, nil
}
