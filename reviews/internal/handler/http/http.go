package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/abhishek622/catflix/internal/apperr"
	"github.com/abhishek622/catflix/internal/httputil"
	"github.com/abhishek622/catflix/reviews/pkg/model"
	videomodel "github.com/abhishek622/catflix/videos/pkg/model"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type controller interface {
	Get(ctx context.Context, pseudo, hash string) (*model.Review, error)
	ListByPseudo(ctx context.Context, pseudo string) ([]model.Review, error)
	ListByHash(ctx context.Context, hash string) ([]model.Review, error)
	Best(ctx context.Context, limit int) ([]videomodel.Video, error)
	Create(ctx context.Context, r *model.Review) error
	Update(ctx context.Context, r *model.Review) error
	Delete(ctx context.Context, pseudo, hash string) error
	DeleteByPseudo(ctx context.Context, pseudo string) error
	DeleteByHash(ctx context.Context, hash string) error
}

// Handler defines the reviews HTTP handler.
type Handler struct {
	ctrl   controller
	logger *zap.Logger
}

// New creates a new reviews HTTP handler.
func New(ctrl controller, logger *zap.Logger) *Handler {
	return &Handler{ctrl: ctrl, logger: logger}
}

// Register mounts the reviews routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/reviews/best", h.readBest)
	r.Get("/reviews/users/{pseudo}", h.readFromUser)
	r.Delete("/reviews/users/{pseudo}", h.deleteFromUser)
	r.Get("/reviews/videos/{hash}", h.readFromVideo)
	r.Delete("/reviews/videos/{hash}", h.deleteFromVideo)
	r.Post("/reviews/users/{pseudo}/videos/{hash}", h.createOne)
	r.Get("/reviews/users/{pseudo}/videos/{hash}", h.readOne)
	r.Put("/reviews/users/{pseudo}/videos/{hash}", h.updateOne)
	r.Delete("/reviews/users/{pseudo}/videos/{hash}", h.deleteOne)
}

func (h *Handler) readBest(w http.ResponseWriter, r *http.Request) {
	limit, err := ParseLimit(r)
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	videos, err := h.ctrl.Best(r.Context(), limit)
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, videos)
}

// ParseLimit reads the optional positive limit query parameter. It returns 0
// when the parameter is absent.
func ParseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: limit must be a positive integer", apperr.ErrInvalidInput)
	}
	return n, nil
}

func (h *Handler) readFromUser(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.ctrl.ListByPseudo(r.Context(), chi.URLParam(r, "pseudo"))
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, reviews)
}

func (h *Handler) deleteFromUser(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.DeleteByPseudo(r.Context(), chi.URLParam(r, "pseudo")); err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) readFromVideo(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.ctrl.ListByHash(r.Context(), chi.URLParam(r, "hash"))
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, reviews)
}

func (h *Handler) deleteFromVideo(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.DeleteByHash(r.Context(), chi.URLParam(r, "hash")); err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) createOne(w http.ResponseWriter, r *http.Request) {
	rev, err := decodeFor(r)
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	if err := h.ctrl.Create(r.Context(), rev); err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) readOne(w http.ResponseWriter, r *http.Request) {
	rev, err := h.ctrl.Get(r.Context(), chi.URLParam(r, "pseudo"), chi.URLParam(r, "hash"))
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, rev)
}

func (h *Handler) updateOne(w http.ResponseWriter, r *http.Request) {
	rev, err := decodeFor(r)
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	if err := h.ctrl.Update(r.Context(), rev); err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteOne(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.Delete(r.Context(), chi.URLParam(r, "pseudo"), chi.URLParam(r, "hash")); err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func decodeFor(r *http.Request) (*model.Review, error) {
	var rev model.Review
	if err := httputil.DecodeJSON(r, &rev); err != nil {
		return nil, err
	}
	pseudo, hash := chi.URLParam(r, "pseudo"), chi.URLParam(r, "hash")
	if rev.Pseudo != pseudo || rev.Hash != hash {
		return nil, fmt.Errorf("%w: review of %q by %q does not match path", apperr.ErrInvalidInput, rev.Hash, rev.Pseudo)
	}
	return &rev, nil
}
