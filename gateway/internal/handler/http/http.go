package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	authmodel "github.com/abhishek622/catflix/authentication/pkg/model"
	"github.com/abhishek622/catflix/internal/apperr"
	"github.com/abhishek622/catflix/internal/httputil"
	reviewmodel "github.com/abhishek622/catflix/reviews/pkg/model"
	usermodel "github.com/abhishek622/catflix/users/pkg/model"
	videomodel "github.com/abhishek622/catflix/videos/pkg/model"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type controller interface {
	Connect(ctx context.Context, creds authmodel.Credentials) (string, error)

	CreateUser(ctx context.Context, u usermodel.UserWithCredentials) error
	GetUser(ctx context.Context, pseudo string) (*usermodel.User, error)
	UpdateUser(ctx context.Context, token string, u usermodel.UserWithCredentials) error
	DeleteUser(ctx context.Context, token, pseudo string) error

	ListVideos(ctx context.Context) ([]videomodel.Video, error)
	ListVideosByAuthor(ctx context.Context, author string) ([]videomodel.Video, error)
	BestVideos(ctx context.Context, limit int) ([]videomodel.Video, error)
	GetVideo(ctx context.Context, hash string) (*videomodel.Video, error)
	CreateVideo(ctx context.Context, token string, v *videomodel.Video) error
	UpdateVideo(ctx context.Context, token string, v *videomodel.Video) error
	DeleteVideo(ctx context.Context, token, hash string) error

	GetReview(ctx context.Context, pseudo, hash string) (*reviewmodel.Review, error)
	ListReviewsByPseudo(ctx context.Context, pseudo string) ([]reviewmodel.Review, error)
	ListReviewsByHash(ctx context.Context, hash string) ([]reviewmodel.Review, error)
	CreateReview(ctx context.Context, token string, r *reviewmodel.Review) error
	UpdateReview(ctx context.Context, token string, r *reviewmodel.Review) error
	DeleteReview(ctx context.Context, token, pseudo, hash string) error
}

// Handler defines the public catflix HTTP API.
type Handler struct {
	ctrl   controller
	logger *zap.Logger
}

// New creates a new gateway HTTP handler.
func New(ctrl controller, logger *zap.Logger) *Handler {
	return &Handler{ctrl: ctrl, logger: logger}
}

// Register mounts the public routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Post("/auth", h.connect)

	r.Post("/users/{pseudo}", h.createUser)
	r.Get("/users/{pseudo}", h.readUser)
	r.Put("/users/{pseudo}", h.updateUser)
	r.Delete("/users/{pseudo}", h.deleteUser)
	r.Get("/users/{pseudo}/videos", h.readUserVideos)
	r.Get("/users/{pseudo}/reviews", h.readUserReviews)

	r.Get("/videos", h.readVideos)
	r.Get("/videos/best", h.readBestVideos)
	r.Post("/videos/{hash}", h.createVideo)
	r.Get("/videos/{hash}", h.readVideo)
	r.Put("/videos/{hash}", h.updateVideo)
	r.Delete("/videos/{hash}", h.deleteVideo)
	r.Get("/videos/{hash}/reviews", h.readVideoReviews)

	r.Post("/reviews/users/{pseudo}/videos/{hash}", h.createReview)
	r.Get("/reviews/users/{pseudo}/videos/{hash}", h.readReview)
	r.Put("/reviews/users/{pseudo}/videos/{hash}", h.updateReview)
	r.Delete("/reviews/users/{pseudo}/videos/{hash}", h.deleteReview)
}

func (h *Handler) connect(w http.ResponseWriter, r *http.Request) {
	var creds authmodel.Credentials
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

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	u, err := decodeUser(r)
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	h.respond(w, http.StatusCreated, h.ctrl.CreateUser(r.Context(), u))
}

func (h *Handler) readUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.ctrl.GetUser(r.Context(), chi.URLParam(r, "pseudo"))
	h.respondJSON(w, u, err)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	u, err := decodeUser(r)
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	h.respond(w, http.StatusOK, h.ctrl.UpdateUser(r.Context(), Token(r), u))
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, h.ctrl.DeleteUser(r.Context(), Token(r), chi.URLParam(r, "pseudo")))
}

func (h *Handler) readUserVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.ctrl.ListVideosByAuthor(r.Context(), chi.URLParam(r, "pseudo"))
	h.respondJSON(w, videos, err)
}

func (h *Handler) readUserReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.ctrl.ListReviewsByPseudo(r.Context(), chi.URLParam(r, "pseudo"))
	h.respondJSON(w, reviews, err)
}

func (h *Handler) readVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.ctrl.ListVideos(r.Context())
	h.respondJSON(w, videos, err)
}

func (h *Handler) readBestVideos(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	videos, err := h.ctrl.BestVideos(r.Context(), limit)
	h.respondJSON(w, videos, err)
}

func (h *Handler) createVideo(w http.ResponseWriter, r *http.Request) {
	v, err := decodeVideo(r)
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	h.respond(w, http.StatusCreated, h.ctrl.CreateVideo(r.Context(), Token(r), v))
}

func (h *Handler) readVideo(w http.ResponseWriter, r *http.Request) {
	v, err := h.ctrl.GetVideo(r.Context(), chi.URLParam(r, "hash"))
	h.respondJSON(w, v, err)
}

func (h *Handler) updateVideo(w http.ResponseWriter, r *http.Request) {
	v, err := decodeVideo(r)
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	h.respond(w, http.StatusOK, h.ctrl.UpdateVideo(r.Context(), Token(r), v))
}

func (h *Handler) deleteVideo(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, h.ctrl.DeleteVideo(r.Context(), Token(r), chi.URLParam(r, "hash")))
}

func (h *Handler) readVideoReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.ctrl.ListReviewsByHash(r.Context(), chi.URLParam(r, "hash"))
	h.respondJSON(w, reviews, err)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	rev, err := decodeReview(r)
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	h.respond(w, http.StatusCreated, h.ctrl.CreateReview(r.Context(), Token(r), rev))
}

func (h *Handler) readReview(w http.ResponseWriter, r *http.Request) {
	rev, err := h.ctrl.GetReview(r.Context(), chi.URLParam(r, "pseudo"), chi.URLParam(r, "hash"))
	h.respondJSON(w, rev, err)
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	rev, err := decodeReview(r)
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	h.respond(w, http.StatusOK, h.ctrl.UpdateReview(r.Context(), Token(r), rev))
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, h.ctrl.DeleteReview(r.Context(), Token(r), chi.URLParam(r, "pseudo"), chi.URLParam(r, "hash")))
}

func (h *Handler) respond(w http.ResponseWriter, status int, err error) {
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	w.WriteHeader(status)
}

func (h *Handler) respondJSON(w http.ResponseWriter, v any, err error) {
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, v)
}

// Token returns the credential token of r, with an optional Bearer scheme
// removed.
func Token(r *http.Request) string {
	token := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(token) > len("Bearer ") && strings.EqualFold(token[:len("Bearer ")], "Bearer ") {
		token = strings.TrimSpace(token[len("Bearer "):])
	}
	return token
}

func parseLimit(r *http.Request) (int, error) {
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

func decodeUser(r *http.Request) (usermodel.UserWithCredentials, error) {
	var u usermodel.UserWithCredentials
	if err := httputil.DecodeJSON(r, &u); err != nil {
		return u, err
	}
	if pseudo := chi.URLParam(r, "pseudo"); u.Pseudo != pseudo {
		return u, fmt.Errorf("%w: pseudo %q does not match path %q", apperr.ErrInvalidInput, u.Pseudo, pseudo)
	}
	return u, nil
}

func decodeVideo(r *http.Request) (*videomodel.Video, error) {
	var v videomodel.Video
	if err := httputil.DecodeJSON(r, &v); err != nil {
		return nil, err
	}
	if hash := chi.URLParam(r, "hash"); v.Hash != hash {
		return nil, fmt.Errorf("%w: hash %q does not match path %q", apperr.ErrInvalidInput, v.Hash, hash)
	}
	return &v, nil
}

func decodeReview(r *http.Request) (*reviewmodel.Review, error) {
	var rev reviewmodel.Review
	if err := httputil.DecodeJSON(r, &rev); err != nil {
		return nil, err
	}
	pseudo, hash := chi.URLParam(r, "pseudo"), chi.URLParam(r, "hash")
	if rev.Pseudo != pseudo || rev.Hash != hash {
		return nil, fmt.Errorf("%w: review of %q by %q does not match path", apperr.ErrInvalidInput, rev.Hash, rev.Pseudo)
	}
	return &rev, nil
}
