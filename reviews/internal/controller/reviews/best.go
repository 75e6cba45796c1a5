package reviews

import (
	"context"
	"errors"
	"sort"

	"github.com/abhishek622/catflix/internal/apperr"
	"github.com/abhishek622/catflix/reviews/pkg/model"
	videomodel "github.com/abhishek622/catflix/videos/pkg/model"
	"go.uber.org/zap"
)

// DefaultBestLimit is the number of videos Best returns by default.
const DefaultBestLimit = 3

// score is the mean rating of one video.
type score struct {
	hash  string
	mean  float64
	count int
}

// rank groups reviews by video, computes each mean rating and returns the n
// best, highest mean first. Equal means are ordered by ascending hash.
func rank(reviews []model.Review, n int) []score {
	sums := map[string]*score{}
	for _, r := range reviews {
		s, ok := sums[r.Hash]
		if !ok {
			s = &score{hash: r.Hash}
			sums[r.Hash] = s
		}
		s.mean += float64(r.Rating)
		s.count++
	}
	scores := make([]score, 0, len(sums))
	for _, s := range sums {
		s.mean /= float64(s.count)
		scores = append(scores, *s)
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].mean != scores[j].mean {
			return scores[i].mean > scores[j].mean
		}
		return scores[i].hash < scores[j].hash
	})
	if len(scores) > n {
		scores = scores[:n]
	}
	return scores
}

// dropReason tells why a ranked video is left out of the result.
type dropReason int

const (
	// kept means the video was resolved.
	kept dropReason = iota
	// dropMissing means the videos service no longer knows the hash.
	dropMissing
	// dropFailure means the videos service failed to answer.
	dropFailure
)

func (d dropReason) String() string {
	switch d {
	case dropMissing:
		return "missing"
	case dropFailure:
		return "failure"
	default:
		return "kept"
	}
}

// resolution is the outcome of resolving one ranked hash: either a video or
// the reason it was dropped.
type resolution struct {
	score  score
	video  *videomodel.Video
	reason dropReason
	err    error
}

func (c *Controller) resolve(ctx context.Context, s score) resolution {
	v, err := c.videos.Get(ctx, s.hash)
	switch {
	case err == nil:
		return resolution{score: s, video: v}
	case errors.Is(err, apperr.ErrNotFound) && !errors.Is(err, apperr.ErrUpstreamUnavailable):
		return resolution{score: s, reason: dropMissing, err: err}
	default:
		return resolution{score: s, reason: dropFailure, err: err}
	}
}

// Best returns up to limit videos with the highest mean rating. A limit of 0
// uses the configured default. Ranked videos that cannot be resolved are
// dropped, so the result may hold fewer than limit videos.
func (c *Controller) Best(ctx context.Context, limit int) ([]videomodel.Video, error) {
	if limit <= 0 {
		limit = c.bestLimit
	}
	reviews, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	res := []videomodel.Video{}
	for _, s := range rank(reviews, limit) {
		r := c.resolve(ctx, s)
		switch r.reason {
		case kept:
			res = append(res, *r.video)
			continue
		case dropMissing:
			c.logger.Warn("Consistency error: ranked video does not exist",
				zap.String("hash", s.hash), zap.Float64("mean", s.mean), zap.Error(r.err))
		case dropFailure:
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.Error("Failed to resolve ranked video",
				zap.String("hash", s.hash), zap.Float64("mean", s.mean), zap.Error(r.err))
		}
		c.scope.Tagged(map[string]string{"reason": r.reason.String()}).Counter("best_dropped").Inc(1)
	}
	return res, nil
}
