package forum

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Cache is the slice of the redis cache the services need. A failed Get is
// treated as a miss; a failed Set is logged and ignored, so the API always
// degrades to the database.
type Cache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

const boardsCacheKey = "mp:boards"

type BoardService struct {
	boards   BoardRepo
	cache    Cache
	cacheTTL time.Duration
	logger   *zap.SugaredLogger
}

func NewBoardService(boards BoardRepo, cache Cache, cacheTTL time.Duration, logger *zap.SugaredLogger) *BoardService {
	return &BoardService{boards: boards, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// List returns the visible boards with their visible topics. The listing is
// admin-curated and changes rarely, so it is served from cache when possible.
func (s *BoardService) List(ctx context.Context) ([]BoardWithTopics, error) {
	if s.cache != nil {
		var cached []BoardWithTopics
		if err := s.cache.Get(ctx, boardsCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	boards, err := s.boards.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, boardsCacheKey, boards, s.cacheTTL); err != nil {
			s.logger.Warnw("Board list cache set failed", "error", err)
		}
	}
	return boards, nil
}
