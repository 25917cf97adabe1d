package hero

import (
	"context"

	"loomline-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Current(ctx context.Context) Content
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Current returns the newest hero content, falling back to the built-in
// default on any repository failure. Never fatal.
func (s *service) Current(ctx context.Context) Content {
	c, err := s.repo.GetLatest(ctx)
	if err != nil {
		logger.FromCtx(ctx).Warn("failed to fetch hero content, using default",
			zap.Error(err),
		)
		return Default()
	}
	if c == nil {
		return Default()
	}
	return *c
}
