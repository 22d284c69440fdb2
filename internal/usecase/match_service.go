package usecase

import (
	"context"
	"fmt"

	"github.com/galo-project/clube-api/internal/domain/match"
)

// MatchService exposes the scraped next-match fact table.
type MatchService struct {
	provider NextMatchProvider
}

func NewMatchService(provider NextMatchProvider) *MatchService {
	return &MatchService{provider: provider}
}

func (s *MatchService) NextMatch(ctx context.Context) (match.NextMatch, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.NextMatch")
	defer span.End()

	next, err := s.provider.FetchNextMatch(ctx)
	if err != nil {
		return match.NextMatch{}, fmt.Errorf("fetch next match: %w", err)
	}

	return next, nil
}
