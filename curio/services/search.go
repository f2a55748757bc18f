package services

import (
	"context"
	"strings"

	"github.com/curiodex/curio/curio/database/models"
	"github.com/sahilm/fuzzy"
)

// GameLister is the slice of persistence the search service needs.
type GameLister interface {
	GetAll(ctx context.Context) ([]*models.Game, error)
}

// GameSearchService runs fuzzy title search over the locally cached catalog.
// It is what backs the library search endpoint; storefront id resolution uses
// its own matcher against live search results instead.
type GameSearchService struct {
	games GameLister
}

func NewGameSearchService(games GameLister) *GameSearchService {
	return &GameSearchService{games: games}
}

// gameSource adapts a game slice to fuzzy.Source.
type gameSource []*models.Game

func (s gameSource) String(i int) string { return strings.ToLower(s[i].Title) }
func (s gameSource) Len() int            { return len(s) }

// Search returns games ranked by match quality, best first. An empty query
// returns the whole catalog in stored order.
func (s *GameSearchService) Search(ctx context.Context, query string, limit int) ([]*models.Game, error) {
	games, err := s.games.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		if limit > 0 && len(games) > limit {
			games = games[:limit]
		}
		return games, nil
	}

	source := gameSource(games)
	matches := fuzzy.FindFrom(query, source)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	results := make([]*models.Game, len(matches))
	for i, match := range matches {
		results[i] = games[match.Index]
	}
	return results, nil
}

// BestMatch returns the single closest title, or nil when nothing matches.
func (s *GameSearchService) BestMatch(ctx context.Context, query string) (*models.Game, error) {
	results, err := s.Search(ctx, query, 1)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}
