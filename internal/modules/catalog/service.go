// README: Catalog service lists and searches trains over the generic store.
package catalog

import (
	"context"
	"sort"
	"strings"

	"railway/internal/store"
	"railway/internal/types"
)

type Service struct {
	trains store.Repository[Train]
}

func NewService(trains store.Repository[Train]) *Service {
	return &Service{trains: trains}
}

// List returns every train sorted by departure time. Store iteration order
// shifts on updates, so display order is always re-sorted here.
func (s *Service) List(ctx context.Context) ([]Train, error) {
	all, err := s.trains.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].DepartureTime.Before(all[j].DepartureTime)
	})
	return all, nil
}

// Search filters by origin and destination, case-insensitively. Empty
// arguments match everything.
func (s *Service) Search(ctx context.Context, origin, destination string) ([]Train, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []Train
	for _, t := range all {
		if matches(t.Origin, origin) && matches(t.Destination, destination) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (Train, bool, error) {
	return s.trains.GetByID(ctx, id)
}

func matches(field, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(field), strings.ToLower(query))
}
