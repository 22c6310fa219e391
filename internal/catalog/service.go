package catalog

import (
	"context"
	"errors"
	"log"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/cache"
	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/domain"
)

// Service serves menu reads through the cache, falling back to the
// repository on a miss.
type Service struct {
	repo  RepoInterface
	cache cache.MenuCache
	sfg   singleflight.Group // Prevents cache stampede
}

func NewService(repo RepoInterface, cache cache.MenuCache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
	}
}

// items returns the full menu. Use singleflight so concurrent cache
// misses produce a single repository query.
func (s *Service) items(ctx context.Context) ([]domain.MenuItem, error) {
	v, err, _ := s.sfg.Do(menuFlightKey, func() (interface{}, error) {

		items, err := s.cache.Get(ctx)
		if err == nil {
			return items, nil // menu is in cache
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v \n", err) // log cache error but continue
		}

		items, errGet := s.repo.GetAllItems(ctx)
		if errGet != nil {
			return nil, errGet
		}

		// set cache
		go func() {
			errSet := s.cache.Set(context.Background(), items)
			if errSet != nil {
				log.Printf("cache set error: %v \n", errSet)
			}
		}()

		return items, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]domain.MenuItem), nil
}

const menuFlightKey = "menu"

// Menu lists menu items, optionally narrowed by category and a search
// query matched against name and description.
func (s *Service) Menu(ctx context.Context, category, query string) ([]domain.MenuItem, error) {
	items, err := s.items(ctx)
	if err != nil {
		return nil, err
	}

	if category == "" && query == "" {
		return items, nil
	}

	q := strings.ToLower(query)
	var result []domain.MenuItem
	for _, item := range items {
		if category != "" && item.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(item.Name), q) &&
			!strings.Contains(strings.ToLower(item.Description), q) {
			continue
		}
		result = append(result, item)
	}
	return result, nil
}

// Item looks up one menu item by id, straight from the repository.
func (s *Service) Item(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.repo.GetItem(ctx, id)
}

// Related returns other items sharing the given item's category.
func (s *Service) Related(ctx context.Context, item *domain.MenuItem, limit int) ([]domain.MenuItem, error) {
	items, err := s.items(ctx)
	if err != nil {
		return nil, err
	}

	var result []domain.MenuItem
	for _, other := range items {
		if other.Category == item.Category && other.ID != item.ID {
			result = append(result, other)
			if len(result) == limit {
				break
			}
		}
	}
	return result, nil
}

// Categories lists the category labels present in the menu.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}
