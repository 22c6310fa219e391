package catalog

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/cache"
	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/domain"
)

type mockRepo struct {
	m     sync.Mutex
	items []domain.MenuItem
	calls int
	err   error
}

func (r *mockRepo) GetAllItems(context.Context) ([]domain.MenuItem, error) {
	r.m.Lock()
	defer r.m.Unlock()
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.items, nil
}

func (r *mockRepo) GetItem(_ context.Context, id string) (*domain.MenuItem, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, item := range r.items {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, ErrItemNotFound
}

func (r *mockRepo) GetByCategory(_ context.Context, category string) ([]domain.MenuItem, error) {
	var result []domain.MenuItem
	for _, item := range r.items {
		if item.Category == category {
			result = append(result, item)
		}
	}
	return result, nil
}

func (r *mockRepo) Categories(context.Context) ([]string, error) {
	return []string{"Beverages", "Bombay Special"}, r.err
}

func (r *mockRepo) Close() error               { return nil }
func (r *mockRepo) RunMigrations(string) error { return nil }

type mockCache struct {
	m     sync.Mutex
	items []domain.MenuItem
	err   error
}

func (c *mockCache) Get(context.Context) ([]domain.MenuItem, error) {
	c.m.Lock()
	defer c.m.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	if c.items == nil {
		return nil, cache.ErrCacheMiss
	}
	return c.items, nil
}

func (c *mockCache) Set(_ context.Context, items []domain.MenuItem) error {
	c.m.Lock()
	defer c.m.Unlock()
	c.items = items
	return nil
}

func (c *mockCache) Delete(context.Context) error {
	c.m.Lock()
	defer c.m.Unlock()
	c.items = nil
	return nil
}

func sampleMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: "1", Name: "Pav Bhaji", Description: "Mumbai special mashed vegetables", Price: decimal.RequireFromString("120.00"), Category: "Bombay Special"},
		{ID: "2", Name: "Vada Pav", Description: "Spicy potato fritter", Price: decimal.RequireFromString("40.00"), Category: "Bombay Special"},
		{ID: "11", Name: "Sweet Lassi", Description: "Thick churned yogurt drink", Price: decimal.RequireFromString("80.00"), Category: "Beverages"},
	}
}

func TestMenu_CacheMiss_FallsBackToRepo(t *testing.T) {
	repo := &mockRepo{items: sampleMenu()}
	svc := NewService(repo, &mockCache{})

	items, err := svc.Menu(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, 1, repo.calls)
}

func TestMenu_CacheHit_SkipsRepo(t *testing.T) {
	repo := &mockRepo{items: sampleMenu()}
	svc := NewService(repo, &mockCache{items: sampleMenu()})

	_, err := svc.Menu(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, 0, repo.calls)
}

func TestMenu_CategoryFilter(t *testing.T) {
	svc := NewService(&mockRepo{items: sampleMenu()}, &mockCache{})

	items, err := svc.Menu(context.Background(), "Beverages", "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Sweet Lassi", items[0].Name)
}

func TestMenu_SearchMatchesNameAndDescription(t *testing.T) {
	svc := NewService(&mockRepo{items: sampleMenu()}, &mockCache{})

	items, err := svc.Menu(context.Background(), "", "PAV")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = svc.Menu(context.Background(), "", "yogurt")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Sweet Lassi", items[0].Name)

	items, err = svc.Menu(context.Background(), "Bombay Special", "fritter")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Vada Pav", items[0].Name)
}

func TestItem_And_Related(t *testing.T) {
	svc := NewService(&mockRepo{items: sampleMenu()}, &mockCache{})

	item, err := svc.Item(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Pav Bhaji", item.Name)

	related, err := svc.Related(context.Background(), item, 4)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, "Vada Pav", related[0].Name)

	_, err = svc.Item(context.Background(), "999")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestMenu_ConcurrentMisses_SingleRepoQuery(t *testing.T) {
	repo := &mockRepo{items: sampleMenu()}
	svc := NewService(repo, &mockCache{})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Menu(context.Background(), "", "")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// singleflight coalesces the concurrent misses
	repo.m.Lock()
	defer repo.m.Unlock()
	assert.LessOrEqual(t, repo.calls, 2)
}
