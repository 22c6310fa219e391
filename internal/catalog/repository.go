package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/domain"
)

var ErrItemNotFound = errors.New("menu item not found")

type Repository struct {
	db *sql.DB
}

// RepoInterface is the read-only catalog contract. The menu is reference
// data: nothing in the application writes to it.
type RepoInterface interface {
	GetAllItems(ctx context.Context) ([]domain.MenuItem, error)
	GetItem(ctx context.Context, id string) (*domain.MenuItem, error)
	GetByCategory(ctx context.Context, category string) ([]domain.MenuItem, error)
	Categories(ctx context.Context) ([]string, error)
	Close() error
	RunMigrations(string) error
}

func NewRepository(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) RunMigrations(migrationsPath string) error {
	driver, err := sqlite.WithInstance(r.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"sqlite",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func (r *Repository) GetAllItems(ctx context.Context) ([]domain.MenuItem, error) {
	query := `
		SELECT id, name, description, price, image_url, category, rating
		FROM menu_items
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *Repository) GetItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	query := `
		SELECT id, name, description, price, image_url, category, rating
		FROM menu_items
		WHERE id = ?
	`

	row := r.db.QueryRowContext(ctx, query, id)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query menu item: %w", err)
	}
	return item, nil
}

func (r *Repository) GetByCategory(ctx context.Context, category string) ([]domain.MenuItem, error) {
	query := `
		SELECT id, name, description, price, image_url, category, rating
		FROM menu_items
		WHERE category = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items by category: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *Repository) Categories(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT category FROM menu_items ORDER BY category`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return categories, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

// Prices are stored as TEXT so decimal values survive the round trip
// without float conversion.
func scanInto(s rowScanner) (*domain.MenuItem, error) {
	item := &domain.MenuItem{}
	var price string
	if err := s.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&price,
		&item.ImageURL,
		&item.Category,
		&item.Rating,
	); err != nil {
		return nil, err
	}

	p, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q for item %s: %w", price, item.ID, err)
	}
	item.Price = p
	return item, nil
}

func scanItem(row *sql.Row) (*domain.MenuItem, error) {
	return scanInto(row)
}

func scanItems(rows *sql.Rows) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	for rows.Next() {
		item, err := scanInto(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return items, nil
}
