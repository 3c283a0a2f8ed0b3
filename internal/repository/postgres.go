package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/RoGogDBD/menucat/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var itemColumns = []string{"item_id", "name", "description", "price", "category", "cuisine", "rating", "is_available"}

// PostgresStorage реализует MenuStore поверх пула pgx.
// Каждая операция — одно обращение к пулу, соединение возвращается
// на любом пути выхода.
type PostgresStorage struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewPostgresStorage(pool *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *PostgresStorage) Insert(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	query, args, err := r.sb.
		Insert("menu_items").
		Columns("name", "description", "price", "category", "cuisine", "rating", "is_available").
		Values(item.Name, item.Description, item.Price, item.Category, item.Cuisine, item.Rating, item.IsAvailable).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	stored, err := r.scanRow(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("insert menu item: %w", err)
	}
	return stored, nil
}

func (r *PostgresStorage) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	query, args, err := r.sb.
		Select(itemColumns...).
		From("menu_items").
		Where(sq.Eq{"item_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	item, err := r.scanRow(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return item, nil
}

func (r *PostgresStorage) GetAll(ctx context.Context) ([]models.MenuItem, error) {
	query, args, err := r.sb.
		Select(itemColumns...).
		From("menu_items").
		OrderBy("item_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	items, err := r.queryItems(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("get all menu items: %w", err)
	}
	return items, nil
}

func (r *PostgresStorage) Update(ctx context.Context, id int64, upd *models.MenuItemUpdate) (*models.MenuItem, error) {
	if upd.Empty() {
		return r.GetByID(ctx, id)
	}

	builder := r.sb.Update("menu_items").Where(sq.Eq{"item_id": id})
	if upd.Name != nil {
		builder = builder.Set("name", *upd.Name)
	}
	if upd.Description != nil {
		builder = builder.Set("description", *upd.Description)
	}
	if upd.Price != nil {
		builder = builder.Set("price", *upd.Price)
	}
	if upd.Category != nil {
		builder = builder.Set("category", *upd.Category)
	}
	if upd.Cuisine != nil {
		builder = builder.Set("cuisine", *upd.Cuisine)
	}
	if upd.Rating != nil {
		builder = builder.Set("rating", *upd.Rating)
	}
	if upd.IsAvailable != nil {
		builder = builder.Set("is_available", *upd.IsAvailable)
	}

	query, args, err := builder.Suffix("RETURNING " + columnList()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	item, err := r.scanRow(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update menu item: %w", err)
	}
	return item, nil
}

func (r *PostgresStorage) SetAvailability(ctx context.Context, id int64, available bool) (*models.MenuItem, error) {
	query, args, err := r.sb.
		Update("menu_items").
		Set("is_available", available).
		Where(sq.Eq{"item_id": id}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	item, err := r.scanRow(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("set availability: %w", err)
	}
	return item, nil
}

func (r *PostgresStorage) FilterByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	// Регистронезависимое точное совпадение категории.
	query, args, err := r.sb.
		Select(itemColumns...).
		From("menu_items").
		Where(sq.Expr("LOWER(category) = LOWER(?)", category)).
		OrderBy("item_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	items, err := r.queryItems(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("filter by category: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return items, nil
}

func (r *PostgresStorage) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.
		Delete("menu_items").
		Where(sq.Eq{"item_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresStorage) queryItems(ctx context.Context, query string, args []interface{}) ([]models.MenuItem, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var it models.MenuItem
		if err := rows.Scan(&it.ItemID, &it.Name, &it.Description, &it.Price,
			&it.Category, &it.Cuisine, &it.Rating, &it.IsAvailable); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan rows: %w", err)
	}
	return items, nil
}

func (r *PostgresStorage) scanRow(row pgx.Row) (*models.MenuItem, error) {
	it := &models.MenuItem{}
	if err := row.Scan(&it.ItemID, &it.Name, &it.Description, &it.Price,
		&it.Category, &it.Cuisine, &it.Rating, &it.IsAvailable); err != nil {
		return nil, err
	}
	return it, nil
}

func columnList() string {
	return strings.Join(itemColumns, ", ")
}
