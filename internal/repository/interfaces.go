package repository

import (
	"context"
	"errors"

	"github.com/RoGogDBD/menucat/internal/models"
)

// ErrNotFound сигнализирует, что позиция меню отсутствует
// (неизвестный id или пустой результат фильтра).
var ErrNotFound = errors.New("menu item not found")

// MenuStore описывает операции хранилища позиций меню.
type MenuStore interface {
	Insert(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error)
	GetByID(ctx context.Context, id int64) (*models.MenuItem, error)
	GetAll(ctx context.Context) ([]models.MenuItem, error)
	Update(ctx context.Context, id int64, upd *models.MenuItemUpdate) (*models.MenuItem, error)
	SetAvailability(ctx context.Context, id int64, available bool) (*models.MenuItem, error)
	FilterByCategory(ctx context.Context, category string) ([]models.MenuItem, error)
	Delete(ctx context.Context, id int64) error
}
