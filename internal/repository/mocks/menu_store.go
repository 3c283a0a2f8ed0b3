package mocks

import (
	"context"
	"errors"

	"github.com/RoGogDBD/menucat/internal/models"
)

type MenuStoreMock struct {
	InsertFunc           func(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error)
	GetByIDFunc          func(ctx context.Context, id int64) (*models.MenuItem, error)
	GetAllFunc           func(ctx context.Context) ([]models.MenuItem, error)
	UpdateFunc           func(ctx context.Context, id int64, upd *models.MenuItemUpdate) (*models.MenuItem, error)
	SetAvailabilityFunc  func(ctx context.Context, id int64, available bool) (*models.MenuItem, error)
	FilterByCategoryFunc func(ctx context.Context, category string) ([]models.MenuItem, error)
	DeleteFunc           func(ctx context.Context, id int64) error

	InsertCalls           int
	GetByIDCalls          int
	GetAllCalls           int
	UpdateCalls           int
	SetAvailabilityCalls  int
	FilterByCategoryCalls int
	DeleteCalls           int
}

func (m *MenuStoreMock) Insert(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	m.InsertCalls++
	if m.InsertFunc == nil {
		return nil, errors.New("InsertFunc not set")
	}
	return m.InsertFunc(ctx, item)
}

func (m *MenuStoreMock) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	m.GetByIDCalls++
	if m.GetByIDFunc == nil {
		return nil, errors.New("GetByIDFunc not set")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *MenuStoreMock) GetAll(ctx context.Context) ([]models.MenuItem, error) {
	m.GetAllCalls++
	if m.GetAllFunc == nil {
		return nil, errors.New("GetAllFunc not set")
	}
	return m.GetAllFunc(ctx)
}

func (m *MenuStoreMock) Update(ctx context.Context, id int64, upd *models.MenuItemUpdate) (*models.MenuItem, error) {
	m.UpdateCalls++
	if m.UpdateFunc == nil {
		return nil, errors.New("UpdateFunc not set")
	}
	return m.UpdateFunc(ctx, id, upd)
}

func (m *MenuStoreMock) SetAvailability(ctx context.Context, id int64, available bool) (*models.MenuItem, error) {
	m.SetAvailabilityCalls++
	if m.SetAvailabilityFunc == nil {
		return nil, errors.New("SetAvailabilityFunc not set")
	}
	return m.SetAvailabilityFunc(ctx, id, available)
}

func (m *MenuStoreMock) FilterByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	m.FilterByCategoryCalls++
	if m.FilterByCategoryFunc == nil {
		return nil, errors.New("FilterByCategoryFunc not set")
	}
	return m.FilterByCategoryFunc(ctx, category)
}

func (m *MenuStoreMock) Delete(ctx context.Context, id int64) error {
	m.DeleteCalls++
	if m.DeleteFunc == nil {
		return errors.New("DeleteFunc not set")
	}
	return m.DeleteFunc(ctx, id)
}
