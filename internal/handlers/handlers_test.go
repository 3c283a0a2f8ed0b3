package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RoGogDBD/menucat/internal/models"
	"github.com/RoGogDBD/menucat/internal/repository"
	"github.com/RoGogDBD/menucat/internal/repository/mocks"
	"github.com/go-chi/chi/v5"
)

func newTestRouter(store repository.MenuStore) *chi.Mux {
	r := chi.NewRouter()
	h := NewHandler(store)
	h.RegisterRoutes(r)
	return r
}

func seedItem(t *testing.T, store repository.MenuStore, item models.MenuItem) *models.MenuItem {
	t.Helper()
	stored, err := store.Insert(context.Background(), &item)
	if err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return stored
}

func testItem() models.MenuItem {
	return models.MenuItem{
		Name:        "Margherita",
		Description: "Tomato, mozzarella, basil",
		Price:       8.5,
		Category:    "main",
		Cuisine:     "italian",
		IsAvailable: true,
	}
}

func TestCreateMenuItem(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid item",
			body:       `{"name":"Margherita","price":8.5,"category":"main"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "zero price accepted",
			body:       `{"name":"Water","price":0,"category":"drink"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "negative price rejected",
			body:       `{"name":"Margherita","price":-1,"category":"main"}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "missing name rejected",
			body:       `{"price":5,"category":"main"}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "missing price rejected",
			body:       `{"name":"Bruschetta","category":"starter"}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "blank category rejected",
			body:       `{"name":"Margherita","price":5,"category":"   "}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "rating above range rejected",
			body:       `{"name":"Margherita","price":5,"category":"main","rating":5.1}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "rating at upper bound accepted",
			body:       `{"name":"Margherita","price":5,"category":"main","rating":5.0}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "rating at lower bound accepted",
			body:       `{"name":"Margherita","price":5,"category":"main","rating":0.0}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed body",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(repository.NewMemStorage())

			req := httptest.NewRequest(http.MethodPost, "/menu/", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("unexpected status: %d, body: %s", rr.Code, rr.Body.String())
			}

			if tt.wantStatus == http.StatusOK {
				var got models.MenuItem
				if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if got.ItemID == 0 {
					t.Fatalf("expected assigned item_id in response")
				}
				if !got.IsAvailable {
					t.Fatalf("expected default is_available = true")
				}
			}
			if tt.wantStatus == http.StatusUnprocessableEntity {
				var resp ValidationErrorResponse
				if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
					t.Fatalf("decode validation response: %v", err)
				}
				if len(resp.Detail) == 0 {
					t.Fatalf("expected field-level detail in 422 body")
				}
			}
		})
	}
}

func TestCreateMenuItemExplicitUnavailable(t *testing.T) {
	r := newTestRouter(repository.NewMemStorage())

	body := `{"name":"Seasonal soup","price":6,"category":"starter","is_available":false}`
	req := httptest.NewRequest(http.MethodPost, "/menu/", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
	var got models.MenuItem
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.IsAvailable {
		t.Fatalf("expected is_available = false to be respected")
	}
}

func TestGetMenuItem(t *testing.T) {
	store := repository.NewMemStorage()
	stored := seedItem(t, store, testItem())
	r := newTestRouter(store)

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "existing id", path: "/menu/1", wantStatus: http.StatusOK},
		{name: "unknown id", path: "/menu/999", wantStatus: http.StatusNotFound},
		{name: "non-numeric id", path: "/menu/abc", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("unexpected status: %d", rr.Code)
			}
			if tt.wantStatus == http.StatusOK {
				var got models.MenuItem
				if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if got.ItemID != stored.ItemID || got.Name != stored.Name {
					t.Fatalf("unexpected item in response: %+v", got)
				}
			}
		})
	}
}

func TestListMenuItems(t *testing.T) {
	store := repository.NewMemStorage()
	r := newTestRouter(store)

	// Пустой каталог отдает 200 и пустой массив
	req := httptest.NewRequest(http.MethodGet, "/menu/", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
	var items []models.MenuItem
	if err := json.NewDecoder(rr.Body).Decode(&items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty array, got %v", items)
	}

	seedItem(t, store, testItem())
	second := testItem()
	second.Name = "Tiramisu"
	second.Category = "dessert"
	seedItem(t, store, second)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/menu/", nil))
	if err := json.NewDecoder(rr.Body).Decode(&items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
}

func TestUpdateMenuItem(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		check      func(t *testing.T, got models.MenuItem)
	}{
		{
			name:       "partial update keeps other fields",
			path:       "/menu/1",
			body:       `{"price":9.5}`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, got models.MenuItem) {
				if got.Price != 9.5 {
					t.Fatalf("expected updated price, got %v", got.Price)
				}
				if got.Name != "Margherita" || got.Category != "main" {
					t.Fatalf("expected untouched fields, got %+v", got)
				}
			},
		},
		{
			name:       "empty body is a no-op",
			path:       "/menu/1",
			body:       `{}`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, got models.MenuItem) {
				if got.Price != 8.5 || got.Name != "Margherita" {
					t.Fatalf("expected unchanged item, got %+v", got)
				}
			},
		},
		{
			name:       "unknown id",
			path:       "/menu/999",
			body:       `{"price":9.5}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "negative price rejected",
			path:       "/menu/1",
			body:       `{"price":-2}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "out of range rating rejected",
			path:       "/menu/1",
			body:       `{"rating":6}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := repository.NewMemStorage()
			seedItem(t, store, testItem())
			r := newTestRouter(store)

			req := httptest.NewRequest(http.MethodPut, tt.path, bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("unexpected status: %d, body: %s", rr.Code, rr.Body.String())
			}
			if tt.check != nil {
				var got models.MenuItem
				if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				tt.check(t, got)
			}
		})
	}
}

func TestUpdateAvailability(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantFlag   bool
	}{
		{
			name:       "body flag",
			path:       "/menu/1/availability",
			body:       `{"is_available":false}`,
			wantStatus: http.StatusOK,
			wantFlag:   false,
		},
		{
			name:       "query flag",
			path:       "/menu/1/availability?is_available=true",
			wantStatus: http.StatusOK,
			wantFlag:   true,
		},
		{
			name:       "missing flag",
			path:       "/menu/1/availability",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown id",
			path:       "/menu/999/availability",
			body:       `{"is_available":false}`,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := repository.NewMemStorage()
			seedItem(t, store, testItem())
			r := newTestRouter(store)

			var body *bytes.Buffer
			if tt.body != "" {
				body = bytes.NewBufferString(tt.body)
			} else {
				body = bytes.NewBuffer(nil)
			}
			req := httptest.NewRequest(http.MethodPatch, tt.path, body)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("unexpected status: %d, body: %s", rr.Code, rr.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var got models.MenuItem
			if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if got.IsAvailable != tt.wantFlag {
				t.Fatalf("expected is_available = %v, got %v", tt.wantFlag, got.IsAvailable)
			}
			// Остальные поля не тронуты
			if got.Name != "Margherita" || got.Price != 8.5 {
				t.Fatalf("expected untouched fields, got %+v", got)
			}
		})
	}
}

func TestFilterByCategory(t *testing.T) {
	store := repository.NewMemStorage()
	starter := testItem()
	starter.Name = "Bruschetta"
	starter.Category = "starter"
	seedItem(t, store, starter)
	seedItem(t, store, testItem())
	r := newTestRouter(store)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantCount  int
	}{
		{name: "matching category", path: "/menu/category/?category=starter", wantStatus: http.StatusOK, wantCount: 1},
		{name: "case-insensitive match", path: "/menu/category/?category=STARTER", wantStatus: http.StatusOK, wantCount: 1},
		{name: "no matches", path: "/menu/category/?category=dessert", wantStatus: http.StatusNotFound},
		{name: "missing parameter", path: "/menu/category/", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("unexpected status: %d", rr.Code)
			}
			if tt.wantStatus == http.StatusOK {
				var items []models.MenuItem
				if err := json.NewDecoder(rr.Body).Decode(&items); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if len(items) != tt.wantCount {
					t.Fatalf("expected %d items, got %d", tt.wantCount, len(items))
				}
			}
		})
	}
}

func TestDeleteMenuItem(t *testing.T) {
	store := repository.NewMemStorage()
	seedItem(t, store, testItem())
	r := newTestRouter(store)

	req := httptest.NewRequest(http.MethodDelete, "/menu/1", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
	var msg MessageResponse
	if err := json.NewDecoder(rr.Body).Decode(&msg); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if msg.Message == "" {
		t.Fatalf("expected confirmation message")
	}

	// Повторное удаление и чтение — 404
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/menu/1", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rr.Code)
	}
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/menu/1", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on get after delete, got %d", rr.Code)
	}
}

func TestStoreErrorPropagates(t *testing.T) {
	store := &mocks.MenuStoreMock{
		GetAllFunc: func(ctx context.Context) ([]models.MenuItem, error) {
			return nil, errors.New("connection refused")
		},
	}
	r := newTestRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/menu/", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
	if store.GetAllCalls != 1 {
		t.Fatalf("expected 1 GetAll call, got %d", store.GetAllCalls)
	}
	var resp ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error == "" {
		t.Fatalf("expected error text in response")
	}
}
