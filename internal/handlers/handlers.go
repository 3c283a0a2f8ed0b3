// Package handlers содержит HTTP-обработчики каталога меню.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/RoGogDBD/menucat/internal/models"
	"github.com/RoGogDBD/menucat/internal/repository"
	"github.com/RoGogDBD/menucat/internal/validation"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	store    repository.MenuStore
	validate *validator.Validate
}

func NewHandler(store repository.MenuStore) *Handler {
	return &Handler{store: store, validate: validation.New()}
}

// RegisterRoutes монтирует маршруты каталога меню.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/menu", func(r chi.Router) {
		r.Post("/", h.CreateMenuItem)
		r.Get("/", h.ListMenuItems)
		r.Get("/category/", h.FilterByCategory)
		r.Get("/{item_id}", h.GetMenuItem)
		r.Put("/{item_id}", h.UpdateMenuItem)
		r.Patch("/{item_id}/availability", h.UpdateAvailability)
		r.Delete("/{item_id}", h.DeleteMenuItem)
	})
}

// HealthHandler возвращает статус 200 OK и тело "OK" для проверки состояния сервера.
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// CreateMenuItem создает позицию меню.
//
//	@Summary	Создать позицию меню
//	@Accept		json
//	@Produce	json
//	@Param		item	body		models.MenuItemCreate	true	"Поля позиции"
//	@Success	200		{object}	models.MenuItem
//	@Failure	422		{object}	handlers.ValidationErrorResponse
//	@Router		/menu/ [post]
func (h *Handler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req models.MenuItemCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		writeValidationError(w, err)
		return
	}
	if req.Price == nil {
		writeJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
			Detail: []FieldError{{Field: "Price", Rule: "required"}},
		})
		return
	}

	item := req.Item()
	stored, err := h.store.Insert(r.Context(), &item)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, stored)
}

// ListMenuItems возвращает все позиции меню.
//
//	@Summary	Список позиций меню
//	@Produce	json
//	@Success	200	{array}	models.MenuItem
//	@Router		/menu/ [get]
func (h *Handler) ListMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// GetMenuItem возвращает позицию меню по id.
//
//	@Summary	Позиция меню по id
//	@Produce	json
//	@Param		item_id	path		int	true	"ID позиции"
//	@Success	200		{object}	models.MenuItem
//	@Failure	404		{object}	handlers.ErrorResponse
//	@Router		/menu/{item_id} [get]
func (h *Handler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	item, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// UpdateMenuItem частично обновляет позицию меню: применяются только
// явно присланные поля.
//
//	@Summary	Обновить позицию меню
//	@Accept		json
//	@Produce	json
//	@Param		item_id	path		int						true	"ID позиции"
//	@Param		item	body		models.MenuItemUpdate	true	"Изменяемые поля"
//	@Success	200		{object}	models.MenuItem
//	@Failure	404		{object}	handlers.ErrorResponse
//	@Failure	422		{object}	handlers.ValidationErrorResponse
//	@Router		/menu/{item_id} [put]
func (h *Handler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	var upd models.MenuItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.validate.Struct(&upd); err != nil {
		writeValidationError(w, err)
		return
	}

	item, err := h.store.Update(r.Context(), id, &upd)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// UpdateAvailability меняет только флаг доступности позиции.
// Значение берется из query-параметра is_available или из тела запроса.
//
//	@Summary	Сменить доступность позиции
//	@Accept		json
//	@Produce	json
//	@Param		item_id			path		int		true	"ID позиции"
//	@Param		is_available	query		bool	false	"Новое значение"
//	@Success	200				{object}	models.MenuItem
//	@Failure	404				{object}	handlers.ErrorResponse
//	@Router		/menu/{item_id}/availability [patch]
func (h *Handler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	var available bool
	if q := r.URL.Query().Get("is_available"); q != "" {
		parsed, err := strconv.ParseBool(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid is_available parameter")
			return
		}
		available = parsed
	} else {
		var req models.AvailabilityUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
		if req.IsAvailable == nil {
			writeError(w, http.StatusBadRequest, "is_available is required")
			return
		}
		available = *req.IsAvailable
	}

	item, err := h.store.SetAvailability(r.Context(), id, available)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// FilterByCategory возвращает позиции заданной категории.
// Пустой результат считается отсутствием записей и отдает 404,
// так ведет себя существующая поверхность API.
//
//	@Summary	Позиции меню по категории
//	@Produce	json
//	@Param		category	query	string	true	"Категория"
//	@Success	200			{array}	models.MenuItem
//	@Failure	404			{object}	handlers.ErrorResponse
//	@Router		/menu/category/ [get]
func (h *Handler) FilterByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		writeError(w, http.StatusBadRequest, "missing category parameter")
		return
	}

	items, err := h.store.FilterByCategory(r.Context(), category)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "no menu items found in category "+strconv.Quote(category))
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// DeleteMenuItem удаляет позицию меню.
//
//	@Summary	Удалить позицию меню
//	@Produce	json
//	@Param		item_id	path		int	true	"ID позиции"
//	@Success	200		{object}	handlers.MessageResponse
//	@Failure	404		{object}	handlers.ErrorResponse
//	@Router		/menu/{item_id} [delete]
func (h *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "menu item " + strconv.FormatInt(id, 10) + " deleted"})
}

// itemID извлекает числовой id из пути; при ошибке пишет 400 и возвращает false.
func itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "item_id")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "missing item_id parameter")
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item_id parameter")
		return 0, false
	}
	return id, true
}
