package models

// MenuItemCreate описывает тело запроса на создание позиции меню.
// IsAvailable опционален: при отсутствии поле считается true.
// Price — указатель, чтобы отличать отсутствующую цену от нулевой;
// обязательность проверяется в обработчике, тег required у указателя
// на число ложно срабатывает на легитимном нуле.
type MenuItemCreate struct {
	Name        string   `json:"name" validate:"required,notblank"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Category    string   `json:"category" validate:"required,notblank"`
	Cuisine     string   `json:"cuisine"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	IsAvailable *bool    `json:"is_available"`
}

// Item преобразует запрос в MenuItem с дефолтной доступностью.
// Вызывается после проверки обязательности цены.
func (c *MenuItemCreate) Item() MenuItem {
	available := true
	if c.IsAvailable != nil {
		available = *c.IsAvailable
	}
	var price float64
	if c.Price != nil {
		price = *c.Price
	}
	return MenuItem{
		Name:        c.Name,
		Description: c.Description,
		Price:       price,
		Category:    c.Category,
		Cuisine:     c.Cuisine,
		Rating:      c.Rating,
		IsAvailable: available,
	}
}

// MenuItemUpdate описывает частичное обновление: применяются только
// явно присланные поля (nil означает "не трогать").
type MenuItemUpdate struct {
	Name        *string  `json:"name" validate:"omitempty,notblank"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Category    *string  `json:"category" validate:"omitempty,notblank"`
	Cuisine     *string  `json:"cuisine"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	IsAvailable *bool    `json:"is_available"`
}

// Empty сообщает, что ни одно поле не было прислано.
func (u *MenuItemUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil &&
		u.Category == nil && u.Cuisine == nil && u.Rating == nil &&
		u.IsAvailable == nil
}

// Apply накладывает присланные поля на существующую запись.
func (u *MenuItemUpdate) Apply(item *MenuItem) {
	if u.Name != nil {
		item.Name = *u.Name
	}
	if u.Description != nil {
		item.Description = *u.Description
	}
	if u.Price != nil {
		item.Price = *u.Price
	}
	if u.Category != nil {
		item.Category = *u.Category
	}
	if u.Cuisine != nil {
		item.Cuisine = *u.Cuisine
	}
	if u.Rating != nil {
		item.Rating = u.Rating
	}
	if u.IsAvailable != nil {
		item.IsAvailable = *u.IsAvailable
	}
}

// AvailabilityUpdate описывает тело запроса PATCH /menu/{id}/availability.
// Обязательность поля проверяется в обработчике: тег required у *bool
// ложно срабатывает на значении false.
type AvailabilityUpdate struct {
	IsAvailable *bool `json:"is_available"`
}
