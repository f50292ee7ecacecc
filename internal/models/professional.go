// Package models содержит доменные структуры каталога профессионалов,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

// Coordinates широта и долгота точки на карте.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location описывает местоположение профессионала.
type Location struct {
	District    string      `json:"district"`
	City        string      `json:"city"`
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
}

// Rate описывает тарифный диапазон профессионала.
// Инвариант min <= max предполагается, но не проверяется хранилищем.
type Rate struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
	Type     string  `json:"type"` // единица тарификации: "por hora", "por proyecto"
}

// Professional представляет собой основную модель записи каталога,
// используемую в бизнес-логике и хранилище. PasswordHash никогда
// не сериализуется в ответы API.
type Professional struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Profession   string   `json:"profession"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	PasswordHash string   `json:"-"`
	ProfileImage string   `json:"profileImage"`
	Gallery      []string `json:"gallery"`
	Description  string   `json:"description"`
	Services     []string `json:"services"`
	Location     Location `json:"location"`
	Rate         Rate     `json:"rate"`
	Rating       float64  `json:"rating"`
	ReviewsCount int      `json:"reviewsCount"`
	IsActive     bool     `json:"isActive"`
}

// Filter параметры отбора записей каталога. Все поля независимы и
// необязательны; nil для тарифных границ означает "фильтр не задан".
type Filter struct {
	Search   string
	Location string
	MinRate  *float64
	MaxRate  *float64
}

// IsEmpty сообщает, задан ли хотя бы один критерий фильтра.
func (f Filter) IsEmpty() bool {
	return f.Search == "" && f.Location == "" && f.MinRate == nil && f.MaxRate == nil
}
