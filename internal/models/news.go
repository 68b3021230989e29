package models

import "time"

// News представляет новость витрины. Справочный контент: записи
// создаются один раз при наполнении пустого хранилища и не изменяются.
type News struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Product   string    `json:"product"` // Продукт, к которому относится новость
	Image     string    `json:"image"`
	Type      string    `json:"type"` // update, release, promo
	CreatedAt time.Time `json:"created_at"`
}
