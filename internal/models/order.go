// Package models содержит доменные структуры заказов магазина.
// Цена и период хранятся в том виде, в каком их показывает витрина
// ("₽130", "30 дней") — разбор в числа выполняется на уровне сервисов.
package models

import "time"

// Статусы заказа.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order представляет покупку пользователя. Записи создаются при
// подтверждении покупки и дальше не изменяются.
type Order struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	ProductName string    `json:"product_name"`
	Price       string    `json:"price"`    // Отображаемая цена, например "₽130"
	Period      string    `json:"period"`   // Отображаемый период, например "30 дней"
	Quantity    int       `json:"quantity"` // Количество, по умолчанию 1
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
