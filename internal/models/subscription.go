package models

import "time"

// SubscriptionView производное, нигде не хранимое представление заказа
// с конечным периодом действия: сколько дней осталось и какая часть
// подписки израсходована. Считается из Order на момент запроса.
type SubscriptionView struct {
	OrderID         int64     `json:"order_id"`
	ProductName     string    `json:"product_name"`
	Price           string    `json:"price"`
	Period          string    `json:"period"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	TotalDays       int       `json:"total_days"`
	DaysLeft        int       `json:"days_left"`
	ProgressPercent int       `json:"progress_percent"`
	IsActive        bool      `json:"is_active"`
}

// SubscriptionStats агрегаты по подпискам пользователя для витрины.
type SubscriptionStats struct {
	ActiveCount int `json:"active_count"`
	TotalDays   int `json:"total_days"`
	TotalSpent  int `json:"total_spent"` // Сумма в рублях по всем заказам с периодом
}
