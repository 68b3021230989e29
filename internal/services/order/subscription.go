package order

import (
	"context"
	"math"
	"time"

	"github.com/colddogs/storefront/internal/lib/period"
	"github.com/colddogs/storefront/internal/lib/price"
	"github.com/colddogs/storefront/internal/models"
)

// SubscriptionList производные представления подписок пользователя
// вместе с агрегатами для витрины.
type SubscriptionList struct {
	Subscriptions []models.SubscriptionView
	Stats         models.SubscriptionStats
}

// Subscriptions строит представления подписок по заказам пользователя.
// Подписками считаются заказы с конечным периодом в днях; одноразовые
// и бессрочные покупки отфильтровываются.
func (s *Service) Subscriptions(ctx context.Context, userID int64, now time.Time) (*SubscriptionList, error) {
	orders, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return DeriveSubscriptions(orders, now), nil
}

// DeriveSubscriptions вычисляет представления подписок из сырых заказов.
// Ничего не пишет и не читает: чистая функция от (orders, now).
func DeriveSubscriptions(orders []models.Order, now time.Time) *SubscriptionList {
	result := &SubscriptionList{
		Subscriptions: make([]models.SubscriptionView, 0),
	}
	for _, o := range orders {
		if !period.IsDayCount(o.Period) {
			continue
		}
		view := deriveView(o, now)
		result.Subscriptions = append(result.Subscriptions, view)

		if view.IsActive {
			result.Stats.ActiveCount++
		}
		result.Stats.TotalDays += view.TotalDays
		result.Stats.TotalSpent += price.Parse(o.Price) * o.Quantity
	}
	return result
}

func deriveView(o models.Order, now time.Time) models.SubscriptionView {
	total := period.Days(o.Period)
	elapsed := elapsedDays(o.CreatedAt, now)

	daysLeft := total - elapsed
	if daysLeft < 0 {
		daysLeft = 0
	}

	// totalDays == 0 у битой строки периода: прогресс фиксируется в 0,
	// деления на ноль не происходит.
	progress := 0
	if total > 0 {
		progress = int(math.Min(100, float64(elapsed)/float64(total)*100))
	}

	return models.SubscriptionView{
		OrderID:         o.ID,
		ProductName:     o.ProductName,
		Price:           o.Price,
		Period:          o.Period,
		Status:          o.Status,
		CreatedAt:       o.CreatedAt,
		TotalDays:       total,
		DaysLeft:        daysLeft,
		ProgressPercent: progress,
		IsActive:        o.Status == models.OrderStatusCompleted,
	}
}

// elapsedDays считает прошедшие дни с округлением вверх:
// начатый день расходует подписку целиком.
func elapsedDays(createdAt, now time.Time) int {
	diff := now.Sub(createdAt)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}
