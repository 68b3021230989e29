package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colddogs/storefront/internal/models"
)

func TestDeriveSubscriptions_MidTerm(t *testing.T) {
	now := time.Date(2025, 8, 11, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{{
		ID:          1,
		UserID:      1,
		ProductName: "Fish Bot",
		Price:       "₽130",
		Period:      "30 дней",
		Quantity:    1,
		Status:      models.OrderStatusCompleted,
		CreatedAt:   now.AddDate(0, 0, -10),
	}}

	list := DeriveSubscriptions(orders, now)
	require.Len(t, list.Subscriptions, 1)

	sub := list.Subscriptions[0]
	assert.Equal(t, 30, sub.TotalDays)
	assert.Equal(t, 20, sub.DaysLeft)
	assert.Equal(t, 33, sub.ProgressPercent)
	assert.True(t, sub.IsActive)

	assert.Equal(t, 1, list.Stats.ActiveCount)
	assert.Equal(t, 30, list.Stats.TotalDays)
	assert.Equal(t, 130, list.Stats.TotalSpent)
}

func TestDeriveSubscriptions_FiltersNonSubscriptions(t *testing.T) {
	now := time.Date(2025, 8, 11, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{ID: 1, Period: "Одноразовая", Price: "₽50", Status: models.OrderStatusCompleted, CreatedAt: now},
		{ID: 2, Period: "навсегда", Price: "₽999", Status: models.OrderStatusCompleted, CreatedAt: now},
		{ID: 3, Period: "", Price: "₽10", Status: models.OrderStatusCompleted, CreatedAt: now},
		{ID: 4, Period: "7 дней", Price: "₽70", Quantity: 1, Status: models.OrderStatusCompleted, CreatedAt: now},
	}

	list := DeriveSubscriptions(orders, now)
	require.Len(t, list.Subscriptions, 1)
	assert.EqualValues(t, 4, list.Subscriptions[0].OrderID)
	assert.Equal(t, 70, list.Stats.TotalSpent)
}

func TestDeriveSubscriptions_Expired(t *testing.T) {
	now := time.Date(2025, 8, 11, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{{
		ID:        1,
		Period:    "30 дней",
		Price:     "₽130",
		Quantity:  1,
		Status:    models.OrderStatusCompleted,
		CreatedAt: now.AddDate(0, 0, -45),
	}}

	list := DeriveSubscriptions(orders, now)
	require.Len(t, list.Subscriptions, 1)

	sub := list.Subscriptions[0]
	assert.Equal(t, 0, sub.DaysLeft)
	// Прогресс не выходит за 100 даже после конца срока.
	assert.Equal(t, 100, sub.ProgressPercent)
}

func TestDeriveSubscriptions_UnparsablePeriodDays(t *testing.T) {
	// "дней" без числа проходит фильтр, но totalDays == 0:
	// прогресс остаётся нулевым, паники нет.
	now := time.Date(2025, 8, 11, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{{
		ID:        1,
		Period:    "дней",
		Price:     "₽130",
		Quantity:  1,
		Status:    models.OrderStatusCompleted,
		CreatedAt: now.AddDate(0, 0, -3),
	}}

	list := DeriveSubscriptions(orders, now)
	require.Len(t, list.Subscriptions, 1)

	sub := list.Subscriptions[0]
	assert.Equal(t, 0, sub.TotalDays)
	assert.Equal(t, 0, sub.DaysLeft)
	assert.Equal(t, 0, sub.ProgressPercent)
}

func TestDeriveSubscriptions_PendingIsNotActive(t *testing.T) {
	now := time.Date(2025, 8, 11, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{{
		ID:        1,
		Period:    "30 дней",
		Price:     "₽130",
		Quantity:  1,
		Status:    models.OrderStatusPending,
		CreatedAt: now,
	}}

	list := DeriveSubscriptions(orders, now)
	require.Len(t, list.Subscriptions, 1)
	assert.False(t, list.Subscriptions[0].IsActive)
	assert.Equal(t, 0, list.Stats.ActiveCount)
	// Дни и траты считаются независимо от статуса.
	assert.Equal(t, 30, list.Stats.TotalDays)
	assert.Equal(t, 130, list.Stats.TotalSpent)
}

func TestDeriveSubscriptions_PartialDayRoundsUp(t *testing.T) {
	now := time.Date(2025, 8, 11, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{{
		ID:        1,
		Period:    "30 дней",
		Price:     "₽130",
		Quantity:  1,
		Status:    models.OrderStatusCompleted,
		CreatedAt: now.Add(-1 * time.Hour),
	}}

	list := DeriveSubscriptions(orders, now)
	require.Len(t, list.Subscriptions, 1)
	// Один час считается начатым днём.
	assert.Equal(t, 29, list.Subscriptions[0].DaysLeft)
}

func TestDeriveSubscriptions_QuantityMultipliesSpent(t *testing.T) {
	now := time.Date(2025, 8, 11, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{{
		ID:        1,
		Period:    "30 дней",
		Price:     "₽1,200",
		Quantity:  3,
		Status:    models.OrderStatusCompleted,
		CreatedAt: now,
	}}

	list := DeriveSubscriptions(orders, now)
	assert.Equal(t, 3600, list.Stats.TotalSpent)
}

func TestDeriveSubscriptions_Empty(t *testing.T) {
	list := DeriveSubscriptions(nil, time.Now())
	assert.NotNil(t, list.Subscriptions)
	assert.Empty(t, list.Subscriptions)
	assert.Equal(t, models.SubscriptionStats{}, list.Stats)
}
