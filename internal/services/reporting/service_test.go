package reporting

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickbite/internal/logger"
	"quickbite/internal/models"
	"quickbite/internal/money"
)

// fakeRepo aggregates in memory with the same ordering contract as the
// SQL queries: by the measure descending, then by ID ascending.
type fakeRepo struct {
	revenue    map[int64]money.Cents
	itemSales  map[int64]int64
	orderCount map[int64]int64
}

func (r *fakeRepo) SumRevenue(_ context.Context, restaurantID int64) (money.Cents, error) {
	return r.revenue[restaurantID], nil
}

func (r *fakeRepo) TopMenuItems(_ context.Context, limit int) ([]models.MenuItemSales, error) {
	out := make([]models.MenuItemSales, 0, len(r.itemSales))
	for id, qty := range r.itemSales {
		out = append(out, models.MenuItemSales{MenuItemID: id, TotalQuantity: qty})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalQuantity != out[j].TotalQuantity {
			return out[i].TotalQuantity > out[j].TotalQuantity
		}
		return out[i].MenuItemID < out[j].MenuItemID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeRepo) TopCustomers(_ context.Context, limit int) ([]models.CustomerOrderCount, error) {
	out := make([]models.CustomerOrderCount, 0, len(r.orderCount))
	for id, n := range r.orderCount {
		out = append(out, models.CustomerOrderCount{CustomerID: id, OrderCount: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OrderCount != out[j].OrderCount {
			return out[i].OrderCount > out[j].OrderCount
		}
		return out[i].CustomerID < out[j].CustomerID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func newTestService(repo *fakeRepo) *Service {
	return NewService(repo, logger.New("reporting-test"))
}

func TestRestaurantRevenue(t *testing.T) {
	repo := &fakeRepo{revenue: map[int64]money.Cents{10: 125050}}
	svc := newTestService(repo)

	total, err := svc.RestaurantRevenue(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, money.Cents(125050), total)
	assert.Equal(t, "1250.50", total.String())
}

func TestRestaurantRevenue_NoOrders(t *testing.T) {
	svc := newTestService(&fakeRepo{revenue: map[int64]money.Cents{}})

	total, err := svc.RestaurantRevenue(context.Background(), 404)
	require.NoError(t, err)
	assert.Equal(t, money.Cents(0), total)
}

func TestTopMenuItems_DefaultLimitIsOne(t *testing.T) {
	repo := &fakeRepo{itemSales: map[int64]int64{1: 7, 2: 12, 3: 3}}
	svc := newTestService(repo)

	top, err := svc.TopMenuItems(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, int64(2), top[0].MenuItemID)
	assert.Equal(t, int64(12), top[0].TotalQuantity)
}

func TestTopMenuItems_TieBreaksByID(t *testing.T) {
	repo := &fakeRepo{itemSales: map[int64]int64{5: 4, 2: 4, 9: 1}}
	svc := newTestService(repo)

	top, err := svc.TopMenuItems(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, int64(2), top[0].MenuItemID)
	assert.Equal(t, int64(5), top[1].MenuItemID)
}

func TestTopCustomers_DefaultLimitIsFive(t *testing.T) {
	repo := &fakeRepo{orderCount: map[int64]int64{
		1: 9, 2: 8, 3: 7, 4: 6, 5: 5, 6: 4, 7: 3,
	}}
	svc := newTestService(repo)

	top, err := svc.TopCustomers(context.Background(), -1)
	require.NoError(t, err)
	require.Len(t, top, 5)
	assert.Equal(t, int64(1), top[0].CustomerID)
	assert.Equal(t, int64(5), top[4].CustomerID)
}

func TestTopCustomers_ExplicitLimit(t *testing.T) {
	repo := &fakeRepo{orderCount: map[int64]int64{1: 2, 2: 2, 3: 1}}
	svc := newTestService(repo)

	top, err := svc.TopCustomers(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, int64(1), top[0].CustomerID)
	assert.Equal(t, int64(2), top[1].CustomerID)
}
