package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickbite/internal/logger"
	"quickbite/internal/models"
	"quickbite/internal/money"
)

type fakeRepo struct {
	customers   map[int64]bool
	restaurants map[int64]bool
	menu        []models.MenuItem
	orders      map[int64]*models.Order

	nextID        int64
	insertedOrder *models.Order
	updateErr     error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		customers:   map[int64]bool{1: true},
		restaurants: map[int64]bool{10: true},
		menu:        menuFixture(),
		orders:      map[int64]*models.Order{},
		nextID:      100,
	}
}

func (r *fakeRepo) CustomerExists(_ context.Context, id int64) (bool, error) {
	return r.customers[id], nil
}

func (r *fakeRepo) RestaurantExists(_ context.Context, id int64) (bool, error) {
	return r.restaurants[id], nil
}

func (r *fakeRepo) MenuItemsByIDs(_ context.Context, ids []int64) ([]models.MenuItem, error) {
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []models.MenuItem
	for _, m := range r.menu {
		if want[m.ID] {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeRepo) InsertOrderWithItems(_ context.Context, order *models.Order) error {
	order.ID = r.nextID
	r.nextID++
	r.orders[order.ID] = order
	r.insertedOrder = order
	return nil
}

func (r *fakeRepo) GetOrder(_ context.Context, id int64) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, models.NotFoundError{Entity: "order", ID: id}
	}
	return order, nil
}

func (r *fakeRepo) ListByCustomer(_ context.Context, customerID int64) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id int64, from, to models.OrderStatus) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	order, ok := r.orders[id]
	if !ok || order.Status != from {
		return models.InvalidTransitionError{From: from, To: to}
	}
	order.Status = to
	return nil
}

type fakePublisher struct {
	events        []string
	notifications int
}

func (p *fakePublisher) PublishOrderEvent(_ context.Context, _ interface{}, routingKey string) error {
	p.events = append(p.events, routingKey)
	return nil
}

func (p *fakePublisher) PublishNotification(_ context.Context, _ interface{}) error {
	p.notifications++
	return nil
}

func newTestService(repo *fakeRepo, pub *fakePublisher) *Service {
	var publisher Publisher
	if pub != nil {
		publisher = pub
	}
	return NewService(repo, publisher, logger.New("order-test"))
}

func TestCreateOrder(t *testing.T) {
	repo := newFakeRepo()
	pub := &fakePublisher{}
	svc := newTestService(repo, pub)

	order, err := svc.CreateOrder(context.Background(), &models.CreateOrderRequest{
		CustomerID:   1,
		RestaurantID: 10,
		Items: []models.OrderItemRequest{
			{MenuItemID: 1, Quantity: 2},
			{MenuItemID: 2, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, money.Cents(2550), order.TotalPrice)
	assert.Equal(t, "25.50", order.TotalPrice.String())
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Len(t, order.Items, 2)
	assert.NotZero(t, order.ID)

	require.NotNil(t, repo.insertedOrder)
	assert.Equal(t, []string{models.OrderCreatedRoutingKey}, pub.events)
}

func TestCreateOrder_UnknownCustomer(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)

	_, err := svc.CreateOrder(context.Background(), &models.CreateOrderRequest{
		CustomerID:   42,
		RestaurantID: 10,
		Items:        []models.OrderItemRequest{{MenuItemID: 1, Quantity: 1}},
	})
	assert.Equal(t, models.NotFoundError{Entity: "customer", ID: 42}, err)
	assert.Nil(t, repo.insertedOrder)
}

func TestCreateOrder_UnknownRestaurant(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)

	_, err := svc.CreateOrder(context.Background(), &models.CreateOrderRequest{
		CustomerID:   1,
		RestaurantID: 77,
		Items:        []models.OrderItemRequest{{MenuItemID: 1, Quantity: 1}},
	})
	assert.Equal(t, models.NotFoundError{Entity: "restaurant", ID: 77}, err)
	assert.Nil(t, repo.insertedOrder)
}

func TestCreateOrder_CrossRestaurantLeavesNothingBehind(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)

	_, err := svc.CreateOrder(context.Background(), &models.CreateOrderRequest{
		CustomerID:   1,
		RestaurantID: 10,
		Items: []models.OrderItemRequest{
			{MenuItemID: 1, Quantity: 1},
			{MenuItemID: 5, Quantity: 1},
		},
	})
	var crossErr models.CrossRestaurantError
	require.ErrorAs(t, err, &crossErr)
	assert.Equal(t, int64(5), crossErr.MenuItemID)
	assert.Nil(t, repo.insertedOrder)
	assert.Empty(t, repo.orders)
}

func TestCreateOrder_IgnoresNoPublisher(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)

	order, err := svc.CreateOrder(context.Background(), &models.CreateOrderRequest{
		CustomerID:   1,
		RestaurantID: 10,
		Items:        []models.OrderItemRequest{{MenuItemID: 3, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, money.Cents(866), order.TotalPrice)
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeRepo()
	pub := &fakePublisher{}
	svc := newTestService(repo, pub)

	repo.orders[100] = &models.Order{ID: 100, CustomerID: 1, RestaurantID: 10, Status: models.StatusPending}

	order, err := svc.UpdateStatus(context.Background(), 100, "CONFIRMED")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, order.Status)
	assert.Equal(t, []string{"order.status.CONFIRMED"}, pub.events)
	assert.Equal(t, 1, pub.notifications)
}

func TestUpdateStatus_IllegalTransition(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)

	repo.orders[100] = &models.Order{ID: 100, Status: models.StatusDelivered}

	_, err := svc.UpdateStatus(context.Background(), 100, "CANCELLED")
	assert.Equal(t, models.InvalidTransitionError{From: models.StatusDelivered, To: models.StatusCancelled}, err)
}

func TestUpdateStatus_SkippingAStage(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)

	repo.orders[100] = &models.Order{ID: 100, Status: models.StatusPending}

	_, err := svc.UpdateStatus(context.Background(), 100, "DELIVERED")
	assert.Equal(t, models.InvalidTransitionError{From: models.StatusPending, To: models.StatusDelivered}, err)
	assert.Equal(t, models.StatusPending, repo.orders[100].Status)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)

	_, err := svc.UpdateStatus(context.Background(), 100, "SHIPPED")
	var valErr models.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "status", valErr.Field)
}

func TestUpdateStatus_ConcurrentGuard(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)

	repo.orders[100] = &models.Order{ID: 100, Status: models.StatusPending}
	repo.updateErr = models.InvalidTransitionError{From: models.StatusPending, To: models.StatusConfirmed}

	_, err := svc.UpdateStatus(context.Background(), 100, "CONFIRMED")
	var transErr models.InvalidTransitionError
	require.ErrorAs(t, err, &transErr)
}

func TestUpdateStatus_UnknownOrder(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)

	_, err := svc.UpdateStatus(context.Background(), 999, "CONFIRMED")
	assert.Equal(t, models.NotFoundError{Entity: "order", ID: 999}, err)
}
