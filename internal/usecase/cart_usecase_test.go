package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matbakh-tech/go-backend/internal/cfg"
	"github.com/matbakh-tech/go-backend/internal/domain"
	"github.com/matbakh-tech/go-backend/pkg/e"
)

func dispatchCfg() *cfg.DispatchCfg {
	return &cfg.DispatchCfg{
		Contact:    "15551234567",
		Header:     "New order:",
		TotalLabel: "Total",
		Footer:     "Please confirm the order. Thank you!",
	}
}

type cartFixture struct {
	uc         *CartUseCase
	cartRepo   *fakeCartRepo
	products   *fakeProductRepo
	zones      *fakeZoneRepo
	outbox     *fakeOutboxRepo
	dispatcher *fakeDispatcher
	tx         *fakeTx
}

func newCartFixture(products ...domain.Product) *cartFixture {
	f := &cartFixture{
		cartRepo:   newFakeCartRepo(),
		products:   newFakeProductRepo(products...),
		zones:      newFakeZoneRepo(domain.DeliveryZone{ID: 1, Name: "Old Town", Price: 500}),
		outbox:     &fakeOutboxRepo{},
		dispatcher: &fakeDispatcher{},
		tx:         &fakeTx{},
	}

	f.uc = NewCartUC(
		f.cartRepo,
		f.products,
		f.zones,
		f.outbox,
		newFakeCacheRepo(),
		&fakeDB{tx: f.tx},
		f.dispatcher,
		dispatchCfg(),
		nopLogger{},
	)

	return f
}

func TestCartAddItem_PersistsSnapshot(t *testing.T) {
	f := newCartFixture(domain.Product{ID: 1, Name: "Sourdough", Price: 650})

	view, err := f.uc.AddItem(context.Background(), "s1", 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	require.EqualValues(t, 1, view.Items[0].Quantity)

	view, err = f.uc.AddItem(context.Background(), "s1", 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	require.EqualValues(t, 2, view.Items[0].Quantity)
	require.EqualValues(t, 1300, view.Total)

	snapshot, err := f.cartRepo.Load(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, snapshot, 1)
	require.EqualValues(t, 2, snapshot[0].Quantity)
}

func TestCartAddItem_UnknownProduct(t *testing.T) {
	f := newCartFixture()

	_, err := f.uc.AddItem(context.Background(), "s1", 404)
	require.ErrorIs(t, err, e.ErrNotFound)
}

func TestCartUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	f := newCartFixture(domain.Product{ID: 1, Name: "Sourdough", Price: 650})

	_, err := f.uc.AddItem(context.Background(), "s1", 1)
	require.NoError(t, err)

	view, err := f.uc.UpdateQuantity(context.Background(), "s1", 1, 0)
	require.NoError(t, err)
	require.Empty(t, view.Items)

	snapshot, err := f.cartRepo.Load(context.Background(), "s1")
	require.NoError(t, err)
	require.Empty(t, snapshot)
}

func TestCartGetCart_DropsInvalidSnapshotLines(t *testing.T) {
	f := newCartFixture()
	f.cartRepo.snapshots["s1"] = []domain.CartItem{
		{Product: domain.Product{ID: 1, Name: "Sourdough", Price: 650}, Quantity: 2},
		{Product: domain.Product{ID: 2, Name: "Cake", Price: 2000}, Quantity: 0},
	}

	view, err := f.uc.GetCart(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	require.EqualValues(t, 1300, view.Total)
	require.EqualValues(t, 2, view.ItemCount)
}

func TestCartClearCart_WritesEmptySnapshot(t *testing.T) {
	f := newCartFixture(domain.Product{ID: 1, Name: "Sourdough", Price: 650})

	_, err := f.uc.AddItem(context.Background(), "s1", 1)
	require.NoError(t, err)

	require.NoError(t, f.uc.ClearCart(context.Background(), "s1"))

	snapshot, err := f.cartRepo.Load(context.Background(), "s1")
	require.NoError(t, err)
	require.Empty(t, snapshot)
}

func TestCheckout_EmptyCart(t *testing.T) {
	f := newCartFixture()

	_, err := f.uc.Checkout(context.Background(), NewCheckoutReq("s1", nil))
	require.ErrorIs(t, err, e.ErrEmptyCart)
}

func TestCheckout_UnknownZoneKeepsCart(t *testing.T) {
	f := newCartFixture(domain.Product{ID: 1, Name: "Sourdough", Price: 650})

	_, err := f.uc.AddItem(context.Background(), "s1", 1)
	require.NoError(t, err)

	zoneID := int64(99)
	_, err = f.uc.Checkout(context.Background(), NewCheckoutReq("s1", &zoneID))
	require.ErrorIs(t, err, e.ErrNotFound)

	snapshot, err := f.cartRepo.Load(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, snapshot, 1)
}

func TestCheckout_OutboxFailureKeepsCart(t *testing.T) {
	f := newCartFixture(domain.Product{ID: 1, Name: "Sourdough", Price: 650})
	f.outbox.createErr = errors.New("insert failed")

	_, err := f.uc.AddItem(context.Background(), "s1", 1)
	require.NoError(t, err)

	_, err = f.uc.Checkout(context.Background(), NewCheckoutReq("s1", nil))
	require.ErrorIs(t, err, e.ErrDispatchFailed)

	snapshot, err := f.cartRepo.Load(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, snapshot, 1, "cart must survive a failed dispatch")
}

func TestCheckout_CommitFailureKeepsCart(t *testing.T) {
	f := newCartFixture(domain.Product{ID: 1, Name: "Sourdough", Price: 650})
	f.tx.commitErr = errors.New("commit failed")

	_, err := f.uc.AddItem(context.Background(), "s1", 1)
	require.NoError(t, err)

	_, err = f.uc.Checkout(context.Background(), NewCheckoutReq("s1", nil))
	require.ErrorIs(t, err, e.ErrDispatchFailed)

	snapshot, err := f.cartRepo.Load(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, snapshot, 1)
}

func TestCheckout_SuccessClearsCartAndRecordsEvent(t *testing.T) {
	f := newCartFixture(domain.Product{ID: 1, Name: "Sourdough", Price: 650})

	_, err := f.uc.AddItem(context.Background(), "s1", 1)
	require.NoError(t, err)
	_, err = f.uc.AddItem(context.Background(), "s1", 1)
	require.NoError(t, err)

	zoneID := int64(1)
	res, err := f.uc.Checkout(context.Background(), NewCheckoutReq("s1", &zoneID))
	require.NoError(t, err)

	require.Equal(t, "https://wa.me/15551234567?text=encoded", res.OrderURL)
	require.EqualValues(t, 1800, res.Total) // 2*650 + 500 доставка
	require.Contains(t, res.Summary, "New order:")
	require.Contains(t, res.Summary, "Sourdough (2×) - 13.00")
	require.Contains(t, res.Summary, "Old Town - 5.00")
	require.Contains(t, res.Summary, "Total: 18.00")
	require.Equal(t, res.Summary, f.dispatcher.lastText)

	require.Len(t, f.outbox.events, 1)
	require.Equal(t, OrderDispatched, f.outbox.events[0].EventType)
	require.Equal(t, "s1", f.outbox.events[0].Key)
	require.True(t, f.tx.committed)

	snapshot, err := f.cartRepo.Load(context.Background(), "s1")
	require.NoError(t, err)
	require.Empty(t, snapshot, "cart must be cleared after confirmed dispatch")
}
