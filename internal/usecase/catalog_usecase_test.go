package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/matbakh-tech/go-backend/internal/domain"
	"github.com/matbakh-tech/go-backend/pkg/e"
)

type catalogFixture struct {
	uc       *CatalogUseCase
	products *fakeProductRepo
	zones    *fakeZoneRepo
	outbox   *fakeOutboxRepo
	cache    *fakeCacheRepo
	images   *fakeImagesInfra
	tx       *fakeTx
}

func newCatalogFixture(products ...domain.Product) *catalogFixture {
	f := &catalogFixture{
		products: newFakeProductRepo(products...),
		zones:    newFakeZoneRepo(),
		outbox:   &fakeOutboxRepo{},
		cache:    newFakeCacheRepo(),
		images:   &fakeImagesInfra{uploadKey: "sourdough/abc.jpg"},
		tx:       &fakeTx{},
	}

	f.uc = NewCatalogUC(
		f.products,
		&fakeCategoryRepo{},
		f.zones,
		f.outbox,
		f.cache,
		f.images,
		&fakeDB{tx: f.tx},
		nopLogger{},
	)

	return f
}

type fakeCategoryRepo struct{}

func (fakeCategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	return nil, e.ErrNotFound
}

func (fakeCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	return []domain.Category{}, nil
}

func validCreateReq() *CreateProductReq {
	return &CreateProductReq{
		Name:            "Sourdough",
		Description:     "Rye starter",
		Price:           650,
		PriceUnit:       domain.UnitPiece,
		PriceUnitAmount: decimal.NewFromInt(1),
	}
}

func TestCreateProduct_Validation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(req *CreateProductReq)
		wantErr error
	}{
		{"empty name", func(r *CreateProductReq) { r.Name = "   " }, e.ErrProductNameRequired},
		{"negative price", func(r *CreateProductReq) { r.Price = -1 }, e.ErrNegativePrice},
		{"bad unit", func(r *CreateProductReq) { r.PriceUnit = "liter" }, e.ErrInvalidPriceUnit},
		{"zero unit amount", func(r *CreateProductReq) { r.PriceUnitAmount = decimal.Zero }, e.ErrInvalidUnitAmount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newCatalogFixture()
			req := validCreateReq()
			tc.mutate(req)

			_, err := f.uc.CreateProduct(context.Background(), req)
			require.ErrorIs(t, err, tc.wantErr)
			require.Empty(t, f.products.created, "invalid request must not reach the repository")
		})
	}
}

func TestCreateProduct_RecordsOutboxEvent(t *testing.T) {
	f := newCatalogFixture()

	product, err := f.uc.CreateProduct(context.Background(), validCreateReq())
	require.NoError(t, err)
	require.Equal(t, "Sourdough", product.Name)

	require.Len(t, f.outbox.events, 1)
	require.Equal(t, ProductChanged, f.outbox.events[0].EventType)
	require.Equal(t, "1", f.outbox.events[0].Key)
	require.True(t, f.tx.committed)
}

func TestUpdateProductPrice_InvalidatesCache(t *testing.T) {
	f := newCatalogFixture(domain.Product{
		ID: 7, Name: "Cake", Price: 2000,
		PriceUnit: domain.UnitPiece, PriceUnitAmount: decimal.NewFromInt(1),
	})

	product, err := f.uc.UpdateProductPrice(context.Background(), &UpdatePriceReq{ID: 7, Price: 2500})
	require.NoError(t, err)
	require.EqualValues(t, 2500, product.Price)
	require.Contains(t, f.cache.deleted, int64(7))
}

func TestUpdateProductPrice_NegativePrice(t *testing.T) {
	f := newCatalogFixture()

	_, err := f.uc.UpdateProductPrice(context.Background(), &UpdatePriceReq{ID: 7, Price: -5})
	require.ErrorIs(t, err, e.ErrNegativePrice)
}

func TestDeleteProduct_RecordsOutboxEvent(t *testing.T) {
	f := newCatalogFixture(domain.Product{ID: 3, Name: "Cake", Price: 2000})

	require.NoError(t, f.uc.DeleteProduct(context.Background(), 3))
	require.Len(t, f.outbox.events, 1)
	require.Equal(t, "3", f.outbox.events[0].Key)

	_, err := f.uc.GetProduct(context.Background(), 3)
	require.ErrorIs(t, err, e.ErrNotFound)
}

func TestGetProduct_CacheFirst(t *testing.T) {
	f := newCatalogFixture()
	cached := domain.Product{ID: 5, Name: "Cached", Price: 100}
	require.NoError(t, f.cache.SetProduct(context.Background(), &cached))

	product, err := f.uc.GetProduct(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, "Cached", product.Name)
}

func TestUploadProductImage_SetsAuthoritativeKey(t *testing.T) {
	f := newCatalogFixture(domain.Product{ID: 2, Name: "Sourdough", Price: 650})

	product, err := f.uc.UploadProductImage(context.Background(), 2,
		NewProductImage([]byte{0xFF}, "image/jpeg", 1, "photo.jpg"))
	require.NoError(t, err)
	require.Equal(t, "sourdough/abc.jpg", product.ImageKey)
	require.Equal(t, "sourdough/abc.jpg", f.products.imageKeys[2])
}

func TestUploadProductImage_CleansUpOrphanOnFailure(t *testing.T) {
	f := newCatalogFixture(domain.Product{ID: 2, Name: "Sourdough", Price: 650})
	f.products.setImageErr = errors.New("db down")

	_, err := f.uc.UploadProductImage(context.Background(), 2,
		NewProductImage([]byte{0xFF}, "image/jpeg", 1, "photo.jpg"))
	require.Error(t, err)
	require.Equal(t, []string{"sourdough/abc.jpg"}, f.images.cleaned)
}

func TestUploadProductImage_UnknownProduct(t *testing.T) {
	f := newCatalogFixture()

	_, err := f.uc.UploadProductImage(context.Background(), 42,
		NewProductImage([]byte{0xFF}, "image/jpeg", 1, "photo.jpg"))
	require.ErrorIs(t, err, e.ErrNotFound)
	require.Empty(t, f.images.cleaned)
}

func TestCreateDeliveryZone_Validation(t *testing.T) {
	f := newCatalogFixture()

	_, err := f.uc.CreateDeliveryZone(context.Background(), &UpsertZoneReq{Name: " ", Price: 100})
	require.ErrorIs(t, err, e.ErrZoneNameRequired)

	_, err = f.uc.CreateDeliveryZone(context.Background(), &UpsertZoneReq{Name: "Old Town", Price: -1})
	require.ErrorIs(t, err, e.ErrNegativePrice)
}

func TestDeliveryZone_CRUD(t *testing.T) {
	f := newCatalogFixture()

	zone, err := f.uc.CreateDeliveryZone(context.Background(), &UpsertZoneReq{Name: "Old Town", Price: 500})
	require.NoError(t, err)

	zone, err = f.uc.UpdateDeliveryZone(context.Background(), &UpsertZoneReq{ID: zone.ID, Name: "Old Town", Price: 700})
	require.NoError(t, err)
	require.EqualValues(t, 700, zone.Price)

	require.NoError(t, f.uc.DeleteDeliveryZone(context.Background(), zone.ID))
	require.ErrorIs(t, f.uc.DeleteDeliveryZone(context.Background(), zone.ID), e.ErrNotFound)
}
