package usecase

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/matbakh-tech/go-backend/internal/domain"
	"github.com/matbakh-tech/go-backend/pkg/e"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

// fakeTx реализует pgx.Tx для проверки транзакционных сценариев.
type fakeTx struct {
	commitErr  error
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

func (t *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (t *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *fakeTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }

func (t *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (t *fakeTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (t *fakeTx) Conn() *pgx.Conn                                               { return nil }

type fakeDB struct {
	tx *fakeTx
}

func (d *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) { return d.tx, nil }

func (d *fakeDB) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	return d.tx, nil
}

type fakeCartRepo struct {
	mu        sync.Mutex
	snapshots map[string][]domain.CartItem
	saveErr   error
	deleteErr error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{snapshots: make(map[string][]domain.CartItem)}
}

func (r *fakeCartRepo) Load(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, ok := r.snapshots[sessionID]
	if !ok {
		return []domain.CartItem{}, nil
	}

	out := make([]domain.CartItem, len(items))
	copy(out, items)
	return out, nil
}

func (r *fakeCartRepo) Save(ctx context.Context, sessionID string, items []domain.CartItem) error {
	if r.saveErr != nil {
		return r.saveErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]domain.CartItem, len(items))
	copy(snapshot, items)
	r.snapshots[sessionID] = snapshot
	return nil
}

func (r *fakeCartRepo) Delete(ctx context.Context, sessionID string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.snapshots, sessionID)
	return nil
}

type fakeProductRepo struct {
	products    map[int64]domain.Product
	created     []*domain.Product
	setImageErr error
	imageKeys   map[int64]string
}

func newFakeProductRepo(products ...domain.Product) *fakeProductRepo {
	r := &fakeProductRepo{
		products:  make(map[int64]domain.Product),
		imageKeys: make(map[int64]string),
	}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	created := *product
	created.ID = int64(len(r.created) + 1)
	r.created = append(r.created, &created)
	r.products[created.ID] = created
	return &created, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if _, ok := r.products[product.ID]; !ok {
		return nil, e.ErrNotFound
	}
	r.products[product.ID] = *product
	return product, nil
}

func (r *fakeProductRepo) UpdatePrice(ctx context.Context, req *UpdatePriceReq) (*domain.Product, error) {
	product, ok := r.products[req.ID]
	if !ok {
		return nil, e.ErrNotFound
	}
	product.Price = req.Price
	if req.PriceUnit != nil {
		product.PriceUnit = *req.PriceUnit
	}
	if req.PriceUnitAmount != nil {
		product.PriceUnitAmount = *req.PriceUnitAmount
	}
	r.products[req.ID] = product
	return &product, nil
}

func (r *fakeProductRepo) SetImageKey(ctx context.Context, id int64, imageKey string) error {
	if r.setImageErr != nil {
		return r.setImageErr
	}
	if _, ok := r.products[id]; !ok {
		return e.ErrNotFound
	}
	r.imageKeys[id] = imageKey
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.products[id]; !ok {
		return e.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	return &product, nil
}

func (r *fakeProductRepo) List(ctx context.Context, filter ProductFilter) ([]domain.Product, error) {
	result := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		result = append(result, p)
	}
	return result, nil
}

type fakeZoneRepo struct {
	zones map[int64]domain.DeliveryZone
}

func newFakeZoneRepo(zones ...domain.DeliveryZone) *fakeZoneRepo {
	r := &fakeZoneRepo{zones: make(map[int64]domain.DeliveryZone)}
	for _, z := range zones {
		r.zones[z.ID] = z
	}
	return r
}

func (r *fakeZoneRepo) Create(ctx context.Context, zone *domain.DeliveryZone) (*domain.DeliveryZone, error) {
	created := *zone
	created.ID = int64(len(r.zones) + 1)
	r.zones[created.ID] = created
	return &created, nil
}

func (r *fakeZoneRepo) Update(ctx context.Context, zone *domain.DeliveryZone) (*domain.DeliveryZone, error) {
	if _, ok := r.zones[zone.ID]; !ok {
		return nil, e.ErrNotFound
	}
	r.zones[zone.ID] = *zone
	return zone, nil
}

func (r *fakeZoneRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.zones[id]; !ok {
		return e.ErrNotFound
	}
	delete(r.zones, id)
	return nil
}

func (r *fakeZoneRepo) GetByID(ctx context.Context, id int64) (*domain.DeliveryZone, error) {
	zone, ok := r.zones[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	return &zone, nil
}

func (r *fakeZoneRepo) List(ctx context.Context) ([]domain.DeliveryZone, error) {
	result := make([]domain.DeliveryZone, 0, len(r.zones))
	for _, z := range r.zones {
		result = append(result, z)
	}
	return result, nil
}

type fakeOutboxRepo struct {
	mu        sync.Mutex
	events    []*OutboxEvent
	createErr error
}

func (r *fakeOutboxRepo) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	event.ID = int64(len(r.events) + 1)
	r.events = append(r.events, event)
	return event, nil
}

func (r *fakeOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (r *fakeOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error { return nil }

type fakeCacheRepo struct {
	mu       sync.Mutex
	products map[int64]domain.Product
	deleted  []int64
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{products: make(map[int64]domain.Product)}
}

func (r *fakeCacheRepo) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

func (r *fakeCacheRepo) SetProduct(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products[product.ID] = *product
	return nil
}

func (r *fakeCacheRepo) DeleteProducts(ctx context.Context, ids []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range ids {
		delete(r.products, id)
		r.deleted = append(r.deleted, id)
	}
	return nil
}

type fakeDispatcher struct {
	lastText string
}

func (d *fakeDispatcher) OrderLink(summaryText string) string {
	d.lastText = summaryText
	return "https://wa.me/15551234567?text=encoded"
}

type fakeImagesInfra struct {
	uploadKey string
	uploadErr error
	cleaned   []string
}

func (i *fakeImagesInfra) UploadImage(ctx context.Context, productName string, image *ProductImage) (string, error) {
	if i.uploadErr != nil {
		return "", i.uploadErr
	}
	return i.uploadKey, nil
}

func (i *fakeImagesInfra) CleanupImage(key string) {
	i.cleaned = append(i.cleaned, key)
}
