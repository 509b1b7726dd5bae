package service

import (
	"context"
	"errors"
	"testing"

	"github.com/candylab/sweetbot/core/telegram/state"
	"github.com/candylab/sweetbot/internal/models"
)

// fakeProducts is an in-memory ProductReader/ProductWriter.
type fakeProducts struct {
	byID   map[int64]*models.Product
	nextID int64
}

func newFakeProducts(products ...models.Product) *fakeProducts {
	f := &fakeProducts{byID: make(map[int64]*models.Product)}
	for i := range products {
		p := products[i]
		f.byID[p.ID] = &p
		if p.ID >= f.nextID {
			f.nextID = p.ID
		}
	}
	return f
}

func (f *fakeProducts) ByID(_ context.Context, id int64) (*models.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProducts) ListAvailable(_ context.Context, category string) ([]models.Product, error) {
	var out []models.Product
	for id := int64(1); id <= f.nextID; id++ {
		if p, ok := f.byID[id]; ok && p.Category == category && p.Available {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProducts) Insert(_ context.Context, p *models.Product) (int64, error) {
	f.nextID++
	cp := *p
	cp.ID = f.nextID
	f.byID[cp.ID] = &cp
	return cp.ID, nil
}

// fakeCarts is an in-memory CartStore sharing the merge logic with storage.
type fakeCarts struct {
	byUser map[int64]*models.Cart
}

func newFakeCarts() *fakeCarts {
	return &fakeCarts{byUser: make(map[int64]*models.Cart)}
}

func (f *fakeCarts) Get(_ context.Context, userID int64) (*models.Cart, error) {
	c, ok := f.byUser[userID]
	if !ok {
		return nil, nil
	}
	cp := *c
	cp.Items = append(models.CartItems(nil), c.Items...)
	return &cp, nil
}

func (f *fakeCarts) AddItem(_ context.Context, userID, productID int64, lang string) error {
	c, ok := f.byUser[userID]
	if !ok {
		c = &models.Cart{UserID: userID}
		f.byUser[userID] = c
	}
	c.Add(productID)
	c.Lang = lang
	return nil
}

func (f *fakeCarts) Delete(_ context.Context, userID int64) error {
	delete(f.byUser, userID)
	return nil
}

// fakeOrders is an in-memory OrderStore.
type fakeOrders struct {
	byID   map[int64]*models.Order
	nextID int64
}

func newFakeOrders() *fakeOrders {
	return &fakeOrders{byID: make(map[int64]*models.Order)}
}

func (f *fakeOrders) Create(_ context.Context, o *models.Order) (int64, error) {
	f.nextID++
	cp := *o
	cp.ID = f.nextID
	f.byID[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeOrders) ByID(_ context.Context, id int64) (*models.Order, error) {
	o, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, id int64, status models.OrderStatus) (bool, error) {
	o, ok := f.byID[id]
	if !ok {
		return false, nil
	}
	o.Status = status
	return true, nil
}

func (f *fakeOrders) Recent(_ context.Context, limit int) ([]models.Order, error) {
	var out []models.Order
	for id := f.nextID; id > 0 && len(out) < limit; id-- {
		if o, ok := f.byID[id]; ok {
			out = append(out, *o)
		}
	}
	return out, nil
}

func sampleCatalog() *fakeProducts {
	return newFakeProducts(
		models.Product{
			ID:        1,
			Title:     models.LocalizedText{"uz": "Shokoladli tort", "en": "Chocolate Cake"},
			Price:     45,
			Category:  "cakes",
			Available: true,
		},
		models.Product{
			ID:        2,
			Title:     models.LocalizedText{"uz": "Karamel desert", "en": "Caramel dessert"},
			Price:     5,
			Category:  "desserts",
			Available: true,
		},
	)
}

func TestCartAddMergesRepeatedProduct(t *testing.T) {
	ctx := context.Background()
	carts := newFakeCarts()
	svc := NewCart(sampleCatalog(), carts, "uz")

	for i := 0; i < 3; i++ {
		if err := svc.Add(ctx, 100, 1, "en"); err != nil {
			t.Fatal(err)
		}
	}

	cart := carts.byUser[100]
	if len(cart.Items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(cart.Items))
	}
	if cart.Items[0].Qty != 3 {
		t.Fatalf("qty = %d, want 3", cart.Items[0].Qty)
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	svc := NewCart(sampleCatalog(), newFakeCarts(), "uz")
	err := svc.Add(context.Background(), 100, 999, "en")
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("err = %v, want ErrProductNotFound", err)
	}
}

func TestCartViewEmpty(t *testing.T) {
	svc := NewCart(sampleCatalog(), newFakeCarts(), "uz")
	_, err := svc.View(context.Background(), 100, "en")
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("err = %v, want ErrEmptyCart", err)
	}
}

func TestCartViewSkipsVanishedProducts(t *testing.T) {
	ctx := context.Background()
	products := sampleCatalog()
	carts := newFakeCarts()
	svc := NewCart(products, carts, "uz")

	if err := svc.Add(ctx, 100, 1, "en"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Add(ctx, 100, 2, "en"); err != nil {
		t.Fatal(err)
	}

	delete(products.byID, 2)

	view, err := svc.View(ctx, 100, "en")
	if err != nil {
		t.Fatal(err)
	}
	if len(view.Lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(view.Lines))
	}
	if view.Lines[0].Title != "Chocolate Cake" {
		t.Fatalf("title = %q", view.Lines[0].Title)
	}
	if view.Total != 45 {
		t.Fatalf("total = %d, want 45", view.Total)
	}
}

func newCheckout(products *fakeProducts, carts *fakeCarts, orders *fakeOrders) (*Checkout, state.Manager) {
	sessions := state.NewMemoryManager()
	return NewCheckout(sessions, products, carts, orders, "uz"), sessions
}

func TestCheckoutStartEmptyCart(t *testing.T) {
	svc, sessions := newCheckout(sampleCatalog(), newFakeCarts(), newFakeOrders())

	err := svc.Start(context.Background(), 100)
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("err = %v, want ErrEmptyCart", err)
	}
	if sessions.GetState(100) != state.StateIdle {
		t.Fatalf("state = %q, want idle", sessions.GetState(100))
	}
}

func TestCheckoutFullFlow(t *testing.T) {
	ctx := context.Background()
	products := sampleCatalog()
	carts := newFakeCarts()
	orders := newFakeOrders()
	svc, sessions := newCheckout(products, carts, orders)

	// Product A (price 45) twice, product B (price 5) once.
	for _, id := range []int64{1, 1, 2} {
		if err := carts.AddItem(ctx, 100, id, "en"); err != nil {
			t.Fatal(err)
		}
	}
	sessions.SetLang(100, "en")

	if err := svc.Start(ctx, 100); err != nil {
		t.Fatal(err)
	}
	if got := svc.Stage(100); got != StageAwaitingName {
		t.Fatalf("stage = %q", got)
	}

	ev, err := svc.HandleText(ctx, 100, "Aziz")
	if err != nil || ev != EventAskPhone {
		t.Fatalf("name step: ev=%v err=%v", ev, err)
	}

	// Free text does not advance the phone stage.
	ev, err = svc.HandleText(ctx, 100, "+998901234567")
	if err != nil || ev != EventIgnored {
		t.Fatalf("text during phone stage: ev=%v err=%v", ev, err)
	}
	if got := svc.Stage(100); got != StageAwaitingPhone {
		t.Fatalf("stage after ignored text = %q", got)
	}

	ev, err = svc.HandleContact(ctx, 100, "+998901234567")
	if err != nil || ev != EventAskAddress {
		t.Fatalf("contact step: ev=%v err=%v", ev, err)
	}

	ev, err = svc.HandleText(ctx, 100, "Tashkent, St. 1")
	if err != nil || ev != EventAskPayment {
		t.Fatalf("address step: ev=%v err=%v", ev, err)
	}

	order, err := svc.Complete(ctx, 100, models.PaymentCash)
	if err != nil {
		t.Fatal(err)
	}
	if order.Name != "Aziz" || order.Phone != "+998901234567" || order.Address != "Tashkent, St. 1" {
		t.Fatalf("order draft fields = %+v", order)
	}
	if order.Total != 95 {
		t.Fatalf("total = %d, want 95", order.Total)
	}
	if order.Status != models.OrderStatusNew {
		t.Fatalf("status = %q, want new", order.Status)
	}
	if len(order.Items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(order.Items))
	}
	if order.Items[0].Title != "Chocolate Cake" || order.Items[0].Qty != 2 || order.Items[0].Price != 45 {
		t.Fatalf("item A = %+v", order.Items[0])
	}
	if order.Items[1].Title != "Caramel dessert" || order.Items[1].Qty != 1 || order.Items[1].Price != 5 {
		t.Fatalf("item B = %+v", order.Items[1])
	}
	if order.Lang != "en" {
		t.Fatalf("lang = %q, want en", order.Lang)
	}

	// Cart gone, session cleared, later messages are no-ops.
	if cart, _ := carts.Get(ctx, 100); cart != nil {
		t.Fatal("cart should be deleted after checkout")
	}
	if svc.InProgress(100) {
		t.Fatal("session should be cleared after checkout")
	}
	ev, err = svc.HandleText(ctx, 100, "hello")
	if err != nil || ev != EventIgnored {
		t.Fatalf("post-checkout text: ev=%v err=%v", ev, err)
	}
}

func TestCheckoutStagesAreOneDirectional(t *testing.T) {
	ctx := context.Background()
	carts := newFakeCarts()
	svc, _ := newCheckout(sampleCatalog(), carts, newFakeOrders())

	if err := carts.AddItem(ctx, 100, 1, "uz"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Start(ctx, 100); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.HandleText(ctx, 100, "Aziz"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.HandleContact(ctx, 100, "+998900000000"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.HandleText(ctx, 100, "Somewhere"); err != nil {
		t.Fatal(err)
	}
	if got := svc.Stage(100); got != StageAwaitingPayment {
		t.Fatalf("stage = %q", got)
	}

	// No input moves the dialog backwards from the payment stage.
	if ev, _ := svc.HandleText(ctx, 100, "Aziz again"); ev != EventIgnored {
		t.Fatalf("ev = %v, want ignored", ev)
	}
	if ev, _ := svc.HandleContact(ctx, 100, "+998911111111"); ev != EventIgnored {
		t.Fatalf("contact ev = %v, want ignored", ev)
	}
	if got := svc.Stage(100); got != StageAwaitingPayment {
		t.Fatalf("stage moved to %q", got)
	}
}

func TestCheckoutCompleteWithoutDraft(t *testing.T) {
	ctx := context.Background()
	carts := newFakeCarts()
	svc, _ := newCheckout(sampleCatalog(), carts, newFakeOrders())

	if err := carts.AddItem(ctx, 100, 1, "uz"); err != nil {
		t.Fatal(err)
	}

	// Payment pressed without walking the prior stages.
	_, err := svc.Complete(ctx, 100, models.PaymentCard)
	if !errors.Is(err, ErrCheckoutNotStarted) {
		t.Fatalf("err = %v, want ErrCheckoutNotStarted", err)
	}
}

func TestCheckoutCompleteEmptyCartAtPayment(t *testing.T) {
	ctx := context.Background()
	carts := newFakeCarts()
	svc, sessions := newCheckout(sampleCatalog(), carts, newFakeOrders())

	if err := carts.AddItem(ctx, 100, 1, "uz"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Start(ctx, 100); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.HandleText(ctx, 100, "Aziz"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.HandleContact(ctx, 100, "+998900000000"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.HandleText(ctx, 100, "Somewhere"); err != nil {
		t.Fatal(err)
	}

	// Cart vanished between address and payment.
	if err := carts.Delete(ctx, 100); err != nil {
		t.Fatal(err)
	}

	_, err := svc.Complete(ctx, 100, models.PaymentCash)
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("err = %v, want ErrEmptyCart", err)
	}
	if got := sessions.GetState(100); got != StageAwaitingPayment {
		t.Fatalf("failed completion should not clear the session, stage = %q", got)
	}
}

func TestOrderSnapshotSurvivesPriceEdit(t *testing.T) {
	ctx := context.Background()
	products := sampleCatalog()
	carts := newFakeCarts()
	orders := newFakeOrders()
	svc, _ := newCheckout(products, carts, orders)

	if err := carts.AddItem(ctx, 100, 1, "uz"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Start(ctx, 100); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.HandleText(ctx, 100, "Aziz"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.HandleContact(ctx, 100, "+998900000000"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.HandleText(ctx, 100, "Somewhere"); err != nil {
		t.Fatal(err)
	}
	order, err := svc.Complete(ctx, 100, models.PaymentCash)
	if err != nil {
		t.Fatal(err)
	}

	products.byID[1].Price = 450

	stored, err := orders.ByID(ctx, order.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Total != 45 || stored.Items[0].Price != 45 {
		t.Fatalf("snapshot changed: total=%d price=%d", stored.Total, stored.Items[0].Price)
	}
}

const adminID = int64(999)

func TestOrderStatusForbidden(t *testing.T) {
	ctx := context.Background()
	store := newFakeOrders()
	id, err := store.Create(ctx, &models.Order{UserID: 100, Status: models.OrderStatusNew})
	if err != nil {
		t.Fatal(err)
	}

	svc := NewOrders(store, adminID)
	_, err = svc.Accept(ctx, 100, id)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
	if store.byID[id].Status != models.OrderStatusNew {
		t.Fatalf("status changed to %q", store.byID[id].Status)
	}
}

func TestOrderStatusLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newFakeOrders()
	id, err := store.Create(ctx, &models.Order{UserID: 100, Status: models.OrderStatusNew})
	if err != nil {
		t.Fatal(err)
	}
	svc := NewOrders(store, adminID)

	order, err := svc.Accept(ctx, adminID, id)
	if err != nil {
		t.Fatal(err)
	}
	if order.Status != models.OrderStatusAccepted {
		t.Fatalf("status = %q, want accepted", order.Status)
	}

	// Shipping straight from new is allowed as well.
	id2, err := store.Create(ctx, &models.Order{UserID: 101, Status: models.OrderStatusNew})
	if err != nil {
		t.Fatal(err)
	}
	order, err = svc.MarkShipped(ctx, adminID, id2)
	if err != nil {
		t.Fatal(err)
	}
	if order.Status != models.OrderStatusShipped {
		t.Fatalf("status = %q, want shipped", order.Status)
	}
}

func TestOrderStatusNotFound(t *testing.T) {
	svc := NewOrders(newFakeOrders(), adminID)
	_, err := svc.Accept(context.Background(), adminID, 12345)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("err = %v, want ErrOrderNotFound", err)
	}
}

func TestOrdersRecentForbidden(t *testing.T) {
	svc := NewOrders(newFakeOrders(), adminID)
	_, err := svc.Recent(context.Background(), 100, 20)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}
