package models

import (
	"encoding/json"
	"testing"
)

func TestLocalizedTextResolve(t *testing.T) {
	title := LocalizedText{"uz": "Shokoladli tort", "ru": "Шоколадный торт", "en": "Chocolate Cake"}

	if got := title.Resolve("ru", "uz"); got != "Шоколадный торт" {
		t.Fatalf("Resolve(ru) = %q", got)
	}
	if got := title.Resolve("de", "uz"); got != "Shokoladli tort" {
		t.Fatalf("Resolve(de) want uz fallback, got %q", got)
	}

	partial := LocalizedText{"en": "Caramel dessert"}
	if got := partial.Resolve("uz", "uz"); got != "Caramel dessert" {
		t.Fatalf("Resolve on partial map want any non-empty value, got %q", got)
	}

	var empty LocalizedText
	if got := empty.Resolve("uz", "uz"); got != "" {
		t.Fatalf("Resolve on empty map = %q, want empty", got)
	}
}

func TestLocalizedTextScan(t *testing.T) {
	var lt LocalizedText
	if err := lt.Scan([]byte(`{"uz":"Pishiriq","en":"Pastry"}`)); err != nil {
		t.Fatal(err)
	}
	if lt["en"] != "Pastry" {
		t.Fatalf("scanned map = %v", lt)
	}
	if err := lt.Scan(42); err == nil {
		t.Fatal("expected error scanning int")
	}
}

func TestCartAddMergesLines(t *testing.T) {
	cart := &Cart{UserID: 1}

	cart.Add(10)
	cart.Add(10)
	cart.Add(10)
	cart.Add(20)

	if len(cart.Items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(cart.Items))
	}
	if cart.Items[0].ProductID != 10 || cart.Items[0].Qty != 3 {
		t.Fatalf("first line = %+v, want product 10 qty 3", cart.Items[0])
	}
	if cart.Items[1].ProductID != 20 || cart.Items[1].Qty != 1 {
		t.Fatalf("second line = %+v, want product 20 qty 1", cart.Items[1])
	}
}

func TestCartIsEmpty(t *testing.T) {
	var nilCart *Cart
	if !nilCart.IsEmpty() {
		t.Fatal("nil cart should be empty")
	}
	cart := &Cart{UserID: 1}
	if !cart.IsEmpty() {
		t.Fatal("fresh cart should be empty")
	}
	cart.Add(1)
	if cart.IsEmpty() {
		t.Fatal("cart with a line should not be empty")
	}
}

func TestOrderItemsTotal(t *testing.T) {
	items := OrderItems{
		{ProductID: 1, Title: "Chocolate Cake", Price: 45, Qty: 2},
		{ProductID: 2, Title: "Caramel dessert", Price: 5, Qty: 1},
	}
	if got := items.Total(); got != 95 {
		t.Fatalf("Total() = %d, want 95", got)
	}
}

func TestOrderItemsRoundTrip(t *testing.T) {
	items := OrderItems{{ProductID: 7, Title: "Pastry (tartlet)", Price: 3, Qty: 4}}
	val, err := items.Value()
	if err != nil {
		t.Fatal(err)
	}
	var decoded OrderItems
	if err := decoded.Scan(val); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 1 || decoded[0].Title != "Pastry (tartlet)" || decoded[0].Qty != 4 {
		t.Fatalf("decoded = %+v", decoded)
	}
}

func TestParsePaymentMethod(t *testing.T) {
	if m, ok := ParsePaymentMethod("cash"); !ok || m != PaymentCash {
		t.Fatalf("cash parse = %v %v", m, ok)
	}
	if m, ok := ParsePaymentMethod("card"); !ok || m != PaymentCard {
		t.Fatalf("card parse = %v %v", m, ok)
	}
	if _, ok := ParsePaymentMethod("crypto"); ok {
		t.Fatal("crypto should not parse")
	}
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusNew, OrderStatusAccepted, OrderStatusShipped, OrderStatusCanceled} {
		if !s.Valid() {
			t.Fatalf("status %q should be valid", s)
		}
	}
	if OrderStatus("delivered").Valid() {
		t.Fatal("unknown status should be invalid")
	}
}

func TestProductJSONPayload(t *testing.T) {
	// Admin product insertion accepts the same JSON shape the seed uses.
	payload := `{"title":{"uz":"Tort","en":"Cake"},"description":{"en":"Rich"},"price":45,"category":"cakes","image":"https://example.com/cake.jpg","specialOptions":["Name on cake"],"available":true}`
	var p Product
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		t.Fatal(err)
	}
	if p.Price != 45 || p.Category != "cakes" {
		t.Fatalf("product = %+v", p)
	}
	if p.Image == nil || *p.Image == "" {
		t.Fatal("image should be set")
	}
	if len(p.SpecialOptions) != 1 {
		t.Fatalf("specialOptions = %v", p.SpecialOptions)
	}
}
