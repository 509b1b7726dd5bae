package service

import (
	"context"
	"errors"
	"testing"
)

func TestCatalogListByCategory(t *testing.T) {
	svc := NewCatalog(sampleCatalog(), nil)

	products, err := svc.ListByCategory(context.Background(), "cakes")
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 1 || products[0].ID != 1 {
		t.Fatalf("products = %+v", products)
	}

	empty, err := svc.ListByCategory(context.Background(), "pastries")
	if err != nil {
		t.Fatal(err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty category, got %+v", empty)
	}
}

func TestCatalogProductNotFound(t *testing.T) {
	svc := NewCatalog(sampleCatalog(), nil)
	_, err := svc.Product(context.Background(), 404)
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("err = %v, want ErrProductNotFound", err)
	}
}

func TestCatalogAddProduct(t *testing.T) {
	products := sampleCatalog()
	svc := NewCatalog(products, products)

	payload := `{"title":{"uz":"Yangi tort","en":"New cake"},"description":{"en":"Fresh"},"price":30,"category":"cakes","image":"https://example.com/p.jpg"}`
	p, err := svc.AddProduct(context.Background(), payload)
	if err != nil {
		t.Fatal(err)
	}
	if p.ID == 0 {
		t.Fatal("product id not assigned")
	}
	if !p.Available {
		t.Fatal("available should default to true")
	}

	stored, err := svc.Product(context.Background(), p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Price != 30 || stored.Category != "cakes" {
		t.Fatalf("stored = %+v", stored)
	}
}

func TestCatalogAddProductRespectsAvailableFalse(t *testing.T) {
	products := sampleCatalog()
	svc := NewCatalog(products, products)

	p, err := svc.AddProduct(context.Background(), `{"title":{"en":"Hidden"},"price":1,"category":"desserts","available":false}`)
	if err != nil {
		t.Fatal(err)
	}
	if p.Available {
		t.Fatal("explicit available=false should be kept")
	}
}

func TestCatalogAddProductMalformed(t *testing.T) {
	products := sampleCatalog()
	svc := NewCatalog(products, products)

	cases := []string{
		`not json at all`,
		`{"title":{},"price":5,"category":"cakes"}`,
		`{"title":{"en":"X"},"price":-1,"category":"cakes"}`,
		`{"title":{"en":"X"},"price":5,"category":"sandwiches"}`,
		`{"title":{"en":"X"},"price":5,"category":"cakes","bogus":true}`,
	}
	for _, payload := range cases {
		if _, err := svc.AddProduct(context.Background(), payload); !errors.Is(err, ErrMalformedInput) {
			t.Fatalf("payload %q: err = %v, want ErrMalformedInput", payload, err)
		}
	}
}
