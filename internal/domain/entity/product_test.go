package entity

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestNewProductHasNoID(t *testing.T) {
	product := Product{
		Name:        "Fedora",
		Description: "A red hat",
		Price:       decimal.NewFromFloat(12.50),
		Available:   true,
		Category:    CategoryCloths,
	}

	if product.Persisted() {
		t.Error("unpersisted product should not report an identifier")
	}
	if product.ID != uuid.Nil {
		t.Errorf("unpersisted product should have nil ID, got %s", product.ID)
	}
	if got := product.String(); got != "<Product Fedora id=[None]>" {
		t.Errorf("unexpected string representation: %s", got)
	}
	if product.Name != "Fedora" || product.Description != "A red hat" {
		t.Errorf("unexpected fields: %+v", product)
	}
	if !product.Price.Equal(decimal.NewFromFloat(12.50)) {
		t.Errorf("unexpected price: %s", product.Price)
	}
	if !product.Available || product.Category != CategoryCloths {
		t.Errorf("unexpected fields: %+v", product)
	}
}

func TestProductStringWithID(t *testing.T) {
	id := uuid.New()
	product := Product{ID: id, Name: "Fedora"}

	want := fmt.Sprintf("<Product Fedora id=[%s]>", id)
	if got := product.String(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if !product.Persisted() {
		t.Error("product with ID should report as persisted")
	}
}

func TestParseCategory(t *testing.T) {
	cases := map[string]Category{
		"FOOD":       CategoryFood,
		"food":       CategoryFood,
		" tools ":    CategoryTools,
		"CLOTHS":     CategoryCloths,
		"AUTOMOTIVE": CategoryAutomotive,
		"GADGETS":    CategoryUnknown,
		"":           CategoryUnknown,
	}

	for input, want := range cases {
		if got := ParseCategory(input); got != want {
			t.Errorf("ParseCategory(%q) = %s, want %s", input, got, want)
		}
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories() {
		if !c.Valid() {
			t.Errorf("category %s should be valid", c)
		}
	}
	if Category("GADGETS").Valid() {
		t.Error("unknown category name should not be valid")
	}
}
