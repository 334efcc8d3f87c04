package catalog

import (
	"errors"
	"testing"
)

func validProduct() Product {
	return Product{
		Title:       "Mens Casual Slim Fit",
		Price:       15.99,
		Description: "The color could be slightly different",
		Category:    "men's clothing",
		Image:       "https://example.com/img.jpg",
		Rating:      Rating{Rate: 2.1, Count: 430},
	}
}

func TestValidate_AcceptsCompleteProduct(t *testing.T) {
	if err := Validate(validProduct()); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
}

func TestValidate_ReportsEachField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Product)
		field  string
	}{
		{"blank title", func(p *Product) { p.Title = "   " }, FieldTitle},
		{"zero price", func(p *Product) { p.Price = 0 }, FieldPrice},
		{"missing description", func(p *Product) { p.Description = "" }, FieldDescription},
		{"missing category", func(p *Product) { p.Category = "" }, FieldCategory},
		{"missing image", func(p *Product) { p.Image = "" }, FieldImage},
		{"low rate", func(p *Product) { p.Rating.Rate = 0.5 }, FieldRatingRate},
		{"zero count", func(p *Product) { p.Rating.Count = 0 }, FieldRatingCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mutate(&p)

			err := Validate(p)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate error = %v, want *ValidationError", err)
			}
			if len(verr.Fields) != 1 {
				t.Fatalf("Fields = %v, want exactly %q", verr.Fields, tt.field)
			}
			if verr.Field(tt.field) == "" {
				t.Fatalf("Field(%q) empty, fields = %v", tt.field, verr.Fields)
			}
		})
	}
}

func TestValidationError_MessageIsSorted(t *testing.T) {
	err := Validate(Product{})
	want := "invalid product: category: Please enter category for this product; " +
		"description: Please enter description for this product; " +
		"image: Please enter image for this product; " +
		"price: Please enter the price for this product; " +
		"rating.count: Please enter count for this product; " +
		"rating.rate: Please enter rate for this product; " +
		"title: Please enter name for this product"
	if err == nil || err.Error() != want {
		t.Fatalf("Error() = %v, want %q", err, want)
	}
}
