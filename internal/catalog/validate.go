package catalog

import (
	"sort"
	"strings"
)

// Field names used in validation errors. They match the form field keys.
const (
	FieldTitle       = "title"
	FieldPrice       = "price"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldImage       = "image"
	FieldRatingRate  = "rating.rate"
	FieldRatingCount = "rating.count"
)

// ValidationError collects per-field problems found before a product reaches
// the store.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "invalid product"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid product: " + strings.Join(parts, "; ")
}

// Field returns the message for a field, or "" when it passed.
func (e *ValidationError) Field(name string) string {
	if e == nil {
		return ""
	}
	return e.Fields[name]
}

// Add records a message for a field, keeping the first one reported.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; ok {
		return
	}
	e.Fields[field] = msg
}

// Validate applies the presence and range checks of the product form.
func Validate(p Product) error {
	verr := &ValidationError{}
	if strings.TrimSpace(p.Title) == "" {
		verr.Add(FieldTitle, "Please enter name for this product")
	}
	if p.Price < 1 {
		verr.Add(FieldPrice, "Please enter the price for this product")
	}
	if strings.TrimSpace(p.Description) == "" {
		verr.Add(FieldDescription, "Please enter description for this product")
	}
	if strings.TrimSpace(p.Category) == "" {
		verr.Add(FieldCategory, "Please enter category for this product")
	}
	if strings.TrimSpace(p.Image) == "" {
		verr.Add(FieldImage, "Please enter image for this product")
	}
	if p.Rating.Rate < 1 {
		verr.Add(FieldRatingRate, "Please enter rate for this product")
	}
	if p.Rating.Count < 1 {
		verr.Add(FieldRatingCount, "Please enter count for this product")
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}
