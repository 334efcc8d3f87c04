package remote

import (
	"path"
	"strconv"
	"strings"
)

// NamedResource is the {name, url} pair the reference API uses for links.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// BerryRef is one entry of the paged berry listing.
type BerryRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ID extracts the numeric identifier from the resource URL, or 0.
func (b BerryRef) ID() int {
	trimmed := strings.TrimRight(strings.TrimSpace(b.URL), "/")
	if trimmed == "" {
		return 0
	}
	id, err := strconv.Atoi(path.Base(trimmed))
	if err != nil {
		return 0
	}
	return id
}

// BerryPage mirrors the paged list endpoint.
type BerryPage struct {
	Count    int        `json:"count"`
	Next     string     `json:"next"`
	Previous string     `json:"previous"`
	Results  []BerryRef `json:"results"`
}

// BerryFlavor is one flavor and its potency.
type BerryFlavor struct {
	Flavor  NamedResource `json:"flavor"`
	Potency int           `json:"potency"`
}

// BerryDetail mirrors the detail endpoint. It is fetched on demand and never
// persisted.
type BerryDetail struct {
	ID               int            `json:"id"`
	Name             string         `json:"name"`
	GrowthTime       int            `json:"growth_time"`
	MaxHarvest       int            `json:"max_harvest"`
	NaturalGiftPower int            `json:"natural_gift_power"`
	Size             int            `json:"size"`
	Smoothness       int            `json:"smoothness"`
	SoilDryness      int            `json:"soil_dryness"`
	Firmness         *NamedResource `json:"firmness"`
	Flavors          []BerryFlavor  `json:"flavors"`
	Item             NamedResource  `json:"item"`
	NaturalGiftType  *NamedResource `json:"natural_gift_type"`
}

// FirmnessName returns the firmness or "" when the API sent null.
func (d BerryDetail) FirmnessName() string {
	if d.Firmness == nil {
		return ""
	}
	return d.Firmness.Name
}

// GiftTypeName returns the natural gift type or "" when the API sent null.
func (d BerryDetail) GiftTypeName() string {
	if d.NaturalGiftType == nil {
		return ""
	}
	return d.NaturalGiftType.Name
}

// StrongFlavors returns flavors with a positive potency, in API order.
func (d BerryDetail) StrongFlavors() []BerryFlavor {
	var out []BerryFlavor
	for _, f := range d.Flavors {
		if f.Potency > 0 {
			out = append(out, f)
		}
	}
	return out
}
