package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"googlemaps.github.io/maps"
)

func result(components []maps.AddressComponent, formatted string) maps.GeocodingResult {
	return maps.GeocodingResult{
		AddressComponents: components,
		FormattedAddress:  formatted,
	}
}

func TestAddressNamePrefersSublocality(t *testing.T) {
	addr := ReadAddress([]maps.GeocodingResult{result([]maps.AddressComponent{
		{LongName: "Palermo", Types: []string{"sublocality", "political"}},
		{LongName: "Buenos Aires", Types: []string{"locality", "political"}},
		{LongName: "Av. Santa Fe", Types: []string{"route"}},
		{LongName: "Argentina", Types: []string{"country", "political"}},
		{LongName: "C1425", Types: []string{"postal_code"}},
	}, "Av. Santa Fe 3253, Buenos Aires, Argentina")})

	assert.Equal(t, "Palermo", addr.Name)
	assert.Equal(t, "Av. Santa Fe", addr.Street)
	assert.Equal(t, "Buenos Aires", addr.City)
	assert.Equal(t, "Argentina", addr.Country)
	assert.Equal(t, "C1425", addr.PostalCode)
}

func TestAddressNameFallsBackToLocality(t *testing.T) {
	addr := ReadAddress([]maps.GeocodingResult{result([]maps.AddressComponent{
		{LongName: "Buenos Aires", Types: []string{"locality", "political"}},
		{LongName: "Av. Santa Fe", Types: []string{"route"}},
	}, "Av. Santa Fe 3253, Buenos Aires")})

	assert.Equal(t, "Buenos Aires", addr.Name)
}

func TestAddressNameFallsBackToRoute(t *testing.T) {
	addr := ReadAddress([]maps.GeocodingResult{result([]maps.AddressComponent{
		{LongName: "Av. Santa Fe", Types: []string{"route"}},
	}, "Av. Santa Fe 3253")})

	assert.Equal(t, "Av. Santa Fe", addr.Name)
}

func TestAddressNameFallsBackToFormattedPrefix(t *testing.T) {
	addr := ReadAddress([]maps.GeocodingResult{result(nil, "Somewhere remote, Nowhere")})

	assert.Equal(t, "Somewhere remote", addr.Name)
}

func TestAddressEmptyResults(t *testing.T) {
	assert.Nil(t, ReadAddress(nil))
}
