package utils

import (
	"strings"

	"googlemaps.github.io/maps"
)

// Address is the reverse-geocoded label of a coordinate pair.
type Address struct {
	Name             string `json:"name"`
	FormattedAddress string `json:"formatted_address"`
	Street           string `json:"street,omitempty"`
	City             string `json:"city,omitempty"`
	Country          string `json:"country,omitempty"`
	PostalCode       string `json:"postal_code,omitempty"`
}

// ReadAddress extracts a display address from geocoding results. The name
// prefers the most specific component: sublocality, then locality, then
// route, then the first segment of the formatted address.
func ReadAddress(results []maps.GeocodingResult) *Address {
	if len(results) == 0 {
		return nil
	}

	result := results[0]

	var locality, subLocality, route, country, postalCode string
	for _, c := range result.AddressComponents {
		for _, t := range c.Types {
			switch t {
			case "locality":
				locality = c.LongName
			case "sublocality":
				subLocality = c.LongName
			case "route":
				route = c.LongName
			case "country":
				country = c.LongName
			case "postal_code":
				postalCode = c.LongName
			}
		}
	}

	name := subLocality
	if name == "" {
		name = locality
	}
	if name == "" {
		name = route
	}
	if name == "" {
		name = strings.SplitN(result.FormattedAddress, ",", 2)[0]
	}

	return &Address{
		Name:             name,
		FormattedAddress: result.FormattedAddress,
		Street:           route,
		City:             locality,
		Country:          country,
		PostalCode:       postalCode,
	}
}
