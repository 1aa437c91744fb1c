package schema

const (
	ProfileCollection = "profile"
)

// Profile is the discoverable mirror of a provider account. It only exists
// for providers and backs the nearby-provider geo queries.
type Profile struct {
	AccountNumber string      `json:"id" bson:"account_number"`
	ServiceType   ServiceType `json:"service_type" bson:"service_type"`
	IsAvailable   bool        `json:"is_available" bson:"is_available"`
	Location      *GeoJSON    `json:"location,omitempty" bson:"location,omitempty"`
}

// GeoJSON - mongo location format
type GeoJSON struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}
