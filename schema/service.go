package schema

type ServiceType string

const (
	ServiceElectrician ServiceType = "electrician"
	ServicePlumber     ServiceType = "plumber"
	ServiceCarpenter   ServiceType = "carpenter"
	ServicePainter     ServiceType = "painter"
	ServiceCleaner     ServiceType = "cleaner"
	ServiceGardener    ServiceType = "gardener"
	ServiceHandyman    ServiceType = "handyman"
	ServiceOther       ServiceType = "other"
)

type ServiceInfo struct {
	Type        ServiceType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
}

// Services is the catalog of service types a client can request.
var Services = []ServiceInfo{
	{ServiceElectrician, "Electrician", "Electrical repairs, installations, and maintenance"},
	{ServicePlumber, "Plumber", "Plumbing repairs, installations, and maintenance"},
	{ServiceCarpenter, "Carpenter", "Woodworking, furniture repairs, and installations"},
	{ServicePainter, "Painter", "Interior and exterior painting services"},
	{ServiceCleaner, "Cleaner", "Home cleaning and organization services"},
	{ServiceGardener, "Gardener", "Garden maintenance, landscaping, and plant care"},
	{ServiceHandyman, "Handyman", "General home repairs and maintenance"},
	{ServiceOther, "Other", "Other home services"},
}

// ValidServiceType reports whether t is a known service type.
func ValidServiceType(t ServiceType) bool {
	for _, s := range Services {
		if s.Type == t {
			return true
		}
	}
	return false
}
