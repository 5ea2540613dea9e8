package venue

// DefaultPrice is used when a venue id has no price on record
const DefaultPrice = "$2,000"

// Catalog is the static venue listing. Venue onboarding is manual, so the
// catalog is compiled in rather than stored.
type Catalog struct {
	venues []Venue
}

// NewCatalog creates the catalog with the curated Kigali venues
func NewCatalog() *Catalog {
	return &Catalog{venues: kigaliVenues}
}

// List returns all venues
func (c *Catalog) List() []Venue {
	out := make([]Venue, len(c.venues))
	copy(out, c.venues)
	return out
}

// GetByID returns the venue with the given id, or nil when unknown
func (c *Catalog) GetByID(id int) *Venue {
	for i := range c.venues {
		if c.venues[i].ID == id {
			v := c.venues[i]
			return &v
		}
	}
	return nil
}

// PriceFor returns the venue price, falling back to DefaultPrice for
// unknown ids
func (c *Catalog) PriceFor(venueID int) string {
	if v := c.GetByID(venueID); v != nil {
		return v.Price
	}
	return DefaultPrice
}

var kigaliVenues = []Venue{
	{
		ID:          1,
		Name:        "Kigali Serena Hotel",
		Location:    "Kiyovu, Kigali",
		Capacity:    300,
		Price:       "$2,500",
		Rating:      4.8,
		Reviews:     124,
		Status:      StatusAvailable,
		Description: "Elegant ballroom with panoramic city views and professional service",
		Features:    []string{"Air Conditioning", "Bridal Suite", "Garden Space", "Professional Lighting"},
	},
	{
		ID:          2,
		Name:        "Ubumwe Grande Hotel",
		Location:    "Kimihurura, Kigali",
		Capacity:    200,
		Price:       "$1,800",
		Rating:      4.6,
		Reviews:     89,
		Status:      StatusAvailable,
		Description: "Modern venue with beautiful garden setting and intimate atmosphere",
		Features:    []string{"Garden Ceremony", "Modern Facilities", "Catering Kitchen", "Parking"},
	},
	{
		ID:          3,
		Name:        "Lemigo Hotel",
		Location:    "Nyarutarama, Kigali",
		Capacity:    250,
		Price:       "$2,200",
		Rating:      4.7,
		Reviews:     156,
		Status:      StatusConstruction,
		Description: "Luxury venue with stunning lake views (Currently under renovation)",
		Features:    []string{"Lake Views", "Luxury Amenities", "Waterfront Ceremony", "Premium Service"},
	},
	{
		ID:          4,
		Name:        "Marriott Hotel Kigali",
		Location:    "City Center, Kigali",
		Capacity:    400,
		Price:       "$3,000",
		Rating:      4.9,
		Reviews:     203,
		Status:      StatusAvailable,
		Description: "Premium venue in the heart of Kigali with world-class facilities",
		Features:    []string{"City Center", "Premium Service", "Large Capacity", "Modern Facilities"},
	},
}
