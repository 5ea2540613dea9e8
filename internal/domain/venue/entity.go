package venue

// Status of a venue listing
type Status string

const (
	StatusAvailable    Status = "available"
	StatusConstruction Status = "construction"
)

// Venue is a wedding venue listing
type Venue struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Capacity    int      `json:"capacity"`
	Price       string   `json:"price"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Status      Status   `json:"status"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}
