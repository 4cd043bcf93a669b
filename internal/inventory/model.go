// internal/inventory/model.go
package inventory

// Car is one rentable vehicle as stored in the fleet table. Records are
// read-only from the assistant's perspective.
type Car struct {
	ID        int     `json:"id"`
	Brand     string  `json:"brand"`
	Model     string  `json:"model"`
	Category  string  `json:"category"`
	DailyRate float64 `json:"dailyRate"`
	Seats     int     `json:"seats"`
	FuelType  string  `json:"fuelType"`
	Available bool    `json:"available"`
}

// CompanyInfo is the company name plus the single knowledge text that the
// company-questions flow is constrained to.
type CompanyInfo struct {
	Name string `json:"name"`
	Info string `json:"info"`
}
