package capacity

// DepartmentResources is the live resource census for one department at one
// hospital.
type DepartmentResources struct {
	BedsTotal     int `json:"beds_total"`
	BedsAvailable int `json:"beds_available"`
	Ventilators   int `json:"ventilators"`
	Monitors      int `json:"monitors"`
	StaffOnDuty   int `json:"staff_on_duty"`
}

// Hospital is one facility in the referral network.
type Hospital struct {
	ID          string                         `json:"hospital_id"`
	Name        string                         `json:"name"`
	IsPrimary   bool                           `json:"is_primary"`
	DistanceKm  float64                        `json:"distance_km"`
	Departments map[string]DepartmentResources `json:"departments"`
}

// Alternative is a nearby non-primary facility with open beds in the
// requested department.
type Alternative struct {
	Hospital      string  `json:"hospital"`
	HospitalID    string  `json:"hospital_id"`
	DistanceKm    float64 `json:"distance_km"`
	BedsAvailable int     `json:"beds_available"`
	Ventilators   int     `json:"ventilators"`
}

// Status is the capacity check result for a department at the primary
// hospital. Status is "available", "near_capacity" (occupancy above 85%),
// or "full".
type Status struct {
	Department       string        `json:"department"`
	Status           string        `json:"status"`
	OccupancyPercent int           `json:"occupancy_percent"`
	BedsAvailable    int           `json:"beds_available"`
	Alternatives     []Alternative `json:"alternatives"`
	Recommendation   string        `json:"recommendation"`
}

const (
	StatusAvailable    = "available"
	StatusNearCapacity = "near_capacity"
	StatusFull         = "full"
)
