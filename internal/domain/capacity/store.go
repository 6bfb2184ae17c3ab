package capacity

import (
	"fmt"
	"math"
	"sync"
)

// Store is an in-memory resource census for the hospital network. In
// production this would front a live hospital management system; here it is
// seeded with a realistic default topology and mutated by admissions and
// discharges.
type Store struct {
	mu        sync.RWMutex
	hospitals []Hospital
}

const occupancyAlertThreshold = 85

// DefaultPrimaryID is the hospital admissions and discharges target when no
// facility is specified.
const DefaultPrimaryID = "HOSP-001"

// NewStore returns a store seeded with the default network topology.
func NewStore() *Store {
	return &Store{hospitals: defaultTopology()}
}

func defaultTopology() []Hospital {
	return []Hospital{
		{
			ID:         "HOSP-001",
			Name:       "City General Hospital",
			IsPrimary:  true,
			DistanceKm: 0,
			Departments: map[string]DepartmentResources{
				"Emergency":        {BedsTotal: 20, BedsAvailable: 8, Ventilators: 5, Monitors: 15, StaffOnDuty: 12},
				"Cardiology":       {BedsTotal: 15, BedsAvailable: 5, Ventilators: 3, Monitors: 12, StaffOnDuty: 8},
				"Neurology":        {BedsTotal: 12, BedsAvailable: 4, Ventilators: 2, Monitors: 10, StaffOnDuty: 6},
				"Pulmonology":      {BedsTotal: 10, BedsAvailable: 3, Ventilators: 6, Monitors: 8, StaffOnDuty: 5},
				"Gastroenterology": {BedsTotal: 8, BedsAvailable: 4, Ventilators: 0, Monitors: 6, StaffOnDuty: 4},
				"General Medicine": {BedsTotal: 30, BedsAvailable: 14, Ventilators: 2, Monitors: 20, StaffOnDuty: 15},
				"Orthopedics":      {BedsTotal: 10, BedsAvailable: 6, Ventilators: 0, Monitors: 5, StaffOnDuty: 5},
				"Dermatology":      {BedsTotal: 5, BedsAvailable: 4, Ventilators: 0, Monitors: 2, StaffOnDuty: 3},
			},
		},
		{
			ID:         "HOSP-002",
			Name:       "St. Mary's Medical Center",
			IsPrimary:  false,
			DistanceKm: 3.2,
			Departments: map[string]DepartmentResources{
				"Emergency":        {BedsTotal: 15, BedsAvailable: 6, Ventilators: 4, Monitors: 12, StaffOnDuty: 10},
				"Cardiology":       {BedsTotal: 12, BedsAvailable: 7, Ventilators: 3, Monitors: 10, StaffOnDuty: 7},
				"Neurology":        {BedsTotal: 8, BedsAvailable: 5, Ventilators: 2, Monitors: 6, StaffOnDuty: 4},
				"Pulmonology":      {BedsTotal: 8, BedsAvailable: 4, Ventilators: 5, Monitors: 6, StaffOnDuty: 4},
				"General Medicine": {BedsTotal: 25, BedsAvailable: 12, Ventilators: 2, Monitors: 15, StaffOnDuty: 10},
			},
		},
		{
			ID:         "HOSP-003",
			Name:       "Regional Trauma Center",
			IsPrimary:  false,
			DistanceKm: 7.5,
			Departments: map[string]DepartmentResources{
				"Emergency":   {BedsTotal: 30, BedsAvailable: 15, Ventilators: 10, Monitors: 25, StaffOnDuty: 20},
				"Cardiology":  {BedsTotal: 10, BedsAvailable: 6, Ventilators: 2, Monitors: 8, StaffOnDuty: 5},
				"Neurology":   {BedsTotal: 10, BedsAvailable: 7, Ventilators: 3, Monitors: 8, StaffOnDuty: 5},
				"Pulmonology": {BedsTotal: 12, BedsAvailable: 8, Ventilators: 8, Monitors: 10, StaffOnDuty: 6},
			},
		},
	}
}

// Snapshot returns a deep copy of the whole network state.
func (s *Store) Snapshot() []Hospital {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Hospital, len(s.hospitals))
	for i, h := range s.hospitals {
		out[i] = copyHospital(h)
	}
	return out
}

// PrimaryHospital returns a deep copy of the primary facility.
func (s *Store) PrimaryHospital() Hospital {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyHospital(*s.primaryLocked())
}

func (s *Store) primaryLocked() *Hospital {
	for i := range s.hospitals {
		if s.hospitals[i].IsPrimary {
			return &s.hospitals[i]
		}
	}
	return &s.hospitals[0]
}

// Check reports whether the primary hospital can take a patient in the
// given department and, when it cannot (or is nearly full), lists nearby
// alternatives with open beds.
func (s *Store) Check(department string) Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	primary := s.primaryLocked()
	res, exists := primary.Departments[department]

	var available bool
	var occupancy, beds int
	if !exists {
		occupancy = 100
	} else {
		available = res.BedsAvailable > 0
		beds = res.BedsAvailable
		total := res.BedsTotal
		if total < 1 {
			total = 1
		}
		occupancy = int(math.Round((1 - float64(res.BedsAvailable)/float64(total)) * 100))
	}

	var alternatives []Alternative
	if !available || occupancy > occupancyAlertThreshold {
		for _, h := range s.hospitals {
			if h.IsPrimary {
				continue
			}
			if alt, ok := h.Departments[department]; ok && alt.BedsAvailable > 0 {
				alternatives = append(alternatives, Alternative{
					Hospital:      h.Name,
					HospitalID:    h.ID,
					DistanceKm:    h.DistanceKm,
					BedsAvailable: alt.BedsAvailable,
					Ventilators:   alt.Ventilators,
				})
			}
		}
	}

	status := StatusAvailable
	if !available {
		status = StatusFull
	} else if occupancy > occupancyAlertThreshold {
		status = StatusNearCapacity
	}

	recommendation := fmt.Sprintf("Capacity is adequate in %s.", department)
	if status != StatusAvailable {
		state := "near capacity"
		if status == StatusFull {
			state = "full"
		}
		recommendation = fmt.Sprintf("%s is %s. %d alternative(s) found nearby.", department, state, len(alternatives))
	}

	return Status{
		Department:       department,
		Status:           status,
		OccupancyPercent: occupancy,
		BedsAvailable:    beds,
		Alternatives:     alternatives,
		Recommendation:   recommendation,
	}
}

// Admit reserves one bed in the department. Returns false when the hospital
// or department is unknown, or no beds remain.
func (s *Store) Admit(department, hospitalID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.hospitals {
		if s.hospitals[i].ID != hospitalID {
			continue
		}
		if res, ok := s.hospitals[i].Departments[department]; ok && res.BedsAvailable > 0 {
			res.BedsAvailable--
			s.hospitals[i].Departments[department] = res
			return true
		}
	}
	return false
}

// Discharge releases one bed in the department. Returns false when the
// hospital or department is unknown, or the department is already empty.
func (s *Store) Discharge(department, hospitalID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.hospitals {
		if s.hospitals[i].ID != hospitalID {
			continue
		}
		if res, ok := s.hospitals[i].Departments[department]; ok && res.BedsAvailable < res.BedsTotal {
			res.BedsAvailable++
			s.hospitals[i].Departments[department] = res
			return true
		}
	}
	return false
}

func copyHospital(h Hospital) Hospital {
	depts := make(map[string]DepartmentResources, len(h.Departments))
	for name, res := range h.Departments {
		depts[name] = res
	}
	h.Departments = depts
	return h
}
