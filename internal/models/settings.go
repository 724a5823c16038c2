package models

// UserSettings is a single record, not a collection.
type UserSettings struct {
	HomeAirportCode string `json:"homeAirportCode,omitempty"`
	HomeAirportName string `json:"homeAirportName,omitempty"`
	HomeCity        string `json:"homeCity,omitempty"`
	HomeState       string `json:"homeState,omitempty"`
	PreferredUnits  string `json:"preferredUnits"` // imperial | metric
	Theme           string `json:"theme"`          // light | dark | system
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// UserSettingsPatch is a partial update; nil fields are left unchanged.
type UserSettingsPatch struct {
	HomeAirportCode *string
	HomeAirportName *string
	HomeCity        *string
	HomeState       *string
	PreferredUnits  *string
	Theme           *string
}

func (p UserSettingsPatch) Apply(s *UserSettings) {
	if p.HomeAirportCode != nil {
		s.HomeAirportCode = *p.HomeAirportCode
	}
	if p.HomeAirportName != nil {
		s.HomeAirportName = *p.HomeAirportName
	}
	if p.HomeCity != nil {
		s.HomeCity = *p.HomeCity
	}
	if p.HomeState != nil {
		s.HomeState = *p.HomeState
	}
	if p.PreferredUnits != nil {
		s.PreferredUnits = *p.PreferredUnits
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
}

// PlannedCourseVisit is one course on a trip itinerary.
type PlannedCourseVisit struct {
	CourseID    string `json:"courseId"`
	PlannedDate string `json:"plannedDate,omitempty"`
	TeeTime     string `json:"teeTime,omitempty"`
	Confirmed   bool   `json:"confirmed"`
	Notes       string `json:"notes,omitempty"`
}

// GolfTrip is a planned or past trip.
type GolfTrip struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	StartDate            string `json:"startDate"`
	EndDate              string `json:"endDate"`
	Destination          string `json:"destination"`
	IsGolfPrimaryPurpose bool   `json:"isGolfPrimaryPurpose"`

	PlannedCourses []PlannedCourseVisit `json:"plannedCourses"`

	TravelingWith []string `json:"travelingWith"` // contact ids

	Notes string `json:"notes,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (t *GolfTrip) RecordID() string { return t.ID }
func (t *GolfTrip) Touch(now string) { t.UpdatedAt = now }

// GolfTripPatch is a partial update; nil fields are left unchanged.
type GolfTripPatch struct {
	Name                 *string
	StartDate            *string
	EndDate              *string
	Destination          *string
	IsGolfPrimaryPurpose *bool
	PlannedCourses       []PlannedCourseVisit
	TravelingWith        []string
	Notes                *string
}

func (p GolfTripPatch) Apply(t *GolfTrip) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.StartDate != nil {
		t.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		t.EndDate = *p.EndDate
	}
	if p.Destination != nil {
		t.Destination = *p.Destination
	}
	if p.IsGolfPrimaryPurpose != nil {
		t.IsGolfPrimaryPurpose = *p.IsGolfPrimaryPurpose
	}
	if p.PlannedCourses != nil {
		t.PlannedCourses = p.PlannedCourses
	}
	if p.TravelingWith != nil {
		t.TravelingWith = p.TravelingWith
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
}
