package models

// Club is a facility that owns one or more courses, e.g. Winged Foot Golf
// Club (West + East) or Bandon Dunes Resort. Location, contact and travel
// data live here and are shared by every owned course.
type Club struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`

	CourseType CourseType `json:"courseType"`

	// Course IDs owned by this club, in import order.
	CourseIDs []string `json:"courseIds"`

	Address   string   `json:"address"`
	Phone     string   `json:"phone"`
	Website   string   `json:"website,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	ClosestPublicAirport  *AirportInfo `json:"closestPublicAirport,omitempty"`
	ClosestPrivateAirport *AirportInfo `json:"closestPrivateAirport,omitempty"`
	NearbyHotels          []Hotel      `json:"nearbyHotels"`
	NearbyRestaurants     []Restaurant `json:"nearbyRestaurants"`

	OptimalMonths []int  `json:"optimalMonths"`
	WeatherNotes  string `json:"weatherNotes,omitempty"`

	Ownership string   `json:"ownership,omitempty"`
	Founders  []string `json:"founders,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (c *Club) RecordID() string { return c.ID }
func (c *Club) Touch(now string) { c.UpdatedAt = now }

// ClubPatch is a partial update; nil fields are left unchanged.
type ClubPatch struct {
	Name          *string
	City          *string
	State         *string
	Country       *string
	CourseType    *CourseType
	CourseIDs     []string
	Address       *string
	Phone         *string
	Website       *string
	NearbyHotels  []Hotel
	OptimalMonths []int
	WeatherNotes  *string
	Ownership     *string
}

func (p ClubPatch) Apply(c *Club) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.City != nil {
		c.City = *p.City
	}
	if p.State != nil {
		c.State = *p.State
	}
	if p.Country != nil {
		c.Country = *p.Country
	}
	if p.CourseType != nil {
		c.CourseType = *p.CourseType
	}
	if p.CourseIDs != nil {
		c.CourseIDs = p.CourseIDs
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Website != nil {
		c.Website = *p.Website
	}
	if p.NearbyHotels != nil {
		c.NearbyHotels = p.NearbyHotels
	}
	if p.OptimalMonths != nil {
		c.OptimalMonths = p.OptimalMonths
	}
	if p.WeatherNotes != nil {
		c.WeatherNotes = *p.WeatherNotes
	}
	if p.Ownership != nil {
		c.Ownership = *p.Ownership
	}
}

// UserClubRecord is the user's personal data for one club, shared by all of
// the club's courses.
type UserClubRecord struct {
	ID     string `json:"id"`
	ClubID string `json:"clubId"`

	// Contact IDs of members the user knows at this club.
	KnownMembers               []string `json:"knownMembers"`
	KnowsSomeoneWhoKnowsMember string   `json:"knowsSomeoneWhoKnowsMember,omitempty"`

	ClubNotes string `json:"clubNotes,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (r *UserClubRecord) RecordID() string { return r.ID }
func (r *UserClubRecord) Touch(now string) { r.UpdatedAt = now }

// UserClubRecordPatch is a partial update; nil fields are left unchanged.
type UserClubRecordPatch struct {
	KnownMembers               []string
	KnowsSomeoneWhoKnowsMember *string
	ClubNotes                  *string
}

func (p UserClubRecordPatch) Apply(r *UserClubRecord) {
	if p.KnownMembers != nil {
		r.KnownMembers = p.KnownMembers
	}
	if p.KnowsSomeoneWhoKnowsMember != nil {
		r.KnowsSomeoneWhoKnowsMember = *p.KnowsSomeoneWhoKnowsMember
	}
	if p.ClubNotes != nil {
		r.ClubNotes = *p.ClubNotes
	}
}
