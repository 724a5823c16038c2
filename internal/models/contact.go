package models

type SkillLevel string

const (
	SkillRecreational SkillLevel = "recreational"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

type PlayFrequency string

const (
	FrequencyOccasional PlayFrequency = "occasional"
	FrequencyRegular    PlayFrequency = "regular"
	FrequencyAvid       PlayFrequency = "avid"
)

// CoursePlayRecord marks one course played together with a contact.
type CoursePlayRecord struct {
	CourseID string `json:"courseId"`
	Date     string `json:"date,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// MemberConnection records that a contact knows a member at some course.
type MemberConnection struct {
	CourseID         string `json:"courseId"`
	MemberName       string `json:"memberName,omitempty"`
	MemberContactID  string `json:"memberContactId,omitempty"`
	RelationshipNote string `json:"relationshipNote,omitempty"`
}

// GolfBuddy is a golf contact.
type GolfBuddy struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Nickname  string `json:"nickname,omitempty"`

	HomeCity    string `json:"homeCity"`
	HomeState   string `json:"homeState"`
	HomeCountry string `json:"homeCountry,omitempty"`

	SkillLevel     SkillLevel    `json:"skillLevel"`
	PlayFrequency  PlayFrequency `json:"playFrequency"`
	ApproximateAge *int          `json:"approximateAge,omitempty"`
	Handicap       *float64      `json:"handicap,omitempty"`

	// Despite the name these are COURSE ids, kept that way to match how the
	// field has always been populated and queried.
	MemberClubs []string `json:"memberClubs"`

	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`

	HasPlayedWith bool `json:"hasPlayedWith"`
	WouldPlayWith bool `json:"wouldPlayWith"`

	CoursesPlayedTogether []CoursePlayRecord `json:"coursesPlayedTogether"`
	KnowsMemberAt         []MemberConnection `json:"knowsMemberAt"`

	Notes string `json:"notes,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (b *GolfBuddy) RecordID() string { return b.ID }
func (b *GolfBuddy) Touch(now string) { b.UpdatedAt = now }

// GolfBuddyPatch is a partial update; nil fields are left unchanged.
type GolfBuddyPatch struct {
	FirstName             *string
	LastName              *string
	Nickname              *string
	HomeCity              *string
	HomeState             *string
	HomeCountry           *string
	SkillLevel            *SkillLevel
	PlayFrequency         *PlayFrequency
	ApproximateAge        *int
	Handicap              *float64
	MemberClubs           []string
	Phone                 *string
	Email                 *string
	HasPlayedWith         *bool
	WouldPlayWith         *bool
	CoursesPlayedTogether []CoursePlayRecord
	KnowsMemberAt         []MemberConnection
	Notes                 *string
}

func (p GolfBuddyPatch) Apply(b *GolfBuddy) {
	if p.FirstName != nil {
		b.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		b.LastName = *p.LastName
	}
	if p.Nickname != nil {
		b.Nickname = *p.Nickname
	}
	if p.HomeCity != nil {
		b.HomeCity = *p.HomeCity
	}
	if p.HomeState != nil {
		b.HomeState = *p.HomeState
	}
	if p.HomeCountry != nil {
		b.HomeCountry = *p.HomeCountry
	}
	if p.SkillLevel != nil {
		b.SkillLevel = *p.SkillLevel
	}
	if p.PlayFrequency != nil {
		b.PlayFrequency = *p.PlayFrequency
	}
	if p.ApproximateAge != nil {
		b.ApproximateAge = p.ApproximateAge
	}
	if p.Handicap != nil {
		b.Handicap = p.Handicap
	}
	if p.MemberClubs != nil {
		b.MemberClubs = p.MemberClubs
	}
	if p.Phone != nil {
		b.Phone = *p.Phone
	}
	if p.Email != nil {
		b.Email = *p.Email
	}
	if p.HasPlayedWith != nil {
		b.HasPlayedWith = *p.HasPlayedWith
	}
	if p.WouldPlayWith != nil {
		b.WouldPlayWith = *p.WouldPlayWith
	}
	if p.CoursesPlayedTogether != nil {
		b.CoursesPlayedTogether = p.CoursesPlayedTogether
	}
	if p.KnowsMemberAt != nil {
		b.KnowsMemberAt = p.KnowsMemberAt
	}
	if p.Notes != nil {
		b.Notes = *p.Notes
	}
}
