package models

// GuestRecord is one guest visit under the user's membership. Guest history
// is append-only.
type GuestRecord struct {
	ID             string `json:"id"`
	ContactID      string `json:"contactId,omitempty"`
	GuestName      string `json:"guestName"`
	Date           string `json:"date"`
	PlayedWithUser bool   `json:"playedWithUser"`
	Notes          string `json:"notes,omitempty"`
}

// SponsoredGuest is someone authorized to play in the user's name without
// the user present. Sponsored guests are deactivated, never deleted.
type SponsoredGuest struct {
	ID             string `json:"id"`
	ContactID      string `json:"contactId,omitempty"`
	GuestName      string `json:"guestName"`
	AuthorizedDate string `json:"authorizedDate"`
	ExpirationDate string `json:"expirationDate,omitempty"`
	TimesUsed      int    `json:"timesUsed"`
	LastUsedDate   string `json:"lastUsedDate,omitempty"`
	IsActive       bool   `json:"isActive"`
	Notes          string `json:"notes,omitempty"`
}

// UserMembership is the user's own membership at one course/club, distinct
// from the play-history record for that course.
type UserMembership struct {
	ID             string `json:"id"`
	CourseID       string `json:"courseId"`
	CourseName     string `json:"courseName"`
	ClubName       string `json:"clubName"`
	MemberSince    string `json:"memberSince"`
	MemberNumber   string `json:"memberNumber,omitempty"`
	MembershipType string `json:"membershipType,omitempty"`

	RegularPlayingPartners []string `json:"regularPlayingPartners"`

	GuestHistory    []GuestRecord    `json:"guestHistory"`
	SponsoredGuests []SponsoredGuest `json:"sponsoredGuests"`

	Notes string `json:"notes,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (m *UserMembership) RecordID() string { return m.ID }
func (m *UserMembership) Touch(now string) { m.UpdatedAt = now }

// UserMembershipPatch is a partial update; nil fields are left unchanged.
type UserMembershipPatch struct {
	MemberSince            *string
	MemberNumber           *string
	MembershipType         *string
	RegularPlayingPartners []string
	GuestHistory           []GuestRecord
	SponsoredGuests        []SponsoredGuest
	Notes                  *string
}

func (p UserMembershipPatch) Apply(m *UserMembership) {
	if p.MemberSince != nil {
		m.MemberSince = *p.MemberSince
	}
	if p.MemberNumber != nil {
		m.MemberNumber = *p.MemberNumber
	}
	if p.MembershipType != nil {
		m.MembershipType = *p.MembershipType
	}
	if p.RegularPlayingPartners != nil {
		m.RegularPlayingPartners = p.RegularPlayingPartners
	}
	if p.GuestHistory != nil {
		m.GuestHistory = p.GuestHistory
	}
	if p.SponsoredGuests != nil {
		m.SponsoredGuests = p.SponsoredGuests
	}
	if p.Notes != nil {
		m.Notes = *p.Notes
	}
}

// MembershipStats summarizes guest activity for one membership.
type MembershipStats struct {
	TotalGuestsHosted     int `json:"totalGuestsHosted"`
	UniqueGuestsHosted    int `json:"uniqueGuestsHosted"`
	TotalSponsoredGuests  int `json:"totalSponsoredGuests"`
	ActiveSponsoredGuests int `json:"activeSponsoredGuests"`
}

// CalculateMembershipStats derives guest stats from a membership record.
func CalculateMembershipStats(m *UserMembership) MembershipStats {
	unique := make(map[string]bool)
	for _, g := range m.GuestHistory {
		unique[g.GuestName] = true
	}

	active := 0
	for _, g := range m.SponsoredGuests {
		if g.IsActive {
			active++
		}
	}

	return MembershipStats{
		TotalGuestsHosted:     len(m.GuestHistory),
		UniqueGuestsHosted:    len(unique),
		TotalSponsoredGuests:  len(m.SponsoredGuests),
		ActiveSponsoredGuests: active,
	}
}
