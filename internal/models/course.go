package models

// CourseType classifies access to a club or standalone course.
type CourseType string

const (
	CourseTypePublic      CourseType = "Public"
	CourseTypePrivate     CourseType = "Private"
	CourseTypeResort      CourseType = "Resort"
	CourseTypeSemiPrivate CourseType = "Semi-Private"
)

// TeeBox describes one set of tees on a course.
type TeeBox struct {
	Name         string   `json:"name"`
	Color        string   `json:"color,omitempty"`
	Yardage      int      `json:"yardage"`
	Par          int      `json:"par"`
	CourseRating *float64 `json:"courseRating,omitempty"`
	SlopeRating  *int     `json:"slopeRating,omitempty"`
}

// HoleInfo carries per-hole detail, yardages keyed by tee box name.
type HoleInfo struct {
	Number        int            `json:"number"`
	Par           int            `json:"par"`
	Yardages      map[string]int `json:"yardages"`
	HandicapIndex *int           `json:"handicapIndex,omitempty"`
	Nickname      string         `json:"nickname,omitempty"`
	Notes         string         `json:"notes,omitempty"`
}

// TournamentHosting is one entry in a course's major-tournament history.
type TournamentHosting struct {
	TournamentName string `json:"tournamentName"`
	Year           int    `json:"year"`
	IsFuture       bool   `json:"isFuture"`
}

// AirportInfo describes the closest airport to a club or course.
type AirportInfo struct {
	Code             string `json:"code"`
	Name             string `json:"name"`
	City             string `json:"city"`
	DistanceMiles    int    `json:"distanceMiles"`
	DriveTimeMinutes int    `json:"driveTimeMinutes"`
	IsPrivate        bool   `json:"isPrivate"`
}

type Hotel struct {
	Name          string  `json:"name"`
	Rating        int     `json:"rating"`
	DistanceMiles float64 `json:"distanceMiles"`
	PriceRange    string  `json:"priceRange"`
	Website       string  `json:"website,omitempty"`
	Phone         string  `json:"phone,omitempty"`
}

type Restaurant struct {
	Name          string  `json:"name"`
	Cuisine       string  `json:"cuisine"`
	Rating        int     `json:"rating"`
	PriceRange    string  `json:"priceRange"`
	DistanceMiles float64 `json:"distanceMiles"`
	Website       string  `json:"website,omitempty"`
	Phone         string  `json:"phone,omitempty"`
}

// Course is one playable layout. ClubID is empty for standalone courses;
// club-owned courses leave location, contact and travel fields unset and
// resolve them through the parent Club at read time.
type Course struct {
	ID       string `json:"id"`
	Name     string `json:"name"`     // course-specific name, e.g. "West"
	FullName string `json:"fullName"` // display name, e.g. "Winged Foot Golf Club: West"
	ClubID   string `json:"clubId,omitempty"`

	// Location (standalone courses only)
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Country   string `json:"country,omitempty"`
	Continent string `json:"continent,omitempty"`

	// Rankings
	USRanking     *int   `json:"usRanking,omitempty"`
	PreviousRank  *int   `json:"previousRank,omitempty"`
	StarRating    *int   `json:"starRating,omitempty"`
	PanelistCount *int   `json:"panelistCount,omitempty"`
	RankingSource string `json:"rankingSource,omitempty"`
	RankingYear   int    `json:"rankingYear,omitempty"`

	// Badges
	In100Greatest       bool `json:"in100Greatest"`
	In100GreatestPublic bool `json:"in100GreatestPublic"`
	BestInState         bool `json:"bestInState"`

	// Course details
	CourseType  CourseType `json:"courseType,omitempty"`
	Designer    string     `json:"designer"`
	CoDesigners []string   `json:"coDesigners,omitempty"`
	YearOpened  *int       `json:"yearOpened,omitempty"`

	Description    string `json:"description,omitempty"`
	NotableHistory string `json:"notableHistory,omitempty"`

	// Technical
	TeeBoxes []TeeBox   `json:"teeBoxes"`
	Par      *int       `json:"par,omitempty"`
	Yardage  *int       `json:"yardage,omitempty"`
	Holes    []HoleInfo `json:"holes"`

	// Tournaments
	MajorTournaments  []TournamentHosting `json:"majorTournaments"`
	TournamentSummary string              `json:"tournamentSummary,omitempty"`

	// Contact (standalone courses only)
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`

	// Travel (standalone courses only)
	NearbyHotels      []Hotel      `json:"nearbyHotels,omitempty"`
	NearbyRestaurants []Restaurant `json:"nearbyRestaurants,omitempty"`
	OptimalMonths     []int        `json:"optimalMonths,omitempty"`

	Notes string `json:"notes,omitempty"`
}

func (c *Course) RecordID() string { return c.ID }

// Touch is a no-op: master courses carry no timestamps and are only ever
// rewritten wholesale by the importer.
func (c *Course) Touch(now string) {}

// Standalone reports whether the course has no parent club.
func (c *Course) Standalone() bool { return c.ClubID == "" }

// CourseStatus tracks the user's intent for a course.
type CourseStatus string

const (
	StatusPlayed        CourseStatus = "played"
	StatusPlanning      CourseStatus = "planning"
	StatusWishlist      CourseStatus = "wishlist"
	StatusNotInterested CourseStatus = "not-interested"
	StatusNone          CourseStatus = "none"
)

// MerchItem is one entry on a course's merchandise wishlist.
type MerchItem struct {
	ID              string `json:"id"`
	ItemDescription string `json:"itemDescription"`
	ForSelf         bool   `json:"forSelf"`
	GiftRecipient   string `json:"giftRecipient,omitempty"`
	Purchased       bool   `json:"purchased"`
	Notes           string `json:"notes,omitempty"`
}

// UserCourseRecord is the user's personal history for one course.
type UserCourseRecord struct {
	ID                   string       `json:"id"`
	CourseID             string       `json:"courseId"`
	HasPlayed            bool         `json:"hasPlayed"`
	TimesPlayed          int          `json:"timesPlayed"`
	EstimatedTimesPlayed bool         `json:"estimatedTimesPlayed"`
	Status               CourseStatus `json:"status"`
	BestScore            *int         `json:"bestScore,omitempty"`
	FirstPlayedDate      string       `json:"firstPlayedDate,omitempty"`
	LastPlayedDate       string       `json:"lastPlayedDate,omitempty"`

	// Contact IDs of people played with / known members at this course
	PlayingPartners []string `json:"playingPartners"`
	KnownMembers    []string `json:"knownMembers"`

	FavoriteHoleNumbers []int       `json:"favoriteHoleNumbers"`
	FavoriteDrink       string      `json:"favoriteDrink,omitempty"`
	FavoriteMenuItem    string      `json:"favoriteMenuItem,omitempty"`
	MerchWishlist       []MerchItem `json:"merchWishlist"`

	PersonalNotes string `json:"personalNotes,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (r *UserCourseRecord) RecordID() string { return r.ID }
func (r *UserCourseRecord) Touch(now string) { r.UpdatedAt = now }

// UserCourseRecordPatch is a partial update; nil fields are left unchanged.
type UserCourseRecordPatch struct {
	HasPlayed            *bool
	TimesPlayed          *int
	EstimatedTimesPlayed *bool
	Status               *CourseStatus
	BestScore            *int
	FirstPlayedDate      *string
	LastPlayedDate       *string
	PlayingPartners      []string
	KnownMembers         []string
	FavoriteHoleNumbers  []int
	FavoriteDrink        *string
	FavoriteMenuItem     *string
	MerchWishlist        []MerchItem
	PersonalNotes        *string
}

func (p UserCourseRecordPatch) Apply(r *UserCourseRecord) {
	if p.HasPlayed != nil {
		r.HasPlayed = *p.HasPlayed
	}
	if p.TimesPlayed != nil {
		r.TimesPlayed = *p.TimesPlayed
	}
	if p.EstimatedTimesPlayed != nil {
		r.EstimatedTimesPlayed = *p.EstimatedTimesPlayed
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.BestScore != nil {
		r.BestScore = p.BestScore
	}
	if p.FirstPlayedDate != nil {
		r.FirstPlayedDate = *p.FirstPlayedDate
	}
	if p.LastPlayedDate != nil {
		r.LastPlayedDate = *p.LastPlayedDate
	}
	if p.PlayingPartners != nil {
		r.PlayingPartners = p.PlayingPartners
	}
	if p.KnownMembers != nil {
		r.KnownMembers = p.KnownMembers
	}
	if p.FavoriteHoleNumbers != nil {
		r.FavoriteHoleNumbers = p.FavoriteHoleNumbers
	}
	if p.FavoriteDrink != nil {
		r.FavoriteDrink = *p.FavoriteDrink
	}
	if p.FavoriteMenuItem != nil {
		r.FavoriteMenuItem = *p.FavoriteMenuItem
	}
	if p.MerchWishlist != nil {
		r.MerchWishlist = p.MerchWishlist
	}
	if p.PersonalNotes != nil {
		r.PersonalNotes = *p.PersonalNotes
	}
}

// FavoriteHole is one hole in the user's global favorite-hole ranking.
// GlobalRank values are kept dense, 1..N.
type FavoriteHole struct {
	ID         string `json:"id"`
	CourseID   string `json:"courseId"`
	CourseName string `json:"courseName"`
	HoleNumber int    `json:"holeNumber"`
	GlobalRank int    `json:"globalRank"`
	Notes      string `json:"notes,omitempty"`
}

func (h *FavoriteHole) RecordID() string { return h.ID }

// Touch is a no-op: favorite holes carry no timestamps, rank moves rewrite
// the whole list.
func (h *FavoriteHole) Touch(now string) {}
