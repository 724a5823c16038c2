package models

// MajorChampionship names one of the four majors.
type MajorChampionship string

const (
	Masters          MajorChampionship = "Masters"
	PGAChampionship  MajorChampionship = "PGA Championship"
	USOpen           MajorChampionship = "US Open"
	OpenChampionship MajorChampionship = "The Open Championship"
)

// TournamentFinisher is a top-3 finisher at one major.
type TournamentFinisher struct {
	Position   int    `json:"position"` // 1-3
	PlayerName string `json:"playerName"`
	Score      string `json:"score"` // e.g. "-12", "+4", "E"
	Country    string `json:"country,omitempty"`
}

// MajorResult is the outcome of one major championship.
type MajorResult struct {
	ID           string               `json:"id"`
	Championship MajorChampionship    `json:"championship"`
	Year         int                  `json:"year"`
	CourseID     string               `json:"courseId,omitempty"`
	CourseName   string               `json:"courseName"`
	ClubName     string               `json:"clubName,omitempty"`
	Location     string               `json:"location"`
	TopFinishers []TournamentFinisher `json:"topFinishers"`
	WinningScore string               `json:"winningScore"`
	Notes        string               `json:"notes,omitempty"`
}

func (r *MajorResult) RecordID() string { return r.ID }
func (r *MajorResult) Touch(now string) {}

// FutureHost is an announced future major venue.
type FutureHost struct {
	ID           string            `json:"id"`
	Championship MajorChampionship `json:"championship"`
	Year         int               `json:"year"`
	CourseID     string            `json:"courseId,omitempty"`
	CourseName   string            `json:"courseName"`
	ClubName     string            `json:"clubName,omitempty"`
	Location     string            `json:"location"`
	Confirmed    bool              `json:"confirmed"`
}

func (h *FutureHost) RecordID() string { return h.ID }
func (h *FutureHost) Touch(now string) {}
