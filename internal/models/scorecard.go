package models

import "strconv"

type EntryMethod string

const (
	EntryManual EntryMethod = "manual"
	EntryOCR    EntryMethod = "ocr"
)

// HoleScore is one hole on a scorecard.
type HoleScore struct {
	HoleNumber        int    `json:"holeNumber"`
	Par               int    `json:"par"`
	Score             int    `json:"score"`
	Putts             *int   `json:"putts,omitempty"`
	FairwayHit        *bool  `json:"fairwayHit,omitempty"`
	GreenInRegulation *bool  `json:"greenInRegulation,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

// PlayingPartner always has a name, even when not a saved contact.
type PlayingPartner struct {
	ContactID string `json:"contactId,omitempty"`
	Name      string `json:"name"`
	Score     *int   `json:"score,omitempty"`
}

// PlayerUser is the sentinel player id for the app user's own rounds.
const PlayerUser = "user"

// Scorecard is one recorded round. FrontNine, BackNine, TotalScore, TotalPar
// and ScoreToPar are derived from Scores and recomputed whenever Scores
// changes.
type Scorecard struct {
	ID         string `json:"id"`
	CourseID   string `json:"courseId"`
	CourseName string `json:"courseName"`
	ClubName   string `json:"clubName"`
	Date       string `json:"date"`

	TeeBox     string `json:"teeBox"`
	TeeYardage *int   `json:"teeYardage,omitempty"`

	PlayerID        string           `json:"playerId"` // PlayerUser or a contact id
	PlayerName      string           `json:"playerName"`
	PlayingPartners []PlayingPartner `json:"playingPartners"`

	Scores     []HoleScore `json:"scores"`
	FrontNine  int         `json:"frontNine"`
	BackNine   int         `json:"backNine"`
	TotalScore int         `json:"totalScore"`
	TotalPar   int         `json:"totalPar"`
	ScoreToPar int         `json:"scoreToPar"`

	TotalPutts         *int `json:"totalPutts,omitempty"`
	FairwaysHit        *int `json:"fairwaysHit,omitempty"`
	FairwaysPossible   *int `json:"fairwaysPossible,omitempty"`
	GreensInRegulation *int `json:"greensInRegulation,omitempty"`

	EntryMethod   EntryMethod `json:"entryMethod"`
	OriginalImage string      `json:"originalImage,omitempty"`

	Notes      string `json:"notes,omitempty"`
	Conditions string `json:"conditions,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (s *Scorecard) RecordID() string { return s.ID }
func (s *Scorecard) Touch(now string) { s.UpdatedAt = now }

// ScorecardPatch is a partial update; nil fields are left unchanged. When
// Scores is set the caller is responsible for recomputing the derived totals
// (the storage layer does this for every update path).
type ScorecardPatch struct {
	Date            *string
	TeeBox          *string
	TeeYardage      *int
	PlayingPartners []PlayingPartner
	Scores          []HoleScore
	TotalPutts      *int
	Notes           *string
	Conditions      *string
	OriginalImage   *string
}

func (p ScorecardPatch) Apply(s *Scorecard) {
	if p.Date != nil {
		s.Date = *p.Date
	}
	if p.TeeBox != nil {
		s.TeeBox = *p.TeeBox
	}
	if p.TeeYardage != nil {
		s.TeeYardage = p.TeeYardage
	}
	if p.PlayingPartners != nil {
		s.PlayingPartners = p.PlayingPartners
	}
	if p.Scores != nil {
		s.Scores = p.Scores
		s.FrontNine = CalculateNineScore(p.Scores, true)
		s.BackNine = CalculateNineScore(p.Scores, false)
		s.TotalScore = s.FrontNine + s.BackNine
		s.ScoreToPar = CalculateScoreToPar(p.Scores)
	}
	if p.TotalPutts != nil {
		s.TotalPutts = p.TotalPutts
	}
	if p.Notes != nil {
		s.Notes = *p.Notes
	}
	if p.Conditions != nil {
		s.Conditions = *p.Conditions
	}
	if p.OriginalImage != nil {
		s.OriginalImage = *p.OriginalImage
	}
}

// CalculateScoreToPar sums score minus par over all holes.
func CalculateScoreToPar(scores []HoleScore) int {
	total := 0
	for _, h := range scores {
		total += h.Score - h.Par
	}
	return total
}

// CalculateNineScore sums holes 1-9 (front) or 10+ (back).
func CalculateNineScore(scores []HoleScore, front bool) int {
	total := 0
	for _, h := range scores {
		if front && h.HoleNumber <= 9 {
			total += h.Score
		} else if !front && h.HoleNumber > 9 {
			total += h.Score
		}
	}
	return total
}

// FormatScoreToPar renders a score-to-par value, "E" for even.
func FormatScoreToPar(scoreToPar int) string {
	if scoreToPar == 0 {
		return "E"
	}
	if scoreToPar > 0 {
		return "+" + strconv.Itoa(scoreToPar)
	}
	return strconv.Itoa(scoreToPar)
}
