package storage

import (
	"context"
	"log"
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/mq-QMGTM/jdga-app/internal/models"
)

// ---- scorecard CRUD ----

// GetAllScorecards returns scorecards newest first.
func GetAllScorecards(ctx context.Context, db *DB) []models.Scorecard {
	scorecards := List[models.Scorecard](ctx, db, KeyScorecards)
	sort.Slice(scorecards, func(i, j int) bool {
		return scorecards[i].Date > scorecards[j].Date
	})
	return scorecards
}

func GetScorecardByID(ctx context.Context, db *DB, id string) *models.Scorecard {
	return FindByID[models.Scorecard](ctx, db, KeyScorecards, id)
}

func GetScorecardsForCourse(ctx context.Context, db *DB, courseID string) []models.Scorecard {
	return lo.Filter(GetAllScorecards(ctx, db), func(s models.Scorecard, _ int) bool {
		return s.CourseID == courseID
	})
}

// GetScorecardsForContact returns rounds the contact either played or joined
// as a partner.
func GetScorecardsForContact(ctx context.Context, db *DB, contactID string) []models.Scorecard {
	return lo.Filter(GetAllScorecards(ctx, db), func(s models.Scorecard, _ int) bool {
		if s.PlayerID == contactID {
			return true
		}
		return lo.SomeBy(s.PlayingPartners, func(p models.PlayingPartner) bool {
			return p.ContactID == contactID
		})
	})
}

func GetUserScorecards(ctx context.Context, db *DB) []models.Scorecard {
	return lo.Filter(GetAllScorecards(ctx, db), func(s models.Scorecard, _ int) bool {
		return s.PlayerID == models.PlayerUser
	})
}

func GetRecentScorecards(ctx context.Context, db *DB, limit int) []models.Scorecard {
	scorecards := GetAllScorecards(ctx, db)
	if limit <= 0 {
		limit = 10
	}
	if limit < len(scorecards) {
		return scorecards[:limit]
	}
	return scorecards
}

func GetScorecardsByDateRange(ctx context.Context, db *DB, startDate, endDate string) []models.Scorecard {
	return lo.Filter(GetAllScorecards(ctx, db), func(s models.Scorecard, _ int) bool {
		return s.Date >= startDate && s.Date <= endDate
	})
}

// CreateScorecard computes the derived totals from the hole scores and
// persists the round. A round played by the user also feeds the course's
// best score.
func CreateScorecard(ctx context.Context, db *DB, card models.Scorecard) (*models.Scorecard, error) {
	now := Now()

	card.ID = GenerateID()
	card.FrontNine = models.CalculateNineScore(card.Scores, true)
	card.BackNine = models.CalculateNineScore(card.Scores, false)
	card.TotalScore = card.FrontNine + card.BackNine
	card.TotalPar = lo.SumBy(card.Scores, func(h models.HoleScore) int { return h.Par })
	card.ScoreToPar = models.CalculateScoreToPar(card.Scores)
	card.CreatedAt = now
	card.UpdatedAt = now
	if card.PlayingPartners == nil {
		card.PlayingPartners = []models.PlayingPartner{}
	}

	if err := Add(ctx, db, KeyScorecards, card); err != nil {
		return nil, err
	}

	if card.PlayerID == models.PlayerUser {
		if err := UpdateBestScore(ctx, db, card.CourseID, card.TotalScore); err != nil {
			return nil, err
		}
	}

	return &card, nil
}

// UpdateScorecard patches a round; derived totals are recomputed whenever
// the patch carries new hole scores (see ScorecardPatch.Apply).
func UpdateScorecard(ctx context.Context, db *DB, id string, patch models.ScorecardPatch) (*models.Scorecard, error) {
	return UpdateByID[models.Scorecard](ctx, db, KeyScorecards, id, patch.Apply)
}

// DeleteScorecard removes the round and any stored image of it. A failed
// image delete is logged but never blocks the scorecard delete.
func DeleteScorecard(ctx context.Context, db *DB, id string) (bool, error) {
	if err := DeleteScorecardImage(ctx, db, id); err != nil {
		log.Printf("error deleting image for scorecard %s: %v", id, err)
	}
	return RemoveByID[models.Scorecard](ctx, db, KeyScorecards, id)
}

// ---- scorecard images ----

func SaveScorecardImage(ctx context.Context, db *DB, scorecardID, imageData string) error {
	return saveBlob(ctx, db, KeyScorecardImages, scorecardID, imageData)
}

func GetScorecardImage(ctx context.Context, db *DB, scorecardID string) string {
	return getBlob(ctx, db, KeyScorecardImages, scorecardID)
}

func DeleteScorecardImage(ctx context.Context, db *DB, scorecardID string) error {
	return deleteBlob(ctx, db, KeyScorecardImages, scorecardID)
}

// ---- statistics ----

// ScorecardStats summarizes the user's own rounds. All fields are zero when
// no rounds exist.
type ScorecardStats struct {
	TotalRounds          int `json:"totalRounds"`
	AverageScore         int `json:"averageScore"`
	BestScore            int `json:"bestScore"`
	WorstScore           int `json:"worstScore"`
	CoursesPlayed        int `json:"coursesPlayed"`
	RoundsThisYear       int `json:"roundsThisYear"`
	AverageScoreThisYear int `json:"averageScoreThisYear"`
}

func GetScorecardStats(ctx context.Context, db *DB, currentYear int) ScorecardStats {
	scorecards := GetUserScorecards(ctx, db)
	if len(scorecards) == 0 {
		return ScorecardStats{}
	}

	scores := lo.Map(scorecards, func(s models.Scorecard, _ int) int { return s.TotalScore })
	courses := lo.Uniq(lo.Map(scorecards, func(s models.Scorecard, _ int) string { return s.CourseID }))

	thisYear := lo.Filter(scorecards, func(s models.Scorecard, _ int) bool {
		return yearOf(s.Date) == currentYear
	})

	stats := ScorecardStats{
		TotalRounds:    len(scorecards),
		AverageScore:   roundedAverage(scores),
		BestScore:      lo.Min(scores),
		WorstScore:     lo.Max(scores),
		CoursesPlayed:  len(courses),
		RoundsThisYear: len(thisYear),
	}
	if len(thisYear) > 0 {
		stats.AverageScoreThisYear = roundedAverage(lo.Map(thisYear, func(s models.Scorecard, _ int) int { return s.TotalScore }))
	}
	return stats
}

func roundedAverage(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sum := lo.Sum(values)
	return int(math.Round(float64(sum) / float64(len(values))))
}

// yearOf extracts the calendar year from an ISO date string, 0 when the
// string is too short or malformed.
func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	year := 0
	for _, c := range date[:4] {
		if c < '0' || c > '9' {
			return 0
		}
		year = year*10 + int(c-'0')
	}
	return year
}

// EmptyScores builds an 18-hole score template from a par layout; a nil or
// short layout falls back to par 4s.
func EmptyScores(pars []int) []models.HoleScore {
	if len(pars) != 18 {
		pars = make([]int, 18)
		for i := range pars {
			pars[i] = 4
		}
	}

	scores := make([]models.HoleScore, 18)
	for i, par := range pars {
		scores[i] = models.HoleScore{
			HoleNumber: i + 1,
			Par:        par,
			Score:      0,
		}
	}
	return scores
}
