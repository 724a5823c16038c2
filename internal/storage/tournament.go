package storage

import (
	"context"
	"sort"

	"github.com/samber/lo"

	"github.com/mq-QMGTM/jdga-app/internal/models"
)

// ---- major results ----

func GetAllMajorResults(ctx context.Context, db *DB) []models.MajorResult {
	return List[models.MajorResult](ctx, db, KeyTournamentResults)
}

func AddMajorResult(ctx context.Context, db *DB, result models.MajorResult) (*models.MajorResult, error) {
	result.ID = GenerateID()
	if result.TopFinishers == nil {
		result.TopFinishers = []models.TournamentFinisher{}
	}
	if err := Add(ctx, db, KeyTournamentResults, result); err != nil {
		return nil, err
	}
	return &result, nil
}

func RemoveMajorResult(ctx context.Context, db *DB, id string) (bool, error) {
	return RemoveByID[models.MajorResult](ctx, db, KeyTournamentResults, id)
}

// ReplaceMajorResults seeds the full result set in one write.
func ReplaceMajorResults(ctx context.Context, db *DB, results []models.MajorResult) error {
	return Replace(ctx, db, KeyTournamentResults, results)
}

// GetHostCoursesForChampionship lists the distinct course names that have
// hosted one championship.
func GetHostCoursesForChampionship(ctx context.Context, db *DB, championship models.MajorChampionship) []string {
	results := lo.Filter(GetAllMajorResults(ctx, db), func(r models.MajorResult, _ int) bool {
		return r.Championship == championship
	})
	return lo.Uniq(lo.Map(results, func(r models.MajorResult, _ int) string {
		return r.CourseName
	}))
}

// HostedYear is one (championship, year) pair in a course's hosting history.
type HostedYear struct {
	Championship models.MajorChampionship `json:"championship"`
	Year         int                      `json:"year"`
}

// GetYearsHosted returns every major held at a course, most recent first.
func GetYearsHosted(ctx context.Context, db *DB, courseName string) []HostedYear {
	results := lo.Filter(GetAllMajorResults(ctx, db), func(r models.MajorResult, _ int) bool {
		return r.CourseName == courseName
	})
	years := lo.Map(results, func(r models.MajorResult, _ int) HostedYear {
		return HostedYear{Championship: r.Championship, Year: r.Year}
	})
	sort.Slice(years, func(i, j int) bool {
		return years[i].Year > years[j].Year
	})
	return years
}

// ---- future hosts ----

func GetAllFutureHosts(ctx context.Context, db *DB) []models.FutureHost {
	hosts := List[models.FutureHost](ctx, db, KeyFutureHosts)
	sort.Slice(hosts, func(i, j int) bool {
		return hosts[i].Year < hosts[j].Year
	})
	return hosts
}

func AddFutureHost(ctx context.Context, db *DB, host models.FutureHost) (*models.FutureHost, error) {
	host.ID = GenerateID()
	if err := Add(ctx, db, KeyFutureHosts, host); err != nil {
		return nil, err
	}
	return &host, nil
}

func RemoveFutureHost(ctx context.Context, db *DB, id string) (bool, error) {
	return RemoveByID[models.FutureHost](ctx, db, KeyFutureHosts, id)
}

// ReplaceFutureHosts seeds the full future-host set in one write.
func ReplaceFutureHosts(ctx context.Context, db *DB, hosts []models.FutureHost) error {
	return Replace(ctx, db, KeyFutureHosts, hosts)
}
