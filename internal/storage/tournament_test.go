package storage

import (
	"context"
	"testing"

	"github.com/mq-QMGTM/jdga-app/internal/models"
)

func TestGetHostCoursesForChampionship(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	results := []models.MajorResult{
		{ID: "r1", Championship: models.USOpen, Year: 2020, CourseName: "Winged Foot Golf Club"},
		{ID: "r2", Championship: models.USOpen, Year: 2006, CourseName: "Winged Foot Golf Club"},
		{ID: "r3", Championship: models.USOpen, Year: 2021, CourseName: "Torrey Pines Golf Course"},
		{ID: "r4", Championship: models.Masters, Year: 2021, CourseName: "Augusta National Golf Club"},
	}
	if err := ReplaceMajorResults(ctx, db, results); err != nil {
		t.Fatalf("replace: %v", err)
	}

	hosts := GetHostCoursesForChampionship(ctx, db, models.USOpen)
	if len(hosts) != 2 {
		t.Errorf("hosts = %v, repeat venues should appear once", hosts)
	}

	years := GetYearsHosted(ctx, db, "Winged Foot Golf Club")
	if len(years) != 2 || years[0].Year != 2020 || years[1].Year != 2006 {
		t.Errorf("years = %+v, want most recent first", years)
	}
}

func TestAddAndRemoveMajorResult(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	result, err := AddMajorResult(ctx, db, models.MajorResult{
		Championship: models.Masters,
		Year:         2026,
		CourseName:   "Augusta National Golf Club",
		TopFinishers: []models.TournamentFinisher{
			{Position: 1, PlayerName: "S. Scheffler", Score: "-11"},
		},
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if result.ID == "" {
		t.Error("result should get an id")
	}

	removed, err := RemoveMajorResult(ctx, db, result.ID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !removed {
		t.Error("remove should report true")
	}
}

func TestFutureHosts(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	host, err := AddFutureHost(ctx, db, models.FutureHost{
		Championship: models.USOpen,
		Year:         2029,
		CourseName:   "Pebble Beach Golf Links",
		Confirmed:    true,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	hosts := GetAllFutureHosts(ctx, db)
	if len(hosts) != 1 || hosts[0].ID != host.ID {
		t.Errorf("hosts = %+v", hosts)
	}
}
