package storage

import (
	"context"
	"testing"

	"github.com/mq-QMGTM/jdga-app/internal/models"
)

func intp(v int) *int { return &v }

func TestMarkCourseAsPlayed(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	record, err := MarkCourseAsPlayed(ctx, db, "course-1", models.UserCourseRecordPatch{})
	if err != nil {
		t.Fatalf("mark played: %v", err)
	}
	if !record.HasPlayed || record.TimesPlayed != 1 {
		t.Errorf("fresh record: hasPlayed=%v timesPlayed=%d", record.HasPlayed, record.TimesPlayed)
	}
	if record.Status != models.StatusPlayed {
		t.Errorf("status = %q, want played", record.Status)
	}
	if record.LastPlayedDate == "" {
		t.Error("lastPlayedDate should be stamped")
	}

	record, err = MarkCourseAsPlayed(ctx, db, "course-1", models.UserCourseRecordPatch{})
	if err != nil {
		t.Fatalf("mark played again: %v", err)
	}
	if record.TimesPlayed != 2 {
		t.Errorf("timesPlayed = %d, want 2", record.TimesPlayed)
	}
	if len(GetAllUserCourseRecords(ctx, db)) != 1 {
		t.Error("repeat plays should not create a second record")
	}
}

func TestUpdateBestScoreOnlyImproves(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	scores := []int{90, 85, 88, 80}
	want := []int{90, 85, 85, 80}

	for i, score := range scores {
		if err := UpdateBestScore(ctx, db, "course-1", score); err != nil {
			t.Fatalf("update best score: %v", err)
		}
		record := GetUserCourseRecord(ctx, db, "course-1")
		if record == nil || record.BestScore == nil {
			t.Fatalf("no record after score %d", score)
		}
		if *record.BestScore != want[i] {
			t.Errorf("after %d: best = %d, want %d", score, *record.BestScore, want[i])
		}
	}
}

func TestUpdateBestScoreCreatesRecord(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := UpdateBestScore(ctx, db, "course-9", 77); err != nil {
		t.Fatalf("update best score: %v", err)
	}
	record := GetUserCourseRecord(ctx, db, "course-9")
	if record == nil {
		t.Fatal("record should be created")
	}
	if !record.HasPlayed || record.BestScore == nil || *record.BestScore != 77 {
		t.Errorf("got %+v", record)
	}
}

func TestGetTopUSCourses(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	courses := []models.Course{
		{ID: "a", Name: "Third", Country: "USA", USRanking: intp(3)},
		{ID: "b", Name: "First", Country: "USA", USRanking: intp(1)},
		{ID: "c", Name: "Unranked", Country: "USA"},
		{ID: "d", Name: "Second", Country: "USA", USRanking: intp(2)},
	}
	if err := ReplaceCourses(ctx, db, courses); err != nil {
		t.Fatalf("replace: %v", err)
	}

	top := GetTopUSCourses(ctx, db, 2)
	if len(top) != 2 || top[0].Name != "First" || top[1].Name != "Second" {
		t.Errorf("top 2 = %+v", top)
	}

	all := GetTopUSCourses(ctx, db, 0)
	if len(all) != 3 {
		t.Errorf("unranked courses should be excluded, got %d", len(all))
	}
}

func TestSearchCourses(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	courses := []models.Course{
		{ID: "a", Name: "West", FullName: "Winged Foot Golf Club: West", Designer: "A.W. Tillinghast"},
		{ID: "b", Name: "Pebble Beach Golf Links", FullName: "Pebble Beach Golf Links", City: "Pebble Beach", State: "California", Designer: "Jack Neville"},
	}
	if err := ReplaceCourses(ctx, db, courses); err != nil {
		t.Fatalf("replace: %v", err)
	}

	if got := SearchCourses(ctx, db, "winged"); len(got) != 1 || got[0].ID != "a" {
		t.Errorf("search by full name: %+v", got)
	}
	if got := SearchCourses(ctx, db, "tillinghast"); len(got) != 1 || got[0].ID != "a" {
		t.Errorf("search by designer: %+v", got)
	}
	if got := SearchCourses(ctx, db, "california"); len(got) != 1 || got[0].ID != "b" {
		t.Errorf("search by state: %+v", got)
	}
}

func TestResolveCourseLocation(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	club := models.Club{ID: "club-1", Name: "Shinnecock Hills Golf Club", City: "Southampton", State: "New York", Country: "USA"}
	if err := ReplaceClubs(ctx, db, []models.Club{club}); err != nil {
		t.Fatalf("replace clubs: %v", err)
	}

	owned := &models.Course{ID: "c1", ClubID: "club-1"}
	loc := ResolveCourseLocation(ctx, db, owned)
	if loc.City != "Southampton" || loc.State != "New York" {
		t.Errorf("club-owned location = %+v", loc)
	}

	standalone := &models.Course{ID: "c2", City: "Bandon", State: "Oregon"}
	loc = ResolveCourseLocation(ctx, db, standalone)
	if loc.City != "Bandon" {
		t.Errorf("standalone location = %+v", loc)
	}

	dangling := &models.Course{ID: "c3", ClubID: "club-404"}
	loc = ResolveCourseLocation(ctx, db, dangling)
	if loc.City != "" || loc.State != "" {
		t.Errorf("dangling club should resolve to empty location, got %+v", loc)
	}
}

func ranksOf(holes []models.FavoriteHole) map[string]int {
	out := map[string]int{}
	for _, h := range holes {
		out[h.ID] = h.GlobalRank
	}
	return out
}

func addHoles(t *testing.T, db *DB, n int) []models.FavoriteHole {
	t.Helper()
	for i := 1; i <= n; i++ {
		if _, err := AddFavoriteHole(context.Background(), db, "course-1", "Augusta National Golf Club", i, ""); err != nil {
			t.Fatalf("add hole %d: %v", i, err)
		}
	}
	return GetAllFavoriteHoles(context.Background(), db)
}

func TestAddFavoriteHoleAppendsAtEnd(t *testing.T) {
	db := openTestDB(t)

	holes := addHoles(t, db, 3)
	if len(holes) != 3 {
		t.Fatalf("got %d holes", len(holes))
	}
	for i, h := range holes {
		if h.GlobalRank != i+1 {
			t.Errorf("hole %d rank = %d, want %d", i, h.GlobalRank, i+1)
		}
	}
}

func TestUpdateFavoriteHoleRankShiftsWindow(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	holes := addHoles(t, db, 4)

	// Move rank 4 to rank 2: holes at 2 and 3 shift down.
	if err := UpdateFavoriteHoleRank(ctx, db, holes[3].ID, 2); err != nil {
		t.Fatalf("promote: %v", err)
	}
	got := ranksOf(GetAllFavoriteHoles(ctx, db))
	want := map[string]int{holes[0].ID: 1, holes[1].ID: 3, holes[2].ID: 4, holes[3].ID: 2}
	for id, rank := range want {
		if got[id] != rank {
			t.Errorf("after promote, %s rank = %d, want %d", id, got[id], rank)
		}
	}

	// Move it back down to 4.
	if err := UpdateFavoriteHoleRank(ctx, db, holes[3].ID, 4); err != nil {
		t.Fatalf("demote: %v", err)
	}
	got = ranksOf(GetAllFavoriteHoles(ctx, db))
	for i, h := range holes {
		if got[h.ID] != i+1 {
			t.Errorf("after demote, %s rank = %d, want %d", h.ID, got[h.ID], i+1)
		}
	}
}

func TestRemoveFavoriteHoleRenumbersDense(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	holes := addHoles(t, db, 4)
	if err := RemoveFavoriteHole(ctx, db, holes[1].ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	remaining := GetAllFavoriteHoles(ctx, db)
	if len(remaining) != 3 {
		t.Fatalf("got %d holes after remove", len(remaining))
	}
	for i, h := range remaining {
		if h.GlobalRank != i+1 {
			t.Errorf("rank %d at position %d, ranks must stay dense", h.GlobalRank, i)
		}
		if h.ID == holes[1].ID {
			t.Error("removed hole still present")
		}
	}
}

func TestAddMerchItemCreatesLazyRecord(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	item, err := AddMerchItem(ctx, db, "course-1", models.MerchItem{ItemDescription: "Logo sweater", ForSelf: true})
	if err != nil {
		t.Fatalf("add merch: %v", err)
	}
	if item.ID == "" {
		t.Error("merch item should get an id")
	}

	record := GetUserCourseRecord(ctx, db, "course-1")
	if record == nil {
		t.Fatal("record should be created for the wishlist")
	}
	if record.HasPlayed {
		t.Error("wishlist alone must not mark a course played")
	}

	if err := MarkMerchPurchased(ctx, db, "course-1", item.ID); err != nil {
		t.Fatalf("mark purchased: %v", err)
	}
	record = GetUserCourseRecord(ctx, db, "course-1")
	if !record.MerchWishlist[0].Purchased {
		t.Error("item should be marked purchased")
	}
}
