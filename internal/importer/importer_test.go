package importer

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/mq-QMGTM/jdga-app/internal/models"
	"github.com/mq-QMGTM/jdga-app/internal/storage"
)

func openTestDB(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

const sampleCSV = `usRanking,previousRank,clubId,clubName,name,city,state,courseType,designers,majorTournaments,in100Greatest,bestInState,par,yardage
1,2,club-wf,Winged Foot Golf Club,Winged Foot Golf Club: West,Mamaroneck,New York,Private,"A.W. Tillinghast",U.S. Open 1929; U.S. Open 2020,true,true,72,7477
2,1,club-wf,Winged Foot Golf Club,Winged Foot Golf Club: East,Mamaroneck,New York,Private,"A.W. Tillinghast",,true,false,72,6763
3,,,,Pebble Beach Golf Links,Pebble Beach,California,Resort,"Jack Neville; Douglas Grant",U.S. Open 2019; U.S. Open 2027,true,true,72,7075
`

func TestParseLineQuotedField(t *testing.T) {
	fields := parseLine(`1,"Smith, John & Sons", plain ,""`)
	want := []string{"1", "Smith, John & Sons", "plain", ""}
	if len(fields) != len(want) {
		t.Fatalf("got %d fields: %v", len(fields), fields)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("field %d = %q, want %q", i, fields[i], want[i])
		}
	}
}

func TestParseCSVRequiresHeader(t *testing.T) {
	if _, err := parseCSV(""); err == nil {
		t.Error("empty content should fail")
	}
	if _, err := parseCSV("\n1,2,3"); err == nil {
		t.Error("blank header should fail")
	}
}

func TestParseCSVSkipsBlankLinesAndShortRows(t *testing.T) {
	content := "name,city\r\nPebble Beach Golf Links,Pebble Beach\r\n\r\nShort\r\n"
	rows, err := parseCSV(content)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[1].Name != "Short" || rows[1].City != "" {
		t.Errorf("short row should leave trailing columns empty: %+v", rows[1])
	}
}

func TestExtractCourseName(t *testing.T) {
	cases := []struct {
		fullName, clubName, want string
	}{
		{"Winged Foot Golf Club: West", "Winged Foot Golf Club", "West"},
		{"Pacific Dunes", "Bandon Dunes Golf Resort", "Pacific Dunes"},
		{"Pebble Beach Golf Links", "", "Pebble Beach Golf Links"},
		{"Club: Name: Extra", "Club", "Name: Extra"},
	}
	for _, c := range cases {
		if got := ExtractCourseName(c.fullName, c.clubName); got != c.want {
			t.Errorf("ExtractCourseName(%q, %q) = %q, want %q", c.fullName, c.clubName, got, c.want)
		}
	}
}

func TestParseTournamentHistory(t *testing.T) {
	hostings := ParseTournamentHistory("U.S. Open 2020; PGA Championship 2030; Ryder Cup", 2026)
	if len(hostings) != 3 {
		t.Fatalf("got %d hostings", len(hostings))
	}
	if hostings[0].TournamentName != "U.S. Open" || hostings[0].Year != 2020 || hostings[0].IsFuture {
		t.Errorf("past entry = %+v", hostings[0])
	}
	if hostings[1].Year != 2030 || !hostings[1].IsFuture {
		t.Errorf("future entry = %+v", hostings[1])
	}
	if hostings[2].TournamentName != "Ryder Cup" || hostings[2].Year != 0 {
		t.Errorf("yearless entry should be kept with year 0: %+v", hostings[2])
	}

	if got := ParseTournamentHistory("", 2026); len(got) != 0 {
		t.Errorf("empty field = %+v", got)
	}
}

func TestParseDesigners(t *testing.T) {
	if d, co := ParseDesigners(""); d != "Unknown" || co != nil {
		t.Errorf("empty = %q, %v", d, co)
	}
	if d, co := ParseDesigners("Donald Ross"); d != "Donald Ross" || co != nil {
		t.Errorf("single = %q, %v", d, co)
	}
	d, co := ParseDesigners("Jack Neville; Douglas Grant")
	if d != "Jack Neville" || len(co) != 1 || co[0] != "Douglas Grant" {
		t.Errorf("pair = %q, %v", d, co)
	}
}

func TestBuildEntities(t *testing.T) {
	rows, err := parseCSV(sampleCSV)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	clubs, courses := BuildEntities(rows, 2026)
	if len(clubs) != 1 || len(courses) != 3 {
		t.Fatalf("got %d clubs, %d courses", len(clubs), len(courses))
	}

	club := clubs[0]
	if club.ID != "club-wf" || club.Name != "Winged Foot Golf Club" {
		t.Errorf("club = %+v", club)
	}
	if len(club.CourseIDs) != 2 || club.CourseIDs[0] != "course-1" || club.CourseIDs[1] != "course-2" {
		t.Errorf("club courseIds = %v", club.CourseIDs)
	}
	if club.City != "Mamaroneck" || club.Country != "USA" {
		t.Errorf("club location = %+v", club)
	}

	west := courses[0]
	if west.ID != "course-1" || west.Name != "West" || west.FullName != "Winged Foot Golf Club: West" {
		t.Errorf("west = %+v", west)
	}
	if west.ClubID != "club-wf" {
		t.Errorf("west clubId = %q", west.ClubID)
	}
	// Club-owned courses leave location fields to the club.
	if west.City != "" || west.State != "" || west.Country != "" {
		t.Errorf("club-owned course should carry no location: %+v", west)
	}
	if west.USRanking == nil || *west.USRanking != 1 {
		t.Errorf("west ranking = %v", west.USRanking)
	}
	if !west.In100Greatest || !west.BestInState {
		t.Errorf("west badges = %v/%v", west.In100Greatest, west.BestInState)
	}
	if len(west.MajorTournaments) != 2 {
		t.Errorf("west tournaments = %+v", west.MajorTournaments)
	}

	east := courses[1]
	if east.In100Greatest != true || east.BestInState != false {
		t.Errorf("east badges = %v/%v", east.In100Greatest, east.BestInState)
	}
	if len(east.MajorTournaments) != 0 {
		t.Errorf("east tournaments = %+v", east.MajorTournaments)
	}

	pebble := courses[2]
	if !pebble.Standalone() {
		t.Fatalf("pebble should be standalone: %+v", pebble)
	}
	if pebble.City != "Pebble Beach" || pebble.State != "California" || pebble.Continent != "North America" {
		t.Errorf("standalone location = %+v", pebble)
	}
	if pebble.Designer != "Jack Neville" || len(pebble.CoDesigners) != 1 {
		t.Errorf("pebble designers = %q %v", pebble.Designer, pebble.CoDesigners)
	}
	future := pebble.MajorTournaments[1]
	if !future.IsFuture || future.Year != 2027 {
		t.Errorf("2027 hosting should be future: %+v", future)
	}
}

func TestBuildEntitiesUnrankedID(t *testing.T) {
	rows, err := parseCSV("name,city\nMystery Links,Nowhere\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	_, courses := BuildEntities(rows, 2026)
	if courses[0].ID != "course-0" {
		t.Errorf("unranked id = %q", courses[0].ID)
	}
	if courses[0].USRanking != nil {
		t.Error("unranked course should have nil ranking")
	}
	if courses[0].Designer != "Unknown" {
		t.Errorf("designer = %q", courses[0].Designer)
	}
}

func TestImportCoursesFromCSVIdempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	clubCount, courseCount, err := ImportCoursesFromCSV(ctx, db, sampleCSV)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if clubCount != 1 || courseCount != 3 {
		t.Errorf("counts = %d/%d", clubCount, courseCount)
	}

	if _, _, err := ImportCoursesFromCSV(ctx, db, sampleCSV); err != nil {
		t.Fatalf("re-import: %v", err)
	}
	if got := len(storage.GetAllCourses(ctx, db)); got != 3 {
		t.Errorf("re-import duplicated courses: %d", got)
	}
	if got := len(storage.GetAllClubs(ctx, db)); got != 1 {
		t.Errorf("re-import duplicated clubs: %d", got)
	}
}

func TestImportDoesNotTouchUserData(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if _, err := storage.MarkCourseAsPlayed(ctx, db, "course-1", models.UserCourseRecordPatch{}); err != nil {
		t.Fatalf("mark played: %v", err)
	}
	if _, _, err := ImportCoursesFromCSV(ctx, db, sampleCSV); err != nil {
		t.Fatalf("import: %v", err)
	}
	if storage.GetUserCourseRecord(ctx, db, "course-1") == nil {
		t.Error("import must not clear user course records")
	}
}

func TestImportRejectsBadContentBeforeWriting(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if _, _, err := ImportCoursesFromCSV(ctx, db, sampleCSV); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, _, err := ImportCoursesFromCSV(ctx, db, ""); err == nil {
		t.Fatal("empty content should fail")
	}
	if got := len(storage.GetAllCourses(ctx, db)); got != 3 {
		t.Errorf("failed import must leave collections alone, got %d courses", got)
	}
}

func writeDataset(t *testing.T, rows int) string {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("usRanking,clubId,clubName,name,city,state\n")
	for i := 1; i <= rows; i++ {
		n := strconv.Itoa(i)
		sb.WriteString(strings.Join([]string{n, "", "", "Course " + n, "Town", "Texas"}, ",") + "\n")
	}
	path := filepath.Join(t.TempDir(), "courses.csv")
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func TestEnsureCourseDataSeedsEmptyStore(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	src := writeDataset(t, 60)
	if err := EnsureCourseData(ctx, db, src); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if got := len(storage.GetAllCourses(ctx, db)); got != 60 {
		t.Errorf("seeded %d courses", got)
	}
}

func TestEnsureCourseDataSkipsHealthyStore(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := EnsureCourseData(ctx, db, writeDataset(t, 60)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// Pointing at a missing file proves the second call never reads it.
	if err := EnsureCourseData(ctx, db, filepath.Join(t.TempDir(), "missing.csv")); err != nil {
		t.Fatalf("ensure on healthy store: %v", err)
	}
}

func TestEnsureCourseDataReimportsStaleSeed(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	// A small course set with no clubs looks like a pre-club seed.
	if _, _, err := ImportCoursesFromCSV(ctx, db, sampleCSV); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := storage.ReplaceClubs(ctx, db, []models.Club{}); err != nil {
		t.Fatalf("drop clubs: %v", err)
	}

	if err := EnsureCourseData(ctx, db, writeDataset(t, 60)); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if got := len(storage.GetAllCourses(ctx, db)); got != 60 {
		t.Errorf("stale seed should be reimported, got %d courses", got)
	}
}

func TestEnsureCourseDataKeepsSmallStoreWithClubs(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if _, _, err := ImportCoursesFromCSV(ctx, db, sampleCSV); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Clubs present means the small set is deliberate, not stale.
	if err := EnsureCourseData(ctx, db, filepath.Join(t.TempDir(), "missing.csv")); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if got := len(storage.GetAllCourses(ctx, db)); got != 3 {
		t.Errorf("store should be untouched, got %d courses", got)
	}
}

func TestEnsureCourseDataPropagatesFailure(t *testing.T) {
	db := openTestDB(t)

	err := EnsureCourseData(context.Background(), db, filepath.Join(t.TempDir(), "missing.csv"))
	if err == nil {
		t.Fatal("missing dataset on an empty store should fail")
	}
}
