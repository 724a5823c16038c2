// Package importer loads the course dataset: it parses the flat CSV into
// normalized Club and Course records and bulk-replaces the master
// collections.
package importer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mq-QMGTM/jdga-app/internal/models"
	"github.com/mq-QMGTM/jdga-app/internal/storage"
)

// csvRow is one parsed dataset row. Columns the source does not carry stay
// empty strings.
type csvRow struct {
	USRanking           string
	PreviousRank        string
	ClubID              string
	ClubName            string
	Name                string
	City                string
	State               string
	CourseType          string
	PanelistCount       string
	StarRating          string
	In100Greatest       string
	In100GreatestPublic string
	BestInState         string
	Description         string
	Designers           string
	YearOpened          string
	NotableHistory      string
	MajorTournaments    string
	Address             string
	Phone               string
	Website             string
	Par                 string
	Yardage             string
	Notes               string
}

func (r *csvRow) set(column, value string) {
	switch column {
	case "usRanking":
		r.USRanking = value
	case "previousRank":
		r.PreviousRank = value
	case "clubId":
		r.ClubID = value
	case "clubName":
		r.ClubName = value
	case "name":
		r.Name = value
	case "city":
		r.City = value
	case "state":
		r.State = value
	case "courseType":
		r.CourseType = value
	case "panelistCount":
		r.PanelistCount = value
	case "starRating":
		r.StarRating = value
	case "in100Greatest":
		r.In100Greatest = value
	case "in100GreatestPublic":
		r.In100GreatestPublic = value
	case "bestInState":
		r.BestInState = value
	case "description":
		r.Description = value
	case "designers":
		r.Designers = value
	case "yearOpened":
		r.YearOpened = value
	case "notableHistory":
		r.NotableHistory = value
	case "majorTournaments":
		r.MajorTournaments = value
	case "address":
		r.Address = value
	case "phone":
		r.Phone = value
	case "website":
		r.Website = value
	case "par":
		r.Par = value
	case "yardage":
		r.Yardage = value
	case "notes":
		r.Notes = value
	}
	// Unknown columns are ignored.
}

// parseLine splits one CSV line on commas, honoring double quotes so a
// quoted field may contain literal commas. Fields are trimmed; quotes toggle
// state and are dropped from the output.
func parseLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))

	return fields
}

// parseCSV maps the header row onto each data row. Blank lines are skipped;
// short rows leave their remaining columns empty.
func parseCSV(content string) ([]csvRow, error) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, fmt.Errorf("course dataset has no header row")
	}
	headers := parseLine(strings.TrimRight(lines[0], "\r"))

	var rows []csvRow
	for _, line := range lines[1:] {
		line = strings.TrimSpace(strings.TrimRight(line, "\r"))
		if line == "" {
			continue
		}

		fields := parseLine(line)
		var row csvRow
		for i, header := range headers {
			if i < len(fields) {
				row.set(header, fields[i])
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// ExtractCourseName pulls the course-specific name out of a display name.
// "Winged Foot Golf Club: West" -> "West"; a name without a colon (e.g.
// "Pacific Dunes" at Bandon Dunes Resort) already is the course name.
func ExtractCourseName(fullName, clubName string) string {
	if clubName == "" {
		return fullName
	}
	if i := strings.IndexByte(fullName, ':'); i >= 0 {
		return strings.TrimSpace(fullName[i+1:])
	}
	return fullName
}

var tournamentPattern = regexp.MustCompile(`^(.+?)\s+(\d{4})$`)

// ParseTournamentHistory splits a semicolon list of "<name> <year>" entries.
// An entry without a trailing 4-digit year is kept with year 0 rather than
// dropped.
func ParseTournamentHistory(field string, currentYear int) []models.TournamentHosting {
	hostings := []models.TournamentHosting{}
	if field == "" {
		return hostings
	}

	for _, entry := range strings.Split(field, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if m := tournamentPattern.FindStringSubmatch(entry); m != nil {
			year, _ := strconv.Atoi(m[2])
			hostings = append(hostings, models.TournamentHosting{
				TournamentName: strings.TrimSpace(m[1]),
				Year:           year,
				IsFuture:       year > currentYear,
			})
		} else {
			hostings = append(hostings, models.TournamentHosting{
				TournamentName: entry,
				Year:           0,
				IsFuture:       false,
			})
		}
	}
	return hostings
}

// ParseDesigners splits a semicolon-delimited designer list into the primary
// designer ("Unknown" when empty) and any co-designers.
func ParseDesigners(field string) (string, []string) {
	var designers []string
	for _, d := range strings.Split(field, ";") {
		if d = strings.TrimSpace(d); d != "" {
			designers = append(designers, d)
		}
	}

	if len(designers) == 0 {
		return "Unknown", nil
	}
	if len(designers) == 1 {
		return designers[0], nil
	}
	return designers[0], designers[1:]
}

// intPtr parses an integer column, nil (unset) when empty or non-numeric.
func intPtr(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}

// BuildEntities normalizes parsed rows into the Club/Course graph. Pass one
// registers each club the first time its id appears; pass two builds every
// course and accumulates course ids per club, merged into the club records
// once all rows have contributed.
func BuildEntities(rows []csvRow, currentYear int) ([]models.Club, []models.Course) {
	now := storage.Now()

	clubsByID := make(map[string]*models.Club)
	var clubOrder []string
	coursesByClub := make(map[string][]string)

	// Pass 1: clubs
	for _, row := range rows {
		if row.ClubID == "" || row.ClubName == "" {
			continue
		}
		if _, seen := clubsByID[row.ClubID]; seen {
			continue
		}

		clubsByID[row.ClubID] = &models.Club{
			ID:                row.ClubID,
			Name:              row.ClubName,
			City:              row.City,
			State:             row.State,
			Country:           "USA",
			CourseType:        models.CourseType(row.CourseType),
			CourseIDs:         []string{},
			Address:           row.Address,
			Phone:             row.Phone,
			Website:           row.Website,
			NearbyHotels:      []models.Hotel{},
			NearbyRestaurants: []models.Restaurant{},
			OptimalMonths:     []int{},
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		clubOrder = append(clubOrder, row.ClubID)
		coursesByClub[row.ClubID] = []string{}
	}

	// Pass 2: courses
	courses := make([]models.Course, 0, len(rows))
	for index, row := range rows {
		courseID := "course-" + row.USRanking
		if row.USRanking == "" {
			courseID = "course-" + strconv.Itoa(index)
		}

		if row.ClubID != "" {
			coursesByClub[row.ClubID] = append(coursesByClub[row.ClubID], courseID)
		}

		designer, coDesigners := ParseDesigners(row.Designers)

		course := models.Course{
			ID:       courseID,
			Name:     ExtractCourseName(row.Name, row.ClubName),
			FullName: row.Name,
			ClubID:   row.ClubID,

			USRanking:     intPtr(row.USRanking),
			PreviousRank:  intPtr(row.PreviousRank),
			StarRating:    intPtr(row.StarRating),
			PanelistCount: intPtr(row.PanelistCount),
			RankingSource: "Golf Digest",
			RankingYear:   2024,

			In100Greatest:       row.In100Greatest == "true",
			In100GreatestPublic: row.In100GreatestPublic == "true",
			BestInState:         row.BestInState == "true",

			Designer:    designer,
			CoDesigners: coDesigners,
			YearOpened:  intPtr(row.YearOpened),

			Description:    row.Description,
			NotableHistory: row.NotableHistory,

			TeeBoxes: []models.TeeBox{},
			Par:      intPtr(row.Par),
			Yardage:  intPtr(row.Yardage),
			Holes:    []models.HoleInfo{},

			MajorTournaments:  ParseTournamentHistory(row.MajorTournaments, currentYear),
			TournamentSummary: row.MajorTournaments,

			Notes: row.Notes,
		}

		// Location, contact and travel fields belong on the club for
		// club-owned courses; only standalone courses carry them.
		if row.ClubID == "" {
			course.City = row.City
			course.State = row.State
			course.Country = "USA"
			course.Continent = "North America"
			course.CourseType = models.CourseType(row.CourseType)
			course.Address = row.Address
			course.Phone = row.Phone
			course.Website = row.Website
			course.NearbyHotels = []models.Hotel{}
			course.NearbyRestaurants = []models.Restaurant{}
			course.OptimalMonths = []int{}
		}

		courses = append(courses, course)
	}

	clubs := make([]models.Club, 0, len(clubOrder))
	for _, clubID := range clubOrder {
		club := clubsByID[clubID]
		club.CourseIDs = coursesByClub[clubID]
		clubs = append(clubs, *club)
	}

	return clubs, courses
}

// ImportCoursesFromCSV parses the dataset and bulk-replaces the Club and
// Course collections. Nothing is written until the whole content has parsed;
// user-entered collections live under other keys and are untouched.
func ImportCoursesFromCSV(ctx context.Context, db *storage.DB, content string) (int, int, error) {
	rows, err := parseCSV(content)
	if err != nil {
		return 0, 0, err
	}

	clubs, courses := BuildEntities(rows, time.Now().Year())

	if err := storage.ReplaceClubs(ctx, db, clubs); err != nil {
		return 0, 0, err
	}
	if err := storage.ReplaceCourses(ctx, db, courses); err != nil {
		return 0, 0, err
	}

	return len(clubs), len(courses), nil
}

// ImportCoursesFromSource reads the dataset from an http(s) URL or a local
// file, then imports it. Fetch and parse failures propagate so the caller
// can refuse to start with an empty directory.
func ImportCoursesFromSource(ctx context.Context, db *storage.DB, src string) (int, int, error) {
	content, err := readSource(ctx, src)
	if err != nil {
		return 0, 0, err
	}
	return ImportCoursesFromCSV(ctx, db, content)
}

func readSource(ctx context.Context, src string) (string, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
		if err != nil {
			return "", err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return "", fmt.Errorf("fetch course dataset: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("fetch course dataset: unexpected status %s", resp.Status)
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("fetch course dataset: %w", err)
		}
		return string(body), nil
	}

	body, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("read course dataset: %w", err)
	}
	return string(body), nil
}
