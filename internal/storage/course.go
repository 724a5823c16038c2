package storage

import (
	"context"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/mq-QMGTM/jdga-app/internal/models"
)

// ---- master course database ----

func GetAllCourses(ctx context.Context, db *DB) []models.Course {
	return List[models.Course](ctx, db, KeyCourses)
}

func GetCourseByID(ctx context.Context, db *DB, id string) *models.Course {
	return FindByID[models.Course](ctx, db, KeyCourses, id)
}

// GetTopUSCourses returns ranked US courses in ranking order. limit <= 0
// returns all of them.
func GetTopUSCourses(ctx context.Context, db *DB, limit int) []models.Course {
	courses := lo.Filter(GetAllCourses(ctx, db), func(c models.Course, _ int) bool {
		return c.Country == "USA" && c.USRanking != nil
	})
	sort.Slice(courses, func(i, j int) bool {
		return *courses[i].USRanking < *courses[j].USRanking
	})

	if limit > 0 && limit < len(courses) {
		return courses[:limit]
	}
	return courses
}

func GetCoursesByContinent(ctx context.Context, db *DB, continent string) []models.Course {
	return lo.Filter(GetAllCourses(ctx, db), func(c models.Course, _ int) bool {
		return c.Continent == continent
	})
}

func GetCoursesByState(ctx context.Context, db *DB, state string) []models.Course {
	return lo.Filter(GetAllCourses(ctx, db), func(c models.Course, _ int) bool {
		return c.State == state
	})
}

func GetCoursesByDesigner(ctx context.Context, db *DB, designer string) []models.Course {
	query := strings.ToLower(designer)
	return lo.Filter(GetAllCourses(ctx, db), func(c models.Course, _ int) bool {
		if strings.Contains(strings.ToLower(c.Designer), query) {
			return true
		}
		return lo.SomeBy(c.CoDesigners, func(d string) bool {
			return strings.Contains(strings.ToLower(d), query)
		})
	})
}

func GetCoursesByType(ctx context.Context, db *DB, courseType models.CourseType) []models.Course {
	return lo.Filter(GetAllCourses(ctx, db), func(c models.Course, _ int) bool {
		return c.CourseType == courseType
	})
}

// SearchCourses matches the query case-insensitively against name, full
// name, city, state and designer.
func SearchCourses(ctx context.Context, db *DB, query string) []models.Course {
	q := strings.ToLower(query)
	return lo.Filter(GetAllCourses(ctx, db), func(c models.Course, _ int) bool {
		return strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.FullName), q) ||
			strings.Contains(strings.ToLower(c.City), q) ||
			strings.Contains(strings.ToLower(c.State), q) ||
			strings.Contains(strings.ToLower(c.Designer), q)
	})
}

// ReplaceCourses overwrites the master course collection; only the importer
// and backup restore call this.
func ReplaceCourses(ctx context.Context, db *DB, courses []models.Course) error {
	return Replace(ctx, db, KeyCourses, courses)
}

// CourseLocation is the effective location and contact info for a course.
type CourseLocation struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
}

// ResolveCourseLocation reads location/contact fields through the parent
// club for club-owned courses; standalone courses carry their own.
func ResolveCourseLocation(ctx context.Context, db *DB, course *models.Course) CourseLocation {
	if course.Standalone() {
		return CourseLocation{
			City:    course.City,
			State:   course.State,
			Country: course.Country,
			Address: course.Address,
			Phone:   course.Phone,
			Website: course.Website,
		}
	}

	club := GetClubByID(ctx, db, course.ClubID)
	if club == nil {
		// Dangling clubId (the parent club was deleted); nothing to resolve.
		return CourseLocation{}
	}
	return CourseLocation{
		City:    club.City,
		State:   club.State,
		Country: club.Country,
		Address: club.Address,
		Phone:   club.Phone,
		Website: club.Website,
	}
}

// ---- user course records ----

func GetAllUserCourseRecords(ctx context.Context, db *DB) []models.UserCourseRecord {
	return List[models.UserCourseRecord](ctx, db, KeyUserCourses)
}

// GetUserCourseRecord finds the user's record for a course by course id, nil
// when the user has no record for it yet.
func GetUserCourseRecord(ctx context.Context, db *DB, courseID string) *models.UserCourseRecord {
	records := GetAllUserCourseRecords(ctx, db)
	for i := range records {
		if records[i].CourseID == courseID {
			return &records[i]
		}
	}
	return nil
}

func GetPlayedCourses(ctx context.Context, db *DB) []models.UserCourseRecord {
	return lo.Filter(GetAllUserCourseRecords(ctx, db), func(r models.UserCourseRecord, _ int) bool {
		return r.HasPlayed
	})
}

// MarkCourseAsPlayed records a round on a course: an existing record gets
// hasPlayed set and timesPlayed incremented, otherwise a fresh record is
// created with timesPlayed 1. extra is applied on top in both cases.
func MarkCourseAsPlayed(ctx context.Context, db *DB, courseID string, extra models.UserCourseRecordPatch) (*models.UserCourseRecord, error) {
	existing := GetUserCourseRecord(ctx, db, courseID)
	now := Now()

	if existing != nil {
		times := existing.TimesPlayed + 1
		return UpdateByID[models.UserCourseRecord](ctx, db, KeyUserCourses, existing.ID, func(r *models.UserCourseRecord) {
			r.HasPlayed = true
			r.TimesPlayed = times
			r.Status = models.StatusPlayed
			r.LastPlayedDate = now
			extra.Apply(r)
		})
	}

	record := models.UserCourseRecord{
		ID:                  GenerateID(),
		CourseID:            courseID,
		HasPlayed:           true,
		TimesPlayed:         1,
		Status:              models.StatusPlayed,
		PlayingPartners:     []string{},
		KnownMembers:        []string{},
		FavoriteHoleNumbers: []int{},
		MerchWishlist:       []models.MerchItem{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	extra.Apply(&record)

	if err := Add(ctx, db, KeyUserCourses, record); err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateUserCourseRecord patches the record for a course, nil when the user
// has no record for it.
func UpdateUserCourseRecord(ctx context.Context, db *DB, courseID string, patch models.UserCourseRecordPatch) (*models.UserCourseRecord, error) {
	existing := GetUserCourseRecord(ctx, db, courseID)
	if existing == nil {
		return nil, nil
	}
	return UpdateByID[models.UserCourseRecord](ctx, db, KeyUserCourses, existing.ID, patch.Apply)
}

// UpdateBestScore writes score as the course best only when it beats the
// stored one (lower is better). With no record yet the course is marked
// played with the score attached.
func UpdateBestScore(ctx context.Context, db *DB, courseID string, score int) error {
	existing := GetUserCourseRecord(ctx, db, courseID)

	if existing != nil {
		if existing.BestScore == nil || score < *existing.BestScore {
			_, err := UpdateByID[models.UserCourseRecord](ctx, db, KeyUserCourses, existing.ID, func(r *models.UserCourseRecord) {
				r.BestScore = &score
			})
			return err
		}
		return nil
	}

	_, err := MarkCourseAsPlayed(ctx, db, courseID, models.UserCourseRecordPatch{BestScore: &score})
	return err
}

// ---- favorite holes ----

// GetAllFavoriteHoles returns the favorite holes in rank order.
func GetAllFavoriteHoles(ctx context.Context, db *DB) []models.FavoriteHole {
	holes := List[models.FavoriteHole](ctx, db, KeyFavoriteHoles)
	sort.Slice(holes, func(i, j int) bool {
		return holes[i].GlobalRank < holes[j].GlobalRank
	})
	return holes
}

// AddFavoriteHole appends a hole at the bottom of the ranking (rank N+1).
func AddFavoriteHole(ctx context.Context, db *DB, courseID, courseName string, holeNumber int, notes string) (*models.FavoriteHole, error) {
	unlock := db.LockKey(KeyFavoriteHoles)
	defer unlock()

	holes := List[models.FavoriteHole](ctx, db, KeyFavoriteHoles)
	hole := models.FavoriteHole{
		ID:         GenerateID(),
		CourseID:   courseID,
		CourseName: courseName,
		HoleNumber: holeNumber,
		GlobalRank: len(holes) + 1,
		Notes:      notes,
	}

	holes = append(holes, hole)
	if err := setList(ctx, db, KeyFavoriteHoles, holes); err != nil {
		return nil, err
	}
	return &hole, nil
}

// UpdateFavoriteHoleRank moves one hole to newRank, shifting only the holes
// whose rank lies between the old and new position so the relative order of
// everything else is preserved.
func UpdateFavoriteHoleRank(ctx context.Context, db *DB, id string, newRank int) error {
	unlock := db.LockKey(KeyFavoriteHoles)
	defer unlock()

	holes := List[models.FavoriteHole](ctx, db, KeyFavoriteHoles)
	idx := -1
	for i := range holes {
		if holes[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	oldRank := holes[idx].GlobalRank
	for i := range holes {
		h := &holes[i]
		switch {
		case h.ID == id:
			h.GlobalRank = newRank
		case oldRank < newRank && h.GlobalRank > oldRank && h.GlobalRank <= newRank:
			h.GlobalRank--
		case oldRank > newRank && h.GlobalRank >= newRank && h.GlobalRank < oldRank:
			h.GlobalRank++
		}
	}

	return setList(ctx, db, KeyFavoriteHoles, holes)
}

// RemoveFavoriteHole deletes a hole and renumbers the survivors densely
// 1..N-1 in their current rank order.
func RemoveFavoriteHole(ctx context.Context, db *DB, id string) error {
	unlock := db.LockKey(KeyFavoriteHoles)
	defer unlock()

	holes := List[models.FavoriteHole](ctx, db, KeyFavoriteHoles)
	kept := lo.Filter(holes, func(h models.FavoriteHole, _ int) bool {
		return h.ID != id
	})
	sort.Slice(kept, func(i, j int) bool {
		return kept[i].GlobalRank < kept[j].GlobalRank
	})
	for i := range kept {
		kept[i].GlobalRank = i + 1
	}

	return setList(ctx, db, KeyFavoriteHoles, kept)
}

// ---- merch wishlist ----

// AddMerchItem puts an item on a course's merch wishlist, creating the user
// course record lazily (not marked played) when none exists.
func AddMerchItem(ctx context.Context, db *DB, courseID string, item models.MerchItem) (*models.MerchItem, error) {
	item.ID = GenerateID()

	record := GetUserCourseRecord(ctx, db, courseID)
	if record != nil {
		wishlist := append(append([]models.MerchItem{}, record.MerchWishlist...), item)
		_, err := UpdateByID[models.UserCourseRecord](ctx, db, KeyUserCourses, record.ID, func(r *models.UserCourseRecord) {
			r.MerchWishlist = wishlist
		})
		if err != nil {
			return nil, err
		}
		return &item, nil
	}

	now := Now()
	newRecord := models.UserCourseRecord{
		ID:                  GenerateID(),
		CourseID:            courseID,
		HasPlayed:           false,
		TimesPlayed:         0,
		Status:              models.StatusNone,
		PlayingPartners:     []string{},
		KnownMembers:        []string{},
		FavoriteHoleNumbers: []int{},
		MerchWishlist:       []models.MerchItem{item},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := Add(ctx, db, KeyUserCourses, newRecord); err != nil {
		return nil, err
	}
	return &item, nil
}

func MarkMerchPurchased(ctx context.Context, db *DB, courseID, itemID string) error {
	record := GetUserCourseRecord(ctx, db, courseID)
	if record == nil {
		return nil
	}

	wishlist := lo.Map(record.MerchWishlist, func(item models.MerchItem, _ int) models.MerchItem {
		if item.ID == itemID {
			item.Purchased = true
		}
		return item
	})

	_, err := UpdateByID[models.UserCourseRecord](ctx, db, KeyUserCourses, record.ID, func(r *models.UserCourseRecord) {
		r.MerchWishlist = wishlist
	})
	return err
}
