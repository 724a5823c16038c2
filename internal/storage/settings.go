package storage

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/mq-QMGTM/jdga-app/internal/models"
)

// ---- user settings ----

func defaultSettings() models.UserSettings {
	now := Now()
	return models.UserSettings{
		PreferredUnits: "imperial",
		Theme:          "system",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// GetSettings returns stored settings, or defaults when none are stored
// yet. Settings are a single record under one key, not a collection.
func GetSettings(ctx context.Context, db *DB) models.UserSettings {
	data, err := db.Get(ctx, KeySettings)
	if err != nil {
		log.Printf("error reading %s: %v", KeySettings, err)
		return defaultSettings()
	}
	if data == nil {
		return defaultSettings()
	}

	var settings models.UserSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("error decoding %s: %v", KeySettings, err)
		return defaultSettings()
	}
	return settings
}

func UpdateSettings(ctx context.Context, db *DB, patch models.UserSettingsPatch) (models.UserSettings, error) {
	unlock := db.LockKey(KeySettings)
	defer unlock()

	settings := GetSettings(ctx, db)
	patch.Apply(&settings)
	settings.UpdatedAt = Now()

	data, err := json.Marshal(settings)
	if err != nil {
		return settings, err
	}
	return settings, db.Set(ctx, KeySettings, data)
}

func SetHomeAirport(ctx context.Context, db *DB, code, name, city, state string) error {
	_, err := UpdateSettings(ctx, db, models.UserSettingsPatch{
		HomeAirportCode: &code,
		HomeAirportName: &name,
		HomeCity:        &city,
		HomeState:       &state,
	})
	return err
}

// ---- user memberships ----

func GetAllMemberships(ctx context.Context, db *DB) []models.UserMembership {
	return List[models.UserMembership](ctx, db, KeyMemberships)
}

func GetMembershipByID(ctx context.Context, db *DB, id string) *models.UserMembership {
	return FindByID[models.UserMembership](ctx, db, KeyMemberships, id)
}

func GetMembershipByCourse(ctx context.Context, db *DB, courseID string) *models.UserMembership {
	memberships := GetAllMemberships(ctx, db)
	for i := range memberships {
		if memberships[i].CourseID == courseID {
			return &memberships[i]
		}
	}
	return nil
}

func CreateMembership(ctx context.Context, db *DB, membership models.UserMembership) (*models.UserMembership, error) {
	now := Now()
	membership.ID = GenerateID()
	membership.GuestHistory = []models.GuestRecord{}
	membership.SponsoredGuests = []models.SponsoredGuest{}
	membership.CreatedAt = now
	membership.UpdatedAt = now
	if membership.RegularPlayingPartners == nil {
		membership.RegularPlayingPartners = []string{}
	}

	if err := Add(ctx, db, KeyMemberships, membership); err != nil {
		return nil, err
	}
	return &membership, nil
}

func UpdateMembership(ctx context.Context, db *DB, id string, patch models.UserMembershipPatch) (*models.UserMembership, error) {
	return UpdateByID[models.UserMembership](ctx, db, KeyMemberships, id, patch.Apply)
}

func DeleteMembership(ctx context.Context, db *DB, id string) (bool, error) {
	return RemoveByID[models.UserMembership](ctx, db, KeyMemberships, id)
}

// AddGuestToMembership appends a guest visit. Guest history is append-only.
func AddGuestToMembership(ctx context.Context, db *DB, membershipID string, guest models.GuestRecord) error {
	membership := GetMembershipByID(ctx, db, membershipID)
	if membership == nil {
		return nil
	}

	guest.ID = GenerateID()
	history := append(append([]models.GuestRecord{}, membership.GuestHistory...), guest)
	_, err := UpdateMembership(ctx, db, membershipID, models.UserMembershipPatch{GuestHistory: history})
	return err
}

// AddSponsoredGuest authorizes a guest, starting active with zero uses.
func AddSponsoredGuest(ctx context.Context, db *DB, membershipID string, guest models.SponsoredGuest) error {
	membership := GetMembershipByID(ctx, db, membershipID)
	if membership == nil {
		return nil
	}

	guest.ID = GenerateID()
	guest.TimesUsed = 0
	guest.IsActive = true
	guests := append(append([]models.SponsoredGuest{}, membership.SponsoredGuests...), guest)
	_, err := UpdateMembership(ctx, db, membershipID, models.UserMembershipPatch{SponsoredGuests: guests})
	return err
}

// DeactivateSponsoredGuest turns a sponsorship off; the entry itself stays.
func DeactivateSponsoredGuest(ctx context.Context, db *DB, membershipID, guestID string) error {
	membership := GetMembershipByID(ctx, db, membershipID)
	if membership == nil {
		return nil
	}

	guests := lo.Map(membership.SponsoredGuests, func(g models.SponsoredGuest, _ int) models.SponsoredGuest {
		if g.ID == guestID {
			g.IsActive = false
		}
		return g
	})
	_, err := UpdateMembership(ctx, db, membershipID, models.UserMembershipPatch{SponsoredGuests: guests})
	return err
}

// ---- golf trips ----

// GetAllTrips returns trips newest start date first.
func GetAllTrips(ctx context.Context, db *DB) []models.GolfTrip {
	trips := List[models.GolfTrip](ctx, db, KeyTrips)
	sort.Slice(trips, func(i, j int) bool {
		return trips[i].StartDate > trips[j].StartDate
	})
	return trips
}

func GetTripByID(ctx context.Context, db *DB, id string) *models.GolfTrip {
	return FindByID[models.GolfTrip](ctx, db, KeyTrips, id)
}

// GetUpcomingTrips returns trips starting today or later.
func GetUpcomingTrips(ctx context.Context, db *DB) []models.GolfTrip {
	today := todayDate()
	return lo.Filter(GetAllTrips(ctx, db), func(t models.GolfTrip, _ int) bool {
		return t.StartDate >= today
	})
}

func GetPastTrips(ctx context.Context, db *DB) []models.GolfTrip {
	today := todayDate()
	return lo.Filter(GetAllTrips(ctx, db), func(t models.GolfTrip, _ int) bool {
		return t.EndDate < today
	})
}

func todayDate() string {
	now := Now()
	if i := strings.IndexByte(now, 'T'); i > 0 {
		return now[:i]
	}
	return now
}

func CreateTrip(ctx context.Context, db *DB, trip models.GolfTrip) (*models.GolfTrip, error) {
	now := Now()
	trip.ID = GenerateID()
	trip.CreatedAt = now
	trip.UpdatedAt = now
	if trip.PlannedCourses == nil {
		trip.PlannedCourses = []models.PlannedCourseVisit{}
	}
	if trip.TravelingWith == nil {
		trip.TravelingWith = []string{}
	}

	if err := Add(ctx, db, KeyTrips, trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

func UpdateTrip(ctx context.Context, db *DB, id string, patch models.GolfTripPatch) (*models.GolfTrip, error) {
	return UpdateByID[models.GolfTrip](ctx, db, KeyTrips, id, patch.Apply)
}

func DeleteTrip(ctx context.Context, db *DB, id string) (bool, error) {
	return RemoveByID[models.GolfTrip](ctx, db, KeyTrips, id)
}

func AddCourseToTrip(ctx context.Context, db *DB, tripID string, visit models.PlannedCourseVisit) error {
	trip := GetTripByID(ctx, db, tripID)
	if trip == nil {
		return nil
	}

	planned := append(append([]models.PlannedCourseVisit{}, trip.PlannedCourses...), visit)
	_, err := UpdateTrip(ctx, db, tripID, models.GolfTripPatch{PlannedCourses: planned})
	return err
}
