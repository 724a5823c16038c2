package storage

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/mq-QMGTM/jdga-app/internal/models"
)

// ---- master club database ----

func GetAllClubs(ctx context.Context, db *DB) []models.Club {
	return List[models.Club](ctx, db, KeyClubs)
}

func GetClubByID(ctx context.Context, db *DB, id string) *models.Club {
	return FindByID[models.Club](ctx, db, KeyClubs, id)
}

func GetClubsByState(ctx context.Context, db *DB, state string) []models.Club {
	return lo.Filter(GetAllClubs(ctx, db), func(c models.Club, _ int) bool {
		return c.State == state
	})
}

func GetClubsByType(ctx context.Context, db *DB, courseType models.CourseType) []models.Club {
	return lo.Filter(GetAllClubs(ctx, db), func(c models.Club, _ int) bool {
		return c.CourseType == courseType
	})
}

func SearchClubs(ctx context.Context, db *DB, query string) []models.Club {
	q := strings.ToLower(query)
	return lo.Filter(GetAllClubs(ctx, db), func(c models.Club, _ int) bool {
		return strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.City), q) ||
			strings.Contains(strings.ToLower(c.State), q)
	})
}

// ReplaceClubs overwrites the master club collection; only the importer and
// backup restore call this.
func ReplaceClubs(ctx context.Context, db *DB, clubs []models.Club) error {
	return Replace(ctx, db, KeyClubs, clubs)
}

// AddClub creates a club from user input; the importer does not use this.
func AddClub(ctx context.Context, db *DB, club models.Club) (*models.Club, error) {
	now := Now()
	club.ID = GenerateID()
	club.CreatedAt = now
	club.UpdatedAt = now
	if club.CourseIDs == nil {
		club.CourseIDs = []string{}
	}

	if err := Add(ctx, db, KeyClubs, club); err != nil {
		return nil, err
	}
	return &club, nil
}

func UpdateClub(ctx context.Context, db *DB, id string, patch models.ClubPatch) (*models.Club, error) {
	return UpdateByID[models.Club](ctx, db, KeyClubs, id, patch.Apply)
}

// DeleteClub removes the club record only. Owned courses keep their clubId;
// reads through the dangling reference resolve to nothing.
func DeleteClub(ctx context.Context, db *DB, id string) (bool, error) {
	return RemoveByID[models.Club](ctx, db, KeyClubs, id)
}

// ---- user club records ----

func GetAllUserClubRecords(ctx context.Context, db *DB) []models.UserClubRecord {
	return List[models.UserClubRecord](ctx, db, KeyUserClubs)
}

// GetUserClubRecord finds the user's record for a club by club id, nil when
// the user has no record for it yet.
func GetUserClubRecord(ctx context.Context, db *DB, clubID string) *models.UserClubRecord {
	records := GetAllUserClubRecords(ctx, db)
	for i := range records {
		if records[i].ClubID == clubID {
			return &records[i]
		}
	}
	return nil
}

// CreateUserClubRecord returns the existing record when one exists.
func CreateUserClubRecord(ctx context.Context, db *DB, clubID string, patch models.UserClubRecordPatch) (*models.UserClubRecord, error) {
	existing := GetUserClubRecord(ctx, db, clubID)
	if existing != nil {
		return existing, nil
	}

	now := Now()
	record := models.UserClubRecord{
		ID:           GenerateID(),
		ClubID:       clubID,
		KnownMembers: []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	patch.Apply(&record)

	if err := Add(ctx, db, KeyUserClubs, record); err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateUserClubRecord patches the record for a club, creating it when
// absent.
func UpdateUserClubRecord(ctx context.Context, db *DB, clubID string, patch models.UserClubRecordPatch) (*models.UserClubRecord, error) {
	existing := GetUserClubRecord(ctx, db, clubID)
	if existing == nil {
		return CreateUserClubRecord(ctx, db, clubID, patch)
	}
	return UpdateByID[models.UserClubRecord](ctx, db, KeyUserClubs, existing.ID, patch.Apply)
}

func DeleteUserClubRecord(ctx context.Context, db *DB, clubID string) (bool, error) {
	existing := GetUserClubRecord(ctx, db, clubID)
	if existing == nil {
		return false, nil
	}
	return RemoveByID[models.UserClubRecord](ctx, db, KeyUserClubs, existing.ID)
}

// ---- member management ----

// AddKnownMember records that a contact is a member at a club. Idempotent;
// creates the user club record lazily.
func AddKnownMember(ctx context.Context, db *DB, clubID, contactID string) error {
	record := GetUserClubRecord(ctx, db, clubID)

	if record != nil {
		if lo.Contains(record.KnownMembers, contactID) {
			return nil
		}
		members := append(append([]string{}, record.KnownMembers...), contactID)
		_, err := UpdateUserClubRecord(ctx, db, clubID, models.UserClubRecordPatch{KnownMembers: members})
		return err
	}

	_, err := CreateUserClubRecord(ctx, db, clubID, models.UserClubRecordPatch{KnownMembers: []string{contactID}})
	return err
}

func RemoveKnownMember(ctx context.Context, db *DB, clubID, contactID string) error {
	record := GetUserClubRecord(ctx, db, clubID)
	if record == nil {
		return nil
	}

	members := lo.Filter(record.KnownMembers, func(id string, _ int) bool {
		return id != contactID
	})
	_, err := UpdateUserClubRecord(ctx, db, clubID, models.UserClubRecordPatch{KnownMembers: members})
	return err
}

func GetKnownMembersForClub(ctx context.Context, db *DB, clubID string) []string {
	record := GetUserClubRecord(ctx, db, clubID)
	if record == nil {
		return []string{}
	}
	return record.KnownMembers
}
