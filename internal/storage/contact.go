package storage

import (
	"context"
	"log"
	"strings"

	"github.com/samber/lo"

	"github.com/mq-QMGTM/jdga-app/internal/models"
)

// ---- golf buddy CRUD ----

func GetAllContacts(ctx context.Context, db *DB) []models.GolfBuddy {
	return List[models.GolfBuddy](ctx, db, KeyContacts)
}

func GetContactByID(ctx context.Context, db *DB, id string) *models.GolfBuddy {
	return FindByID[models.GolfBuddy](ctx, db, KeyContacts, id)
}

func CreateContact(ctx context.Context, db *DB, contact models.GolfBuddy) (*models.GolfBuddy, error) {
	now := Now()
	contact.ID = GenerateID()
	contact.CreatedAt = now
	contact.UpdatedAt = now
	if contact.MemberClubs == nil {
		contact.MemberClubs = []string{}
	}
	if contact.CoursesPlayedTogether == nil {
		contact.CoursesPlayedTogether = []models.CoursePlayRecord{}
	}
	if contact.KnowsMemberAt == nil {
		contact.KnowsMemberAt = []models.MemberConnection{}
	}

	if err := Add(ctx, db, KeyContacts, contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

func UpdateContact(ctx context.Context, db *DB, id string, patch models.GolfBuddyPatch) (*models.GolfBuddy, error) {
	return UpdateByID[models.GolfBuddy](ctx, db, KeyContacts, id, patch.Apply)
}

// DeleteContact removes the contact and their stored photo. A failed photo
// delete is logged but never blocks the contact delete.
func DeleteContact(ctx context.Context, db *DB, id string) (bool, error) {
	if err := DeleteContactPhoto(ctx, db, id); err != nil {
		log.Printf("error deleting photo for contact %s: %v", id, err)
	}
	return RemoveByID[models.GolfBuddy](ctx, db, KeyContacts, id)
}

// ---- contact queries ----

func GetContactsByCity(ctx context.Context, db *DB, city string) []models.GolfBuddy {
	return lo.Filter(GetAllContacts(ctx, db), func(c models.GolfBuddy, _ int) bool {
		return strings.EqualFold(c.HomeCity, city)
	})
}

func GetContactsByState(ctx context.Context, db *DB, state string) []models.GolfBuddy {
	return lo.Filter(GetAllContacts(ctx, db), func(c models.GolfBuddy, _ int) bool {
		return strings.EqualFold(c.HomeState, state)
	})
}

// GetContactsWhoAreMembersAt matches against memberClubs, which holds course
// ids.
func GetContactsWhoAreMembersAt(ctx context.Context, db *DB, courseID string) []models.GolfBuddy {
	return lo.Filter(GetAllContacts(ctx, db), func(c models.GolfBuddy, _ int) bool {
		return lo.Contains(c.MemberClubs, courseID)
	})
}

func GetContactsWhoKnowMembersAt(ctx context.Context, db *DB, courseID string) []models.GolfBuddy {
	return lo.Filter(GetAllContacts(ctx, db), func(c models.GolfBuddy, _ int) bool {
		return lo.SomeBy(c.KnowsMemberAt, func(m models.MemberConnection) bool {
			return m.CourseID == courseID
		})
	})
}

func GetContactsPlayedWith(ctx context.Context, db *DB) []models.GolfBuddy {
	return lo.Filter(GetAllContacts(ctx, db), func(c models.GolfBuddy, _ int) bool {
		return c.HasPlayedWith
	})
}

func GetContactsWouldPlayWith(ctx context.Context, db *DB) []models.GolfBuddy {
	return lo.Filter(GetAllContacts(ctx, db), func(c models.GolfBuddy, _ int) bool {
		return c.WouldPlayWith && !c.HasPlayedWith
	})
}

func SearchContacts(ctx context.Context, db *DB, query string) []models.GolfBuddy {
	q := strings.ToLower(query)
	return lo.Filter(GetAllContacts(ctx, db), func(c models.GolfBuddy, _ int) bool {
		return strings.Contains(strings.ToLower(c.FirstName), q) ||
			strings.Contains(strings.ToLower(c.LastName), q) ||
			strings.Contains(strings.ToLower(c.Nickname), q) ||
			strings.Contains(strings.ToLower(c.HomeCity), q)
	})
}

// ---- contact-course relationships ----

// AddCoursePlayedTogether appends a shared round and flips hasPlayedWith.
func AddCoursePlayedTogether(ctx context.Context, db *DB, contactID string, record models.CoursePlayRecord) error {
	contact := GetContactByID(ctx, db, contactID)
	if contact == nil {
		return nil
	}

	played := append(append([]models.CoursePlayRecord{}, contact.CoursesPlayedTogether...), record)
	hasPlayed := true
	_, err := UpdateContact(ctx, db, contactID, models.GolfBuddyPatch{
		CoursesPlayedTogether: played,
		HasPlayedWith:         &hasPlayed,
	})
	return err
}

func AddMemberConnection(ctx context.Context, db *DB, contactID string, connection models.MemberConnection) error {
	contact := GetContactByID(ctx, db, contactID)
	if contact == nil {
		return nil
	}

	connections := append(append([]models.MemberConnection{}, contact.KnowsMemberAt...), connection)
	_, err := UpdateContact(ctx, db, contactID, models.GolfBuddyPatch{KnowsMemberAt: connections})
	return err
}

// AddContactMembership marks the contact a member at a course. Idempotent.
func AddContactMembership(ctx context.Context, db *DB, contactID, courseID string) error {
	contact := GetContactByID(ctx, db, contactID)
	if contact == nil {
		return nil
	}

	if lo.Contains(contact.MemberClubs, courseID) {
		return nil
	}
	clubs := append(append([]string{}, contact.MemberClubs...), courseID)
	_, err := UpdateContact(ctx, db, contactID, models.GolfBuddyPatch{MemberClubs: clubs})
	return err
}

func RemoveContactMembership(ctx context.Context, db *DB, contactID, courseID string) error {
	contact := GetContactByID(ctx, db, contactID)
	if contact == nil {
		return nil
	}

	clubs := lo.Filter(contact.MemberClubs, func(id string, _ int) bool {
		return id != courseID
	})
	_, err := UpdateContact(ctx, db, contactID, models.GolfBuddyPatch{MemberClubs: clubs})
	return err
}

// GetSuggestedPartnersForCourse suggests contacts for a round: members at
// the course, people who know a member there, or locals.
func GetSuggestedPartnersForCourse(ctx context.Context, db *DB, courseCity, courseState, courseID string) []models.GolfBuddy {
	return lo.Filter(GetAllContacts(ctx, db), func(c models.GolfBuddy, _ int) bool {
		if lo.Contains(c.MemberClubs, courseID) {
			return true
		}
		if lo.SomeBy(c.KnowsMemberAt, func(m models.MemberConnection) bool {
			return m.CourseID == courseID
		}) {
			return true
		}
		return strings.EqualFold(c.HomeCity, courseCity) || strings.EqualFold(c.HomeState, courseState)
	})
}

// ---- contact photos ----

func SaveContactPhoto(ctx context.Context, db *DB, contactID, photoData string) error {
	return saveBlob(ctx, db, KeyContactPhotos, contactID, photoData)
}

func GetContactPhoto(ctx context.Context, db *DB, contactID string) string {
	return getBlob(ctx, db, KeyContactPhotos, contactID)
}

func DeleteContactPhoto(ctx context.Context, db *DB, contactID string) error {
	return deleteBlob(ctx, db, KeyContactPhotos, contactID)
}

// ---- statistics ----

// ContactStats segments the contact list. Zero-valued on an empty list.
type ContactStats struct {
	Total         int            `json:"total"`
	PlayedWith    int            `json:"playedWith"`
	WouldPlayWith int            `json:"wouldPlayWith"`
	Members       int            `json:"members"`
	BySkillLevel  map[string]int `json:"bySkillLevel"`
	ByFrequency   map[string]int `json:"byFrequency"`
}

func GetContactStats(ctx context.Context, db *DB) ContactStats {
	contacts := GetAllContacts(ctx, db)

	stats := ContactStats{
		Total: len(contacts),
		BySkillLevel: map[string]int{
			string(models.SkillRecreational): 0,
			string(models.SkillIntermediate): 0,
			string(models.SkillAdvanced):     0,
		},
		ByFrequency: map[string]int{
			string(models.FrequencyOccasional): 0,
			string(models.FrequencyRegular):    0,
			string(models.FrequencyAvid):       0,
		},
	}

	for _, c := range contacts {
		if c.HasPlayedWith {
			stats.PlayedWith++
		}
		if c.WouldPlayWith && !c.HasPlayedWith {
			stats.WouldPlayWith++
		}
		if len(c.MemberClubs) > 0 {
			stats.Members++
		}
		if _, ok := stats.BySkillLevel[string(c.SkillLevel)]; ok {
			stats.BySkillLevel[string(c.SkillLevel)]++
		}
		if _, ok := stats.ByFrequency[string(c.PlayFrequency)]; ok {
			stats.ByFrequency[string(c.PlayFrequency)]++
		}
	}

	return stats
}
