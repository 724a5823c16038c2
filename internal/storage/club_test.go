package storage

import (
	"context"
	"testing"

	"github.com/mq-QMGTM/jdga-app/internal/models"
)

func TestAddClubAndUpdate(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	club, err := AddClub(ctx, db, models.Club{Name: "Seminole Golf Club", State: "Florida"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if club.ID == "" || club.CreatedAt == "" {
		t.Error("id and timestamps should be set")
	}
	if club.CourseIDs == nil {
		t.Error("courseIds should be initialized")
	}

	city := "Juno Beach"
	updated, err := UpdateClub(ctx, db, club.ID, models.ClubPatch{City: &city})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.City != "Juno Beach" || updated.State != "Florida" {
		t.Errorf("patch should only touch set fields: %+v", updated)
	}
	if updated.UpdatedAt == club.UpdatedAt && updated.UpdatedAt == "" {
		t.Error("updatedAt should be stamped")
	}
}

func TestDeleteClubLeavesOwnedCourses(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := ReplaceClubs(ctx, db, []models.Club{{ID: "club-1", Name: "Winged Foot Golf Club"}}); err != nil {
		t.Fatalf("replace clubs: %v", err)
	}
	if err := ReplaceCourses(ctx, db, []models.Course{{ID: "c1", Name: "West", ClubID: "club-1"}}); err != nil {
		t.Fatalf("replace courses: %v", err)
	}

	removed, err := DeleteClub(ctx, db, "club-1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !removed {
		t.Fatal("delete should report removal")
	}

	// The course keeps its clubId; the reference just dangles.
	course := GetCourseByID(ctx, db, "c1")
	if course.ClubID != "club-1" {
		t.Errorf("course clubId = %q, want club-1", course.ClubID)
	}
	if loc := ResolveCourseLocation(ctx, db, course); loc != (CourseLocation{}) {
		t.Errorf("dangling reference should resolve empty, got %+v", loc)
	}
}

func TestKnownMembersIdempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := AddKnownMember(ctx, db, "club-1", "contact-1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := AddKnownMember(ctx, db, "club-1", "contact-1"); err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if err := AddKnownMember(ctx, db, "club-1", "contact-2"); err != nil {
		t.Fatalf("add second: %v", err)
	}

	members := GetKnownMembersForClub(ctx, db, "club-1")
	if len(members) != 2 {
		t.Errorf("members = %v, want 2 distinct", members)
	}

	if err := RemoveKnownMember(ctx, db, "club-1", "contact-1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	members = GetKnownMembersForClub(ctx, db, "club-1")
	if len(members) != 1 || members[0] != "contact-2" {
		t.Errorf("after remove: %v", members)
	}

	// Removing from a club with no record is a no-op.
	if err := RemoveKnownMember(ctx, db, "club-404", "contact-1"); err != nil {
		t.Fatalf("remove from unknown club: %v", err)
	}
}

func TestCreateUserClubRecordIdempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	first, err := CreateUserClubRecord(ctx, db, "club-1", models.UserClubRecordPatch{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := CreateUserClubRecord(ctx, db, "club-1", models.UserClubRecordPatch{})
	if err != nil {
		t.Fatalf("create again: %v", err)
	}
	if first.ID != second.ID {
		t.Error("second create should return the existing record")
	}
	if len(GetAllUserClubRecords(ctx, db)) != 1 {
		t.Error("only one record per club")
	}
}
