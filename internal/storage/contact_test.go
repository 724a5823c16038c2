package storage

import (
	"context"
	"testing"

	"github.com/mq-QMGTM/jdga-app/internal/models"
)

func newBuddy(first, last string) models.GolfBuddy {
	return models.GolfBuddy{
		FirstName:     first,
		LastName:      last,
		HomeCity:      "Dallas",
		HomeState:     "Texas",
		SkillLevel:    models.SkillIntermediate,
		PlayFrequency: models.FrequencyRegular,
	}
}

func TestCreateAndDeleteContact(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	contact, err := CreateContact(ctx, db, newBuddy("Sam", "Harper"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if contact.ID == "" || contact.CreatedAt == "" {
		t.Error("id and timestamps should be set")
	}
	if contact.MemberClubs == nil || contact.CoursesPlayedTogether == nil {
		t.Error("slice fields should be initialized, not nil")
	}

	if err := SaveContactPhoto(ctx, db, contact.ID, "photodata"); err != nil {
		t.Fatalf("save photo: %v", err)
	}

	removed, err := DeleteContact(ctx, db, contact.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !removed {
		t.Fatal("delete should report removal")
	}
	if GetContactPhoto(ctx, db, contact.ID) != "" {
		t.Error("photo should be deleted with the contact")
	}
}

func TestAddCoursePlayedTogetherFlipsHasPlayedWith(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	contact, err := CreateContact(ctx, db, newBuddy("Sam", "Harper"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if contact.HasPlayedWith {
		t.Fatal("fresh contact should not be marked played with")
	}

	err = AddCoursePlayedTogether(ctx, db, contact.ID, models.CoursePlayRecord{CourseID: "course-1", Date: "2026-04-12"})
	if err != nil {
		t.Fatalf("add play: %v", err)
	}

	contact = GetContactByID(ctx, db, contact.ID)
	if !contact.HasPlayedWith {
		t.Error("playing together should set hasPlayedWith")
	}
	if len(contact.CoursesPlayedTogether) != 1 {
		t.Errorf("got %d play records", len(contact.CoursesPlayedTogether))
	}
}

func TestContactMembershipQueries(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	member, err := CreateContact(ctx, db, newBuddy("Alex", "Reed"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	connector, err := CreateContact(ctx, db, newBuddy("Jo", "Lane"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := AddContactMembership(ctx, db, member.ID, "course-1"); err != nil {
		t.Fatalf("add membership: %v", err)
	}
	if err := AddMemberConnection(ctx, db, connector.ID, models.MemberConnection{CourseID: "course-1", MemberName: "A friend"}); err != nil {
		t.Fatalf("add connection: %v", err)
	}

	members := GetContactsWhoAreMembersAt(ctx, db, "course-1")
	if len(members) != 1 || members[0].ID != member.ID {
		t.Errorf("members at course-1 = %+v", members)
	}

	knows := GetContactsWhoKnowMembersAt(ctx, db, "course-1")
	if len(knows) != 1 || knows[0].ID != connector.ID {
		t.Errorf("know-members at course-1 = %+v", knows)
	}

	// Membership adds are idempotent.
	if err := AddContactMembership(ctx, db, member.ID, "course-1"); err != nil {
		t.Fatalf("re-add membership: %v", err)
	}
	again := GetContactByID(ctx, db, member.ID)
	if len(again.MemberClubs) != 1 {
		t.Errorf("duplicate membership stored: %v", again.MemberClubs)
	}
}

func TestSearchContacts(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	buddy := newBuddy("Sam", "Harper")
	buddy.Nickname = "Lefty"
	if _, err := CreateContact(ctx, db, buddy); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := CreateContact(ctx, db, newBuddy("Alex", "Reed")); err != nil {
		t.Fatalf("create: %v", err)
	}

	if got := SearchContacts(ctx, db, "harper"); len(got) != 1 {
		t.Errorf("search by last name: %+v", got)
	}
	if got := SearchContacts(ctx, db, "lefty"); len(got) != 1 {
		t.Errorf("search by nickname: %+v", got)
	}
	if got := SearchContacts(ctx, db, "zzz"); len(got) != 0 {
		t.Errorf("search with no match: %+v", got)
	}
}

func TestGetContactStats(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	stats := GetContactStats(ctx, db)
	if stats.Total != 0 {
		t.Errorf("empty stats total = %d", stats.Total)
	}
	// Buckets are pre-seeded with every enum value even when empty.
	if _, ok := stats.BySkillLevel[string(models.SkillAdvanced)]; !ok {
		t.Error("skill buckets should include every level")
	}

	played := newBuddy("Sam", "Harper")
	played.HasPlayedWith = true
	played.WouldPlayWith = true
	if _, err := CreateContact(ctx, db, played); err != nil {
		t.Fatalf("create: %v", err)
	}
	other := newBuddy("Alex", "Reed")
	other.MemberClubs = []string{"course-1"}
	if _, err := CreateContact(ctx, db, other); err != nil {
		t.Fatalf("create: %v", err)
	}

	stats = GetContactStats(ctx, db)
	if stats.Total != 2 || stats.PlayedWith != 1 || stats.Members != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.BySkillLevel[string(models.SkillIntermediate)] != 2 {
		t.Errorf("skill bucket = %d, want 2", stats.BySkillLevel[string(models.SkillIntermediate)])
	}
}
