package importer

import (
	"context"
	"log"

	"github.com/mq-QMGTM/jdga-app/internal/storage"
)

// A stored course collection smaller than this, with no clubs alongside it,
// is treated as stale seed data from before clubs existed and reimported.
const minSeededCourses = 50

// EnsureCourseData runs at startup: it imports the dataset when the course
// collection is empty or looks like a stale pre-club seed, and otherwise
// leaves the stored collections alone.
func EnsureCourseData(ctx context.Context, db *storage.DB, src string) error {
	courses := storage.GetAllCourses(ctx, db)

	if len(courses) > 0 {
		if len(courses) >= minSeededCourses {
			log.Printf("found %d existing courses", len(courses))
			return nil
		}
		if clubs := storage.GetAllClubs(ctx, db); len(clubs) > 0 {
			log.Printf("found %d existing courses and %d clubs", len(courses), len(clubs))
			return nil
		}
	}

	log.Printf("importing course data from %s", src)
	clubCount, courseCount, err := ImportCoursesFromSource(ctx, db, src)
	if err != nil {
		return err
	}
	log.Printf("imported %d clubs and %d courses", clubCount, courseCount)
	return nil
}
