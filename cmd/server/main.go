package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/mq-QMGTM/jdga-app/internal/config"
	"github.com/mq-QMGTM/jdga-app/internal/handlers"
	"github.com/mq-QMGTM/jdga-app/internal/importer"
	"github.com/mq-QMGTM/jdga-app/internal/storage"
)

func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Without course data the app is useless, so a failed seed blocks startup.
	if err := importer.EnsureCourseData(context.Background(), db, cfg.CourseData); err != nil {
		log.Fatal(err)
	}

	h := handlers.New(db, cfg)

	// Serve static files
	fs := http.FileServer(http.Dir(cfg.StaticDir))
	http.Handle("/static/", noCache(http.StripPrefix("/static/", fs)))

	// API Endpoints
	http.HandleFunc("/api/courses", h.CoursesHandler)                // GET
	http.HandleFunc("/api/courses/detail", h.CourseDetailHandler)    // GET
	http.HandleFunc("/api/courses/import", h.ImportCoursesHandler)   // POST
	http.HandleFunc("/api/clubs", h.ClubsHandler)                    // GET, POST
	http.HandleFunc("/api/clubs/update", h.UpdateClubHandler)        // POST
	http.HandleFunc("/api/clubs/delete", h.DeleteClubHandler)        // POST
	http.HandleFunc("/api/clubs/members", h.KnownMembersHandler)     // GET, POST
	http.HandleFunc("/api/user-courses", h.UserCoursesHandler)       // GET
	http.HandleFunc("/api/user-courses/played", h.MarkPlayedHandler) // POST
	http.HandleFunc("/api/user-courses/best-score", h.BestScoreHandler)
	http.HandleFunc("/api/user-courses/update", h.UpdateUserCourseHandler)
	http.HandleFunc("/api/user-courses/merch", h.MerchHandler)
	http.HandleFunc("/api/favorites", h.FavoritesHandler)            // GET, POST
	http.HandleFunc("/api/favorites/rank", h.FavoriteRankHandler)    // POST
	http.HandleFunc("/api/favorites/delete", h.DeleteFavoriteHandler)
	http.HandleFunc("/api/scorecards", h.ScorecardsHandler) // GET, POST
	http.HandleFunc("/api/scorecards/update", h.UpdateScorecardHandler)
	http.HandleFunc("/api/scorecards/delete", h.DeleteScorecardHandler)
	http.HandleFunc("/api/scorecards/stats", h.ScorecardStatsHandler)
	http.HandleFunc("/api/scorecards/image", h.ScorecardImageHandler)
	http.HandleFunc("/api/contacts", h.ContactsHandler) // GET, POST
	http.HandleFunc("/api/contacts/update", h.UpdateContactHandler)
	http.HandleFunc("/api/contacts/delete", h.DeleteContactHandler)
	http.HandleFunc("/api/contacts/stats", h.ContactStatsHandler)
	http.HandleFunc("/api/contacts/photo", h.ContactPhotoHandler)
	http.HandleFunc("/api/contacts/played-together", h.PlayedTogetherHandler)
	http.HandleFunc("/api/contacts/fetch-hcp", h.FetchHCPHandler) // POST
	http.HandleFunc("/api/memberships", h.MembershipsHandler)     // GET, POST
	http.HandleFunc("/api/memberships/guest", h.MembershipGuestHandler)
	http.HandleFunc("/api/memberships/sponsored", h.SponsoredGuestHandler)
	http.HandleFunc("/api/trips", h.TripsHandler) // GET, POST
	http.HandleFunc("/api/trips/update", h.UpdateTripHandler)
	http.HandleFunc("/api/trips/delete", h.DeleteTripHandler)
	http.HandleFunc("/api/trips/course", h.TripCourseHandler)
	http.HandleFunc("/api/tournaments", h.TournamentsHandler) // GET, POST
	http.HandleFunc("/api/settings", h.SettingsHandler)       // GET, POST
	http.HandleFunc("/api/export", h.ExportHandler)           // GET
	http.HandleFunc("/api/import", h.ImportHandler)           // POST
	http.HandleFunc("/api/reset", h.ResetHandler)             // POST

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		http.ServeFile(w, r, "./web/templates/index.html")
	})

	log.Println("Server started on " + cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, nil))
}
