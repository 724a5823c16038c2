package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/mq-QMGTM/jdga-app/internal/config"
	"github.com/mq-QMGTM/jdga-app/internal/hcp"
	"github.com/mq-QMGTM/jdga-app/internal/importer"
	"github.com/mq-QMGTM/jdga-app/internal/models"
	"github.com/mq-QMGTM/jdga-app/internal/storage"
)

// Handler carries the storage context and config into every endpoint.
type Handler struct {
	DB  *storage.DB
	Cfg config.App
}

func New(db *storage.DB, cfg config.App) *Handler {
	return &Handler{DB: db, Cfg: cfg}
}

// ---- courses ----

func (h *Handler) CoursesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	if q := r.URL.Query().Get("query"); q != "" {
		json.NewEncoder(w).Encode(storage.SearchCourses(ctx, h.DB, q))
		return
	}
	if state := r.URL.Query().Get("state"); state != "" {
		json.NewEncoder(w).Encode(storage.GetCoursesByState(ctx, h.DB, state))
		return
	}
	if designer := r.URL.Query().Get("designer"); designer != "" {
		json.NewEncoder(w).Encode(storage.GetCoursesByDesigner(ctx, h.DB, designer))
		return
	}
	if courseType := r.URL.Query().Get("type"); courseType != "" {
		json.NewEncoder(w).Encode(storage.GetCoursesByType(ctx, h.DB, models.CourseType(courseType)))
		return
	}
	if top := r.URL.Query().Get("top"); top != "" {
		limit, _ := strconv.Atoi(top)
		json.NewEncoder(w).Encode(storage.GetTopUSCourses(ctx, h.DB, limit))
		return
	}
	json.NewEncoder(w).Encode(storage.GetAllCourses(ctx, h.DB))
}

func (h *Handler) CourseDetailHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	id := r.URL.Query().Get("id")
	course := storage.GetCourseByID(ctx, h.DB, id)
	if course == nil {
		http.Error(w, "Course not found", http.StatusNotFound)
		return
	}

	detail := struct {
		Course     *models.Course           `json:"course"`
		Location   storage.CourseLocation   `json:"location"`
		Club       *models.Club             `json:"club,omitempty"`
		UserRecord *models.UserCourseRecord `json:"userRecord,omitempty"`
	}{
		Course:     course,
		Location:   storage.ResolveCourseLocation(ctx, h.DB, course),
		UserRecord: storage.GetUserCourseRecord(ctx, h.DB, id),
	}
	if !course.Standalone() {
		detail.Club = storage.GetClubByID(ctx, h.DB, course.ClubID)
	}
	json.NewEncoder(w).Encode(detail)
}

// ImportCoursesHandler re-imports the course dataset from an uploaded CSV.
// This is a full refresh of the club and course collections; user-entered
// data is untouched.
func (h *Handler) ImportCoursesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	clubs, courses, err := importer.ImportCoursesFromCSV(r.Context(), h.DB, string(content))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(map[string]int{"clubs": clubs, "courses": courses})
}

// ---- clubs ----

func (h *Handler) ClubsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == http.MethodGet {
		if id := r.URL.Query().Get("id"); id != "" {
			club := storage.GetClubByID(ctx, h.DB, id)
			if club == nil {
				http.Error(w, "Club not found", http.StatusNotFound)
				return
			}
			json.NewEncoder(w).Encode(club)
			return
		}
		if q := r.URL.Query().Get("query"); q != "" {
			json.NewEncoder(w).Encode(storage.SearchClubs(ctx, h.DB, q))
			return
		}
		if state := r.URL.Query().Get("state"); state != "" {
			json.NewEncoder(w).Encode(storage.GetClubsByState(ctx, h.DB, state))
			return
		}
		json.NewEncoder(w).Encode(storage.GetAllClubs(ctx, h.DB))

	} else if r.Method == http.MethodPost {
		var club models.Club
		if err := json.NewDecoder(r.Body).Decode(&club); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		created, err := storage.AddClub(ctx, h.DB, club)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	} else {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) UpdateClubHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		ID    string           `json:"id"`
		Patch models.ClubPatch `json:"patch"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	club, err := storage.UpdateClub(r.Context(), h.DB, req.ID, req.Patch)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if club == nil {
		http.Error(w, "Club not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(club)
}

func (h *Handler) DeleteClubHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	removed, err := storage.DeleteClub(r.Context(), h.DB, req.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{"removed": removed})
}

func (h *Handler) KnownMembersHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == http.MethodGet {
		clubID := r.URL.Query().Get("club_id")
		json.NewEncoder(w).Encode(storage.GetKnownMembersForClub(ctx, h.DB, clubID))
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ClubID    string `json:"club_id"`
		ContactID string `json:"contact_id"`
		Remove    bool   `json:"remove"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var err error
	if req.Remove {
		err = storage.RemoveKnownMember(ctx, h.DB, req.ClubID, req.ContactID)
	} else {
		err = storage.AddKnownMember(ctx, h.DB, req.ClubID, req.ContactID)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// ---- user course records ----

func (h *Handler) UserCoursesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	if r.URL.Query().Get("played") == "true" {
		json.NewEncoder(w).Encode(storage.GetPlayedCourses(ctx, h.DB))
		return
	}
	if courseID := r.URL.Query().Get("course_id"); courseID != "" {
		record := storage.GetUserCourseRecord(ctx, h.DB, courseID)
		if record == nil {
			http.Error(w, "No record for course", http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(record)
		return
	}
	json.NewEncoder(w).Encode(storage.GetAllUserCourseRecords(ctx, h.DB))
}

func (h *Handler) MarkPlayedHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		CourseID string `json:"course_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := storage.MarkCourseAsPlayed(r.Context(), h.DB, req.CourseID, models.UserCourseRecordPatch{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(record)
}

func (h *Handler) BestScoreHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		CourseID string `json:"course_id"`
		Score    int    `json:"score"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := storage.UpdateBestScore(r.Context(), h.DB, req.CourseID, req.Score); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) UpdateUserCourseHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		CourseID string                       `json:"course_id"`
		Patch    models.UserCourseRecordPatch `json:"patch"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := storage.UpdateUserCourseRecord(r.Context(), h.DB, req.CourseID, req.Patch)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if record == nil {
		http.Error(w, "No record for course", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(record)
}

func (h *Handler) MerchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		CourseID  string           `json:"course_id"`
		ItemID    string           `json:"item_id"`
		Purchased bool             `json:"purchased"`
		Item      models.MerchItem `json:"item"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Purchased {
		if err := storage.MarkMerchPurchased(r.Context(), h.DB, req.CourseID, req.ItemID); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		return
	}

	item, err := storage.AddMerchItem(r.Context(), h.DB, req.CourseID, req.Item)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

// ---- favorite holes ----

func (h *Handler) FavoritesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == http.MethodGet {
		json.NewEncoder(w).Encode(storage.GetAllFavoriteHoles(ctx, h.DB))
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		CourseID   string `json:"course_id"`
		CourseName string `json:"course_name"`
		HoleNumber int    `json:"hole_number"`
		Notes      string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	hole, err := storage.AddFavoriteHole(ctx, h.DB, req.CourseID, req.CourseName, req.HoleNumber, req.Notes)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(hole)
}

func (h *Handler) FavoriteRankHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		ID      string `json:"id"`
		NewRank int    `json:"new_rank"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := storage.UpdateFavoriteHoleRank(r.Context(), h.DB, req.ID, req.NewRank); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) DeleteFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := storage.RemoveFavoriteHole(r.Context(), h.DB, req.ID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// ---- scorecards ----

func (h *Handler) ScorecardsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == http.MethodGet {
		if id := r.URL.Query().Get("id"); id != "" {
			card := storage.GetScorecardByID(ctx, h.DB, id)
			if card == nil {
				http.Error(w, "Scorecard not found", http.StatusNotFound)
				return
			}
			json.NewEncoder(w).Encode(card)
			return
		}
		if courseID := r.URL.Query().Get("course_id"); courseID != "" {
			json.NewEncoder(w).Encode(storage.GetScorecardsForCourse(ctx, h.DB, courseID))
			return
		}
		if contactID := r.URL.Query().Get("contact_id"); contactID != "" {
			json.NewEncoder(w).Encode(storage.GetScorecardsForContact(ctx, h.DB, contactID))
			return
		}
		if recent := r.URL.Query().Get("recent"); recent != "" {
			limit, _ := strconv.Atoi(recent)
			json.NewEncoder(w).Encode(storage.GetRecentScorecards(ctx, h.DB, limit))
			return
		}
		json.NewEncoder(w).Encode(storage.GetAllScorecards(ctx, h.DB))

	} else if r.Method == http.MethodPost {
		var card models.Scorecard
		if err := json.NewDecoder(r.Body).Decode(&card); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		created, err := storage.CreateScorecard(ctx, h.DB, card)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	} else {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) UpdateScorecardHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		ID    string                `json:"id"`
		Patch models.ScorecardPatch `json:"patch"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	card, err := storage.UpdateScorecard(r.Context(), h.DB, req.ID, req.Patch)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if card == nil {
		http.Error(w, "Scorecard not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(card)
}

func (h *Handler) DeleteScorecardHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	removed, err := storage.DeleteScorecard(r.Context(), h.DB, req.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{"removed": removed})
}

func (h *Handler) ScorecardStatsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	stats := storage.GetScorecardStats(r.Context(), h.DB, time.Now().Year())
	json.NewEncoder(w).Encode(stats)
}

func (h *Handler) ScorecardImageHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == http.MethodGet {
		image := storage.GetScorecardImage(ctx, h.DB, r.URL.Query().Get("id"))
		json.NewEncoder(w).Encode(map[string]string{"image": image})
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ID    string `json:"id"`
		Image string `json:"image"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := storage.SaveScorecardImage(ctx, h.DB, req.ID, req.Image); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// ---- contacts ----

func (h *Handler) ContactsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == http.MethodGet {
		if id := r.URL.Query().Get("id"); id != "" {
			contact := storage.GetContactByID(ctx, h.DB, id)
			if contact == nil {
				http.Error(w, "Contact not found", http.StatusNotFound)
				return
			}
			json.NewEncoder(w).Encode(contact)
			return
		}
		if q := r.URL.Query().Get("query"); q != "" {
			json.NewEncoder(w).Encode(storage.SearchContacts(ctx, h.DB, q))
			return
		}
		if courseID := r.URL.Query().Get("member_at"); courseID != "" {
			json.NewEncoder(w).Encode(storage.GetContactsWhoAreMembersAt(ctx, h.DB, courseID))
			return
		}
		if courseID := r.URL.Query().Get("suggest_for"); courseID != "" {
			course := storage.GetCourseByID(ctx, h.DB, courseID)
			if course == nil {
				http.Error(w, "Course not found", http.StatusNotFound)
				return
			}
			loc := storage.ResolveCourseLocation(ctx, h.DB, course)
			json.NewEncoder(w).Encode(storage.GetSuggestedPartnersForCourse(ctx, h.DB, loc.City, loc.State, courseID))
			return
		}
		if r.URL.Query().Get("played_with") == "true" {
			json.NewEncoder(w).Encode(storage.GetContactsPlayedWith(ctx, h.DB))
			return
		}
		json.NewEncoder(w).Encode(storage.GetAllContacts(ctx, h.DB))

	} else if r.Method == http.MethodPost {
		var contact models.GolfBuddy
		if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		created, err := storage.CreateContact(ctx, h.DB, contact)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	} else {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) UpdateContactHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		ID    string                `json:"id"`
		Patch models.GolfBuddyPatch `json:"patch"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	contact, err := storage.UpdateContact(r.Context(), h.DB, req.ID, req.Patch)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if contact == nil {
		http.Error(w, "Contact not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(contact)
}

func (h *Handler) DeleteContactHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	removed, err := storage.DeleteContact(r.Context(), h.DB, req.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{"removed": removed})
}

func (h *Handler) ContactStatsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	json.NewEncoder(w).Encode(storage.GetContactStats(r.Context(), h.DB))
}

func (h *Handler) ContactPhotoHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == http.MethodGet {
		photo := storage.GetContactPhoto(ctx, h.DB, r.URL.Query().Get("id"))
		json.NewEncoder(w).Encode(map[string]string{"photo": photo})
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ID    string `json:"id"`
		Photo string `json:"photo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := storage.SaveContactPhoto(ctx, h.DB, req.ID, req.Photo); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) PlayedTogetherHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		ContactID string                   `json:"contact_id"`
		Play      models.CoursePlayRecord  `json:"play"`
		Member    *models.MemberConnection `json:"member"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var err error
	if req.Member != nil {
		err = storage.AddMemberConnection(r.Context(), h.DB, req.ContactID, *req.Member)
	} else {
		err = storage.AddCoursePlayedTogether(r.Context(), h.DB, req.ContactID, req.Play)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// FetchHCPHandler scrapes the federation page for a player's handicap index
// and stores it on the contact.
func (h *Handler) FetchHCPHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		ContactID string `json:"contact_id"`
		RegNum    string `json:"reg_num"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	handicap, err := hcp.Fetch(r.Context(), nil, h.Cfg.HCPLookupURL, req.RegNum)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	contact, err := storage.UpdateContact(r.Context(), h.DB, req.ContactID, models.GolfBuddyPatch{Handicap: &handicap})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if contact == nil {
		http.Error(w, "Contact not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(contact)
}

// ---- memberships ----

func (h *Handler) MembershipsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == http.MethodGet {
		if id := r.URL.Query().Get("id"); id != "" {
			membership := storage.GetMembershipByID(ctx, h.DB, id)
			if membership == nil {
				http.Error(w, "Membership not found", http.StatusNotFound)
				return
			}
			resp := struct {
				*models.UserMembership
				Stats models.MembershipStats `json:"stats"`
			}{membership, models.CalculateMembershipStats(membership)}
			json.NewEncoder(w).Encode(resp)
			return
		}
		json.NewEncoder(w).Encode(storage.GetAllMemberships(ctx, h.DB))

	} else if r.Method == http.MethodPost {
		var membership models.UserMembership
		if err := json.NewDecoder(r.Body).Decode(&membership); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		created, err := storage.CreateMembership(ctx, h.DB, membership)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	} else {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) MembershipGuestHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		MembershipID string             `json:"membership_id"`
		Guest        models.GuestRecord `json:"guest"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := storage.AddGuestToMembership(r.Context(), h.DB, req.MembershipID, req.Guest); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) SponsoredGuestHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		MembershipID string                `json:"membership_id"`
		GuestID      string                `json:"guest_id"`
		Deactivate   bool                  `json:"deactivate"`
		Guest        models.SponsoredGuest `json:"guest"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var err error
	if req.Deactivate {
		err = storage.DeactivateSponsoredGuest(r.Context(), h.DB, req.MembershipID, req.GuestID)
	} else {
		err = storage.AddSponsoredGuest(r.Context(), h.DB, req.MembershipID, req.Guest)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// ---- trips ----

func (h *Handler) TripsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == http.MethodGet {
		if r.URL.Query().Get("upcoming") == "true" {
			json.NewEncoder(w).Encode(storage.GetUpcomingTrips(ctx, h.DB))
			return
		}
		if r.URL.Query().Get("past") == "true" {
			json.NewEncoder(w).Encode(storage.GetPastTrips(ctx, h.DB))
			return
		}
		json.NewEncoder(w).Encode(storage.GetAllTrips(ctx, h.DB))

	} else if r.Method == http.MethodPost {
		var trip models.GolfTrip
		if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		created, err := storage.CreateTrip(ctx, h.DB, trip)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	} else {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) UpdateTripHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		ID    string               `json:"id"`
		Patch models.GolfTripPatch `json:"patch"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	trip, err := storage.UpdateTrip(r.Context(), h.DB, req.ID, req.Patch)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if trip == nil {
		http.Error(w, "Trip not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(trip)
}

func (h *Handler) DeleteTripHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	removed, err := storage.DeleteTrip(r.Context(), h.DB, req.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{"removed": removed})
}

func (h *Handler) TripCourseHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		TripID string                    `json:"trip_id"`
		Visit  models.PlannedCourseVisit `json:"visit"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := storage.AddCourseToTrip(r.Context(), h.DB, req.TripID, req.Visit); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// ---- tournaments ----

func (h *Handler) TournamentsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == http.MethodGet {
		if course := r.URL.Query().Get("course"); course != "" {
			json.NewEncoder(w).Encode(storage.GetYearsHosted(ctx, h.DB, course))
			return
		}
		if championship := r.URL.Query().Get("championship"); championship != "" {
			hosts := storage.GetHostCoursesForChampionship(ctx, h.DB, models.MajorChampionship(championship))
			json.NewEncoder(w).Encode(hosts)
			return
		}
		resp := struct {
			Results     []models.MajorResult `json:"results"`
			FutureHosts []models.FutureHost  `json:"futureHosts"`
		}{
			Results:     storage.GetAllMajorResults(ctx, h.DB),
			FutureHosts: storage.GetAllFutureHosts(ctx, h.DB),
		}
		json.NewEncoder(w).Encode(resp)

	} else if r.Method == http.MethodPost {
		var result models.MajorResult
		if err := json.NewDecoder(r.Body).Decode(&result); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		created, err := storage.AddMajorResult(ctx, h.DB, result)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	} else {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// ---- settings, backup, reset ----

func (h *Handler) SettingsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == http.MethodGet {
		json.NewEncoder(w).Encode(storage.GetSettings(ctx, h.DB))
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var patch models.UserSettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	settings, err := storage.UpdateSettings(ctx, h.DB, patch)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(settings)
}

func (h *Handler) ExportHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	data, err := h.DB.ExportAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Disposition", "attachment; filename=jdga-backup.json")
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) ImportHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var data map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.DB.ImportAll(r.Context(), data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) ResetHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := h.DB.ClearAll(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
