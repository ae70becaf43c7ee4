package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mindtest-app/mindtest/internal/metrics"
	"github.com/mindtest-app/mindtest/internal/services"
)

// ExportStore is the extra read the CSV export needs beyond the services.
type ExportStore interface {
	ListAllSessions() ([]*services.TestSession, error)
}

type Router struct {
	questions *services.QuestionService
	profiles  *services.ProfileService
	sessions  *services.SessionService
	payments  *services.PaymentService
	analytics *services.AnalyticsService
	exporter  ExportStore
	bands     services.TierBands
	log       *logrus.Logger
}

func NewRouter(
	questions *services.QuestionService,
	profiles *services.ProfileService,
	sessions *services.SessionService,
	payments *services.PaymentService,
	analytics *services.AnalyticsService,
	exporter ExportStore,
	bands services.TierBands,
	log *logrus.Logger,
) *Router {
	return &Router{
		questions: questions,
		profiles:  profiles,
		sessions:  sessions,
		payments:  payments,
		analytics: analytics,
		exporter:  exporter,
		bands:     bands,
		log:       log,
	}
}

func (rt *Router) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/categories", rt.handleCategories) // GET
	mux.HandleFunc("/api/questions", rt.handleQuestions)   // GET
	mux.HandleFunc("/api/profiles", rt.handleProfiles)     // POST
	mux.HandleFunc("/api/profiles/", rt.handleProfileScoped)
	mux.HandleFunc("/api/sessions", rt.handleSessions) // POST
	mux.HandleFunc("/api/sessions/", rt.handleSessionScoped)
	mux.HandleFunc("/api/analytics", rt.handleAnalytics) // GET
	mux.HandleFunc("/api/export", rt.handleExport)       // GET
}

// GET /api/categories
func (rt *Router) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	type categoryView struct {
		ID         services.Category `json:"id"`
		Name       string            `json:"name"`
		Dimensions []string          `json:"dimensions"`
	}
	out := make([]categoryView, 0, len(services.Categories))
	for _, c := range services.Categories {
		out = append(out, categoryView{
			ID:         c,
			Name:       services.CategoryDisplayName(c),
			Dimensions: services.DimensionNames(c),
		})
	}
	writeData(w, http.StatusOK, out)
}

// GET /api/questions?category=...
func (rt *Router) handleQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	category, err := parseCategoryParam(r.URL.Query().Get("category"))
	if err != nil {
		rt.writeServiceError(w, err)
		return
	}
	questions, err := rt.questions.List(category)
	if err != nil {
		rt.writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]any{"category": category, "questions": questions})
}

// POST /api/profiles
func (rt *Router) handleProfiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	var in services.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, string(services.ErrorValidation), err.Error())
		return
	}
	profile, err := rt.profiles.CreateProfile(in)
	if err != nil {
		rt.writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusCreated, profile)
}

// GET /api/profiles/{id}
func (rt *Router) handleProfileScoped(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/profiles/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}
	profile, err := rt.profiles.GetProfile(id)
	if err != nil {
		rt.writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, profile)
}

// POST /api/sessions
// { profile_id, category, answers: {questionID: {optionIndex, score}} }
func (rt *Router) handleSessions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	var req struct {
		ProfileID string             `json:"profile_id"`
		Category  string             `json:"category"`
		Answers   services.AnswerSet `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, string(services.ErrorValidation), err.Error())
		return
	}
	category, err := services.ParseCategory(req.Category)
	if err != nil {
		rt.writeServiceError(w, err)
		return
	}
	session, scored, err := rt.sessions.SaveSession(r.Context(), req.ProfileID, category, req.Answers)
	if err != nil {
		rt.writeServiceError(w, err)
		return
	}
	metrics.SessionsScored.WithLabelValues(string(category)).Inc()
	metrics.ReportsGenerated.WithLabelValues(string(services.ReportBasic)).Inc()
	writeData(w, http.StatusCreated, map[string]any{
		"session":     session,
		"total_score": scored.TotalScore,
		"max_score":   scored.MaxScore,
		"percentage":  scored.Percentage,
	})
}

// /api/sessions/{id}
// /api/sessions/{id}/breakdown
// /api/sessions/{id}/payment/confirm
func (rt *Router) handleSessionScoped(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
	parts := strings.Split(rest, "/")
	id := parts[0]
	if id == "" {
		http.NotFound(w, r)
		return
	}

	switch {
	case len(parts) == 1:
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
			return
		}
		session, err := rt.sessions.GetSession(r.Context(), id)
		if err != nil {
			rt.writeServiceError(w, err)
			return
		}
		writeData(w, http.StatusOK, session)

	case len(parts) == 2 && parts[1] == "breakdown":
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
			return
		}
		demo := r.URL.Query().Get("demo") == "1"
		breakdown, err := rt.sessions.SessionBreakdown(r.Context(), id, demo)
		if err != nil {
			rt.writeServiceError(w, err)
			return
		}
		session, err := rt.sessions.GetSession(r.Context(), id)
		if err != nil {
			rt.writeServiceError(w, err)
			return
		}
		writeData(w, http.StatusOK, map[string]any{
			"breakdown": breakdown,
			"pattern":   services.AnalyzePattern(session.Answers),
		})

	case len(parts) == 3 && parts[1] == "payment" && parts[2] == "confirm":
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
			return
		}
		var req struct {
			PaymentSessionID string `json:"payment_session_id"`
		}
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&req)
		}
		session, err := rt.payments.ConfirmPayment(r.Context(), id, req.PaymentSessionID)
		if err != nil {
			rt.writeServiceError(w, err)
			return
		}
		metrics.ReportsGenerated.WithLabelValues(string(services.ReportFull)).Inc()
		writeData(w, http.StatusOK, session)

	default:
		http.NotFound(w, r)
	}
}

// GET /api/analytics?category=...
func (rt *Router) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	category, err := parseCategoryParam(r.URL.Query().Get("category"))
	if err != nil {
		rt.writeServiceError(w, err)
		return
	}
	summary, err := rt.analytics.Summary(category)
	if err != nil {
		rt.writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, summary)
}

// GET /api/export
func (rt *Router) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	sessions, err := rt.exporter.ListAllSessions()
	if err != nil {
		rt.writeServiceError(w, err)
		return
	}
	b, err := services.ExportSessionsCSV(services.BuildExportRows(sessions, rt.bands))
	if err != nil {
		rt.writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=sessions.csv")
	_, _ = w.Write(b)
}

func parseCategoryParam(raw string) (services.Category, error) {
	if raw == "" {
		return services.CategoryAll, nil
	}
	return services.ParseCategory(raw)
}

func (rt *Router) writeServiceError(w http.ResponseWriter, err error) {
	se, ok := services.AsServiceError(err)
	if !ok {
		rt.log.WithError(err).Error("unhandled service error")
		writeError(w, http.StatusInternalServerError, string(services.ErrorInternal), "internal error")
		return
	}
	status := http.StatusInternalServerError
	switch se.Code {
	case services.ErrorValidation:
		status = http.StatusBadRequest
	case services.ErrorNotFound:
		status = http.StatusNotFound
	case services.ErrorConflict:
		status = http.StatusConflict
	case services.ErrorExternal:
		status = http.StatusBadGateway
	}
	writeError(w, status, string(se.Code), se.Message)
}

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   map[string]string{"code": code, "message": message},
	})
}
