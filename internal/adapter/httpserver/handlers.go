package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/fairyhunter13/internship-recommender/internal/config"
	"github.com/fairyhunter13/internship-recommender/internal/domain"
	"github.com/fairyhunter13/internship-recommender/internal/usecase"
)

const (
	defaultTopN = 5
	minTopN     = 1
	maxTopN     = 10
	// catalogPreviewSize caps the raw posting listing.
	catalogPreviewSize = 10
)

// Server aggregates handler dependencies.
type Server struct {
	Cfg     config.Config
	Reco    *usecase.RecommendService
	Profile domain.ProfileSource
}

// NewServer constructs an HTTP server with all handlers wired.
func NewServer(cfg config.Config, reco *usecase.RecommendService, profile domain.ProfileSource) *Server {
	return &Server{Cfg: cfg, Reco: reco, Profile: profile}
}

var (
	vldOnce sync.Once
	vld     *validator.Validate
)

func getValidator() *validator.Validate {
	vldOnce.Do(func() { vld = validator.New() })
	return vld
}

// HealthHandler reports liveness.
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

// UserHandler serves the stored default profile, always re-read from disk.
func (s *Server) UserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := s.Profile.Load()
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: load profile: %v", domain.ErrInternal, err), nil)
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}

// InternshipsHandler serves the first postings of the catalog, raw,
// including the derived fields.
func (s *Server) InternshipsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		postings := s.Reco.Postings()
		if len(postings) > catalogPreviewSize {
			postings = postings[:catalogPreviewSize]
		}
		writeJSON(w, http.StatusOK, postings)
	}
}

// RecommendationsGetHandler runs the pipeline for the stored default profile.
func (s *Server) RecommendationsGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topN := defaultTopN
		if raw := r.URL.Query().Get("top_n"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, r, fmt.Errorf("%w: top_n must be an integer", domain.ErrInvalidArgument), map[string]string{"top_n": raw})
				return
			}
			topN = n
		}
		profile, err := s.Profile.Load()
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: load profile: %v", domain.ErrInternal, err), nil)
			return
		}
		recs := s.Reco.Recommend(r.Context(), profile, clampTopN(topN))
		writeJSON(w, http.StatusOK, recs)
	}
}

// recommendRequest is the POST payload; missing fields default to empty/false.
type recommendRequest struct {
	Name            string             `json:"name"`
	Education       string             `json:"education"`
	Skills          []string           `json:"skills"`
	SectorInterests []string           `json:"sector_interests"`
	Location        string             `json:"location"`
	Preferences     domain.Preferences `json:"preferences"`
	CareerGoals     string             `json:"career_goals"`
	TopN            int                `json:"top_n" validate:"omitempty,gte=1,lte=10"`
}

// RecommendationsPostHandler runs the pipeline for the supplied profile.
func (s *Server) RecommendationsPostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recommendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid JSON body: %v", domain.ErrInvalidArgument, err), nil)
			return
		}
		if err := getValidator().Struct(req); err != nil {
			writeError(w, r, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err), nil)
			return
		}
		if req.TopN == 0 {
			req.TopN = defaultTopN
		}
		profile := domain.UserProfile{
			Name:            req.Name,
			Education:       req.Education,
			Skills:          req.Skills,
			SectorInterests: req.SectorInterests,
			Location:        req.Location,
			Preferences:     req.Preferences,
			CareerGoals:     req.CareerGoals,
		}
		recs := s.Reco.Recommend(r.Context(), profile, clampTopN(req.TopN))
		writeJSON(w, http.StatusOK, recs)
	}
}

func clampTopN(n int) int {
	if n < minTopN {
		return minTopN
	}
	if n > maxTopN {
		return maxTopN
	}
	return n
}
