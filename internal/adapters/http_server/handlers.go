// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"matcha_map/internal/adapters/observability"
	"matcha_map/internal/app"
	"matcha_map/internal/domain"
)

type Handlers struct {
	Q         *app.QueryService
	R         *app.ReviewService
	SubmitRPS int
}

type problem struct {
	Type   string            `json:"type"`
	Title  string            `json:"title"`
	Status int               `json:"status"`
	Detail string            `json:"detail,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/cafes", h.listCafes)
	s.mux.Get("/v1/cafes/{id}", h.getCafe)
	s.mux.Get("/v1/cafes/{id}/reviews", h.listReviews)
	s.mux.With(SubmitLimit(h.SubmitRPS)).Post("/v1/cafes/{id}/reviews", h.createReview)
	s.mux.Get("/v1/map/pins", h.mapPins)
}

// ---- response shapes ----

type ratingJSON struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type cafeJSON struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Address     string            `json:"address"`
	Lat         float64           `json:"lat"`
	Lng         float64           `json:"lng"`
	Area        string            `json:"area,omitempty"`
	Specialty   string            `json:"specialty,omitempty"`
	Description string            `json:"description,omitempty"`
	Hours       map[string]string `json:"hours,omitempty"`
	Open        bool              `json:"open"`
	Rating      *ratingJSON       `json:"rating,omitempty"`
}

type reviewJSON struct {
	ID        string    `json:"id"`
	CafeID    string    `json:"cafe_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

type pinJSON struct {
	CafeID string  `json:"cafe_id"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Open   bool    `json:"open"`
}

type mapJSON struct {
	Pins   []pinJSON  `json:"pins"`
	Center [2]float64 `json:"center"`
	Zoom   int        `json:"zoom"`
}

func toCafeJSON(v domain.CafeView) cafeJSON {
	out := cafeJSON{
		ID:          v.ID,
		Name:        v.Name,
		Address:     v.Address,
		Lat:         v.Lat,
		Lng:         v.Lng,
		Area:        v.Area,
		Specialty:   v.Specialty,
		Description: v.Description,
		Hours:       v.Hours,
		Open:        v.Open,
	}
	if v.Rating != nil {
		out.Rating = &ratingJSON{Average: v.Rating.Average, Count: v.Rating.Count}
	}
	return out
}

func toReviewJSON(r domain.Review) reviewJSON {
	return reviewJSON{
		ID: r.ID, CafeID: r.CafeID, Rating: r.Rating,
		Comment: r.Comment, Author: r.Author, CreatedAt: r.CreatedAt,
	}
}

// ---- helpers ----

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	writeProblemFields(w, status, title, detail, nil)
}

func writeProblemFields(w http.ResponseWriter, status int, title, detail string, fields map[string]string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail, Fields: fields}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSONWithETag(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// parseFilters reads the optional area/open toggles; ok is false after a
// problem response has been written.
func parseFilters(w http.ResponseWriter, r *http.Request) (domain.Filters, bool) {
	var f domain.Filters
	switch area := r.URL.Query().Get("area"); area {
	case "", domain.AreaCBD, domain.AreaOutside:
		f.Area = area
	default:
		writeProblem(w, http.StatusBadRequest, "Invalid area", "area must be cbd or outside")
		return f, false
	}
	if open := r.URL.Query().Get("open"); open != "" {
		b, err := strconv.ParseBool(open)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid open flag", "open must be a boolean")
			return f, false
		}
		f.OpenOnly = b
	}
	return f, true
}

// ---- handlers ----

func (h *Handlers) listCafes(w http.ResponseWriter, r *http.Request) {
	f, ok := parseFilters(w, r)
	if !ok {
		return
	}
	views, err := h.Q.ListCafes(r.Context(), f, time.Now())
	if err != nil {
		writeProblem(w, http.StatusServiceUnavailable, "Store Unavailable", "could not load reviews")
		return
	}
	out := make([]cafeJSON, 0, len(views))
	for _, v := range views {
		out = append(out, toCafeJSON(v))
	}
	writeJSONWithETag(w, r, out)
}

func (h *Handlers) getCafe(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	v, err := h.Q.GetCafe(r.Context(), id, time.Now())
	if errors.Is(err, domain.ErrNotFound) {
		writeProblem(w, http.StatusNotFound, "Not Found", "cafe not found")
		return
	}
	if err != nil {
		writeProblem(w, http.StatusServiceUnavailable, "Store Unavailable", "could not load reviews")
		return
	}
	writeJSONWithETag(w, r, toCafeJSON(v))
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	limit := 50
	if ls := r.URL.Query().Get("limit"); ls != "" {
		l, err := strconv.Atoi(ls)
		if err != nil || l <= 0 || l > 200 {
			writeProblem(w, http.StatusBadRequest, "Invalid limit", "limit must be an integer between 1 and 200")
			return
		}
		limit = l
	}

	// Newest first; aligns with the DB index on (cafe_id, created_at, id)
	page := domain.PageQuery{Limit: limit, Sort: "-created_at"}
	out, err := h.Q.ListReviews(r.Context(), id, page)
	if errors.Is(err, domain.ErrNotFound) {
		writeProblem(w, http.StatusNotFound, "Not Found", "cafe not found")
		return
	}
	if err != nil {
		writeProblem(w, http.StatusServiceUnavailable, "Store Unavailable", "could not load reviews")
		return
	}

	items := make([]reviewJSON, 0, len(out.Items))
	for _, rv := range out.Items {
		items = append(items, toReviewJSON(rv))
	}
	writeJSONWithETag(w, r, items)
}

func (h *Handlers) createReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
		Author  string `json:"author"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be JSON")
		return
	}

	rv, err := h.R.SubmitReview(r.Context(), domain.NewReview{
		CafeID:  id,
		Rating:  body.Rating,
		Comment: body.Comment,
		Author:  body.Author,
	})
	if err != nil {
		if ve, ok := domain.AsValidation(err); ok {
			observability.ObserveSubmission("rejected")
			writeProblemFields(w, http.StatusBadRequest, "Validation Failed", "review was rejected", ve.Fields)
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			observability.ObserveSubmission("rejected")
			writeProblem(w, http.StatusNotFound, "Not Found", "cafe not found")
			return
		}
		observability.ObserveSubmission("failed")
		log.Error().Err(err).Str("cafe", id).Msg("review submit failed")
		writeProblem(w, http.StatusServiceUnavailable, "Store Unavailable", "could not save the review")
		return
	}

	observability.ObserveSubmission("accepted")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toReviewJSON(rv)); err != nil {
		log.Error().Err(err).Msg("failed to write createReview body")
	}
}

func (h *Handlers) mapPins(w http.ResponseWriter, r *http.Request) {
	f, ok := parseFilters(w, r)
	if !ok {
		return
	}
	mv, err := h.Q.MapPins(r.Context(), f, time.Now())
	if err != nil {
		writeProblem(w, http.StatusServiceUnavailable, "Store Unavailable", "could not load reviews")
		return
	}
	out := mapJSON{
		Pins:   make([]pinJSON, 0, len(mv.Pins)),
		Center: [2]float64{mv.Center.Lat, mv.Center.Lng},
		Zoom:   mv.Zoom,
	}
	for _, p := range mv.Pins {
		out.Pins = append(out.Pins, pinJSON{CafeID: p.CafeID, Lat: p.Coords.Lat, Lng: p.Coords.Lng, Open: p.Open})
	}
	writeJSONWithETag(w, r, out)
}
