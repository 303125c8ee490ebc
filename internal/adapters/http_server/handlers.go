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

	"wunderwohn/internal/app"
	"wunderwohn/internal/domain"
)

type Handlers struct {
	Users      *app.UserService
	Properties *app.PropertyService
	Bookings   *app.BookingService
	Auth       func(http.Handler) http.Handler
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Get("/properties", h.searchProperties)
		r.Get("/properties/{id}", h.getProperty)
		r.Post("/properties", h.createProperty)

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth)
			pr.Get("/auth/me", h.me)
			pr.Post("/bookings", h.createBooking)
			pr.Get("/bookings", h.listBookings)
			pr.Post("/bookings/{id}/cancel", h.cancelBooking)
			pr.Delete("/bookings/{id}", h.deleteBooking)
			pr.Patch("/properties/{id}/availability", h.setAvailability)
		})
	})
}

// ---- wire types ----

type registerRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type propertyRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	PropertyType  string   `json:"property_type"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Address       string   `json:"address"`
	PricePerNight float64  `json:"price_per_night"`
	MaxGuests     int      `json:"max_guests"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     int      `json:"bathrooms"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
}

type propertyResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	PropertyType  string    `json:"property_type"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	Address       string    `json:"address"`
	PricePerNight float64   `json:"price_per_night"`
	MaxGuests     int       `json:"max_guests"`
	Bedrooms      int       `json:"bedrooms"`
	Bathrooms     int       `json:"bathrooms"`
	Amenities     []string  `json:"amenities"`
	Images        []string  `json:"images"`
	Available     bool      `json:"available"`
	CreatedAt     time.Time `json:"created_at"`
}

type bookingRequest struct {
	PropertyID string `json:"property_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Guests     int    `json:"guests"`
}

type bookingCreatedResponse struct {
	Success    bool    `json:"success"`
	BookingID  string  `json:"booking_id"`
	TotalPrice float64 `json:"total_price"`
}

type bookingResponse struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	PropertyID string            `json:"property_id"`
	CheckIn    string            `json:"check_in"`
	CheckOut   string            `json:"check_out"`
	Guests     int               `json:"guests"`
	TotalPrice float64           `json:"total_price"`
	Status     string            `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	Property   *propertyResponse `json:"property"`
}

type availabilityRequest struct {
	Available bool `json:"available"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, FirstName: u.FirstName, LastName: u.LastName, Role: string(u.Role)}
}

func toPropertyResponse(p domain.Property) propertyResponse {
	return propertyResponse{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		PropertyType:  p.PropertyType,
		City:          p.City,
		State:         p.State,
		Address:       p.Address,
		PricePerNight: p.PricePerNight,
		MaxGuests:     p.MaxGuests,
		Bedrooms:      p.Bedrooms,
		Bathrooms:     p.Bathrooms,
		Amenities:     p.Amenities,
		Images:        p.Images,
		Available:     p.Available,
		CreatedAt:     p.CreatedAt,
	}
}

func toBookingResponse(v domain.BookingView) bookingResponse {
	out := bookingResponse{
		ID:         v.Booking.ID,
		UserID:     v.Booking.UserID,
		PropertyID: v.Booking.PropertyID,
		CheckIn:    v.Booking.CheckIn.String(),
		CheckOut:   v.Booking.CheckOut.String(),
		Guests:     v.Booking.Guests,
		TotalPrice: v.Booking.TotalPrice,
		Status:     v.Booking.Status,
		CreatedAt:  v.Booking.CreatedAt,
	}
	if v.Property != nil {
		pr := toPropertyResponse(*v.Property)
		out.Property = &pr
	}
	return out
}

// ---- helpers ----

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps the domain taxonomy onto HTTP statuses; anything outside
// it is a 500 so store failures stay distinguishable from bad requests.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrInvalidDateRange):
		writeProblem(w, http.StatusBadRequest, "Invalid Date Range", err.Error())
	case errors.Is(err, domain.ErrDateConflict):
		writeProblem(w, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeProblem(w, http.StatusForbidden, "Forbidden", err.Error())
	case errors.Is(err, domain.ErrEmailTaken):
		writeProblem(w, http.StatusBadRequest, "Email Taken", err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "malformed JSON")
		return false
	}
	return true
}

func caller(w http.ResponseWriter, r *http.Request) (domain.User, bool) {
	u, ok := CallerFrom(r.Context())
	if !ok {
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", "no identity")
	}
	return u, ok
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

// ---- auth ----

func (h *Handlers) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "email and password are required")
		return
	}
	res, err := h.Users.Register(r.Context(), app.RegisterInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{Token: res.Token, User: toUserResponse(res.User)})
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.Users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{Token: res.Token, User: toUserResponse(res.User)})
}

func (h *Handlers) me(w http.ResponseWriter, r *http.Request) {
	u, ok := caller(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// ---- properties ----

func (h *Handlers) searchProperties(w http.ResponseWriter, r *http.Request) {
	c, ok := parseCriteria(w, r)
	if !ok {
		return
	}
	props, err := h.Properties.Search(r.Context(), c)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]propertyResponse, 0, len(props))
	for _, p := range props {
		out = append(out, toPropertyResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func parseCriteria(w http.ResponseWriter, r *http.Request) (domain.SearchCriteria, bool) {
	q := r.URL.Query()
	var c domain.SearchCriteria
	if v := q.Get("city"); v != "" {
		c.City = &v
	}
	if v := q.Get("property_type"); v != "" {
		c.PropertyType = &v
	}
	if v := q.Get("min_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid Filter", "min_price must be a number")
			return c, false
		}
		c.MinPrice = &f
	}
	if v := q.Get("max_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid Filter", "max_price must be a number")
			return c, false
		}
		c.MaxPrice = &f
	}
	if v := q.Get("min_guests"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid Filter", "min_guests must be an integer")
			return c, false
		}
		c.MinGuests = &n
	}
	// limit and offset only need to parse; the service clamps out-of-range
	// values into the result window
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid Filter", "limit must be an integer")
			return c, false
		}
		c.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid Filter", "offset must be an integer")
			return c, false
		}
		c.Offset = n
	}
	return c, true
}

func (h *Handlers) getProperty(w http.ResponseWriter, r *http.Request) {
	p, err := h.Properties.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	etag, body := calcETagAndBody(toPropertyResponse(p))
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write getProperty body")
	}
}

func (h *Handlers) createProperty(w http.ResponseWriter, r *http.Request) {
	var req propertyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title == "" || req.PricePerNight <= 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "title and a positive price_per_night are required")
		return
	}
	p, err := h.Properties.Create(r.Context(), app.PropertyInput{
		Title:         req.Title,
		Description:   req.Description,
		PropertyType:  req.PropertyType,
		City:          req.City,
		State:         req.State,
		Address:       req.Address,
		PricePerNight: req.PricePerNight,
		MaxGuests:     req.MaxGuests,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		Amenities:     req.Amenities,
		Images:        req.Images,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPropertyResponse(p))
}

func (h *Handlers) setAvailability(w http.ResponseWriter, r *http.Request) {
	u, ok := caller(w, r)
	if !ok {
		return
	}
	if !u.IsAdmin() {
		writeProblem(w, http.StatusForbidden, "Forbidden", "admin role required")
		return
	}
	var req availabilityRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.Properties.SetAvailability(r.Context(), chi.URLParam(r, "id"), req.Available); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ---- bookings ----

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	u, ok := caller(w, r)
	if !ok {
		return
	}
	var req bookingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	in, err := domain.ParseDate(req.CheckIn)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Date", "check_in must be YYYY-MM-DD")
		return
	}
	out, err := domain.ParseDate(req.CheckOut)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Date", "check_out must be YYYY-MM-DD")
		return
	}
	b, err := h.Bookings.Create(r.Context(), u, app.BookingInput{
		PropertyID: req.PropertyID,
		CheckIn:    in,
		CheckOut:   out,
		Guests:     req.Guests,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookingCreatedResponse{Success: true, BookingID: b.ID, TotalPrice: b.TotalPrice})
}

func (h *Handlers) listBookings(w http.ResponseWriter, r *http.Request) {
	u, ok := caller(w, r)
	if !ok {
		return
	}
	views, err := h.Bookings.List(r.Context(), u)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]bookingResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toBookingResponse(v))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) cancelBooking(w http.ResponseWriter, r *http.Request) {
	u, ok := caller(w, r)
	if !ok {
		return
	}
	if err := h.Bookings.Cancel(r.Context(), u, chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handlers) deleteBooking(w http.ResponseWriter, r *http.Request) {
	u, ok := caller(w, r)
	if !ok {
		return
	}
	if err := h.Bookings.Delete(r.Context(), u, chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "booking deleted"})
}
