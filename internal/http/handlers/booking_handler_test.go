// README: End-to-end handler tests over flat-file stores.
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	railhttp "railway/internal/http"
	"railway/internal/modules/booking"
	"railway/internal/modules/catalog"
	"railway/internal/modules/pricing"
	"railway/internal/modules/profile"
	"railway/internal/store"
)

func buildTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()

	trains, err := store.OpenJSON(filepath.Join(dir, "trains.json"), catalog.TrainID)
	if err != nil {
		t.Fatalf("open trains store: %v", err)
	}
	bookings, err := store.OpenJSON(filepath.Join(dir, "bookings.json"), booking.ReservationID)
	if err != nil {
		t.Fatalf("open bookings store: %v", err)
	}
	users, err := store.OpenJSON(filepath.Join(dir, "users.json"), profile.ProfileID)
	if err != nil {
		t.Fatalf("open users store: %v", err)
	}

	catalogSvc := catalog.NewService(trains)
	if err := catalogSvc.SeedIfEmpty(t.Context()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	return railhttp.NewRouter(railhttp.ServerDeps{
		Catalog: catalogSvc,
		Pricing: pricing.NewService(),
		Quotes:  pricing.NewQuoteCache(nil), // no redis in tests; every lookup misses
		Booking: booking.NewService(bookings),
		Profile: profile.NewService(users),
	})
}

func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), into); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func firstTrainID(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doRequest(r, http.MethodGet, "/api/trains", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list trains: %d", w.Code)
	}
	var resp struct {
		Trains []catalog.Train `json:"trains"`
	}
	decodeBody(t, w, &resp)
	if len(resp.Trains) == 0 {
		t.Fatal("no seeded trains")
	}
	return string(resp.Trains[0].ID)
}

func TestQuoteEndpoint(t *testing.T) {
	r := buildTestRouter(t)
	trainID := firstTrainID(t, r)

	w := doRequest(r, http.MethodPost, "/api/quotes", map[string]any{
		"train_id":    trainID,
		"age":         30,
		"railcard":    "none",
		"ticket_type": "one_way",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("quote: %d body=%s", w.Code, w.Body.String())
	}
	var q pricing.Quote
	decodeBody(t, w, &q)
	if q.Price <= 0 {
		t.Errorf("quoted price = %v, want positive", q.Price)
	}

	w = doRequest(r, http.MethodPost, "/api/quotes", map[string]any{
		"train_id": "no-such-train",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("quote for unknown train: %d, want 404", w.Code)
	}
}

func TestBookingLifecycleOverHTTP(t *testing.T) {
	r := buildTestRouter(t)
	trainID := firstTrainID(t, r)

	// create: lands in the cart
	w := doRequest(r, http.MethodPost, "/api/bookings", map[string]any{
		"train_id": trainID,
		"passenger": map[string]any{
			"name": "Ivana", "age": 30, "railcard": "none",
		},
		"ticket_type": "one_way",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create booking: %d body=%s", w.Code, w.Body.String())
	}
	var created booking.Reservation
	decodeBody(t, w, &created)
	if created.Status != booking.StatusInCart {
		t.Errorf("created status = %s, want %s", created.Status, booking.StatusInCart)
	}

	id := string(created.ID)

	// cancel before confirm: refused silently, still in cart
	w = doRequest(r, http.MethodPost, "/api/bookings/"+id+"/cancel", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("cancel in-cart: %d", w.Code)
	}
	var afterCancel booking.Reservation
	decodeBody(t, w, &afterCancel)
	if afterCancel.Status != booking.StatusInCart {
		t.Errorf("status after refused cancel = %s, want %s", afterCancel.Status, booking.StatusInCart)
	}

	// confirm, then cancel succeeds
	w = doRequest(r, http.MethodPost, "/api/bookings/"+id+"/confirm", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("confirm: %d", w.Code)
	}
	var confirmed booking.Reservation
	decodeBody(t, w, &confirmed)
	if confirmed.Status != booking.StatusBooked {
		t.Errorf("status after confirm = %s, want %s", confirmed.Status, booking.StatusBooked)
	}

	w = doRequest(r, http.MethodPost, "/api/bookings/"+id+"/cancel", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("cancel booked: %d", w.Code)
	}
	var cancelled booking.Reservation
	decodeBody(t, w, &cancelled)
	if cancelled.Status != booking.StatusCancelled {
		t.Errorf("status after cancel = %s, want %s", cancelled.Status, booking.StatusCancelled)
	}

	// transitions on unknown ids are 404 at the HTTP boundary
	w = doRequest(r, http.MethodPost, "/api/bookings/ghost/confirm", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("confirm unknown id: %d, want 404", w.Code)
	}
}

func TestModifyRecomputesPrice(t *testing.T) {
	r := buildTestRouter(t)
	trainID := firstTrainID(t, r)

	w := doRequest(r, http.MethodPost, "/api/bookings", map[string]any{
		"train_id": trainID,
		"passenger": map[string]any{
			"name": "Ivana", "age": 30, "railcard": "none",
		},
		"ticket_type": "one_way",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create booking: %d", w.Code)
	}
	var created booking.Reservation
	decodeBody(t, w, &created)

	w = doRequest(r, http.MethodPut, "/api/bookings/"+string(created.ID), map[string]any{
		"ticket_type": "return",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("modify: %d body=%s", w.Code, w.Body.String())
	}
	var modified booking.Reservation
	decodeBody(t, w, &modified)
	if modified.Status != booking.StatusModified {
		t.Errorf("status after modify = %s, want %s", modified.Status, booking.StatusModified)
	}
	if modified.FinalPrice != created.FinalPrice*2 {
		t.Errorf("modified price = %v, want doubled %v", modified.FinalPrice, created.FinalPrice*2)
	}
}

func TestProfileEndpoints(t *testing.T) {
	r := buildTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/profiles", map[string]any{
		"username": "ivana", "age": 42, "railcard": "none",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create profile: %d body=%s", w.Code, w.Body.String())
	}

	// duplicate username conflicts
	w = doRequest(r, http.MethodPost, "/api/profiles", map[string]any{
		"username": "IVANA",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate profile: %d, want 409", w.Code)
	}

	w = doRequest(r, http.MethodGet, "/api/profiles/Ivana", nil)
	if w.Code != http.StatusOK {
		t.Errorf("get profile: %d, want 200", w.Code)
	}
}

func TestAssistantUnconfiguredReturns503(t *testing.T) {
	r := buildTestRouter(t)
	w := doRequest(r, http.MethodPost, "/api/assistant", map[string]any{
		"message": "take me to Varna",
	})
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("assistant without provider: %d, want 503", w.Code)
	}
}
