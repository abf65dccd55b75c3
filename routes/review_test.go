package routes

import (
	"fmt"
	"net/http"
	"testing"
)

func TestPlaceReviewLifecycle(t *testing.T) {
	app := newTestApp(t)
	placeID, guestID := seedPlace(t)
	base := fmt.Sprintf("/places/%d/reviews", placeID)

	// Missing message.
	resp, body := do(t, app, http.MethodPost, base, map[string]interface{}{"user_id": guestID})
	wantStatus(t, resp, http.StatusBadRequest)
	wantCode(t, body, 40000)

	// Wrong type names the field.
	resp, body = do(t, app, http.MethodPost, base, map[string]interface{}{
		"user_id": guestID,
		"message": "Lovely place",
		"stars":   "five",
	})
	wantStatus(t, resp, http.StatusBadRequest)
	if body["msg"] != "stars is invalid" {
		t.Fatalf("msg = %v", body["msg"])
	}

	resp, body = do(t, app, http.MethodPost, base, map[string]interface{}{
		"user_id": guestID,
		"message": "Lovely place",
		"stars":   5,
	})
	wantStatus(t, resp, http.StatusCreated)
	reviewURL := fmt.Sprintf("%s/%v", base, body["id"])

	resp, review := do(t, app, http.MethodGet, reviewURL, nil)
	wantStatus(t, resp, http.StatusOK)
	if review["message"] != "Lovely place" || review["stars"] != float64(5) {
		t.Fatalf("review body = %v", review)
	}
	if review["toplaceid"] != float64(placeID) {
		t.Fatalf("toplaceid = %v, want %d", review["toplaceid"], placeID)
	}
	if review["fromuserid"] != float64(guestID) {
		t.Fatalf("fromuserid = %v, want %d", review["fromuserid"], guestID)
	}

	// The review is not reachable through another place.
	resp, _ = do(t, app, http.MethodGet, fmt.Sprintf("/places/404/reviews/%v", body["id"]), nil)
	wantStatus(t, resp, http.StatusNotFound)

	resp, _ = do(t, app, http.MethodDelete, reviewURL, nil)
	wantStatus(t, resp, http.StatusOK)
	resp, _ = do(t, app, http.MethodGet, reviewURL, nil)
	wantStatus(t, resp, http.StatusNotFound)
}

func TestUserReviewLifecycle(t *testing.T) {
	app := newTestApp(t)
	_, guestID := seedPlace(t)

	// Review the owner, written by the guest.
	base := "/users/1/reviews"
	resp, body := do(t, app, http.MethodPost, base, map[string]interface{}{
		"user_id": guestID,
		"message": "Great host",
	})
	wantStatus(t, resp, http.StatusCreated)
	reviewURL := fmt.Sprintf("%s/%v", base, body["id"])

	resp, review := do(t, app, http.MethodGet, reviewURL, nil)
	wantStatus(t, resp, http.StatusOK)
	if review["touserid"] != float64(1) {
		t.Fatalf("touserid = %v, want 1", review["touserid"])
	}

	// Unknown author.
	resp, _ = do(t, app, http.MethodPost, base, map[string]interface{}{
		"user_id": 9999,
		"message": "ghost-written",
	})
	wantStatus(t, resp, http.StatusNotFound)

	resp, list := do(t, app, http.MethodGet, base, nil)
	wantStatus(t, resp, http.StatusOK)
	data := list["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("review list size = %d, want 1", len(data))
	}
}
