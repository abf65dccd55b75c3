package routes

import (
	"fmt"
	"net/http"
	"testing"
)

func TestUserCreateValidation(t *testing.T) {
	app := newTestApp(t)

	// Required keys.
	resp, body := do(t, app, http.MethodPost, "/users", map[string]interface{}{
		"email": "jane@example.com",
	})
	wantStatus(t, resp, http.StatusBadRequest)
	wantCode(t, body, 40000)

	// Malformed email.
	resp, _ = do(t, app, http.MethodPost, "/users", map[string]interface{}{
		"email":      "not-an-email",
		"first_name": "Jane",
		"last_name":  "Doe",
		"password":   "secret",
	})
	wantStatus(t, resp, http.StatusBadRequest)

	// Typed field of the wrong type.
	resp, _ = do(t, app, http.MethodPost, "/users", map[string]interface{}{
		"email":      "jane@example.com",
		"first_name": 42,
		"last_name":  "Doe",
		"password":   "secret",
	})
	wantStatus(t, resp, http.StatusBadRequest)
}

func TestUserLifecycle(t *testing.T) {
	app := newTestApp(t)

	resp, body := do(t, app, http.MethodPost, "/users", map[string]interface{}{
		"email":      "jane@example.com",
		"first_name": "Jane",
		"last_name":  "Doe",
		"password":   "secret",
		"is_admin":   true,
	})
	wantStatus(t, resp, http.StatusCreated)
	userURL := fmt.Sprintf("/users/%v", body["id"])

	// Duplicate email.
	resp, body = do(t, app, http.MethodPost, "/users", map[string]interface{}{
		"email":      "jane@example.com",
		"first_name": "Janet",
		"last_name":  "Doe",
		"password":   "secret",
	})
	wantStatus(t, resp, http.StatusConflict)
	wantCode(t, body, 10000)

	// The password hash never appears in responses.
	resp, user := do(t, app, http.MethodGet, userURL, nil)
	wantStatus(t, resp, http.StatusOK)
	if _, leaked := user["password"]; leaked {
		t.Fatal("password field leaked in user JSON")
	}
	if user["email"] != "jane@example.com" || user["is_admin"] != true {
		t.Fatalf("unexpected user body: %v", user)
	}

	// Email is immutable.
	resp, body = do(t, app, http.MethodPut, userURL, map[string]interface{}{
		"email": "other@example.com",
	})
	wantStatus(t, resp, http.StatusForbidden)
	if body["msg"] != "Email cannot be changed" {
		t.Fatalf("forbidden msg = %v", body["msg"])
	}

	resp, _ = do(t, app, http.MethodPut, userURL, map[string]interface{}{
		"first_name": "Janie",
	})
	wantStatus(t, resp, http.StatusOK)
	_, user = do(t, app, http.MethodGet, userURL, nil)
	if user["first_name"] != "Janie" {
		t.Fatalf("first_name = %v, want Janie", user["first_name"])
	}

	resp, _ = do(t, app, http.MethodDelete, userURL, nil)
	wantStatus(t, resp, http.StatusOK)
	resp, _ = do(t, app, http.MethodGet, userURL, nil)
	wantStatus(t, resp, http.StatusNotFound)
}
