package webhook

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestRouting_InteractionEndpoint(t *testing.T) {
	dialogs := &fakeDialogs{}
	server := newTestServer(t, dialogs, &fakeProcessor{}, nil)
	router := server.setupRoutes()

	body := url.Values{"trigger_id": {"trigger-abc"}}.Encode()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, signedRequest(t, body))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	if len(dialogs.opened) != 1 {
		t.Errorf("opened = %v, want one dialog", dialogs.opened)
	}
}

func TestRouting_MethodNotAllowed(t *testing.T) {
	server := newTestServer(t, &fakeDialogs{}, &fakeProcessor{}, nil)
	router := server.setupRoutes()

	req := httptest.NewRequest("GET", "/fngbot/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestRouting_UnknownPath(t *testing.T) {
	server := newTestServer(t, &fakeDialogs{}, &fakeProcessor{}, nil)
	router := server.setupRoutes()

	req := httptest.NewRequest("POST", "/nope/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
