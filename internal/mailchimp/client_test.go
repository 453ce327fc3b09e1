package mailchimp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSubscribe_RequestShape(t *testing.T) {
	var gotPath, gotQuery, gotUser, gotPass string
	var gotBody []byte

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotUser, gotPass, _ = r.BasicAuth()
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := NewClient("us14.api.mailchimp.com", "list123", "mc-key", testLogger())
	c.BaseURL = ts.URL

	m := Member{
		EmailAddress: "slim@example.org",
		FullName:     "Mercy General",
		Phone:        "5551234567",
		F3Name:       "Slim",
	}
	if err := c.Subscribe(context.Background(), m); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	if gotPath != "/3.0/lists/list123" {
		t.Errorf("path = %q, want /3.0/lists/list123", gotPath)
	}
	if gotQuery != "skip_merge_validation=true" {
		t.Errorf("query = %q, want skip_merge_validation=true", gotQuery)
	}
	if gotUser != "anystring" || gotPass != "mc-key" {
		t.Errorf("basic auth = %q/%q, want anystring/mc-key", gotUser, gotPass)
	}

	var req struct {
		Members []struct {
			EmailAddress string `json:"email_address"`
			Status       string `json:"status"`
			EmailType    string `json:"email_type"`
			MergeFields  struct {
				FullName string `json:"FULLNAME"`
				Phone    string `json:"PHONE"`
				F3Name   string `json:"F3NAME"`
			} `json:"merge_fields"`
		} `json:"members"`
		SyncTags       bool `json:"sync_tags"`
		UpdateExisting bool `json:"update_existing"`
	}
	if err := json.Unmarshal(gotBody, &req); err != nil {
		t.Fatalf("decode request: %v", err)
	}
	if len(req.Members) != 1 {
		t.Fatalf("members = %d, want 1", len(req.Members))
	}
	got := req.Members[0]
	if got.EmailAddress != "slim@example.org" || got.Status != "subscribed" || got.EmailType != "html" {
		t.Errorf("member = %+v", got)
	}
	if got.MergeFields.FullName != "Mercy General" || got.MergeFields.Phone != "5551234567" || got.MergeFields.F3Name != "Slim" {
		t.Errorf("merge_fields = %+v", got.MergeFields)
	}
	if req.SyncTags || req.UpdateExisting {
		t.Errorf("sync_tags/update_existing must be false, got %+v", req)
	}
}

func TestSubscribe_APIErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer ts.Close()

	c := NewClient("us14.api.mailchimp.com", "list123", "mc-key", testLogger())
	c.BaseURL = ts.URL

	if err := c.Subscribe(context.Background(), Member{EmailAddress: "x@example.org"}); err == nil {
		t.Error("expected error on 400 response")
	}
}
