package fiber

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/aydenstechdungeon/modalkit/config"
)

const testConfig = `
appName: Test
compress: false
modals:
  - id: confirm
    isOpen: true
    closable: true
    headerTitle: Delete item?
    mainContent: This cannot be undone.
    hasFooter: true
    buttonFooter: Delete
    modalSize: small
  - id: info
    headerTitle: Info
`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg, err := config.Parse([]byte(testConfig))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return NewServer(cfg)
}

func doRequest(t *testing.T, s *Server, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := s.App.Test(req, -1)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Reading body failed: %v", err)
	}
	return resp, string(body)
}

func TestPageRendersOpenModals(t *testing.T) {
	s := newTestServer(t)
	resp, body := doRequest(t, s, httptest.NewRequest(http.MethodGet, "/", nil))

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	for _, want := range []string{
		`<title>Test</title>`,
		`<dialog class="m-modal" id="confirm" open>`,
		`<div class="m-modal-content small">`,
		`<p class="m-modal-header__text">Delete item?</p>`,
		`data-on="click:confirm.close"`,
		`data-on="click:info.open">Open Info</button>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected page to contain %s", want)
		}
	}
	if strings.Contains(body, `id="info"`) {
		t.Error("Expected closed modal not to render")
	}
}

func TestCloseActionClosesModal(t *testing.T) {
	s := newTestServer(t)

	resp, body := doRequest(t, s, httptest.NewRequest(http.MethodPost, "/_modal/action/confirm.close", nil))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", resp.StatusCode, body)
	}

	var result struct {
		OK     bool   `json:"ok"`
		Action string `json:"action"`
	}
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if !result.OK || result.Action != "confirm.close" {
		t.Errorf("Unexpected result: %+v", result)
	}

	if s.Modals()[0].Open {
		t.Error("Expected modal to be closed after close action")
	}

	_, page := doRequest(t, s, httptest.NewRequest(http.MethodGet, "/", nil))
	if strings.Contains(page, `id="confirm"`) {
		t.Error("Expected closed modal to disappear from the page")
	}
}

func TestOpenActionReopensModal(t *testing.T) {
	s := newTestServer(t)

	doRequest(t, s, httptest.NewRequest(http.MethodPost, "/_modal/action/info.open", nil))
	if !s.Modals()[1].Open {
		t.Error("Expected info modal to be open")
	}

	_, body := doRequest(t, s, httptest.NewRequest(http.MethodGet, StatePath, nil))
	var st struct {
		Open    map[string]bool `json:"open"`
		Actions []string        `json:"actions"`
	}
	if err := json.Unmarshal([]byte(body), &st); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if !st.Open["info"] || !st.Open["confirm"] {
		t.Errorf("Expected both modals open, got %v", st.Open)
	}
	wantActions := []string{"confirm.close", "confirm.open", "info.close", "info.open"}
	if strings.Join(st.Actions, ",") != strings.Join(wantActions, ",") {
		t.Errorf("Expected actions %v, got %v", wantActions, st.Actions)
	}
}

func TestUnknownActionReturns404(t *testing.T) {
	s := newTestServer(t)
	resp, body := doRequest(t, s, httptest.NewRequest(http.MethodPost, "/_modal/action/missing.close", nil))

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, string(ErrorCodeNotFound)) {
		t.Errorf("Expected NOT_FOUND in body, got %s", body)
	}
}

func TestUnknownPageReturnsHTML404(t *testing.T) {
	s := newTestServer(t)
	resp, body := doRequest(t, s, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "<h1>NOT_FOUND</h1>") {
		t.Errorf("Expected HTML error page, got %s", body)
	}
}

func TestStylesheetServing(t *testing.T) {
	s := newTestServer(t)

	resp, body := doRequest(t, s, httptest.NewRequest(http.MethodGet, StylesheetPath, nil))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/css") {
		t.Errorf("Expected text/css, got %s", resp.Header.Get("Content-Type"))
	}
	if !strings.Contains(body, ".m-modal-content") {
		t.Error("Expected stylesheet body")
	}

	etag := resp.Header.Get("ETag")
	if etag == "" {
		t.Fatal("Expected ETag")
	}
	req := httptest.NewRequest(http.MethodGet, StylesheetPath, nil)
	req.Header.Set("If-None-Match", etag)
	resp, _ = doRequest(t, s, req)
	if resp.StatusCode != http.StatusNotModified {
		t.Errorf("Expected 304, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, StylesheetPath, nil)
	req.Header.Set("Accept-Encoding", "br, gzip")
	resp, _ = doRequest(t, s, req)
	if resp.Header.Get("Content-Encoding") != "br" {
		t.Errorf("Expected br encoding, got %q", resp.Header.Get("Content-Encoding"))
	}
}

func TestRuntimeServing(t *testing.T) {
	s := newTestServer(t)
	resp, body := doRequest(t, s, httptest.NewRequest(http.MethodGet, RuntimePath, nil))

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "/_modal/action/") {
		t.Error("Expected runtime to post to the action endpoint")
	}
}

func TestLoadReplacesActions(t *testing.T) {
	s := newTestServer(t)

	cfg, err := config.Parse([]byte("modals:\n  - id: other\n    isOpen: true\n"))
	if err != nil {
		t.Fatal(err)
	}
	s.Load(cfg)

	if _, ok := s.Actions.Get("confirm.close"); ok {
		t.Error("Expected old close action to be removed")
	}
	if _, ok := s.Actions.Get("other.close"); !ok {
		t.Error("Expected new close action to be registered")
	}
	if len(s.Modals()) != 1 {
		t.Errorf("Expected 1 modal, got %d", len(s.Modals()))
	}
}

func TestReloadKeepsOpenFlagOfUnchangedModals(t *testing.T) {
	s := newTestServer(t)
	doRequest(t, s, httptest.NewRequest(http.MethodPost, "/_modal/action/confirm.close", nil))

	same, err := config.Parse([]byte(testConfig))
	if err != nil {
		t.Fatal(err)
	}
	s.Load(same)
	if s.Modals()[0].Open {
		t.Error("Expected unchanged modal to stay closed across reload")
	}

	edited, err := config.Parse([]byte(strings.Replace(testConfig, "Delete item?", "Remove item?", 1)))
	if err != nil {
		t.Fatal(err)
	}
	s.Load(edited)
	if !s.Modals()[0].Open {
		t.Error("Expected edited modal to be reseeded from isOpen")
	}

	doRequest(t, s, httptest.NewRequest(http.MethodPost, "/_modal/action/confirm.close", nil))
	if s.Modals()[0].Open {
		t.Error("Expected close action to reach the reloaded modal")
	}
}
