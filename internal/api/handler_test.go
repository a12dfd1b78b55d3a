package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap"

	"opsboard/m/domain"
	"opsboard/m/internal/dashboard"
	"opsboard/m/internal/database"
	"opsboard/m/internal/migrations"
	"opsboard/m/internal/notify"
	"opsboard/m/internal/seed"
	"opsboard/m/internal/store"
	"opsboard/m/internal/view"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := migrations.Run(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	st := store.New(db)
	ctx := context.Background()
	if err := seed.Load(ctx, st, seed.Sample()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	log := zap.NewNop()
	ctrl := dashboard.New(st, notify.NewCenter(nil, log), log)
	if err := ctrl.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	renderer, err := view.NewRenderer(log)
	if err != nil {
		t.Fatalf("templates: %v", err)
	}

	srv := httptest.NewServer(New(ctrl, renderer, log).Router())
	t.Cleanup(srv.Close)
	return srv
}

// client does not follow redirects so tests can assert on them.
func client() *http.Client {
	return &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}
}

func post(t *testing.T, srv *httptest.Server, path string, form url.Values) *http.Response {
	t.Helper()
	resp, err := client().PostForm(srv.URL+path, form)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	resp.Body.Close()
	return resp
}

func get(t *testing.T, srv *httptest.Server, path string) (*http.Response, string) {
	t.Helper()
	resp, err := client().Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return resp, string(body)
}

func state(t *testing.T, srv *httptest.Server) dashboard.Snapshot {
	t.Helper()
	_, body := get(t, srv, "/api/state")
	var snap dashboard.Snapshot
	if err := json.Unmarshal([]byte(body), &snap); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	return snap
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	resp, body := get(t, srv, "/health")
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, `"ok"`) {
		t.Errorf("health = %d %s", resp.StatusCode, body)
	}
}

func TestIndexRendersDashboard(t *testing.T) {
	srv := newTestServer(t)
	resp, body := get(t, srv, "/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Eficiencia Promedio") || !strings.Contains(body, "HERR-001") {
		t.Error("dashboard panel not rendered")
	}
}

func TestSwitchTab(t *testing.T) {
	srv := newTestServer(t)

	resp := post(t, srv, "/tabs/logistics", nil)
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/" {
		t.Fatalf("switch = %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	if snap := state(t, srv); snap.Active != dashboard.TabLogistics || len(snap.Shipments) != 3 {
		t.Errorf("active = %q shipments = %d", snap.Active, len(snap.Shipments))
	}

	post(t, srv, "/tabs/reports", nil)
	if snap := state(t, srv); snap.Active != dashboard.TabLogistics {
		t.Errorf("unknown tab changed active to %q", snap.Active)
	}
}

func TestCreateInventoryItemFlow(t *testing.T) {
	srv := newTestServer(t)

	post(t, srv, "/modals/add-item", nil)
	if snap := state(t, srv); snap.Modal.Kind != dashboard.ModalAddItem {
		t.Fatalf("modal = %q", snap.Modal.Kind)
	}

	resp := post(t, srv, "/inventory", url.Values{
		"code":        {"MAT-010"},
		"description": {"Material D - Bronce"},
		"category":    {"raw-material"},
		"stock":       {"25"},
		"min_stock":   {"30"},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	snap := state(t, srv)
	if len(snap.Inventory) != 6 {
		t.Fatalf("inventory = %d, want 6", len(snap.Inventory))
	}
	if last := snap.Inventory[5]; last.Code != "MAT-010" || last.Status != domain.StockLow {
		t.Errorf("created = %+v", last)
	}
	if snap.Modal.Kind != dashboard.ModalNone {
		t.Errorf("modal still open: %q", snap.Modal.Kind)
	}

	_, body := get(t, srv, "/api/notifications")
	var toasts []notify.Toast
	if err := json.Unmarshal([]byte(body), &toasts); err != nil {
		t.Fatal(err)
	}
	if len(toasts) != 1 || toasts[0].Kind != notify.KindSuccess {
		t.Errorf("toasts = %+v", toasts)
	}
}

func TestRejectedSubmissionKeepsModal(t *testing.T) {
	srv := newTestServer(t)

	post(t, srv, "/modals/add-item", nil)
	resp := post(t, srv, "/inventory", url.Values{"code": {"X"}, "description": {"Y"}, "category": {"raw-material"}, "stock": {"diez"}, "min_stock": {"1"}})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	snap := state(t, srv)
	if len(snap.Inventory) != 5 {
		t.Errorf("inventory = %d, want 5", len(snap.Inventory))
	}
	if snap.Modal.Kind != dashboard.ModalAddItem || len(snap.Modal.Errors) != 1 || snap.Modal.Errors[0].Field != "stock" {
		t.Errorf("modal = %+v", snap.Modal)
	}

	_, page := get(t, srv, "/")
	if !strings.Contains(page, "debe ser un número entero") {
		t.Error("field error not rendered")
	}
}

func TestDeleteInventoryItem(t *testing.T) {
	srv := newTestServer(t)

	post(t, srv, "/modals/delete-item", url.Values{"id": {"INV-002"}})
	post(t, srv, "/inventory/INV-002/delete", url.Values{"confirm": {"false"}})
	snap := state(t, srv)
	if len(snap.Inventory) != 5 || len(snap.Toasts) != 0 {
		t.Fatalf("declined delete changed state: %d items, %d toasts", len(snap.Inventory), len(snap.Toasts))
	}

	post(t, srv, "/inventory/INV-002/delete", url.Values{"confirm": {"true"}})
	snap = state(t, srv)
	for _, item := range snap.Inventory {
		if item.ID == "INV-002" {
			t.Fatal("item still listed")
		}
	}
	if len(snap.Toasts) != 1 {
		t.Errorf("toasts = %d, want 1", len(snap.Toasts))
	}
}

func TestInventoryPartialFilters(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/partials/inventory?search=ACERO")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(body, "MAT-001") || strings.Contains(body, "PROD-001") {
		t.Errorf("partial = %s", body)
	}
	if snap := state(t, srv); snap.Filter.Search != "ACERO" {
		t.Errorf("filter = %+v", snap.Filter)
	}
}

func TestAPIInventory(t *testing.T) {
	srv := newTestServer(t)

	_, body := get(t, srv, "/api/inventory?category=tooling")
	var items []domain.InventoryItem
	if err := json.Unmarshal([]byte(body), &items); err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].ID != "INV-003" {
		t.Errorf("items = %+v", items)
	}
	if snap := state(t, srv); snap.Filter.Category != "" {
		t.Errorf("api listing changed the session filter: %+v", snap.Filter)
	}
}

func TestFallbackAndStatic(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/reportes/2024")
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, "<!DOCTYPE html>") {
		t.Errorf("fallback = %d", resp.StatusCode)
	}

	resp, _ = get(t, srv, "/static/app.css")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("static = %d", resp.StatusCode)
	}

	if resp := post(t, srv, "/reportes", nil); resp.StatusCode != http.StatusNotFound {
		t.Errorf("POST unmatched = %d, want 404", resp.StatusCode)
	}
}
