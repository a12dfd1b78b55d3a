package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"opsboard/m/domain"
	"opsboard/m/internal/dashboard"
	"opsboard/m/internal/view"
)

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	ctrl *dashboard.Controller
	view *view.Renderer
	log  *zap.Logger
}

// New constructs a Handler.
func New(ctrl *dashboard.Controller, renderer *view.Renderer, log *zap.Logger) *Handler {
	return &Handler{ctrl: ctrl, view: renderer, log: log}
}

// Router wires up the pages, fragments, JSON API and static assets.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)
	r.Get("/", h.index)

	r.Post("/tabs/{tab}", h.switchTab)
	r.Get("/inventory/filter", h.filterInventory)

	r.Post("/modals/close", h.closeModal)
	r.Post("/modals/{kind}", h.openModal)

	r.Post("/inventory", h.createInventory)
	r.Post("/inventory/{id}", h.updateInventory)
	r.Post("/inventory/{id}/delete", h.deleteInventory)
	r.Post("/shipments", h.createShipment)
	r.Post("/orders", h.createOrder)
	r.Post("/maintenance", h.scheduleMaintenance)

	r.Route("/partials", func(r chi.Router) {
		r.Get("/inventory", h.inventoryPartial)
		r.Get("/panel", h.panelPartial)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", h.state)
		r.Get("/inventory", h.listInventory)
		r.Get("/notifications", h.notifications)
	})

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(view.Static()))))

	// Unmatched GETs get the root document.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.NotFound(w, r)
			return
		}
		h.index(w, r)
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Pages

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.render(w, view.KeyPage, view.NewPage(h.ctrl.Snapshot()))
}

func (h *Handler) switchTab(w http.ResponseWriter, r *http.Request) {
	err := h.ctrl.SwitchTabKey(r.Context(), chi.URLParam(r, "tab"))
	h.afterAction(w, r, err)
}

func (h *Handler) filterInventory(w http.ResponseWriter, r *http.Request) {
	search, category := filterParams(r)
	err := h.ctrl.SetFilter(r.Context(), search, category)
	h.afterAction(w, r, err)
}

func (h *Handler) openModal(w http.ResponseWriter, r *http.Request) {
	kind, ok := dashboard.ParseModalKind(chi.URLParam(r, "kind"))
	if !ok {
		h.afterAction(w, r, nil)
		return
	}
	err := h.ctrl.OpenModal(r.Context(), kind, r.FormValue("id"))
	h.afterAction(w, r, err)
}

func (h *Handler) closeModal(w http.ResponseWriter, r *http.Request) {
	h.ctrl.CloseModal()
	h.afterAction(w, r, nil)
}

// Form handlers

func inventoryForm(r *http.Request) dashboard.InventoryForm {
	return dashboard.InventoryForm{
		Code:        r.FormValue("code"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Stock:       r.FormValue("stock"),
		MinStock:    r.FormValue("min_stock"),
	}
}

func (h *Handler) createInventory(w http.ResponseWriter, r *http.Request) {
	_, err := h.ctrl.CreateInventoryItem(r.Context(), inventoryForm(r))
	h.afterAction(w, r, err)
}

func (h *Handler) updateInventory(w http.ResponseWriter, r *http.Request) {
	_, err := h.ctrl.UpdateInventoryItem(r.Context(), chi.URLParam(r, "id"), inventoryForm(r))
	h.afterAction(w, r, err)
}

func (h *Handler) deleteInventory(w http.ResponseWriter, r *http.Request) {
	confirmed := r.FormValue("confirm") == "true"
	_, err := h.ctrl.DeleteInventoryItem(r.Context(), chi.URLParam(r, "id"), confirmed)
	h.afterAction(w, r, err)
}

func (h *Handler) createShipment(w http.ResponseWriter, r *http.Request) {
	_, err := h.ctrl.CreateShipment(r.Context(), dashboard.ShipmentForm{
		Destination: r.FormValue("destination"),
		Date:        r.FormValue("date"),
		Notes:       r.FormValue("notes"),
	})
	h.afterAction(w, r, err)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	_, err := h.ctrl.CreateProductionOrder(r.Context(), dashboard.OrderForm{
		Product:  r.FormValue("product"),
		Line:     r.FormValue("line"),
		Quantity: r.FormValue("quantity"),
		Priority: r.FormValue("priority"),
	})
	h.afterAction(w, r, err)
}

func (h *Handler) scheduleMaintenance(w http.ResponseWriter, r *http.Request) {
	_, err := h.ctrl.ScheduleMaintenance(r.Context(), dashboard.MaintenanceForm{
		Equipment:   r.FormValue("equipment"),
		Date:        r.FormValue("date"),
		Type:        r.FormValue("type"),
		Description: r.FormValue("description"),
	})
	h.afterAction(w, r, err)
}

// Fragments

func (h *Handler) inventoryPartial(w http.ResponseWriter, r *http.Request) {
	search, category := filterParams(r)
	if err := h.ctrl.SetFilter(r.Context(), search, category); err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, view.KeyInventoryRows, view.InventoryRows(h.ctrl.Snapshot().Inventory))
}

func (h *Handler) panelPartial(w http.ResponseWriter, r *http.Request) {
	h.render(w, view.KeyPanel, view.NewPage(h.ctrl.Snapshot()))
}

// JSON API

func (h *Handler) state(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.ctrl.Snapshot())
}

func (h *Handler) listInventory(w http.ResponseWriter, r *http.Request) {
	search, category := filterParams(r)
	items, err := h.ctrl.Preview(r.Context(), search, category)
	if err != nil {
		h.log.Error("list inventory", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "unable to list inventory")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *Handler) notifications(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.ctrl.Snapshot().Toasts)
}

// Helpers

func filterParams(r *http.Request) (string, domain.Category) {
	q := r.URL.Query()
	return q.Get("search"), domain.Category(strings.TrimSpace(q.Get("category")))
}

// afterAction redirects back to the page. A rejected submission also
// redirects: the controller keeps the dialog open with its errors.
func (h *Handler) afterAction(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil && !errors.Is(err, dashboard.ErrInvalidInput) {
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error("request failed",
		zap.String("path", r.URL.Path),
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.Error(err))
	http.Error(w, "error interno", http.StatusInternalServerError)
}

func (h *Handler) render(w http.ResponseWriter, key string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.view.Render(w, key, data); err != nil {
		h.log.Error("render", zap.String("key", key), zap.Error(err))
		http.Error(w, "error interno", http.StatusInternalServerError)
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
