// Package dashboard owns the state of the operations dashboard session:
// the active tab, the inventory filter, the open dialog and the data each
// panel shows. Every operation takes the controller lock and runs to
// completion, so HTTP handlers and timer ticks never interleave inside one.
package dashboard

import (
	"context"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"opsboard/m/domain"
	"opsboard/m/internal/notify"
	"opsboard/m/internal/projection"
	"opsboard/m/internal/simulation"
)

// Store is the data the controller reads and mutates.
type Store interface {
	Inventory(ctx context.Context) ([]domain.InventoryItem, error)
	FindInventory(ctx context.Context, id string) (domain.InventoryItem, bool, error)
	AppendInventory(ctx context.Context, item domain.InventoryItem) error
	ReplaceInventory(ctx context.Context, item domain.InventoryItem) (bool, error)
	RemoveInventory(ctx context.Context, id string) (bool, error)

	Shipments(ctx context.Context) ([]domain.Shipment, error)
	AppendShipment(ctx context.Context, shipment domain.Shipment) error

	ProductionOrders(ctx context.Context) ([]domain.ProductionOrder, error)
	AppendProductionOrder(ctx context.Context, order domain.ProductionOrder) error
	ReplaceProductionOrders(ctx context.Context, orders []domain.ProductionOrder) error

	Inspections(ctx context.Context) ([]domain.QualityInspection, error)

	MaintenanceTasks(ctx context.Context) ([]domain.MaintenanceTask, error)
	AppendMaintenanceTask(ctx context.Context, task domain.MaintenanceTask) error
}

// Notifier shows transient messages to the user.
type Notifier interface {
	Emit(ctx context.Context, message string, kind notify.Kind) notify.Notification
	Active(now time.Time) []notify.Toast
}

type Filter struct {
	Search   string          `json:"search"`
	Category domain.Category `json:"category"`
}

// Modal is the dialog currently open. Item is set for edit and delete
// dialogs; Values and Errors hold a rejected submission.
type Modal struct {
	Kind   ModalKind            `json:"kind"`
	Item   domain.InventoryItem `json:"item"`
	Values map[string]string    `json:"values,omitempty"`
	Errors []FieldError         `json:"errors,omitempty"`
}

func (m Modal) Open() bool { return m.Kind != ModalNone }

// Snapshot is a copy of the session state for rendering.
type Snapshot struct {
	Active      Tab                        `json:"active"`
	Generation  uint64                     `json:"generation"`
	Clock       string                     `json:"clock"`
	Filter      Filter                     `json:"filter"`
	Modal       Modal                      `json:"modal"`
	Metrics     Metrics                    `json:"metrics"`
	Lines       []LineStatus               `json:"lines"`
	Alerts      []domain.InventoryItem     `json:"alerts"`
	Inventory   []domain.InventoryItem     `json:"inventory"`
	Shipments   []domain.Shipment          `json:"shipments"`
	Orders      []domain.ProductionOrder   `json:"orders"`
	Inspections []domain.QualityInspection `json:"inspections"`
	Maintenance []domain.MaintenanceTask   `json:"maintenance"`
	Toasts      []notify.Toast             `json:"toasts"`
}

// Controller is the single dashboard session.
type Controller struct {
	mu       sync.Mutex
	store    Store
	notes    Notifier
	validate *validator.Validate
	log      *zap.Logger
	now      func() time.Time
	rng      simulation.Rand

	active     Tab
	generation uint64
	clock      string
	filter     Filter
	modal      Modal

	metrics     Metrics
	lines       []LineStatus
	alerts      []domain.InventoryItem
	inventory   []domain.InventoryItem
	shipments   []domain.Shipment
	orders      []domain.ProductionOrder
	inspections []domain.QualityInspection
	maintenance []domain.MaintenanceTask
}

type loadFunc func(c *Controller, ctx context.Context) error

// loaders is the load routine run each time a tab becomes active.
var loaders = map[Tab]loadFunc{
	TabDashboard:   (*Controller).loadDashboard,
	TabInventory:   (*Controller).loadInventory,
	TabLogistics:   (*Controller).loadLogistics,
	TabProduction:  (*Controller).loadProduction,
	TabQuality:     (*Controller).loadQuality,
	TabMaintenance: (*Controller).loadMaintenance,
}

// New constructs a Controller on the dashboard tab. Call Init before use.
func New(st Store, notes Notifier, log *zap.Logger) *Controller {
	now := time.Now()
	return &Controller{
		store:    st,
		notes:    notes,
		validate: newValidator(),
		log:      log,
		now:      time.Now,
		rng:      rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(now.Unix()))),
		active:   TabDashboard,
	}
}

// Init loads the dashboard panel, the inventory table and the clock.
func (c *Controller) Init(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clock = FormatClock(c.now())
	if err := c.loadDashboard(ctx); err != nil {
		return err
	}
	return c.loadInventory(ctx)
}

// SwitchTab activates target and runs its load routine, even when target
// is already active.
func (c *Controller) SwitchTab(ctx context.Context, target Tab) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.switchTab(ctx, target)
}

// SwitchTabKey is SwitchTab for a key from user input. Unknown keys are
// ignored.
func (c *Controller) SwitchTabKey(ctx context.Context, key string) error {
	tab, ok := ParseTab(key)
	if !ok {
		c.log.Debug("ignoring unknown tab", zap.String("tab", key))
		return nil
	}
	return c.SwitchTab(ctx, tab)
}

func (c *Controller) switchTab(ctx context.Context, target Tab) error {
	load, ok := loaders[target]
	if !ok {
		return nil
	}
	c.active = target
	c.log.Debug("tab switched", zap.String("tab", string(target)))
	return load(c, ctx)
}

// SetFilter stores the inventory search criteria and re-projects.
func (c *Controller) SetFilter(ctx context.Context, search string, category domain.Category) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.filter = Filter{Search: search, Category: category}
	return c.loadInventory(ctx)
}

// Preview projects the current inventory with the given criteria without
// touching the session.
func (c *Controller) Preview(ctx context.Context, search string, category domain.Category) ([]domain.InventoryItem, error) {
	items, err := c.store.Inventory(ctx)
	if err != nil {
		return nil, err
	}
	return projection.Project(items, search, category), nil
}

// OpenModal opens a dialog. Edit and delete dialogs need an existing item;
// for an unknown id nothing happens.
func (c *Controller) OpenModal(ctx context.Context, kind ModalKind, itemID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	modal := Modal{Kind: kind}
	if kind.needsItem() {
		item, ok, err := c.store.FindInventory(ctx, itemID)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		modal.Item = item
	}
	c.modal = modal
	return nil
}

// CloseModal closes whatever dialog is open.
func (c *Controller) CloseModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modal = Modal{}
}

// RefreshClock updates the header clock.
func (c *Controller) RefreshClock(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clock = FormatClock(c.now())
	return nil
}

// Tick runs one simulation step over the production orders, then refreshes
// the panel only if it shows them.
func (c *Controller) Tick(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	orders, err := c.store.ProductionOrders(ctx)
	if err != nil {
		return err
	}
	changed := simulation.Step(orders, c.rng)
	if changed > 0 {
		if err := c.store.ReplaceProductionOrders(ctx, orders); err != nil {
			return err
		}
	}
	c.log.Debug("simulation tick", zap.Int("changed", changed), zap.String("tab", string(c.active)))

	switch c.active {
	case TabProduction:
		return c.loadProduction(ctx)
	case TabDashboard:
		return c.refreshMetrics(ctx)
	}
	return nil
}

// Snapshot copies the session state at the controller's current time.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		Active:      c.active,
		Generation:  c.generation,
		Clock:       c.clock,
		Filter:      c.filter,
		Modal:       c.modal,
		Metrics:     c.metrics,
		Lines:       slices.Clone(c.lines),
		Alerts:      slices.Clone(c.alerts),
		Inventory:   slices.Clone(c.inventory),
		Shipments:   slices.Clone(c.shipments),
		Orders:      slices.Clone(c.orders),
		Inspections: slices.Clone(c.inspections),
		Maintenance: slices.Clone(c.maintenance),
		Toasts:      c.notes.Active(c.now()),
	}
}

// Load routines. Callers hold c.mu.

func (c *Controller) loadDashboard(ctx context.Context) error {
	if err := c.refreshMetrics(ctx); err != nil {
		return err
	}
	inventory, err := c.store.Inventory(ctx)
	if err != nil {
		return err
	}
	c.alerts = lowStockAlerts(inventory)
	return nil
}

func (c *Controller) refreshMetrics(ctx context.Context) error {
	orders, err := c.store.ProductionOrders(ctx)
	if err != nil {
		return err
	}
	inventory, err := c.store.Inventory(ctx)
	if err != nil {
		return err
	}
	c.orders = orders
	c.metrics = computeMetrics(orders, inventory)
	c.lines = lineStatuses(orders)
	c.generation++
	return nil
}

func (c *Controller) loadInventory(ctx context.Context) error {
	items, err := c.store.Inventory(ctx)
	if err != nil {
		return err
	}
	c.inventory = projection.Project(items, c.filter.Search, c.filter.Category)
	c.generation++
	return nil
}

func (c *Controller) loadLogistics(ctx context.Context) error {
	shipments, err := c.store.Shipments(ctx)
	if err != nil {
		return err
	}
	c.shipments = shipments
	c.generation++
	return nil
}

func (c *Controller) loadProduction(ctx context.Context) error {
	orders, err := c.store.ProductionOrders(ctx)
	if err != nil {
		return err
	}
	c.orders = orders
	c.lines = lineStatuses(orders)
	c.generation++
	return nil
}

func (c *Controller) loadQuality(ctx context.Context) error {
	inspections, err := c.store.Inspections(ctx)
	if err != nil {
		return err
	}
	c.inspections = inspections
	c.generation++
	return nil
}

func (c *Controller) loadMaintenance(ctx context.Context) error {
	tasks, err := c.store.MaintenanceTasks(ctx)
	if err != nil {
		return err
	}
	c.maintenance = tasks
	c.generation++
	return nil
}
