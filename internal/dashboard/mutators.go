package dashboard

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"opsboard/m/domain"
	"opsboard/m/internal/notify"
)

const (
	msgItemAdded         = "Item agregado exitosamente"
	msgItemUpdated       = "Item actualizado exitosamente"
	msgItemDeleted       = "Item eliminado exitosamente"
	msgShipmentCreated   = "Envío creado exitosamente"
	msgOrderCreated      = "Orden de producción creada exitosamente"
	msgMaintenanceAdded  = "Mantenimiento programado exitosamente"
	msgInvalidSubmission = "Revise los campos del formulario"
)

// CreateInventoryItem appends a new item with a derived status and shows it
// in the inventory table under the current filter.
func (c *Controller) CreateInventoryItem(ctx context.Context, form InventoryForm) (domain.InventoryItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	in, err := parseInventoryForm(c.validate, form)
	if err != nil {
		return domain.InventoryItem{}, c.reject(ctx, ModalAddItem, inventoryValues(form), err)
	}
	item := domain.InventoryItem{
		ID:          domain.NewID(domain.TagInventory, c.now()),
		Code:        in.Code,
		Description: in.Description,
		Category:    domain.Category(in.Category),
		Stock:       in.Stock,
		MinStock:    in.MinStock,
	}
	item.RefreshStatus()

	if err := c.store.AppendInventory(ctx, item); err != nil {
		return domain.InventoryItem{}, err
	}
	if err := c.afterInventoryChange(ctx); err != nil {
		return domain.InventoryItem{}, err
	}
	c.finish(ctx, msgItemAdded)
	c.log.Info("inventory item created", zap.String("id", item.ID), zap.String("status", string(item.Status)))
	return item, nil
}

// UpdateInventoryItem overwrites every editable field of the first item
// with the given id. It reports false without side effects when no such
// item exists.
func (c *Controller) UpdateInventoryItem(ctx context.Context, id string, form InventoryForm) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok, err := c.store.FindInventory(ctx, id)
	if err != nil || !ok {
		return false, err
	}
	in, err := parseInventoryForm(c.validate, form)
	if err != nil {
		c.modal.Item = current
		return false, c.reject(ctx, ModalEditItem, inventoryValues(form), err)
	}
	item := domain.InventoryItem{
		ID:          current.ID,
		Code:        in.Code,
		Description: in.Description,
		Category:    domain.Category(in.Category),
		Stock:       in.Stock,
		MinStock:    in.MinStock,
	}
	item.RefreshStatus()

	replaced, err := c.store.ReplaceInventory(ctx, item)
	if err != nil || !replaced {
		return false, err
	}
	if err := c.afterInventoryChange(ctx); err != nil {
		return false, err
	}
	c.finish(ctx, msgItemUpdated)
	c.log.Info("inventory item updated", zap.String("id", item.ID), zap.String("status", string(item.Status)))
	return true, nil
}

// DeleteInventoryItem removes every item with the given id once the user
// confirmed. A declined confirmation only closes the dialog.
func (c *Controller) DeleteInventoryItem(ctx context.Context, id string, confirmed bool) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !confirmed {
		c.modal = Modal{}
		return false, nil
	}
	removed, err := c.store.RemoveInventory(ctx, id)
	if err != nil || !removed {
		return false, err
	}
	if err := c.afterInventoryChange(ctx); err != nil {
		return false, err
	}
	c.finish(ctx, msgItemDeleted)
	c.log.Info("inventory item deleted", zap.String("id", id))
	return true, nil
}

// CreateShipment appends a pending shipment.
func (c *Controller) CreateShipment(ctx context.Context, form ShipmentForm) (domain.Shipment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	in, err := parseShipmentForm(c.validate, form)
	if err != nil {
		values := map[string]string{"destination": form.Destination, "date": form.Date, "notes": form.Notes}
		return domain.Shipment{}, c.reject(ctx, ModalAddShipment, values, err)
	}
	shipment := domain.Shipment{
		ID:          domain.NewID(domain.TagShipment, c.now()),
		Destination: in.Destination,
		Status:      domain.ShipmentPending,
		Date:        in.Date,
		Notes:       in.Notes,
	}
	if err := c.store.AppendShipment(ctx, shipment); err != nil {
		return domain.Shipment{}, err
	}
	if err := c.loadLogistics(ctx); err != nil {
		return domain.Shipment{}, err
	}
	c.finish(ctx, msgShipmentCreated)
	c.log.Info("shipment created", zap.String("id", shipment.ID))
	return shipment, nil
}

// CreateProductionOrder appends an order that has not started yet.
func (c *Controller) CreateProductionOrder(ctx context.Context, form OrderForm) (domain.ProductionOrder, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	in, err := parseOrderForm(c.validate, form)
	if err != nil {
		values := map[string]string{"product": form.Product, "line": form.Line, "quantity": form.Quantity, "priority": form.Priority}
		return domain.ProductionOrder{}, c.reject(ctx, ModalAddOrder, values, err)
	}
	order := domain.ProductionOrder{
		ID:       domain.NewID(domain.TagOrder, c.now()),
		Product:  in.Product,
		Line:     domain.Line(in.Line),
		Quantity: in.Quantity,
		Priority: domain.Priority(in.Priority),
	}
	if err := c.store.AppendProductionOrder(ctx, order); err != nil {
		return domain.ProductionOrder{}, err
	}
	if err := c.loadProduction(ctx); err != nil {
		return domain.ProductionOrder{}, err
	}
	if c.active == TabDashboard {
		if err := c.refreshMetrics(ctx); err != nil {
			return domain.ProductionOrder{}, err
		}
	}
	c.finish(ctx, msgOrderCreated)
	c.log.Info("production order created", zap.String("id", order.ID), zap.String("line", string(order.Line)))
	return order, nil
}

// ScheduleMaintenance appends a scheduled maintenance task.
func (c *Controller) ScheduleMaintenance(ctx context.Context, form MaintenanceForm) (domain.MaintenanceTask, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	in, err := parseMaintenanceForm(c.validate, form)
	if err != nil {
		values := map[string]string{"equipment": form.Equipment, "date": form.Date, "type": form.Type, "description": form.Description}
		return domain.MaintenanceTask{}, c.reject(ctx, ModalAddMaintenance, values, err)
	}
	task := domain.MaintenanceTask{
		ID:          domain.NewID(domain.TagMaintenance, c.now()),
		Equipment:   in.Equipment,
		Date:        in.Date,
		Type:        domain.MaintenanceType(in.Type),
		Description: in.Description,
		Status:      domain.MaintenanceScheduled,
	}
	if err := c.store.AppendMaintenanceTask(ctx, task); err != nil {
		return domain.MaintenanceTask{}, err
	}
	if err := c.loadMaintenance(ctx); err != nil {
		return domain.MaintenanceTask{}, err
	}
	c.finish(ctx, msgMaintenanceAdded)
	c.log.Info("maintenance scheduled", zap.String("id", task.ID), zap.String("equipment", task.Equipment))
	return task, nil
}

// afterInventoryChange re-projects the table with the current filter and
// refreshes the alerts and counters that depend on stock.
func (c *Controller) afterInventoryChange(ctx context.Context) error {
	if err := c.loadInventory(ctx); err != nil {
		return err
	}
	return c.loadDashboard(ctx)
}

func (c *Controller) finish(ctx context.Context, message string) {
	c.modal = Modal{}
	c.notes.Emit(ctx, message, notify.KindSuccess)
}

// reject keeps the dialog open with the submitted values and the field
// errors. Non validation errors pass through unchanged.
func (c *Controller) reject(ctx context.Context, kind ModalKind, values map[string]string, err error) error {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	modal := Modal{Kind: kind, Values: values, Errors: verr.Fields}
	if kind.needsItem() {
		modal.Item = c.modal.Item
	}
	c.modal = modal
	c.notes.Emit(ctx, msgInvalidSubmission, notify.KindError)
	c.log.Debug("submission rejected", zap.String("modal", string(kind)), zap.Error(err))
	return err
}

func inventoryValues(f InventoryForm) map[string]string {
	return map[string]string{
		"code":        f.Code,
		"description": f.Description,
		"category":    f.Category,
		"stock":       f.Stock,
		"min_stock":   f.MinStock,
	}
}
