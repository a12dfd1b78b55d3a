// Package store keeps the dashboard collections in SQLite, one ordered table
// per entity type. Records are addressed by id; the first match wins on
// find and replace, every match goes on remove.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"opsboard/m/domain"
)

// Store bundles the collection queries.
type Store struct {
	db *sqlx.DB
}

// New constructs a Store over an already migrated database.
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Inventory

const inventoryColumns = `id, code, description, category, stock, min_stock, status`

func (s *Store) Inventory(ctx context.Context) ([]domain.InventoryItem, error) {
	items := []domain.InventoryItem{}
	if err := s.db.SelectContext(ctx, &items, `SELECT `+inventoryColumns+` FROM inventory ORDER BY seq`); err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return items, nil
}

func (s *Store) FindInventory(ctx context.Context, id string) (domain.InventoryItem, bool, error) {
	var item domain.InventoryItem
	err := s.db.GetContext(ctx, &item, `SELECT `+inventoryColumns+` FROM inventory WHERE id = ? ORDER BY seq LIMIT 1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.InventoryItem{}, false, nil
	}
	if err != nil {
		return domain.InventoryItem{}, false, fmt.Errorf("find inventory %s: %w", id, err)
	}
	return item, true, nil
}

func (s *Store) AppendInventory(ctx context.Context, item domain.InventoryItem) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO inventory (`+inventoryColumns+`)
        VALUES (:id, :code, :description, :category, :stock, :min_stock, :status)`, item)
	if err != nil {
		return fmt.Errorf("append inventory %s: %w", item.ID, err)
	}
	return nil
}

// ReplaceInventory overwrites the first record with item.ID in place and
// reports whether one existed.
func (s *Store) ReplaceInventory(ctx context.Context, item domain.InventoryItem) (bool, error) {
	res, err := s.db.NamedExecContext(ctx, `UPDATE inventory
        SET code = :code, description = :description, category = :category,
            stock = :stock, min_stock = :min_stock, status = :status
        WHERE seq = (SELECT seq FROM inventory WHERE id = :id ORDER BY seq LIMIT 1)`, item)
	if err != nil {
		return false, fmt.Errorf("replace inventory %s: %w", item.ID, err)
	}
	return affected(res)
}

func (s *Store) RemoveInventory(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM inventory WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("remove inventory %s: %w", id, err)
	}
	return affected(res)
}

// Shipments

func (s *Store) Shipments(ctx context.Context) ([]domain.Shipment, error) {
	shipments := []domain.Shipment{}
	if err := s.db.SelectContext(ctx, &shipments, `SELECT id, destination, status, date, notes FROM shipments ORDER BY seq`); err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	return shipments, nil
}

func (s *Store) AppendShipment(ctx context.Context, shipment domain.Shipment) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO shipments (id, destination, status, date, notes)
        VALUES (:id, :destination, :status, :date, :notes)`, shipment)
	if err != nil {
		return fmt.Errorf("append shipment %s: %w", shipment.ID, err)
	}
	return nil
}

// Production orders

func (s *Store) ProductionOrders(ctx context.Context) ([]domain.ProductionOrder, error) {
	orders := []domain.ProductionOrder{}
	err := s.db.SelectContext(ctx, &orders, `SELECT id, product, line, progress, efficiency, quantity, priority
        FROM production_orders ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list production orders: %w", err)
	}
	return orders, nil
}

func (s *Store) AppendProductionOrder(ctx context.Context, order domain.ProductionOrder) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO production_orders (id, product, line, progress, efficiency, quantity, priority)
        VALUES (:id, :product, :line, :progress, :efficiency, :quantity, :priority)`, order)
	if err != nil {
		return fmt.Errorf("append production order %s: %w", order.ID, err)
	}
	return nil
}

// ReplaceProductionOrders writes every order back in one transaction.
// Orders whose id is no longer stored are skipped.
func (s *Store) ReplaceProductionOrders(ctx context.Context, orders []domain.ProductionOrder) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin production update: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareNamedContext(ctx, `UPDATE production_orders
        SET product = :product, line = :line, progress = :progress, efficiency = :efficiency,
            quantity = :quantity, priority = :priority
        WHERE seq = (SELECT seq FROM production_orders WHERE id = :id ORDER BY seq LIMIT 1)`)
	if err != nil {
		return fmt.Errorf("prepare production update: %w", err)
	}
	defer stmt.Close()

	for _, order := range orders {
		if _, err := stmt.ExecContext(ctx, order); err != nil {
			return fmt.Errorf("update production order %s: %w", order.ID, err)
		}
	}
	return tx.Commit()
}

// Quality inspections

func (s *Store) Inspections(ctx context.Context) ([]domain.QualityInspection, error) {
	inspections := []domain.QualityInspection{}
	if err := s.db.SelectContext(ctx, &inspections, `SELECT id, product, status, date FROM quality_inspections ORDER BY seq`); err != nil {
		return nil, fmt.Errorf("list inspections: %w", err)
	}
	return inspections, nil
}

func (s *Store) AppendInspection(ctx context.Context, inspection domain.QualityInspection) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO quality_inspections (id, product, status, date)
        VALUES (:id, :product, :status, :date)`, inspection)
	if err != nil {
		return fmt.Errorf("append inspection %s: %w", inspection.ID, err)
	}
	return nil
}

// Maintenance

func (s *Store) MaintenanceTasks(ctx context.Context) ([]domain.MaintenanceTask, error) {
	tasks := []domain.MaintenanceTask{}
	err := s.db.SelectContext(ctx, &tasks, `SELECT id, equipment, date, type, description, status
        FROM maintenance_tasks ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list maintenance tasks: %w", err)
	}
	return tasks, nil
}

func (s *Store) AppendMaintenanceTask(ctx context.Context, task domain.MaintenanceTask) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO maintenance_tasks (id, equipment, date, type, description, status)
        VALUES (:id, :equipment, :date, :type, :description, :status)`, task)
	if err != nil {
		return fmt.Errorf("append maintenance task %s: %w", task.ID, err)
	}
	return nil
}

func affected(res sql.Result) (bool, error) {
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
