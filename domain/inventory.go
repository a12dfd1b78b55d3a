package domain

type Category string

const (
	CategoryRawMaterial  Category = "raw-material"
	CategoryFinishedGood Category = "finished-good"
	CategoryTooling      Category = "tooling"
	CategoryEquipment    Category = "equipment"
)

var Categories = []Category{CategoryRawMaterial, CategoryFinishedGood, CategoryTooling, CategoryEquipment}

type StockStatus string

const (
	StockNormal StockStatus = "normal"
	StockLow    StockStatus = "low"
	// StockOut has a label and a badge but no transition produces it.
	StockOut StockStatus = "out"
)

type InventoryItem struct {
	ID          string      `db:"id" json:"id"`
	Code        string      `db:"code" json:"code"`
	Description string      `db:"description" json:"description"`
	Category    Category    `db:"category" json:"category"`
	Stock       int64       `db:"stock" json:"stock"`
	MinStock    int64       `db:"min_stock" json:"min_stock"`
	Status      StockStatus `db:"status" json:"status"`
}

// DeriveStockStatus reports low whenever stock is at or below the minimum.
func DeriveStockStatus(stock, minStock int64) StockStatus {
	if stock <= minStock {
		return StockLow
	}
	return StockNormal
}

// RefreshStatus recomputes the derived status from stock and minStock.
func (i *InventoryItem) RefreshStatus() {
	i.Status = DeriveStockStatus(i.Stock, i.MinStock)
}
