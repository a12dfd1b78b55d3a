package seed

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"opsboard/m/domain"
	"opsboard/m/internal/store"
)

// LoadInventoryCSV appends the rows of an inventory CSV to the store and
// returns how many were imported. Columns are
// id,code,description,category,stock,min_stock; malformed rows are skipped.
func LoadInventoryCSV(ctx context.Context, st *store.Store, csvPath string, log *zap.Logger) (int, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("open inventory catalog %s: %w", csvPath, err)
	}
	defer file.Close()
	return ReadInventoryCSV(ctx, st, file, log)
}

// ReadInventoryCSV is LoadInventoryCSV over an open reader.
func ReadInventoryCSV(ctx context.Context, st *store.Store, r io.Reader, log *zap.Logger) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	// Skip header
	if _, err := reader.Read(); err != nil {
		return 0, fmt.Errorf("read inventory header: %w", err)
	}

	rows := 0
	line := 1
	for {
		record, err := reader.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warn("unable to read inventory row", zap.Int("line", line), zap.Error(err))
			continue
		}
		item, err := parseInventoryRecord(record)
		if err != nil {
			log.Warn("skipping inventory row", zap.Int("line", line), zap.Error(err))
			continue
		}
		if item.ID == "" {
			item.ID = fmt.Sprintf("%s-CSV-%03d", domain.TagInventory, line)
		}
		if err := st.AppendInventory(ctx, item); err != nil {
			return rows, err
		}
		rows++
	}

	log.Info("seeded inventory catalog", zap.Int("rows", rows))
	return rows, nil
}

func parseInventoryRecord(record []string) (domain.InventoryItem, error) {
	if len(record) < 6 {
		return domain.InventoryItem{}, fmt.Errorf("expected 6 columns, got %d", len(record))
	}
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}
	if record[1] == "" {
		return domain.InventoryItem{}, fmt.Errorf("missing code")
	}
	stock, err := strconv.ParseInt(record[4], 10, 64)
	if err != nil || stock < 0 {
		return domain.InventoryItem{}, fmt.Errorf("invalid stock %q", record[4])
	}
	minStock, err := strconv.ParseInt(record[5], 10, 64)
	if err != nil || minStock < 0 {
		return domain.InventoryItem{}, fmt.Errorf("invalid min_stock %q", record[5])
	}

	item := domain.InventoryItem{
		ID:          record[0],
		Code:        record[1],
		Description: record[2],
		Category:    domain.Category(record[3]),
		Stock:       stock,
		MinStock:    minStock,
	}
	item.RefreshStatus()
	return item, nil
}
