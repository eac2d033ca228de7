// Package repository maps domain records onto the spreadsheet rows.
package repository

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/vfg2006/banarsibot-api/infrastructure/database/gsheets"
	"github.com/vfg2006/banarsibot-api/internal/domain"
	"github.com/vfg2006/banarsibot-api/pkg/log"
)

type SalesRepository interface {
	AppendSale(ctx context.Context, sale domain.SaleRecord) error
	ListSales(ctx context.Context) ([]domain.SaleRecord, error)
}

type salesRepository struct {
	conn gsheets.Conn
}

func NewSalesRepository(conn gsheets.Conn) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

func (r *salesRepository) AppendSale(ctx context.Context, sale domain.SaleRecord) error {
	return r.conn.AppendRow(ctx, sale.Row())
}

// ListSales reads every data row, keyed by the header row like gspread's
// get_all_records. Rows shorter than the header are padded with blanks.
func (r *salesRepository) ListSales(ctx context.Context) ([]domain.SaleRecord, error) {
	rows, err := r.conn.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return []domain.SaleRecord{}, nil
	}

	columns := make(map[string]int, len(rows[0]))
	for i, cell := range rows[0] {
		columns[strings.TrimSpace(cellString(cell))] = i
	}

	get := func(row []any, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(cellString(row[idx]))
	}

	sales := make([]domain.SaleRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}

		price, err := parsePrice(get(row, "Price"))
		if err != nil {
			log.ForContext(ctx).WithError(err).Warn("sales: unreadable price, counting it as 0")
		}

		sales = append(sales, domain.SaleRecord{
			Phone:     get(row, "Phone"),
			SariType:  get(row, "Sari Type"),
			Design:    get(row, "Design"),
			Price:     price,
			Timestamp: get(row, "Timestamp"),
		})
	}

	return sales, nil
}

// parsePrice accepts plain numbers as well as hand-typed cells such as
// "₹4,500". A blank cell is 0.
func parsePrice(raw string) (int, error) {
	cleaned := strings.NewReplacer("₹", "", ",", "", " ", "").Replace(raw)
	if cleaned == "" {
		return 0, nil
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "price %q", raw)
	}

	return int(math.Round(value)), nil
}

func cellString(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func isBlank(row []any) bool {
	for _, cell := range row {
		if strings.TrimSpace(cellString(cell)) != "" {
			return false
		}
	}
	return true
}
