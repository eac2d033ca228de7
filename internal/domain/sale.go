package domain

import "time"

// TimestampLayout is the layout of the Timestamp column in the sales sheet.
const TimestampLayout = "2006-01-02 15:04:05"

// SaleSheetHeader is the header row of the sales sheet, in column order.
var SaleSheetHeader = []string{"Phone", "Sari Type", "Design", "Price", "Timestamp"}

type SaleRecord struct {
	Phone     string `json:"phone"`
	SariType  string `json:"sari_type"`
	Design    string `json:"design"`
	Price     int    `json:"price"`
	Timestamp string `json:"timestamp"`
}

// Row returns the record in sheet column order.
func (s SaleRecord) Row() []any {
	return []any{s.Phone, s.SariType, s.Design, s.Price, s.Timestamp}
}

// SoldAt parses Timestamp in loc.
func (s SaleRecord) SoldAt(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(TimestampLayout, s.Timestamp, loc)
}
