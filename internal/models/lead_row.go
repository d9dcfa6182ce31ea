package models

import (
	"fmt"
	"time"
)

// RowWidth is the number of cells in one Leads worksheet row.
const RowWidth = 17

// LeadID builds "L-<year>-<rows>" from the worksheet size before the append.
func LeadID(now time.Time, rowCount int) string {
	return fmt.Sprintf("L-%d-%03d", now.Year(), rowCount)
}

// LeadRow is one positional row of the Leads worksheet.
type LeadRow struct {
	ID       string
	At       time.Time
	SalesRep string
	Lead     Lead
}

// Cells renders the row in worksheet column order.
func (r LeadRow) Cells() []string {
	l := r.Lead
	return []string{
		r.ID,
		r.At.Format(DateLayout),
		r.At.Format(TimeLayout),
		r.SalesRep,
		l.ContactName,
		l.Organization,
		l.Phone,
		l.Email,
		l.Products,
		l.Quantity,
		l.Budget,
		l.Timeline,
		StatusNew,
		l.NextAction,
		l.NextActionDate,
		l.Notes,
		SourceWeb,
	}
}
