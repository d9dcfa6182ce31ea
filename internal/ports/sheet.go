package ports

import "context"

// LeadSheet is the worksheet that stores one lead per row, header first.
type LeadSheet interface {
	Rows(ctx context.Context) ([][]string, error)
	AppendRow(ctx context.Context, cells []string) error
}
