package infra

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vovarama1992/leadsheet/internal/config"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var sheetScopes = []string{
	"https://spreadsheets.google.com/feeds",
	"https://www.googleapis.com/auth/drive",
}

const spreadsheetMime = "application/vnd.google-apps.spreadsheet"

// GoogleSheet is one worksheet tab inside a Google Sheets workbook.
type GoogleSheet struct {
	svc           *sheets.Service
	spreadsheetID string
	worksheet     string
}

// NewGoogleSheet authorizes with service-account JSON and opens the workbook.
func NewGoogleSheet(ctx context.Context, cfg config.SheetsConfig) (*GoogleSheet, error) {
	if cfg.Credentials == "" {
		return nil, fmt.Errorf("no GCP_CREDENTIALS")
	}

	// clients outlive the startup deadline; only the Drive lookup is bounded by ctx
	creds, err := google.CredentialsFromJSON(context.WithoutCancel(ctx), []byte(cfg.Credentials), sheetScopes...)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}

	return OpenGoogleSheet(ctx, cfg, option.WithCredentials(creds))
}

// OpenGoogleSheet opens the workbook by id, or looks it up by name in Drive.
func OpenGoogleSheet(ctx context.Context, cfg config.SheetsConfig, opts ...option.ClientOption) (*GoogleSheet, error) {
	svcCtx := context.WithoutCancel(ctx)

	svc, err := sheets.NewService(svcCtx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	id := cfg.SpreadsheetID
	if id == "" {
		drv, err := drive.NewService(svcCtx, opts...)
		if err != nil {
			return nil, fmt.Errorf("drive service: %w", err)
		}
		id, err = findSpreadsheet(ctx, drv, cfg.SpreadsheetName)
		if err != nil {
			return nil, err
		}
	}

	// fail at startup, like opening the workbook would, when it is not shared with us
	if _, err := svc.Spreadsheets.Get(id).Fields("spreadsheetId").Context(ctx).Do(); err != nil {
		return nil, fmt.Errorf("open spreadsheet %s: %w", id, err)
	}

	return &GoogleSheet{
		svc:           svc,
		spreadsheetID: id,
		worksheet:     cfg.Worksheet,
	}, nil
}

func findSpreadsheet(ctx context.Context, drv *drive.Service, name string) (string, error) {
	q := fmt.Sprintf(
		"name = '%s' and mimeType = '%s' and trashed = false",
		strings.ReplaceAll(name, "'", `\'`),
		spreadsheetMime,
	)

	list, err := drv.Files.List().
		Q(q).
		Fields("files(id, name)").
		PageSize(1).
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("find spreadsheet %q: %w", name, err)
	}
	if len(list.Files) == 0 {
		return "", fmt.Errorf("spreadsheet %q not found", name)
	}

	return list.Files[0].Id, nil
}

// sheetRange addresses the whole tab.
func (s *GoogleSheet) sheetRange() string {
	return "'" + strings.ReplaceAll(s.worksheet, "'", "''") + "'"
}

// Rows returns every non-empty row of the worksheet, header included.
func (s *GoogleSheet) Rows(ctx context.Context) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.sheetRange()).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get values %s: %w", s.worksheet, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, r := range resp.Values {
		cells := make([]string, len(r))
		for i, c := range r {
			cells[i] = fmt.Sprint(c)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func (s *GoogleSheet) AppendRow(ctx context.Context, cells []string) error {
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}

	_, err := s.svc.Spreadsheets.Values.Append(
		s.spreadsheetID,
		s.sheetRange(),
		&sheets.ValueRange{Values: [][]interface{}{values}},
	).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append row %s: %w", s.worksheet, err)
	}
	return nil
}
