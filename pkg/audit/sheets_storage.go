package audit

import (
	"context"
	"strconv"
	"strings"

	"github.com/classlab/helpdesk/pkg/sheets"
)

// SheetsStorage appends one ledger row per event to a spreadsheet sheet.
// Row layout: timestamp, group, resolution, helper.
type SheetsStorage struct {
	client        *sheets.Client
	spreadsheetID string
	sheet         string
}

// NewSheetsStorage creates a spreadsheet-backed audit sink.
func NewSheetsStorage(client *sheets.Client, spreadsheetID, sheet string) *SheetsStorage {
	if client == nil {
		panic("audit: sheets client cannot be nil")
	}
	return &SheetsStorage{
		client:        client,
		spreadsheetID: spreadsheetID,
		sheet:         sheet,
	}
}

// Store implements Storage.
func (s *SheetsStorage) Store(ctx context.Context, event Event) error {
	row := []string{
		event.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		strconv.Itoa(int(event.Group)),
		resolutionLabel(event.Action),
		event.Helper,
	}
	return s.client.AppendRow(ctx, s.spreadsheetID, s.sheet, row)
}

// resolutionLabel strips the "help." prefix, leaving the bare resolution
// name used in the spreadsheet ("served", "dismissed", "cleared").
func resolutionLabel(action Action) string {
	return strings.TrimPrefix(string(action), "help.")
}
