package ingest

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"sheetdrop/internal/models"
)

// ErrInvalid marks failures caused by the submission itself (as
// opposed to remote API failures). Handlers report these as client
// errors.
var ErrInvalid = errors.New("invalid submission")

// SheetStore is what the ingest sequence needs from the Sheets/Drive
// layer. *sheets.Client satisfies it.
type SheetStore interface {
	FindOrCreateSpreadsheet(ctx context.Context, title, folderID string) (string, error)
	EnsureSheet(ctx context.Context, spreadsheetID, title string) (bool, error)
	WriteHeader(ctx context.Context, spreadsheetID, sheet string, header []interface{}) error
	AppendRows(ctx context.Context, spreadsheetID, sheet string, rows [][]interface{}) error
}

type Service struct {
	sh SheetStore
}

func New(sh SheetStore) *Service {
	return &Service{sh: sh}
}

// SpreadsheetTitle derives the per-user spreadsheet title.
func SpreadsheetTitle(username string) string {
	return strings.ToUpper(username) + "_MainSheet"
}

// Append runs the full ingest sequence: find or create the user's
// spreadsheet in folderID, make sure the category tab exists (writing
// a header row when the tab is new), then append the data rows.
// Returns the number of data rows appended.
//
// There is no rollback: if the append fails after a fresh tab got its
// header, the header stays.
func (s *Service) Append(ctx context.Context, sub models.Submission, folderID string) (int, error) {
	header, rows, err := buildRows(sub.ImageData)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalid, err)
	}

	title := SpreadsheetTitle(sub.Username)
	spreadsheetID, err := s.sh.FindOrCreateSpreadsheet(ctx, title, folderID)
	if err != nil {
		return 0, err
	}

	created, err := s.sh.EnsureSheet(ctx, spreadsheetID, sub.ImageType)
	if err != nil {
		return 0, err
	}
	if created {
		log.Printf("created sheet %q in spreadsheet %s", sub.ImageType, spreadsheetID)
		if err := s.sh.WriteHeader(ctx, spreadsheetID, sub.ImageType, header); err != nil {
			return 0, err
		}
	}

	if err := s.sh.AppendRows(ctx, spreadsheetID, sub.ImageType, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}
