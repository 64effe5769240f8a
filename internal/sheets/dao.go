package sheets

import (
	"context"
	"fmt"
	"strings"

	drivev3 "google.golang.org/api/drive/v3"
	sheetsv4 "google.golang.org/api/sheets/v4"
)

const spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

// FindOrCreateSpreadsheet returns the id of the spreadsheet with the
// given title inside folderID, creating it there when absent. First
// match wins; two concurrent first-time requests for the same title
// can each create a spreadsheet (no server-side dedup).
func (c *Client) FindOrCreateSpreadsheet(ctx context.Context, title, folderID string) (string, error) {
	q := fmt.Sprintf("name = '%s' and '%s' in parents and mimeType = '%s' and trashed = false",
		escapeQuery(title), escapeQuery(folderID), spreadsheetMimeType)

	list, err := c.drive.Files.List().
		Q(q).
		Fields("files(id, name)").
		PageSize(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("search spreadsheet %q: %w", title, err)
	}
	if len(list.Files) > 0 {
		return list.Files[0].Id, nil
	}

	created, err := c.drive.Files.Create(&drivev3.File{
		Name:     title,
		MimeType: spreadsheetMimeType,
		Parents:  []string{folderID},
	}).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("create spreadsheet %q: %w", title, err)
	}
	return created.Id, nil
}

// EnsureSheet makes sure a tab with the given title exists and
// reports whether it had to create it.
func (c *Client) EnsureSheet(ctx context.Context, spreadsheetID, title string) (bool, error) {
	meta, err := c.sheets.Spreadsheets.Get(spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return false, fmt.Errorf("get spreadsheet: %w", err)
	}
	for _, s := range meta.Sheets {
		if s.Properties.Title == title {
			return false, nil
		}
	}

	rq := &sheetsv4.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsv4.Request{
			{
				AddSheet: &sheetsv4.AddSheetRequest{
					Properties: &sheetsv4.SheetProperties{Title: title},
				},
			},
		},
	}
	if _, err := c.sheets.Spreadsheets.BatchUpdate(spreadsheetID, rq).Context(ctx).Do(); err != nil {
		return false, fmt.Errorf("add sheet %q: %w", title, err)
	}
	return true, nil
}

// WriteHeader writes the header row at the top of a (fresh) tab.
func (c *Client) WriteHeader(ctx context.Context, spreadsheetID, sheet string, header []interface{}) error {
	vr := &sheetsv4.ValueRange{Values: [][]interface{}{header}}
	_, err := c.sheets.Spreadsheets.Values.Update(spreadsheetID, sheetRange(sheet, "A1"), vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("write header to %q: %w", sheet, err)
	}
	return nil
}

// AppendRows appends rows after the existing content of a tab.
// USER_ENTERED lets the spreadsheet engine coerce values the way it
// would for typed input.
func (c *Client) AppendRows(ctx context.Context, spreadsheetID, sheet string, rows [][]interface{}) error {
	vr := &sheetsv4.ValueRange{Values: rows}
	_, err := c.sheets.Spreadsheets.Values.Append(spreadsheetID, sheetRange(sheet, "A:Z"), vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append rows to %q: %w", sheet, err)
	}
	return nil
}

// sheetRange builds an A1 range with the tab title quoted, so titles
// with spaces or punctuation survive.
func sheetRange(sheet, ref string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'!" + ref
}

// escapeQuery escapes a string literal for a Drive search query.
func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
