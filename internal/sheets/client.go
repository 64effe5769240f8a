package sheets

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	drivev3 "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"
)

// Client holds the two authenticated Google services the ingest path
// needs: Sheets for tab/value operations and Drive for locating and
// creating spreadsheets inside folders. Both share one JWT client.
type Client struct {
	sheets *sheetsv4.Service
	drive  *drivev3.Service
}

func New(ctx context.Context, serviceAccountJSONPath string) (*Client, error) {
	b, err := os.ReadFile(serviceAccountJSONPath)
	if err != nil {
		return nil, fmt.Errorf("service account json: %w", err)
	}

	jwt, err := google.JWTConfigFromJSON(b,
		sheetsv4.SpreadsheetsScope,
		drivev3.DriveScope,
	)
	if err != nil {
		return nil, fmt.Errorf("parse service account json: %w", err)
	}
	httpClient := jwt.Client(ctx)

	srv, err := sheetsv4.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	drv, err := drivev3.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("drive service: %w", err)
	}

	return &Client{sheets: srv, drive: drv}, nil
}
