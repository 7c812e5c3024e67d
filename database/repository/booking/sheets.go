package booking

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/techentia-work/vtcc-australia/config"
	"github.com/techentia-work/vtcc-australia/models"
	"github.com/techentia-work/vtcc-australia/utils"

	"go.uber.org/zap"
)

// firstDataRow is where booking rows start; row 1 holds the header.
const firstDataRow = 2

// SheetsRepo implements Repository against a Google Sheets spreadsheet.
type SheetsRepo struct {
	service       *sheets.Service
	spreadsheetID string
	readRange     string
	sheetName     string
}

// NewSheetsRepo builds a repository from a service-account credentials file.
func NewSheetsRepo(ctx context.Context) (*SheetsRepo, error) {
	creds, err := os.ReadFile(config.AppConfig.SheetsCredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read credentials file: %w", err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(creds, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse credentials: %w", err)
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets service: %w", err)
	}

	readRange := config.AppConfig.SheetsBookingRange
	if readRange == "" {
		readRange = defaultBookingRange()
	}
	sheetName := readRange
	if i := strings.Index(readRange, "!"); i >= 0 {
		sheetName = readRange[:i]
	}

	return &SheetsRepo{
		service:       srv,
		spreadsheetID: config.AppConfig.SheetsSpreadsheetID,
		readRange:     readRange,
		sheetName:     sheetName,
	}, nil
}

// ListAll fetches every booking row from the sheet.
func (r *SheetsRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	resp, err := r.service.Spreadsheets.Values.Get(r.spreadsheetID, r.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read booking sheet: %w", err)
	}

	logger := utils.GetLogger()
	bookings := make([]models.Booking, 0, len(resp.Values))
	for i, row := range resp.Values {
		b, err := decodeRow(row)
		if err != nil {
			logger.Warn("skipping malformed booking row",
				zap.Int("row", firstDataRow+i), zap.Error(err))
			continue
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// GetByID returns the booking with the given id.
func (r *SheetsRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	bookings, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i], nil
		}
	}
	return nil, ErrNotFound
}

// Append adds a new booking row at the bottom of the sheet.
func (r *SheetsRepo) Append(ctx context.Context, booking *models.Booking) error {
	valueRange := &sheets.ValueRange{
		Values: [][]interface{}{encodeRow(booking)},
	}
	_, err := r.service.Spreadsheets.Values.Append(r.spreadsheetID, r.readRange, valueRange).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append booking %s: %w", booking.ID, err)
	}
	return nil
}

// Update rewrites the row holding the booking's id in place.
func (r *SheetsRepo) Update(ctx context.Context, booking *models.Booking) error {
	resp, err := r.service.Spreadsheets.Values.Get(r.spreadsheetID, r.readRange).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to read booking sheet: %w", err)
	}

	rowNum := -1
	for i, row := range resp.Values {
		if cell(row, colID) == booking.ID {
			rowNum = firstDataRow + i
			break
		}
	}
	if rowNum < 0 {
		return fmt.Errorf("update booking %s: %w", booking.ID, ErrNotFound)
	}

	writeRange := fmt.Sprintf("%s!A%d", r.sheetName, rowNum)
	valueRange := &sheets.ValueRange{
		Values: [][]interface{}{encodeRow(booking)},
	}
	_, err = r.service.Spreadsheets.Values.Update(r.spreadsheetID, writeRange, valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", booking.ID, err)
	}
	return nil
}
