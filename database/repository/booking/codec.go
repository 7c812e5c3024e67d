package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/techentia-work/vtcc-australia/models"
)

// Sheet column layout. One booking per row; halls and services are
// comma-joined, dates stay verbatim strings, timestamps are RFC3339.
const (
	colID = iota
	colBookingType
	colEventType
	colHalls
	colGuests
	colDate
	colTimeFromHour
	colTimeFromMinute
	colTimeFromMeridian
	colTimeToHour
	colTimeToMinute
	colTimeToMeridian
	colServices
	colInfo
	colFirstName
	colLastName
	colEmail
	colMobile
	colAddress
	colCity
	colState
	colCountry
	colPostcode
	colTotalAmount
	colDepositAmount
	colRemainingAmount
	colDepositPercentage
	colCurrency
	colOrderID
	colPaymentID
	colDepositStatus
	colBalanceStatus
	colPaidAt
	colBalanceDueDate
	colStatus
	colCreatedAt
	colUpdatedAt
	columnCount
)

func encodeRow(b *models.Booking) []interface{} {
	row := make([]interface{}, columnCount)
	row[colID] = b.ID
	row[colBookingType] = b.BookingType
	row[colEventType] = b.EventType
	row[colHalls] = strings.Join(b.Halls, ",")
	row[colGuests] = strconv.Itoa(b.Guests)
	row[colDate] = b.Date
	row[colTimeFromHour] = b.TimeFrom.Hour
	row[colTimeFromMinute] = b.TimeFrom.Minute
	row[colTimeFromMeridian] = b.TimeFrom.Meridian
	row[colTimeToHour] = b.TimeTo.Hour
	row[colTimeToMinute] = b.TimeTo.Minute
	row[colTimeToMeridian] = b.TimeTo.Meridian
	row[colServices] = strings.Join(b.Services, ",")
	row[colInfo] = b.Info
	row[colFirstName] = b.Contact.FirstName
	row[colLastName] = b.Contact.LastName
	row[colEmail] = b.Contact.Email
	row[colMobile] = b.Contact.Mobile
	row[colAddress] = b.Contact.Address
	row[colCity] = b.Contact.City
	row[colState] = b.Contact.State
	row[colCountry] = b.Contact.Country
	row[colPostcode] = b.Contact.Postcode
	row[colTotalAmount] = strconv.FormatInt(b.Pricing.TotalAmount, 10)
	row[colDepositAmount] = strconv.FormatInt(b.Pricing.DepositAmount, 10)
	row[colRemainingAmount] = strconv.FormatInt(b.Pricing.RemainingAmount, 10)
	row[colDepositPercentage] = strconv.Itoa(b.Pricing.DepositPercentage)
	row[colCurrency] = b.Pricing.Currency
	row[colOrderID] = b.Payment.OrderID
	row[colPaymentID] = b.Payment.PaymentID
	row[colDepositStatus] = b.Payment.DepositStatus
	row[colBalanceStatus] = b.Payment.BalanceStatus
	row[colPaidAt] = b.Payment.PaidAt
	row[colBalanceDueDate] = b.Payment.BalanceDueDate
	row[colStatus] = b.Status
	row[colCreatedAt] = b.CreatedAt.Format(time.RFC3339)
	row[colUpdatedAt] = b.UpdatedAt.Format(time.RFC3339)
	return row
}

func decodeRow(row []interface{}) (models.Booking, error) {
	var b models.Booking
	if cell(row, colID) == "" {
		return b, fmt.Errorf("row has no booking id")
	}
	b.ID = cell(row, colID)
	b.BookingType = cell(row, colBookingType)
	b.EventType = cell(row, colEventType)
	b.Halls = splitList(cell(row, colHalls))
	b.Guests, _ = strconv.Atoi(cell(row, colGuests))
	b.Date = cell(row, colDate)
	b.TimeFrom = models.TimeOfDay{
		Hour:     cell(row, colTimeFromHour),
		Minute:   cell(row, colTimeFromMinute),
		Meridian: cell(row, colTimeFromMeridian),
	}
	b.TimeTo = models.TimeOfDay{
		Hour:     cell(row, colTimeToHour),
		Minute:   cell(row, colTimeToMinute),
		Meridian: cell(row, colTimeToMeridian),
	}
	b.Services = splitList(cell(row, colServices))
	b.Info = cell(row, colInfo)
	b.Contact = models.Contact{
		FirstName: cell(row, colFirstName),
		LastName:  cell(row, colLastName),
		Email:     cell(row, colEmail),
		Mobile:    cell(row, colMobile),
		Address:   cell(row, colAddress),
		City:      cell(row, colCity),
		State:     cell(row, colState),
		Country:   cell(row, colCountry),
		Postcode:  cell(row, colPostcode),
	}
	b.Pricing.TotalAmount, _ = strconv.ParseInt(cell(row, colTotalAmount), 10, 64)
	b.Pricing.DepositAmount, _ = strconv.ParseInt(cell(row, colDepositAmount), 10, 64)
	b.Pricing.RemainingAmount, _ = strconv.ParseInt(cell(row, colRemainingAmount), 10, 64)
	b.Pricing.DepositPercentage, _ = strconv.Atoi(cell(row, colDepositPercentage))
	b.Pricing.Currency = cell(row, colCurrency)
	b.Payment = models.Payment{
		OrderID:        cell(row, colOrderID),
		PaymentID:      cell(row, colPaymentID),
		DepositStatus:  cell(row, colDepositStatus),
		BalanceStatus:  cell(row, colBalanceStatus),
		PaidAt:         cell(row, colPaidAt),
		BalanceDueDate: cell(row, colBalanceDueDate),
	}
	b.Status = cell(row, colStatus)
	b.CreatedAt, _ = time.Parse(time.RFC3339, cell(row, colCreatedAt))
	b.UpdatedAt, _ = time.Parse(time.RFC3339, cell(row, colUpdatedAt))
	return b, nil
}

// columnName converts a zero-based column index to its A1 letter form
// (0 -> "A", 25 -> "Z", 26 -> "AA").
func columnName(col int) string {
	name := ""
	for col >= 0 {
		name = string(rune('A'+col%26)) + name
		col = col/26 - 1
	}
	return name
}

// defaultBookingRange spans exactly the columns the codec writes, so a read
// can never drop trailing cells.
func defaultBookingRange() string {
	return fmt.Sprintf("Bookings!A%d:%s", firstDataRow, columnName(columnCount-1))
}

// cell reads a column from a spreadsheet row, tolerating short rows since the
// Sheets API trims trailing empty cells.
func cell(row []interface{}, col int) string {
	if col >= len(row) {
		return ""
	}
	s, ok := row[col].(string)
	if !ok {
		return fmt.Sprintf("%v", row[col])
	}
	return s
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
