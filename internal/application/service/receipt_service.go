package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/sangkips/innkeeper-api/internal/domain/entity"
	"github.com/sangkips/innkeeper-api/internal/domain/pricing"
	"github.com/sangkips/innkeeper-api/internal/domain/receipt"
	"github.com/sangkips/innkeeper-api/internal/domain/repository"
	"github.com/sangkips/innkeeper-api/pkg/apperror"
	"github.com/sangkips/innkeeper-api/pkg/export"
	"github.com/sangkips/innkeeper-api/pkg/printer"
	"github.com/sangkips/innkeeper-api/pkg/utils"
)

// ReceiptService composes guest bills and sends them to the printer or a spreadsheet.
type ReceiptService struct {
	bookings     *BookingService
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
	printer      printer.Printer
	charWidth    int
}

// NewReceiptService creates a new receipt service.
func NewReceiptService(
	bookings *BookingService,
	propertyRepo repository.PropertyRepository,
	userRepo repository.UserRepository,
	p printer.Printer,
	charWidth int,
) *ReceiptService {
	if p == nil {
		p = printer.NewNullPrinter()
	}
	return &ReceiptService{
		bookings:     bookings,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		printer:      p,
		charWidth:    charWidth,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *ReceiptService) GetStatus(ctx context.Context) *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printer.Type() != "none",
		Connected:  s.printer.IsConnected(ctx),
		Type:       s.printer.Type(),
	}
}

// BuildReceipt composes the bill of a booking from its stored charges.
func (s *ReceiptService) BuildReceipt(ctx context.Context, bookingID uuid.UUID) (*entity.Receipt, error) {
	sess, err := currentSession(ctx)
	if err != nil {
		return nil, err
	}
	booking, err := s.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	property, err := s.propertyRepo.GetByID(ctx, sess.PropertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, apperror.NewNotFoundError("Property")
	}
	settings := property.Settings

	meta := receipt.Meta{
		Header: entity.ReceiptHeader{
			PropertyName: property.Name,
			Address:      property.Address,
			Phone:        property.Phone,
			GSTIN:        property.GSTIN,
		},
		ReceiptNo:      utils.GenerateReceiptNo(booking.BookingNo),
		Date:           booking.CreatedAt.Format("2006-01-02 15:04"),
		Guest:          booking.GuestName,
		Room:           booking.RoomDescription(),
		CheckIn:        booking.CheckIn.Format(pricing.DateLayout),
		CheckOut:       booking.CheckOut.Format(pricing.DateLayout),
		PaymentMethod:  booking.PaymentMethod,
		CurrencySymbol: settings.CurrencySymbol,
		Footer:         settings.ReceiptFooter,
	}
	if booking.CheckedOutAt != nil {
		meta.Date = booking.CheckedOutAt.Format("2006-01-02 15:04")
	}
	if user, err := s.userRepo.GetByID(ctx, sess.UserID); err == nil && user != nil {
		meta.Cashier = user.FullName()
	}

	r := receipt.Build(meta, booking.Settlement())
	return &r, nil
}

// PrintReceipt builds the bill and prints it. The receipt is returned even
// when printing fails so the caller can still show it.
func (s *ReceiptService) PrintReceipt(ctx context.Context, bookingID uuid.UUID) (*entity.Receipt, error) {
	r, err := s.BuildReceipt(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	data := FormatReceipt(r, s.charWidth)
	if err := s.printer.Print(ctx, data); err != nil {
		log.Printf("[printer] booking %s: %v", bookingID, err)
		return r, fmt.Errorf("failed to print receipt: %w", err)
	}
	return r, nil
}

// ExportReceipt renders the bill as an xlsx workbook and returns it with a file name.
func (s *ReceiptService) ExportReceipt(ctx context.Context, bookingID uuid.UUID) ([]byte, string, error) {
	r, err := s.BuildReceipt(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	data, err := export.ReceiptXLSX(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to export receipt: %w", err)
	}
	return data, r.ReceiptNo + ".xlsx", nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt, charWidth int) []byte {
	doc := printer.NewDocument(charWidth)
	money := func(v float64) string {
		return fmt.Sprintf("%s%.2f", r.CurrencySymbol, v)
	}

	gstin := ""
	if r.Header.GSTIN != "" {
		gstin = "GSTIN: " + r.Header.GSTIN
	}
	doc.Heading(r.Header.PropertyName).
		Centered(r.Header.Address, r.Header.Phone, gstin).
		Separator('-')

	doc.KeyValue("Receipt:", r.ReceiptNo).
		KeyValue("Date:", r.Date)
	if r.Guest != "" {
		doc.KeyValue("Guest:", r.Guest)
	}
	if r.CheckIn != "" {
		doc.KeyValue("Check-in:", r.CheckIn).
			KeyValue("Check-out:", r.CheckOut)
	}
	if r.Cashier != "" {
		doc.KeyValue("Cashier:", r.Cashier)
	}
	if r.PaymentMethod != "" {
		doc.KeyValue("Payment:", r.PaymentMethod)
	}

	doc.Separator('-')

	for _, row := range r.ChargeRows() {
		doc.ChargeLine(row.Description, row.Quantity, fmt.Sprintf("%.2f", row.Rate), fmt.Sprintf("%.2f", row.Amount))
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", money(r.Subtotal)).
		KeyValue("Advance paid:", money(r.Advance)).
		BoldKeyValue("BALANCE DUE:", money(r.Balance)).
		KeyValue("Status:", r.PaymentStatus)

	doc.Separator('-')

	if r.Footer != "" {
		doc.FeedLines(1).Centered(r.Footer)
	}

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
