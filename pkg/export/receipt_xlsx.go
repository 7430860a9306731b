// Package export renders receipts as spreadsheets for the accounts team.
package export

import (
	"bytes"
	"fmt"

	"github.com/sangkips/innkeeper-api/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

// ReceiptSheet is the name of the single worksheet in a receipt workbook
const ReceiptSheet = "Receipt"

// amountFormat is Excel's built-in "#,##0.00"
const amountFormat = 4

// ReceiptXLSX writes r as a one-sheet workbook: header block, one row per
// charge, then the subtotal, advance and balance rows.
func ReceiptXLSX(r *entity.Receipt) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ReceiptSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: amountFormat})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}
	boldMoney, err := f.NewStyle(&excelize.Style{NumFmt: amountFormat, Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}

	w := &sheetWriter{f: f, sheet: ReceiptSheet, row: 1}

	w.cell(1, r.Header.PropertyName, bold)
	w.next()
	for _, line := range []string{r.Header.Address, r.Header.Phone} {
		if line != "" {
			w.cell(1, line, 0)
			w.next()
		}
	}
	if r.Header.GSTIN != "" {
		w.cell(1, "GSTIN: "+r.Header.GSTIN, 0)
		w.next()
	}
	w.next()

	for _, kv := range [][2]string{
		{"Receipt No", r.ReceiptNo},
		{"Date", r.Date},
		{"Guest", r.Guest},
		{"Room", r.Room},
		{"Check-in", r.CheckIn},
		{"Check-out", r.CheckOut},
		{"Payment", r.PaymentMethod},
		{"Status", r.PaymentStatus},
	} {
		if kv[1] == "" {
			continue
		}
		w.cell(1, kv[0], bold)
		w.cell(2, kv[1], 0)
		w.next()
	}
	w.next()

	for col, title := range []string{"Description", "Rate", "Qty", "Amount"} {
		w.cell(col+1, title, bold)
	}
	w.next()

	for _, row := range r.Rows {
		if row.IsSummary() {
			w.cell(1, row.Description, bold)
			w.cell(4, row.Amount, boldMoney)
		} else {
			w.cell(1, row.Description, 0)
			w.cell(2, row.Rate, money)
			w.cell(3, row.Quantity, 0)
			w.cell(4, row.Amount, money)
		}
		w.next()
	}

	if w.err != nil {
		return nil, w.err
	}
	if err := f.SetColWidth(ReceiptSheet, "A", "A", 36); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(ReceiptSheet, "B", "D", 14); err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if _, err := f.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter keeps the current row and the first error
type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
	err   error
}

func (w *sheetWriter) cell(col int, value interface{}, style int) {
	if w.err != nil {
		return
	}
	name, err := excelize.CoordinatesToCellName(col, w.row)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetCellValue(w.sheet, name, value); err != nil {
		w.err = err
		return
	}
	if style != 0 {
		w.err = w.f.SetCellStyle(w.sheet, name, name, style)
	}
}

func (w *sheetWriter) next() { w.row++ }
