package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"tripbooking/internal/calculator"
	"tripbooking/internal/utils"

	"github.com/phpdave11/gofpdf"
	"go.uber.org/zap"
)

// DocsService menghasilkan PDF ringkasan harga untuk sebuah draft booking.
type DocsService struct {
	Booking   BookingService
	RequestID string
	Loader    func(ctx context.Context, draftID string) (quoteDocData, error)
	Now       func() time.Time
}

type quoteLine struct {
	Label  string
	Amount int64
}

type quoteDocData struct {
	DraftID      string
	TripName     string
	TripType     string
	Duration     string
	StartDate    string
	EndDate      string
	Pax          int
	Region       string
	CustomerName string
	Lines        []quoteLine
	Total        int64
}

func (s DocsService) GenerateQuote(ctx context.Context, draftID string) ([]byte, string, error) {
	data, err := s.loadQuoteDocData(ctx, draftID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_quote", "pdf ringkasan dibuat", zap.String("draft_id", draftID))
	return buildQuotePDF(data, s.now())
}

func (s DocsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s DocsService) loadQuoteDocData(ctx context.Context, draftID string) (quoteDocData, error) {
	if s.Loader != nil {
		return s.Loader(ctx, draftID)
	}
	view, err := s.Booking.GetDraft(ctx, draftID)
	if err != nil {
		return quoteDocData{}, err
	}
	trip, err := s.Booking.Catalog.GetTrip(ctx, view.Draft.TripID)
	if err != nil {
		return quoteDocData{}, err
	}
	data := quoteDocFromView(trip.Name, view)
	data.TripType = trip.Type.Label()
	return data, nil
}

func quoteDocFromView(tripName string, view calculator.DerivedView) quoteDocData {
	d := view.Draft
	out := quoteDocData{
		DraftID:      d.ID,
		TripName:     tripName,
		StartDate:    view.StartDate,
		EndDate:      view.EndDate,
		Pax:          d.Pax,
		Region:       string(d.Region),
		CustomerName: d.Customer.Name,
		Total:        view.Total,
	}
	if view.Duration != nil {
		out.Duration = view.Duration.Label
	}

	b := view.Breakdown
	if b.BaseTotal > 0 {
		out.Lines = append(out.Lines, quoteLine{
			Label:  fmt.Sprintf("Harga trip %d pax x %s", d.Pax, utils.FormatRupiah(b.BasePricePerPax)),
			Amount: b.BaseTotal,
		})
	}
	for _, c := range view.Cabins {
		out.Lines = append(out.Lines, quoteLine{
			Label:  fmt.Sprintf("Kabin %s (%d pax)", safe(c.Cabin.Name, "-"), c.Pax),
			Amount: c.Price,
		})
	}
	for _, h := range view.Hotels {
		out.Lines = append(out.Lines, quoteLine{
			Label:  fmt.Sprintf("Hotel %s %d kamar x %d malam", safe(h.Hotel.Name, "-"), h.Rooms, h.Nights),
			Amount: h.Price,
		})
	}
	for _, f := range view.SelectedFees {
		label := f.Fee.Category
		if f.Fee.IsRequired {
			label += " (wajib)"
		}
		out.Lines = append(out.Lines, quoteLine{Label: label, Amount: f.Amount})
	}
	if view.Surcharge != nil && b.SurchargeTotal > 0 {
		out.Lines = append(out.Lines, quoteLine{
			Label:  "Surcharge " + safe(view.Surcharge.Season, "musim ramai"),
			Amount: b.SurchargeTotal,
		})
	}
	return out
}

func buildQuotePDF(d quoteDocData, printedAt time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Ringkasan Harga", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RINGKASAN HARGA")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Trip           : %s", safe(d.TripName, "-")),
		fmt.Sprintf("Tipe           : %s", safe(d.TripType, "-")),
		fmt.Sprintf("Durasi         : %s", safe(d.Duration, "-")),
		fmt.Sprintf("Tanggal        : %s s/d %s", safe(d.StartDate, "-"), safe(d.EndDate, "-")),
		fmt.Sprintf("Jumlah Pax     : %d", d.Pax),
		fmt.Sprintf("Region         : %s", safe(d.Region, "-")),
		fmt.Sprintf("Pemesan        : %s", safe(d.CustomerName, "-")),
		fmt.Sprintf("Dicetak        : %s", utils.FormatDateTime(printedAt)),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(130, 8, "Rincian")
	pdf.CellFormat(0, 8, "Jumlah", "", 0, "R", false, 0, "")
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 11)
	if len(d.Lines) == 0 {
		pdf.Cell(0, 7, "Belum ada item yang dipilih.")
		pdf.Ln(7)
	}
	for _, l := range d.Lines {
		pdf.Cell(130, 7, l.Label)
		pdf.CellFormat(0, 7, utils.FormatRupiah(l.Amount), "", 0, "R", false, 0, "")
		pdf.Ln(7)
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(130, 8, "Total")
	pdf.CellFormat(0, 8, utils.FormatRupiah(d.Total), "", 0, "R", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Ringkasan ini belum merupakan bukti booking. Harga dapat berubah sampai booking dikirim.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("QUOTE_%s_%s.pdf", safeFilenamePart(d.DraftID), safeFilenamePart(d.TripName))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
