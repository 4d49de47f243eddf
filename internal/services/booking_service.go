package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"tripbooking/internal/calculator"
	"tripbooking/internal/domain"
	"tripbooking/internal/domain/models"
	"tripbooking/internal/landingapi"
	"tripbooking/internal/repositories"
	"tripbooking/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingCreator posts a finished booking to the landing API.
type BookingCreator interface {
	CreateBooking(ctx context.Context, payload landingapi.BookingPayload) (int64, error)
}

// SubmissionLedger records accepted bookings; repositories.SubmissionRepo in production.
type SubmissionLedger interface {
	Enabled() bool
	Record(ctx context.Context, s models.Submission) (int64, error)
}

// CatalogInvalidator is implemented by catalogs that cache upstream data.
type CatalogInvalidator interface {
	Invalidate(ctx context.Context, tripIDs ...int64) error
}

// BookingService runs the booking draft lifecycle: every mutation is applied to the stored
// draft and the whole view is recomputed from the committed snapshot.
type BookingService struct {
	Catalog   repositories.Catalog
	Drafts    repositories.DraftStore
	Bookings  BookingCreator
	Ledger    SubmissionLedger
	Payments  PaymentTokens
	RequestID string
	Now       func() time.Time
	NewID     func() string
}

// DraftInput is the client-side view of a draft, used to create drafts and for stateless quotes.
type DraftInput struct {
	TripID       int64                    `json:"trip_id"`
	DurationID   int64                    `json:"duration_id"`
	StartDate    string                   `json:"start_date"`
	Pax          int                      `json:"pax"`
	Region       string                   `json:"region"`
	BoatID       int64                    `json:"boat_id"`
	Cabins       []models.CabinAllocation `json:"cabins"`
	Hotels       []models.HotelAllocation `json:"hotels"`
	ChosenFeeIDs []int64                  `json:"chosen_fee_ids"`
	Customer     models.Customer          `json:"customer"`
}

// SubmitResult is returned once the landing API accepted the booking.
type SubmitResult struct {
	BookingID  int64  `json:"booking_id"`
	Total      int64  `json:"total"`
	Token      string `json:"token"`
	PaymentURL string `json:"payment_url"`
}

func (s BookingService) WithRequestID(id string) BookingService {
	s.RequestID = id
	return s
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

func (s BookingService) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

// Quote prices a draft without storing it.
func (s BookingService) Quote(ctx context.Context, in DraftInput) (calculator.DerivedView, error) {
	d, err := draftFromInput(in)
	if err != nil {
		return calculator.DerivedView{}, err
	}
	input, err := s.loadInput(ctx, d)
	if err != nil {
		return calculator.DerivedView{}, err
	}
	if err := checkDuration(input.Trip, d.DurationID); err != nil {
		return calculator.DerivedView{}, err
	}
	return calculator.ComputeDerivedState(input), nil
}

func (s BookingService) CreateDraft(ctx context.Context, in DraftInput) (calculator.DerivedView, error) {
	d, err := draftFromInput(in)
	if err != nil {
		return calculator.DerivedView{}, err
	}
	input, gaps, err := s.loadCatalog(ctx, d)
	if err != nil {
		return calculator.DerivedView{}, err
	}
	if err := checkDuration(input.Trip, d.DurationID); err != nil {
		return calculator.DerivedView{}, err
	}
	if err := gaps.check(d); err != nil {
		return calculator.DerivedView{}, err
	}

	now := s.now()
	d.ID = s.newID()
	d.Status = models.DraftOpen
	d.CreatedAt = now
	d.UpdatedAt = now
	input.Draft = d
	input.Draft = calculator.NormalizeDraft(input)

	if err := s.Drafts.Create(ctx, input.Draft); err != nil {
		return calculator.DerivedView{}, err
	}
	utils.LogEvent(s.RequestID, "booking", "create_draft", "draft dibuat",
		zap.String("draft_id", d.ID), zap.Int64("trip_id", d.TripID))
	return calculator.ComputeDerivedState(input), nil
}

func (s BookingService) GetDraft(ctx context.Context, id string) (calculator.DerivedView, error) {
	d, err := s.Drafts.Get(ctx, id)
	if err != nil {
		return calculator.DerivedView{}, err
	}
	input, err := s.loadInput(ctx, d)
	if err != nil {
		return calculator.DerivedView{}, err
	}
	return calculator.ComputeDerivedState(input), nil
}

// UpdateDraft applies the present fields of upd. Pax changes re-check the boat selection
// and replay cabin/hotel allocations against the new party size.
func (s BookingService) UpdateDraft(ctx context.Context, id string, upd models.DraftUpdate) (calculator.DerivedView, error) {
	var (
		startDate string
		region    models.Region
	)
	if upd.StartDate != nil {
		v, err := normalizeStartDate(*upd.StartDate)
		if err != nil {
			return calculator.DerivedView{}, err
		}
		startDate = v
	}
	if upd.Region != nil {
		v, err := parseTravelerRegion(*upd.Region)
		if err != nil {
			return calculator.DerivedView{}, err
		}
		region = v
	}
	if upd.Pax != nil && *upd.Pax < 0 {
		return calculator.DerivedView{}, domain.ValidationError{Field: "pax", Msg: "jumlah pax tidak boleh negatif"}
	}

	return s.mutate(ctx, id, "update_draft", func(in calculator.Input, d *models.BookingDraft) error {
		if upd.DurationID != nil {
			if err := checkDuration(in.Trip, *upd.DurationID); err != nil {
				return err
			}
			d.DurationID = *upd.DurationID
		}
		if upd.StartDate != nil {
			d.StartDate = startDate
		}
		if upd.Pax != nil {
			d.Pax = *upd.Pax
		}
		if upd.Region != nil {
			d.Region = region
		}
		if upd.BoatID != nil && *upd.BoatID != d.BoatID {
			if *upd.BoatID != 0 {
				if !in.Trip.HasBoat || !calculator.BoatQualifies(in.Boats, *upd.BoatID, d.Pax) {
					return domain.ValidationError{Field: "boat_id", Msg: "kapal tidak tersedia untuk jumlah pax ini"}
				}
			}
			d.BoatID = *upd.BoatID
			d.Cabins = nil
		}
		if upd.Customer != nil {
			d.Customer = cleanCustomer(*upd.Customer)
		}
		return nil
	})
}

func (s BookingService) IncrementCabin(ctx context.Context, id string, cabinID int64) (calculator.DerivedView, error) {
	return s.changeCabin(ctx, id, cabinID, true)
}

func (s BookingService) DecrementCabin(ctx context.Context, id string, cabinID int64) (calculator.DerivedView, error) {
	return s.changeCabin(ctx, id, cabinID, false)
}

func (s BookingService) changeCabin(ctx context.Context, id string, cabinID int64, inc bool) (calculator.DerivedView, error) {
	action := "decrement_cabin"
	if inc {
		action = "increment_cabin"
	}
	return s.mutate(ctx, id, action, func(in calculator.Input, d *models.BookingDraft) error {
		boat, ok := boatByID(in.Boats, d.BoatID)
		if !ok {
			return domain.ValidationError{Field: "boat_id", Msg: "pilih kapal terlebih dahulu"}
		}
		alloc := calculator.NewCabinAllocator(boat, d.Pax, d.Cabins)
		var changed bool
		if inc {
			changed = alloc.Increment(cabinID)
		} else {
			changed = alloc.Decrement(cabinID)
		}
		if !changed {
			return domain.ConflictError{Resource: "cabin", Msg: "alokasi kabin tidak bisa diubah"}
		}
		d.Cabins = alloc.Allocations()
		return nil
	})
}

func (s BookingService) IncrementHotel(ctx context.Context, id string, hotelID int64) (calculator.DerivedView, error) {
	return s.changeHotel(ctx, id, hotelID, true)
}

func (s BookingService) DecrementHotel(ctx context.Context, id string, hotelID int64) (calculator.DerivedView, error) {
	return s.changeHotel(ctx, id, hotelID, false)
}

func (s BookingService) changeHotel(ctx context.Context, id string, hotelID int64, inc bool) (calculator.DerivedView, error) {
	action := "decrement_hotel"
	if inc {
		action = "increment_hotel"
	}
	return s.mutate(ctx, id, action, func(in calculator.Input, d *models.BookingDraft) error {
		if !in.Trip.HasHotel {
			return domain.ValidationError{Field: "hotel_id", Msg: "trip ini tidak menyediakan hotel"}
		}
		alloc := calculator.NewHotelAllocator(in.Hotels, d.Pax, d.Hotels)
		var changed bool
		if inc {
			changed = alloc.Increment(hotelID)
		} else {
			changed = alloc.Decrement(hotelID)
		}
		if !changed {
			return domain.ConflictError{Resource: "hotel", Msg: "alokasi kamar tidak bisa diubah"}
		}
		d.Hotels = alloc.Allocations()
		return nil
	})
}

// ToggleFee selects or unselects an optional applicable fee.
func (s BookingService) ToggleFee(ctx context.Context, id string, feeID int64) (calculator.DerivedView, error) {
	return s.mutate(ctx, id, "toggle_fee", func(in calculator.Input, d *models.BookingDraft) error {
		duration, _ := calculator.SelectedDuration(in.Trip, d.DurationID)
		applicable := calculator.ResolveFees(in.Trip.AdditionalFees, calculator.StartOf(*d), duration.Days, d.Pax, d.Region)
		next, ok := calculator.ToggleFee(applicable, d.ChosenFeeIDs, feeID)
		if !ok {
			return domain.ValidationError{Field: "fee_id", Msg: "biaya wajib atau tidak berlaku"}
		}
		d.ChosenFeeIDs = next
		return nil
	})
}

// Submit posts the draft to the landing API once. A failed post is logged and the draft
// stays editable; there is no retry.
func (s BookingService) Submit(ctx context.Context, id string) (SubmitResult, error) {
	current, err := s.Drafts.Get(ctx, id)
	if err != nil {
		return SubmitResult{}, err
	}
	input, gaps, err := s.loadCatalog(ctx, current)
	if err != nil {
		return SubmitResult{}, err
	}

	claimed, err := s.Drafts.Update(ctx, id, func(d *models.BookingDraft) error {
		if err := ensureOpen(*d); err != nil {
			return err
		}
		if err := gaps.check(*d); err != nil {
			return err
		}
		input.Draft = *d
		*d = calculator.NormalizeDraft(input)
		if err := validateForSubmit(input.Trip, *d); err != nil {
			return err
		}
		d.Status = models.DraftSubmitting
		d.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return SubmitResult{}, err
	}

	input.Draft = claimed
	view := calculator.ComputeDerivedState(input)
	payload := BuildBookingPayload(view)

	bookingID, err := s.Bookings.CreateBooking(ctx, payload)
	if err != nil {
		utils.LogError(s.RequestID, "booking", "submit", err,
			zap.String("draft_id", id), zap.Int64("trip_id", claimed.TripID))
		s.release(ctx, id)
		s.invalidateTrip(ctx, claimed.TripID)
		return SubmitResult{}, err
	}
	utils.LogEvent(s.RequestID, "booking", "submit", "booking diterima",
		zap.String("draft_id", id), zap.Int64("booking_id", bookingID), zap.Int64("total", view.Total))

	s.record(ctx, claimed, payload, bookingID)

	result := SubmitResult{BookingID: bookingID, Total: view.Total}
	token, err := s.Payments.Sign(bookingID, id)
	if err != nil {
		utils.LogError(s.RequestID, "booking", "payment_token", err, zap.Int64("booking_id", bookingID))
	}
	result.Token = token
	result.PaymentURL = s.Payments.URL(bookingID, token)

	if err := s.Drafts.Delete(ctx, id); err != nil {
		utils.LogError(s.RequestID, "booking", "discard_draft", err, zap.String("draft_id", id))
	}
	return result, nil
}

func (s BookingService) release(ctx context.Context, id string) {
	_, err := s.Drafts.Update(ctx, id, func(d *models.BookingDraft) error {
		d.Status = models.DraftOpen
		return nil
	})
	if err != nil {
		utils.LogError(s.RequestID, "booking", "release_draft", err, zap.String("draft_id", id))
	}
}

func (s BookingService) record(ctx context.Context, d models.BookingDraft, payload landingapi.BookingPayload, bookingID int64) {
	if s.Ledger == nil || !s.Ledger.Enabled() {
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		utils.LogError(s.RequestID, "booking", "ledger", err)
		return
	}
	_, err = s.Ledger.Record(ctx, models.Submission{
		BookingID:  bookingID,
		DraftID:    d.ID,
		TripID:     d.TripID,
		TotalPax:   payload.TotalPax,
		TotalPrice: payload.TotalPrice,
		Payload:    raw,
		CreatedAt:  s.now(),
	})
	if err != nil {
		utils.LogError(s.RequestID, "booking", "ledger", err, zap.Int64("booking_id", bookingID))
	}
}

// mutate loads the catalog for the draft's trip and applies fn inside a store update.
// The draft is normalized before and after fn so fn always sees a consistent snapshot.
func (s BookingService) mutate(ctx context.Context, id, action string, fn func(calculator.Input, *models.BookingDraft) error) (calculator.DerivedView, error) {
	current, err := s.Drafts.Get(ctx, id)
	if err != nil {
		return calculator.DerivedView{}, err
	}
	input, gaps, err := s.loadCatalog(ctx, current)
	if err != nil {
		return calculator.DerivedView{}, err
	}

	updated, err := s.Drafts.Update(ctx, id, func(d *models.BookingDraft) error {
		if err := ensureOpen(*d); err != nil {
			return err
		}
		if err := gaps.check(*d); err != nil {
			return err
		}
		input.Draft = *d
		*d = calculator.NormalizeDraft(input)
		if err := fn(input, d); err != nil {
			return err
		}
		input.Draft = *d
		*d = calculator.NormalizeDraft(input)
		d.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return calculator.DerivedView{}, err
	}
	utils.LogEvent(s.RequestID, "booking", action, "draft diperbarui", zap.String("draft_id", id))

	input.Draft = updated
	return calculator.ComputeDerivedState(input), nil
}

// catalogGaps keeps the errors of boat/hotel lists that failed to load.
type catalogGaps struct {
	boats  error
	hotels error
}

// check fails when d already holds a selection from a list that is missing, so a write
// never drops that selection because of a failed fetch.
func (g catalogGaps) check(d models.BookingDraft) error {
	if g.boats != nil && (d.BoatID != 0 || len(d.Cabins) > 0) {
		return g.boats
	}
	if g.hotels != nil && len(d.Hotels) > 0 {
		return g.hotels
	}
	return nil
}

// loadInput fetches the trip plus boats/hotels only when the trip offers them. Only the
// trip is required; a failed boat or hotel list is logged and left empty.
func (s BookingService) loadInput(ctx context.Context, d models.BookingDraft) (calculator.Input, error) {
	in, _, err := s.loadCatalog(ctx, d)
	return in, err
}

func (s BookingService) loadCatalog(ctx context.Context, d models.BookingDraft) (calculator.Input, catalogGaps, error) {
	var gaps catalogGaps
	in := calculator.Input{Draft: d}
	trip, err := s.Catalog.GetTrip(ctx, d.TripID)
	if err != nil {
		return in, gaps, err
	}
	in.Trip = trip
	if trip.HasBoat {
		if in.Boats, gaps.boats = s.Catalog.ListBoats(ctx); gaps.boats != nil {
			utils.LogError(s.RequestID, "booking", "list_boats", gaps.boats, zap.Int64("trip_id", trip.ID))
			in.Boats = nil
		}
	}
	if trip.HasHotel {
		if in.Hotels, gaps.hotels = s.Catalog.ListHotels(ctx); gaps.hotels != nil {
			utils.LogError(s.RequestID, "booking", "list_hotels", gaps.hotels, zap.Int64("trip_id", trip.ID))
			in.Hotels = nil
		}
	}
	return in, gaps, nil
}

// invalidateTrip drops cached catalog entries for a trip whose booking was refused, so the
// next read sees current upstream data.
func (s BookingService) invalidateTrip(ctx context.Context, tripID int64) {
	inv, ok := s.Catalog.(CatalogInvalidator)
	if !ok {
		return
	}
	if err := inv.Invalidate(ctx, tripID); err != nil {
		utils.LogError(s.RequestID, "booking", "invalidate_catalog", err, zap.Int64("trip_id", tripID))
	}
}

// checkDuration accepts 0 (the trip's first duration) or one of the trip's duration ids.
func checkDuration(trip models.Trip, durationID int64) error {
	if durationID == 0 {
		return nil
	}
	if _, ok := trip.Duration(durationID); !ok {
		return domain.ValidationError{Field: "duration_id", Msg: "durasi tidak ditemukan"}
	}
	return nil
}

func ensureOpen(d models.BookingDraft) error {
	if d.Status == "" || d.Status == models.DraftOpen {
		return nil
	}
	return domain.ConflictError{Resource: "draft", Msg: "draft sudah dikirim"}
}

func validateForSubmit(trip models.Trip, d models.BookingDraft) error {
	if d.TripID <= 0 || trip.ID == 0 {
		return domain.ValidationError{Field: "trip_id", Msg: "trip belum dipilih"}
	}
	if calculator.StartOf(d).IsZero() {
		return domain.ValidationError{Field: "start_date", Msg: "tanggal keberangkatan belum dipilih"}
	}
	if !d.Region.IsTravelerRegion() {
		return domain.ValidationError{Field: "region", Msg: "region belum dipilih"}
	}
	if _, ok := calculator.SelectedDuration(trip, d.DurationID); !ok {
		return domain.ValidationError{Field: "duration_id", Msg: "durasi belum dipilih"}
	}
	if d.Pax <= 0 {
		return domain.ValidationError{Field: "pax", Msg: "jumlah pax minimal 1"}
	}
	return nil
}

func draftFromInput(in DraftInput) (models.BookingDraft, error) {
	if in.TripID <= 0 {
		return models.BookingDraft{}, domain.ValidationError{Field: "trip_id", Msg: "trip_id wajib diisi"}
	}
	if in.Pax < 0 {
		return models.BookingDraft{}, domain.ValidationError{Field: "pax", Msg: "jumlah pax tidak boleh negatif"}
	}
	start, err := normalizeStartDate(in.StartDate)
	if err != nil {
		return models.BookingDraft{}, err
	}
	var region models.Region
	if strings.TrimSpace(in.Region) != "" {
		if region, err = parseTravelerRegion(in.Region); err != nil {
			return models.BookingDraft{}, err
		}
	}
	return models.BookingDraft{
		TripID:       in.TripID,
		DurationID:   in.DurationID,
		StartDate:    start,
		Pax:          in.Pax,
		Region:       region,
		BoatID:       in.BoatID,
		Cabins:       in.Cabins,
		Hotels:       in.Hotels,
		ChosenFeeIDs: in.ChosenFeeIDs,
		Customer:     cleanCustomer(in.Customer),
		Status:       models.DraftOpen,
	}, nil
}

// normalizeStartDate accepts an empty value (unset) or a YYYY-MM-DD date.
func normalizeStartDate(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", nil
	}
	t, err := utils.ParseDate(v)
	if err != nil {
		return "", domain.ValidationError{Field: "start_date", Msg: "format tanggal harus YYYY-MM-DD", Err: err}
	}
	return utils.FormatDate(t), nil
}

func parseTravelerRegion(v string) (models.Region, error) {
	if strings.TrimSpace(v) == "" {
		return models.RegionUnknown, nil
	}
	r := models.ParseRegion(v)
	if !r.IsTravelerRegion() {
		return models.RegionUnknown, domain.ValidationError{Field: "region", Msg: fmt.Sprintf("region %q tidak dikenal", v)}
	}
	return r, nil
}

func cleanCustomer(c models.Customer) models.Customer {
	return models.Customer{
		Name:    utils.NormalizeSpace(c.Name),
		Email:   strings.TrimSpace(c.Email),
		Address: utils.NormalizeSpace(c.Address),
		Country: utils.NormalizeSpace(c.Country),
		Phone:   strings.TrimSpace(c.Phone),
	}
}

func boatByID(boats []models.Boat, id int64) (models.Boat, bool) {
	if id == 0 {
		return models.Boat{}, false
	}
	for _, b := range boats {
		if b.ID == id {
			return b, true
		}
	}
	return models.Boat{}, false
}
