package services

import (
	"context"
	"testing"

	"tripbooking/internal/domain"
	"tripbooking/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestBookingService_CreateDraft(t *testing.T) {
	f := newServiceFixture()

	view, err := f.svc.CreateDraft(context.Background(), baseDraftInput())
	require.NoError(t, err)

	assert.Equal(t, "draft-1", view.Draft.ID)
	assert.Equal(t, models.DraftOpen, view.Draft.Status)
	assert.Equal(t, "Budi Santoso", view.Draft.Customer.Name)
	assert.Equal(t, "2026-02-04", view.EndDate)
	assert.Len(t, view.AvailableBoats, 1)
	// base 2 x 1.000.000 plus the required guide fee 3 days x 500.000
	assert.Equal(t, int64(3_500_000), view.Total)

	stored, err := f.drafts.Get(context.Background(), "draft-1")
	require.NoError(t, err)
	assert.Equal(t, models.RegionDomestic, stored.Region)
}

func TestBookingService_CreateDraftValidation(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	in := baseDraftInput()
	in.TripID = 0
	_, err := f.svc.CreateDraft(ctx, in)
	assert.True(t, domain.IsValidation(err))

	in = baseDraftInput()
	in.StartDate = "02/02/2026"
	_, err = f.svc.CreateDraft(ctx, in)
	assert.True(t, domain.IsValidation(err))

	in = baseDraftInput()
	in.Region = "Domestic & Overseas"
	_, err = f.svc.CreateDraft(ctx, in)
	assert.True(t, domain.IsValidation(err))

	in = baseDraftInput()
	in.TripID = 99
	_, err = f.svc.CreateDraft(ctx, in)
	assert.True(t, domain.IsNotFound(err))
}

func buildFullDraft(t *testing.T, f serviceFixture) {
	t.Helper()
	ctx := context.Background()

	_, err := f.svc.CreateDraft(ctx, baseDraftInput())
	require.NoError(t, err)
	_, err = f.svc.UpdateDraft(ctx, "draft-1", models.DraftUpdate{BoatID: int64Ptr(1)})
	require.NoError(t, err)
	_, err = f.svc.IncrementCabin(ctx, "draft-1", 11)
	require.NoError(t, err)
	_, err = f.svc.IncrementCabin(ctx, "draft-1", 11)
	require.NoError(t, err)
	_, err = f.svc.IncrementHotel(ctx, "draft-1", 41)
	require.NoError(t, err)
	_, err = f.svc.ToggleFee(ctx, "draft-1", 23)
	require.NoError(t, err)
}

func TestBookingService_InteractiveAllocation(t *testing.T) {
	f := newServiceFixture()
	buildFullDraft(t, f)
	ctx := context.Background()

	view, err := f.svc.GetDraft(ctx, "draft-1")
	require.NoError(t, err)
	require.Len(t, view.Cabins, 1)
	assert.Equal(t, 2, view.Cabins[0].Pax)
	assert.Equal(t, int64(5_000_000), view.Cabins[0].Price)
	require.Len(t, view.Hotels, 1)
	assert.Equal(t, int64(2_000_000), view.Hotels[0].Price)
	assert.Equal(t, int64(2_000_000+1_600_000+5_000_000+2_000_000), view.Total)

	// party fully placed: no further cabin or room
	_, err = f.svc.IncrementCabin(ctx, "draft-1", 12)
	assert.True(t, domain.IsConflict(err))
	_, err = f.svc.IncrementHotel(ctx, "draft-1", 42)
	assert.True(t, domain.IsConflict(err))

	// required fee cannot be toggled
	_, err = f.svc.ToggleFee(ctx, "draft-1", 21)
	assert.True(t, domain.IsValidation(err))

	view, err = f.svc.DecrementCabin(ctx, "draft-1", 11)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Cabins[0].Pax)
}

func TestBookingService_PaxChangeTrimsAllocations(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	in := baseDraftInput()
	in.Pax = 4
	_, err := f.svc.CreateDraft(ctx, in)
	require.NoError(t, err)
	_, err = f.svc.UpdateDraft(ctx, "draft-1", models.DraftUpdate{BoatID: int64Ptr(1)})
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		_, err = f.svc.IncrementCabin(ctx, "draft-1", 11)
		require.NoError(t, err)
	}

	view, err := f.svc.UpdateDraft(ctx, "draft-1", models.DraftUpdate{Pax: intPtr(2)})
	require.NoError(t, err)
	require.Len(t, view.Draft.Cabins, 1)
	assert.Equal(t, 2, view.Draft.Cabins[0].Pax)

	// boat no longer holds the party: selection and cabins are cleared
	view, err = f.svc.UpdateDraft(ctx, "draft-1", models.DraftUpdate{Pax: intPtr(11)})
	require.NoError(t, err)
	assert.Equal(t, int64(0), view.Draft.BoatID)
	assert.Empty(t, view.Draft.Cabins)

	_, err = f.svc.UpdateDraft(ctx, "draft-1", models.DraftUpdate{BoatID: int64Ptr(1)})
	assert.True(t, domain.IsValidation(err))
}

func TestBookingService_UpdateDraftValidation(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()
	_, err := f.svc.CreateDraft(ctx, baseDraftInput())
	require.NoError(t, err)

	_, err = f.svc.UpdateDraft(ctx, "draft-1", models.DraftUpdate{StartDate: strPtr("nope")})
	assert.True(t, domain.IsValidation(err))
	_, err = f.svc.UpdateDraft(ctx, "draft-1", models.DraftUpdate{DurationID: int64Ptr(555)})
	assert.True(t, domain.IsValidation(err))
	_, err = f.svc.UpdateDraft(ctx, "draft-1", models.DraftUpdate{Pax: intPtr(-1)})
	assert.True(t, domain.IsValidation(err))
	_, err = f.svc.UpdateDraft(ctx, "missing", models.DraftUpdate{Pax: intPtr(1)})
	assert.True(t, domain.IsNotFound(err))

	view, err := f.svc.UpdateDraft(ctx, "draft-1", models.DraftUpdate{StartDate: strPtr(""), Region: strPtr("overseas")})
	require.NoError(t, err)
	assert.Empty(t, view.StartDate)
	assert.Equal(t, models.RegionOverseas, view.Draft.Region)
	assert.Nil(t, view.BasePrice)
}

func TestBookingService_Submit(t *testing.T) {
	f := newServiceFixture()
	buildFullDraft(t, f)
	ctx := context.Background()

	res, err := f.svc.Submit(ctx, "draft-1")
	require.NoError(t, err)
	assert.Equal(t, int64(901), res.BookingID)
	assert.Equal(t, int64(10_600_000), res.Total)
	assert.NotEmpty(t, res.Token)
	assert.Contains(t, res.PaymentURL, "booking_id=901")

	require.Equal(t, 1, f.creator.calls)
	p := f.creator.payloads[0]
	assert.Equal(t, int64(7), p.TripID)
	assert.Equal(t, int64(100), p.TripDurationID)
	assert.Equal(t, "2026-02-02", p.StartDate)
	assert.Equal(t, "2026-02-04", p.EndDate)
	assert.Equal(t, "Pending", p.Status)
	assert.Equal(t, 2, p.TotalPax)
	assert.Equal(t, int64(10_600_000), p.TotalPrice)
	assert.Equal(t, []int64{1}, p.BoatIDs)
	require.Len(t, p.Cabins, 1)
	assert.Equal(t, int64(11), p.Cabins[0].CabinID)
	assert.Equal(t, int64(5_000_000), p.Cabins[0].TotalPrice)
	require.Len(t, p.AdditionalFeeIDs, 2)
	assert.Equal(t, int64(21), p.AdditionalFeeIDs[0].AdditionalFeeID)
	assert.Equal(t, int64(1_500_000), p.AdditionalFeeIDs[0].TotalPrice)
	require.NotNil(t, p.HotelOccupancyID)
	assert.Equal(t, int64(41), *p.HotelOccupancyID)
	assert.True(t, p.IsHotelRequested)

	require.Len(t, f.ledger.records, 1)
	assert.Equal(t, int64(901), f.ledger.records[0].BookingID)
	assert.Equal(t, "draft-1", f.ledger.records[0].DraftID)

	claims, err := f.svc.Payments.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(901), claims.BookingID)

	_, err = f.svc.GetDraft(ctx, "draft-1")
	assert.True(t, domain.IsNotFound(err))
}

func TestBookingService_SubmitFailureKeepsDraft(t *testing.T) {
	f := newServiceFixture()
	buildFullDraft(t, f)
	f.creator.err = domain.UpstreamError{Op: "create booking", StatusCode: 500}
	ctx := context.Background()

	_, err := f.svc.Submit(ctx, "draft-1")
	assert.True(t, domain.IsUpstream(err))
	assert.Empty(t, f.ledger.records)

	view, err := f.svc.GetDraft(ctx, "draft-1")
	require.NoError(t, err)
	assert.Equal(t, models.DraftOpen, view.Draft.Status)
	assert.Equal(t, int64(10_600_000), view.Total)

	// still editable after the failed attempt
	_, err = f.svc.ToggleFee(ctx, "draft-1", 23)
	require.NoError(t, err)
}

func TestBookingService_SubmitValidation(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	in := baseDraftInput()
	in.StartDate = ""
	_, err := f.svc.CreateDraft(ctx, in)
	require.NoError(t, err)

	_, err = f.svc.Submit(ctx, "draft-1")
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, 0, f.creator.calls)

	_, err = f.svc.UpdateDraft(ctx, "draft-1", models.DraftUpdate{StartDate: strPtr("2026-02-02"), Region: strPtr("")})
	require.NoError(t, err)
	_, err = f.svc.Submit(ctx, "draft-1")
	assert.True(t, domain.IsValidation(err))

	stored, err := f.drafts.Get(ctx, "draft-1")
	require.NoError(t, err)
	assert.Equal(t, models.DraftOpen, stored.Status)
}

func TestBookingService_SubmittingDraftIsImmutable(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()
	_, err := f.svc.CreateDraft(ctx, baseDraftInput())
	require.NoError(t, err)

	_, err = f.drafts.Update(ctx, "draft-1", func(d *models.BookingDraft) error {
		d.Status = models.DraftSubmitting
		return nil
	})
	require.NoError(t, err)

	_, err = f.svc.UpdateDraft(ctx, "draft-1", models.DraftUpdate{Pax: intPtr(3)})
	assert.True(t, domain.IsConflict(err))
	_, err = f.svc.Submit(ctx, "draft-1")
	assert.True(t, domain.IsConflict(err))
	assert.Equal(t, 0, f.creator.calls)
}

func TestBookingService_QuoteIsStateless(t *testing.T) {
	f := newServiceFixture()
	in := baseDraftInput()
	in.BoatID = 1
	in.Cabins = []models.CabinAllocation{{CabinID: 11, Pax: 2}}
	in.ChosenFeeIDs = []int64{23}

	view, err := f.svc.Quote(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(2_000_000+1_600_000+5_000_000), view.Total)

	_, err = f.drafts.Get(context.Background(), "draft-1")
	assert.True(t, domain.IsNotFound(err))
}

func TestBookingService_TripWithoutHotel(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()
	_, err := f.svc.CreateDraft(ctx, DraftInput{TripID: 8, Pax: 1})
	require.NoError(t, err)

	_, err = f.svc.IncrementHotel(ctx, "draft-1", 41)
	assert.True(t, domain.IsValidation(err))
	_, err = f.svc.IncrementCabin(ctx, "draft-1", 11)
	assert.True(t, domain.IsValidation(err))
}

func TestBookingService_QuoteWithoutBoatList(t *testing.T) {
	f := newServiceFixture()
	f.svc.Catalog = &flakyCatalog{Catalog: fixtureCatalog(), boatsErr: domain.UpstreamError{Op: "list_boats", StatusCode: 503}}
	in := baseDraftInput()
	in.BoatID = 1
	in.Cabins = []models.CabinAllocation{{CabinID: 11, Pax: 2}}
	in.ChosenFeeIDs = []int64{23}

	view, err := f.svc.Quote(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, view.AvailableBoats)
	assert.Nil(t, view.SelectedBoat)
	assert.Equal(t, int64(2_000_000+1_600_000), view.Total)
}

func TestBookingService_MissingListsNeverDropSelections(t *testing.T) {
	f := newServiceFixture()
	buildFullDraft(t, f)
	cat := &flakyCatalog{Catalog: fixtureCatalog()}
	f.svc.Catalog = cat
	ctx := context.Background()

	cat.boatsErr = domain.UpstreamError{Op: "list_boats", StatusCode: 503}
	view, err := f.svc.GetDraft(ctx, "draft-1")
	require.NoError(t, err)
	assert.Empty(t, view.AvailableBoats)

	_, err = f.svc.ToggleFee(ctx, "draft-1", 23)
	assert.True(t, domain.IsUpstream(err))
	_, err = f.svc.Submit(ctx, "draft-1")
	assert.True(t, domain.IsUpstream(err))
	assert.Equal(t, 0, f.creator.calls)

	stored, err := f.drafts.Get(ctx, "draft-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.BoatID)
	assert.Len(t, stored.Cabins, 1)
	assert.Equal(t, models.DraftOpen, stored.Status)

	cat.boatsErr = nil
	cat.hotelsErr = domain.UpstreamError{Op: "list_hotels", StatusCode: 503}
	_, err = f.svc.UpdateDraft(ctx, "draft-1", models.DraftUpdate{Pax: intPtr(3)})
	assert.True(t, domain.IsUpstream(err))
	stored, err = f.drafts.Get(ctx, "draft-1")
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Pax)
	assert.Len(t, stored.Hotels, 1)
}

func TestBookingService_MissingListStillAllowsDraftsWithoutSelection(t *testing.T) {
	f := newServiceFixture()
	f.svc.Catalog = &flakyCatalog{Catalog: fixtureCatalog(), hotelsErr: domain.UpstreamError{Op: "list_hotels", StatusCode: 503}}
	ctx := context.Background()

	view, err := f.svc.CreateDraft(ctx, baseDraftInput())
	require.NoError(t, err)
	assert.Empty(t, view.Hotels)
	assert.Equal(t, int64(3_500_000), view.Total)

	_, err = f.svc.UpdateDraft(ctx, "draft-1", models.DraftUpdate{Pax: intPtr(3)})
	require.NoError(t, err)
}

func TestBookingService_UnknownDurationRejected(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()
	in := baseDraftInput()
	in.DurationID = 999

	_, err := f.svc.Quote(ctx, in)
	assert.True(t, domain.IsValidation(err))
	_, err = f.svc.CreateDraft(ctx, in)
	assert.True(t, domain.IsValidation(err))
	_, err = f.drafts.Get(ctx, "draft-1")
	assert.True(t, domain.IsNotFound(err))

	in.DurationID = 0
	view, err := f.svc.CreateDraft(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, int64(100), view.Draft.DurationID)
}

func TestBookingService_DroppedDurationBlocksSubmit(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()
	_, err := f.svc.CreateDraft(ctx, baseDraftInput())
	require.NoError(t, err)

	_, err = f.drafts.Update(ctx, "draft-1", func(d *models.BookingDraft) error {
		d.DurationID = 999
		return nil
	})
	require.NoError(t, err)

	view, err := f.svc.GetDraft(ctx, "draft-1")
	require.NoError(t, err)
	assert.Nil(t, view.Duration)

	_, err = f.svc.Submit(ctx, "draft-1")
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, 0, f.creator.calls)
}

func TestBookingService_RefusedSubmitInvalidatesCatalog(t *testing.T) {
	f := newServiceFixture()
	buildFullDraft(t, f)
	cat := &flakyCatalog{Catalog: fixtureCatalog()}
	f.svc.Catalog = cat
	f.creator.err = domain.UpstreamError{Op: "create booking", StatusCode: 422}

	_, err := f.svc.Submit(context.Background(), "draft-1")
	assert.True(t, domain.IsUpstream(err))
	assert.Equal(t, []int64{7}, cat.invalidated)
}
