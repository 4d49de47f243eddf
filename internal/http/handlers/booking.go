package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"tripbooking/internal/calculator"
	"tripbooking/internal/domain"
	"tripbooking/internal/domain/models"
	"tripbooking/internal/http/middleware"
	"tripbooking/internal/services"
	"tripbooking/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubmissionLookup reads the submission ledger; repositories.SubmissionRepo in production.
type SubmissionLookup interface {
	Enabled() bool
	GetByBookingID(ctx context.Context, bookingID int64) (models.Submission, error)
}

// BookingHandler serves the booking page: catalog reads, draft lifecycle, quote PDF and
// the payment-step token check.
type BookingHandler struct {
	Booking     services.BookingService
	Submissions SubmissionLookup
}

func (h BookingHandler) service(c *gin.Context) services.BookingService {
	return h.Booking.WithRequestID(middleware.GetRequestID(c))
}

// GetTrip returns the normalized trip. Any failure renders the "no package selected"
// placeholder instead of an error.
func (h BookingHandler) GetTrip(c *gin.Context) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusOK, gin.H{"package": nil})
		return
	}
	trip, err := h.Booking.Catalog.GetTrip(c.Request.Context(), id)
	if err != nil {
		utils.LogError(middleware.GetRequestID(c), "catalog", "get_trip", err, zap.Int64("trip_id", id))
		c.JSON(http.StatusOK, gin.H{"package": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"package": trip})
}

// ListBoats returns active boats able to hold ?pax= (all active boats without it). A failed
// fetch answers an empty list.
func (h BookingHandler) ListBoats(c *gin.Context) {
	pax := 0
	if raw := strings.TrimSpace(c.Query("pax")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			respondError(c, http.StatusBadRequest, "invalid_pax", "pax tidak valid", nil)
			return
		}
		pax = v
	}
	boats, err := h.Booking.Catalog.ListBoats(c.Request.Context())
	if err != nil {
		utils.LogError(middleware.GetRequestID(c), "booking", "list_boats", err)
		c.JSON(http.StatusOK, gin.H{"data": []models.Boat{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": calculator.FilterBoatsByCapacity(boats, pax)})
}

// ListHotels returns active hotels; a failed fetch answers an empty list.
func (h BookingHandler) ListHotels(c *gin.Context) {
	hotels, err := h.Booking.Catalog.ListHotels(c.Request.Context())
	if err != nil {
		utils.LogError(middleware.GetRequestID(c), "booking", "list_hotels", err)
		c.JSON(http.StatusOK, gin.H{"data": []models.Hotel{}})
		return
	}
	if hotels == nil {
		hotels = []models.Hotel{}
	}
	c.JSON(http.StatusOK, gin.H{"data": hotels})
}

// Quote prices a draft body without storing it.
func (h BookingHandler) Quote(c *gin.Context) {
	var in services.DraftInput
	if !BindJSONOrError(c, &in) {
		return
	}
	view, err := h.service(c).Quote(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": view})
}

func (h BookingHandler) CreateDraft(c *gin.Context) {
	var in services.DraftInput
	if !BindJSONOrError(c, &in) {
		return
	}
	view, err := h.service(c).CreateDraft(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": view})
}

func (h BookingHandler) GetDraft(c *gin.Context) {
	view, err := h.service(c).GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": view})
}

func (h BookingHandler) UpdateDraft(c *gin.Context) {
	var upd models.DraftUpdate
	if !BindJSONOrError(c, &upd) {
		return
	}
	h.respondView(c)(h.service(c).UpdateDraft(c.Request.Context(), c.Param("id"), upd))
}

func (h BookingHandler) IncrementCabin(c *gin.Context) {
	if cabinID, ok := paramID(c, "cabinId"); ok {
		h.respondView(c)(h.service(c).IncrementCabin(c.Request.Context(), c.Param("id"), cabinID))
	}
}

func (h BookingHandler) DecrementCabin(c *gin.Context) {
	if cabinID, ok := paramID(c, "cabinId"); ok {
		h.respondView(c)(h.service(c).DecrementCabin(c.Request.Context(), c.Param("id"), cabinID))
	}
}

func (h BookingHandler) IncrementHotel(c *gin.Context) {
	if hotelID, ok := paramID(c, "hotelId"); ok {
		h.respondView(c)(h.service(c).IncrementHotel(c.Request.Context(), c.Param("id"), hotelID))
	}
}

func (h BookingHandler) DecrementHotel(c *gin.Context) {
	if hotelID, ok := paramID(c, "hotelId"); ok {
		h.respondView(c)(h.service(c).DecrementHotel(c.Request.Context(), c.Param("id"), hotelID))
	}
}

func (h BookingHandler) ToggleFee(c *gin.Context) {
	if feeID, ok := paramID(c, "feeId"); ok {
		h.respondView(c)(h.service(c).ToggleFee(c.Request.Context(), c.Param("id"), feeID))
	}
}

func (h BookingHandler) respondView(c *gin.Context) func(calculator.DerivedView, error) {
	return func(view calculator.DerivedView, err error) {
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": view})
	}
}

// SubmitDraft posts the booking once and answers with the payment-step link.
func (h BookingHandler) SubmitDraft(c *gin.Context) {
	res, err := h.service(c).Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "booking berhasil dikirim",
		"data":    res,
	})
}

// QuotePDF returns the draft price summary (inline).
func (h BookingHandler) QuotePDF(c *gin.Context) {
	svc := services.DocsService{
		Booking:   h.service(c),
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// VerifyPayment checks the token carried to the payment step.
func (h BookingHandler) VerifyPayment(c *gin.Context) {
	claims, err := h.Booking.Payments.Verify(c.Query("token"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	resp := gin.H{
		"booking_id": claims.BookingID,
		"draft_id":   claims.DraftID,
	}
	if claims.ExpiresAt != nil {
		resp["expires_at"] = claims.ExpiresAt.Time
	}
	if h.Submissions != nil && h.Submissions.Enabled() {
		sub, err := h.Submissions.GetByBookingID(c.Request.Context(), claims.BookingID)
		switch {
		case err == nil:
			resp["total_price"] = sub.TotalPrice
			resp["total_pax"] = sub.TotalPax
		case !domain.IsNotFound(err):
			utils.LogError(middleware.GetRequestID(c), "payment", "verify_lookup", err, zap.Int64("booking_id", claims.BookingID))
		}
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}
