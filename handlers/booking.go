package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bookingRepo "github.com/techentia-work/vtcc-australia/database/repository/booking"
	"github.com/techentia-work/vtcc-australia/models"
	"github.com/techentia-work/vtcc-australia/services/booking"
	"github.com/techentia-work/vtcc-australia/utils"
)

// BookingHandler exposes the booking engine over HTTP.
type BookingHandler struct {
	Service booking.Service
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CheckAvailability reports whether an interval is free across the requested halls.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var req models.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if req.Date == "" || req.TimeFrom.IsZero() || req.TimeTo.IsZero() {
		utils.JSONError(c, http.StatusBadRequest, "date, timeFrom and timeTo are required", "")
		return
	}

	result, err := h.Service.CheckAvailability(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AvailableSlots lists the free hourly starting points for a date and hall set.
func (h *BookingHandler) AvailableSlots(c *gin.Context) {
	var req models.SlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if req.Date == "" || len(req.Halls) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "date and hallSelection are required", "")
		return
	}

	slots, err := h.Service.AvailableSlots(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// CreateWithAdvance creates a booking and opens a deposit payment order.
func (h *BookingHandler) CreateWithAdvance(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, order, err := h.Service.CreateWithAdvance(c.Request.Context(), &req)
	if err != nil {
		// The booking may have been persisted even though the payment order
		// failed; return it so the client can retry the order.
		var upstream *booking.UpstreamUnavailableError
		if created != nil && errors.As(err, &upstream) {
			c.JSON(http.StatusAccepted, gin.H{
				"booking": created,
				"message": "Booking saved but the payment order could not be created. Please retry payment.",
			})
			return
		}
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booking": created,
		"order":   order,
		"message": "Booking created successfully. Please complete advance payment to confirm.",
	})
}

// RetryOrder opens a fresh payment order for a pending booking.
func (h *BookingHandler) RetryOrder(c *gin.Context) {
	id := c.Param("id")

	updated, order, err := h.Service.RetryOrder(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": updated, "order": order})
}

// GetBooking returns one booking by id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	found, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": found})
}

// Stats summarizes the booking corpus.
func (h *BookingHandler) Stats(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// renderError maps engine errors onto HTTP responses.
func (h *BookingHandler) renderError(c *gin.Context, err error) {
	var (
		validation *booking.ValidationError
		unknownCat *booking.UnknownCategoryError
		conflict   *booking.SlotConflictError
		upstream   *booking.UpstreamUnavailableError
	)

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "errors": validation.Errors})
	case errors.As(err, &unknownCat):
		utils.JSONError(c, http.StatusBadRequest, unknownCat.Error(), "")
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":     "requested slot is no longer available",
			"conflicts": conflict.Conflicts,
		})
	case errors.Is(err, models.ErrIncompleteTime):
		utils.JSONError(c, http.StatusBadRequest, "invalid time of day", err.Error())
	case errors.Is(err, booking.ErrSlotContended):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	case errors.Is(err, bookingRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
	case errors.As(err, &upstream):
		h.Logger.Error("upstream failure", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "a backing service is unavailable, please retry", err.Error())
	default:
		h.Logger.Error("booking request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, err.Error(), "")
	}
}
