package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/techentia-work/vtcc-australia/models"
	"github.com/techentia-work/vtcc-australia/services/booking"
	"github.com/techentia-work/vtcc-australia/utils"
)

// VerifyPayment handles the signed checkout callback. On a valid signature the
// booking moves to advance_paid and confirmation emails are dispatched
// best-effort; on a mismatch the booking is untouched and the client may retry.
func (h *BookingHandler) VerifyPayment(c *gin.Context) {
	var v models.PaymentVerification
	if err := c.ShouldBindJSON(&v); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if v.OrderID == "" || v.PaymentID == "" || v.Signature == "" || v.BookingID == "" {
		utils.JSONError(c, http.StatusBadRequest, "order id, payment id, signature and booking id are all required", "")
		return
	}

	confirmed, emails, err := h.Service.ConfirmPayment(c.Request.Context(), v)
	if err != nil {
		var mismatch *booking.SignatureMismatchError
		if errors.As(err, &mismatch) {
			h.Logger.Warn("payment verification rejected", zap.String("orderID", v.OrderID))
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Payment verification failed - Invalid signature",
			})
			return
		}
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment verified and booking confirmed!",
		"booking": gin.H{
			"id":        confirmed.ID,
			"paymentId": confirmed.Payment.PaymentID,
		},
		"emailStatus": emails,
	})
}
