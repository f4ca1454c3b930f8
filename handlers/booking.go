package handlers

import (
	"net/http"
	"strconv"

	"nepwork/middleware"
	"nepwork/models"
	"nepwork/services/booking"
	"nepwork/services/session"
	"nepwork/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BoardResponse is the booking board as rendered for one role.
type BoardResponse struct {
	Role    models.Role           `json:"role"`
	Buckets models.BookingBuckets `json:"buckets"`
	Error   string                `json:"error,omitempty"`
	Success string                `json:"success,omitempty"`
}

// BookingHandler exposes the booking board and its actions.
type BookingHandler struct {
	API      booking.BookingAPI
	Resolver *session.Resolver
	Activity booking.ActivityRecorder
}

// NewBookingHandler creates a new BookingHandler. activity may be nil.
func NewBookingHandler(api booking.BookingAPI, resolver *session.Resolver, activity booking.ActivityRecorder) *BookingHandler {
	return &BookingHandler{API: api, Resolver: resolver, Activity: activity}
}

func (h *BookingHandler) newBoard(c *gin.Context) *booking.Board {
	sess := middleware.SessionFrom(c)
	role := h.Resolver.Resolve(c.Request.Context(), sess, c.Query("role"))
	opts := []booking.BoardOption{booking.WithLogger(getLogger(c))}
	if h.Activity != nil {
		opts = append(opts, booking.WithActivity(h.Activity))
	}
	return booking.NewBoard(h.API, sess, role, opts...)
}

// ListBookingsHandler returns the caller's bookings split into buckets.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	board := h.newBoard(c)
	if err := board.Load(c.Request.Context()); err != nil {
		utils.JSONError(c, statusFor(err), board.Error(), err.Error())
		return
	}
	c.JSON(http.StatusOK, renderBoard(board))
}

// RequestBookingHandler creates a pending booking for a service.
func (h *BookingHandler) RequestBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	var input models.BookingRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid booking request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	board := h.newBoard(c)
	if err := board.Request(c.Request.Context(), input); err != nil {
		utils.JSONError(c, statusFor(err), board.Error(), err.Error())
		return
	}
	c.JSON(http.StatusCreated, renderBoard(board))
}

// ActionHandler returns the handler for one status transition on /:id.
func (h *BookingHandler) ActionHandler(action booking.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bookingID(c)
		if !ok {
			return
		}
		board := h.newBoard(c)
		ctx := c.Request.Context()
		if err := board.Load(ctx); err != nil {
			utils.JSONError(c, statusFor(err), board.Error(), err.Error())
			return
		}
		if err := board.Do(ctx, action, id); err != nil {
			utils.JSONError(c, statusFor(err), board.Error(), err.Error())
			return
		}
		c.JSON(http.StatusOK, renderBoard(board))
	}
}

// RateBookingHandler attaches the customer's rating to a completed booking.
func (h *BookingHandler) RateBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var input models.RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid rating payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	board := h.newBoard(c)
	ctx := c.Request.Context()
	if err := board.Load(ctx); err != nil {
		utils.JSONError(c, statusFor(err), board.Error(), err.Error())
		return
	}
	if err := board.Rate(ctx, id, input.Rating, input.Review); err != nil {
		utils.JSONError(c, statusFor(err), board.Error(), err.Error())
		return
	}
	c.JSON(http.StatusOK, renderBoard(board))
}

func renderBoard(board *booking.Board) BoardResponse {
	return BoardResponse{
		Role:    board.Role(),
		Buckets: board.Buckets(),
		Error:   board.Error(),
		Success: board.Success(),
	}
}

func bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id", c.Param("id"))
		return 0, false
	}
	return id, true
}
