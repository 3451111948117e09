package handler

import (
	"errors"
	"net/http"

	"github.com/asapgetaway/travel-booking/internal/dto"
	"github.com/asapgetaway/travel-booking/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	trips := e.Group("/api/v1/trips")
	trips.GET("/:id/availability", h.GetAvailability)
	trips.POST("/:id/bookings", h.CreateBooking)

	bookings := e.Group("/api/v1/bookings")
	bookings.GET("", h.ListBookings)
	bookings.POST("/:id/payment", h.ConfirmPayment)
	bookings.DELETE("/:id", h.CancelBooking)
}

func (h *BookingHandler) GetAvailability(c echo.Context) error {
	tripID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	seats, err := h.svc.AvailableSeats(c.Request().Context(), tripID)
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.AvailabilityResponse{
		TripID:         tripID,
		AvailableSeats: seats,
		Full:           seats <= 0,
	})
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	tripID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), tripID, userID, req.NumberOfPeople)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTripNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidPartySize),
			errors.Is(err, service.ErrBookingPeriodEnded):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUserLimitExceeded),
			errors.Is(err, service.ErrTripFull),
			errors.Is(err, service.ErrAlreadyWaiting):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ConfirmPayment(c echo.Context) error {
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	card := service.CardDetails{
		Number: req.CardNumber,
		Expiry: req.Expiry,
		CVV:    req.CVV,
		Holder: req.CardHolder,
	}

	booking, err := h.svc.ConfirmPayment(c.Request().Context(), bookingID, userID, card)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrPaymentDetails):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrAlreadyCancelled):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) CancelBooking(c echo.Context) error {
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	booking, err := h.svc.Cancel(c.Request().Context(), bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrAlreadyCancelled):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrCancellationWindowClosed):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	bookings, err := h.svc.ListBookings(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(&b)
	}

	return c.JSON(http.StatusOK, resp)
}
