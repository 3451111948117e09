package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/asapgetaway/travel-booking/internal/dto"
	"github.com/asapgetaway/travel-booking/internal/models"
	"github.com/asapgetaway/travel-booking/internal/repository"
	"github.com/asapgetaway/travel-booking/internal/service"
	"github.com/labstack/echo/v4"
)

type TripHandler struct {
	svc service.TripService
}

func NewTripHandler(svc service.TripService) *TripHandler {
	return &TripHandler{svc: svc}
}

func (h *TripHandler) RegisterRoutes(e *echo.Echo) {
	trips := e.Group("/api/v1/trips")
	trips.GET("", h.ListTrips)
	trips.GET("/search", h.SearchTrips)
	trips.GET("/:id", h.GetTrip)

	admin := e.Group("/api/v1/admin/trips")
	admin.GET("", h.ListAllTrips)
	admin.POST("", h.CreateTrip)
	admin.PUT("/:id", h.UpdateTrip)
	admin.POST("/:id/activate", h.ActivateTrip)
	admin.POST("/:id/deactivate", h.DeactivateTrip)
	admin.DELETE("/:id", h.DeleteTrip)
}

func (h *TripHandler) ListTrips(c echo.Context) error {
	filter := repository.TripFilter{
		Country:     c.QueryParam("country"),
		PackageType: c.QueryParam("package_type"),
		OnSaleOnly:  c.QueryParam("on_sale") == "true",
		Sort:        c.QueryParam("sort"),
	}
	if v := c.QueryParam("min_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &p
		}
	}
	if v := c.QueryParam("max_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &p
		}
	}
	if v := c.QueryParam("travel_from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.TravelFrom = &t
		}
	}
	if v := c.QueryParam("travel_to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.TravelTo = &t
		}
	}

	trips, err := h.svc.ListTrips(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, toTripResponses(trips))
}

func (h *TripHandler) SearchTrips(c echo.Context) error {
	term := c.QueryParam("q")
	if term == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "search term is required")
	}

	trips, err := h.svc.SearchTrips(c.Request().Context(), term)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, toTripResponses(trips))
}

func (h *TripHandler) GetTrip(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	trip, err := h.svc.GetTrip(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "trip not found")
	}

	return c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

func (h *TripHandler) ListAllTrips(c echo.Context) error {
	trips, err := h.svc.ListAllTrips(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, toTripResponses(trips))
}

func (h *TripHandler) CreateTrip(c echo.Context) error {
	var req dto.TripRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	trip := tripFromRequest(&req)
	if err := h.svc.CreateTrip(c.Request().Context(), trip); err != nil {
		if errors.Is(err, service.ErrInvalidTrip) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.ToTripResponse(trip))
}

func (h *TripHandler) UpdateTrip(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.TripRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	trip := tripFromRequest(&req)
	trip.ID = id
	if err := h.svc.UpdateTrip(c.Request().Context(), trip); err != nil {
		switch {
		case errors.Is(err, service.ErrTripNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidTrip):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

func (h *TripHandler) ActivateTrip(c echo.Context) error {
	return h.setActive(c, true)
}

func (h *TripHandler) DeactivateTrip(c echo.Context) error {
	return h.setActive(c, false)
}

func (h *TripHandler) setActive(c echo.Context, active bool) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.svc.SetTripActive(c.Request().Context(), id, active); err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *TripHandler) DeleteTrip(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.svc.DeleteTrip(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrTripNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrTripHasBookings):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.NoContent(http.StatusNoContent)
}

func tripFromRequest(req *dto.TripRequest) *models.Trip {
	trip := &models.Trip{
		PackageName:                     req.PackageName,
		Destination:                     req.Destination,
		Country:                         req.Country,
		StartDate:                       req.StartDate,
		EndDate:                         req.EndDate,
		BasePrice:                       req.BasePrice,
		DiscountPrice:                   req.DiscountPrice,
		DiscountStartDate:               req.DiscountStartDate,
		DiscountEndDate:                 req.DiscountEndDate,
		LastBookingDate:                 req.LastBookingDate,
		CancellationDaysBeforeDeparture: req.CancellationDaysBeforeDeparture,
		EnableReminders:                 true,
		ReminderDaysBeforeDeparture:     req.ReminderDaysBeforeDeparture,
		TotalRooms:                      req.TotalRooms,
		MinAge:                          req.MinAge,
		PackageType:                     req.PackageType,
		Description:                     req.Description,
	}
	if req.EnableReminders != nil {
		trip.EnableReminders = *req.EnableReminders
	}
	return trip
}

func toTripResponses(trips []models.Trip) []dto.TripResponse {
	resp := make([]dto.TripResponse, len(trips))
	for i, t := range trips {
		resp[i] = dto.ToTripResponse(&t)
	}
	return resp
}
