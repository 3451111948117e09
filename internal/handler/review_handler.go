package handler

import (
	"errors"
	"net/http"

	"github.com/asapgetaway/travel-booking/internal/dto"
	"github.com/asapgetaway/travel-booking/internal/service"
	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	svc service.ReviewService
}

func NewReviewHandler(svc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

func (h *ReviewHandler) RegisterRoutes(e *echo.Echo) {
	trips := e.Group("/api/v1/trips")
	trips.POST("/:id/reviews", h.AddReview)
	trips.GET("/:id/reviews", h.ListReviews)
}

func (h *ReviewHandler) AddReview(c echo.Context) error {
	tripID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	review, err := h.svc.AddReview(c.Request().Context(), tripID, userID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTripNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidReview):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	tripID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	reviews, err := h.svc.ListForTrip(c.Request().Context(), tripID)
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.ReviewResponse, len(reviews))
	for i, r := range reviews {
		resp[i] = dto.ToReviewResponse(&r)
	}

	return c.JSON(http.StatusOK, resp)
}
