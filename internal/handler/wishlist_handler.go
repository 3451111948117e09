package handler

import (
	"errors"
	"net/http"

	"github.com/asapgetaway/travel-booking/internal/dto"
	"github.com/asapgetaway/travel-booking/internal/service"
	"github.com/labstack/echo/v4"
)

type WishlistHandler struct {
	svc service.WishlistService
}

func NewWishlistHandler(svc service.WishlistService) *WishlistHandler {
	return &WishlistHandler{svc: svc}
}

func (h *WishlistHandler) RegisterRoutes(e *echo.Echo) {
	wishlist := e.Group("/api/v1/wishlist")
	wishlist.GET("", h.List)
	wishlist.DELETE("", h.Clear)
	wishlist.POST("/:tripId", h.Add)
	wishlist.DELETE("/:tripId", h.Remove)
}

func (h *WishlistHandler) Add(c echo.Context) error {
	tripID, err := pathID(c, "tripId")
	if err != nil {
		return err
	}
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.svc.Add(c.Request().Context(), tripID, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrTripNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrAlreadyInWishlist):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.NoContent(http.StatusCreated)
}

func (h *WishlistHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, err := h.svc.List(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.WishlistItemResponse, len(items))
	for i, item := range items {
		resp[i] = dto.ToWishlistItemResponse(&item)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *WishlistHandler) Remove(c echo.Context) error {
	tripID, err := pathID(c, "tripId")
	if err != nil {
		return err
	}
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.svc.Remove(c.Request().Context(), tripID, userID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *WishlistHandler) Clear(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.svc.Clear(c.Request().Context(), userID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
