package handler

import (
	"errors"
	"net/http"

	"github.com/asapgetaway/travel-booking/internal/dto"
	"github.com/asapgetaway/travel-booking/internal/service"
	"github.com/labstack/echo/v4"
)

type WaitingListHandler struct {
	svc service.WaitingListService
}

func NewWaitingListHandler(svc service.WaitingListService) *WaitingListHandler {
	return &WaitingListHandler{svc: svc}
}

func (h *WaitingListHandler) RegisterRoutes(e *echo.Echo) {
	trips := e.Group("/api/v1/trips")
	trips.POST("/:id/waitinglist", h.Join)
	trips.DELETE("/:id/waitinglist", h.Leave)
	trips.GET("/:id/waitinglist/position", h.Position)

	e.GET("/api/v1/waitinglist", h.ListMine)

	admin := e.Group("/api/v1/admin")
	admin.GET("/waitinglist", h.Overview)
	admin.GET("/trips/:id/waitinglist", h.ListForTrip)
	admin.DELETE("/trips/:id/waitinglist", h.Clear)
	admin.DELETE("/trips/:id/waitinglist/:userId", h.Remove)
}

func (h *WaitingListHandler) Join(c echo.Context) error {
	tripID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	position, err := h.svc.Join(c.Request().Context(), tripID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTripNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrAlreadyWaiting):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.WaitingListJoinResponse{TripID: tripID, Position: position})
}

func (h *WaitingListHandler) Leave(c echo.Context) error {
	tripID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.svc.Leave(c.Request().Context(), tripID, userID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *WaitingListHandler) Position(c echo.Context) error {
	tripID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	position, err := h.svc.Position(c.Request().Context(), tripID, userID)
	if err != nil {
		if errors.Is(err, service.ErrNotWaiting) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.WaitingListJoinResponse{TripID: tripID, Position: position})
}

func (h *WaitingListHandler) ListMine(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	entries, err := h.svc.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.WaitingEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = dto.ToWaitingEntryResponse(e)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *WaitingListHandler) Overview(c echo.Context) error {
	queues, err := h.svc.Overview(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.TripQueueResponse, len(queues))
	for i, q := range queues {
		resp[i] = dto.TripQueueResponse{
			Trip:         dto.ToTripResponse(&q.Trip),
			WaitingCount: q.Count,
		}
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *WaitingListHandler) ListForTrip(c echo.Context) error {
	tripID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	items, err := h.svc.ListForTrip(c.Request().Context(), tripID)
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.WaitingListItemResponse, len(items))
	for i, item := range items {
		resp[i] = dto.WaitingListItemResponse{
			TripID:   item.TripID,
			UserID:   item.UserID,
			JoinDate: item.JoinDate,
		}
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *WaitingListHandler) Clear(c echo.Context) error {
	tripID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.svc.Clear(c.Request().Context(), tripID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *WaitingListHandler) Remove(c echo.Context) error {
	tripID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.svc.Leave(c.Request().Context(), tripID, c.Param("userId")); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
