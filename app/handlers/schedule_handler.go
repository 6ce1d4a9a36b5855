package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/entities"
	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/usecases"
)

type ScheduleHandler struct {
	scheduleUsecase usecases.ScheduleUsecase
}

func NewScheduleHandler(scheduleUsecase usecases.ScheduleUsecase) *ScheduleHandler {
	return &ScheduleHandler{scheduleUsecase: scheduleUsecase}
}

// AddSchedule godoc
// @Summary Add a schedule block to a room
// @Description Recurring blocks carry a weekday set, one-off blocks a date
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body entities.ScheduleRequest true "Schedule data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /schedule/add [post]
func (h *ScheduleHandler) AddSchedule(c echo.Context) error {
	var req entities.ScheduleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing or invalid fields"})
	}

	schedule, err := h.scheduleUsecase.Add(req)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "schedule added successfully", "data": schedule})
}

// RemoveSchedule godoc
// @Summary Remove a schedule block
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body entities.RemoveScheduleRequest true "Timeslot id"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /schedule/remove [patch]
func (h *ScheduleHandler) RemoveSchedule(c echo.Context) error {
	var req entities.RemoveScheduleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "timeslot_id is required"})
	}

	if err := h.scheduleUsecase.Remove(req.TimeslotID); err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "schedule removed successfully"})
}

// GetRoomSchedules godoc
// @Summary List schedules grouped per room
// @Tags Schedule
// @Produce json
// @Param room_num query string false "Limit to one room"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /schedule/rooms [get]
func (h *ScheduleHandler) GetRoomSchedules(c echo.Context) error {
	if roomNum := c.QueryParam("room_num"); roomNum != "" {
		schedules, err := h.scheduleUsecase.ListByRoom(roomNum)
		if err != nil {
			if e, ok := err.(*usecases.UseCaseError); ok {
				return c.JSON(e.Code, echo.Map{"message": e.Message})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "success", "data": schedules})
	}

	grouped, err := h.scheduleUsecase.ListAllGroupedByRoom()
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success", "data": grouped})
}
