package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/entities"
	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/usecases"
)

type RoomHandler struct {
	roomUsecase         usecases.RoomUsecase
	availabilityUsecase usecases.AvailabilityUsecase
}

func NewRoomHandler(roomUsecase usecases.RoomUsecase, availabilityUsecase usecases.AvailabilityUsecase) *RoomHandler {
	return &RoomHandler{roomUsecase: roomUsecase, availabilityUsecase: availabilityUsecase}
}

// CreateRoom godoc
// @Summary Create a room
// @Tags Room
// @Accept json
// @Produce json
// @Param request body entities.RoomRequest true "Room data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req entities.RoomRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "room_number, capacity and room_type are required"})
	}

	if err := h.roomUsecase.Create(req); err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "room created successfully"})
}

// GetRooms godoc
// @Summary List all rooms
// @Tags Room
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /rooms [get]
func (h *RoomHandler) GetRooms(c echo.Context) error {
	rooms, err := h.roomUsecase.GetAll()
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success", "data": rooms})
}

// GetRoomByNumber godoc
// @Summary Get a single room
// @Tags Room
// @Produce json
// @Param room_number path string true "Room number"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /rooms/{room_number} [get]
func (h *RoomHandler) GetRoomByNumber(c echo.Context) error {
	room, err := h.roomUsecase.GetByNumber(c.Param("room_number"))
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success", "data": room})
}

// UpdateRoom godoc
// @Summary Update a room, keyed by its current number
// @Tags Room
// @Accept json
// @Produce json
// @Param room_number path string true "Current room number"
// @Param request body entities.RoomRequest true "New room data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /rooms/{room_number} [patch]
func (h *RoomHandler) UpdateRoom(c echo.Context) error {
	roomNumber := c.Param("room_number")
	var req entities.RoomRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "room_number, capacity and room_type are required"})
	}

	if err := h.roomUsecase.Update(roomNumber, req); err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "room updated successfully"})
}

// DeleteRoom godoc
// @Summary Delete a room and its schedules/reservations
// @Tags Room
// @Produce json
// @Param room_number path string true "Room number"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /rooms/{room_number} [delete]
func (h *RoomHandler) DeleteRoom(c echo.Context) error {
	if err := h.roomUsecase.Delete(c.Param("room_number")); err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "room deleted successfully"})
}

// GetAvailableRooms godoc
// @Summary Compute free slots per room for a date
// @Description Subtracts applicable schedules from the 07:00-21:00 operating day; windows shorter than 30 minutes are discarded
// @Tags Room
// @Accept json
// @Produce json
// @Param request body entities.AvailabilityRequest true "Target date"
// @Success 200 {object} entities.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /rooms/available [post]
func (h *RoomHandler) GetAvailableRooms(c echo.Context) error {
	var req entities.AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "date is required, use YYYY-MM-DD"})
	}

	availability, err := h.availabilityUsecase.GetAvailableRooms(req.Date)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, entities.AvailabilityResponse{
		Message: "success",
		Date:    req.Date,
		Data:    availability,
	})
}
