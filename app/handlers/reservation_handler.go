package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/entities"
	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/middleware"
	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/usecases"
)

type ReservationHandler struct {
	reservationUsecase usecases.ReservationUsecase
}

func NewReservationHandler(reservationUsecase usecases.ReservationUsecase) *ReservationHandler {
	return &ReservationHandler{reservationUsecase: reservationUsecase}
}

// CreateReservation godoc
// @Summary Create a new reservation
// @Description Create a new reservation; every reservation starts Pending
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body entities.ReservationRequest true "Reservation request body"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req entities.ReservationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing or invalid fields"})
	}

	userID := middleware.ExtractTokenUserID(c)
	reservation, err := h.reservationUsecase.Create(userID, req)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "reservation created successfully",
		"data":    reservation,
	})
}

// AcceptReservation godoc
// @Summary Confirm a pending reservation
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body entities.UpdateReservationRequest true "Reservation id plus optional admin notes"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /reservations/accept [patch]
func (h *ReservationHandler) AcceptReservation(c echo.Context) error {
	return h.updateStatus(c, entities.StatusConfirmed)
}

// RejectReservation godoc
// @Summary Reject a pending reservation
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body entities.UpdateReservationRequest true "Reservation id plus optional admin notes"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /reservations/reject [patch]
func (h *ReservationHandler) RejectReservation(c echo.Context) error {
	return h.updateStatus(c, entities.StatusRejected)
}

func (h *ReservationHandler) updateStatus(c echo.Context, targetStatus string) error {
	var req entities.UpdateReservationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "reservation_id is required"})
	}

	role := middleware.ExtractTokenRole(c)
	err := h.reservationUsecase.UpdateStatus(req.ReservationID, targetStatus, req.AdminNotes, role)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "update status success"})
}

// RemoveReservation godoc
// @Summary Delete a reservation
// @Description Hard delete, allowed for the owner or an admin
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body entities.RemoveReservationRequest true "Reservation id"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /reservations/remove [delete]
func (h *ReservationHandler) RemoveReservation(c echo.Context) error {
	var req entities.RemoveReservationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "reservation_id is required"})
	}

	userID := middleware.ExtractTokenUserID(c)
	role := middleware.ExtractTokenRole(c)
	if err := h.reservationUsecase.Remove(req.ReservationID, userID, role); err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "reservation deleted"})
}

// GetUserReservations godoc
// @Summary List a user's reservations
// @Tags Reservation
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} entities.ReservationListResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /reservations/{user_id} [get]
func (h *ReservationHandler) GetUserReservations(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid user id"})
	}

	reservations, err := h.reservationUsecase.ListByUser(userID)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, entities.ReservationListResponse{Message: "success", Data: reservations})
}

// GetPendingReservations godoc
// @Summary List pending reservations for the admin review queue
// @Tags Reservation
// @Produce json
// @Success 200 {object} entities.ReservationListResponse
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /reservations/pending/queue [get]
func (h *ReservationHandler) GetPendingReservations(c echo.Context) error {
	reservations, err := h.reservationUsecase.ListPending()
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, entities.ReservationListResponse{Message: "success", Data: reservations})
}
