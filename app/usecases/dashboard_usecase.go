package usecases

import (
	"log"
	"net/http"
	"time"

	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/entities"
	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/repositories"
)

type DashboardUsecase interface {
	GetDashboard(startDate, endDate string) (entities.DashboardResponse, error)
}

type dashboardUsecase struct {
	dashboardRepo repositories.DashboardRepository
}

func NewDashboardUsecase(dashboardRepo repositories.DashboardRepository) DashboardUsecase {
	return &dashboardUsecase{dashboardRepo: dashboardRepo}
}

func (u *dashboardUsecase) GetDashboard(startDate, endDate string) (entities.DashboardResponse, error) {
	if startDate == "" || endDate == "" {
		return entities.DashboardResponse{}, &UseCaseError{Code: http.StatusBadRequest, Message: "start date and end date are required"}
	}
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return entities.DashboardResponse{}, &UseCaseError{Code: http.StatusBadRequest, Message: "invalid start date format, use YYYY-MM-DD"}
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return entities.DashboardResponse{}, &UseCaseError{Code: http.StatusBadRequest, Message: "invalid end date format, use YYYY-MM-DD"}
	}
	if start.After(end) {
		return entities.DashboardResponse{}, &UseCaseError{Code: http.StatusBadRequest, Message: "start date must be smaller than end date"}
	}

	totalRoom, totalUser, err := u.dashboardRepo.GetTotals()
	if err != nil {
		log.Printf("dashboard: totals query failed: %v", err)
		return entities.DashboardResponse{}, NewDataStoreError("internal server error")
	}
	totalReservation, pending, err := u.dashboardRepo.GetReservationCounts(start, end)
	if err != nil {
		log.Printf("dashboard: reservation counts failed: %v", err)
		return entities.DashboardResponse{}, NewDataStoreError("internal server error")
	}
	rooms, err := u.dashboardRepo.GetRoomStats(start, end, totalReservation)
	if err != nil {
		log.Printf("dashboard: room stats failed: %v", err)
		return entities.DashboardResponse{}, NewDataStoreError("internal server error")
	}

	response := entities.DashboardResponse{Message: "get dashboard data success"}
	response.Data.TotalRoom = totalRoom
	response.Data.TotalUser = totalUser
	response.Data.TotalReservation = totalReservation
	response.Data.PendingReservation = pending
	response.Data.Rooms = rooms
	return response, nil
}
