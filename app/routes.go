package app

import (
	"github.com/labstack/echo/v4"

	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/entities"
	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/handlers"
	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/middleware"
)

func RegisterRoutes(
	e *echo.Echo,
	userHandler *handlers.UserHandler,
	authHandler *handlers.AuthHandler,
	roomHandler *handlers.RoomHandler,
	scheduleHandler *handlers.ScheduleHandler,
	reservationHandler *handlers.ReservationHandler,
	dashboardHandler *handlers.DashboardHandler,
	imageHandler *handlers.ImageHandler,
) {
	// Public routes
	e.POST("/login", userHandler.Login)
	e.POST("/user/signup", userHandler.Signup)
	e.POST("/password/reset_request", userHandler.PasswordReset)
	e.PUT("/password/reset/:id", userHandler.PasswordResetConfirm)
	e.GET("/auth/google", authHandler.GoogleLogin)
	e.GET("/auth/google/callback", authHandler.GoogleCallback)

	// Any signed-in user
	authGroup := e.Group("", middleware.RoleAuthMiddleware(entities.RoleStudent, entities.RoleInstructor, entities.RoleAdmin))
	authGroup.POST("/reservations", reservationHandler.CreateReservation)
	authGroup.GET("/reservations/:user_id", reservationHandler.GetUserReservations)
	authGroup.DELETE("/reservations/remove", reservationHandler.RemoveReservation)
	authGroup.POST("/rooms/available", roomHandler.GetAvailableRooms)
	authGroup.GET("/rooms", roomHandler.GetRooms)
	authGroup.GET("/rooms/:room_number", roomHandler.GetRoomByNumber)
	authGroup.GET("/schedule/rooms", scheduleHandler.GetRoomSchedules)
	authGroup.GET("/user/:id", userHandler.GetUserByID)
	authGroup.PATCH("/user/update", userHandler.UpdateUser)
	authGroup.PATCH("/user/password", userHandler.ChangePassword)
	authGroup.POST("/uploads", imageHandler.UploadImage)

	// Admin only
	adminGroup := e.Group("", middleware.RoleAuthMiddleware(entities.RoleAdmin))
	adminGroup.PATCH("/reservations/accept", reservationHandler.AcceptReservation)
	adminGroup.PATCH("/reservations/reject", reservationHandler.RejectReservation)
	adminGroup.GET("/reservations/pending/queue", reservationHandler.GetPendingReservations)
	adminGroup.POST("/rooms", roomHandler.CreateRoom)
	adminGroup.PATCH("/rooms/:room_number", roomHandler.UpdateRoom)
	adminGroup.DELETE("/rooms/:room_number", roomHandler.DeleteRoom)
	adminGroup.POST("/schedule/add", scheduleHandler.AddSchedule)
	adminGroup.PATCH("/schedule/remove", scheduleHandler.RemoveSchedule)
	adminGroup.DELETE("/user/remove/:id", userHandler.AdminDeleteUser)
	adminGroup.PATCH("/user/reset/:id", userHandler.AdminResetPassword)
	adminGroup.GET("/dashboard", dashboardHandler.GetDashboard)
}
