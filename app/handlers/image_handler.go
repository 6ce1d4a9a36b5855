package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/usecases"
)

type ImageHandler struct {
	imageUsecase usecases.ImageUsecase
}

func NewImageHandler(imageUsecase usecases.ImageUsecase) *ImageHandler {
	return &ImageHandler{imageUsecase: imageUsecase}
}

// UploadImage godoc
// @Summary Upload a profile image
// @Tags Image
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "jpeg or png, max 1MB"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /uploads [post]
func (h *ImageHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "image file is required"})
	}

	baseURL := c.Scheme() + "://" + c.Request().Host
	imageURL, err := h.imageUsecase.UploadImage(file, baseURL)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "upload success", "imageURL": imageURL})
}
