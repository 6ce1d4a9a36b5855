package usecases

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type ImageUsecase interface {
	UploadImage(file *multipart.FileHeader, baseURL string) (string, error)
}

type imageUsecase struct{}

func NewImageUsecase() ImageUsecase {
	return &imageUsecase{}
}

// UploadImage stages the file under assets/temp and returns its public URL.
// A later profile or room update moves it to a permanent folder.
func (u *imageUsecase) UploadImage(file *multipart.FileHeader, baseURL string) (string, error) {
	if file == nil {
		return "", &UseCaseError{Code: http.StatusBadRequest, Message: "Failed to upload image"}
	}
	contentType := file.Header.Get("Content-Type")
	if !(strings.HasPrefix(contentType, "image/jpeg") || strings.HasPrefix(contentType, "image/png")) {
		return "", &UseCaseError{Code: http.StatusBadRequest, Message: "Invalid file type"}
	}
	if file.Size > 1024*1024 {
		return "", &UseCaseError{Code: http.StatusBadRequest, Message: "File size is too large"}
	}

	src, err := file.Open()
	if err != nil {
		return "", &UseCaseError{Code: http.StatusInternalServerError, Message: "Failed to open image file"}
	}
	defer src.Close()

	os.MkdirAll("./assets/temp", os.ModePerm)
	ext := filepath.Ext(file.Filename)
	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	tempPath := filepath.Join("./assets/temp", filename)
	dst, err := os.Create(tempPath)
	if err != nil {
		return "", &UseCaseError{Code: http.StatusInternalServerError, Message: "Failed to save image"}
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", &UseCaseError{Code: http.StatusInternalServerError, Message: "Failed to save image"}
	}

	return baseURL + "/assets/temp/" + filename, nil
}
