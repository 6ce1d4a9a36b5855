package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// ProcessImageMove promotes a freshly uploaded file from assets/temp to its
// permanent folder and returns the new public URL. URLs that do not point
// at the temp area pass through unchanged.
func ProcessImageMove(oldFullURL, newFullURL, baseURL, targetFolder string) (string, error) {
	if newFullURL == "" || newFullURL == oldFullURL {
		return oldFullURL, nil
	}
	if !strings.Contains(newFullURL, "assets/temp") {
		return newFullURL, nil
	}

	fileName := filepath.Base(newFullURL)
	tempPath := filepath.Join("assets", "temp", fileName)
	finalDir := filepath.Join("assets", "image", targetFolder)
	finalPath := filepath.Join(finalDir, fileName)

	if _, err := os.Stat(tempPath); err != nil {
		log.Printf("temp file missing: %s", tempPath)
		return oldFullURL, fmt.Errorf("temp file not found on server")
	}
	if err := os.MkdirAll(finalDir, os.ModePerm); err != nil {
		return oldFullURL, fmt.Errorf("failed to create directory: %v", err)
	}
	if err := os.Rename(tempPath, finalPath); err != nil {
		log.Printf("failed to move file: %v", err)
		return oldFullURL, fmt.Errorf("failed to move file")
	}

	// Drop the previous file unless it is a shared default asset.
	if oldFullURL != "" && !strings.Contains(oldFullURL, "default") {
		oldFileName := filepath.Base(oldFullURL)
		_ = os.Remove(filepath.Join(finalDir, oldFileName))
	}

	cleanBaseURL := strings.TrimRight(baseURL, "/")
	return fmt.Sprintf("%s/assets/image/%s/%s", cleanBaseURL, targetFolder, fileName), nil
}
