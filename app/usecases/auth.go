package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/entities"
	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/middleware"
	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/repositories"
)

type AuthUsecase interface {
	GetGoogleLoginURL() (string, error)
	ProcessGoogleLogin(code string) (string, error)
}

type authUsecase struct {
	userRepo     repositories.UserRepository
	googleConfig *oauth2.Config
}

func NewAuthUsecase(userRepo repositories.UserRepository, cfg *oauth2.Config) AuthUsecase {
	return &authUsecase{userRepo: userRepo, googleConfig: cfg}
}

func (u *authUsecase) GetGoogleLoginURL() (string, error) {
	return u.googleConfig.AuthCodeURL("random-secret-state"), nil
}

// ProcessGoogleLogin exchanges the callback code, fetches the Google
// profile and auto-registers unknown addresses as Student accounts.
func (u *authUsecase) ProcessGoogleLogin(code string) (string, error) {
	token, err := u.googleConfig.Exchange(context.Background(), code)
	if err != nil {
		return "", NewUpstreamError("google login failed")
	}

	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken)
	if err != nil {
		return "", NewUpstreamError("google login failed")
	}
	defer resp.Body.Close()

	var googleUser entities.GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		return "", NewUpstreamError("google login failed")
	}

	user, _, err := u.userRepo.GetByEmail(googleUser.Email)
	if err != nil {
		newUser := entities.SignupRequest{
			Name:       googleUser.Name,
			Email:      googleUser.Email,
			Department: "Unassigned",
			Role:       entities.RoleStudent,
		}
		// OAuth accounts carry an unguessable placeholder hash; password
		// login stays unusable until a reset.
		placeholder := fmt.Sprintf("GOOGLE_OAUTH_%s_%d", googleUser.ID, time.Now().UnixNano())
		if _, errCreate := u.userRepo.Create(newUser, placeholder, googleUser.Picture); errCreate != nil {
			return "", NewDataStoreError("internal server error")
		}
		user, _, err = u.userRepo.GetByEmail(googleUser.Email)
		if err != nil {
			return "", NewDataStoreError("internal server error")
		}
	}

	return middleware.GenerateToken(user.ID, user.Role, 15*time.Minute)
}
