package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Richiestixx/Foodies-app/models"
	"github.com/Richiestixx/Foodies-app/utils"
)

// AuthService owns signup, login and the password-reset flow.
type AuthService struct {
	store  *Store
	mailer *utils.Mailer
	secret []byte
}

func NewAuthService(store *Store, mailer *utils.Mailer, secret string) *AuthService {
	return &AuthService{store: store, mailer: mailer, secret: []byte(secret)}
}

type SignupInput struct {
	Name     string
	Email    string
	Age      int
	Gender   string
	Goal     string
	Password string
}

// Register creates the user and returns a session token. A taken
// email surfaces as ErrDuplicateEmail.
func (a *AuthService) Register(ctx context.Context, input SignupInput) (string, error) {
	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return "", err
	}

	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashed,
		Age:          input.Age,
		Gender:       input.Gender,
		Goal:         input.Goal,
	}
	if err := a.store.Create(ctx, &user); err != nil {
		return "", err
	}

	return utils.GenerateJWT(user.Email, a.secret)
}

// Authenticate verifies the credentials and returns a session token.
func (a *AuthService) Authenticate(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := a.store.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredential
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredential
	}

	token, err := utils.GenerateJWT(user.Email, a.secret)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ForgotPassword issues a reset code. It never reveals whether the
// email exists.
func (a *AuthService) ForgotPassword(ctx context.Context, email string) {
	user, err := a.store.FindByEmail(ctx, email)
	if err != nil {
		return
	}

	code := utils.GenerateRandomToken(6)
	user.ResetToken = code
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := a.store.Save(ctx, user); err != nil {
		log.Printf("failed to store reset token: %v", err)
		return
	}

	if a.mailer != nil {
		if err := a.mailer.SendResetEmail(ctx, user.Email, code); err != nil {
			log.Printf("failed to send reset email: %v", err)
		}
	}
}

var ErrResetTokenInvalid = errors.New("invalid or expired token")

func (a *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	var user models.User
	if err := a.store.db.WithContext(ctx).
		Where("reset_token = ? AND reset_token <> ''", token).
		First(&user).Error; err != nil {
		return ErrResetTokenInvalid
	}
	if time.Now().After(user.ResetTokenExp) {
		return ErrResetTokenInvalid
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return a.store.Save(ctx, &user)
}
