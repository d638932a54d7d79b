package dto

import (
	"travelease/infras/jwt"
	"travelease/internal/domains/user/model"
	"travelease/shared/constant"
)

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Phone    string `json:"phone"    validate:"omitempty,max=20"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UpdateProfileRequest is a shallow merge: only non-nil fields replace
// the stored values.
type UpdateProfileRequest struct {
	Name        *string             `json:"name"        validate:"omitempty,max=100"`
	Phone       *string             `json:"phone"       validate:"omitempty,max=20"`
	Address     *string             `json:"address"     validate:"omitempty,max=200"`
	Preferences *PreferencesPayload `json:"preferences" validate:"omitempty"`
}

type PreferencesPayload struct {
	Newsletter       *bool   `json:"newsletter"`
	SMSNotifications *bool   `json:"sms_notifications"`
	Language         *string `json:"language"    validate:"omitempty,max=50"`
	Currency         *string `json:"currency"    validate:"omitempty,max=10"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Address     string            `json:"address"`
	Preferences model.Preferences `json:"preferences"`
	CreatedAt   string            `json:"created_at"`
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.Name = user.Name
	r.Email = user.Email
	r.Phone = user.Phone
	r.Address = user.Address
	r.Preferences = user.Preferences
	r.CreatedAt = user.CreatedAt.Format(constant.DateFormat)
}

func (r *UserResponse) FromSession(session model.Session) {
	r.ID = session.UserID
	r.Name = session.Name
	r.Email = session.Email
	r.Phone = session.Phone
	r.Address = session.Address
	r.Preferences = session.Preferences
	r.CreatedAt = session.CreatedAt.Format(constant.DateFormat)
}

type AuthResponse struct {
	User  UserResponse   `json:"user"`
	Token *jwt.TokenPair `json:"token"`
}
