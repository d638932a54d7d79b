package model

import (
	"time"
)

const (
	EntityName        = "users"
	SessionEntityName = "session"
)

// Preferences are per-user notification and locale settings.
type Preferences struct {
	Newsletter       bool   `json:"newsletter"`
	SMSNotifications bool   `json:"sms_notifications"`
	Language         string `json:"language"`
	Currency         string `json:"currency"`
}

// DefaultPreferences are attached to every newly registered account.
func DefaultPreferences() Preferences {
	return Preferences{
		Newsletter:       true,
		SMSNotifications: false,
		Language:         "English",
		Currency:         "USD",
	}
}

// User is the stored identity record. Password holds a bcrypt hash and
// must never leave the service layer.
type User struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Password    string      `json:"password"`
	Phone       string      `json:"phone"`
	Address     string      `json:"address"`
	Preferences Preferences `json:"preferences"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Session is the denormalized, password-scrubbed copy of the active
// user. At most one exists at a time.
type Session struct {
	UserID      int         `json:"user_id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Address     string      `json:"address"`
	Preferences Preferences `json:"preferences"`
	CreatedAt   time.Time   `json:"created_at"`
	LoggedInAt  time.Time   `json:"logged_in_at"`
}

// ToSession derives the scrubbed session copy of the user.
func (u User) ToSession(loggedInAt time.Time) Session {
	return Session{
		UserID:      u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Phone:       u.Phone,
		Address:     u.Address,
		Preferences: u.Preferences,
		CreatedAt:   u.CreatedAt,
		LoggedInAt:  loggedInAt,
	}
}
