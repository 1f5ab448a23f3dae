package user

import "time"

type Profile struct {
	ID           int       `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Phone        string    `db:"phone" json:"phone"`
	Role         string    `db:"role" json:"role"`
	AvatarURL    *string   `db:"avatar_url" json:"avatar_url,omitempty"`
	ReferralCode string    `db:"referral_code" json:"referral_code"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type ClientProfile struct {
	UserID           int        `db:"user_id" json:"user_id"`
	DateOfBirth      *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Goals            string     `db:"goals" json:"goals"`
	Injuries         string     `db:"injuries" json:"injuries"`
	EmergencyContact string     `db:"emergency_contact" json:"emergency_contact"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

// ClientSummary is a row of the admin client list.
type ClientSummary struct {
	ID        int       `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	FullName  string    `db:"full_name" json:"full_name"`
	Phone     string    `db:"phone" json:"phone"`
	Balance   int       `db:"balance" json:"balance"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type ClientDetail struct {
	Profile       Profile       `json:"profile"`
	ClientProfile ClientProfile `json:"client_profile"`
	Balance       int           `json:"balance"`
}

type RegisterRequest struct {
	Email        string `json:"email" binding:"required,email" example:"client@example.com"`
	Password     string `json:"password" binding:"required,min=8"`
	FullName     string `json:"full_name" binding:"required,max=120" example:"Sam Client"`
	Phone        string `json:"phone" binding:"omitempty,max=32"`
	ReferralCode string `json:"referral_code" binding:"omitempty,max=16"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type SignOutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type AuthResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	User         Profile `json:"user"`
}

type RefreshResponse struct {
	AccessToken string  `json:"access_token"`
	User        Profile `json:"user"`
}

type UpdateProfileRequest struct {
	FullName *string `json:"full_name" binding:"omitempty,min=1,max=120"`
	Phone    *string `json:"phone" binding:"omitempty,max=32"`
}

type UpdateClientProfileRequest struct {
	DateOfBirth      *string `json:"date_of_birth" example:"1990-05-17"`
	Goals            *string `json:"goals"`
	Injuries         *string `json:"injuries"`
	EmergencyContact *string `json:"emergency_contact"`
}
