package models

import (
	"strings"
	"time"

	"github.com/asaskevich/govalidator"

	dErrors "campusconnect/pkg/domain-errors"
)

// Role distinguishes the three account kinds in the directory.
type Role string

const (
	RoleStudent Role = "student"
	RoleClub    Role = "club"
	RoleCollege Role = "college"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleClub, RoleCollege:
		return true
	}
	return false
}

// User is the public identity record. The credential secret never appears
// here; anything serialized to clients or the session store goes through
// this struct.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Avatar     string `json:"avatar,omitempty"`
	Role       Role   `json:"role"`
	College    string `json:"college,omitempty"`
	Department string `json:"department,omitempty"`
	Year       int    `json:"year,omitempty"`
}

// Credential pairs a user with its bcrypt secret hash.
//
// Invariants:
//   - exists 1:1 with a User record, keyed by unique email
//   - SecretHash never leaves the auth packages (never serialized)
type Credential struct {
	User       User
	SecretHash string `json:"-"`
}

// Session holds the authenticated user snapshot. The persisted copy in the
// session store must deep-equal User after every login or registration.
type Session struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	User              User      `json:"user"`
	DeviceDisplayName string    `json:"device_display_name,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       Role   `json:"role"`
	College    string `json:"college,omitempty"`
	Department string `json:"department,omitempty"`
	Year       int    `json:"year,omitempty"`
}

func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.College = strings.TrimSpace(r.College)
	r.Department = strings.TrimSpace(r.Department)
}

func (r *RegisterRequest) Validate() error {
	if r.Name == "" || r.Email == "" || r.Role == "" {
		return dErrors.New(dErrors.CodeBadRequest, "missing required fields")
	}
	if !govalidator.IsEmail(r.Email) {
		return dErrors.New(dErrors.CodeBadRequest, "invalid email")
	}
	if !r.Role.IsValid() {
		return dErrors.New(dErrors.CodeBadRequest, "invalid role")
	}
	if len(r.Password) < 6 {
		return dErrors.New(dErrors.CodeBadRequest, "password too short")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return dErrors.New(dErrors.CodeBadRequest, "email and password are required")
	}
	return nil
}

// UpdateProfileRequest carries the mutable display fields. Email and role are
// immutable after registration.
type UpdateProfileRequest struct {
	Name       string `json:"name"`
	Avatar     string `json:"avatar,omitempty"`
	College    string `json:"college,omitempty"`
	Department string `json:"department,omitempty"`
	Year       int    `json:"year,omitempty"`
}

func (r *UpdateProfileRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.College = strings.TrimSpace(r.College)
	r.Department = strings.TrimSpace(r.Department)
}

func (r *UpdateProfileRequest) Validate() error {
	if r.Name == "" {
		return dErrors.New(dErrors.CodeBadRequest, "name is required")
	}
	if len(r.Name) > 128 {
		return dErrors.New(dErrors.CodeBadRequest, "name must be 128 characters or less")
	}
	return nil
}

// AuthResult is returned from login and registration.
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
