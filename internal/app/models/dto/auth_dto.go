package dto

import "github.com/yigit/mentorbridge/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ada@mentorbridge.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// RegisterRequest represents a student or mentor registration
type RegisterRequest struct {
	Email    string          `json:"email" binding:"required,email,max=254" example:"ada@mentorbridge.com"`
	Name     string          `json:"name" binding:"required,min=2,max=100" example:"Ada Lovelace"`
	Password string          `json:"password" binding:"required,min=6,max=72" example:"secret123"`
	RoleType models.RoleType `json:"roleType" binding:"required,oneof=Student Mentor" example:"Student" enums:"Student,Mentor"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn" example:"86400"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}
