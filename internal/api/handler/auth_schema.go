package handler

import "github.com/agrilink/farm-market/internal/core/domain"

type registerRequest struct {
	Username string `json:"username"  validate:"required,min=3"`
	Password string `json:"password"  validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required,min=2"`
	Age      int    `json:"age"       validate:"required,gte=18,lte=100"`
	Region   string `json:"region"    validate:"required,min=2"`
	UserType string `json:"user_type" validate:"required,oneof=buyer seller both"`
	Avatar   string `json:"avatar"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}
