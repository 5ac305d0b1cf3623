package response

import (
	"dartshop/internal/usecase/commands"
)

type AdminLoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

func FromAdminSession(s *commands.AdminSession) *AdminLoginResponse {
	return &AdminLoginResponse{
		Token:     s.Token,
		ExpiresIn: int64(s.ExpiresIn.Seconds()),
	}
}
