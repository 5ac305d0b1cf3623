package commands

import (
	"context"
	"time"

	reqdto "dartshop/internal/handler/dto/request"
	"dartshop/internal/pkg/errs"
	"dartshop/internal/pkg/jwt"
	"dartshop/internal/pkg/pincode"
)

type AdminSession struct {
	Token     string
	ExpiresIn time.Duration
}

type AdminCommands interface {
	Login(ctx context.Context, req reqdto.AdminLoginRequest) (*AdminSession, error)
}

type adminUseCaseImpl struct {
	pincodeHash   string
	jwtService    *jwt.Service
	tokenDuration time.Duration
}

func NewAdminUseCase(pincodeHash string, jwtService *jwt.Service, tokenDuration time.Duration) AdminCommands {
	return &adminUseCaseImpl{
		pincodeHash:   pincodeHash,
		jwtService:    jwtService,
		tokenDuration: tokenDuration,
	}
}

func (u *adminUseCaseImpl) Login(_ context.Context, req reqdto.AdminLoginRequest) (*AdminSession, error) {
	if err := pincode.Compare(u.pincodeHash, req.Pincode); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPincode)
	}

	token, err := u.jwtService.GenerateAdminToken()
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate admin token")
	}

	return &AdminSession{
		Token:     token,
		ExpiresIn: u.tokenDuration,
	}, nil
}
