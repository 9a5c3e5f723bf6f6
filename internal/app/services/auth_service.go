package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/placementportal/internal/app/models"
	"github.com/yigit/placementportal/internal/app/models/dto"
	"github.com/yigit/placementportal/internal/app/repositories"
	"github.com/yigit/placementportal/internal/pkg/apperrors"
	"github.com/yigit/placementportal/internal/pkg/logger"
)

// AuthService defines the interface for login
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// credential is a row found in one of the credential tables
type credential struct {
	password       string
	registrationNo *string
}

// credentialSource looks a username up in one table. A nil credential means no match.
type credentialSource struct {
	userType models.UserType
	lookup   func(ctx context.Context, uname string) (*credential, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	sources []credentialSource
}

// NewAuthService creates an auth service that checks faculty, then student, then company logins
func NewAuthService(loginRepo *repositories.LoginRepository) AuthService {
	return &authServiceImpl{
		sources: []credentialSource{
			{
				userType: models.UserTypeFaculty,
				lookup: func(ctx context.Context, uname string) (*credential, error) {
					login, err := loginRepo.FindFacultyByUname(ctx, uname)
					if err != nil {
						return nil, err
					}
					return &credential{password: login.Password}, nil
				},
			},
			{
				userType: models.UserTypeStudent,
				lookup: func(ctx context.Context, uname string) (*credential, error) {
					login, err := loginRepo.FindStudentByUname(ctx, uname)
					if err != nil {
						return nil, err
					}
					regNo := login.RegistrationNo
					return &credential{password: login.Password, registrationNo: &regNo}, nil
				},
			},
			{
				userType: models.UserTypeCompany,
				lookup: func(ctx context.Context, uname string) (*credential, error) {
					login, err := loginRepo.FindCompanyByUname(ctx, uname)
					if err != nil {
						return nil, err
					}
					return &credential{password: login.Password}, nil
				},
			},
		},
	}
}

// Login finds the first table holding uname; that table alone decides the password check
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req == nil || req.Uname == "" {
		return nil, apperrors.ErrInvalidUsername
	}

	for _, source := range s.sources {
		cred, err := source.lookup(ctx, req.Uname)
		if err != nil {
			if errors.Is(err, repositories.ErrLoginNotFound) {
				continue
			}
			return nil, fmt.Errorf("error looking up %s login: %w", source.userType, err)
		}

		if cred.password != req.Password {
			logger.Debug().Str("userType", string(source.userType)).Msg("Login rejected: wrong password")
			return nil, apperrors.ErrWrongPassword
		}

		resp := &dto.LoginResponse{
			Success:  true,
			Message:  "Login successful",
			UserType: source.userType,
		}
		if cred.registrationNo != nil && *cred.registrationNo != "" {
			resp.RegistrationNo = cred.registrationNo
		}
		return resp, nil
	}

	return nil, apperrors.ErrInvalidUsername
}
