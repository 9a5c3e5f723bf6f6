package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yigit/placementportal/internal/app/models"
	"github.com/yigit/placementportal/internal/app/models/dto"
	"github.com/yigit/placementportal/internal/app/repositories"
	"github.com/yigit/placementportal/internal/pkg/apperrors"
	"github.com/yigit/placementportal/internal/pkg/helpers"
)

// SessionService defines the interface for session operations
type SessionService interface {
	GetSessionEvents(ctx context.Context) ([]dto.SessionEvent, error)
	CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*models.Session, error)
	UpdateSession(ctx context.Context, id primitive.ObjectID, req *dto.UpdateSessionRequest) (*models.Session, error)
	DeleteSession(ctx context.Context, id primitive.ObjectID) error
}

// sessionServiceImpl implements SessionService
type sessionServiceImpl struct {
	sessionRepo *repositories.SessionRepository
}

// NewSessionService creates a new session service
func NewSessionService(sessionRepo *repositories.SessionRepository) SessionService {
	return &sessionServiceImpl{sessionRepo: sessionRepo}
}

// GetSessionEvents lists sessions as calendar events, earliest first
func (s *sessionServiceImpl) GetSessionEvents(ctx context.Context) ([]dto.SessionEvent, error) {
	sessions, err := s.sessionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing sessions: %w", err)
	}
	return dto.NewSessionEvents(sessions), nil
}

// CreateSession requires both company and start
func (s *sessionServiceImpl) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*models.Session, error) {
	if req == nil || strings.TrimSpace(req.Company) == "" || strings.TrimSpace(string(req.Start)) == "" {
		return nil, apperrors.ErrSessionFieldsRequired
	}

	start, err := helpers.ParseTimestamp(string(req.Start))
	if err != nil {
		return nil, apperrors.ErrSessionStartInvalid.WithDetails(map[string]interface{}{"start": string(req.Start)})
	}

	session := &models.Session{Company: req.Company, Start: start}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("error creating session: %w", err)
	}
	return session, nil
}

// UpdateSession changes the fields present in req and returns the updated session
func (s *sessionServiceImpl) UpdateSession(ctx context.Context, id primitive.ObjectID, req *dto.UpdateSessionRequest) (*models.Session, error) {
	fields := bson.M{}
	if req != nil {
		if req.Company != nil {
			if strings.TrimSpace(*req.Company) == "" {
				return nil, apperrors.ErrSessionFieldsRequired
			}
			fields["company"] = *req.Company
		}
		if req.Start != nil {
			start, err := helpers.ParseTimestamp(string(*req.Start))
			if err != nil {
				return nil, apperrors.ErrSessionStartInvalid.WithDetails(map[string]interface{}{"start": string(*req.Start)})
			}
			fields["start"] = start
		}
	}

	session, err := s.sessionRepo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("error updating session: %w", err)
	}
	return session, nil
}

// DeleteSession removes a session
func (s *sessionServiceImpl) DeleteSession(ctx context.Context, id primitive.ObjectID) error {
	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return apperrors.ErrSessionNotFound
		}
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}
