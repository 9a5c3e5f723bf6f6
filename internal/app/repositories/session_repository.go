package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yigit/placementportal/internal/app/models"
	"github.com/yigit/placementportal/internal/db"
)

// ErrSessionNotFound is returned when no session has the requested id
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository handles database operations for sessions
type SessionRepository struct {
	coll db.Collection
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(database db.Database) *SessionRepository {
	return &SessionRepository{
		coll: database.Collection(SessionsCollection),
	}
}

// FindAll returns every session ordered by start time, earliest first
func (r *SessionRepository) FindAll(ctx context.Context) ([]models.Session, error) {
	var sessions []models.Session
	opts := db.FindOptions{SortField: "start", Order: db.Ascending}
	if err := r.coll.Find(ctx, nil, opts, &sessions); err != nil {
		return nil, fmt.Errorf("error retrieving sessions: %w", err)
	}
	return sessions, nil
}

// Create inserts the session and sets its generated ID
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	id, err := r.coll.InsertOne(ctx, session)
	if err != nil {
		return fmt.Errorf("error creating session: %w", err)
	}
	session.ID = id
	return nil
}

// Update sets the given fields and returns the updated session
func (r *SessionRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Session, error) {
	var updated models.Session
	if err := r.coll.UpdateOne(ctx, db.ByID(id), fields, &updated); err != nil {
		if errors.Is(err, db.ErrNoDocument) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("error updating session: %w", err)
	}
	return &updated, nil
}

// Delete removes a session by id
func (r *SessionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := r.coll.DeleteOne(ctx, db.ByID(id)); err != nil {
		if errors.Is(err, db.ErrNoDocument) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}
