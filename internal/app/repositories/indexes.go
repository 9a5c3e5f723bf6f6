package repositories

import (
	"context"

	"github.com/yigit/placementportal/internal/db"
	"github.com/yigit/placementportal/internal/pkg/logger"
)

// IndexSpec names a single-field ascending index
type IndexSpec struct {
	Collection string
	Field      string
}

// DefaultIndexes lists the lookup and sort fields the repositories query by
var DefaultIndexes = []IndexSpec{
	{Collection: StudentsCollection, Field: "registrationNo"},
	{Collection: FacultyLoginsCollection, Field: "uname"},
	{Collection: StudentLoginsCollection, Field: "uname"},
	{Collection: CompanyLoginsCollection, Field: "uname"},
	{Collection: SessionsCollection, Field: "start"},
	{Collection: NotificationsCollection, Field: "time"},
}

// EnsureIndexes creates every index in specs. Failures are logged and counted, never fatal.
func EnsureIndexes(ctx context.Context, database db.Database, specs []IndexSpec) int {
	failed := 0
	for _, spec := range specs {
		if err := database.Collection(spec.Collection).EnsureIndex(ctx, spec.Field); err != nil {
			logger.Warn().Err(err).
				Str("collection", spec.Collection).
				Str("field", spec.Field).
				Msg("Failed to ensure index")
			failed++
			continue
		}
		logger.Debug().Str("collection", spec.Collection).Str("field", spec.Field).Msg("Index ensured")
	}

	logger.Info().Int("total", len(specs)).Int("failed", failed).Msg("Index setup completed")
	return failed
}
