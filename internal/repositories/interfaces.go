package repositories

import (
	"context"

	"crayon-server/internal/models"
)

// Orchestration services depend on these interfaces, not on gorm.
// Lookup methods return (nil, nil) when no row matches; turning an
// absent row into a domain failure is the caller's job.

// UserRepository reads and updates user rows.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error

	// FollowCounts derives the follower/following counts for a user.
	FollowCounts(ctx context.Context, userID string) (followers, following int64, err error)
}

// TeamRepository owns team rows and their membership rows.
type TeamRepository interface {
	FindByID(ctx context.Context, id string) (*models.Team, error)
	FindByUser(ctx context.Context, userID string) ([]models.Team, error)

	// Create inserts the team, its creator membership and the companion
	// chat in one transaction.
	Create(ctx context.Context, team *models.Team, membership *models.UserTeam, chat *models.Chat) error
	Update(ctx context.Context, team *models.Team) error

	// Delete removes the team and cascades memberships, the companion
	// chat and the team's projects in one transaction.
	Delete(ctx context.Context, team *models.Team) error

	Membership(ctx context.Context, teamID, userID string) (*models.UserTeam, error)
	AddMember(ctx context.Context, membership *models.UserTeam) error

	// AddMembers inserts all rows in one transaction, all or nothing.
	AddMembers(ctx context.Context, memberships []models.UserTeam) error
	RemoveMember(ctx context.Context, membership *models.UserTeam) error
	Members(ctx context.Context, teamID string) ([]models.User, error)
}

// ChatRepository owns chat rows; a chat's message sequence is saved as
// a single unit.
type ChatRepository interface {
	FindByID(ctx context.Context, id string) (*models.Chat, error)
	Save(ctx context.Context, chat *models.Chat) error
	Delete(ctx context.Context, chat *models.Chat) error
}

// ProjectRepository owns project rows.
type ProjectRepository interface {
	FindByID(ctx context.Context, id string) (*models.Project, error)
	FindByTeam(ctx context.Context, teamID string) ([]models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, project *models.Project) error
}

// UsageRepository records generation usage for billing.
type UsageRepository interface {
	Record(ctx context.Context, usage *models.GenerationUsage) error
}
