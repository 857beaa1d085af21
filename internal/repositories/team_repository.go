package repositories

import (
	"context"
	"errors"

	"crayon-server/internal/models"

	"gorm.io/gorm"
)

// GormTeamRepository is the PostgreSQL-backed TeamRepository.
type GormTeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a TeamRepository on top of the given DB handle.
func NewTeamRepository(db *gorm.DB) *GormTeamRepository {
	return &GormTeamRepository{db: db}
}

func (r *GormTeamRepository) FindByID(ctx context.Context, id string) (*models.Team, error) {
	var team models.Team
	if err := r.db.WithContext(ctx).First(&team, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *GormTeamRepository) FindByUser(ctx context.Context, userID string) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.WithContext(ctx).
		Joins("JOIN user_team ON user_team.team_id = teams.id").
		Where("user_team.user_id = ?", userID).
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *GormTeamRepository) Create(ctx context.Context, team *models.Team, membership *models.UserTeam, chat *models.Chat) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		if err := tx.Create(membership).Error; err != nil {
			return err
		}
		if chat != nil {
			if err := tx.Create(chat).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormTeamRepository) Update(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Save(team).Error
}

func (r *GormTeamRepository) Delete(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", team.ID).Delete(&models.UserTeam{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id = ?", team.ID).Delete(&models.Project{}).Error; err != nil {
			return err
		}
		// The companion chat shares the team's id.
		if err := tx.Where("id = ?", team.ID).Delete(&models.Chat{}).Error; err != nil {
			return err
		}
		return tx.Delete(team).Error
	})
}

func (r *GormTeamRepository) Membership(ctx context.Context, teamID, userID string) (*models.UserTeam, error) {
	var membership models.UserTeam
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &membership, nil
}

func (r *GormTeamRepository) AddMember(ctx context.Context, membership *models.UserTeam) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

func (r *GormTeamRepository) AddMembers(ctx context.Context, memberships []models.UserTeam) error {
	if len(memberships) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range memberships {
			if err := tx.Create(&memberships[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormTeamRepository) RemoveMember(ctx context.Context, membership *models.UserTeam) error {
	return r.db.WithContext(ctx).Delete(membership).Error
}

func (r *GormTeamRepository) Members(ctx context.Context, teamID string) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN user_team ON user_team.user_id = users.id").
		Where("user_team.team_id = ?", teamID).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
