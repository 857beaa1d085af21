package logics

import (
	"context"
	"fmt"

	"crayon-server/configs"
	"crayon-server/internal/ai"
	"crayon-server/internal/failures"
	"crayon-server/internal/models"
	"crayon-server/internal/repositories"
	"crayon-server/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TeamService handles team-related business logic
type TeamService struct {
	teamRepo   repositories.TeamRepository
	userRepo   repositories.UserRepository
	generation ai.Generation
	emailSvc   *utils.EmailService
	logger     *zap.Logger
}

// NewTeamService creates a new instance of TeamService. emailSvc may be
// nil; member notifications are then skipped.
func NewTeamService(
	teamRepo repositories.TeamRepository,
	userRepo repositories.UserRepository,
	generation ai.Generation,
	emailSvc *utils.EmailService,
	logger *zap.Logger,
) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		userRepo:   userRepo,
		generation: generation,
		emailSvc:   emailSvc,
		logger:     logger,
	}
}

// CreateTeam creates a new team, binds the creator as its first member
// and opens the companion team chat under the same id.
func (s *TeamService) CreateTeam(ctx context.Context, input models.TeamInput, userID string) (*models.TeamEntity, error) {
	creator, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if creator == nil {
		return nil, failures.NotFound("User does not exist")
	}

	image := input.Image
	if image == "" {
		image = models.DefaultTeamImage
	}

	team := models.Team{
		ID:          uuid.NewString(),
		CreatorID:   userID,
		Title:       input.Title,
		Description: input.Description,
		Image:       image,
	}

	membership := models.UserTeam{
		ID:     uuid.NewString(),
		UserID: userID,
		TeamID: team.ID,
	}

	// The team chat shares the team's id.
	chat := models.Chat{
		ID:    team.ID,
		Title: input.Title,
	}
	if err := chat.SetMessages([]models.Message{}); err != nil {
		return nil, err
	}

	if err := s.teamRepo.Create(ctx, &team, &membership, &chat); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	entity := models.NewTeamEntity(&team, creator)
	return &entity, nil
}

// UpdateTeam overwrites a team's fields. Only the creator may update;
// a newly supplied image is uploaded first and stored by URL.
func (s *TeamService) UpdateTeam(ctx context.Context, input models.TeamInput, teamID, userID string) (*models.TeamEntity, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	if team == nil {
		return nil, failures.NotFound("Team does not exist")
	}
	if team.CreatorID != userID {
		return nil, failures.Authorization("User is not the creator of the team")
	}

	team.Title = input.Title
	team.Description = input.Description
	if input.Image != "" {
		uploaded, err := s.generation.UploadImage(ctx, input.Image)
		if err != nil {
			return nil, failures.Generation("Error uploading image", err)
		}
		team.Image = uploaded
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	creator, err := s.userRepo.FindByID(ctx, team.CreatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load creator: %w", err)
	}

	entity := models.NewTeamEntity(team, creator)
	return &entity, nil
}

// DeleteTeam removes a team unconditionally and returns a snapshot with
// blanked creator display fields; the creator is not looked up again
// after the delete.
func (s *TeamService) DeleteTeam(ctx context.Context, teamID string) (*models.TeamEntity, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	if team == nil {
		return nil, failures.NotFound("Team does not exist")
	}

	if err := s.teamRepo.Delete(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to delete team: %w", err)
	}

	entity := models.NewTeamEntity(team, nil)
	return &entity, nil
}

// ViewTeams lists every team the user is a member of, each enriched
// with its creator's display info.
func (s *TeamService) ViewTeams(ctx context.Context, userID string) ([]models.TeamEntity, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, failures.NotFound("User does not exist")
	}

	teams, err := s.teamRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}

	creatorIDs := make([]string, 0, len(teams))
	for _, team := range teams {
		creatorIDs = append(creatorIDs, team.CreatorID)
	}
	creators, err := s.userRepo.FindByIDs(ctx, creatorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load creators: %w", err)
	}
	creatorsByID := make(map[string]*models.User, len(creators))
	for i := range creators {
		creatorsByID[creators[i].ID] = &creators[i]
	}

	entities := make([]models.TeamEntity, 0, len(teams))
	for i := range teams {
		entities = append(entities, models.NewTeamEntity(&teams[i], creatorsByID[teams[i].CreatorID]))
	}
	return entities, nil
}

// ViewTeam retrieves a single team with creator enrichment.
func (s *TeamService) ViewTeam(ctx context.Context, teamID string) (*models.TeamEntity, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	if team == nil {
		return nil, failures.NotFound("Team does not exist")
	}

	creator, err := s.userRepo.FindByID(ctx, team.CreatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load creator: %w", err)
	}

	entity := models.NewTeamEntity(team, creator)
	return &entity, nil
}

// JoinTeam adds the user to the team; joining twice is rejected. The
// unique index on (user_id, team_id) backstops concurrent joins that
// race past this existence check.
func (s *TeamService) JoinTeam(ctx context.Context, teamID, userID string) (*models.TeamEntity, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, failures.NotFound("User does not exist")
	}

	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	if team == nil {
		return nil, failures.NotFound("Team does not exist")
	}

	existing, err := s.teamRepo.Membership(ctx, teamID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load membership: %w", err)
	}
	if existing != nil {
		return nil, failures.Conflict("User is already a member of this team")
	}

	membership := models.UserTeam{
		ID:     uuid.NewString(),
		UserID: userID,
		TeamID: teamID,
	}
	if err := s.teamRepo.AddMember(ctx, &membership); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	creator, err := s.userRepo.FindByID(ctx, team.CreatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load creator: %w", err)
	}

	entity := models.NewTeamEntity(team, creator)
	return &entity, nil
}

// LeaveTeam removes the user's membership. A creator leaving their own
// team deletes the team for everyone, memberships included.
func (s *TeamService) LeaveTeam(ctx context.Context, teamID, userID string) (*models.TeamEntity, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, failures.NotFound("User does not exist")
	}

	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	if team == nil {
		return nil, failures.NotFound("Team does not exist")
	}

	membership, err := s.teamRepo.Membership(ctx, teamID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load membership: %w", err)
	}
	if membership == nil {
		return nil, failures.NotFound("User is not a member of this team")
	}

	if err := s.teamRepo.RemoveMember(ctx, membership); err != nil {
		return nil, fmt.Errorf("failed to remove member: %w", err)
	}

	if team.CreatorID == userID {
		if err := s.teamRepo.Delete(ctx, team); err != nil {
			return nil, fmt.Errorf("failed to delete team: %w", err)
		}
	}

	creator, err := s.userRepo.FindByID(ctx, team.CreatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load creator: %w", err)
	}

	entity := models.NewTeamEntity(team, creator)
	return &entity, nil
}

// TeamMembers lists the team's members with follower/following counts.
func (s *TeamService) TeamMembers(ctx context.Context, teamID string) ([]models.UserEntity, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	if team == nil {
		return nil, failures.NotFound("Team does not exist")
	}

	members, err := s.teamRepo.Members(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}

	entities := make([]models.UserEntity, 0, len(members))
	for i := range members {
		entity, err := s.userEntity(ctx, &members[i])
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}
	return entities, nil
}

// AddTeamMembers adds the given users to the team on the creator's
// behalf. Users that are already members are skipped; one missing user
// aborts the whole operation and no membership is committed.
func (s *TeamService) AddTeamMembers(ctx context.Context, teamID, creatorID string, userIDs []string) ([]models.UserEntity, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	if team == nil {
		return nil, failures.NotFound("Team does not exist")
	}
	if team.CreatorID != creatorID {
		return nil, failures.Authorization("User is not the creator of the team")
	}

	creator, err := s.userRepo.FindByID(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load creator: %w", err)
	}

	var memberships []models.UserTeam
	var added []models.User
	for _, userID := range userIDs {
		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load user: %w", err)
		}
		if user == nil {
			return nil, failures.NotFound(fmt.Sprintf("User %s does not exist", userID))
		}

		existing, err := s.teamRepo.Membership(ctx, teamID, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load membership: %w", err)
		}
		if existing != nil {
			continue
		}

		memberships = append(memberships, models.UserTeam{
			ID:     uuid.NewString(),
			UserID: userID,
			TeamID: teamID,
		})
		added = append(added, *user)
	}

	if err := s.teamRepo.AddMembers(ctx, memberships); err != nil {
		return nil, fmt.Errorf("failed to add members: %w", err)
	}

	s.notifyAddedMembers(team, creator, added)

	entities := make([]models.UserEntity, 0, len(added))
	for i := range added {
		entity, err := s.userEntity(ctx, &added[i])
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}
	return entities, nil
}

// notifyAddedMembers emails the new members. Delivery is best effort;
// failures are logged, never returned.
func (s *TeamService) notifyAddedMembers(team *models.Team, creator *models.User, added []models.User) {
	if s.emailSvc == nil || creator == nil {
		return
	}
	sender := configs.Configs.Email.SenderEmail
	addedBy := creator.FirstName + " " + creator.LastName
	for _, user := range added {
		if user.Email == "" {
			continue
		}
		if err := s.emailSvc.SendTeamAddedEmail(sender, user.Email, user.FirstName, team.Title, addedBy); err != nil {
			s.logger.Warn("Failed to send team notification email",
				zap.String("userID", user.ID),
				zap.Error(err),
			)
		}
	}
}

func (s *TeamService) userEntity(ctx context.Context, user *models.User) (*models.UserEntity, error) {
	followers, following, err := s.userRepo.FollowCounts(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load follow counts: %w", err)
	}
	return &models.UserEntity{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Bio:       user.Bio,
		Email:     user.Email,
		Image:     user.Image,
		Country:   user.Country,
		Followers: followers,
		Following: following,
	}, nil
}
