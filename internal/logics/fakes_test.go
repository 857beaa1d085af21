package logics

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"crayon-server/internal/models"
)

// In-memory repository fakes shared by the service tests.

type fakeUserRepo struct {
	mu        sync.Mutex
	users     map[string]models.User
	followers map[string]int64
	following map[string]int64
}

func newFakeUserRepo(users ...models.User) *fakeUserRepo {
	repo := &fakeUserRepo{
		users:     make(map[string]models.User),
		followers: make(map[string]int64),
		following: make(map[string]int64),
	}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *fakeUserRepo) FindByIDs(_ context.Context, ids []string) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	seen := make(map[string]bool)
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if user, ok := r.users[id]; ok {
			out = append(out, user)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FollowCounts(_ context.Context, userID string) (int64, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.followers[userID], r.following[userID], nil
}

type fakeTeamRepo struct {
	mu          sync.Mutex
	teams       map[string]models.Team
	memberships map[string]models.UserTeam
	chats       *fakeChatRepo
	deleted     []string
}

func newFakeTeamRepo(chats *fakeChatRepo) *fakeTeamRepo {
	return &fakeTeamRepo{
		teams:       make(map[string]models.Team),
		memberships: make(map[string]models.UserTeam),
		chats:       chats,
	}
}

func membershipKey(teamID, userID string) string {
	return teamID + "/" + userID
}

func (r *fakeTeamRepo) FindByID(_ context.Context, id string) (*models.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	team, ok := r.teams[id]
	if !ok {
		return nil, nil
	}
	return &team, nil
}

func (r *fakeTeamRepo) FindByUser(_ context.Context, userID string) ([]models.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var teamIDs []string
	for _, m := range r.memberships {
		if m.UserID == userID {
			teamIDs = append(teamIDs, m.TeamID)
		}
	}
	sort.Strings(teamIDs)
	var out []models.Team
	for _, id := range teamIDs {
		if team, ok := r.teams[id]; ok {
			out = append(out, team)
		}
	}
	return out, nil
}

func (r *fakeTeamRepo) Create(ctx context.Context, team *models.Team, membership *models.UserTeam, chat *models.Chat) error {
	r.mu.Lock()
	r.teams[team.ID] = *team
	r.memberships[membershipKey(membership.TeamID, membership.UserID)] = *membership
	r.mu.Unlock()
	if r.chats != nil {
		return r.chats.Save(ctx, chat)
	}
	return nil
}

func (r *fakeTeamRepo) Update(_ context.Context, team *models.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teams[team.ID] = *team
	return nil
}

func (r *fakeTeamRepo) Delete(_ context.Context, team *models.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.teams, team.ID)
	for key, m := range r.memberships {
		if m.TeamID == team.ID {
			delete(r.memberships, key)
		}
	}
	if r.chats != nil {
		delete(r.chats.chats, team.ID)
	}
	r.deleted = append(r.deleted, team.ID)
	return nil
}

func (r *fakeTeamRepo) Membership(_ context.Context, teamID, userID string) (*models.UserTeam, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.memberships[membershipKey(teamID, userID)]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *fakeTeamRepo) AddMember(_ context.Context, membership *models.UserTeam) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := membershipKey(membership.TeamID, membership.UserID)
	if _, ok := r.memberships[key]; ok {
		return errors.New("duplicate membership")
	}
	r.memberships[key] = *membership
	return nil
}

func (r *fakeTeamRepo) AddMembers(ctx context.Context, memberships []models.UserTeam) error {
	for i := range memberships {
		if err := r.AddMember(ctx, &memberships[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeTeamRepo) RemoveMember(_ context.Context, membership *models.UserTeam) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.memberships, membershipKey(membership.TeamID, membership.UserID))
	return nil
}

func (r *fakeTeamRepo) Members(_ context.Context, teamID string) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var userIDs []string
	for _, m := range r.memberships {
		if m.TeamID == teamID {
			userIDs = append(userIDs, m.UserID)
		}
	}
	sort.Strings(userIDs)
	out := make([]models.User, len(userIDs))
	for i, id := range userIDs {
		out[i] = models.User{ID: id}
	}
	return out, nil
}

type fakeChatRepo struct {
	mu    sync.Mutex
	chats map[string]models.Chat
	saves int
}

func newFakeChatRepo(chats ...models.Chat) *fakeChatRepo {
	repo := &fakeChatRepo{chats: make(map[string]models.Chat)}
	for _, c := range chats {
		repo.chats[c.ID] = c
	}
	return repo
}

func (r *fakeChatRepo) FindByID(_ context.Context, id string) (*models.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	chat, ok := r.chats[id]
	if !ok {
		return nil, nil
	}
	return &chat, nil
}

func (r *fakeChatRepo) Save(_ context.Context, chat *models.Chat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chats[chat.ID] = *chat
	r.saves++
	return nil
}

func (r *fakeChatRepo) Delete(_ context.Context, chat *models.Chat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.chats, chat.ID)
	return nil
}

type fakeProjectRepo struct {
	mu       sync.Mutex
	projects map[string]models.Project
}

func newFakeProjectRepo(projects ...models.Project) *fakeProjectRepo {
	repo := &fakeProjectRepo{projects: make(map[string]models.Project)}
	for _, p := range projects {
		repo.projects[p.ID] = p
	}
	return repo
}

func (r *fakeProjectRepo) FindByID(_ context.Context, id string) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	project, ok := r.projects[id]
	if !ok {
		return nil, nil
	}
	return &project, nil
}

func (r *fakeProjectRepo) FindByTeam(_ context.Context, teamID string) ([]models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for id, p := range r.projects {
		if p.TeamID == teamID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	out := make([]models.Project, len(ids))
	for i, id := range ids {
		out[i] = r.projects[id]
	}
	return out, nil
}

func (r *fakeProjectRepo) Create(_ context.Context, project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects[project.ID] = *project
	return nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.projects, project.ID)
	return nil
}

type fakeUsageRepo struct {
	mu     sync.Mutex
	usages []models.GenerationUsage
}

func (r *fakeUsageRepo) Record(_ context.Context, usage *models.GenerationUsage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.usages = append(r.usages, *usage)
	return nil
}

// fakeGeneration records the calls made against it and answers with
// canned values or a configured error.
type fakeGeneration struct {
	mu        sync.Mutex
	calls     []string
	endpoints []string
	payloads  []map[string]any
	err       error

	imageURL   string
	uploadURL  string
	chatReply  string
	analysis   models.Analysis
	modelURL3D string
}

func newFakeGeneration() *fakeGeneration {
	return &fakeGeneration{
		imageURL:   "https://cdn.example.com/generated.png",
		uploadURL:  "https://cdn.example.com/uploaded.png",
		chatReply:  "hello there",
		analysis:   models.Analysis{Title: "A sketch", Detail: "Pencil on paper"},
		modelURL3D: "https://cdn.example.com/model.glb",
	}
}

func (g *fakeGeneration) record(call, endpoint string, payload map[string]any) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, call)
	g.endpoints = append(g.endpoints, endpoint)
	g.payloads = append(g.payloads, payload)
}

func (g *fakeGeneration) GenerateImage(_ context.Context, endpoint string, payload map[string]any) (string, error) {
	g.record("GenerateImage", endpoint, payload)
	if g.err != nil {
		return "", g.err
	}
	return g.imageURL, nil
}

func (g *fakeGeneration) UploadImage(_ context.Context, source string) (string, error) {
	g.record("UploadImage", "", map[string]any{"source": source})
	if g.err != nil {
		return "", g.err
	}
	return g.uploadURL, nil
}

func (g *fakeGeneration) ImageVariant(_ context.Context, payload map[string]any) (string, error) {
	g.record("ImageVariant", "", payload)
	if g.err != nil {
		return "", g.err
	}
	return g.imageURL, nil
}

func (g *fakeGeneration) CreateFromText(_ context.Context, payload map[string]any) (string, error) {
	g.record("CreateFromText", "", payload)
	if g.err != nil {
		return "", g.err
	}
	return g.imageURL, nil
}

func (g *fakeGeneration) Chatbot(_ context.Context, payload map[string]any) (string, error) {
	g.record("Chatbot", "", payload)
	if g.err != nil {
		return "", g.err
	}
	return g.chatReply, nil
}

func (g *fakeGeneration) Analysis(_ context.Context, payload map[string]any) (*models.Analysis, error) {
	g.record("Analysis", "", payload)
	if g.err != nil {
		return nil, g.err
	}
	analysis := g.analysis
	return &analysis, nil
}

func (g *fakeGeneration) TextTo3D(_ context.Context, payload map[string]any) (string, error) {
	g.record("TextTo3D", "", payload)
	if g.err != nil {
		return "", g.err
	}
	return g.modelURL3D, nil
}

func (g *fakeGeneration) ImageTo3D(_ context.Context, payload map[string]any) (string, error) {
	g.record("ImageTo3D", "", payload)
	if g.err != nil {
		return "", g.err
	}
	return g.modelURL3D, nil
}

// fakeCache is a map-backed cache keyed by prompt.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string]models.FreeEntity
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]models.FreeEntity)}
}

func (c *fakeCache) Get(_ context.Context, _ string, data map[string]any, value interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	prompt, _ := data["prompt"].(string)
	entry, ok := c.entries[prompt]
	if !ok {
		return false, nil
	}
	entity, ok := value.(*models.FreeEntity)
	if !ok {
		return false, errors.New("unexpected value type")
	}
	*entity = entry
	return true, nil
}

func (c *fakeCache) SetWithExpiration(_ context.Context, _ string, data map[string]any, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	prompt, _ := data["prompt"].(string)
	entity, ok := value.(*models.FreeEntity)
	if !ok {
		return errors.New("unexpected value type")
	}
	c.entries[prompt] = *entity
	c.sets++
	return nil
}
