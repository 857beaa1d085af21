package logics

import (
	"context"
	"testing"

	"crayon-server/internal/failures"
	"crayon-server/internal/models"

	"go.uber.org/zap"
)

func TestCreateProject(t *testing.T) {
	teamRepo := newFakeTeamRepo(newFakeChatRepo())
	teamRepo.teams["t1"] = models.Team{ID: "t1", CreatorID: "u1"}
	projectRepo := newFakeProjectRepo()
	svc := NewProjectService(projectRepo, teamRepo, zap.NewNop())

	entity, err := svc.CreateProject(context.Background(), "Storyboard", "t1")
	if err != nil {
		t.Fatalf("CreateProject returned error: %v", err)
	}
	if entity.Title != "Storyboard" || entity.TeamID != "t1" {
		t.Errorf("entity = %+v", entity)
	}
	if len(entity.SketchIDs) != 0 {
		t.Errorf("sketch ids = %v, want empty", entity.SketchIDs)
	}

	if _, err := svc.CreateProject(context.Background(), "x", "missing"); !failures.IsKind(err, failures.KindNotFound) {
		t.Errorf("error kind = %v, want not found", failures.KindOf(err))
	}
}

func TestViewProjects(t *testing.T) {
	teamRepo := newFakeTeamRepo(newFakeChatRepo())
	teamRepo.teams["t1"] = models.Team{ID: "t1", CreatorID: "u1"}
	p1 := models.Project{ID: "p1", Title: "one", TeamID: "t1"}
	if err := p1.SetSketchIDs([]string{"s1", "s2"}); err != nil {
		t.Fatalf("SetSketchIDs returned error: %v", err)
	}
	p2 := models.Project{ID: "p2", Title: "other team", TeamID: "t2"}
	projectRepo := newFakeProjectRepo(p1, p2)
	svc := NewProjectService(projectRepo, teamRepo, zap.NewNop())

	entities, err := svc.ViewProjects(context.Background(), "t1")
	if err != nil {
		t.Fatalf("ViewProjects returned error: %v", err)
	}
	if len(entities) != 1 || entities[0].ID != "p1" {
		t.Fatalf("entities = %+v, want only p1", entities)
	}
	if len(entities[0].SketchIDs) != 2 {
		t.Errorf("sketch ids = %v, want two", entities[0].SketchIDs)
	}
}

func TestDeleteProject(t *testing.T) {
	teamRepo := newFakeTeamRepo(newFakeChatRepo())
	p1 := models.Project{ID: "p1", Title: "one", TeamID: "t1"}
	if err := p1.SetSketchIDs(nil); err != nil {
		t.Fatalf("SetSketchIDs returned error: %v", err)
	}
	projectRepo := newFakeProjectRepo(p1)
	svc := NewProjectService(projectRepo, teamRepo, zap.NewNop())

	if _, err := svc.DeleteProject(context.Background(), "p1"); err != nil {
		t.Fatalf("DeleteProject returned error: %v", err)
	}
	if p, _ := projectRepo.FindByID(context.Background(), "p1"); p != nil {
		t.Error("project still present after delete")
	}

	_, err := svc.DeleteProject(context.Background(), "p1")
	if !failures.IsKind(err, failures.KindNotFound) {
		t.Fatalf("error kind = %v, want not found", failures.KindOf(err))
	}
	if err.Error() != "Project does not exist" {
		t.Errorf("error = %q", err.Error())
	}
}
