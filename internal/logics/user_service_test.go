package logics

import (
	"context"
	"testing"

	"crayon-server/internal/failures"
	"crayon-server/internal/models"

	"go.uber.org/zap"
)

func TestGetUser(t *testing.T) {
	userRepo := newFakeUserRepo(models.User{ID: "u1", FirstName: "Ada", Email: "ada@example.com"})
	userRepo.followers["u1"] = 3
	userRepo.following["u1"] = 5
	svc := NewUserService(userRepo, newFakeGeneration(), zap.NewNop())

	entity, err := svc.GetUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetUser returned error: %v", err)
	}
	if entity.FirstName != "Ada" || entity.Followers != 3 || entity.Following != 5 {
		t.Errorf("entity = %+v", entity)
	}

	if _, err := svc.GetUser(context.Background(), "missing"); !failures.IsKind(err, failures.KindNotFound) {
		t.Errorf("error kind = %v, want not found", failures.KindOf(err))
	}
}

func TestUpdateUserPartial(t *testing.T) {
	userRepo := newFakeUserRepo(models.User{ID: "u1", FirstName: "Ada", Bio: "old bio", Country: "uk"})
	svc := NewUserService(userRepo, newFakeGeneration(), zap.NewNop())

	bio := "new bio"
	entity, err := svc.UpdateUser(context.Background(), models.UserUpdate{Bio: &bio}, "u1")
	if err != nil {
		t.Fatalf("UpdateUser returned error: %v", err)
	}
	if entity.Bio != "new bio" {
		t.Errorf("bio = %q, want new bio", entity.Bio)
	}
	if entity.FirstName != "Ada" || entity.Country != "uk" {
		t.Errorf("untouched fields changed: %+v", entity)
	}
}

func TestUpdateUserUploadsImage(t *testing.T) {
	userRepo := newFakeUserRepo(models.User{ID: "u1"})
	gen := newFakeGeneration()
	svc := NewUserService(userRepo, gen, zap.NewNop())

	image := "data:image/png;base64,xxxx"
	entity, err := svc.UpdateUser(context.Background(), models.UserUpdate{Image: &image}, "u1")
	if err != nil {
		t.Fatalf("UpdateUser returned error: %v", err)
	}
	if entity.Image != gen.uploadURL {
		t.Errorf("image = %q, want uploaded URL", entity.Image)
	}
	if len(gen.calls) != 1 || gen.calls[0] != "UploadImage" {
		t.Errorf("calls = %v, want a single upload", gen.calls)
	}
}
