package demo

import (
	"context"
	"log"

	"anoa.com/gamificationdemo/internal/entity"
	"anoa.com/gamificationdemo/internal/modules/demo/dto"
	"anoa.com/gamificationdemo/internal/modules/demo/repository"
)

type DemoService interface {
	GetLeaderboard(ctx context.Context) []entity.LeaderboardEntry
	GetBadges(ctx context.Context) []entity.Badge
	GetUsers(ctx context.Context) []entity.User
	GetUserSummary(ctx context.Context, userID string) (*entity.UserSummary, error)
	AwardPoints(ctx context.Context, req dto.AwardRequest) dto.AwardResponse
}

type demoService struct {
	repo repository.DemoRepository
}

func NewDemoService(repo repository.DemoRepository) DemoService {
	return &demoService{repo: repo}
}

func (s *demoService) GetLeaderboard(ctx context.Context) []entity.LeaderboardEntry {
	return s.repo.FindLeaderboard(ctx)
}

func (s *demoService) GetBadges(ctx context.Context) []entity.Badge {
	return s.repo.FindAllBadges(ctx)
}

func (s *demoService) GetUsers(ctx context.Context) []entity.User {
	return s.repo.FindAllUsers(ctx)
}

func (s *demoService) GetUserSummary(ctx context.Context, userID string) (*entity.UserSummary, error) {
	return s.repo.FindUserSummary(ctx, userID)
}

// AwardPoints acknowledges the action without touching the dataset. The
// demo is read-only; the log line is the only trace the request leaves.
func (s *demoService) AwardPoints(ctx context.Context, req dto.AwardRequest) dto.AwardResponse {
	log.Printf("award declined (read-only demo): action=%s points=%d", req.Action, req.Points)

	return dto.AwardResponse{
		Mode:    "demo",
		Message: "Read-only demo: no data was changed.",
	}
}
