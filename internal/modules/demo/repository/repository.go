package repository

import (
	"context"

	"anoa.com/gamificationdemo/internal/bootstrap"
	"anoa.com/gamificationdemo/internal/entity"
	"anoa.com/gamificationdemo/pkg/apperror"
)

type DemoRepository interface {
	FindAllUsers(ctx context.Context) []entity.User
	FindAllBadges(ctx context.Context) []entity.Badge
	FindLeaderboard(ctx context.Context) []entity.LeaderboardEntry
	FindUserSummary(ctx context.Context, userID string) (*entity.UserSummary, error)
}

// demoRepository serves the fixed in-memory dataset. All reads return the
// shared immutable records, so it is safe under concurrent requests.
type demoRepository struct {
	data *bootstrap.Dataset
}

func NewDemoRepository(data *bootstrap.Dataset) DemoRepository {
	return &demoRepository{data: data}
}

func (r *demoRepository) FindAllUsers(ctx context.Context) []entity.User {
	return r.data.Users
}

func (r *demoRepository) FindAllBadges(ctx context.Context) []entity.Badge {
	return r.data.Badges
}

func (r *demoRepository) FindLeaderboard(ctx context.Context) []entity.LeaderboardEntry {
	return r.data.Leaderboard
}

func (r *demoRepository) FindUserSummary(ctx context.Context, userID string) (*entity.UserSummary, error) {
	summary, ok := r.data.Summaries[userID]
	if !ok {
		return nil, apperror.New(0, "User not found in demo dataset", apperror.ErrNotFound)
	}
	return &summary, nil
}
