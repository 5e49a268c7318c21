package service

import (
	"context"
	"net/http"

	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/types"
	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/util"
)

// AnalyticsService assembles the exposure report for one account:
// valid session -> file listing + quota -> risk scores.
type AnalyticsService struct {
	session    *SessionService
	drive      types.DriveService
	tokenStore types.TokenStore
}

func NewAnalyticsService(session *SessionService, drive types.DriveService, tokenStore types.TokenStore) *AnalyticsService {
	return &AnalyticsService{
		session:    session,
		drive:      drive,
		tokenStore: tokenStore,
	}
}

func (s *AnalyticsService) GetAnalytics(ctx context.Context, email string) (*types.AnalyticsResult, error) {
	u, err := s.tokenStore.FindByEmail(ctx, email)
	if err != nil {
		return nil, util.NewAppError(
			http.StatusInternalServerError,
			"failed to retrieve the user",
			"AnalyticsService, GetAnalytics() error: ",
			err,
		)
	}
	if u == nil {
		return nil, util.NewAppError(
			http.StatusNotFound,
			"user not found",
		)
	}

	accessToken, err := s.session.EnsureValidSession(ctx, u)
	if err != nil {
		return nil, err
	}

	files, err := s.drive.ListFiles(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	quota, err := s.drive.GetQuota(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	riskCounter := ScoreFiles(files)

	return &types.AnalyticsResult{
		TotalUsage:  quota.Usage,
		Limit:       quota.Limit,
		Files:       files,
		RiskCounter: riskCounter,
	}, nil
}
