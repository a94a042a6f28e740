package services

import (
	"context"
	"time"

	"wallet/src/models"
	"wallet/src/repositories"
	"wallet/src/utils"
)

type SnapshotServiceI interface {
	TakeSnapshot(ctx context.Context) (*models.PortfolioSnapshot, error)
}

type SnapshotService struct {
	Portfolio PortfolioServiceI
	History   repositories.Store[models.PortfolioSnapshot]
	Now       func() time.Time
}

func NewSnapshotService(portfolio PortfolioServiceI, history repositories.Store[models.PortfolioSnapshot]) *SnapshotService {
	return &SnapshotService{Portfolio: portfolio, History: history, Now: time.Now}
}

// TakeSnapshot records today's overview in the history file. A second
// snapshot on the same day replaces the first.
func (s *SnapshotService) TakeSnapshot(ctx context.Context) (*models.PortfolioSnapshot, error) {
	overview, err := s.Portfolio.GetOverview(ctx)
	if err != nil {
		return nil, err
	}
	snapshot := Snapshot(*overview, s.Now())
	if err := s.History.Upsert(ctx, snapshot); err != nil {
		return nil, err
	}
	utils.LoggerFromContext(ctx).Infof("Portfolio snapshot for %s saved, net worth %s", snapshot.Date, utils.FormatNumber(snapshot.NetWorth))
	return &snapshot, nil
}
