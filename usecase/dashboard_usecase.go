package usecase

import (
	"context"

	"creatorflow/domain/dto"
	"creatorflow/domain/model"

	"golang.org/x/sync/errgroup"
)

type IDashboardUsecase interface {
	Summary(ctx context.Context) (dto.DashboardSummary, error)
}

type DashboardUsecase struct {
	session     *SessionStore
	calendar    *CalendarModel
	profiles    IProfileUsecase
	connections *ConnectionRegistry
}

func NewDashboardUsecase(session *SessionStore, calendar *CalendarModel, profiles IProfileUsecase, connections *ConnectionRegistry) IDashboardUsecase {
	return &DashboardUsecase{session: session, calendar: calendar, profiles: profiles, connections: connections}
}

// Summary loads the calendar and the profile concurrently and aggregates the
// overview page. Either failure fails the whole summary.
func (u *DashboardUsecase) Summary(ctx context.Context) (dto.DashboardSummary, error) {
	var (
		items   []model.ContentItem
		profile *model.BrandProfile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = u.calendar.Fetch(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		profile, err = u.profiles.Get(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return dto.DashboardSummary{}, err
	}

	split := SplitPublished(items)
	summary := dto.DashboardSummary{
		TotalPosts:        len(items),
		Published:         split.Published,
		Remaining:         len(items) - split.Published,
		ConnectedAccounts: u.connections.Count(),
		Distribution:      PlatformShares(items),
		Upcoming:          Upcoming(items, UpcomingLimit),
		HasProfile:        profile != nil,
	}
	if user := u.session.Current(); user != nil {
		summary.FirstName = user.FirstName()
	}
	return summary, nil
}
