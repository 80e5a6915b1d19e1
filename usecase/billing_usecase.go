package usecase

import (
	"context"
	"time"

	"creatorflow/domain/model"
)

var plans = []model.Plan{
	{ID: "monthly", Label: "Monthly", Price: 999, Period: "/month"},
	{ID: "yearly", Label: "Yearly", Price: 799, Period: "/month", Save: "Save 20%"},
}

type IBillingUsecase interface {
	Plans() []model.Plan
	Subscribe(ctx context.Context, planID string, method model.PaymentMethod) (model.Subscription, error)
}

// BillingUsecase simulates checkout. No payment details are taken and nothing
// is charged.
type BillingUsecase struct {
	delay    time.Duration
	activity IActivity
	now      func() time.Time
}

func NewBillingUsecase(processingDelay time.Duration, activity IActivity) IBillingUsecase {
	if activity == nil {
		activity = noActivity{}
	}
	return &BillingUsecase{delay: processingDelay, activity: activity, now: time.Now}
}

func (u *BillingUsecase) Plans() []model.Plan {
	return append([]model.Plan(nil), plans...)
}

func (u *BillingUsecase) Subscribe(ctx context.Context, planID string, method model.PaymentMethod) (model.Subscription, error) {
	plan, ok := findPlan(planID)
	if !ok {
		return model.Subscription{}, model.ErrUnknownPlan
	}
	if method == "" {
		method = model.PaymentCard
	}
	if method != model.PaymentCard && method != model.PaymentBank {
		return model.Subscription{}, &model.ValidationError{Field: "method", Message: "method must be one of card, bank"}
	}

	if u.delay > 0 {
		timer := time.NewTimer(u.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return model.Subscription{}, ctx.Err()
		case <-timer.C:
		}
	}

	sub := model.Subscription{Plan: plan, Method: method, Status: "active", ActivatedAt: u.now().UTC()}
	u.activity.Emit(ctx, model.ActivityEvent{Type: model.EventSubscribed})
	return sub, nil
}

func findPlan(id string) (model.Plan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return model.Plan{}, false
}
