package usecase

import (
	"context"
	"errors"
	"sync"

	"creatorflow/domain/dto"
	"creatorflow/domain/model"
	"creatorflow/domain/repository"
	"creatorflow/infrastructure/logger"
)

// CalendarModel holds the working copy of the generated calendar. The list is
// replaced wholesale by Fetch and Generate and patched one item at a time by
// ApplyAction and Save. State only changes after a successful backend call.
type CalendarModel struct {
	mu       sync.RWMutex
	service  repository.IContentService
	session  ISessionGate
	activity IActivity

	items []model.ContentItem
	busy  map[int64]struct{}
	// gen counts wholesale loads; an older load never overwrites a newer one.
	gen uint64
}

func NewCalendarModel(service repository.IContentService, session ISessionGate) *CalendarModel {
	return &CalendarModel{
		service:  service,
		session:  session,
		activity: noActivity{},
		busy:     make(map[int64]struct{}),
	}
}

func (m *CalendarModel) WithActivity(activity IActivity) *CalendarModel {
	if activity != nil {
		m.activity = activity
	}
	return m
}

func (m *CalendarModel) requireSession() error {
	if m.session == nil || !m.session.HasToken() {
		return model.ErrNoSession
	}
	return nil
}

func (m *CalendarModel) observe(ctx context.Context, err error) {
	if errors.Is(err, model.ErrUnauthorized) && m.session != nil {
		m.session.HandleUnauthorized(ctx)
	}
}

// Fetch loads the persisted calendar. An empty calendar is a valid result.
func (m *CalendarModel) Fetch(ctx context.Context) ([]model.ContentItem, error) {
	if err := m.requireSession(); err != nil {
		return nil, err
	}
	gen := m.nextGen()
	items, err := m.service.FetchCalendar(ctx)
	if err != nil {
		m.observe(ctx, err)
		logger.GetLogger().WithField("error", err).Warn("Failed to load calendar")
		return nil, &model.FetchFailedError{Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m.replaceAll(gen, items), nil
}

// Generate asks the backend for a fresh calendar and replaces the local one.
func (m *CalendarModel) Generate(ctx context.Context) ([]model.ContentItem, error) {
	if err := m.requireSession(); err != nil {
		return nil, err
	}
	gen := m.nextGen()
	items, err := m.service.GenerateCalendar(ctx)
	if err != nil {
		m.observe(ctx, err)
		logger.GetLogger().WithField("error", err).Warn("Failed to generate calendar")
		return nil, &model.GenerateFailedError{Reason: model.Reason(err), Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := m.replaceAll(gen, items)
	m.activity.Emit(ctx, model.ActivityEvent{Type: model.EventCalendarGenerated})
	return out, nil
}

// ApplyAction runs an AI rewrite on one item and swaps in the result.
func (m *CalendarModel) ApplyAction(ctx context.Context, id int64, action model.ContentAction) (model.ContentItem, error) {
	if !action.Valid() {
		return model.ContentItem{}, model.ErrUnknownAction
	}
	if err := m.requireSession(); err != nil {
		return model.ContentItem{}, err
	}
	if _, err := m.acquire(id); err != nil {
		return model.ContentItem{}, err
	}
	defer m.release(id)

	item, err := m.service.ApplyAction(ctx, id, action)
	if err != nil {
		m.observe(ctx, err)
		return model.ContentItem{}, &model.ActionFailedError{Action: action, ItemID: id, Reason: model.Reason(err), Err: err}
	}
	if item.ID != id {
		logger.GetLogger().WithField("id", id).WithField("got", item.ID).Warn("Discarding rewrite for a different content item")
		return model.ContentItem{}, &model.ActionFailedError{Action: action, ItemID: id, Reason: model.Reason(model.ErrItemMismatch), Err: model.ErrItemMismatch}
	}
	if err := ctx.Err(); err != nil {
		return model.ContentItem{}, err
	}
	m.replaceOne(id, item)
	m.activity.Emit(ctx, model.ActivityEvent{Type: model.EventContentRewritten, ItemID: id, Action: action, Platform: item.Platform})
	return item, nil
}

// Save sends the edited fields and replaces the item with the server copy.
// Fields that do not apply to the item's platform are not sent.
func (m *CalendarModel) Save(ctx context.Context, id int64, patch model.ContentPatch) (model.ContentItem, error) {
	if err := m.requireSession(); err != nil {
		return model.ContentItem{}, err
	}
	current, err := m.acquire(id)
	if err != nil {
		return model.ContentItem{}, err
	}
	defer m.release(id)

	item, err := m.service.SaveContent(ctx, id, patch.ForPlatform(current.Platform))
	if err != nil {
		m.observe(ctx, err)
		return model.ContentItem{}, &model.SaveFailedError{ItemID: id, Reason: model.Reason(err), Err: err}
	}
	if item.ID != id {
		logger.GetLogger().WithField("id", id).WithField("got", item.ID).Warn("Discarding save reply for a different content item")
		return model.ContentItem{}, &model.SaveFailedError{ItemID: id, Reason: model.Reason(model.ErrItemMismatch), Err: model.ErrItemMismatch}
	}
	if err := ctx.Err(); err != nil {
		return model.ContentItem{}, err
	}
	m.replaceOne(id, item)
	m.activity.Emit(ctx, model.ActivityEvent{Type: model.EventContentUpdated, ItemID: id, Platform: item.Platform})
	return item, nil
}

// ConfirmPlan finalizes the calendar and returns image suggestions. Items are
// not modified.
func (m *CalendarModel) ConfirmPlan(ctx context.Context) ([]model.ImageSuggestion, error) {
	if err := m.requireSession(); err != nil {
		return nil, err
	}
	suggestions, err := m.service.ConfirmPlan(ctx)
	if err != nil {
		m.observe(ctx, err)
		return nil, err
	}
	m.activity.Emit(ctx, model.ActivityEvent{Type: model.EventPlanConfirmed})
	return suggestions, nil
}

// acquire marks an item busy and returns its current value.
func (m *CalendarModel) acquire(id int64) (model.ContentItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := m.indexLocked(id)
	if idx < 0 {
		return model.ContentItem{}, model.ErrItemNotFound
	}
	if _, busy := m.busy[id]; busy {
		return model.ContentItem{}, model.ErrItemBusy
	}
	m.busy[id] = struct{}{}
	return m.items[idx], nil
}

func (m *CalendarModel) release(id int64) {
	m.mu.Lock()
	delete(m.busy, id)
	m.mu.Unlock()
}

func (m *CalendarModel) indexLocked(id int64) int {
	for i := range m.items {
		if m.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (m *CalendarModel) nextGen() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	return m.gen
}

// replaceAll commits a wholesale load started at gen. When a later load has
// started since, the result is stale and the current calendar is returned.
func (m *CalendarModel) replaceAll(gen uint64, items []model.ContentItem) []model.ContentItem {
	next := make([]model.ContentItem, len(items))
	copy(next, items)
	SortByDay(next)

	m.mu.Lock()
	if gen == m.gen {
		m.items = next
	} else {
		next = m.items
	}
	out := make([]model.ContentItem, len(next))
	copy(out, next)
	m.mu.Unlock()
	return out
}

// replaceOne swaps the item with the given id. If a regenerate removed the
// id in the meantime there is nothing to patch.
func (m *CalendarModel) replaceOne(id int64, item model.ContentItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if idx := m.indexLocked(id); idx >= 0 {
		m.items[idx] = item
	}
}

// Items returns a copy of the calendar sorted by day.
func (m *CalendarModel) Items() []model.ContentItem {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.ContentItem, len(m.items))
	copy(out, m.items)
	return out
}

// Busy reports whether an action or save is in flight for the item.
func (m *CalendarModel) Busy(id int64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.busy[id]
	return ok
}

func (m *CalendarModel) FilterByPlatform(p model.Platform) []model.ContentItem {
	return FilterByPlatform(m.Items(), p)
}

func (m *CalendarModel) PlatformDistribution() map[model.Platform]int {
	return PlatformDistribution(m.Items())
}

func (m *CalendarModel) PublishedSplit() dto.PublishedSplit {
	return SplitPublished(m.Items())
}

func (m *CalendarModel) Upcoming(n int) []model.ContentItem {
	return Upcoming(m.Items(), n)
}
