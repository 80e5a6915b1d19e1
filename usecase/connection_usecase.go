package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"creatorflow/domain/model"
	"creatorflow/domain/repository"
	"creatorflow/infrastructure/logger"
)

// ConnectionsKey is the storage key holding the connection registry.
const ConnectionsKey = "cf_connections"

type storedConnection struct {
	Name string `json:"name"`
	TS   int64  `json:"ts"`
}

// ConnectionRegistry tracks simulated social account links. It lives only in
// client storage and is never synchronized with the backend.
type ConnectionRegistry struct {
	mu         sync.RWMutex
	store      repository.IKeyValueStore
	activity   IActivity
	delay      time.Duration
	now        func() time.Time
	records    map[model.Platform]model.ConnectionRecord
	connecting map[model.Platform]struct{}
}

func NewConnectionRegistry(store repository.IKeyValueStore, handshakeDelay time.Duration) *ConnectionRegistry {
	return &ConnectionRegistry{
		store:      store,
		activity:   noActivity{},
		delay:      handshakeDelay,
		now:        time.Now,
		records:    make(map[model.Platform]model.ConnectionRecord),
		connecting: make(map[model.Platform]struct{}),
	}
}

func (r *ConnectionRegistry) WithActivity(activity IActivity) *ConnectionRegistry {
	if activity != nil {
		r.activity = activity
	}
	return r
}

// Hydrate loads the persisted registry. Missing or malformed data yields an
// empty registry; unknown platform keys are dropped.
func (r *ConnectionRegistry) Hydrate(ctx context.Context) {
	records := make(map[model.Platform]model.ConnectionRecord)

	raw, ok, err := r.store.Get(ctx, ConnectionsKey)
	switch {
	case err != nil:
		logger.GetLogger().WithField("error", err).Warn("Failed to read stored connections")
	case ok:
		var stored map[string]storedConnection
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			logger.GetLogger().WithField("error", err).Warn("Stored connections are malformed, starting empty")
			break
		}
		for key, entry := range stored {
			p := model.Platform(key)
			if !p.Valid() {
				continue
			}
			records[p] = model.ConnectionRecord{Platform: p, DisplayName: entry.Name, ConnectedAt: entry.TS}
		}
	}

	r.mu.Lock()
	r.records = records
	r.mu.Unlock()
}

// Connect simulates the account handshake and records the connection.
// Connecting an already connected platform returns the existing record.
func (r *ConnectionRegistry) Connect(ctx context.Context, p model.Platform) (model.ConnectionRecord, error) {
	if !p.Valid() {
		return model.ConnectionRecord{}, model.ErrUnknownPlatform
	}

	r.mu.Lock()
	if rec, ok := r.records[p]; ok {
		r.mu.Unlock()
		return rec, nil
	}
	if _, busy := r.connecting[p]; busy {
		r.mu.Unlock()
		return model.ConnectionRecord{}, model.ErrAlreadyConnecting
	}
	r.connecting[p] = struct{}{}
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		delete(r.connecting, p)
		r.mu.Unlock()
	}()

	if r.delay > 0 {
		timer := time.NewTimer(r.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return model.ConnectionRecord{}, ctx.Err()
		case <-timer.C:
		}
	}

	rec := model.ConnectionRecord{
		Platform:    p,
		DisplayName: model.AccountHandle(p),
		ConnectedAt: r.now().UnixMilli(),
	}

	r.mu.Lock()
	r.records[p] = rec
	if err := r.persistLocked(ctx); err != nil {
		delete(r.records, p)
		r.mu.Unlock()
		return model.ConnectionRecord{}, err
	}
	r.mu.Unlock()

	r.activity.Emit(ctx, model.ActivityEvent{Type: model.EventAccountConnected, Platform: p})
	return rec, nil
}

// Disconnect removes the platform. Removing an absent platform is a no-op.
func (r *ConnectionRegistry) Disconnect(ctx context.Context, p model.Platform) error {
	if !p.Valid() {
		return model.ErrUnknownPlatform
	}

	r.mu.Lock()
	rec, ok := r.records[p]
	if !ok {
		r.mu.Unlock()
		return nil
	}
	delete(r.records, p)
	if err := r.persistLocked(ctx); err != nil {
		r.records[p] = rec
		r.mu.Unlock()
		return err
	}
	r.mu.Unlock()

	r.activity.Emit(ctx, model.ActivityEvent{Type: model.EventAccountDisconnected, Platform: p})
	return nil
}

func (r *ConnectionRegistry) persistLocked(ctx context.Context) error {
	stored := make(map[string]storedConnection, len(r.records))
	for p, rec := range r.records {
		stored[string(p)] = storedConnection{Name: rec.DisplayName, TS: rec.ConnectedAt}
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, ConnectionsKey, string(data)); err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to persist connections")
		return err
	}
	return nil
}

func (r *ConnectionRegistry) IsConnected(p model.Platform) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.records[p]
	return ok
}

// Connecting reports whether a handshake is in flight for the platform.
func (r *ConnectionRegistry) Connecting(p model.Platform) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.connecting[p]
	return ok
}

func (r *ConnectionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// Records lists connected accounts in platform display order.
func (r *ConnectionRegistry) Records() []model.ConnectionRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.ConnectionRecord, 0, len(r.records))
	for _, p := range model.Platforms() {
		if rec, ok := r.records[p]; ok {
			out = append(out, rec)
		}
	}
	return out
}
