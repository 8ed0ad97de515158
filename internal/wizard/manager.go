package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bookeasy-app/booking-api/internal/domain/booking"
	"github.com/bookeasy-app/booking-api/internal/httperr"
	"github.com/bookeasy-app/booking-api/internal/identity"
)

// ConfirmedFunc is invoked after a wizard session successfully confirms a
// booking. Failures in the hook never fail the confirmation itself.
type ConfirmedFunc func(ctx context.Context, userID string, result *booking.SubmittedBooking)

// Manager hosts the live wizard sessions. Each session belongs to one
// authenticated user; snapshots are written to the store after every
// mutation so a session survives a process restart.
type Manager struct {
	store        Store
	scheduler    booking.Scheduler
	availability AvailabilityService
	provider     identity.Provider
	opts         Options
	ttl          time.Duration
	onConfirmed  ConfirmedFunc

	mu   sync.Mutex
	live map[string]*session
}

type session struct {
	wiz    *Wizard
	userID string
}

func NewManager(
	store Store,
	scheduler booking.Scheduler,
	availability AvailabilityService,
	provider identity.Provider,
	opts Options,
	ttl time.Duration,
) *Manager {

	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	return &Manager{
		store:        store,
		scheduler:    scheduler,
		availability: availability,
		provider:     provider,
		opts:         opts,
		ttl:          ttl,
		live:         make(map[string]*session),
	}
}

// OnConfirmed registers the post-confirmation hook. Must be called before
// the manager starts serving.
func (m *Manager) OnConfirmed(fn ConfirmedFunc) {
	m.onConfirmed = fn
}

// ===============================
// Lifecycle
// ===============================

// Start opens a new wizard session for the user and returns its id.
func (m *Manager) Start(ctx context.Context, userID string) (string, *Wizard, error) {
	sessionID := uuid.NewString()

	sess := &session{
		wiz: New(
			m.scheduler,
			m.availability,
			m.userSource(userID),
			m.opts,
		),
		userID: userID,
	}

	m.mu.Lock()
	m.live[sessionID] = sess
	m.mu.Unlock()

	if err := m.persist(ctx, sessionID, sess); err != nil {
		// the caller never learns the id, keeping the session would leak it
		m.mu.Lock()
		delete(m.live, sessionID)
		m.mu.Unlock()
		return "", nil, err
	}

	return sessionID, sess.wiz, nil
}

// Resolve returns the live wizard for a session id, rehydrating it from the
// store when the process no longer holds it in memory.
func (m *Manager) Resolve(ctx context.Context, sessionID string) (*Wizard, error) {
	sess, err := m.resolve(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sess.wiz, nil
}

func (m *Manager) resolve(ctx context.Context, sessionID string) (*session, error) {
	m.mu.Lock()
	sess, ok := m.live[sessionID]
	m.mu.Unlock()

	if ok {
		return sess, nil
	}

	snap, err := m.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sess = &session{
		wiz: Restore(
			snap,
			m.scheduler,
			m.availability,
			m.userSource(snap.UserID),
			m.opts,
		),
		userID: snap.UserID,
	}

	m.mu.Lock()
	// another request may have rehydrated concurrently; keep the first
	if existing, ok := m.live[sessionID]; ok {
		sess = existing
	} else {
		m.live[sessionID] = sess
	}
	m.mu.Unlock()

	return sess, nil
}

// Describe returns the current state of a session, including the owning
// user id.
func (m *Manager) Describe(ctx context.Context, sessionID string) (Snapshot, error) {
	sess, err := m.resolve(ctx, sessionID)
	if err != nil {
		return Snapshot{}, err
	}

	snap := sess.wiz.Snapshot()
	snap.UserID = sess.userID
	return snap, nil
}

// Discard ends a session and drops its persisted snapshot.
func (m *Manager) Discard(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	sess, ok := m.live[sessionID]
	delete(m.live, sessionID)
	m.mu.Unlock()

	if ok {
		sess.wiz.Cancel()
	}

	return m.store.Delete(ctx, sessionID)
}

// ===============================
// Session operations
// ===============================

func (m *Manager) SelectService(
	ctx context.Context,
	sessionID string,
	service booking.Service,
) ([]booking.DateOption, error) {

	sess, err := m.resolve(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	dates, opErr := sess.wiz.SelectService(ctx, service)
	if err := m.persist(ctx, sessionID, sess); err != nil && opErr == nil {
		return nil, err
	}

	return dates, opErr
}

func (m *Manager) SelectDate(
	ctx context.Context,
	sessionID string,
	date booking.DateOption,
) ([]booking.TimeSlot, error) {

	sess, err := m.resolve(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	slots, opErr := sess.wiz.SelectDate(ctx, date)
	if err := m.persist(ctx, sessionID, sess); err != nil && opErr == nil {
		return nil, err
	}

	return slots, opErr
}

func (m *Manager) RefreshSlots(
	ctx context.Context,
	sessionID string,
) ([]booking.TimeSlot, error) {

	sess, err := m.resolve(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	slots, opErr := sess.wiz.RefreshSlots(ctx)
	if err := m.persist(ctx, sessionID, sess); err != nil && opErr == nil {
		return nil, err
	}

	return slots, opErr
}

func (m *Manager) SelectTime(
	ctx context.Context,
	sessionID string,
	slot booking.TimeSlot,
) error {

	sess, err := m.resolve(ctx, sessionID)
	if err != nil {
		return err
	}

	opErr := sess.wiz.SelectTime(ctx, slot)
	if err := m.persist(ctx, sessionID, sess); err != nil && opErr == nil {
		return err
	}

	return opErr
}

func (m *Manager) Confirm(
	ctx context.Context,
	sessionID string,
) (*booking.SubmittedBooking, error) {

	sess, err := m.resolve(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result, opErr := sess.wiz.Confirm(ctx)

	if err := m.persist(ctx, sessionID, sess); err != nil && opErr == nil {
		return nil, err
	}

	if opErr == nil && result != nil && m.onConfirmed != nil {
		m.onConfirmed(ctx, sess.userID, result)
	}

	return result, opErr
}

func (m *Manager) Cancel(ctx context.Context, sessionID string) error {
	sess, err := m.resolve(ctx, sessionID)
	if err != nil {
		return err
	}

	sess.wiz.Cancel()
	return m.persist(ctx, sessionID, sess)
}

func (m *Manager) persist(ctx context.Context, sessionID string, sess *session) error {
	snap := sess.wiz.Snapshot()
	snap.UserID = sess.userID
	return m.store.Save(ctx, sessionID, snap, m.ttl)
}

// userSource binds a session to the user it was started for. The identity is
// looked up fresh at confirm time so a deleted account fails closed.
func (m *Manager) userSource(userID string) SessionSource {
	return sessionSourceFunc(func(ctx context.Context) (*booking.Identity, error) {
		if userID == "" {
			return nil, httperr.ErrBusiness(httperr.CodeUnauthenticated)
		}
		ident, err := m.provider.Lookup(ctx, userID)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeUnauthenticated)
		}
		return ident, nil
	})
}

type sessionSourceFunc func(ctx context.Context) (*booking.Identity, error)

func (f sessionSourceFunc) Current(ctx context.Context) (*booking.Identity, error) {
	return f(ctx)
}
