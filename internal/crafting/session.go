package crafting

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/osse101/craftlab/internal/domain"
	"github.com/osse101/craftlab/internal/event"
	"github.com/osse101/craftlab/internal/logger"
	"github.com/osse101/craftlab/internal/repository"
)

// State is the crafting session state
type State int

const (
	StateIdle State = iota
	StateMatched
	StateCrafting
	StateResulted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMatched:
		return "matched"
	case StateCrafting:
		return "crafting"
	case StateResulted:
		return "resulted"
	default:
		return "unknown"
	}
}

// Session owns one slot buffer and drives it through
// Idle -> Matched -> Crafting -> Resulted -> Idle.
//
// Every operation is state-gated and reports whether it had an effect;
// operations that are unavailable in the current state are ignored, never errors.
// Events are published outside the session lock so handlers may call back in.
type Session struct {
	id      string
	store   repository.Recipes
	matcher Matcher
	bus     event.Bus
	delay   time.Duration
	now     func() time.Time

	// ctx bounds the pending craft; Close cancels it
	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	buffer    *SlotBuffer
	state     State
	match     *domain.Recipe
	result    *domain.Recipe
	firstFind bool
	startedAt time.Time
	craftSeq  uint64
	done      chan struct{}
	closed    bool
}

// NewSession opens a session. Cancelling ctx has the same effect on a pending
// craft as Close. bus may be nil when nobody listens.
func NewSession(ctx context.Context, store repository.Recipes, matcher Matcher, bus event.Bus, delay time.Duration) *Session {
	id := logger.NewSessionID()
	sessionCtx, cancel := context.WithCancel(logger.WithSessionID(ctx, id))

	done := make(chan struct{})
	close(done)

	s := &Session{
		id:      id,
		store:   store,
		matcher: matcher,
		bus:     bus,
		delay:   delay,
		now:     time.Now,
		ctx:     sessionCtx,
		cancel:  cancel,
		buffer:  NewSlotBuffer(),
		state:   StateIdle,
		done:    done,
	}

	s.log().Debug(LogMsgSessionOpened, "delay", delay)
	return s
}

// ID returns the session id carried on every event and log line
func (s *Session) ID() string {
	return s.id
}

// AddToken stages an ingredient. Unknown ids are accepted and simply never match.
func (s *Session) AddToken(ctx context.Context, ingredientID string) bool {
	return s.mutate(ctx, func(b *SlotBuffer) bool {
		b.Add(ingredientID)
		s.log().Debug(LogMsgTokenAdded, "ingredient", ingredientID, "slots", b.Len())
		return true
	})
}

// RemoveAt removes the token at pos; out of range is a no-op
func (s *Session) RemoveAt(ctx context.Context, pos int) bool {
	return s.mutate(ctx, func(b *SlotBuffer) bool {
		if !b.RemoveAt(pos) {
			return false
		}
		s.log().Debug(LogMsgTokenRemoved, "position", pos, "slots", b.Len())
		return true
	})
}

// Clear empties the buffer
func (s *Session) Clear(ctx context.Context) bool {
	return s.mutate(ctx, func(b *SlotBuffer) bool {
		if !b.Clear() {
			return false
		}
		s.log().Debug(LogMsgBufferCleared)
		return true
	})
}

// mutate applies fn to the buffer when the state allows it and re-runs the matcher
func (s *Session) mutate(ctx context.Context, fn func(b *SlotBuffer) bool) bool {
	s.mu.Lock()
	if s.closed || (s.state != StateIdle && s.state != StateMatched) {
		state := s.state
		s.mu.Unlock()
		s.log().Debug(LogMsgMutationRejected, "state", state)
		return false
	}
	if !fn(s.buffer) {
		s.mu.Unlock()
		return false
	}
	evt, changed := s.rematchLocked(ctx)
	s.mu.Unlock()

	if changed {
		s.publish(ctx, evt)
	}
	return true
}

// rematchLocked re-evaluates the buffer and returns a match.changed event when
// the matched recipe differs from before. The match carries the store's
// current progress, not the catalog definition.
func (s *Session) rematchLocked(ctx context.Context) (event.Event, bool) {
	tokens := s.buffer.Tokens()
	var next *domain.Recipe
	if r, ok := s.matcher.Match(tokens); ok {
		r = s.progressSnapshot(ctx, r)
		next = &r
	}

	prev := s.match
	s.match = next
	if next != nil {
		s.state = StateMatched
	} else {
		s.state = StateIdle
	}

	if sameRecipe(prev, next) {
		return event.Event{}, false
	}

	if next != nil {
		s.log().Info(LogMsgMatchChanged, "recipe_id", next.ID)
	} else {
		s.log().Debug(LogMsgMatchChanged, "recipe_id", nil)
	}
	return NewMatchChangedEvent(s.id, copyRecipe(next), tokens), true
}

// progressSnapshot returns def with the store's discovery progress. On a
// store miss or error def is returned unchanged.
func (s *Session) progressSnapshot(ctx context.Context, def domain.Recipe) domain.Recipe {
	snap, err := s.store.GetRecipe(ctx, def.ID)
	if err != nil || snap == nil {
		s.log().Debug(LogMsgProgressUnavailable, "recipe_id", def.ID, "error", err)
		return def
	}
	return *snap
}

func sameRecipe(a, b *domain.Recipe) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID
}

func copyRecipe(r *domain.Recipe) *domain.Recipe {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

// Craft starts the crafting delay for the matched recipe. It is a no-op unless
// the session is Matched. The result is committed asynchronously; Done reports when.
func (s *Session) Craft(ctx context.Context) bool {
	s.mu.Lock()
	if s.closed || s.state != StateMatched || s.match == nil {
		state := s.state
		s.mu.Unlock()
		s.log().Debug(LogMsgCraftRejected, "state", state)
		return false
	}

	recipe := *s.match
	s.state = StateCrafting
	s.startedAt = s.now()
	s.craftSeq++
	seq := s.craftSeq
	done := make(chan struct{})
	s.done = done
	startedAt := s.startedAt
	s.mu.Unlock()

	s.log().Info(LogMsgCraftStarted, "recipe_id", recipe.ID, "delay", s.delay)
	s.publish(ctx, NewCraftStartedEvent(s.id, recipe.ID, startedAt, s.delay))

	go s.runCraft(seq, recipe.ID, done)
	return true
}

// runCraft waits out the delay, then commits or cancels the pending craft
func (s *Session) runCraft(seq uint64, recipeID string, done chan struct{}) {
	defer close(done)

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		s.complete(seq)
	case <-s.ctx.Done():
		s.abandon(seq, recipeID, s.cancelReason())
	}
}

func (s *Session) cancelReason() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return CancelReasonSessionClosed
	}
	return CancelReasonContextDone
}

// complete commits the craft through the store's single mutation path.
// The session lock is held across RecordCraft so Close cannot interleave
// between the liveness check and the commit.
func (s *Session) complete(seq uint64) {
	s.mu.Lock()
	if s.craftSeq != seq || s.state != StateCrafting || s.match == nil {
		s.mu.Unlock()
		return
	}
	if s.ctx.Err() != nil {
		recipeID := s.match.ID
		s.mu.Unlock()
		s.abandon(seq, recipeID, s.cancelReason())
		return
	}

	recipeID := s.match.ID
	record, err := s.store.RecordCraft(s.ctx, recipeID)
	if err != nil {
		s.state = StateMatched
		s.mu.Unlock()

		s.log().Error(LogMsgRecordCraftFailed, "recipe_id", recipeID, "error", err)
		s.publish(context.WithoutCancel(s.ctx), NewCraftCancelledEvent(s.id, recipeID, CancelReasonStoreFailed))
		return
	}

	tokens := s.buffer.Tokens()
	s.buffer.Clear()
	result := record.Recipe
	s.result = &result
	s.firstFind = record.FirstDiscovery
	s.match = nil
	s.state = StateResulted
	s.mu.Unlock()

	log := s.log()
	log.Info(LogMsgCraftCompleted,
		"recipe_id", result.ID,
		"times_completed", result.TimesCompleted,
		"tokens", len(tokens))

	ctx := context.WithoutCancel(s.ctx)
	s.publish(ctx, NewCraftCompletedEvent(s.id, result, record.FirstDiscovery))
	if record.FirstDiscovery {
		log.Info(LogMsgRecipeDiscovered, "recipe_id", result.ID, "name", result.Name)
		s.publish(ctx, NewRecipeDiscoveredEvent(s.id, result))
	}
	s.publish(ctx, NewMatchChangedEvent(s.id, nil, nil))
}

// abandon returns a pending craft to Matched without touching the store.
// The buffer is untouched, so the match still holds.
func (s *Session) abandon(seq uint64, recipeID, reason string) {
	s.mu.Lock()
	if s.craftSeq != seq || s.state != StateCrafting {
		s.mu.Unlock()
		return
	}
	s.state = StateMatched
	s.mu.Unlock()

	s.log().Info(LogMsgCraftCancelled, "recipe_id", recipeID, "reason", reason)
	s.publish(context.WithoutCancel(s.ctx), NewCraftCancelledEvent(s.id, recipeID, reason))
}

// DismissResult acknowledges the result and returns the session to Idle
func (s *Session) DismissResult(ctx context.Context) bool {
	s.mu.Lock()
	if s.closed || s.state != StateResulted {
		s.mu.Unlock()
		return false
	}
	s.state = StateIdle
	s.result = nil
	s.firstFind = false
	s.mu.Unlock()

	s.log().Debug(LogMsgResultDismissed)
	return true
}

// Close ends the session. A pending craft is cancelled without committing;
// every later operation is a no-op. Close is idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.cancel()
	s.mu.Unlock()

	s.log().Debug(LogMsgSessionClosed)
}

// Closed reports whether Close has been called
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// State returns the current state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Match returns the currently matched recipe, if any
func (s *Session) Match() (domain.Recipe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.match == nil {
		return domain.Recipe{}, false
	}
	return *s.match, true
}

// Result returns the committed recipe while the session is Resulted
func (s *Session) Result() (domain.Recipe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return domain.Recipe{}, false
	}
	return *s.result, true
}

// FirstDiscovery reports whether the shown result was the recipe's first discovery,
// as recorded by the store
func (s *Session) FirstDiscovery() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result != nil && s.firstFind
}

// Tokens returns a copy of the staged tokens
func (s *Session) Tokens() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buffer.Tokens()
}

// StartedAt returns when the current or last craft started; zero if none has
func (s *Session) StartedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startedAt
}

// Done returns a channel closed once the most recent craft has resolved.
// It is already closed when no craft is pending.
func (s *Session) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

func (s *Session) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		s.log().Error(LogMsgPublishEventFailed, "type", evt.Type, "error", err)
	}
}

func (s *Session) log() *slog.Logger {
	return logger.FromContext(s.ctx)
}
