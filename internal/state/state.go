// Package state holds the dashboard's application state: life metrics, music,
// finance, the goal/note/todo/checklist collections and the active modal.
//
// An Aggregator is created per dashboard and passed to whatever needs it.
// It is safe for concurrent use; hold timer callbacks run on their own
// goroutines. Close must be called when the dashboard goes away.
package state

import (
	"sort"
	"sync"
	"time"

	"github.com/manav03panchal/lifedash/internal/errors"
	"github.com/manav03panchal/lifedash/internal/logging"
	"github.com/manav03panchal/lifedash/internal/model"
	"github.com/manav03panchal/lifedash/internal/storage"
	"github.com/manav03panchal/lifedash/internal/timer"
)

// Metric defaults.
const (
	DefaultWaterIntake = 6
	DefaultWaterGoal   = 8
	DefaultSleepTime   = "23:00"
	DefaultWakeTime    = "07:12"
	DefaultStepsToday  = 8432
	DefaultStepsGoal   = 10000
)

// DefaultCollapsedProjects are the project groups collapsed on a fresh
// dashboard.
var DefaultCollapsedProjects = []int{2, 3}

// Options configures a new Aggregator.
type Options struct {
	// Clock schedules hold timer callbacks. Nil uses the real clock.
	Clock timer.Clock
	// HoldDelay and HoldInterval tune press-and-hold repeats.
	HoldDelay    time.Duration
	HoldInterval time.Duration
	// WaterGoal and StepsGoal override the metric goals when positive.
	WaterGoal int
	StepsGoal int
	// Now stamps collection entities. Nil uses time.Now.
	Now func() time.Time
	// SeedLedger fills the transaction ledger with sample entries.
	SeedLedger bool
}

// Aggregator is the single source of truth for dashboard state.
type Aggregator struct {
	mu     sync.Mutex
	closed bool

	db *storage.DB

	goals      *storage.Collection[*model.Goal]
	notes      *storage.Collection[*model.Note]
	todos      *storage.Collection[*model.Todo]
	checklists *storage.Collection[*model.Checklist]
	ledger     *storage.Collection[*model.Transaction]

	metrics   Metrics
	music     Music
	collapsed map[int]bool

	modal    ActiveModal
	selected *model.Transaction

	holds   [holdKindCount]*timer.Hold
	holding [holdKindCount]bool

	now     func() time.Time
	changes chan struct{}
}

// New creates an Aggregator with every value at its default.
func New(opts Options) (*Aggregator, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.WaterGoal <= 0 {
		opts.WaterGoal = DefaultWaterGoal
	}
	if opts.StepsGoal <= 0 {
		opts.StepsGoal = DefaultStepsGoal
	}
	if opts.HoldDelay <= 0 {
		opts.HoldDelay = timer.DefaultDelay
	}
	if opts.HoldInterval <= 0 {
		opts.HoldInterval = timer.DefaultInterval
	}

	db, err := storage.OpenInMemory()
	if err != nil {
		return nil, errors.NewSystemErrorWithOp("state.New", "failed to open state store", err)
	}

	a := &Aggregator{
		db: db,
		metrics: Metrics{
			WaterIntake: DefaultWaterIntake,
			WaterGoal:   opts.WaterGoal,
			SleepTime:   DefaultSleepTime,
			WakeTime:    DefaultWakeTime,
			StepsToday:  DefaultStepsToday,
			StepsGoal:   opts.StepsGoal,
		},
		music:     Music{Track: Playlist[0]},
		collapsed: make(map[int]bool),
		now:       opts.Now,
		changes:   make(chan struct{}, 1),
	}
	for _, id := range DefaultCollapsedProjects {
		a.collapsed[id] = true
	}
	for i := range a.holds {
		a.holds[i] = timer.NewHold(opts.Clock, opts.HoldDelay, opts.HoldInterval)
	}

	if err := a.openCollections(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if opts.SeedLedger {
		if err := a.ledger.Replace(sampleLedger(opts.Now())); err != nil {
			_ = a.Close()
			return nil, errors.NewSystemErrorWithOp("state.New", "failed to seed ledger", err)
		}
	}
	return a, nil
}

func (a *Aggregator) openCollections() error {
	var err error
	if a.goals, err = storage.NewCollection(a.db, model.PrefixGoal, func() *model.Goal { return &model.Goal{} }); err != nil {
		return err
	}
	if a.notes, err = storage.NewCollection(a.db, model.PrefixNote, func() *model.Note { return &model.Note{} }); err != nil {
		return err
	}
	if a.todos, err = storage.NewCollection(a.db, model.PrefixTodo, func() *model.Todo { return &model.Todo{} }); err != nil {
		return err
	}
	if a.checklists, err = storage.NewCollection(a.db, model.PrefixChecklist, func() *model.Checklist { return &model.Checklist{} }); err != nil {
		return err
	}
	if a.ledger, err = storage.NewCollection(a.db, model.PrefixTransaction, func() *model.Transaction { return &model.Transaction{} }); err != nil {
		return err
	}
	for _, c := range []interface{ SetClock(func() time.Time) }{a.goals, a.notes, a.todos, a.checklists, a.ledger} {
		c.SetClock(a.now)
	}
	return nil
}

// Close cancels every armed hold timer and releases the state store.
// Each armed timer is cancelled exactly once; later calls do nothing.
func (a *Aggregator) Close() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	a.modal = ActiveModal{}
	for i, h := range a.holds {
		if h.Stop() {
			logging.DebugLog("hold cancelled on close", "hold", HoldKind(i).String())
		}
		a.holding[i] = false
	}
	a.mu.Unlock()

	var errs []error
	for _, c := range []interface{ Close() error }{a.goals, a.notes, a.todos, a.checklists, a.ledger} {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := a.db.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Closed reports whether Close has been called.
func (a *Aggregator) Closed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.closed
}

// Changes delivers a value whenever state changes outside a direct call,
// such as a hold timer tick. Deliveries coalesce.
func (a *Aggregator) Changes() <-chan struct{} {
	return a.changes
}

func (a *Aggregator) notify() {
	select {
	case a.changes <- struct{}{}:
	default:
	}
}

// =============================================================================
// Modals
// =============================================================================

// Modal returns the active modal.
func (a *Aggregator) Modal() ActiveModal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.modal
}

// Flags returns one flag per modal.
func (a *Aggregator) Flags() ModalFlags {
	return a.Modal().Flags()
}

// IsAnyModalOpen reports whether any modal or editor is showing.
func (a *Aggregator) IsAnyModalOpen() bool {
	return a.Flags().Any()
}

// OpenModal shows the modal of the given kind, replacing any open modal.
// Entity editors open for a new entity; use OpenNoteEditor and friends to
// edit an existing one.
func (a *Aggregator) OpenModal(kind ModalKind) {
	a.setModal(ActiveModal{Kind: kind})
}

// SetModal replaces the active modal.
func (a *Aggregator) SetModal(m ActiveModal) {
	a.setModal(m)
}

// CloseModal hides the active modal. Closing the transaction detail clears
// the selected transaction.
func (a *Aggregator) CloseModal() {
	a.mu.Lock()
	kind := a.modal.Kind
	a.mu.Unlock()
	a.closeModal(kind)
}

func (a *Aggregator) setModal(m ActiveModal) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.modal.Kind == ModalTransactionDetail && m.Kind != ModalTransactionDetail {
		a.selected = nil
	}
	a.modal = m
	logging.DebugLog("modal changed", logging.KeyModal, m.Kind.String())
}

// closeModal closes the modal only if it is still of the given kind.
func (a *Aggregator) closeModal(kind ModalKind) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.modal.Kind != kind {
		return
	}
	if kind == ModalTransactionDetail {
		a.selected = nil
	}
	a.modal = ActiveModal{}
}

// =============================================================================
// Projects
// =============================================================================

// IsProjectCollapsed reports whether the project group is collapsed.
func (a *Aggregator) IsProjectCollapsed(id int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.collapsed[id]
}

// ToggleProject flips the collapsed state of a project group.
func (a *Aggregator) ToggleProject(id int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.collapsed[id] {
		delete(a.collapsed, id)
	} else {
		a.collapsed[id] = true
	}
}

// CollapsedProjects returns the collapsed project ids in ascending order.
func (a *Aggregator) CollapsedProjects() []int {
	a.mu.Lock()
	defer a.mu.Unlock()
	ids := make([]int, 0, len(a.collapsed))
	for id := range a.collapsed {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// SetCollapsedProjects replaces the collapsed project set.
func (a *Aggregator) SetCollapsedProjects(ids []int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.collapsed = make(map[int]bool, len(ids))
	for _, id := range ids {
		a.collapsed[id] = true
	}
}
