// Package coordinator implements ExchangeCoordinator, the stateful
// orchestrator that binds N sibling exchanges to one adaptive shuffle plan.
// Registration, estimation, and plan memoization are all serialized through
// a single mutex, matching the coordinator's "estimate exactly once, then
// serve memoized results" lifecycle.
package coordinator

import (
	"context"
	"fmt"
	"log"
	"reflect"
	"sync"

	"github.com/go-sif/shuffleplan"
	"github.com/go-sif/shuffleplan/errors"
	"github.com/go-sif/shuffleplan/estimation"
	"github.com/go-sif/shuffleplan/internal/broadcast"
	"github.com/go-sif/shuffleplan/internal/coalesce"
	"github.com/go-sif/shuffleplan/logging"
	"github.com/go-sif/shuffleplan/metrics"
	uuid "github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
)

// state is the coordinator's lifecycle state, advanced exactly once from
// Open to Estimating to Planned over the coordinator's lifetime.
type state int

const (
	stateOpen state = iota
	stateEstimating
	statePlanned
)

// Coordinator is the ExchangeCoordinator: it gathers per-partition byte
// statistics from its registered exchanges' upstream shuffles, runs the
// Coalescer or BroadcastDecider exactly once, and memoizes one
// PostShufflePlan per exchange.
type Coordinator struct {
	id        string
	cfg       shuffleplan.CoordinatorConfig
	scheduler shuffleplan.Scheduler
	logger    logrus.FieldLogger

	mu        sync.Mutex
	state     state
	exchanges []shuffleplan.Exchange
	deps      []shuffleplan.ShuffleDependency
	plans     map[int]shuffleplan.PostShufflePlan
	mappings  map[int]*coalesce.Mapping
	poisonErr error
	stats     estimation.Stats
}

// Option configures optional aspects of a Coordinator at construction time.
type Option func(*Coordinator)

// WithLogger overrides the coordinator's default logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Coordinator) { c.logger = logger }
}

// New creates a Coordinator for one downstream operator instance. cfg is
// fixed for the coordinator's lifetime; scheduler is the external
// collaborator used to submit map stages during estimation.
func New(cfg shuffleplan.CoordinatorConfig, scheduler shuffleplan.Scheduler, opts ...Option) *Coordinator {
	id, err := uuid.NewV4()
	if err != nil {
		log.Fatalf("shuffleplan: failed to generate coordinator id: %v", err)
	}
	c := &Coordinator{
		id:        id.String(),
		cfg:       cfg,
		scheduler: scheduler,
		logger:    logging.NewLogger(logrus.InfoLevel),
		exchanges: make([]shuffleplan.Exchange, 0, cfg.NumExchanges),
		plans:     make(map[int]shuffleplan.PostShufflePlan),
		mappings:  make(map[int]*coalesce.Mapping),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register adds exchange to this coordinator's registration list, returning
// the stable integer id the exchange must hold onto (instead of a reference
// back to the coordinator's internals) to call PlanFor later. Registering
// after estimation has begun, registering more exchanges than cfg.NumExchanges
// expects, or registering the same exchange twice is a programming error and
// panics rather than returning an error.
func (c *Coordinator) Register(exchange shuffleplan.Exchange) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != stateOpen {
		log.Panicf("shuffleplan: cannot register exchange on coordinator %s after estimation has begun", c.id)
	}
	if uint32(len(c.exchanges)) >= c.cfg.NumExchanges {
		log.Panicf("shuffleplan: coordinator %s expects %d exchanges, cannot register another", c.id, c.cfg.NumExchanges)
	}
	if t := reflect.TypeOf(exchange); t != nil && t.Comparable() {
		for _, existing := range c.exchanges {
			if existing == exchange {
				log.Panicf("shuffleplan: exchange already registered with coordinator %s", c.id)
			}
		}
	}
	id := len(c.exchanges)
	c.exchanges = append(c.exchanges, exchange)
	c.logger.WithFields(logrus.Fields{"coordinator": c.id, "exchange": id}).Debug("exchange registered")
	return id
}

// PlanFor returns the PostShufflePlan for the given exchange id. The first
// call across all exchanges registered with this coordinator triggers the
// estimation pass; every later call, on any exchange, observes the memoized
// result (or the poisoning error, if estimation failed).
func (c *Coordinator) PlanFor(ctx context.Context, exchangeID int) (shuffleplan.PostShufflePlan, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != statePlanned {
		c.estimateLocked(ctx)
	}
	if c.poisonErr != nil {
		return shuffleplan.PostShufflePlan{}, c.poisonErr
	}
	plan, ok := c.plans[exchangeID]
	if !ok {
		return shuffleplan.PostShufflePlan{}, errors.UnregisteredExchangeError{ExchangeID: exchangeID}
	}
	return plan, nil
}

// MappingFor lazily builds and memoizes the CoalescedMapping for exchangeID's
// post-shuffle plan: a reverse index answering "which post-shuffle partition
// owns pre-shuffle partition p?" in O(1). Triggers estimation on first call
// exactly like PlanFor. Broadcast plans don't partition P into disjoint
// ranges, so this returns an error for an exchange holding a broadcast plan.
func (c *Coordinator) MappingFor(ctx context.Context, exchangeID int) (*coalesce.Mapping, error) {
	plan, err := c.PlanFor(ctx, exchangeID)
	if err != nil {
		return nil, err
	}
	if plan.IsBroadcast() {
		return nil, fmt.Errorf("exchange %d holds a broadcast plan, which has no coalesced mapping", exchangeID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.mappings[exchangeID]; ok {
		return m, nil
	}
	startIndices := make([]uint32, len(plan.Partitions))
	for i, part := range plan.Partitions {
		startIndices[i] = part.PreStart
	}
	numPre := plan.Partitions[len(plan.Partitions)-1].PreEnd
	m := coalesce.NewMapping(numPre, startIndices)
	c.mappings[exchangeID] = m
	return m, nil
}

// Stats exposes the most recent estimation pass's runtime statistics, for
// introspection and testing. Returns a zero-value Stats until estimation has run.
func (c *Coordinator) Stats() estimation.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// estimateLocked performs the Open -> Estimating -> Planned transition. The
// caller must hold c.mu; it is held for the duration of estimation,
// including the blocking wait on map-stage futures, deliberately
// serializing any concurrent duplicate attempts.
func (c *Coordinator) estimateLocked(ctx context.Context) {
	c.state = stateEstimating
	c.stats.Start()
	defer func() { c.state = statePlanned }()

	if uint32(len(c.exchanges)) != c.cfg.NumExchanges {
		c.poison(errors.UnexpectedRegistrationCountError{
			Expected: c.cfg.NumExchanges,
			Actual:   uint32(len(c.exchanges)),
		})
		return
	}

	deps, err := c.prepareDependencies()
	if err != nil {
		c.poison(err)
		return
	}
	c.deps = deps

	stats, err := c.submitAndAwait(ctx, deps)
	if err != nil {
		c.poison(err)
		return
	}

	if err := validateConsistentPartitionCounts(stats); err != nil {
		c.poison(err)
		return
	}

	c.decideLocked(stats)
}

// prepareDependencies materializes every registered exchange's
// ShuffleDependency, in registration order.
func (c *Coordinator) prepareDependencies() ([]shuffleplan.ShuffleDependency, error) {
	deps := make([]shuffleplan.ShuffleDependency, len(c.exchanges))
	for i, exchange := range c.exchanges {
		dep, err := exchange.PrepareShuffleDependency()
		if err != nil {
			return nil, errors.UpstreamStageFailedError{Cause: fmt.Errorf("exchange %d: %w", i, err)}
		}
		deps[i] = dep
	}
	return deps, nil
}

// decideLocked runs the trivial/broadcast/coalesce decision tree described
// in the ExchangeCoordinator estimation procedure and populates c.plans.
func (c *Coordinator) decideLocked(stats []*shuffleplan.MapOutputStatistics) {
	if len(stats) == 0 {
		for i, dep := range c.deps {
			c.plans[i] = shuffleplan.NewTrivialPlan(dep.NumPreShufflePartitions())
		}
		c.stats.Finish(estimation.DecisionTrivial, 0, 1)
		metrics.EstimationsTotal.WithLabelValues("trivial").Inc()
		c.logger.WithField("coordinator", c.id).Info("estimation complete: no statistics, trivial plan")
		return
	}

	var bytesObserved int64
	for _, s := range stats {
		bytesObserved += s.Total()
	}
	metrics.BytesObserved.Observe(float64(bytesObserved))

	if side := c.broadcastSideLocked(stats); side != broadcast.SideNone {
		numMapTasks := c.deps[side.LargeSide()].UpstreamPartitionCount()
		preShuffle := [2]uint32{c.deps[0].NumPreShufflePartitions(), c.deps[1].NumPreShufflePartitions()}
		small, large := broadcast.Plans(side, numMapTasks, preShuffle)
		c.plans[side.SmallSide()] = small
		c.plans[side.LargeSide()] = large
		c.stats.Finish(estimation.DecisionBroadcast, bytesObserved, int(numMapTasks))
		metrics.EstimationsTotal.WithLabelValues("broadcast").Inc()
		c.logger.WithFields(logrus.Fields{"coordinator": c.id, "broadcastSide": side.SmallSide()}).Info("estimation complete: broadcast plan")
		return
	}

	startIndices := coalesce.StartIndices(stats, c.cfg.TargetBytes, c.cfg.MinPartitions)
	for i, dep := range c.deps {
		c.plans[i] = shuffleplan.NewCoalescedPlan(startIndices, dep.NumPreShufflePartitions())
	}
	c.stats.Finish(estimation.DecisionCoalesce, bytesObserved, len(startIndices))
	metrics.CoalesceSplits.Observe(float64(len(startIndices)))
	metrics.EstimationsTotal.WithLabelValues("coalesce").Inc()
	c.logger.WithFields(logrus.Fields{"coordinator": c.id, "postPartitions": len(startIndices)}).Info("estimation complete: coalesced plan")
}

// broadcastSideLocked returns the BroadcastDecider's verdict, or SideNone if
// the coordinator isn't eligible for broadcast at all.
func (c *Coordinator) broadcastSideLocked(stats []*shuffleplan.MapOutputStatistics) broadcast.Side {
	if !c.cfg.IsTwoInputJoin || !c.cfg.Broadcast.Enabled || c.cfg.NumExchanges != 2 || len(stats) != 2 {
		return broadcast.SideNone
	}
	var pair [2]*shuffleplan.MapOutputStatistics
	copy(pair[:], stats)
	return broadcast.Decide(pair, c.cfg.Broadcast.Threshold)
}

// poison records err as the coordinator's terminal failure: every
// subsequent PlanFor call re-raises it without attempting estimation again.
func (c *Coordinator) poison(err error) {
	c.poisonErr = err
	metrics.PoisonedTotal.WithLabelValues(fmt.Sprintf("%T", err)).Inc()
	c.logger.WithFields(logrus.Fields{"coordinator": c.id, "error": err}).Error("estimation failed, coordinator poisoned")
}
