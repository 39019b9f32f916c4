package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/frontier/config"
	"github.com/katalvlaran/frontier/explore"
	"github.com/katalvlaran/frontier/gridgraph"
)

// ErrTickBudget indicates a run that did not complete within its tick budget.
var ErrTickBudget = errors.New("sim: tick budget exhausted before exploration completed")

// Option configures a Simulation.
type Option func(*Simulation)

// WithLogger sets the logger of the simulation and of its Explorer.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithExploreOptions forwards options to the Explorer.
func WithExploreOptions(opts ...explore.Option) Option {
	return func(s *Simulation) { s.exploreOpts = append(s.exploreOpts, opts...) }
}

// Simulation steps an Explorer against a World, a Drone and a marker registry.
// Each Step runs one explorer tick, moves the drone, then reports markers the
// drone has just touched; the explorer sees those arrivals on the next tick.
type Simulation struct {
	Layout   gridgraph.Layout
	World    *World
	Drone    *Drone
	Markers  *Markers
	Explorer *explore.Explorer

	cfg         config.Config
	logger      *log.Logger
	exploreOpts []explore.Option
	touching    map[uuid.UUID]struct{}
	steps       int
}

// New builds a simulation from cfg. The world is empty; add obstacles
// through s.World before the first Step.
func New(cfg config.Config, start orb.Point, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	layout, err := gridgraph.NewLayout(cfg.MapSize, cfg.CellSize)
	if err != nil {
		return nil, err
	}
	world, err := NewWorld(cfg.ProbeStep)
	if err != nil {
		return nil, err
	}
	drone, err := NewDrone(start, cfg.AgentSpeed)
	if err != nil {
		return nil, err
	}
	markers, err := NewMarkers(cfg.ArrivalRadius)
	if err != nil {
		return nil, err
	}
	s := &Simulation{
		Layout:   layout,
		World:    world,
		Drone:    drone,
		Markers:  markers,
		cfg:      cfg,
		logger:   log.New(io.Discard, "", 0),
		touching: make(map[uuid.UUID]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	eopts := append([]explore.Option{explore.WithLogger(s.logger)}, s.exploreOpts...)
	s.Explorer, err = explore.New(layout, cfg.SensorRange, drone, world, markers, eopts...)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Steps returns how many steps have run.
func (s *Simulation) Steps() int { return s.steps }

// Step runs one simulation step.
func (s *Simulation) Step(ctx context.Context) error {
	if err := s.Explorer.Tick(ctx); err != nil {
		return err
	}
	s.steps++
	if s.Explorer.Done() {
		return nil
	}
	s.Drone.Step()
	s.emitArrivals()
	return nil
}

// emitArrivals notifies the explorer once per marker when the drone starts
// touching it.
func (s *Simulation) emitArrivals() {
	now := s.Markers.Touching(s.Drone.Position())
	seen := make(map[uuid.UUID]struct{}, len(now))
	for _, id := range now {
		seen[id] = struct{}{}
		if _, already := s.touching[id]; already {
			continue
		}
		s.Explorer.NotifyArrival(id)
	}
	s.touching = seen
}

// Run steps until exploration completes, ctx is cancelled or the configured
// tick budget runs out (ErrTickBudget).
func (s *Simulation) Run(ctx context.Context) error {
	for s.steps < s.cfg.MaxTicks {
		if err := s.Step(ctx); err != nil {
			return err
		}
		if s.Explorer.Done() {
			st := s.Explorer.Stats()
			s.logger.Printf("[SIM] [INFO] completed after %d steps, flew %.1f units, %d markers spawned, %d waypoints",
				s.steps, s.Drone.Flown(), s.Markers.Spawned(), st.Waypoints)
			return nil
		}
	}
	return fmt.Errorf("%w: %d ticks", ErrTickBudget, s.cfg.MaxTicks)
}
