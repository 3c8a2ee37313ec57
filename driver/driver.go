package driver

import (
	"context"
	"errors"

	"github.com/katalvlaran/parigo/pgame"
	"github.com/katalvlaran/parigo/reduce"
	"github.com/katalvlaran/parigo/zielonka"
)

// ErrNoSolver is returned by Run when no core solver has been configured
// (spec.md §7's "no solver configured" kind — distinguished from "fully
// solved" so callers don't mistake one for the other).
var ErrNoSolver = errors.New("driver: no solver configured")

// Solver is anything that can resolve a currently-enabled subgame. The
// concrete implementation in this repository is *zielonka.Solver, built
// through registry.
type Solver interface {
	Run(g *pgame.Game) map[int]zielonka.Verdict
}

// Driver owns the outer loop: one-time reductions, then repeated
// mask-sync / optional bottom-SCC restriction / solve / absorb / flush
// until the game is fully solved (spec.md §4.4).
type Driver struct {
	solver     Solver
	logger     Logger
	bottomSCC  bool
	skipReduce bool
	ctx        context.Context
	inflate    bool
	compress   bool
	renumber   bool
}

// Option configures a Driver at construction time.
type Option func(*Driver) error

// WithSolver sets the core solver the driver invokes every outer
// iteration. Required — New returns ErrNoSolver from Run if this is never
// set.
func WithSolver(s Solver) Option {
	return func(d *Driver) error {
		d.solver = s
		return nil
	}
}

// WithLogger overrides the default no-op Logger.
func WithLogger(l Logger) Option {
	return func(d *Driver) error {
		if l == nil {
			return errors.New("driver: WithLogger(nil)")
		}
		d.logger = l
		return nil
	}
}

// WithBottomSCC enables restricting every outer iteration's solver
// invocation to one terminal SCC of the unsolved subgame, instead of the
// whole thing (spec.md §4.4 step 2b).
func WithBottomSCC() Option {
	return func(d *Driver) error {
		d.bottomSCC = true
		return nil
	}
}

// WithoutReductions skips the one-time single-parity / self-loop /
// trivial-cycle pass entirely, handing the whole game straight to the
// outer solve loop. Mainly useful for tests that want to exercise the
// solver loop in isolation.
func WithoutReductions() Option {
	return func(d *Driver) error {
		d.skipReduce = true
		return nil
	}
}

// WithContext attaches a cancellation context checked once per outer
// iteration (spec.md §5's quality-of-implementation extension, grounded on
// the Ctx-per-iteration idiom of flow.Dinic and graph/algorithms.BFS/DFS).
func WithContext(ctx context.Context) Option {
	return func(d *Driver) error {
		if ctx == nil {
			return errors.New("driver: WithContext(nil)")
		}
		d.ctx = ctx
		return nil
	}
}

// WithInflate, WithCompress, WithRenumber select at most one priority
// transform to apply to the game before reductions/solving begin
// (spec.md §6.1's "opaque" transforms, specified in SPEC_FULL.md §6.1).
// The last one applied wins if more than one option is given.
func WithInflate() Option {
	return func(d *Driver) error { d.inflate, d.compress, d.renumber = true, false, false; return nil }
}

func WithCompress() Option {
	return func(d *Driver) error { d.inflate, d.compress, d.renumber = false, true, false; return nil }
}

func WithRenumber() Option {
	return func(d *Driver) error { d.inflate, d.compress, d.renumber = false, false, true; return nil }
}

// New constructs a Driver. Without WithLogger the logger is a no-op
// implementation rather than stdout, so library use never writes to the
// console unannounced.
func New(opts ...Option) (*Driver, error) {
	d := &Driver{logger: noopLogger{}, ctx: context.Background()}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Run drives g to a full solution: every vertex solved, every winning
// vertex's Strategy a valid witness edge. Grounded on Oink::run +
// Oink::solveLoop.
func (d *Driver) Run(g *pgame.Game) error {
	if d.solver == nil {
		return ErrNoSolver
	}

	switch {
	case d.inflate:
		k := g.Inflate()
		d.logger.Printf("parity game inflated (%d priorities)", k)
	case d.compress:
		k := g.Compress()
		d.logger.Printf("parity game compressed (%d priorities)", k)
	case d.renumber:
		k := g.Renumber()
		d.logger.Printf("parity game renumbered (%d priorities)", k)
	}

	if !d.skipReduce {
		if reduce.SingleParity(g) {
			d.logger.Printf("parity game only has one parity; solved directly")
		} else {
			if count := reduce.SelfLoops(g); count == 0 {
				d.logger.Printf("no self-loops removed")
			} else {
				d.logger.Printf("%d self-loop(s) removed", count)
			}

			if count := reduce.TrivialCycles(g); count == 0 {
				d.logger.Printf("no trivial cycles removed")
			} else {
				d.logger.Printf("%d trivial cycle(s) removed", count)
			}
		}
	}

	for !g.GameSolved() {
		if err := d.ctx.Err(); err != nil {
			return err
		}

		g.SyncDisabled()

		if d.bottomSCC {
			sel := bottomSCC(g, g.Disabled)
			for v := 0; v < g.N(); v++ {
				g.Disabled[v] = true
			}
			for _, v := range sel {
				g.Disabled[v] = false
			}
			d.logger.Printf("solving bottom SCC of %d vertices (%d left)", len(sel), g.CountUnsolved())
		}

		verdicts := d.solver.Run(g)
		for v, verdict := range verdicts {
			witness := pgame.NoStrategy
			if verdict.Winner == g.Owner[v] && verdict.Strategy >= 0 {
				witness = verdict.Strategy
			}
			g.Solve(v, verdict.Winner, witness)
		}
		g.Flush()

		if !d.bottomSCC {
			d.logger.Printf("%d vertices left", g.CountUnsolved())
		}
	}

	return nil
}
