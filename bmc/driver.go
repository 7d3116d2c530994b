package bmc

import (
	"time"

	"github.com/crillab/countdown/smt"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// A Driver searches for traces of a transition system reaching its goal.
type Driver struct {
	system        TransitionSystem
	maxSteps      int
	approximate   bool
	simulation    bool
	newSession    func() Session
	newOptimizer  func() Optimizer
	logger        logrus.FieldLogger
	metrics       *Metrics
	maxStepsIsSet bool
}

// Option configures a Driver.
type Option func(d *Driver) error

// New returns a driver for system.
// The bound of the unrolling must be given, with WithMaxSteps or WithConfig.
func New(system TransitionSystem, options ...Option) (*Driver, error) {
	if system == nil {
		return nil, errors.New("no transition system")
	}
	d := Driver{system: system}
	for _, option := range append(options, defaults...) {
		if err := option(&d); err != nil {
			return nil, err
		}
	}
	return &d, nil
}

// WithMaxSteps sets the bound of the unrolling.
func WithMaxSteps(n int) Option {
	return func(d *Driver) error {
		if n < 0 {
			return errors.Errorf("invalid bound %d: must not be negative", n)
		}
		d.maxSteps = n
		d.maxStepsIsSet = true
		return nil
	}
}

// WithApproximation enables the optimization phase.
func WithApproximation(enabled bool) Option {
	return func(d *Driver) error {
		d.approximate = enabled
		return nil
	}
}

// WithSimulation makes the driver unroll the system without checking its goal.
func WithSimulation(enabled bool) Option {
	return func(d *Driver) error {
		d.simulation = enabled
		return nil
	}
}

// WithConfig applies the bound, approximation and simulation settings of cfg.
// The timeout of cfg is given to Solve.
func WithConfig(cfg Config) Option {
	return func(d *Driver) error {
		for _, option := range []Option{
			WithMaxSteps(cfg.MaxSteps),
			WithApproximation(cfg.Approximate),
			WithSimulation(cfg.Simulation),
		} {
			if err := option(d); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithSessions sets the factory of the sessions of the exact phase.
func WithSessions(newSession func() Session) Option {
	return func(d *Driver) error {
		d.newSession = newSession
		return nil
	}
}

// WithOptimizers sets the factory of the sessions of the optimization phase.
func WithOptimizers(newOptimizer func() Optimizer) Option {
	return func(d *Driver) error {
		d.newOptimizer = newOptimizer
		return nil
	}
}

// WithLogger sets the logger of the driver. The standard logrus logger is used by default.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(d *Driver) error {
		d.logger = logger
		return nil
	}
}

// WithMetrics sets where the driver records its checks and verdicts.
// A nil m disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(d *Driver) error {
		d.metrics = m
		return nil
	}
}

var defaults = []Option{
	func(d *Driver) error {
		if !d.maxStepsIsSet {
			return errors.New("no bound given for the unrolling")
		}
		return nil
	},
	func(d *Driver) error {
		if d.newSession == nil {
			ctx := d.system.Context()
			d.newSession = func() Session { return smt.NewSolver(ctx) }
		}
		return nil
	},
	func(d *Driver) error {
		if d.newOptimizer == nil {
			ctx := d.system.Context()
			d.newOptimizer = func() Optimizer { return smt.NewOptimizer(ctx) }
		}
		return nil
	},
	func(d *Driver) error {
		if d.logger == nil {
			d.logger = logrus.StandardLogger()
		}
		return nil
	},
}

// MaxSteps returns the bound of the unrolling.
func (d *Driver) MaxSteps() int {
	return d.maxSteps
}

// Solve searches for a trace of at most MaxSteps steps reaching the goal.
// The exact phase and the optimization phase each get timeout to run;
// a zero or negative timeout means no limit.
func (d *Driver) Solve(timeout time.Duration) Result {
	start := time.Now()
	d.logger.WithFields(logrus.Fields{
		"system":      d.system.String(),
		"maxSteps":    d.maxSteps,
		"approximate": d.approximate,
		"simulation":  d.simulation,
		"timeout":     timeout,
	}).Info("starting bounded model checking")

	var res Result
	if d.simulation {
		res = d.simulate(deadline(timeout))
	} else {
		res = d.solveExact(deadline(timeout))
		if res.Verdict != Found && d.approximate {
			if approx, ok := d.solveApprox(timeout); ok {
				res = approx
			}
		}
	}
	res.Elapsed = time.Since(start)
	d.metrics.observeVerdict(res.Verdict)
	d.logger.WithFields(logrus.Fields{
		"verdict": res.Verdict,
		"steps":   res.Steps,
		"elapsed": res.Elapsed,
	}).Info("bounded model checking done")
	return res
}

func deadline(timeout time.Duration) time.Time {
	if timeout <= 0 {
		return time.Time{}
	}
	return time.Now().Add(timeout)
}

// remaining returns the time left before dl, or false if it has passed.
// A zero dl means no limit.
func remaining(dl time.Time) (time.Duration, bool) {
	if dl.IsZero() {
		return 0, true
	}
	left := time.Until(dl)
	return left, left > 0
}

// check runs a check of s bounded by dl and records it.
func (d *Driver) check(s Session, dl time.Time) smt.Status {
	left, ok := remaining(dl)
	if !ok {
		return smt.Unknown
	}
	s.SetTimeout(left)
	start := time.Now()
	status := s.Check()
	d.metrics.observeCheck(exactPhase, status, time.Since(start))
	return status
}

// checkGoal checks whether goal can hold, in a scope of s closed before returning.
// The model is only returned when the status is Sat.
func (d *Driver) checkGoal(s Session, goal smt.Bool, dl time.Time) (smt.Status, *smt.Model) {
	s.Push()
	defer s.Pop()
	s.Add(goal)
	status := d.check(s, dl)
	if status != smt.Sat {
		return status, nil
	}
	return status, s.Model()
}

// solveExact looks for the shortest trace reaching the goal.
func (d *Driver) solveExact(dl time.Time) Result {
	s := d.newSession()
	s.Add(d.system.Initial())
	for step := 0; step <= d.maxSteps; step++ {
		log := d.logger.WithField("step", step)
		if _, ok := remaining(dl); !ok {
			log.Warn("time budget expired")
			return Result{Verdict: Inconclusive, Steps: step}
		}
		if goal, ok := d.system.Goal(step); ok {
			status, model := d.checkGoal(s, goal, dl)
			log.WithField("status", status).Debug("checked goal")
			switch status {
			case smt.Unknown:
				log.Warn("solver could not decide the goal")
				return Result{Verdict: Inconclusive, Steps: step}
			case smt.Sat:
				return Result{Verdict: Found, Steps: step, Trace: d.system.Render(model, step)}
			}
		}
		if step < d.maxSteps {
			s.Add(d.system.Transition(step))
			d.metrics.setDepth(step + 1)
		}
	}
	return Result{Verdict: Exhausted, Steps: d.maxSteps}
}

// simulate unrolls the system up to the bound, without any goal, and returns
// the trace the solver picks.
func (d *Driver) simulate(dl time.Time) Result {
	s := d.newSession()
	s.Add(d.system.Initial())
	for step := 0; step <= d.maxSteps; step++ {
		log := d.logger.WithField("step", step)
		if _, ok := remaining(dl); !ok {
			log.Warn("time budget expired")
			return Result{Verdict: Inconclusive, Steps: step}
		}
		status := d.check(s, dl)
		log.WithField("status", status).Debug("checked reachability")
		switch status {
		case smt.Unknown:
			log.Warn("solver could not decide reachability")
			return Result{Verdict: Inconclusive, Steps: step}
		case smt.Unsat:
			log.Info("no state is reachable")
			return Result{Verdict: Exhausted, Steps: step}
		}
		if step == d.maxSteps {
			return Result{Verdict: Found, Steps: step, Trace: d.system.Render(s.Model(), step)}
		}
		s.Add(d.system.Transition(step))
		d.metrics.setDepth(step + 1)
	}
	panic("unreachable")
}

// solveApprox looks for a trace of exactly MaxSteps steps minimizing the objective.
// It returns false if the system has no objective.
func (d *Driver) solveApprox(timeout time.Duration) (Result, bool) {
	objective, ok := d.system.Objective(d.maxSteps)
	if !ok {
		d.logger.Warn("approximation requested, but the system has no objective")
		return Result{}, false
	}
	d.logger.Info("no exact solution, looking for an approximate one")
	o := d.newOptimizer()
	if timeout > 0 {
		o.SetTimeout(timeout)
	}
	o.Add(d.system.Initial())
	for step := 0; step < d.maxSteps; step++ {
		o.Add(d.system.Transition(step))
	}
	o.Minimize(objective)
	start := time.Now()
	status := o.Check()
	d.metrics.observeCheck(approxPhase, status, time.Since(start))
	d.logger.WithField("status", status).Debug("optimized objective")
	switch status {
	case smt.Sat:
		model := o.Model()
		return Result{
			Verdict:  Approximate,
			Steps:    d.maxSteps,
			Trace:    d.system.Render(model, d.maxSteps),
			Distance: model.Uint(objective),
		}, true
	case smt.Unknown:
		return Result{Verdict: Inconclusive, Steps: d.maxSteps}, true
	default:
		return Result{Verdict: Exhausted, Steps: d.maxSteps}, true
	}
}
