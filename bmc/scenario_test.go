package bmc_test

import (
	"io"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	"github.com/crillab/countdown/bmc"
	"github.com/crillab/countdown/bmc/bmcfakes"
	"github.com/crillab/countdown/countdown"
	"github.com/crillab/countdown/smt"
)

var _ = Describe("Solving countdown puzzles", func() {
	var (
		logger *logrus.Logger
		sys    *countdown.System
	)

	BeforeEach(func() {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	})

	build := func(cfg countdown.Config) {
		ctx, err := smt.NewContext()
		Expect(err).NotTo(HaveOccurred())
		sys, err = countdown.New(ctx, cfg)
		Expect(err).NotTo(HaveOccurred())
	}

	solve := func(timeout time.Duration, options ...bmc.Option) bmc.Result {
		d, err := bmc.New(sys, append([]bmc.Option{bmc.WithLogger(logger)}, options...)...)
		Expect(err).NotTo(HaveOccurred())
		return d.Solve(timeout)
	}

	// replay computes the value left by the actions of a trace.
	replay := func(trace *countdown.Trace) []int64 {
		var stack []int64
		used := make(map[int]bool)
		for _, a := range trace.Actions() {
			if a.Push {
				Expect(used).NotTo(HaveKey(a.Slot))
				used[a.Slot] = true
				stack = append(stack, a.Value)
				continue
			}
			Expect(len(stack)).To(BeNumerically(">=", 2))
			e1, e2 := stack[len(stack)-1], stack[len(stack)-2]
			stack = append(stack[:len(stack)-2], a.Op.Apply(e1, e2))
		}
		return stack
	}

	Context("with an exact solution", func() {
		BeforeEach(func() {
			build(countdown.Config{
				Numbers:          []int64{1, 5, 6, 7, 13, 25},
				Target:           200,
				Bits:             countdown.DefaultBits,
				OverflowChecking: true,
			})
		})

		It("finds a shortest trace reaching the target", func() {
			res := solve(time.Minute, bmc.WithMaxSteps(sys.MaxSteps()))
			Expect(res.Verdict).To(Equal(bmc.Found))
			Expect(res.Steps).To(BeNumerically("<=", 11))
			Expect(res.Steps % 2).To(Equal(1))

			trace, ok := res.Trace.(*countdown.Trace)
			Expect(ok).To(BeTrue())
			Expect(trace.Steps).To(HaveLen(res.Steps + 1))
			Expect(replay(trace)).To(Equal([]int64{200}))
			value, ok := trace.Result()
			Expect(ok).To(BeTrue())
			Expect(value).To(Equal(int64(200)))
			for _, step := range trace.Steps {
				Expect(step.Stack()).To(HaveLen(step.Pointer))
			}
		})

		It("renders the solution", func() {
			res := solve(time.Minute, bmc.WithMaxSteps(sys.MaxSteps()))
			Expect(res.Verdict).To(Equal(bmc.Found))
			Expect(res.Trace.String()).To(HavePrefix("init "))
			Expect(res.Trace.String()).To(ContainSubstring(" 200|"))
		})
	})

	Context("without an exact solution", func() {
		BeforeEach(func() {
			build(countdown.Config{
				Numbers:          []int64{2, 3},
				Target:           100,
				Bits:             8,
				OverflowChecking: true,
			})
		})

		It("proves that no trace reaches the target", func() {
			res := solve(0, bmc.WithMaxSteps(sys.MaxSteps()))
			Expect(res.Verdict).To(Equal(bmc.Exhausted))
			Expect(res.Trace).To(BeNil())
		})

		It("proves it for every smaller bound too", func() {
			for n := 0; n <= sys.MaxSteps(); n++ {
				Expect(solve(0, bmc.WithMaxSteps(n)).Verdict).To(Equal(bmc.Exhausted), "bound %d", n)
			}
		})

		It("finds the closest approximation", func() {
			res := solve(time.Minute, bmc.WithConfig(bmc.Config{MaxSteps: sys.MaxSteps(), Approximate: true}))
			Expect(res.Verdict).To(Equal(bmc.Approximate))
			Expect(res.Steps).To(Equal(3))
			Expect(res.Distance).To(Equal(uint64(94)))

			trace, ok := res.Trace.(*countdown.Trace)
			Expect(ok).To(BeTrue())
			top, ok := trace.Top()
			Expect(ok).To(BeTrue())
			Expect(top).To(Equal(int64(6)))
			Expect(replay(trace)).To(Equal([]int64{6}))
		})
	})

	Context("with a target out of reach of small numbers", func() {
		BeforeEach(func() {
			build(countdown.Config{
				Numbers:          []int64{1, 2},
				Target:           10,
				Bits:             8,
				OverflowChecking: true,
			})
		})

		It("settles for the sum", func() {
			Expect(solve(0, bmc.WithMaxSteps(sys.MaxSteps())).Verdict).To(Equal(bmc.Exhausted))

			res := solve(0, bmc.WithMaxSteps(sys.MaxSteps()), bmc.WithApproximation(true))
			Expect(res.Verdict).To(Equal(bmc.Approximate))
			Expect(res.Distance).To(Equal(uint64(7)))
			trace, ok := res.Trace.(*countdown.Trace)
			Expect(ok).To(BeTrue())
			Expect(replay(trace)).To(Equal([]int64{3}))
		})
	})

	Context("without starting numbers", func() {
		BeforeEach(func() {
			build(countdown.Config{
				Target:           10,
				Bits:             8,
				OverflowChecking: true,
			})
		})

		It("is exhausted right away", func() {
			Expect(sys.MaxSteps()).To(BeZero())
			res := solve(0, bmc.WithMaxSteps(sys.MaxSteps()))
			Expect(res.Verdict).To(Equal(bmc.Exhausted))
			Expect(res.Steps).To(BeZero())
			Expect(res.Trace).To(BeNil())
		})

		It("is as far as possible from the target", func() {
			res := solve(0, bmc.WithMaxSteps(sys.MaxSteps()), bmc.WithApproximation(true))
			Expect(res.Verdict).To(Equal(bmc.Approximate))
			Expect(res.Distance).To(Equal(uint64(255)))
			trace, ok := res.Trace.(*countdown.Trace)
			Expect(ok).To(BeTrue())
			_, ok = trace.Top()
			Expect(ok).To(BeFalse())
		})
	})

	Context("in simulation", func() {
		var session *bmcfakes.FakeSession

		BeforeEach(func() {
			build(countdown.Config{
				Numbers:          []int64{4, 4},
				Target:           0,
				Bits:             8,
				OverflowChecking: true,
			})
			// Spy on a real session.
			solver := smt.NewSolver(sys.Context())
			session = &bmcfakes.FakeSession{}
			session.AddCalls(solver.Add)
			session.PushCalls(solver.Push)
			session.PopCalls(solver.Pop)
			session.CheckCalls(solver.Check)
			session.ModelCalls(solver.Model)
			session.SetTimeoutCalls(solver.SetTimeout)
		})

		It("unrolls every step without any goal", func() {
			res := solve(0,
				bmc.WithMaxSteps(sys.MaxSteps()),
				bmc.WithSimulation(true),
				bmc.WithSessions(func() bmc.Session { return session }),
			)
			Expect(res.Verdict).To(Equal(bmc.Found))
			Expect(res.Steps).To(Equal(3))
			Expect(session.PushCallCount()).To(BeZero())
			Expect(session.CheckCallCount()).To(Equal(4))

			trace, ok := res.Trace.(*countdown.Trace)
			Expect(ok).To(BeTrue())
			Expect(trace.Steps).To(HaveLen(4))
			Expect(replay(trace)).To(HaveLen(1))
		})
	})
})
