package anim_test

import (
	"context"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/glide/internal/anim"
	"github.com/san-kum/glide/internal/easing"
	"github.com/san-kum/glide/internal/frame"
	"github.com/san-kum/glide/internal/reactive"
	"github.com/san-kum/glide/internal/tween"
)

const eps = 1e-9

// driver feeds targets to a numeric output through a signal, the way a UI
// would.
type driver struct {
	platform *frame.Manual
	sched    *frame.Scheduler
	next     *reactive.Signal[anim.Target[float64]]
	out      *anim.Output[float64, float64]
}

func newDriver(initial float64) *driver {
	d := &driver{platform: frame.NewManual(time.Time{})}
	d.sched = frame.New(d.platform)
	d.next = reactive.NewSignal(anim.To(initial))
	d.out = anim.NewNumber(d.sched, d.next.Get, d.next)
	return d
}

func (d *driver) set(v float64, opts ...anim.Option) { d.next.Set(anim.To(v, opts...)) }

func linear(dur time.Duration, m anim.Mode) []anim.Option {
	return []anim.Option{anim.WithDuration(dur), anim.WithEasing(easing.Linear), anim.WithMode(m)}
}

var _ = Describe("Output", func() {
	var d *driver

	BeforeEach(func() {
		d = newDriver(0)
	})

	Describe("construction", func() {
		It("starts static at the initial target without scheduling", func() {
			Expect(d.out.Status()).To(Equal(anim.StatusStatic))
			Expect(d.out.Read()).To(Equal(0.0))
			Expect(d.platform.Registrations()).To(Equal(0))
			Expect(d.sched.Subscribers()).To(Equal(1))
		})

		It("panics on misuse", func() {
			src := func() anim.Target[float64] { return anim.To(1.0) }
			Expect(func() { anim.NewNumber(nil, src) }).To(PanicWith(anim.ErrNoScheduler))
			Expect(func() { anim.NewNumber[float64](d.sched, nil) }).To(PanicWith(anim.ErrNilSource))
			Expect(func() {
				anim.New[float64, float64](d.sched, src, nil, tween.Subtract[float64])
			}).To(PanicWith(anim.ErrNilTween))
		})

		It("binds through a context", func() {
			ctx := frame.WithScheduler(context.Background(), d.sched)
			src := func() anim.Target[float64] { return anim.To(3.0) }
			out := anim.FromContext(ctx, src, tween.Linear[float64](), tween.Subtract[float64])
			Expect(out.Read()).To(Equal(3.0))

			Expect(func() {
				anim.FromContext(context.Background(), src, tween.Linear[float64](), tween.Subtract[float64])
			}).To(PanicWith(anim.ErrNoScheduler))
		})
	})

	Describe("transitions", func() {
		It("starts a record from static", func() {
			d.set(10, linear(time.Second, anim.Start)...)
			Expect(d.out.Status()).To(Equal(anim.StatusRunning))
			Expect(d.out.Records()).To(Equal(1))
			Expect(d.out.Target()).To(Equal(10.0))
			Expect(d.sched.Pending()).To(BeTrue())
		})

		It("treats ReplaceOrStart like Start when idle", func() {
			d.set(10, linear(time.Second, anim.ReplaceOrStart)...)
			Expect(d.out.Status()).To(Equal(anim.StatusRunning))
			Expect(d.out.Records()).To(Equal(1))
		})

		It("treats ReplaceOrSnap like Snap when idle", func() {
			d.set(7, linear(time.Second, anim.ReplaceOrSnap)...)
			Expect(d.out.Status()).To(Equal(anim.StatusSnap))
			Expect(d.out.Records()).To(Equal(0))
			Expect(d.out.Read()).To(Equal(7.0))
			Expect(d.out.Status()).To(Equal(anim.StatusStatic))
		})

		It("layers Start records newest first", func() {
			d.set(10, linear(time.Second, anim.Start)...)
			d.platform.Step(250 * time.Millisecond)
			d.set(20, linear(time.Second, anim.Start)...)
			Expect(d.out.Records()).To(Equal(2))
			Expect(d.out.Target()).To(Equal(20.0))
		})

		It("steers the newest record on replace", func() {
			d.set(10, linear(time.Second, anim.Start)...)
			d.platform.Step(250 * time.Millisecond)
			d.set(30, linear(time.Second, anim.ReplaceOrSnap)...)
			Expect(d.out.Status()).To(Equal(anim.StatusRunning))
			Expect(d.out.Records()).To(Equal(1))
			Expect(d.out.Target()).To(Equal(30.0))
		})

		It("prunes finished records before applying a target", func() {
			d.set(10, linear(time.Second, anim.Start)...)
			d.platform.Advance(2 * time.Second)
			d.set(5, linear(time.Second, anim.ReplaceOrSnap)...)
			Expect(d.out.Status()).To(Equal(anim.StatusSnap))
			Expect(d.out.Read()).To(Equal(5.0))
		})
	})

	Describe("blending", func() {
		It("interpolates a single linear record", func() {
			d.set(10, linear(time.Second, anim.Start)...)
			d.platform.Step(500 * time.Millisecond)
			Expect(d.out.Read()).To(BeNumerically("~", 5, eps))
		})

		It("settles exactly and stops scheduling", func() {
			d.set(10, linear(time.Second, anim.Start)...)
			d.platform.Step(500 * time.Millisecond)
			d.platform.Step(600 * time.Millisecond)
			Expect(d.out.Value()).To(Equal(10.0))
			Expect(d.out.Status()).To(Equal(anim.StatusSnap))

			regs := d.platform.Registrations()
			Expect(d.out.Read()).To(Equal(10.0))
			Expect(d.out.Status()).To(Equal(anim.StatusStatic))
			Expect(d.out.Read()).To(Equal(10.0))
			Expect(d.platform.Step(time.Second)).To(Equal(0))
			Expect(d.platform.Registrations()).To(Equal(regs))
			Expect(d.sched.Pending()).To(BeFalse())
		})

		It("keeps the value continuous when Start retargets mid-flight", func() {
			d.set(10, linear(time.Second, anim.Start)...)
			d.platform.Step(500 * time.Millisecond)
			before := d.out.Read()

			d.set(20, linear(time.Second, anim.Start)...)
			Expect(d.out.Read()).To(BeNumerically("~", before, eps))
			Expect(d.out.Records()).To(Equal(2))
		})

		It("converges on the last target after overlapping starts", func() {
			for i, v := range []float64{10, -4, 25, 3} {
				d.set(v, anim.WithDuration(time.Duration(i+1)*300*time.Millisecond), anim.WithEasing(easing.BackOut))
				d.platform.Step(100 * time.Millisecond)
			}
			for d.sched.Pending() {
				d.platform.Step(16 * time.Millisecond)
			}
			Expect(d.out.Value()).To(Equal(3.0))
			Expect(d.out.Records()).To(Equal(0))
		})

		It("converges on a replaced target", func() {
			d.set(10, linear(time.Second, anim.Start)...)
			d.platform.Step(500 * time.Millisecond)
			d.set(20, linear(time.Second, anim.ReplaceOrStart)...)
			Expect(d.out.Records()).To(Equal(1))

			d.platform.Step(time.Second)
			Expect(d.out.Read()).To(Equal(20.0))
		})

		It("tolerates overshooting easings", func() {
			d.set(10, anim.WithDuration(time.Second), anim.WithEasing(easing.BackOut))
			peak := 0.0
			for i := 0; i < 70; i++ {
				d.platform.Step(16 * time.Millisecond)
				if v := d.out.Value(); v > peak {
					peak = v
				}
			}
			Expect(peak).To(BeNumerically(">", 10))
		})

		It("finishes zero duration targets on the first read", func() {
			d.set(10, anim.WithDuration(0))
			Expect(d.out.Read()).To(Equal(10.0))
			Expect(d.out.Records()).To(Equal(0))
		})
	})

	Describe("snap", func() {
		It("discards every record and reads the snapped value once", func() {
			d.set(10, linear(time.Second, anim.Start)...)
			d.platform.Step(100 * time.Millisecond)
			d.set(20, linear(time.Second, anim.Start)...)
			d.platform.Step(100 * time.Millisecond)
			Expect(d.out.Records()).To(Equal(2))

			d.set(-1, anim.WithMode(anim.Snap))
			Expect(d.out.Records()).To(Equal(0))
			Expect(d.out.Status()).To(Equal(anim.StatusSnap))
			Expect(d.out.Read()).To(Equal(-1.0))
			Expect(d.out.Status()).To(Equal(anim.StatusStatic))
		})

		It("settles in the next frame", func() {
			d.set(4, anim.WithMode(anim.Snap))
			Expect(d.platform.Step(16 * time.Millisecond)).To(Equal(1))
			Expect(d.out.Value()).To(Equal(4.0))
			Expect(d.out.Status()).To(Equal(anim.StatusStatic))
			Expect(d.sched.Pending()).To(BeFalse())
		})
	})

	Describe("pruning", func() {
		It("never grows the record queue between frames", func() {
			for _, v := range []float64{1, 2, 3} {
				d.set(v, anim.WithDuration(time.Duration(v)*200*time.Millisecond))
				d.platform.Step(50 * time.Millisecond)
			}
			last := d.out.Records()
			for d.sched.Pending() {
				d.platform.Step(40 * time.Millisecond)
				n := d.out.Records()
				Expect(n).To(BeNumerically("<=", last))
				if d.out.Status() != anim.StatusRunning {
					Expect(n).To(Equal(0))
				} else {
					Expect(n).To(BeNumerically(">", 0))
				}
				last = n
			}
		})
	})

	Describe("scheduling", func() {
		It("shares one registration between outputs", func() {
			other := reactive.NewSignal(anim.To(0.0))
			second := anim.NewNumber(d.sched, other.Get, other)

			d.set(10)
			other.Set(anim.To(5.0))
			Expect(d.platform.Registrations()).To(Equal(1))

			d.platform.Step(100 * time.Millisecond)
			Expect(d.out.Value()).To(BeNumerically(">", 0))
			Expect(second.Value()).To(BeNumerically(">", 0))
			Expect(d.platform.Registrations()).To(Equal(2))
		})

		It("notifies watchers after every output in the frame updated", func() {
			other := reactive.NewSignal(anim.To(0.0))
			second := anim.NewNumber(d.sched, other.Get, other)

			var seen []float64
			d.out.Watch(func() { seen = append(seen, second.Value()) })

			d.set(10, linear(time.Second, anim.Start)...)
			other.Set(anim.To(10.0, linear(time.Second, anim.Start)...))
			d.platform.Step(500 * time.Millisecond)

			Expect(seen).To(HaveLen(1))
			Expect(seen[0]).To(BeNumerically("~", 5, eps))
		})

		It("does not notify when nothing changed", func() {
			calls := 0
			d.out.Watch(func() { calls++ })
			d.sched.RequestFrame()
			d.platform.Step(16 * time.Millisecond)
			Expect(calls).To(Equal(0))
		})
	})

	Describe("dispose", func() {
		It("detaches from the scheduler and sources", func() {
			d.set(10, linear(time.Second, anim.Start)...)
			d.platform.Step(500 * time.Millisecond)
			d.out.Dispose()
			d.out.Dispose()

			Expect(d.out.Disposed()).To(BeTrue())
			Expect(d.sched.Subscribers()).To(Equal(0))
			Expect(d.out.Records()).To(Equal(0))

			d.set(99)
			Expect(d.out.Read()).To(BeNumerically("~", 5, eps))
		})

		It("stops firing once the scheduler is disposed", func() {
			d.set(10)
			d.sched.Dispose()
			Expect(d.platform.Pending()).To(Equal(0))
			Expect(d.platform.Step(time.Second)).To(Equal(0))
		})
	})

	Describe("custom tweens", func() {
		It("blends colours through HCL", func() {
			blend, err := tween.Color(tween.HCL)
			Expect(err).NotTo(HaveOccurred())

			red := colorful.Color{R: 1}
			blue := colorful.Color{B: 1}
			sig := reactive.NewSignal(anim.To(red))
			out := anim.New(d.sched, sig.Get, blend, tween.ColorDiff, sig)

			sig.Set(anim.To(blue, anim.WithDuration(time.Second)))
			d.platform.Step(2 * time.Second)
			got := out.Read()
			Expect(got.R).To(BeNumerically("~", blue.R, 1e-4))
			Expect(got.B).To(BeNumerically("~", blue.B, 1e-4))
		})

		It("splices text", func() {
			sig := reactive.NewSignal(anim.To("abcd"))
			out := anim.New[string, string](d.sched, sig.Get, tween.Splice, tween.Keep[string], sig)

			sig.Set(anim.To("wxyz", linear(time.Second, anim.Start)...))
			d.platform.Step(500 * time.Millisecond)
			Expect(out.Value()).To(Equal("wxcd"))
			d.platform.Step(600 * time.Millisecond)
			Expect(out.Value()).To(Equal("wxyz"))
		})

		It("moves vectors componentwise", func() {
			sig := reactive.NewSignal(anim.To(tween.Vec2{}))
			out := anim.NewVector(d.sched, sig.Get, sig)

			sig.Set(anim.To(tween.Vec2{X: 10, Y: -10}, linear(time.Second, anim.Start)...))
			d.platform.Step(250 * time.Millisecond)
			Expect(out.Value().X).To(BeNumerically("~", 2.5, eps))
			Expect(out.Value().Y).To(BeNumerically("~", -2.5, eps))
		})
	})
})

var _ = Describe("Mode", func() {
	DescribeTable("round trips through its name",
		func(m anim.Mode) {
			got, err := anim.ParseMode(m.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(m))
		},
		Entry("start", anim.Start),
		Entry("replace-or-start", anim.ReplaceOrStart),
		Entry("replace-or-snap", anim.ReplaceOrSnap),
		Entry("snap", anim.Snap),
	)

	It("rejects unknown names", func() {
		_, err := anim.ParseMode("bounce")
		Expect(err).To(MatchError(anim.ErrUnknownMode))
	})

	It("fills defaults in To", func() {
		t := anim.To(1)
		Expect(t.Duration).To(Equal(anim.DefaultDuration))
		Expect(t.Mode).To(Equal(anim.DefaultMode))
		Expect(t.Easing).NotTo(BeNil())
	})
})
