package orchestrator

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQueueFIFOOrder(t *testing.T) {
	Convey("Given a queue with several pushed frames", t, func() {
		q := NewQueue(4)
		ctx := context.Background()
		_ = q.Push(ctx, "EXP")
		_ = q.Push(ctx, "WP$5 7")
		_ = q.Push(ctx, "FP")

		Convey("Pop returns them in the order they were pushed", func() {
			first, ok := q.Pop(ctx)
			So(ok, ShouldBeTrue)
			So(first, ShouldEqual, "EXP")

			second, _ := q.Pop(ctx)
			So(second, ShouldEqual, "WP$5 7")

			third, _ := q.Pop(ctx)
			So(third, ShouldEqual, "FP")
		})
	})
}

func TestQueueCloseIsShutdownSentinel(t *testing.T) {
	Convey("Given a queue that is closed after draining", t, func() {
		q := NewQueue(1)
		ctx := context.Background()
		_ = q.Push(ctx, "QQQQQQ")
		q.Close()

		Convey("The last pushed frame is still delivered", func() {
			frame, ok := q.Pop(ctx)
			So(ok, ShouldBeTrue)
			So(frame, ShouldEqual, "QQQQQQ")
		})

		Convey("Popping again reports closure rather than blocking", func() {
			_, _ = q.Pop(ctx)
			_, ok := q.Pop(ctx)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestQueuePopRespectsContextCancellation(t *testing.T) {
	Convey("Given an empty queue and an already-cancelled context", t, func() {
		q := NewQueue(1)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		Convey("Pop returns immediately without a frame", func() {
			_, ok := q.Pop(ctx)
			So(ok, ShouldBeFalse)
		})
	})
}
