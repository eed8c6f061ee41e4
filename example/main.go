package main

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/limpo1989/vector"
)

func main() {
	app := kingpin.New("example", "Exercise vector growth, insertion and comparison.")
	count := app.Flag("count", "Number of values to push.").Default("100").Int()
	usePool := app.Flag("pool", "Allocate buffers from a recycling pool instead of the heap.").Bool()
	poolSize := app.Flag("pool-size", "Maximum number of parked blocks in the pool.").Default("64").Int()
	maxSlots := app.Flag("max-slots", "Slot budget of the pool (0 = unlimited).").Default("0").Int()
	logLevel := app.Flag("log.level", "Only log messages with the given severity or above.").Default("info").Enum("debug", "info", "warn", "error")
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = level.NewFilter(logger, levelFilter(*logLevel))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	var allocator vector.Allocator[int] = vector.HeapAllocator[int]{}
	var pool *vector.Pool[int]
	if *usePool {
		pool = vector.NewPool[int](vector.WithPoolSize(*poolSize), vector.WithMaxSlots(*maxSlots))
		allocator = pool
	}

	if err := run(logger, allocator, *count); err != nil {
		level.Error(logger).Log("msg", "example failed", "err", err)
		os.Exit(1)
	}

	if pool != nil {
		stats := pool.Stats()
		level.Info(logger).Log("msg", "pool stats", "outstanding", stats.Outstanding, "pooled", stats.Pooled,
			"blocks", stats.Blocks, "allocs", stats.Allocs, "reused", stats.Reused)
	}
}

func levelFilter(name string) level.Option {
	switch name {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

func run(logger log.Logger, allocator vector.Allocator[int], count int) error {
	vec := vector.New(vector.WithAllocator(allocator))
	defer vec.Free()

	for i := 0; i < count; i++ {
		before := vec.Cap()
		if err := vec.PushBack(i); err != nil {
			return err
		}
		if vec.Cap() != before {
			level.Debug(logger).Log("msg", "grew", "len", vec.Len(), "from", before, "to", vec.Cap())
		}
	}

	slotSize := uint64(unsafe.Sizeof(int(0)))
	level.Info(logger).Log("msg", "pushed", "len", vec.Len(), "cap", vec.Cap(),
		"live", humanize.IBytes(uint64(vec.Len())*slotSize), "allocated", humanize.IBytes(uint64(vec.Cap())*slotSize))

	small := vector.Of(1, 2, 3)
	if _, err := small.Insert(small.Find(2), 9); err != nil {
		return err
	}
	fmt.Println("after insert:", small)

	if _, err := small.Erase(small.Find(9)); err != nil {
		return err
	}
	fmt.Println("after erase:", small)

	if err := small.Resize(5); err != nil {
		return err
	}
	fmt.Println("after resize:", small, "cap", small.Cap())

	a, b, c := vector.Of(1, 2), vector.Of(1, 2, 3), vector.Of(1, 3)
	fmt.Printf("%v < %v: %t, %v < %v: %t\n", a, b, vector.Less(a, b), b, c, vector.Less(b, c))

	if v, err := vec.At(count); err != nil {
		level.Warn(logger).Log("msg", "checked access past the end", "err", err)
	} else {
		fmt.Println("unexpected element:", v)
	}
	return nil
}
