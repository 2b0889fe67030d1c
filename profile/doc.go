// Package profile provides optional runtime profiling for zenv.
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof .
//	zenv --pprof-mode cpu --pprof-dir ./profiles -- make test
//
// Without the tag, [Modes] is empty and [Config.Start] always returns a
// no-op controller, so callers need no build constraints of their own.
//
// With the tag, the modes supported by [github.com/pkg/profile] are
// available: allocs, block, clock, cpu, goroutine, heap, mem, mutex, thread,
// and trace. Each writes <mode>.pprof (or trace.out) into the configured
// directory when the controller is stopped.
//
// Profiling covers zenv itself (parsing, expansion, and the wait for the
// child), not the program it launches.
package profile
