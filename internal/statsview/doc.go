// Package statsview runs a live dashboard of the simulator's Go runtime
// (heap, goroutines, GC pauses) next to the window. The engines allocate
// per generation, so the heap graph is the quickest way to see how grid
// size and density load the collector.
//
// The dashboard needs the statsview build tag. Without it Serve reports
// ErrNotBuilt and the simulator runs as usual.
package statsview
