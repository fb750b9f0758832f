// Package statsview serves runtime statistics of the emulator process over
// HTTP. The server is only built with the statsview build tag:
//
//	go build -tags statsview ./cmd
//
// After launch the charts are at localhost:12600/debug/statsview and the
// standard pprof handlers at localhost:12600/debug/pprof/.
package statsview
