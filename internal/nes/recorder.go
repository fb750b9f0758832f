package nes

import "fmt"

type BusOp uint8

const (
	BusRead BusOp = iota
	BusWrite
)

func (op BusOp) String() string {
	if op == BusWrite {
		return "write"
	}
	return "read"
}

// BusAction is one access seen by a RecordingBus.
type BusAction struct {
	Op   BusOp
	Addr uint16
	Data uint8
}

func (a BusAction) String() string {
	return fmt.Sprintf("%s $%04X=$%02X", a.Op, a.Addr, a.Data)
}

// RecordingBus wraps another ReadWriter and keeps every access in order.
// It is meant for tests and debugging tools; nothing in the console
// builds one.
type RecordingBus struct {
	inner   ReadWriter
	actions []BusAction
}

func NewRecordingBus(inner ReadWriter) *RecordingBus {
	return &RecordingBus{inner: inner}
}

func (r *RecordingBus) Read8(addr uint16) uint8 {
	data := r.inner.Read8(addr)
	r.actions = append(r.actions, BusAction{Op: BusRead, Addr: addr, Data: data})
	return data
}

func (r *RecordingBus) Write8(addr uint16, data uint8) {
	r.actions = append(r.actions, BusAction{Op: BusWrite, Addr: addr, Data: data})
	r.inner.Write8(addr, data)
}

func (r *RecordingBus) Actions() []BusAction {
	return r.actions
}

func (r *RecordingBus) Reset() {
	r.actions = r.actions[:0]
}
