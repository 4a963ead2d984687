package autodiff

import (
	"github.com/google/uuid"
)

// BackwardOp is a deferred unit of the backward pass. It reads the gradient
// of its operation's output from the store and adds the operation's local
// derivative contribution into the gradient of its input.
type BackwardOp interface {
	// Name identifies the operation kind, e.g. "mul_scalar".
	Name() string

	// Backward applies the chain rule for one recorded operation.
	Backward(grads *Gradients)
}

// Tape is the tape mode of a tensor. It is a closed set of two types, so
// every operation is specialized at compile time:
//
//   - NoTape: inert, operations record nothing.
//   - *GradientTape: tracking, operations append one BackwardOp each.
type Tape interface {
	NoTape | *GradientTape

	// IsTracking reports whether operations must be recorded.
	IsTracking() bool

	// Record appends a backward operation (no-op for NoTape).
	Record(op BackwardOp)
}

// NoTape is the inert tape mode.
type NoTape struct{}

// IsTracking always returns false.
func (NoTape) IsTracking() bool {
	return false
}

// Record discards op.
func (NoTape) Record(BackwardOp) {}

// GradientTape records backward operations during the forward pass and
// replays them in reverse during the backward pass.
//
// Records are appended strictly in forward-execution order, so record k only
// refers to gradients of tensors produced by records 0..k-1 or by leaves.
// A tape is not safe for concurrent use: each goroutine needs its own.
type GradientTape struct {
	id         uuid.UUID
	operations []BackwardOp // Recorded operations (in execution order)
}

// NewGradientTape creates a new, empty gradient tape.
func NewGradientTape() *GradientTape {
	return &GradientTape{
		id:         uuid.New(),
		operations: make([]BackwardOp, 0, 16),
	}
}

// ID returns the tape's run identifier.
func (t *GradientTape) ID() uuid.UUID {
	return t.id
}

// IsTracking always returns true.
func (t *GradientTape) IsTracking() bool {
	return true
}

// Record adds an operation to the tape.
func (t *GradientTape) Record(op BackwardOp) {
	t.operations = append(t.operations, op)
}

// NumOps returns the number of recorded operations not yet executed.
func (t *GradientTape) NumOps() int {
	return len(t.operations)
}

// OpNames returns the names of the recorded operations in recording order.
func (t *GradientTape) OpNames() []string {
	names := make([]string, len(t.operations))
	for i, op := range t.operations {
		names[i] = op.Name()
	}
	return names
}

// Backward executes every recorded operation in reverse recording order and
// discards each one after it ran, leaving the tape empty.
func (t *GradientTape) Backward(grads *Gradients) {
	for len(t.operations) > 0 {
		last := len(t.operations) - 1
		op := t.operations[last]
		t.operations[last] = nil
		t.operations = t.operations[:last]

		op.Backward(grads)
	}
}
