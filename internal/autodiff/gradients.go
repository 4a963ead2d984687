package autodiff

import (
	"fmt"

	"github.com/born-ml/gradtape/internal/tensor"
)

// Gradients maps tensor identities to accumulated gradient buffers.
//
// A lookup for a tensor that has no gradient yet allocates a zero-filled
// buffer of the tensor's shape, so gradients always start at zero and backward
// records only ever add into them.
type Gradients struct {
	grads map[tensor.ID]*tensor.RawTensor
}

// NewGradients creates an empty gradient store.
func NewGradients() *Gradients {
	return &Gradients{
		grads: make(map[tensor.ID]*tensor.RawTensor),
	}
}

// entry returns the gradient for p, allocating it on first touch.
func (g *Gradients) entry(p tensor.Phantom) *tensor.RawTensor {
	if grad, ok := g.grads[p.ID]; ok {
		return grad
	}
	grad := tensor.Zeros(p.Shape)
	g.grads[p.ID] = grad
	return grad
}

// Mut returns the mutable gradient buffer of the tensor named by p.
func (g *Gradients) Mut(p tensor.HasPhantom) []float32 {
	return g.entry(p.Phantom()).Data()
}

// Ref returns the gradient buffer of the tensor named by p for reading.
// Callers must not write through the returned slice.
func (g *Gradients) Ref(p tensor.HasPhantom) []float32 {
	return g.entry(p.Phantom()).Data()
}

// MutAndRef returns the mutable gradient of l and the read-only gradient of r.
// Panics if l and r name the same tensor.
func (g *Gradients) MutAndRef(l, r tensor.HasPhantom) ([]float32, []float32) {
	lp, rp := l.Phantom(), r.Phantom()
	if lp.ID == rp.ID {
		panic(fmt.Sprintf("gradients: MutAndRef called with the same tensor %d twice", lp.ID))
	}
	return g.entry(lp).Data(), g.entry(rp).Data()
}

// Gradient returns the accumulated gradient of t, shaped like t.
// A tensor that never received a gradient gets fresh zeros, which are not
// stored: Has and Len are unaffected by lookups.
func (g *Gradients) Gradient(t tensor.HasPhantom) *tensor.RawTensor {
	p := t.Phantom()
	if grad, ok := g.grads[p.ID]; ok {
		return grad
	}
	return tensor.Zeros(p.Shape)
}

// Has reports whether any gradient was stored for t.
func (g *Gradients) Has(t tensor.HasPhantom) bool {
	_, ok := g.grads[t.Phantom().ID]
	return ok
}

// Len returns the number of tensors with a stored gradient.
func (g *Gradients) Len() int {
	return len(g.grads)
}
