// Package tuner demonstrates the external consumer side of the fillest
// contract: it runs the randomized estimator once over a candidate
// matrix and picks the block shape that minimizes a caller-supplied cost
// model, the way the tuner the fill estimator was built for would. It is
// not part of the estimator itself and makes no attempt to model
// per-shape kernel performance — cost is entirely the caller's concern.
package tuner
