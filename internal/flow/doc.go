// Package flow provides the shared primitives of the conical-flow toolkit.
//
// The package defines the value types passed between the solver layers and
// the error kinds every layer reports:
//
//   - [VelocityVector]: radial/tangential Mach components (u, v)
//   - [VelocityVectorDerivative]: (du/dθ, dv/dθ) at a polar angle
//   - [FlowState]: one accepted Taylor-Maccoll integration step
//   - [Solution]: ordered FlowState history of one integration
//
// # Errors
//
// Every relation validates its own inputs and returns one of the sentinel
// errors below, wrapped with context. Match them with errors.Is:
//
//	_, err := isentropic.PressureRatio(2.0, 1.0)
//	if errors.Is(err, flow.ErrInvalidSpecificHeatRatio) {
//	    // gamma must exceed 1
//	}
//
// # Thread Safety
//
// All types are plain values. Nothing in this package holds state, so any
// function may be called from concurrent goroutines.
package flow
