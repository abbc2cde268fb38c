// Package inlet designs axisymmetric Busemann inlets.
//
// A Busemann inlet compresses a uniform freestream isentropically along a
// conical-flow streamline and returns it to axial flow through a conical
// terminal shock anchored at the focal point on the axis. The design is
// computed backwards: the terminal shock angle fixes the post-shock exit
// state, [obliqueshock.UpstreamFromDownstream] recovers the state ahead of
// the shock and the Taylor-Maccoll equations are integrated upstream until
// the flow is axial again, which is the freestream.
//
//   - [Design]: run one design from a [DesignConfig]
//   - [Designer]: the same with a logger and cancellation
//   - [Inlet]: solution, [Contour] and [Performance] of a design
//
// # Methods
//
// [MethodMachPair] searches the terminal shock angle so that the integrated
// freestream Mach matches the requested one. [MethodRecovery] searches it so
// the terminal shock has the requested total-pressure recovery; the
// freestream Mach is then whatever the integration reaches.
//
// # Coordinates
//
// The contour lies in the meridional plane with x along the axis, positive
// downstream, and y the distance from the axis. Points run from the leading
// edge to the terminal shock, the leading edge sits at x = 0 and y is scaled
// so the capture radius equals [DesignConfig.CaptureRadius].
//
// # Thread Safety
//
// Designs share no state. A [Designer] may be used from several goroutines.
package inlet
