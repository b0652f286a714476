// Package vizexport renders a solved game as an SVG diagram, grounded on
// dshills-dungo/pkg/export/svg.go: a canvas built with
// ajstarks/svgo, a simple computed layout, edges drawn before nodes, and an
// options struct with DefaultOptions() carrying sensible fallbacks.
//
// It operates on the backend-agnostic Graph type rather than directly on
// *symbolic.Arena or *explicit.Arena, so callers enumerate vertices once
// (via bddengine.AnySat or explicit.Arena's bitsets) and feed the result
// here regardless of which solver produced it.
package vizexport
