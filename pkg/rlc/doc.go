// Package rlc computes the steady-state behaviour of a series RLC circuit
// driven by a single-frequency sinusoidal source.
//
// The package is a pure value-in/value-out library. Parameters are
// validated once, at construction, and Solve never fails for a validated
// Parameters value.
//
// # Usage
//
// Build validated parameters in SI base units and solve:
//
//	p, err := rlc.NewParameters(rlc.Parameters{
//	    Resistance:    100,
//	    Inductance:    10e-3,
//	    Capacitance:   1e-6,
//	    SupplyVoltage: 10,
//	    Frequency:     1000,
//	}, rlc.DefaultEpsilon)
//	if err != nil {
//	    return err
//	}
//
//	r := rlc.Solve(p)
//	fmt.Println(r.Nature(), r.PowerFactorQuality())
//
// # Concurrency
//
// Solve holds no state and performs no I/O. Concurrent calls with distinct
// or shared Parameters values are safe.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package rlc
