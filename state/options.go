// SPDX-License-Identifier: MIT
// Package: state
//
// options.go — functional options for the state generators.
//
// Contract (strict):
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     generators themselves never panic — domain violations (like a
//     1-level subsystem for MaxEntangled) surface as sentinel errors.
//   • No hidden globals; everything flows through genConfig.
//
// AI-Hints:
//   • WithAnalytic / WithDisplacementForm only toggle a two-armed branch
//     inside Coherent; there is no strategy interface behind them.
//   • WithSubsystemDim(d) sets the per-copy level count for MaxEntangled;
//     d == 1 is a legal option value that MaxEntangled then rejects with
//     ErrDegenerateSubsystem (domain rule, not option rule).

package state

// DefaultSubsystemDim is the per-copy level count MaxEntangled assumes
// when no WithSubsystemDim option is given: qubits.
const DefaultSubsystemDim = 2

// Option customizes a state generator by mutating its genConfig before
// construction begins. Applying N options costs O(N) time, O(1) space.
type Option func(*genConfig)

// genConfig is the resolved per-call configuration. Zero value is never
// used directly; newGenConfig applies documented defaults first.
type genConfig struct {
	analytic     bool // Coherent: closed-form amplitudes instead of D(α) column
	subsystemDim int  // MaxEntangled: levels per subsystem copy
}

// newGenConfig resolves defaults, then applies options in call order
// (last writer wins, matching the rest of the library).
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		analytic:     false,
		subsystemDim: DefaultSubsystemDim,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithAnalytic makes Coherent use the closed-form amplitude formula
// exp(-|α|²/2)·αᵏ/√k! — one O(n) pass, but the truncated result is NOT
// renormalized (truncation error grows with |α| relative to n).
func WithAnalytic() Option {
	return func(c *genConfig) {
		c.analytic = true
	}
}

// WithDisplacementForm makes Coherent build the displacement operator and
// take its first column — unit-norm by construction, O(n³). This is the
// default; the option exists to override an earlier WithAnalytic.
func WithDisplacementForm() Option {
	return func(c *genConfig) {
		c.analytic = false
	}
}

// WithSubsystemDim sets the per-copy subsystem dimension for MaxEntangled.
// Panics on d < 1 to surface programmer error early; d == 1 passes the
// option but is rejected by MaxEntangled itself (ErrDegenerateSubsystem).
func WithSubsystemDim(d int) Option {
	if d < 1 {
		// Fail fast: option constructors validate and panic.
		panic("state: WithSubsystemDim(d < 1)")
	}
	return func(c *genConfig) {
		c.subsystemDim = d
	}
}
