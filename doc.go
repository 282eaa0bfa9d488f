// Package customization is a collection of small, composable helpers for
// customizing hosted website-builder pages: a form validation engine,
// storage wrappers, input masks, text and number formatting, countdown and
// counter animations, a typewriter effect, headless UI widget state, and
// device detection.
//
// Each concern lives in its own package under pkg/ and can be used in
// isolation:
//
//   - pkg/formvalidator – per-field rules with ordered checks and pluggable
//     presentation
//   - pkg/storage – namespaced key-value stores (memory, Redis) with TTLs
//   - pkg/mask – progressive digit masks for phone, date, document fields
//   - pkg/format – truncation, capitalization, contact masking, locale-aware
//     numbers
//   - pkg/countdown, pkg/counter, pkg/typewriter – timer-driven display
//     effects with pure, testable frame computation
//   - pkg/widget – toast, modal, accordion and tabs state machines
//   - pkg/device – coarse user-agent classification
//   - pkg/config, pkg/logger – env-based configuration and slog factories
//
// The packages deliberately separate behavior from rendering: effects and
// widgets compute state and frames, hosts decide how to paint them.
package customization
