// Package widget implements the state machines behind the small UI widgets
// a customization layer injects into a page: toast notifications, modals,
// accordions and tab strips.
//
// The widgets are headless. They own state transitions, ordering, and
// timing, and report changes through callbacks; rendering belongs to the
// host, mirroring how the form validator delegates presentation to its
// Marker. Every widget is safe for use from a single event loop; the toast
// queue additionally synchronizes internally because its auto-dismiss runs
// on a ticker goroutine.
package widget
