// Package dispatch turns classified deep links into navigation for the host
// application.
//
// The interpreter in pkg/deeplink is stateless. Dispatcher is the caller
// that owns the state around it: the list of known profiles and the marker
// of the deep link action currently in flight. Only one action may be in
// flight; a second link arriving before Finish is rejected with
// ONLY_ONE_ACTION_ALLOWED.
package dispatch
