// Package deeplink interprets application deep links such as
// rsyncuiapp://loadprofile?profile=Samsung.
//
// Interpretation is a pipeline of pure functions:
//
//	raw URL -> Components (scheme and structure validated) -> Result (action + params)
//
// ValidateScheme and ValidateString check the reserved scheme and decompose
// the URL. Classify maps the components onto one of the recognised actions;
// when nothing matches it reports ok == false rather than an error, and the
// caller decides whether to escalate through NoAction.
//
// ValidateProfile and ValidateNoPendingAction are stateless checks over
// values the caller owns. The package never keeps a profile list or a
// pending action of its own, so every function is safe for concurrent use.
//
// BuildURL is the inverse operation, used to generate links.
package deeplink
