// Package domain defines the value types exchanged with the remote actor.
//
// Types in this package are plain records with no behavior beyond small
// pure helpers. They are owned by the remote actor: this site builds them
// fresh from form input at submit time and never stores them.
//
// Rules for this package:
//   - No imports from other internal/ packages
//   - No *http.Request, no context.Context in struct fields
//   - JSON tags describe the actor wire format
package domain
