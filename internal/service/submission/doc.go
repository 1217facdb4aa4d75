// Package submission is the gateway between the form controllers and the
// remote actor.
//
// Every submit is a single attempt against the established actor
// connection; when there is none the call fails at once with
// ErrNotAvailable. A successful submit invalidates the cache bucket of the
// entity type and then hands the record to the staff Notifier, if any.
// Neither follow-up can turn an accepted submission into a failure.
//
// Listings and by-email lookups read through the same buckets.
package submission
