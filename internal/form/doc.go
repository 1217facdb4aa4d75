// Package form holds the state of the three submission forms.
//
// A Controller owns one form instance: its field values, its status
// (idle, pending, success, error) and the banner shown to the visitor.
// Submit validates a snapshot of the fields first; a validation failure
// never reaches the Gateway. A valid snapshot is dispatched exactly once.
// On success the fields are cleared; on failure they are kept so the
// visitor can try again.
package form
