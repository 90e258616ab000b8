// Package sweep implements the fetch, filter, confirm, and delete pipeline
// for bulk repository cleanup. The GitHub client, the interactive prompts,
// and the output rendering live elsewhere; this package depends only on the
// small capability interfaces defined here so every stage is testable with
// stubs.
package sweep

import "errors"

// ConfirmPhrase is the exact text the user must type before any deletion is
// dispatched. Compared case-sensitively.
const ConfirmPhrase = "I want to remove all repos above"

// ErrAborted is returned when the user cancels at the selection prompt or
// fails the typed confirmation. No deletions have been dispatched when this
// error is returned.
var ErrAborted = errors.New("aborted by user")
