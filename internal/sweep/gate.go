package sweep

// Selector narrows the candidate list to the entries the user confirmed.
// names is presented in order; selected holds indices into names. ok is
// false when the user cancelled the prompt.
type Selector interface {
	Select(names []string) (selected []int, ok bool, err error)
}

// Confirmer prompts for the typed second confirmation and returns the text
// the user entered. ok is false when the prompt was cancelled.
type Confirmer interface {
	Confirm(phrase string) (typed string, ok bool, err error)
}

// Confirm runs the two-step confirmation over the candidate set and returns
// the indices cleared for deletion. Cancellation at either step, a typed
// phrase that is not exactly ConfirmPhrase, or an empty selection all yield
// ErrAborted: deleting is irreversible, so anything short of an explicit
// full confirmation means nothing is deleted.
func Confirm(candidates *Candidates, selector Selector, confirmer Confirmer) ([]int, error) {
	selected, ok, err := selector.Select(candidates.Names)
	if err != nil {
		return nil, err
	}
	if !ok || len(selected) == 0 {
		return nil, ErrAborted
	}

	typed, ok, err := confirmer.Confirm(ConfirmPhrase)
	if err != nil {
		return nil, err
	}
	if !ok || typed != ConfirmPhrase {
		return nil, ErrAborted
	}

	return selected, nil
}
