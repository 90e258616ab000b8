package model

// Outcome is the result of one deletion attempt. A nil Err means the
// repository was deleted; anything else is a per-item failure that was
// reported and contained to this record.
type Outcome struct {
	Repo Repo
	Err  error
}

// Deleted reports whether the deletion succeeded.
func (o Outcome) Deleted() bool {
	return o.Err == nil
}

// Report aggregates the outcomes of one deletion batch.
type Report struct {
	Outcomes []Outcome
}

// Attempted returns the number of deletions attempted.
func (r *Report) Attempted() int {
	return len(r.Outcomes)
}

// Failed returns the outcomes that did not succeed.
func (r *Report) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if !o.Deleted() {
			failed = append(failed, o)
		}
	}
	return failed
}

// DeletedCount returns the number of successful deletions.
func (r *Report) DeletedCount() int {
	return len(r.Outcomes) - len(r.Failed())
}
