package model

// Repo describes one repository owned by the authenticated user.
// Pointer fields are nil when the API response did not include the value;
// filtering treats nil as "unknown" and never excludes a repo because of it.
type Repo struct {
	Owner      string
	Name       string
	Visibility string
	Fork       *bool
	Stars      *int
}

// FullName returns the qualified "owner/name" form used as the unique key
// for a repository within a single run.
func (r Repo) FullName() string {
	return r.Owner + "/" + r.Name
}

// Visibility values GitHub assigns to repositories.
const (
	VisibilityPublic   = "public"
	VisibilityInternal = "internal"
	VisibilityPrivate  = "private"
)

// Visibilities lists the recognized visibility values in display order.
func Visibilities() []string {
	return []string{VisibilityPublic, VisibilityInternal, VisibilityPrivate}
}

// ValidVisibility reports whether v is a recognized visibility value.
func ValidVisibility(v string) bool {
	switch v {
	case VisibilityPublic, VisibilityInternal, VisibilityPrivate:
		return true
	}
	return false
}
