package domain

// Identity is the current user, or the anonymous guest when UserID is empty.
type Identity struct {
	UserID string `json:"user_id,omitempty"`
}

func (i Identity) Authenticated() bool {
	return i.UserID != ""
}
