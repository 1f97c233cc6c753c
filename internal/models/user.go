package models

// TeamRole describes one of the user's board memberships. The scrum
// master flag is per board, not account-wide.
type TeamRole struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ScrumMaster bool   `json:"scrumMaster"`
}

// User is the authenticated account as returned by the backend.
// Immutable from the client's perspective except via re-fetch.
type User struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Username string     `json:"username"`
	Teams    []TeamRole `json:"teams"`
}

// IsScrumMaster reports whether the user holds the scrum master role on
// the given board.
func (u User) IsScrumMaster(boardID int64) bool {
	for _, t := range u.Teams {
		if t.ID == boardID {
			return t.ScrumMaster
		}
	}
	return false
}
