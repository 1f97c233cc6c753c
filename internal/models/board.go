package models

import "time"

// Board is a named workspace containing cards and members. Every board
// has exactly one scrum master, identified by display name.
type Board struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ScrumMaster string   `json:"scrumMaster"`
	Members     []string `json:"members"`
}

// TeamMember is one member of a board as returned by the membership API.
type TeamMember struct {
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	AddedAt time.Time `json:"addedAt"`
}
