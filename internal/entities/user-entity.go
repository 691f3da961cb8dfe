package entities

import "time"

type User struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// OwnerInfo is the minimal owner identity embedded into admin list
// responses.
type OwnerInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}
