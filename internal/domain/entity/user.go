package entity

import "time"

// User is a staff account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Password     string    `json:"password"`
	Role         Role      `json:"role"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	LastModified time.Time `json:"lastModified"`
}

// Actor returns the acting identity of the user.
func (u User) Actor() Actor {
	return Actor{UserID: u.ID, UserName: u.Name, Role: u.Role}
}
