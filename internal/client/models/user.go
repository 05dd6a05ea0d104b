package models

import "strings"

// User is the domain profile linked one-to-one with an account. The backend
// serves birthdays as YYYY-MM-DD; forms collect them as DD/MM/YYYY.
type User struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Birthday  string   `json:"birthday"`
	Location  string   `json:"location"`
	Genres    []string `json:"genres"`
}

// DisplayBirthday converts the server's YYYY-MM-DD birthday into the
// DD/MM/YYYY form used everywhere on screen and in forms. Values that do
// not split into three parts are returned unchanged.
func (u *User) DisplayBirthday() string {
	parts := strings.SplitN(u.Birthday, "-", 3)
	if len(parts) != 3 {
		return u.Birthday
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}
