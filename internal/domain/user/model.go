package user

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        int
	Login     string
	Password  string // хэш
	Role      string
	CreatedAt time.Time
}

// RoleFor выдает роль по логину: admin получает роль администратора
func RoleFor(login string) string {
	if login == RoleAdmin {
		return RoleAdmin
	}
	return RoleUser
}
