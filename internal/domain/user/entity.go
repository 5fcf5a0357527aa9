package user

import "time"

// User is a login profile. Admin users manage employees, payouts and
// settings; non-admin users are linked to an employee record for the
// time clock.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	IsAdmin      bool
	EmployeeID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
