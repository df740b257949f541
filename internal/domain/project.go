package domain

import "time"

// Project is a unit of work owned by a user. Project creation is the usage
// that counts against the limit:max-projects ceiling.
type Project struct {
	ID        string
	OwnerID   string
	Name      string
	CreatedAt time.Time
}
