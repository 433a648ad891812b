package entity

import "time"

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type (
	User struct {
		ID             string    `json:"id"`
		Email          string    `json:"email"`
		Username       string    `json:"username"`
		FullName       string    `json:"full_name"`
		Role           string    `json:"role"`
		OrganizationID string    `json:"organization_id"`
		Password       string    `json:"-"`
		CreatedAt      time.Time `json:"created_at"`
	}

	Organization struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Slug      string    `json:"slug"`
		Domain    string    `json:"domain"`
		CreatedAt time.Time `json:"created_at"`
	}
)
