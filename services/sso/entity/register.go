package entity

type (
	RegisterRequest struct {
		Email            string `json:"email"`
		Username         string `json:"username"`
		Password         string `json:"password"`
		FullName         string `json:"full_name"`
		OrganizationName string `json:"organization_name"`
	}

	RegisterResponse struct {
		Token        string        `json:"token"`
		User         *User         `json:"user"`
		Organization *Organization `json:"organization"`
	}

	CreateUserRequest struct {
		Email          string
		Username       string
		FullName       string
		PasswordHash   string
		Role           string
		OrganizationID string
	}
)
