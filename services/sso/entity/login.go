package entity

type (
	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	LoginResponse struct {
		Token        string        `json:"token"`
		User         *User         `json:"user"`
		Organization *Organization `json:"organization"`
	}
)
