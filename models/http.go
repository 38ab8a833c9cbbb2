package models

// Credentials is the request body of signup and login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUserRequest is the request body of POST /users.
//
// PasswordHash is accepted as an alias of Password for older clients. Its
// value is treated as a plaintext secret and hashed before storage.
type CreateUserRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password,omitempty"`
	PasswordHash string `json:"passwordHash,omitempty"`
}

// Secret returns the plaintext password supplied by the client.
func (r CreateUserRequest) Secret() string {
	if r.Password != "" {
		return r.Password
	}
	return r.PasswordHash
}

// UpdateUserRequest is the request body of PATCH /users/{id}.
// Absent fields are left untouched.
type UpdateUserRequest struct {
	Email        *string `json:"email,omitempty"`
	Password     *string `json:"password,omitempty"`
	PasswordHash *string `json:"passwordHash,omitempty"`
}

// Secret returns the new plaintext password, or nil when none was supplied.
func (r UpdateUserRequest) Secret() *string {
	if r.Password != nil {
		return r.Password
	}
	return r.PasswordHash
}
