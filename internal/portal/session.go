package portal

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Session is who the caller logged in as. It is returned by Login and passed
// explicitly to the operations that need it; the backend cookie remains the
// source of truth.
type Session struct {
	Email string
	Role  Role
}

func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

func (s Session) requireAdmin() error {
	if !s.IsAdmin() {
		return ErrAdminRequired
	}
	return nil
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	Role     Role   `json:"role"`
}

type loginResponse struct {
	Role Role `json:"role"`
	User struct {
		Email string `json:"email"`
		Role  Role   `json:"role"`
	} `json:"user"`
}

// Login opens a session. The role the backend reports wins over the one
// requested.
func (c *Client) Login(ctx context.Context, email, password string, role Role) (Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Session{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}
	if role == "" {
		role = RoleUser
	}

	var out loginResponse
	if err := c.do(ctx, http.MethodPost, "login", credentials{Email: email, Password: password, Role: role}, &out); err != nil {
		return Session{}, err
	}

	s := Session{Email: email, Role: role}
	switch {
	case out.User.Role != "":
		s.Role = out.User.Role
	case out.Role != "":
		s.Role = out.Role
	}
	if out.User.Email != "" {
		s.Email = out.User.Email
	}
	return s, nil
}

// Register creates an account. The display name defaults to the local part of
// the email.
func (c *Client) Register(ctx context.Context, email, password, confirm string, role Role) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}
	if password != confirm {
		return fmt.Errorf("%w: passwords do not match", ErrInvalidInput)
	}
	if role == "" {
		role = RoleUser
	}
	name, _, _ := strings.Cut(email, "@")
	return c.do(ctx, http.MethodPost, "register", credentials{Email: email, Password: password, Name: name, Role: role}, nil)
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "logout", nil, nil)
}
