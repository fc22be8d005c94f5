package state

import "strings"

func (c *Container) Auth() Auth { return c.snap.Auth }

func (c *Container) Authenticated() bool { return c.snap.Auth.IsAuthenticated }

// Login opens the gate for name. There is no credential check; any
// non-blank name is accepted. An empty email keeps the previous one.
func (c *Container) Login(name, email string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	c.snap.Auth.UserName = name
	if email = strings.TrimSpace(email); email != "" {
		c.snap.Auth.UserEmail = email
	}
	c.snap.Auth.IsAuthenticated = true
	c.commit()
	return true
}

// Logout closes the gate. The name and email are kept for the next login.
func (c *Container) Logout() {
	c.snap.Auth.IsAuthenticated = false
	c.commit()
}
