package connectors

import "strconv"

// Splunk configures delivery to a Splunk Enterprise instance.
type Splunk struct {
	base
}

// NewSplunk creates a Splunk connector.
func NewSplunk() *Splunk {
	return &Splunk{newBase(TypeSplunk,
		"host", "port", "auth.username", "auth.password")}
}

// Host sets the instance host.
func (c *Splunk) Host(host string) *Splunk {
	c.set("host", host)
	return c
}

// Port sets the instance port.
func (c *Splunk) Port(port int) *Splunk {
	c.set("port", strconv.Itoa(port))
	return c
}

// Auth sets the instance credentials.
func (c *Splunk) Auth(username, password string) *Splunk {
	c.set("auth.username", username)
	c.set("auth.password", password)
	return c
}
