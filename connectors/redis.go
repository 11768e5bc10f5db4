package connectors

import "strconv"

// Redis configures delivery to a Redis list.
type Redis struct {
	base
}

// NewRedis creates a Redis connector.
func NewRedis() *Redis {
	return &Redis{newBase(TypeRedis, "host", "port", "database", "list")}
}

// Host sets the server host.
func (c *Redis) Host(host string) *Redis {
	c.set("host", host)
	return c
}

// Port sets the server port.
func (c *Redis) Port(port int) *Redis {
	c.set("port", strconv.Itoa(port))
	return c
}

// Database sets the numeric database index.
func (c *Redis) Database(index int) *Redis {
	c.set("database", strconv.Itoa(index))
	return c
}

// List sets the list key data is pushed onto.
func (c *Redis) List(key string) *Redis {
	c.set("list", key)
	return c
}

// Password sets the server password.
func (c *Redis) Password(password string) *Redis {
	c.set("auth.password", password)
	return c
}
