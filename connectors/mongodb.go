package connectors

import "strconv"

// MongoDB configures delivery to a MongoDB collection.
type MongoDB struct {
	base
}

// NewMongoDB creates a MongoDB connector.
func NewMongoDB() *MongoDB {
	return &MongoDB{newBase(TypeMongoDB,
		"host", "port", "db_name", "collection_name")}
}

// Host sets the database host.
func (c *MongoDB) Host(host string) *MongoDB {
	c.set("host", host)
	return c
}

// Port sets the database port.
func (c *MongoDB) Port(port int) *MongoDB {
	c.set("port", strconv.Itoa(port))
	return c
}

// Database sets the destination database name.
func (c *MongoDB) Database(name string) *MongoDB {
	c.set("db_name", name)
	return c
}

// Collection sets the destination collection name.
func (c *MongoDB) Collection(name string) *MongoDB {
	c.set("collection_name", name)
	return c
}

// Auth sets the database credentials.
func (c *MongoDB) Auth(username, password string) *MongoDB {
	c.set("auth.username", username)
	c.set("auth.password", password)
	return c
}
