package connectors

import "strconv"

// CouchDB configures delivery to an Apache CouchDB database.
type CouchDB struct {
	base
}

// NewCouchDB creates a CouchDB connector.
func NewCouchDB() *CouchDB {
	return &CouchDB{newBase(TypeCouchDB, "host", "db_name")}
}

// Host sets the database host.
func (c *CouchDB) Host(host string) *CouchDB {
	c.set("host", host)
	return c
}

// Port sets the database port.
func (c *CouchDB) Port(port int) *CouchDB {
	c.set("port", strconv.Itoa(port))
	return c
}

// Database sets the destination database name.
func (c *CouchDB) Database(name string) *CouchDB {
	c.set("db_name", name)
	return c
}

// Auth sets the database credentials.
func (c *CouchDB) Auth(username, password string) *CouchDB {
	c.set("auth.username", username)
	c.set("auth.password", password)
	return c
}
