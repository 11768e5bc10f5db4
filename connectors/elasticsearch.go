package connectors

import "strconv"

// ElasticSearch configures delivery to an Elasticsearch index.
type ElasticSearch struct {
	base
}

// NewElasticSearch creates an Elasticsearch connector.
func NewElasticSearch() *ElasticSearch {
	return &ElasticSearch{newBase(TypeElasticSearch, "host", "port", "index")}
}

// Host sets the cluster host.
func (c *ElasticSearch) Host(host string) *ElasticSearch {
	c.set("host", host)
	return c
}

// Port sets the cluster port.
func (c *ElasticSearch) Port(port int) *ElasticSearch {
	c.set("port", strconv.Itoa(port))
	return c
}

// Index sets the destination index name.
func (c *ElasticSearch) Index(name string) *ElasticSearch {
	c.set("index", name)
	return c
}

// Auth sets the cluster credentials.
func (c *ElasticSearch) Auth(username, password string) *ElasticSearch {
	c.set("auth.username", username)
	c.set("auth.password", password)
	return c
}
