package connectors

import "strconv"

// HTTP configures delivery to an arbitrary HTTP endpoint.
type HTTP struct {
	base
}

// NewHTTP creates an HTTP connector.
func NewHTTP() *HTTP {
	return &HTTP{newBase(TypeHTTP, "url", "delivery_frequency", "max_size")}
}

// URL sets the endpoint data is posted to.
func (c *HTTP) URL(url string) *HTTP {
	c.set("url", url)
	return c
}

// DeliveryFrequency sets how often data is delivered, in seconds. Zero
// means continuous delivery.
func (c *HTTP) DeliveryFrequency(seconds int) *HTTP {
	c.set("delivery_frequency", strconv.Itoa(seconds))
	return c
}

// MaxSize sets the upper bound, in bytes, of a single delivery.
func (c *HTTP) MaxSize(bytes int) *HTTP {
	c.set("max_size", strconv.Itoa(bytes))
	return c
}

// BasicAuth configures HTTP basic authentication for the endpoint.
func (c *HTTP) BasicAuth(username, password string) *HTTP {
	c.set("auth.type", "basic")
	c.set("auth.username", username)
	c.set("auth.password", password)
	return c
}

// Compression sets the payload compression, e.g. "gzip" or "none".
func (c *HTTP) Compression(format string) *HTTP {
	c.set("compression", format)
	return c
}

// VerifySSL controls certificate verification for https endpoints.
func (c *HTTP) VerifySSL(verify bool) *HTTP {
	c.set("verify_ssl", strconv.FormatBool(verify))
	return c
}
