package connectors

import "strconv"

// FTP configures delivery of files to an FTP server.
type FTP struct {
	base
}

// NewFTP creates an FTP connector.
func NewFTP() *FTP {
	return &FTP{newBase(TypeFTP,
		"host", "auth.username", "auth.password",
		"delivery_frequency", "max_size")}
}

// Host sets the server host.
func (c *FTP) Host(host string) *FTP {
	c.set("host", host)
	return c
}

// Port sets the server port.
func (c *FTP) Port(port int) *FTP {
	c.set("port", strconv.Itoa(port))
	return c
}

// Directory sets the remote directory files are written to.
func (c *FTP) Directory(path string) *FTP {
	c.set("directory", path)
	return c
}

// Auth sets the server credentials.
func (c *FTP) Auth(username, password string) *FTP {
	c.set("auth.username", username)
	c.set("auth.password", password)
	return c
}

// DeliveryFrequency sets how often files are written, in seconds.
func (c *FTP) DeliveryFrequency(seconds int) *FTP {
	c.set("delivery_frequency", strconv.Itoa(seconds))
	return c
}

// MaxSize sets the upper bound, in bytes, of a single file.
func (c *FTP) MaxSize(bytes int) *FTP {
	c.set("max_size", strconv.Itoa(bytes))
	return c
}
