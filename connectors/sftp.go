package connectors

import "strconv"

// SFTP configures delivery of files over SFTP.
type SFTP struct {
	base
}

// NewSFTP creates an SFTP connector.
func NewSFTP() *SFTP {
	return &SFTP{newBase(TypeSFTP,
		"host", "auth.username", "auth.password",
		"delivery_frequency", "max_size")}
}

// Host sets the server host.
func (c *SFTP) Host(host string) *SFTP {
	c.set("host", host)
	return c
}

// Port sets the server port.
func (c *SFTP) Port(port int) *SFTP {
	c.set("port", strconv.Itoa(port))
	return c
}

// Directory sets the remote directory files are written to.
func (c *SFTP) Directory(path string) *SFTP {
	c.set("directory", path)
	return c
}

// Auth sets the server credentials.
func (c *SFTP) Auth(username, password string) *SFTP {
	c.set("auth.username", username)
	c.set("auth.password", password)
	return c
}

// DeliveryFrequency sets how often files are written, in seconds.
func (c *SFTP) DeliveryFrequency(seconds int) *SFTP {
	c.set("delivery_frequency", strconv.Itoa(seconds))
	return c
}

// MaxSize sets the upper bound, in bytes, of a single file.
func (c *SFTP) MaxSize(bytes int) *SFTP {
	c.set("max_size", strconv.Itoa(bytes))
	return c
}
