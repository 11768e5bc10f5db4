package connectors

import "strconv"

// S3 configures delivery to an Amazon S3 bucket.
type S3 struct {
	base
}

// NewS3 creates an S3 connector.
func NewS3() *S3 {
	return &S3{newBase(TypeS3,
		"bucket", "auth.access_key", "auth.secret_key",
		"delivery_frequency", "max_size", "file_format")}
}

// Bucket sets the destination bucket name.
func (c *S3) Bucket(name string) *S3 {
	c.set("bucket", name)
	return c
}

// Directory sets an optional key prefix inside the bucket.
func (c *S3) Directory(path string) *S3 {
	c.set("directory", path)
	return c
}

// Auth sets the AWS access credentials used to write the bucket.
func (c *S3) Auth(accessKey, secretKey string) *S3 {
	c.set("auth.access_key", accessKey)
	c.set("auth.secret_key", secretKey)
	return c
}

// DeliveryFrequency sets how often files are written, in seconds.
func (c *S3) DeliveryFrequency(seconds int) *S3 {
	c.set("delivery_frequency", strconv.Itoa(seconds))
	return c
}

// MaxSize sets the upper bound, in bytes, of a single file.
func (c *S3) MaxSize(bytes int) *S3 {
	c.set("max_size", strconv.Itoa(bytes))
	return c
}

// FileFormat sets the serialization of delivered files, e.g.
// "json_meta", "json_array" or "json_new_line".
func (c *S3) FileFormat(format string) *S3 {
	c.set("file_format", format)
	return c
}

// ACL sets the canned ACL applied to written objects.
func (c *S3) ACL(acl string) *S3 {
	c.set("acl", acl)
	return c
}
