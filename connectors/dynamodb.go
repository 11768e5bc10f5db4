package connectors

// DynamoDB configures delivery to an Amazon DynamoDB table.
type DynamoDB struct {
	base
}

// NewDynamoDB creates a DynamoDB connector.
func NewDynamoDB() *DynamoDB {
	return &DynamoDB{newBase(TypeDynamoDB,
		"auth.access_key", "auth.secret_key", "region", "table")}
}

// Auth sets the AWS access credentials used to write the table.
func (c *DynamoDB) Auth(accessKey, secretKey string) *DynamoDB {
	c.set("auth.access_key", accessKey)
	c.set("auth.secret_key", secretKey)
	return c
}

// Region sets the AWS region hosting the table.
func (c *DynamoDB) Region(region string) *DynamoDB {
	c.set("region", region)
	return c
}

// Table sets the destination table name.
func (c *DynamoDB) Table(name string) *DynamoDB {
	c.set("table", name)
	return c
}
