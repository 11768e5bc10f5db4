package connectors

// BigQuery configures delivery to a Google BigQuery table.
type BigQuery struct {
	base
}

// NewBigQuery creates a BigQuery connector.
func NewBigQuery() *BigQuery {
	return &BigQuery{newBase(TypeBigQuery,
		"project_id", "dataset_id", "table_id",
		"auth.service_account", "auth.key_file")}
}

// Project sets the Google Cloud project id.
func (c *BigQuery) Project(projectID string) *BigQuery {
	c.set("project_id", projectID)
	return c
}

// Dataset sets the dataset id inside the project.
func (c *BigQuery) Dataset(datasetID string) *BigQuery {
	c.set("dataset_id", datasetID)
	return c
}

// Table sets the destination table id.
func (c *BigQuery) Table(tableID string) *BigQuery {
	c.set("table_id", tableID)
	return c
}

// Auth sets the service account and its private key file contents.
func (c *BigQuery) Auth(serviceAccount, keyFile string) *BigQuery {
	c.set("auth.service_account", serviceAccount)
	c.set("auth.key_file", keyFile)
	return c
}
