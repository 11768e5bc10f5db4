package connectors

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/coregx/pushsub/api"
)

// Output type identifiers with a registered connector.
const (
	TypeHTTP          = "http"
	TypeS3            = "s3"
	TypeBigQuery      = "bigquery"
	TypeCouchDB       = "couchdb"
	TypeDynamoDB      = "dynamodb"
	TypeElasticSearch = "elasticsearch"
	TypeFTP           = "ftp"
	TypeMongoDB       = "mongodb"
	TypeRedis         = "redis"
	TypeSFTP          = "sftp"
	TypeSplunk        = "splunk"
)

// Factory creates a fresh connector instance.
type Factory func() Connector

// Registry maps output type identifiers to connector factories. The zero
// set is empty; the package-level functions use a registry pre-populated
// with every built-in connector. Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty connector registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a connector factory under an output type identifier.
// Registering an identifier twice is a configuration error.
func (r *Registry) Register(outputType string, factory Factory) error {
	key := strings.ToLower(outputType)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[key]; exists {
		return api.NewError(api.ErrCodeInvalidData,
			fmt.Sprintf("connector %q already registered", key))
	}
	r.factories[key] = factory
	return nil
}

// New creates an empty connector for the output type. The match is
// case-insensitive; an unrecognized output type is an invalid-data
// failure, matching the subscription factory's behavior.
func (r *Registry) New(outputType string) (Connector, error) {
	r.mu.RLock()
	factory, ok := r.factories[strings.ToLower(outputType)]
	r.mu.RUnlock()
	if !ok {
		return nil, api.NewError(api.ErrCodeInvalidData,
			fmt.Sprintf("unknown output type %q", outputType))
	}
	return factory(), nil
}

// FromMap creates a connector for the output type and imports a
// configuration map into it via PutAll.
func (r *Registry) FromMap(outputType string, params map[string]interface{}) (Connector, error) {
	c, err := r.New(outputType)
	if err != nil {
		return nil, err
	}
	c.Parameters().PutAll(params)
	return c, nil
}

// Has reports whether a connector is registered for the output type.
func (r *Registry) Has(outputType string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[strings.ToLower(outputType)]
	return ok
}

// Types returns the registered output type identifiers, sorted.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.factories))
	for name := range r.factories {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}

var defaultRegistry = func() *Registry {
	r := NewRegistry()
	builtins := map[string]Factory{
		TypeHTTP:          func() Connector { return NewHTTP() },
		TypeS3:            func() Connector { return NewS3() },
		TypeBigQuery:      func() Connector { return NewBigQuery() },
		TypeCouchDB:       func() Connector { return NewCouchDB() },
		TypeDynamoDB:      func() Connector { return NewDynamoDB() },
		TypeElasticSearch: func() Connector { return NewElasticSearch() },
		TypeFTP:           func() Connector { return NewFTP() },
		TypeMongoDB:       func() Connector { return NewMongoDB() },
		TypeRedis:         func() Connector { return NewRedis() },
		TypeSFTP:          func() Connector { return NewSFTP() },
		TypeSplunk:        func() Connector { return NewSplunk() },
	}
	for name, factory := range builtins {
		if err := r.Register(name, factory); err != nil {
			panic(err)
		}
	}
	return r
}()

// New creates an empty connector for the output type from the built-in
// registry.
func New(outputType string) (Connector, error) {
	return defaultRegistry.New(outputType)
}

// FromMap creates a built-in connector and imports a configuration map.
func FromMap(outputType string, params map[string]interface{}) (Connector, error) {
	return defaultRegistry.FromMap(outputType, params)
}

// Has reports whether a built-in connector exists for the output type.
func Has(outputType string) bool {
	return defaultRegistry.Has(outputType)
}

// Types returns the built-in output type identifiers, sorted.
func Types() []string {
	return defaultRegistry.Types()
}
