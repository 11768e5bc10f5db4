package model

import (
	"fmt"
	"strings"

	"github.com/coregx/pushsub/api"
)

// OutputTypeHTTP is the destination kind delivering data to an HTTP
// endpoint, currently the only kind with a subscription variant of its own.
const OutputTypeHTTP = "http"

// builder constructs an empty, unpersisted subscription variant. Adding a
// destination kind is one table entry plus one builder.
type builder func(caller api.Caller) *Subscription

var outputTypes = map[string]builder{
	OutputTypeHTTP: newHTTPSubscription,
}

func newHTTPSubscription(caller api.Caller) *Subscription {
	return &Subscription{
		caller:       caller,
		outputType:   OutputTypeHTTP,
		outputParams: make(map[string]string),
	}
}

// New returns an empty, unpersisted subscription of the variant matching
// the output type. The match is case-insensitive; an unrecognized output
// type is an invalid-data failure.
func New(caller api.Caller, outputType string) (*Subscription, error) {
	if caller == nil {
		return nil, api.NewError(api.ErrCodeInvalidData, "caller is required")
	}
	build, ok := outputTypes[strings.ToLower(outputType)]
	if !ok {
		return nil, api.NewError(api.ErrCodeInvalidData,
			fmt.Sprintf("unknown output type %q", outputType))
	}
	return build(caller), nil
}

// NewFromResponse builds a subscription of the matching variant and
// rehydrates it from a server payload. The subscription is considered
// persisted.
func NewFromResponse(caller api.Caller, outputType string, obj api.Object) (*Subscription, error) {
	s, err := New(caller, outputType)
	if err != nil {
		return nil, err
	}
	if err := s.hydrate(obj); err != nil {
		return nil, err
	}
	return s, nil
}

// NewWithTarget builds a fresh subscription of the matching variant and
// assigns its target directly. The hash type must be one of the two
// enumerated values; initialStatus may be empty, in which case the remote
// service picks the default on create.
func NewWithTarget(caller api.Caller, outputType string, hashType HashType, hash, name string, initialStatus Status) (*Subscription, error) {
	s, err := New(caller, outputType)
	if err != nil {
		return nil, err
	}
	if !hashType.Valid() {
		return nil, api.NewError(api.ErrCodeInvalidData,
			fmt.Sprintf("unknown hash type %q", hashType))
	}
	s.hashType = hashType
	s.hash = hash
	s.name = name
	s.status = initialStatus
	return s, nil
}

// OutputTypes returns the output types with a registered subscription
// variant.
func OutputTypes() []string {
	types := make([]string, 0, len(outputTypes))
	for name := range outputTypes {
		types = append(types, name)
	}
	return types
}
