// Package model contains the push subscription entity and the output-type
// factory that produces the correctly-typed variant for a destination kind.
package model

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	gojson "github.com/goccy/go-json"

	"github.com/coregx/pushsub/api"
)

// Status represents the lifecycle state of a push subscription.
type Status string

const (
	// StatusActive indicates the subscription is delivering data.
	StatusActive Status = "active"

	// StatusPaused indicates delivery is temporarily suspended.
	StatusPaused Status = "paused"

	// StatusStopped indicates delivery has been stopped by the owner.
	StatusStopped Status = "stopped"

	// StatusFinishing indicates a historic playback is draining its
	// remaining data.
	StatusFinishing Status = "finishing"

	// StatusFinished indicates a historic playback has delivered all data.
	StatusFinished Status = "finished"

	// StatusDeleted is terminal. A deleted subscription permanently
	// rejects further mutation.
	StatusDeleted Status = "deleted"
)

// HashType selects what a subscription attaches to: a live stream hash or
// a historic-query playback id.
type HashType string

const (
	// HashTypeStream attaches the subscription to a live stream.
	HashTypeStream HashType = "stream"

	// HashTypeHistoric attaches the subscription to a historic-query
	// playback.
	HashTypeHistoric HashType = "historic"
)

// Valid reports whether the hash type is one of the two enumerated values.
func (h HashType) Valid() bool {
	return h == HashTypeStream || h == HashTypeHistoric
}

// Ordering fields and directions accepted by list calls.
const (
	OrderByID        = "id"
	OrderByCreatedAt = "created_at"

	OrderDirAsc  = "asc"
	OrderDirDesc = "desc"
)

// ParameterSource provides a flattened, prefixed destination parameter set
// together with the keys the destination declares as required.
// connectors.Params satisfies this.
type ParameterSource interface {
	Map() map[string]string
	Required() []string
}

// Subscription represents a push subscription: a standing server-side rule
// that streams data from a source (live stream or historic query) to a
// configured destination.
//
// A subscription is either built fresh through the factory and lives only
// in memory until Save is called, or rehydrated from a server response and
// already considered persisted. An id of zero means never persisted; the
// next Save issues a create, otherwise an update.
//
// Fields are unexported so the entity can enforce its invariants: createdAt
// is only ever set from server data, and a deleted subscription rejects
// every mutation.
type Subscription struct {
	caller api.Caller

	id         int64
	name       string
	createdAt  time.Time
	status     Status
	hashType   HashType
	hash       string
	outputType string

	// outputParams holds the destination configuration with unprefixed
	// keys; the prefix is applied at submission time.
	outputParams map[string]string

	// requiredParams holds prefixed keys a connector declared required,
	// checked before a create/update is issued.
	requiredParams map[string]struct{}
}

// ID returns the remote id, zero until the subscription is persisted.
func (s *Subscription) ID() int64 {
	return s.id
}

// Name returns the human label.
func (s *Subscription) Name() string {
	return s.name
}

// SetName updates the human label. Fails on a deleted subscription.
func (s *Subscription) SetName(name string) error {
	if s.IsDeleted() {
		return api.NewError(api.ErrCodeInvalidData, "cannot modify a deleted subscription")
	}
	s.name = name
	return nil
}

// CreatedAt returns the server-assigned creation time, zero until the
// subscription has been persisted.
func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

// Status returns the lifecycle state.
func (s *Subscription) Status() Status {
	return s.status
}

// IsDeleted reports whether the subscription has reached the terminal
// deleted state.
func (s *Subscription) IsDeleted() bool {
	return s.status == StatusDeleted
}

// HashType returns whether the subscription attaches to a stream or a
// historic playback.
func (s *Subscription) HashType() HashType {
	return s.hashType
}

// Hash returns the identifier of the stream or playback subscribed to.
func (s *Subscription) Hash() string {
	return s.hash
}

// OutputType returns the destination kind discriminator.
func (s *Subscription) OutputType() string {
	return s.outputType
}

// OutputParams returns a copy of the destination configuration, keyed
// without the wire prefix.
func (s *Subscription) OutputParams() map[string]string {
	out := make(map[string]string, len(s.outputParams))
	for k, v := range s.outputParams {
		out[k] = v
	}
	return out
}

// SetOutputParam stores a single destination parameter. The key is given
// without the wire prefix. Fails on a deleted subscription.
func (s *Subscription) SetOutputParam(key, value string) error {
	if s.IsDeleted() {
		return api.NewError(api.ErrCodeInvalidData, "cannot modify a deleted subscription")
	}
	if key == "" {
		return api.NewError(api.ErrCodeInvalidData, "output parameter key cannot be empty")
	}
	s.outputParams[key] = value
	return nil
}

// SetOutput replaces the destination configuration with the parameter set
// accumulated by a connector. The connector's required keys are enforced on
// the next Save. Fails on a deleted subscription.
func (s *Subscription) SetOutput(src ParameterSource) error {
	if s.IsDeleted() {
		return api.NewError(api.ErrCodeInvalidData, "cannot modify a deleted subscription")
	}
	values := src.Map()
	s.outputParams = make(map[string]string, len(values))
	for k, v := range values {
		s.outputParams[strings.TrimPrefix(k, api.ParamPrefix)] = v
	}
	required := src.Required()
	s.requiredParams = make(map[string]struct{}, len(required))
	for _, k := range required {
		s.requiredParams[k] = struct{}{}
	}
	return nil
}

// hydrate populates every field from a server payload. Any missing or
// mistyped field invalidates the whole object; nothing is partially
// applied.
func (s *Subscription) hydrate(obj api.Object) error {
	id, err := obj.Int64("id")
	if err != nil {
		return api.NewErrorWithCause(api.ErrCodeInvalidData, "no id found", err)
	}
	name, err := obj.String("name")
	if err != nil {
		return api.NewErrorWithCause(api.ErrCodeInvalidData, "no name found", err)
	}
	createdAt, err := obj.Int64("created_at")
	if err != nil {
		return api.NewErrorWithCause(api.ErrCodeInvalidData, "no created_at found", err)
	}
	status, err := obj.String("status")
	if err != nil {
		return api.NewErrorWithCause(api.ErrCodeInvalidData, "no status found", err)
	}
	hashType, err := obj.String("hash_type")
	if err != nil {
		return api.NewErrorWithCause(api.ErrCodeInvalidData, "no hash_type found", err)
	}
	hash, err := obj.String("hash")
	if err != nil {
		return api.NewErrorWithCause(api.ErrCodeInvalidData, "no hash found", err)
	}
	outputType, err := obj.String("output_type")
	if err != nil {
		return api.NewErrorWithCause(api.ErrCodeInvalidData, "no output_type found", err)
	}
	outputParams, err := obj.StringMap("output_params")
	if err != nil {
		return api.NewErrorWithCause(api.ErrCodeInvalidData, "no output_params found", err)
	}

	s.id = id
	s.name = name
	s.createdAt = time.Unix(createdAt, 0)
	s.status = Status(status)
	s.hashType = HashType(hashType)
	s.hash = hash
	s.outputType = outputType
	s.outputParams = outputParams
	return nil
}

// Save persists the subscription: a create when it has never been
// persisted, an update otherwise. The server response fully rehydrates the
// entity in place, so server-assigned fields such as id and createdAt
// become visible after a successful save.
func (s *Subscription) Save(ctx context.Context) error {
	params := make(map[string]string)

	endpoint := "push/update"
	if s.id == 0 {
		endpoint = "push/create"

		switch s.hashType {
		case HashTypeStream:
			params["hash"] = s.hash
		case HashTypeHistoric:
			params["playback_id"] = s.hash
		default:
			return api.NewError(api.ErrCodeInvalidData,
				fmt.Sprintf("unknown hash type %q", s.hashType))
		}

		params["output_type"] = s.outputType

		if s.status != "" {
			params["initial_status"] = string(s.status)
		}
	} else {
		params["id"] = strconv.FormatInt(s.id, 10)
	}

	if err := s.validateRequiredParams(); err != nil {
		return err
	}

	// Name and the destination configuration are sent whether creating
	// or updating: once as the JSON-encoded output_params value and once
	// flattened under the prefixed keys.
	params["name"] = s.name
	encoded, err := gojson.Marshal(s.outputParams)
	if err != nil {
		return api.NewErrorWithCause(api.ErrCodeInvalidData, "failed to encode output_params", err)
	}
	params["output_params"] = string(encoded)
	for k, v := range s.outputParams {
		params[api.ParamPrefix+k] = v
	}

	res, err := s.caller.CallAPI(ctx, endpoint, params)
	if err != nil {
		return err
	}
	return s.hydrate(res)
}

func (s *Subscription) validateRequiredParams() error {
	var missing []string
	for k := range s.requiredParams {
		if _, ok := s.outputParams[strings.TrimPrefix(k, api.ParamPrefix)]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return api.NewError(api.ErrCodeInvalidData,
			fmt.Sprintf("missing required output parameters: %s", strings.Join(missing, ", ")))
	}
	return nil
}

// Delete removes the subscription remotely when it has been persisted and
// marks the local entity deleted in every case, so client-side "mark
// deleted" stays idempotent even when the remote call fails or nothing
// needed deleting.
func (s *Subscription) Delete(ctx context.Context) error {
	var err error
	if s.id > 0 {
		_, err = s.caller.CallAPI(ctx, "push/delete", map[string]string{
			"id": strconv.FormatInt(s.id, 10),
		})
	}
	s.status = StatusDeleted
	return err
}
