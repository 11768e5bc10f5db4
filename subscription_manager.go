package pushsub

import (
	"context"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/coregx/pushsub/api"
	"github.com/coregx/pushsub/connectors"
	"github.com/coregx/pushsub/model"
)

// SubscriptionManager handles push subscription lifecycle management
// against the remote service. It provides high-level operations for
// fetching, listing, creating, and deleting subscriptions, dispatching
// every call through the injected api.Caller.
//
// Key operations:
//   - Get: Fetch a single subscription by id
//   - List: Page through the account's subscriptions
//   - Create: Build, configure, and persist a new subscription
//   - Delete: Remove a subscription by id
//
// Thread safety: Safe for concurrent use.
type SubscriptionManager struct {
	caller api.Caller
	logger Logger
}

// NewSubscriptionManager creates a new SubscriptionManager with the
// provided options.
//
// Required options:
//   - WithCaller: the authenticated session collaborator
//   - WithLogger: logger instance
func NewSubscriptionManager(opts ...SubscriptionManagerOption) (*SubscriptionManager, error) {
	m := &SubscriptionManager{}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, api.NewErrorWithCause(api.ErrCodeInvalidData,
				"failed to apply subscription manager option", err)
		}
	}

	if m.caller == nil {
		return nil, api.NewError(api.ErrCodeInvalidData, "Caller is required")
	}
	if m.logger == nil {
		return nil, api.NewError(api.ErrCodeInvalidData, "Logger is required")
	}

	return m, nil
}

// Get fetches a push subscription by id. The response must carry its own
// output_type field; its absence is a protocol violation by the remote
// service, not a local validation issue.
func (m *SubscriptionManager) Get(ctx context.Context, id int64) (*model.Subscription, error) {
	if id <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidData, "subscription id is required")
	}

	m.logger.Debugf("fetching push subscription: id=%d", id)
	res, err := m.caller.CallAPI(ctx, "push/get", map[string]string{
		"id": strconv.FormatInt(id, 10),
	})
	if err != nil {
		return nil, err
	}

	outputType, err := res.String("output_type")
	if err != nil {
		return nil, api.NewErrorWithCause(api.ErrCodeAPIResponse,
			"no output_type in the response", err)
	}
	return model.NewFromResponse(m.caller, outputType, res)
}

// ListOptions controls pagination and ordering of List calls.
type ListOptions struct {
	Page            int    // Page number, starting at 1
	PerPage         int    // Items per page
	OrderBy         string // "id" or "created_at"
	OrderDir        string // "asc" or "desc"
	IncludeFinished bool   // Include subscriptions on finished historic queries
}

// DefaultListOptions returns the first page of 20 items in ascending
// creation order.
func DefaultListOptions() ListOptions {
	return ListOptions{
		Page:     1,
		PerPage:  20,
		OrderBy:  model.OrderByCreatedAt,
		OrderDir: model.OrderDirAsc,
	}
}

// Validate checks the pagination and ordering arguments.
func (o ListOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Page, validation.Required, validation.Min(1)),
		validation.Field(&o.PerPage, validation.Required, validation.Min(1)),
		validation.Field(&o.OrderBy, validation.Required,
			validation.In(model.OrderByID, model.OrderByCreatedAt)),
		validation.Field(&o.OrderDir, validation.Required,
			validation.In(model.OrderDirAsc, model.OrderDirDesc)),
	)
}

// List fetches a page of the account's push subscriptions. Invalid options
// fail fast without a network call. A response without a subscriptions
// array is a protocol violation; a list entry with an unrecognized output
// type aborts the whole call, no partial results are returned.
func (m *SubscriptionManager) List(ctx context.Context, opts ListOptions) ([]*model.Subscription, error) {
	if err := opts.Validate(); err != nil {
		return nil, api.NewErrorWithCause(api.ErrCodeInvalidData, "invalid list options", err)
	}

	params := map[string]string{
		"page":      strconv.Itoa(opts.Page),
		"per_page":  strconv.Itoa(opts.PerPage),
		"order_by":  opts.OrderBy,
		"order_dir": opts.OrderDir,
	}
	if opts.IncludeFinished {
		params["include_finished"] = "1"
	}

	m.logger.Debugf("listing push subscriptions: page=%d, per_page=%d", opts.Page, opts.PerPage)
	res, err := m.caller.CallAPI(ctx, "push/get", params)
	if err != nil {
		return nil, err
	}

	entries, err := res.ObjectArray("subscriptions")
	if err != nil {
		return nil, api.NewErrorWithCause(api.ErrCodeAPIResponse,
			"failed to read the subscriptions from the response", err)
	}

	subs := make([]*model.Subscription, 0, len(entries))
	for _, entry := range entries {
		outputType, err := entry.String("output_type")
		if err != nil {
			return nil, api.NewErrorWithCause(api.ErrCodeAPIResponse,
				"failed to read the subscriptions from the response", err)
		}
		sub, err := model.NewFromResponse(m.caller, outputType, entry)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// CreateRequest represents a request to create a new push subscription.
type CreateRequest struct {
	OutputType    string                 // Destination kind (required)
	HashType      model.HashType         // "stream" or "historic" (required)
	Hash          string                 // Stream hash or playback id (required)
	Name          string                 // Human label
	InitialStatus model.Status           // Optional initial status, e.g. paused
	Connector     connectors.Connector   // Pre-built destination configuration
	OutputParams  map[string]interface{} // Raw configuration, dispatched through the connector registry when Connector is nil
}

// Validate checks the request before any network call.
func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OutputType, validation.Required),
		validation.Field(&r.HashType, validation.Required,
			validation.In(model.HashTypeStream, model.HashTypeHistoric)),
		validation.Field(&r.Hash, validation.Required),
	)
}

// Create builds a subscription of the requested output type, applies the
// destination configuration, and persists it. The returned subscription
// carries the server-assigned id and creation time.
func (m *SubscriptionManager) Create(ctx context.Context, req CreateRequest) (*model.Subscription, error) {
	if err := req.Validate(); err != nil {
		return nil, api.NewErrorWithCause(api.ErrCodeInvalidData, "invalid create request", err)
	}

	sub, err := model.NewWithTarget(m.caller, req.OutputType, req.HashType,
		req.Hash, req.Name, req.InitialStatus)
	if err != nil {
		return nil, err
	}

	connector := req.Connector
	if connector == nil && req.OutputParams != nil {
		connector, err = connectors.FromMap(req.OutputType, req.OutputParams)
		if err != nil {
			return nil, err
		}
	}
	if connector != nil {
		if err := sub.SetOutput(connector.Parameters()); err != nil {
			return nil, err
		}
	}

	if err := sub.Save(ctx); err != nil {
		return nil, err
	}

	m.logger.Infof("push subscription created: id=%d, name=%s, output_type=%s",
		sub.ID(), sub.Name(), sub.OutputType())
	return sub, nil
}

// Delete fetches a subscription by id and removes it remotely. The
// returned subscription is marked deleted locally.
func (m *SubscriptionManager) Delete(ctx context.Context, id int64) (*model.Subscription, error) {
	sub, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := sub.Delete(ctx); err != nil {
		return nil, err
	}

	m.logger.Infof("push subscription deleted: id=%d", id)
	return sub, nil
}
