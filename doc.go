// Package pushsub is a client SDK for the push subscription feature of a
// social-data aggregation API: creating, listing, updating, and deleting
// the standing server-side rules that stream filtered social-media data to
// a configured destination (HTTP endpoints, S3 buckets, databases, log
// aggregators).
//
// # Quick Start
//
// The SDK talks to the remote service through an api.Caller, the
// authenticated session collaborator that owns transport, auth, and raw
// response parsing. Bring your own implementation and hand it to a
// SubscriptionManager:
//
//	manager, err := pushsub.NewSubscriptionManager(
//	    pushsub.WithCaller(session),
//	    pushsub.WithLogger(&pushsub.NoopLogger{}),
//	)
//
// Create a subscription streaming a live stream to an HTTP endpoint:
//
//	connector := connectors.NewHTTP().
//	    URL("https://example.com/ingest").
//	    DeliveryFrequency(60).
//	    MaxSize(10485760)
//
//	sub, err := manager.Create(ctx, pushsub.CreateRequest{
//	    OutputType: "http",
//	    HashType:   model.HashTypeStream,
//	    Hash:       "2459b03a13577579bca76471778a5c3d",
//	    Name:       "My Sub",
//	    Connector:  connector,
//	})
//
// Page through existing subscriptions, newest first:
//
//	opts := pushsub.DefaultListOptions()
//	opts.OrderDir = model.OrderDirDesc
//	subs, err := manager.List(ctx, opts)
//
// # Architecture
//
// Three layers cooperate:
//
//   - api: collaborator contracts. The Caller interface, the generic JSON
//     Object with typed field extraction, and the error taxonomy
//     (INVALID_DATA, API_ERROR, ACCESS_DENIED).
//   - model: the Subscription entity with its lifecycle (statuses, stream
//     vs historic targets, save/delete semantics) and the output-type
//     factory dispatching to the matching variant.
//   - connectors: per-destination configuration builders accumulating the
//     prefixed output_params.* key/value set, plus a registry dispatching
//     an output type identifier to its builder.
//
// Every validation failure surfaces before a network call where possible;
// no error is swallowed or retried inside the SDK. Retries, timeouts, and
// backpressure belong to the Caller implementation.
package pushsub
