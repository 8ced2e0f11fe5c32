// Package driftline emits pseudonymous usage analytics from AT Protocol
// client applications to a self-hosted collector.
//
// # Identity model
//
// Events never carry the user's DID. Callers derive a short pseudonymous
// identifier with DeriveUIDFromDID and configure the client with it; the
// collector only ever sees that identifier, and app views salted
// independently cannot be joined on it.
//
// # Delivery contract
//
// Tracking methods are fire-and-forget. Each call stamps an event and posts
// it from its own goroutine, so the caller is never blocked on the network
// and never sees an error; failures surface through the configured Logger.
// There are no ordering guarantees between events, no batching and no
// retries.
//
// Usage:
//
//	uid := driftline.DeriveUIDFromDID(session.DID, salt)
//	client := driftline.NewClient(driftline.Config{
//		AppView:      "tidings",
//		Env:          driftline.EnvProd,
//		CollectorURL: "https://analytics.example.com",
//		APIKey:       apiKey,
//		UID:          uid,
//	})
//	defer client.Close()
//
//	client.TrackView("feed", nil)
package driftline
