// Package push is the client SDK for the push-notification backend. It
// wraps the REST endpoints for account registration, device registration,
// whitelist token issuance, message sending, and pubsub endpoint discovery
// with typed request builders and response parsers.
//
// All client operations are asynchronous: each builds a request, issues it
// on the shared transport, and delivers the typed result to a callback on a
// configurable executor (a dedicated serial one by default).
//
//	client, err := push.New(push.Config{BaseURL: "https://push.example.com/api/v1/"})
//	defer client.Close()
//
//	client.RegisterNewUser(ctx, push.RegisterUserParams{
//	    Username: "alice",
//	    Password: "hunter2",
//	}, func(acct *push.Account, err error) { ... })
package push
