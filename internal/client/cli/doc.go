// Package cli implements the interactive terminal front end of the burger
// constructor client.
//
// The CLI wires configuration, persistent storage, the cookie session, the
// REST client and the live order feed into a single store.Store, then runs a
// line-oriented REPL on top of it. Every command is a thin intent: it
// dispatches to the store, waits for the outcome where the user expects one,
// and renders the resulting state through selectors.
//
// Typical usage:
//
//	cfg := config.LoadConfig()
//	app, err := cli.NewApp(ctx, cfg)
//	if err != nil { ... }
//	defer app.Close()
//	app.Run(ctx)
package cli
