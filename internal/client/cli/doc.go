// Package cli provides the interactive GophPosts command-line client.
//
// It wires configuration, a gRPC connection to the server and a small REPL.
// Typical flow: register, login, then create, list, show, edit and delete
// posts. The access token returned by login is kept in memory only and is sent
// as the authorization header on every call that needs it.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
