package cli

import (
	"context"
	"fmt"

	gs "github.com/dmitrijs2005/gophposts/internal/server/grpc"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func (a *App) readCredentials() (string, []byte, error) {
	userName, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	return userName, password, nil
}

// Register prompts for a user name and password and creates the account.
func (a *App) Register(ctx context.Context) error {
	userName, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer wipe(password)

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	if _, err := a.api.Register(ctx, &gs.RegisterRequest{Username: userName, Password: string(password)}); err != nil {
		return a.report(err)
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Login prompts for credentials and keeps the returned token for later calls.
func (a *App) Login(ctx context.Context) error {
	userName, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer wipe(password)

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	resp, bearer, err := a.api.Login(ctx, &gs.LoginRequest{Username: userName, Password: string(password)})
	if err != nil {
		return a.report(err)
	}
	if bearer == "" {
		bearer = "Bearer " + resp.AccessToken
	}

	a.token = bearer
	a.userName = userName
	fmt.Fprintf(a.out, "Logged in, session valid until %s\n", resp.ExpiresAt.Local().Format("2006-01-02 15:04:05"))
	return nil
}

// Logout forgets the token. Tokens cannot be revoked server-side; it simply
// stops being sent.
func (a *App) Logout(ctx context.Context) error {
	a.token = ""
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	resp, err := a.api.Ping(ctx)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "Server status:", resp.Status)
	return nil
}
