package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bushbass/fcc-jwt/internal/client/api"
	"github.com/bushbass/fcc-jwt/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// RegisterCmd prompts for an email and password and attempts to create a new
// account. The password byte slice is wiped before returning.
func (a *App) RegisterCmd(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.api.Register(ctx, email, password); err != nil {
		fmt.Printf("Registration unsuccessful: %s\n", err.Error())
		return err
	}

	fmt.Println("User created, you can now log in.")
	return nil
}

// LoginCmd prompts for credentials and tries to authenticate. On success the
// API client holds the access token and the refresh cookie for later calls.
func (a *App) LoginCmd(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.Login(ctx, email, password); err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			fmt.Println("Server unavailable, try again later.")
		} else {
			fmt.Printf("Login unsuccessful: %s\n", err.Error())
		}
		return err
	}

	fmt.Println("Login successful.")
	return nil
}

// ProtectedCmd fetches the gated sample resource. On an expired access token
// it refreshes once and retries.
func (a *App) ProtectedCmd(ctx context.Context) error {
	data, err := a.api.Protected(ctx)
	if errors.Is(err, common.ErrorUnauthorized) {
		if err = a.api.Refresh(ctx); err == nil {
			data, err = a.api.Protected(ctx)
		}
	}
	if err != nil {
		fmt.Printf("Request unsuccessful: %s\n", err.Error())
		return err
	}

	fmt.Println(data)
	return nil
}

// RefreshCmd rotates the token pair using the stored refresh cookie.
func (a *App) RefreshCmd(ctx context.Context) error {
	if err := a.api.Refresh(ctx); err != nil {
		fmt.Printf("Refresh unsuccessful: %s\n", err.Error())
		return err
	}

	fmt.Println("Tokens refreshed.")
	return nil
}

// LogoutCmd ends the session on the server and locally.
func (a *App) LogoutCmd(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		fmt.Printf("Logout unsuccessful: %s\n", err.Error())
		return err
	}

	fmt.Println("Logged out.")
	return nil
}

// PingCmd checks whether the server is reachable.
func (a *App) PingCmd(ctx context.Context) error {
	if err := a.api.Ping(ctx); err != nil {
		fmt.Printf("Server unreachable: %s\n", err.Error())
		return err
	}

	fmt.Println("Server is up.")
	return nil
}
