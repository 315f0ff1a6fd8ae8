// Package cli implements the interactive command loop for the auth CLI:
// it prompts for credentials, drives the HTTP API client, and reports
// results back to the user.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bushbass/fcc-jwt/internal/client/api"
	"github.com/bushbass/fcc-jwt/internal/client/config"
)

// authAPI is the surface of the HTTP client the command loop needs.
// Tests substitute a stub.
type authAPI interface {
	IsLoggedIn() bool
	Register(ctx context.Context, email string, password []byte) (string, error)
	Login(ctx context.Context, email string, password []byte) error
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
	Protected(ctx context.Context) (string, error)
	Ping(ctx context.Context) error
}

type App struct {
	config *config.Config
	api    authAPI
	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	client, err := api.NewClient(c.ServerBaseURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}
	return &App{config: c, api: client, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) getStatus() string {
	if a.api.IsLoggedIn() {
		return "(logged in)"
	}
	return ""
}

func (a *App) printHelp() {
	if a.api.IsLoggedIn() {
		fmt.Println("Available commands: protected, refresh, logout, ping, exit")
	} else {
		fmt.Println("Available commands: register, login, ping, exit")
	}
}

// Run starts a simple read-eval-print loop. It reads a line, parses the
// first token as the command, and dispatches to methods on a. The loop exits
// on EOF or when the user types "exit" or "quit". Command handlers print
// their own errors so the loop stays focused on I/O.
func (a *App) Run(ctx context.Context) {

	fmt.Println("Welcome to the auth CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("auth %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			a.printHelp()

		case "register":
			a.RegisterCmd(ctx)

		case "login":
			a.LoginCmd(ctx)

		case "protected":
			a.ProtectedCmd(ctx)

		case "refresh":
			a.RefreshCmd(ctx)

		case "logout":
			a.LogoutCmd(ctx)

		case "ping":
			a.PingCmd(ctx)

		case "exit", "quit":
			return

		default:
			fmt.Println("Unknown command, type 'help' for commands")
		}
	}
}
