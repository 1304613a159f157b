package cli

import (
	"context"
	"fmt"
	"strings"
)

// Root runs the interactive command loop. It reads a line, parses the first
// token as the command and dispatches to the matching handler. Handler
// errors are printed and the loop continues; the loop exits on EOF or when
// the user types "exit" or "quit".
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Share CLI (type 'help' for commands)")

	for {
		fmt.Fprint(a.out, "zts> ")
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			fmt.Fprintln(a.out, "Available commands: share, revoke, invite, accept, code, resend, verify, fetch, ping, exit")

		case "share":
			a.report(a.Share(ctx))

		case "revoke":
			a.report(a.Revoke(ctx))

		case "invite":
			a.report(a.Invite(ctx))

		case "accept":
			a.report(a.Accept(ctx))

		case "code":
			a.report(a.RequestCode(ctx))

		case "resend":
			a.report(a.Resend(ctx))

		case "verify":
			a.report(a.Verify(ctx))

		case "fetch":
			a.report(a.Fetch(ctx))

		case "ping":
			a.report(a.Ping(ctx))

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) report(err error) {
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
}

func (a *App) Ping(ctx context.Context) error {
	if err := a.api.Ping(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Server is reachable.")
	return nil
}
