package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"github.com/balahero03/Zero-Trust-Share-sub000/internal/client/client"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/client/config"
)

// shareAPI is the backend surface the CLI operates on. The real
// client.GRPCClient satisfies it; tests provide a lightweight fake.
type shareAPI interface {
	Ping(ctx context.Context) error
	CreateShare(ctx context.Context, sealed client.SealedShare) (string, string, error)
	PresignUpload(ctx context.Context) (string, string, error)
	RevokeShare(ctx context.Context, shareID string) error
	CreateInvitation(ctx context.Context, shareID, channel string) (string, time.Time, error)
	AcceptInvitation(ctx context.Context, token string) (string, string, error)
	IssueCode(ctx context.Context, shareID, channel string) (time.Time, int, error)
	ResendCode(ctx context.Context, shareID, channel string) error
	VerifyCode(ctx context.Context, shareID, channel, code string) (string, error)
	Download(ctx context.Context, fetch client.FetchRequest) (string, []byte, error)
	Close() error
}

type App struct {
	config *config.Config
	api    shareAPI
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewShareClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()
	a.Root(ctx)
}

// callCtx derives a per-request context bounded by the configured timeout.
func (a *App) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
