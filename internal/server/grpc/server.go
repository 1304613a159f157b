package grpc

import (
	"context"
	"net"

	"github.com/balahero03/Zero-Trust-Share-sub000/internal/logging"
	pb "github.com/balahero03/Zero-Trust-Share-sub000/internal/proto"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/models"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/services"
	"google.golang.org/grpc"
)

type shareSvc interface {
	CreateShare(ctx context.Context, params services.CreateShareParams) (*models.Share, string, error)
	PresignUpload(ctx context.Context) (string, string, error)
	Revoke(ctx context.Context, id string) error
}

type gateSvc interface {
	IssueCode(ctx context.Context, shareID, channel string) (*models.Verification, error)
	ResendCode(ctx context.Context, shareID, channel string) error
	VerifyCode(ctx context.Context, shareID, channel, submitted string) (*services.Grant, error)
}

type downloadSvc interface {
	Download(ctx context.Context, req services.DownloadRequest) (*services.DecryptedFile, error)
}

type invitationSvc interface {
	Create(ctx context.Context, shareID, channel string) (*models.Invitation, error)
	Accept(ctx context.Context, token string) (*models.Invitation, error)
}

type GRPCServer struct {
	pb.UnimplementedZeroTrustShareServiceServer
	address     string
	shares      shareSvc
	gate        gateSvc
	downloads   downloadSvc
	invitations invitationSvc
	logger      logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, shares shareSvc, gate gateSvc, downloads downloadSvc, invitations invitationSvc) (*GRPCServer, error) {
	return &GRPCServer{
		address:     a,
		logger:      l.With("module", "grpc_server"),
		shares:      shares,
		gate:        gate,
		downloads:   downloads,
		invitations: invitations,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))

	// registers service
	pb.RegisterZeroTrustShareServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
