package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/balahero03/Zero-Trust-Share-sub000/internal/common"
	pb "github.com/balahero03/Zero-Trust-Share-sub000/internal/proto"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusFromError translates the service error taxonomy into gRPC statuses.
// ErrAttemptsExhausted and ErrChallengeExpired deliberately share one
// message, so a caller probing the gate cannot tell whether the code timed
// out or the guessing budget ran dry.
func statusFromError(err error) error {
	var rateErr *common.RateLimitError
	var wrongErr *common.WrongCodeError

	switch {
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrShareGone):
		// FailedPrecondition, not NotFound: the share existed but was
		// burned, expired or revoked, and the client renders that
		// differently from an unknown id.
		return status.Error(codes.FailedPrecondition, common.ErrShareGone.Error())
	case errors.As(err, &rateErr):
		return status.Errorf(codes.ResourceExhausted, "too many codes requested, retry in %ds", int(rateErr.RetryAfter.Seconds())+1)
	case errors.As(err, &wrongErr):
		return status.Errorf(codes.PermissionDenied, "wrong code, %d attempts remaining", wrongErr.RemainingAttempts)
	case errors.Is(err, common.ErrAttemptsExhausted), errors.Is(err, common.ErrChallengeExpired):
		return status.Error(codes.PermissionDenied, "verification failed")
	case errors.Is(err, common.ErrNoActiveChallenge):
		return status.Error(codes.FailedPrecondition, "no active challenge")
	case errors.Is(err, common.ErrWrongSecret):
		return status.Error(codes.InvalidArgument, "decryption failed")
	case errors.Is(err, common.ErrInvalidGrant):
		return status.Error(codes.Unauthenticated, "invalid grant")
	case errors.Is(err, common.ErrDelivery):
		return status.Error(codes.Unavailable, "code delivery failed")
	case errors.Is(err, common.ErrInvitationClosed):
		return status.Error(codes.FailedPrecondition, "invitation closed")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) CreateShare(ctx context.Context, req *pb.CreateShareRequest) (*pb.CreateShareResponse, error) {

	params := services.CreateShareParams{
		OwnerRef:       req.OwnerRef,
		Ciphertext:     req.Ciphertext,
		FileSalt:       req.FileSalt,
		FileNonce:      req.FileNonce,
		NameCiphertext: req.NameCiphertext,
		NameNonce:      req.NameNonce,
		NameSalt:       req.NameSalt,
		BurnAfterRead:  req.BurnAfterRead,
		StorageKey:     req.StorageKey,
		FileSize:       req.FileSize,
	}
	if req.ExpiresAtUnix > 0 {
		t := time.Unix(req.ExpiresAtUnix, 0)
		params.ExpiresAt = &t
	}

	share, link, err := s.shares.CreateShare(ctx, params)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Share created", "share_id", share.ID)
	return &pb.CreateShareResponse{ShareId: share.ID, Link: link}, nil
}

func (s *GRPCServer) PresignUpload(ctx context.Context, req *pb.PresignUploadRequest) (*pb.PresignUploadResponse, error) {

	key, url, err := s.shares.PresignUpload(ctx)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.PresignUploadResponse{StorageKey: key, Url: url}, nil
}

func (s *GRPCServer) RevokeShare(ctx context.Context, req *pb.RevokeShareRequest) (*pb.RevokeShareResponse, error) {

	if err := s.shares.Revoke(ctx, req.ShareId); err != nil {
		return nil, statusFromError(err)
	}

	return &pb.RevokeShareResponse{}, nil
}

func (s *GRPCServer) CreateInvitation(ctx context.Context, req *pb.CreateInvitationRequest) (*pb.CreateInvitationResponse, error) {

	inv, err := s.invitations.Create(ctx, req.ShareId, req.Channel)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.CreateInvitationResponse{Token: inv.Token, ExpiresAtUnix: inv.ExpiresAt.Unix()}, nil
}

func (s *GRPCServer) AcceptInvitation(ctx context.Context, req *pb.AcceptInvitationRequest) (*pb.AcceptInvitationResponse, error) {

	inv, err := s.invitations.Accept(ctx, req.Token)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.AcceptInvitationResponse{ShareId: inv.ShareID, Channel: inv.RecipientChannel}, nil
}

func (s *GRPCServer) IssueCode(ctx context.Context, req *pb.IssueCodeRequest) (*pb.IssueCodeResponse, error) {

	record, err := s.gate.IssueCode(ctx, req.ShareId, req.Channel)
	if err != nil {
		// on a delivery failure the record exists and ResendCode can
		// retry it; the Unavailable status tells the caller so
		return nil, statusFromError(err)
	}

	return &pb.IssueCodeResponse{
		ExpiresAtUnix: record.ExpiresAt.Unix(),
		MaxAttempts:   int32(record.MaxAttempts),
	}, nil
}

func (s *GRPCServer) ResendCode(ctx context.Context, req *pb.ResendCodeRequest) (*pb.ResendCodeResponse, error) {

	if err := s.gate.ResendCode(ctx, req.ShareId, req.Channel); err != nil {
		return nil, statusFromError(err)
	}

	return &pb.ResendCodeResponse{}, nil
}

func (s *GRPCServer) VerifyCode(ctx context.Context, req *pb.VerifyCodeRequest) (*pb.VerifyCodeResponse, error) {

	grant, err := s.gate.VerifyCode(ctx, req.ShareId, req.Channel, req.Code)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.VerifyCodeResponse{GrantToken: grant.Token}, nil
}

func (s *GRPCServer) Download(ctx context.Context, req *pb.DownloadRequest) (*pb.DownloadResponse, error) {

	file, err := s.downloads.Download(ctx, services.DownloadRequest{
		ShareID:      req.ShareId,
		Channel:      req.Channel,
		Code:         req.Code,
		GrantToken:   req.GrantToken,
		Secret:       req.Secret,
		MasterSecret: req.MasterSecret,
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Download served", "share_id", req.ShareId, "size", fmt.Sprint(len(file.Data)))
	return &pb.DownloadResponse{Name: file.Name, Data: file.Data}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil
}
