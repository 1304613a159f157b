package client

import (
	"context"
	"fmt"
	"time"

	"github.com/balahero03/Zero-Trust-Share-sub000/internal/common"
	pb "github.com/balahero03/Zero-Trust-Share-sub000/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// SealedShare carries the client-side encrypted payload and envelope
// metadata for registration. The server never sees plaintext or secrets:
// everything here was sealed locally before the call.
type SealedShare struct {
	OwnerRef string

	Ciphertext []byte
	FileSalt   []byte
	FileNonce  []byte

	NameCiphertext []byte
	NameNonce      []byte
	NameSalt       []byte

	BurnAfterRead bool
	ExpiresAt     *time.Time

	// StorageKey references ciphertext already uploaded through a
	// presigned URL. When set, Ciphertext stays empty and FileSize
	// reports the size of the staged object.
	StorageKey string
	FileSize   int64
}

// FetchRequest identifies the share and carries the recipient-side secrets
// for one download. A non-empty GrantToken is used instead of Code.
type FetchRequest struct {
	ShareID      string
	Channel      string
	Code         string
	GrantToken   string
	Secret       string
	MasterSecret string
}

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.ZeroTrustShareServiceClient
}

func NewShareClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewZeroTrustShareServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

// CreateShare registers a sealed payload and returns the share id together
// with the share link. The link fragment carries the file salt; hand the
// full link only to the intended recipient.
func (s *GRPCClient) CreateShare(ctx context.Context, sealed SealedShare) (string, string, error) {
	req := &pb.CreateShareRequest{
		OwnerRef:       sealed.OwnerRef,
		Ciphertext:     sealed.Ciphertext,
		FileSalt:       sealed.FileSalt,
		FileNonce:      sealed.FileNonce,
		NameCiphertext: sealed.NameCiphertext,
		NameNonce:      sealed.NameNonce,
		NameSalt:       sealed.NameSalt,
		BurnAfterRead:  sealed.BurnAfterRead,
		StorageKey:     sealed.StorageKey,
		FileSize:       sealed.FileSize,
	}
	if sealed.ExpiresAt != nil {
		req.ExpiresAtUnix = sealed.ExpiresAt.Unix()
	}

	resp, err := s.client.CreateShare(ctx, req)
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.ShareId, resp.Link, nil
}

// PresignUpload reserves a storage key and returns a presigned PUT URL so
// large ciphertext can go straight to object storage.
func (s *GRPCClient) PresignUpload(ctx context.Context) (string, string, error) {
	resp, err := s.client.PresignUpload(ctx, &pb.PresignUploadRequest{})
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.StorageKey, resp.Url, nil
}

func (s *GRPCClient) RevokeShare(ctx context.Context, shareID string) error {
	_, err := s.client.RevokeShare(ctx, &pb.RevokeShareRequest{ShareId: shareID})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) CreateInvitation(ctx context.Context, shareID, channel string) (string, time.Time, error) {
	resp, err := s.client.CreateInvitation(ctx, &pb.CreateInvitationRequest{ShareId: shareID, Channel: channel})
	if err != nil {
		return "", time.Time{}, s.mapError(err)
	}
	return resp.Token, time.Unix(resp.ExpiresAtUnix, 0), nil
}

func (s *GRPCClient) AcceptInvitation(ctx context.Context, token string) (string, string, error) {
	resp, err := s.client.AcceptInvitation(ctx, &pb.AcceptInvitationRequest{Token: token})
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.ShareId, resp.Channel, nil
}

// IssueCode asks the server to generate and deliver a one-time code over
// the given channel. The code itself never travels back on this call.
func (s *GRPCClient) IssueCode(ctx context.Context, shareID, channel string) (time.Time, int, error) {
	resp, err := s.client.IssueCode(ctx, &pb.IssueCodeRequest{ShareId: shareID, Channel: channel})
	if err != nil {
		return time.Time{}, 0, s.mapError(err)
	}
	return time.Unix(resp.ExpiresAtUnix, 0), int(resp.MaxAttempts), nil
}

// ResendCode asks the server to push the already-issued code again, for
// when the first delivery never arrived.
func (s *GRPCClient) ResendCode(ctx context.Context, shareID, channel string) error {
	_, err := s.client.ResendCode(ctx, &pb.ResendCodeRequest{ShareId: shareID, Channel: channel})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) VerifyCode(ctx context.Context, shareID, channel, code string) (string, error) {
	resp, err := s.client.VerifyCode(ctx, &pb.VerifyCodeRequest{ShareId: shareID, Channel: channel, Code: code})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GrantToken, nil
}

// Download passes the gate with the one-time code or a previously obtained
// grant, opens the share with the passcode and returns the recovered file
// name and contents.
func (s *GRPCClient) Download(ctx context.Context, fetch FetchRequest) (string, []byte, error) {
	req := &pb.DownloadRequest{
		ShareId:      fetch.ShareID,
		Channel:      fetch.Channel,
		Code:         fetch.Code,
		GrantToken:   fetch.GrantToken,
		Secret:       fetch.Secret,
		MasterSecret: fetch.MasterSecret,
	}

	resp, err := s.client.Download(ctx, req)
	if err != nil {
		return "", nil, s.mapError(err)
	}
	return resp.Name, resp.Data, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrAccessDenied, st.Message())
	case codes.NotFound:
		return ErrNotFound
	case codes.FailedPrecondition:
		if st.Message() == common.ErrShareGone.Error() {
			return ErrShareGone
		}
		return fmt.Errorf("rpc error: %w", err)
	case codes.ResourceExhausted:
		return fmt.Errorf("%w: %s", ErrThrottled, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
