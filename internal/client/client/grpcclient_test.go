package client

import (
	"context"
	"testing"
	"time"

	pb "github.com/balahero03/Zero-Trust-Share-sub000/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

/*************
 * Fake pb client
 *************/

type fakePB struct {
	// inputs captured
	lastCreateShareReq   *pb.CreateShareRequest
	lastRevokeReq        *pb.RevokeShareRequest
	lastIssueCodeReq     *pb.IssueCodeRequest
	lastResendCodeReq    *pb.ResendCodeRequest
	lastVerifyCodeReq    *pb.VerifyCodeRequest
	lastDownloadReq      *pb.DownloadRequest
	lastCreateInviteReq  *pb.CreateInvitationRequest
	lastAcceptInviteReq  *pb.AcceptInvitationRequest
	lastPresignUploadReq *pb.PresignUploadRequest
	lastPingReq          *pb.PingRequest

	// outputs preset
	createShareResp *pb.CreateShareResponse
	createShareErr  error

	revokeErr error

	issueCodeResp *pb.IssueCodeResponse
	issueCodeErr  error

	resendCodeErr error

	verifyCodeResp *pb.VerifyCodeResponse
	verifyCodeErr  error

	downloadResp *pb.DownloadResponse
	downloadErr  error

	createInviteResp *pb.CreateInvitationResponse
	createInviteErr  error

	acceptInviteResp *pb.AcceptInvitationResponse
	acceptInviteErr  error

	presignUploadResp *pb.PresignUploadResponse
	presignUploadErr  error

	pingResp *pb.PingResponse
	pingErr  error
}

func (f *fakePB) CreateShare(ctx context.Context, in *pb.CreateShareRequest, opts ...grpc.CallOption) (*pb.CreateShareResponse, error) {
	f.lastCreateShareReq = in
	return f.createShareResp, f.createShareErr
}
func (f *fakePB) PresignUpload(ctx context.Context, in *pb.PresignUploadRequest, opts ...grpc.CallOption) (*pb.PresignUploadResponse, error) {
	f.lastPresignUploadReq = in
	return f.presignUploadResp, f.presignUploadErr
}
func (f *fakePB) RevokeShare(ctx context.Context, in *pb.RevokeShareRequest, opts ...grpc.CallOption) (*pb.RevokeShareResponse, error) {
	f.lastRevokeReq = in
	return &pb.RevokeShareResponse{}, f.revokeErr
}
func (f *fakePB) CreateInvitation(ctx context.Context, in *pb.CreateInvitationRequest, opts ...grpc.CallOption) (*pb.CreateInvitationResponse, error) {
	f.lastCreateInviteReq = in
	return f.createInviteResp, f.createInviteErr
}
func (f *fakePB) AcceptInvitation(ctx context.Context, in *pb.AcceptInvitationRequest, opts ...grpc.CallOption) (*pb.AcceptInvitationResponse, error) {
	f.lastAcceptInviteReq = in
	return f.acceptInviteResp, f.acceptInviteErr
}
func (f *fakePB) IssueCode(ctx context.Context, in *pb.IssueCodeRequest, opts ...grpc.CallOption) (*pb.IssueCodeResponse, error) {
	f.lastIssueCodeReq = in
	return f.issueCodeResp, f.issueCodeErr
}
func (f *fakePB) ResendCode(ctx context.Context, in *pb.ResendCodeRequest, opts ...grpc.CallOption) (*pb.ResendCodeResponse, error) {
	f.lastResendCodeReq = in
	return &pb.ResendCodeResponse{}, f.resendCodeErr
}
func (f *fakePB) VerifyCode(ctx context.Context, in *pb.VerifyCodeRequest, opts ...grpc.CallOption) (*pb.VerifyCodeResponse, error) {
	f.lastVerifyCodeReq = in
	return f.verifyCodeResp, f.verifyCodeErr
}
func (f *fakePB) Download(ctx context.Context, in *pb.DownloadRequest, opts ...grpc.CallOption) (*pb.DownloadResponse, error) {
	f.lastDownloadReq = in
	return f.downloadResp, f.downloadErr
}
func (f *fakePB) Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	f.lastPingReq = in
	return f.pingResp, f.pingErr
}

/*************
 * Method tests
 *************/

func TestCreateShare_SendsEnvelopeAndReturnsLink(t *testing.T) {
	f := &fakePB{createShareResp: &pb.CreateShareResponse{ShareId: "id-1", Link: "https://x/s/id-1#salt"}}
	c := &GRPCClient{client: f}

	exp := time.Unix(1900000000, 0)
	sealed := SealedShare{
		Ciphertext:    []byte("ct"),
		FileSalt:      []byte("salt"),
		FileNonce:     []byte("nonce"),
		BurnAfterRead: true,
		ExpiresAt:     &exp,
	}

	id, link, err := c.CreateShare(context.Background(), sealed)
	require.NoError(t, err)
	assert.Equal(t, "id-1", id)
	assert.Equal(t, "https://x/s/id-1#salt", link)

	require.NotNil(t, f.lastCreateShareReq)
	assert.Equal(t, []byte("ct"), f.lastCreateShareReq.Ciphertext)
	assert.True(t, f.lastCreateShareReq.BurnAfterRead)
	assert.Equal(t, int64(1900000000), f.lastCreateShareReq.ExpiresAtUnix)
}

func TestCreateShare_StagedKeyTravels(t *testing.T) {
	f := &fakePB{createShareResp: &pb.CreateShareResponse{ShareId: "id-2", Link: "l"}}
	c := &GRPCClient{client: f}

	_, _, err := c.CreateShare(context.Background(), SealedShare{StorageKey: "staged/k1", FileSize: 42, FileSalt: []byte("s")})
	require.NoError(t, err)
	assert.Equal(t, "staged/k1", f.lastCreateShareReq.StorageKey)
	assert.Equal(t, int64(42), f.lastCreateShareReq.FileSize)
	assert.Empty(t, f.lastCreateShareReq.Ciphertext)
	assert.Zero(t, f.lastCreateShareReq.ExpiresAtUnix)
}

func TestPresignUpload(t *testing.T) {
	f := &fakePB{presignUploadResp: &pb.PresignUploadResponse{StorageKey: "k", Url: "https://storage/put"}}
	c := &GRPCClient{client: f}

	key, url, err := c.PresignUpload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "k", key)
	assert.Equal(t, "https://storage/put", url)
}

func TestIssueCode(t *testing.T) {
	f := &fakePB{issueCodeResp: &pb.IssueCodeResponse{ExpiresAtUnix: 1900000000, MaxAttempts: 5}}
	c := &GRPCClient{client: f}

	exp, attempts, err := c.IssueCode(context.Background(), "id-1", "sms:+15551234567")
	require.NoError(t, err)
	assert.Equal(t, time.Unix(1900000000, 0), exp)
	assert.Equal(t, 5, attempts)
	assert.Equal(t, "sms:+15551234567", f.lastIssueCodeReq.Channel)
}

func TestResendCode(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f}

	require.NoError(t, c.ResendCode(context.Background(), "id-1", "sms:+15551234567"))
	require.NotNil(t, f.lastResendCodeReq)
	assert.Equal(t, "id-1", f.lastResendCodeReq.ShareId)
	assert.Equal(t, "sms:+15551234567", f.lastResendCodeReq.Channel)

	f.resendCodeErr = status.Error(codes.Unavailable, "code delivery failed")
	assert.ErrorIs(t, c.ResendCode(context.Background(), "id-1", "sms:+15551234567"), ErrUnavailable)
}

func TestVerifyCode(t *testing.T) {
	f := &fakePB{verifyCodeResp: &pb.VerifyCodeResponse{GrantToken: "jwt-token"}}
	c := &GRPCClient{client: f}

	grant, err := c.VerifyCode(context.Background(), "id-1", "ch", "123456")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", grant)
	assert.Equal(t, "123456", f.lastVerifyCodeReq.Code)
}

func TestDownload(t *testing.T) {
	f := &fakePB{downloadResp: &pb.DownloadResponse{Name: "plan.txt", Data: []byte("hello")}}
	c := &GRPCClient{client: f}

	name, data, err := c.Download(context.Background(), FetchRequest{
		ShareID: "id-1",
		Channel: "ch",
		Code:    "123456",
		Secret:  "passcode",
	})
	require.NoError(t, err)
	assert.Equal(t, "plan.txt", name)
	assert.Equal(t, []byte("hello"), data)
	assert.Equal(t, "passcode", f.lastDownloadReq.Secret)
	assert.Empty(t, f.lastDownloadReq.GrantToken)
}

func TestDownload_WithGrant(t *testing.T) {
	f := &fakePB{downloadResp: &pb.DownloadResponse{Name: "plan.txt", Data: []byte("hello")}}
	c := &GRPCClient{client: f}

	_, _, err := c.Download(context.Background(), FetchRequest{
		ShareID:    "id-1",
		Channel:    "ch",
		GrantToken: "jwt-token",
		Secret:     "passcode",
	})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", f.lastDownloadReq.GrantToken)
	assert.Empty(t, f.lastDownloadReq.Code)
}

func TestInvitations(t *testing.T) {
	f := &fakePB{
		createInviteResp: &pb.CreateInvitationResponse{Token: "tok", ExpiresAtUnix: 1900000000},
		acceptInviteResp: &pb.AcceptInvitationResponse{ShareId: "id-1", Channel: "ch"},
	}
	c := &GRPCClient{client: f}

	tok, exp, err := c.CreateInvitation(context.Background(), "id-1", "ch")
	require.NoError(t, err)
	assert.Equal(t, "tok", tok)
	assert.Equal(t, time.Unix(1900000000, 0), exp)

	id, ch, err := c.AcceptInvitation(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "id-1", id)
	assert.Equal(t, "ch", ch)
}

/*************
 * mapError tests
 *************/

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"permission denied", status.Error(codes.PermissionDenied, "wrong code, 2 attempts remaining"), ErrAccessDenied},
		{"unauthenticated", status.Error(codes.Unauthenticated, "invalid grant"), ErrAccessDenied},
		{"not found", status.Error(codes.NotFound, "not found"), ErrNotFound},
		{"share gone", status.Error(codes.FailedPrecondition, "share gone"), ErrShareGone},
		{"resource exhausted", status.Error(codes.ResourceExhausted, "too many codes requested, retry in 60s"), ErrThrottled},
		{"unavailable", status.Error(codes.Unavailable, "down"), ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.mapError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapError_KeepsStatusMessage(t *testing.T) {
	c := &GRPCClient{}
	err := c.mapError(status.Error(codes.PermissionDenied, "wrong code, 2 attempts remaining"))
	assert.Contains(t, err.Error(), "wrong code, 2 attempts remaining")
}

func TestMapError_DefaultWrapsRPCError(t *testing.T) {
	c := &GRPCClient{}
	err := c.mapError(status.Error(codes.Internal, "boom"))
	assert.Contains(t, err.Error(), "rpc error")
}

// FailedPrecondition statuses other than a gone share keep their own
// message instead of collapsing into ErrShareGone.
func TestMapError_OtherPreconditionsNotGone(t *testing.T) {
	c := &GRPCClient{}
	err := c.mapError(status.Error(codes.FailedPrecondition, "no active challenge"))
	assert.NotErrorIs(t, err, ErrShareGone)
	assert.Contains(t, err.Error(), "no active challenge")
}
