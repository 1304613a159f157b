package grpc

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
)

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	s := newServer(&fakeShares{}, &fakeGate{}, &fakeDownloads{}, &fakeInvitations{})

	info := &grpc.UnaryServerInfo{FullMethod: "/zerotrustshare.service.ZeroTrustShareService/Ping"}
	handlerCalled := false

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		return "ok", nil
	}

	resp, err := s.loggingInterceptor(context.Background(), nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled {
		t.Fatal("handler was not called")
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
}

func TestLoggingInterceptor_PropagatesError(t *testing.T) {
	s := newServer(&fakeShares{}, &fakeGate{}, &fakeDownloads{}, &fakeInvitations{})

	info := &grpc.UnaryServerInfo{FullMethod: "/zerotrustshare.service.ZeroTrustShareService/Download"}
	wantErr := errors.New("handler failed")

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, wantErr
	}

	_, err := s.loggingInterceptor(context.Background(), nil, info, h)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected handler error, got %v", err)
	}
}
