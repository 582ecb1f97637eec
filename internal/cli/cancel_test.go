package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestWithInterrupt(t *testing.T) {
	ctx, cancel := WithInterrupt(context.Background())

	select {
	case <-ctx.Done():
		t.Fatal("context should not be cancelled yet")
	default:
	}

	cancel()
	<-ctx.Done()
}

func TestWithInterruptFollowsParent(t *testing.T) {
	parent, cancelParent := context.WithCancel(context.Background())
	ctx, cancel := WithInterrupt(parent)
	defer cancel()

	cancelParent()
	<-ctx.Done()
}

func TestRunUntilInterruptResult(t *testing.T) {
	if err := RunUntilInterrupt(context.Background(), nil, func(context.Context) error { return nil }); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	want := errors.New("fail")
	if err := RunUntilInterrupt(context.Background(), nil, func(context.Context) error { return want }); err != want {
		t.Fatalf("expected %v, got %v", want, err)
	}
}

func TestRunUntilInterruptCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	err := RunUntilInterrupt(ctx, nil, func(ctx context.Context) error {
		cancel()
		<-ctx.Done()
		return ctx.Err()
	})
	// A stop is not an error.
	if err != nil {
		t.Fatalf("expected nil on cancel, got %v", err)
	}
}

func TestStopped(t *testing.T) {
	ColorEnabled = false
	var buf bytes.Buffer
	Stopped(&buf, "watching")
	if got := buf.String(); got != "Stopped watching.\n" {
		t.Errorf("got %q", got)
	}
}
