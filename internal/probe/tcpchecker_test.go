package probe

import (
	"context"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/camera"
)

func TestTCPChecker_OpenPortNamesThePort(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	chk := NewTCPChecker(time.Second)
	out := chk.Check(context.Background(), camera.Device{Host: "127.0.0.1", Port: port})
	if !out.Succeeded {
		t.Fatalf("want open, got %+v", out)
	}
	if !strings.Contains(out.Detail, fmt.Sprintf("port %d", port)) {
		t.Fatalf("detail must name the tested port, got %q", out.Detail)
	}
}

func TestTCPChecker_ClosedPort(t *testing.T) {
	// Grab a free port, then close the listener so the port is dead.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	chk := NewTCPChecker(time.Second)
	out := chk.Check(context.Background(), camera.Device{Host: "127.0.0.1", Port: port})
	if out.Succeeded {
		t.Fatalf("want closed, got %+v", out)
	}
	if out.Detail == "" {
		t.Fatal("want a non-empty failure detail")
	}
}

func TestTCPChecker_BadHostDoesNotPanic(t *testing.T) {
	chk := NewTCPChecker(500 * time.Millisecond)
	out := chk.Check(context.Background(), camera.Device{Host: "camera.invalid", Port: 4747})
	if out.Succeeded {
		t.Fatalf("unresolvable host must fail, got %+v", out)
	}
	if out.Stage != camera.StageTCP {
		t.Fatalf("wrong stage: %s", out.Stage)
	}
}
