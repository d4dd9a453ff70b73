// camprobe checks that the phone camera is reachable and, optionally,
// hands off to the scanner once it is.
//
//	camprobe -host 10.0.0.187
//	camprobe -host 10.0.0.187 -port 4747 -launch
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/camera"
	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/config"
	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/console"
	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/launcher"
	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/logging"
	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/preflight"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	host := flag.String("host", cfg.CamHost, "camera host or IP")
	port := flag.Int("port", cfg.CamPort, "camera port")
	doLaunch := flag.Bool("launch", false, "launch the scanner when the camera is reachable")
	flag.Parse()

	if *host == "" {
		fmt.Fprintln(os.Stderr, "no camera host: pass -host or set CAM_HOST")
		os.Exit(2)
	}
	if *port < 1 || *port > 65535 {
		fmt.Fprintln(os.Stderr, "port out of range [1,65535]")
		os.Exit(2)
	}

	dev := camera.Device{Host: *host, Port: *port, StreamPath: cfg.CamStreamPath}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := console.NewWriter(os.Stdout)
	p := preflight.New(cfg.Timeouts(), out)
	results := p.Run(ctx, dev)

	text, sev := preflight.Summary(dev, results)
	out.Summary(text, sev)

	if sev == camera.SeverityFail {
		os.Exit(1)
	}
	if !*doLaunch {
		return
	}
	if sev != camera.SeverityOK {
		fmt.Fprintln(os.Stderr, "not launching: camera is not serving yet")
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	l := &launcher.Launcher{
		Logger:  logger,
		Command: cfg.ScannerCmd,
		Args:    cfg.ScannerArgs,
		PassEnv: cfg.PassEnv,
	}
	if err := l.Launch(ctx, dev); err != nil {
		fmt.Fprintln(os.Stderr, "scanner:", err)
		os.Exit(1)
	}
}
