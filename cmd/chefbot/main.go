package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"chefbot/internal/platform/config"
	"chefbot/internal/platform/logger"
	pnet "chefbot/internal/platform/net"

	"chefbot/internal/services/api"
	chefdom "chefbot/internal/services/chef/domain"

	"github.com/google/uuid"
)

// exit codes
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	if err := config.LoadDotenv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "load .env:", err)
		os.Exit(exitFail)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// wiring is lazy so usage errors never need an API key
	wire := func() chefdom.WorkflowPort {
		return api.Compose(api.Options{Config: config.New(), ServiceName: "chefbot"}).Workflow()
	}
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr, wire))
}

// run parses args, executes one workflow and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer, wire func() chefdom.WorkflowPort) int {
	fs := flag.NewFlagSet("chefbot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		link       = fs.String("url", "", "video link, e.g. https://www.youtube.com/watch?v=...")
		transcript = fs.Bool("transcript", false, "print the transcript instead of a summary")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return exitUsage
	}

	runID := uuid.NewString()
	ctx = pnet.WithRequestID(ctx, runID)
	log := logger.C(ctx)

	wf := wire()
	var (
		res chefdom.Result
		err error
	)
	if *transcript {
		res, err = wf.ShowTranscript(ctx, *link)
	} else {
		res, err = wf.Summarize(ctx, *link)
	}
	if err != nil {
		kind := chefdom.KindOf(err)
		log.Debug().Err(err).Str("kind", kind.String()).Msg("workflow failed")
		fmt.Fprintln(stderr, kind.Message())
		return exitFail
	}

	if res.Outcome == chefdom.OutcomeNotCulinary {
		fmt.Fprintln(stderr, res.Warning)
		return exitFail
	}
	if *transcript {
		fmt.Fprintln(stdout, res.Transcript)
	} else {
		fmt.Fprintln(stdout, res.Summary)
	}
	log.Debug().Str("video_id", res.VideoID).Str("lang", res.Language).Msg("workflow done")
	return exitOK
}
