package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"seo-pages-go/pkg/logger"
)

// CommandClient runs the Haloscan wrapper script once per keyword:
//
//	<command...> keyword "<keyword>" highlights
//
// and parses its standard output.
type CommandClient struct {
	command []string
	timeout time.Duration
	parser  *ResponseParser
	log     *logger.Logger
}

func NewCommandClient(command []string, timeout time.Duration) (*CommandClient, error) {
	if len(command) == 0 || strings.TrimSpace(command[0]) == "" {
		return nil, fmt.Errorf("haloscan command cannot be empty")
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", timeout)
	}
	return &CommandClient{
		command: append([]string(nil), command...),
		timeout: timeout,
		parser:  NewResponseParser(),
		log:     logger.GetLogger().WithField("component", "haloscan_command"),
	}, nil
}

func (c *CommandClient) Lookup(ctx context.Context, keyword string) (*KeywordMetrics, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	args := append(append([]string(nil), c.command[1:]...), "keyword", keyword, RequestedData)
	cmd := exec.CommandContext(callCtx, c.command[0], args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	start := time.Now()
	err := cmd.Run()
	c.log.WithFields(map[string]interface{}{
		"keyword":     keyword,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("Haloscan command finished")

	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", ErrTimeout, c.timeout)
		}
		return nil, fmt.Errorf("%w: %v: %s", ErrCommandFailed, err, strings.TrimSpace(snippet(stderr.Bytes())))
	}

	return c.parser.ParseResponse(stdout.Bytes())
}
