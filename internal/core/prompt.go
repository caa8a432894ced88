package core

import (
	"bufio"
	"context"
	"io"
	"strings"

	"hellotcp/config"
	herrors "hellotcp/internal/errors"
	"hellotcp/util"
)

const (
	modePrompt       = "Please select mode: (1) Server, (2) Client"
	invalidSelection = "Invalid selection. Please enter 1 for Server or 2 for Client."
	messagePrompt    = "Please enter message sent to server"
)

// ChooseMode resolves the startup choice.  A non-empty preset (from
// --mode) is parsed without prompting; otherwise the operator is asked
// via SelectMode.  Either way an invalid choice is logged the same way
// and reported as ErrInvalidSelection.
func ChooseMode(ctx context.Context, preset string, in *bufio.Reader, logger *util.Logger) (config.Mode, error) {
	if preset == "" {
		return SelectMode(ctx, in, logger)
	}
	mode, err := config.ParseMode(preset)
	if err != nil {
		logger.Info(invalidSelection)
		return config.ModeUnset, err
	}
	return mode, nil
}

// SelectMode asks the operator to choose server or client and reads one
// line from in.  Anything other than a valid choice, including end of
// input, is logged and reported as ErrInvalidSelection.
func SelectMode(ctx context.Context, in *bufio.Reader, logger *util.Logger) (config.Mode, error) {
	logger.Info(modePrompt)

	line, err := readLine(ctx, in)
	if err != nil && !herrors.Is(err, herrors.ErrNoInput) {
		return config.ModeUnset, err
	}

	mode, err := config.ParseMode(line)
	if err != nil {
		logger.Info(invalidSelection)
		return config.ModeUnset, err
	}
	return mode, nil
}

type lineResult struct {
	line string
	err  error
}

// readLine returns the next line from in with surrounding whitespace
// trimmed.  It gives up when ctx is cancelled, leaving the blocked
// read behind; the process is about to exit in that case.
func readLine(ctx context.Context, in *bufio.Reader) (string, error) {
	ch := make(chan lineResult, 1)
	go func() {
		line, err := in.ReadString('\n')
		switch {
		case err == io.EOF && line == "":
			err = herrors.ErrNoInput
		case err == io.EOF:
			err = nil
		}
		ch <- lineResult{line: strings.TrimSpace(line), err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}

// asBufio wraps r unless it already buffers, so a reader shared between
// the mode prompt and the client loop keeps its buffered input.
func asBufio(r io.Reader) *bufio.Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}
