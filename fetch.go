package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/CrestNiraj12/threadreader/app"
	"github.com/CrestNiraj12/threadreader/tui/convert"
)

// fetchOnce processes url without the TUI: thread text goes to stdout,
// notices and failures to stderr using the same wording as the screen.
func fetchOnce(ctx context.Context, processor app.ThreadProcessor, url string, stdout, stderr io.Writer) int {
	url = strings.TrimSpace(url)
	if url == "" {
		fmt.Fprintln(stderr, convert.MsgInvalidURL)
		return 1
	}

	result, err := processor.Process(ctx, url)
	if err != nil {
		fmt.Fprintln(stderr, convert.FailureMessage(err))
		return 1
	}
	if result.Cached {
		fmt.Fprintln(stderr, convert.MsgCached)
	}
	fmt.Fprint(stdout, result.Text)
	if !strings.HasSuffix(result.Text, "\n") {
		fmt.Fprintln(stdout)
	}
	return 0
}
