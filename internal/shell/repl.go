package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// maxLine bounds the length of one command line.
const maxLine = 1 << 20

// Run reads command lines from in and executes them until `quit', the end
// of input, or cancellation of ctx. Reaching the end of input is not an
// error; cancellation returns ctx.Err().
//
// On `quit' or cancellation Run returns without waiting for the reader
// goroutine. That goroutine stays blocked in Scan until in yields another
// line or is closed, so on a terminal stdin it lives until the process
// exits. Callers that need it gone must close in.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		sc.Buffer(make([]byte, 0, 4096), maxLine)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- sc.Err()
	}()

	for !s.quit {
		s.showPrompt()
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.prompt)
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(s.prompt)
				select {
				case err := <-errc:
					return err
				default:
					return ctx.Err()
				}
			}
			s.Exec(ctx, line)
		}
	}
	return nil
}
