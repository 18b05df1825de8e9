package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"example.com/bc-solo/internal/game"
)

// Фиксированные строки игры; весь игровой вывод — только они.
const (
	prompt      = "Please input your guess."
	scoreFormat = "A : %d, B : %d\n"
	winFormat   = "You Win! You tried : %d\n"
)

// ErrInputClosed — stdin кончился раньше победы.
var ErrInputClosed = errors.New("input closed before the game was won")

// Loop drives one session over line-oriented input/output: prompt, read a
// line, trim it, step the session, print the score, repeat until the
// player wins. Rejected lines produce no output at all.
type Loop struct {
	session *game.Session
	out     io.Writer
	scanner *bufio.Scanner

	onStep func(game.Outcome) // вызывается после каждой принятой попытки
}

func NewLoop(session *game.Session, in io.Reader, out io.Writer) *Loop {
	return &Loop{
		session: session,
		out:     out,
		scanner: bufio.NewScanner(in),
	}
}

// OnStep registers a hook called after every accepted guess (scored or
// won). Used for snapshot persistence; nil is fine.
func (l *Loop) OnStep(fn func(game.Outcome)) {
	l.onStep = fn
}

// Run blocks until the session is won, the input ends, or ctx is
// canceled. A read failure or EOF before a win is an error (the game has
// no other way to finish). On cancellation the pending read is abandoned
// and ctx.Err() is returned.
func (l *Loop) Run(ctx context.Context) error {
	lines := make(chan string)
	errc := make(chan error, 1)

	// reader: единственное место, где блокируемся на stdin
	go func() {
		for l.scanner.Scan() {
			select {
			case lines <- strings.TrimSpace(l.scanner.Text()):
			case <-ctx.Done():
				return
			}
		}
		if err := l.scanner.Err(); err != nil {
			errc <- fmt.Errorf("read input: %w", err)
			return
		}
		errc <- ErrInputClosed
	}()

	for {
		fmt.Fprintln(l.out, prompt)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errc:
			return err
		case line := <-lines:
			out := l.session.Step(line)
			switch out.Event {
			case game.EventRejected:
				// молча на новый круг
				continue
			case game.EventScored:
				fmt.Fprintf(l.out, scoreFormat, out.Bulls, out.Cows)
				if l.onStep != nil {
					l.onStep(out)
				}
			case game.EventWon:
				fmt.Fprintf(l.out, scoreFormat, out.Bulls, out.Cows)
				fmt.Fprintf(l.out, winFormat, out.Attempts)
				if l.onStep != nil {
					l.onStep(out)
				}
				return nil
			}
		}
	}
}
