package game

// State — состояние партии.
type State string

const (
	Playing State = "playing"
	Won     State = "won"
)

// Event says what Step did with one input line.
type Event string

const (
	// EventRejected — строка не прошла валидацию: попытка не засчитана,
	// счёт не печатается, цикл повторяется.
	EventRejected Event = "rejected"
	EventScored   Event = "scored"
	EventWon      Event = "won"
)

type Outcome struct {
	Event    Event
	Bulls    int
	Cows     int
	Attempts int // всего принятых попыток, включая эту
}

// Session is one game: an immutable secret, an attempt counter and the
// {Playing, Won} state machine. Step is the transition function; Won is
// terminal.
type Session struct {
	id       string
	secret   Code
	attempts int
	state    State
}

func NewSession(id string, secret Code) *Session {
	return &Session{
		id:     id,
		secret: secret,
		state:  Playing,
	}
}

func (s *Session) ID() string    { return s.id }
func (s *Session) State() State  { return s.state }
func (s *Session) Attempts() int { return s.attempts }

// Step feeds one trimmed input line through the machine.
//
// Invalid lines are rejected silently and do not count as attempts.
// An accepted guess increments the counter and is scored against the
// secret; 4 bulls wins and the session stops accepting input.
func (s *Session) Step(line string) Outcome {
	if s.state == Won {
		return Outcome{Event: EventRejected, Attempts: s.attempts}
	}

	guess, err := ParseGuess(line)
	if err != nil {
		return Outcome{Event: EventRejected, Attempts: s.attempts}
	}

	s.attempts++
	bulls, cows := Score(s.secret, guess)

	if bulls == CodeLen {
		s.state = Won
		return Outcome{Event: EventWon, Bulls: bulls, Cows: cows, Attempts: s.attempts}
	}
	return Outcome{Event: EventScored, Bulls: bulls, Cows: cows, Attempts: s.attempts}
}
