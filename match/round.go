package match

import (
	"log"

	"github.com/lixenwraith/borof-pani/event"
	"github.com/lixenwraith/borof-pani/parameter"
	"github.com/lixenwraith/borof-pani/physics"
)

// checkRound applies at most one round transition per frame
// Priority: fall-out (body 0 first), time-up, capture
func (m *Match) checkRound() {
	for i := range m.Bodies {
		if m.Bodies[i].Top() > m.Level.Height {
			m.emit(event.EventFallOut, i, 0)
			m.endRound(1 - i)
			return
		}
	}

	if m.Timer <= parameter.TimerEpsilon {
		runner := 1 - m.Hunter
		m.emit(event.EventTimeUp, runner, 0)
		m.endRound(runner)
		return
	}

	if m.Config.Mode == ModeTag && physics.Overlapping(&m.Bodies[0], &m.Bodies[1]) {
		scorer := m.Hunter
		if m.Config.Capture == CaptureScoresRunner {
			scorer = 1 - m.Hunter
		}
		m.emit(event.EventCapture, scorer, 0)
		m.endRound(scorer)
	}
}

// endRound scores the round, flips the hunter once, restarts the clock and checks for match end
func (m *Match) endRound(scorer int) {
	m.Scores[scorer]++
	m.Hunter = 1 - m.Hunter
	m.Timer = m.Config.RoundDuration
	m.Round++
	m.ResetRound()
	m.emit(event.EventRoundReset, scorer, 0)

	log.Printf("Match %s round %d: P%d scored (%d-%d), hunter now P%d",
		m.ID, m.Round, scorer+1, m.Scores[0], m.Scores[1], m.Hunter+1)

	if m.finished() {
		m.Ended = true
		m.emit(event.EventMatchEnd, m.Winner(), 0)
		log.Printf("Match %s ended after %d rounds: %d-%d", m.ID, m.Round, m.Scores[0], m.Scores[1])
	}
}

// finished reports the round limit or score cap has been reached
func (m *Match) finished() bool {
	if m.Round >= m.Config.MaxRounds {
		return true
	}
	for _, s := range m.Scores {
		if s > m.Config.ScoreCap {
			return true
		}
	}
	return false
}

// Winner returns the leading body index, -1 on a draw
func (m *Match) Winner() int {
	switch {
	case m.Scores[0] > m.Scores[1]:
		return 0
	case m.Scores[1] > m.Scores[0]:
		return 1
	default:
		return -1
	}
}
