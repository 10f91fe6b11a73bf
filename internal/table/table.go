// Package table implements the seated ring: a fixed seat order with a
// rotating button, and the four orderings the interpreter needs (clockwise
// from the button, clockwise from the small blind, clockwise from left of
// dealer, resuming after the last actor). Generalized from a fixed
// small/big blind pair to an arbitrary seated-player ring, with
// betting/pot/deck state split out into their own packages
// (internal/betting, internal/pot, internal/deck).
package table

import "fmt"

// Seat is one occupied chair at the table.
type Seat struct {
	PlayerID string
	Stack    int
	SatOut   bool
}

// Position names a seat's role relative to the button for a given hand
// (Button, SB, BB, other). Heads-up play is a special case: the button
// also holds the small blind.
type Position int

const (
	UnknownPosition Position = iota
	Button
	SmallBlind
	BigBlind
	Other
)

func (p Position) String() string {
	switch p {
	case Button:
		return "Button"
	case SmallBlind:
		return "Small Blind"
	case BigBlind:
		return "Big Blind"
	case Other:
		return "Other"
	default:
		return "Unknown"
	}
}

// Table is the seated ring. Seats is index-stable for the life of the
// table; ButtonSeat rotates between hands.
type Table struct {
	Seats      []*Seat
	ButtonSeat int
}

// New creates an empty table with no button assigned yet.
func New() *Table {
	return &Table{ButtonSeat: -1}
}

// Sit seats a player, returning their seat index.
func (t *Table) Sit(playerID string, stack int) int {
	t.Seats = append(t.Seats, &Seat{PlayerID: playerID, Stack: stack})
	return len(t.Seats) - 1
}

// SetButton assigns the button to a seat index explicitly (used for the
// first hand's random placement and for heads-up dual-role setups).
func (t *Table) SetButton(seat int) { t.ButtonSeat = seat }

// Stand marks a seated player as sat-out: it drops out of every ring
// iterator but keeps its seat index stable for any hand already in
// progress. The seat is not reused by a later Sit.
func (t *Table) Stand(playerID string) bool {
	for _, s := range t.Seats {
		if s.PlayerID == playerID && !s.SatOut {
			s.SatOut = true
			return true
		}
	}
	return false
}

// AdvanceButton moves the button to the next live (not sat-out) seat.
func (t *Table) AdvanceButton() {
	if len(t.Seats) == 0 {
		return
	}
	next := (t.ButtonSeat + 1) % len(t.Seats)
	for i := 0; i < len(t.Seats); i++ {
		if !t.Seats[next].SatOut {
			t.ButtonSeat = next
			return
		}
		next = (next + 1) % len(t.Seats)
	}
	t.ButtonSeat = next
}

// ringFrom returns live seat indexes in ring order starting at start.
func (t *Table) ringFrom(start int) []int {
	n := len(t.Seats)
	order := make([]int, 0, n)
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		if !t.Seats[idx].SatOut {
			order = append(order, idx)
		}
	}
	return order
}

// FromButton returns live seats clockwise starting at the button.
func (t *Table) FromButton() []int {
	if t.ButtonSeat < 0 {
		return nil
	}
	return t.ringFrom(t.ButtonSeat)
}

// Positions assigns Button/SmallBlind/BigBlind/Other to every live seat
// for the current hand. Heads-up (exactly two live seats) gives the
// button the small blind too.
func (t *Table) Positions() map[int]Position {
	live := t.ringFrom(t.ButtonSeat)
	positions := make(map[int]Position, len(live))
	if len(live) == 0 {
		return positions
	}
	if len(live) == 2 {
		positions[live[0]] = Button
		positions[live[1]] = BigBlind
		// Button also posts the small blind heads-up; callers that need
		// to distinguish "acts as SB" from "is BTN" check len(live)==2.
		return positions
	}
	positions[live[0]] = Button
	if len(live) > 1 {
		positions[live[1]] = SmallBlind
	}
	if len(live) > 2 {
		positions[live[2]] = BigBlind
	}
	for _, seat := range live[3:] {
		positions[seat] = Other
	}
	return positions
}

// FromSmallBlind returns live seats clockwise starting at the small blind
// (seat after the button; for heads-up this is the same seat as BTN).
func (t *Table) FromSmallBlind() []int {
	if t.ButtonSeat < 0 || len(t.Seats) == 0 {
		return nil
	}
	live := t.ringFrom(t.ButtonSeat)
	if len(live) == 2 {
		return t.ringFrom(live[0])
	}
	if len(live) < 2 {
		return live
	}
	return t.ringFrom(live[1])
}

// FirstToActPreflop returns seats starting UTG (seat left of BB) for
// 3-plus players, or the button for heads-up.
func (t *Table) FirstToActPreflop() []int {
	live := t.ringFrom(t.ButtonSeat)
	if len(live) <= 2 {
		return live
	}
	return t.ringFrom(live[3%len(live)])
}

// FromLeftOfDealer returns live seats clockwise starting left of the
// button — the default subsequent-round acting order.
func (t *Table) FromLeftOfDealer() []int {
	if t.ButtonSeat < 0 || len(t.Seats) == 0 {
		return nil
	}
	live := t.ringFrom(t.ButtonSeat)
	if len(live) < 2 {
		return live
	}
	return t.ringFrom(live[1])
}

// FromLastActor returns live seats in acting order resuming after
// lastActorSeat, skipping only sat-out seats (the table does not track
// folds or all-ins; callers skip those). Used for the
// betting-order "subsequent = last_actor" mode.
func (t *Table) FromLastActor(lastActorSeat int) []int {
	if lastActorSeat < 0 || lastActorSeat >= len(t.Seats) {
		return t.FromLeftOfDealer()
	}
	return t.ringFrom((lastActorSeat + 1) % len(t.Seats))
}

// PlayerID returns the player id seated at a seat index.
func (t *Table) PlayerID(seat int) string {
	if seat < 0 || seat >= len(t.Seats) {
		return ""
	}
	return t.Seats[seat].PlayerID
}

// LivePlayers returns the player ids at currently live (not sat-out) seats
// in seat order, for code that works in player-id space rather than seat
// indexes (pot ledger, betting round).
func (t *Table) LivePlayers() []string {
	var ids []string
	for _, seat := range t.Seats {
		if !seat.SatOut {
			ids = append(ids, seat.PlayerID)
		}
	}
	return ids
}

// String renders the table for debugging/CLI display.
func (t *Table) String() string {
	return fmt.Sprintf("table{seats=%d button=%d}", len(t.Seats), t.ButtonSeat)
}
