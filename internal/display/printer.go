// Package display renders a game turn by turn for the single-game command.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/beggar/internal/deck"
	"github.com/lox/beggar/internal/game"
)

// Styles used by the printer
type Styles struct {
	Header  lipgloss.Style
	Penalty lipgloss.Style
	Card    lipgloss.Style
	Pile    lipgloss.Style
	Player  lipgloss.Style
	Active  lipgloss.Style
	Info    lipgloss.Style
}

// NewStyles builds the palette on r
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header:  r.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true),
		Penalty: r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Card:    r.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),
		Pile:    r.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		Player:  r.NewStyle().Foreground(lipgloss.Color("#74B9FF")),
		Active:  r.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Info:    r.NewStyle().Foreground(lipgloss.Color("#626262")),
	}
}

// Printer is a game.Monitor that writes the deck, every turn's pile and
// hands, and the final turn count.
type Printer struct {
	w       io.Writer
	styles  Styles
	verbose bool
}

var _ game.Monitor = (*Printer)(nil)

// NewPrinter writes to w using styles from r. When verbose is false only the
// shuffled deck and the result are printed.
func NewPrinter(w io.Writer, r *lipgloss.Renderer, verbose bool) *Printer {
	return &Printer{w: w, styles: NewStyles(r), verbose: verbose}
}

func (p *Printer) OnGameStart(players int, cards []deck.Rank) {
	fmt.Fprintf(p.w, "%s %s\n", p.styles.Header.Render("Deck after shuffle:"), p.cards(cards))
	fmt.Fprintf(p.w, "%s\n", p.styles.Info.Render(fmt.Sprintf("Dealing %d cards to %d players", len(cards), players)))
}

func (p *Printer) OnTurn(v game.TurnView) {
	if !p.verbose {
		return
	}
	noun := "card"
	if v.Penalty.Count > 1 {
		noun = "cards"
	}
	fmt.Fprintf(p.w, "\n%s\n", p.styles.Header.Render(
		fmt.Sprintf("Turn %d Player %d to lay %d %s", v.Turn, v.Player, v.Penalty.Count, noun)))
	if v.Penalty.Paying {
		fmt.Fprintf(p.w, "%s\n", p.styles.Penalty.Render(
			fmt.Sprintf("Player %d is paying a penalty of %d %s", v.Player, v.Penalty.Count, noun)))
	}
	fmt.Fprintf(p.w, "%s %s\n", p.styles.Pile.Render("Pile:"), p.cards(v.Pile))
	for i, h := range v.Hands {
		style := p.styles.Player
		if i == v.Player {
			style = p.styles.Active
		}
		fmt.Fprintf(p.w, "%s %s\n", style.Render(fmt.Sprintf("Player %d:", i)), p.cards(h))
	}
}

func (p *Printer) OnGameComplete(r game.Result) {
	if r.Reason == game.ReasonSelfPenalty {
		fmt.Fprintf(p.w, "\n%s\n", p.styles.Info.Render(
			fmt.Sprintf("Player %d is owed a penalty only they could pay; game over", r.Winner)))
	}
	fmt.Fprintf(p.w, "\nNumber of turns: %d\n", r.Turns)
}

func (p *Printer) cards(cards []deck.Rank) string {
	if len(cards) == 0 {
		return p.styles.Info.Render("(empty)")
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		if c.IsPenalty() {
			parts[i] = p.styles.Penalty.Render(c.String())
		} else {
			parts[i] = p.styles.Card.Render(c.String())
		}
	}
	return strings.Join(parts, " ")
}
