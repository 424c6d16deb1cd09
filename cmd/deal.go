package cmd

import (
	"fmt"
	"strconv"

	"github.com/arcanaland/cribbage/internal/card"
	"github.com/arcanaland/cribbage/internal/deck"
	"github.com/arcanaland/cribbage/internal/hand"
	"github.com/arcanaland/cribbage/internal/ledger"
	"github.com/arcanaland/cribbage/internal/scoring"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// dealSizes maps the number of players to the cards each is dealt
var dealSizes = map[int]int{2: 6, 3: 5, 4: 5}

var dealCmd = &cobra.Command{
	Use:   "deal [player] [player...]",
	Short: "Deal and score hands for two to four players",
	Long: `Deal runs whole hands without play: it shuffles, deals, discards the
extra cards to the crib, cuts a starter, scores every hand and the crib, and
pegs the points on the board. The crib passes to the next player after each
deal. Pegging during play is not simulated.

Examples:
  cribbage deal ada bob
  cribbage deal ada bob cy --rounds 5 --seed 42`,
	Args: cobra.RangeArgs(2, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		rounds, _ := cmd.Flags().GetInt("rounds")
		dealer, _ := cmd.Flags().GetString("dealer")

		cfg, rng, err := loadSession(cmd)
		if err != nil {
			return err
		}
		d, err := openDeck(cmd, cfg, rng)
		if err != nil {
			return err
		}

		board := ledger.New(rng)
		for _, name := range args {
			if !board.AddPlayer(name) {
				return fmt.Errorf("player %q listed twice", name)
			}
		}
		if !board.SetCribHolder(dealer) {
			return fmt.Errorf("unknown dealer %q", dealer)
		}

		pterm.Info.Printfln("Seed %d, deck %s", cfg.Seed, d.Name)

		for i := 1; i <= rounds; i++ {
			result, err := dealRound(board, d)
			if err != nil {
				return err
			}
			if err := printRound(i, result); err != nil {
				return err
			}
			if winner, ok := board.Leader(cfg.WinningScore); ok {
				pterm.Success.Printfln("%s reaches %d", winner, cfg.WinningScore)
				break
			}
		}

		return printStandings(board)
	},
}

func init() {
	RootCmd.AddCommand(dealCmd)
	dealCmd.Flags().IntP("rounds", "r", 1, "Number of deals to run")
	dealCmd.Flags().String("dealer", "", "Player who deals first (random when empty)")
	addSessionFlags(dealCmd)
}

type seatResult struct {
	Name      string
	Cards     []card.Card
	Breakdown scoring.Breakdown
}

type roundResult struct {
	Dealer   string
	Starter  card.Card
	HisHeels int
	Seats    []seatResult
	Crib     seatResult
}

// dealRound deals one hand to every player on the board, scores it and pegs
// the points. All cards go back into the deck afterwards and the crib
// rotates.
func dealRound(board *ledger.Ledger, d *deck.Deck) (roundResult, error) {
	players := board.Players()
	size, ok := dealSizes[len(players)]
	if !ok {
		return roundResult{}, fmt.Errorf("cribbage needs 2 to 4 players, got %d", len(players))
	}
	dealer, ok := board.CribHolder()
	if !ok {
		return roundResult{}, fmt.Errorf("no dealer chosen")
	}

	d.Shuffle()

	hands := make([]*hand.Hand, len(players))
	crib := hand.New()
	var discards []card.Card

	for i := range players {
		cards := d.DrawCards(size)
		if len(cards) != size {
			return roundResult{}, fmt.Errorf("deck ran out dealing %d cards", size)
		}
		hands[i] = hand.New()
		hands[i].SetCards(cards)

		discard := cards[HandSize:]
		if notFound, ok := hands[i].RemoveCards(discard); !ok || len(notFound) > 0 {
			return roundResult{}, fmt.Errorf("could not discard %v to the crib", discard)
		}
		discards = append(discards, discard...)
	}
	for len(discards) < HandSize {
		extra := d.DrawCards(1)
		if len(extra) == 0 {
			return roundResult{}, fmt.Errorf("deck ran out filling the crib")
		}
		discards = append(discards, extra...)
	}
	crib.SetCards(discards)

	cut := d.RandomDraw(1)
	if len(cut) == 0 {
		return roundResult{}, fmt.Errorf("deck ran out cutting the starter")
	}
	starter := cut[0]

	result := roundResult{Dealer: dealer, Starter: starter, HisHeels: scoring.FlipJack(starter)}
	board.Peg(dealer, result.HisHeels)

	for i, p := range players {
		seat := seatResult{Name: p.Name, Cards: hands[i].Cards(), Breakdown: hands[i].Breakdown(starter)}
		board.Peg(p.Name, seat.Breakdown.Total())
		result.Seats = append(result.Seats, seat)
	}

	result.Crib = seatResult{Name: dealer, Cards: crib.Cards(), Breakdown: crib.Breakdown(starter)}
	board.Peg(dealer, result.Crib.Breakdown.Total())

	for _, h := range hands {
		d.RandomInsert(h.Reset())
	}
	d.RandomInsert(crib.Reset())
	d.RandomInsert(cut)

	board.RotateCribHolder()
	return result, nil
}

func printRound(n int, r roundResult) error {
	title := fmt.Sprintf("Deal %d · dealer %s · starter %s", n, r.Dealer, r.Starter)
	pterm.DefaultSection.Println(title)

	data := pterm.TableData{{"Hand", "Cards", "15s", "Pairs", "Runs", "Flush", "Nobs", "Total"}}
	for _, s := range r.Seats {
		data = append(data, breakdownRow(s.Name, s))
	}
	data = append(data, breakdownRow(r.Crib.Name+" (crib)", r.Crib))
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}

	if r.HisHeels > 0 {
		pterm.Info.Printfln("Starter is a jack: %d for %s", r.HisHeels, r.Dealer)
	}
	return nil
}

func breakdownRow(name string, s seatResult) []string {
	b := s.Breakdown
	return []string{
		name,
		cardsString(s.Cards),
		strconv.Itoa(b.Fifteens),
		strconv.Itoa(b.Pairs),
		strconv.Itoa(b.Runs),
		strconv.Itoa(b.Flush),
		strconv.Itoa(b.Nobs),
		strconv.Itoa(b.Total()),
	}
}

func printStandings(board *ledger.Ledger) error {
	data := pterm.TableData{{"Player", "Score", "Crib"}}
	for _, e := range board.Standings() {
		crib := ""
		if e.CribHolder {
			crib = "●"
		}
		data = append(data, []string{e.Name, strconv.Itoa(e.Score), crib})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	pterm.DefaultBox.WithTitle("Board").Println(table)
	return nil
}
