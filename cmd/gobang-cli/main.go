// Command gobang-cli is a terminal driver for the Gomoku engine: a
// human plays against the machine over a simple "row col" input
// protocol, with preferences and game statistics persisted between
// runs. Grounded on zserge-carnatus/main.go's cli() REPL loop, wired
// to this repo's board/engine/storage packages in place of that
// teacher's chess position and search.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/milnv/gobang/internal/board"
	"github.com/milnv/gobang/internal/engine"
	"github.com/milnv/gobang/internal/storage"
)

func render(b *board.Board) string {
	var sb strings.Builder
	sb.WriteString("   ")
	for c := 0; c < board.Size; c++ {
		sb.WriteString(fmt.Sprintf("%2d", c))
	}
	sb.WriteString("\n")

	for r := 0; r < board.Size; r++ {
		sb.WriteString(fmt.Sprintf("%2d ", r))
		for c := 0; c < board.Size; c++ {
			switch b.At(r, c) {
			case board.Black:
				sb.WriteString(" X")
			case board.White:
				sb.WriteString(" O")
			default:
				sb.WriteString(" .")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// parseMove reads "row col" (or "row,col") from input.
func parseMove(input string) (int, int, error) {
	input = strings.ReplaceAll(input, ",", " ")
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected two numbers, got %q", input)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, err
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

func cli(st *storage.Storage, prefs *storage.Preferences) {
	b := board.New()
	e := engine.NewEngine(32, prefs.MachineColor)
	e.Aggressiveness = prefs.Aggressiveness

	humanColor := prefs.MachineColor.Opponent()
	stonesPlayed := 0
	start := time.Now()
	r := bufio.NewReader(os.Stdin)

	fmt.Printf("You are %s, the machine is %s. Enter moves as \"row col\".\n", humanColor, prefs.MachineColor)

	toMove := board.Black // Black always opens, per convention
	for {
		fmt.Print(render(b))

		var row, col int
		if toMove == humanColor {
			valid := false
			for !valid {
				fmt.Print("Your move: ")
				input, err := r.ReadString('\n')
				if err != nil {
					log.Printf("input error: %v", err)
					return
				}
				row, col, err = parseMove(input)
				if err != nil {
					fmt.Println(err)
					continue
				}
				if !board.InBounds(row, col) || b.At(row, col) != board.Empty {
					fmt.Println("that cell is not available")
					continue
				}
				valid = true
			}
		} else {
			row, col = e.NextMove(b, toMove, stonesPlayed)
			fmt.Printf("Machine plays %d %d\n", row, col)
		}

		if _, err := b.Place(row, col, toMove); err != nil {
			log.Printf("place(%d,%d): %v", row, col, err)
			continue
		}
		stonesPlayed++

		if b.LastMoveWins(row, col) {
			fmt.Print(render(b))
			won := toMove == humanColor
			if won {
				fmt.Println("You win!")
			} else {
				fmt.Println("The machine wins!")
			}
			recordResult(st, humanColor, won, false, stonesPlayed, time.Since(start))
			return
		}

		if b.Full() {
			fmt.Print(render(b))
			fmt.Println("Draw: the board is full.")
			recordResult(st, humanColor, false, true, stonesPlayed, time.Since(start))
			return
		}

		toMove = toMove.Opponent()
	}
}

func recordResult(st *storage.Storage, humanColor board.Color, won, draw bool, moves int, d time.Duration) {
	if st == nil {
		return
	}
	err := st.RecordGame(storage.GameResult{
		HumanColor: humanColor,
		Won:        won,
		Draw:       draw,
		Moves:      moves,
		Duration:   d,
	})
	if err != nil {
		log.Printf("failed to record game: %v", err)
	}
}

func main() {
	st, err := storage.NewStorage()
	if err != nil {
		log.Printf("storage unavailable, playing without persistence: %v", err)
		st = nil
	} else {
		defer st.Close()
	}

	prefs := storage.DefaultPreferences()
	if st != nil {
		if loaded, err := st.LoadPreferences(); err == nil {
			prefs = loaded
		}
	}

	cli(st, prefs)
}
