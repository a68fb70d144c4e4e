package main

import (
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/handrank/domain/poker"
)

const (
	players  = 4
	handSize = 7
)

func main() {
	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("H", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("and ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("R", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ank", pterm.FgDarkGray.ToStyle()),
	).Render()

	d := poker.NewPokerDeck()
	var hands []*poker.Hand
	if len(os.Args) > 1 {
		hands = parseHands(logger, d, os.Args[1:])
	} else {
		spinner, _ := pterm.DefaultSpinner.Start("Shuffling the deck ...")
		var err error
		hands, err = dealHands(d, players, handSize)
		if err != nil {
			spinner.Fail(err.Error())
			logger.Error("failed to deal", "error", err)
			os.Exit(1)
		}
		spinner.Success("Dealt ", players, " hands")
	}

	results := evaluate(logger, hands)
	table, err := renderTable(results)
	if err != nil {
		logger.Error("failed to render the table", "error", err)
		os.Exit(1)
	}
	pterm.Println(table)
	pterm.Println(winnerBox(results))
}
