package main

import (
	"strconv"

	"github.com/pterm/pterm"
)

func renderTable(results []result) (string, error) {
	data := pterm.TableData{{"#", "Cards", "Value", "Description"}}
	for i, r := range results {
		n := strconv.Itoa(i + 1)
		if r.winner {
			n = pterm.LightGreen(n + " *")
		}
		data = append(data, []string{n, r.hand.String(), r.key.String(), r.description})
	}
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
}

func winnerBox(results []result) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := ""
	for i, r := range results {
		if r.winner {
			info += pterm.Sprintfln("Hand %s wins with %s", pterm.LightCyan(strconv.Itoa(i+1)), r.key)
		}
	}
	if info == "" {
		info = "No hands"
	}
	return pbox.WithTitle(pterm.LightGreen("|SHOWDOWN|")).WithTitleTopCenter().Sprint(info)
}
