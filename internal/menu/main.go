package menu

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/sirupsen/logrus"

	"github.com/Utility-Gods/charswap/internal/app"
	"github.com/Utility-Gods/charswap/internal/cli"
	"github.com/Utility-Gods/charswap/internal/db"
	"github.com/Utility-Gods/charswap/internal/tui"
)

const historyShown = 20

// Deps is what the menu needs from the entry point. Store is nil when
// history is turned off.
type Deps struct {
	App   *app.App
	Store *db.Store
	Log   logrus.FieldLogger
}

// MainMenu starts the main menu loop
func MainMenu(deps Deps) error {
	for {
		prompt := promptui.Select{
			Label: "Main Menu",
			Items: []string{"Replace characters", "Live preview", "History", "Settings", "Exit"},
		}

		_, result, err := prompt.Run()
		if err != nil {
			if err == promptui.ErrInterrupt || err == promptui.ErrEOF {
				return nil
			}
			return fmt.Errorf("prompt failed: %w", err)
		}

		switch result {
		case "Replace characters":
			if err := cli.RunCLI(deps.App, os.Stdin, os.Stdout); err != nil {
				return err
			}
			showSession(deps)
		case "Live preview":
			if err := tui.Run(deps.App); err != nil {
				return err
			}
			showSession(deps)
		case "History":
			showHistory(deps)
		case "Settings":
			SettingsMenu(deps)
		case "Exit":
			fmt.Println("Goodbye!")
			return nil
		}
	}
}

// showSession lists what was recorded since the program started
func showSession(deps Deps) {
	records, err := deps.App.SessionHistory()
	if err != nil {
		fmt.Printf("Failed to load this session: %v\n", err)
		return
	}
	if len(records) == 0 {
		return
	}
	fmt.Print("This session: " + RenderHistory(records))
}

func showHistory(deps Deps) {
	if deps.Store == nil {
		fmt.Println("History is disabled.")
		return
	}

	records, err := deps.Store.GetReplacements(historyShown)
	if err != nil {
		fmt.Printf("Failed to load history: %v\n", err)
		return
	}

	fmt.Print(RenderHistory(records))
}
