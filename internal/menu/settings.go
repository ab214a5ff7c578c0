package menu

import (
	"fmt"

	"github.com/manifoldco/promptui"
)

func SettingsMenu(deps Deps) {
	for {
		prompt := promptui.Select{
			Label: "Settings Menu",
			Items: []string{"Clear history", "Back to Main Menu"},
		}

		_, result, err := prompt.Run()
		if err != nil {
			fmt.Printf("Prompt failed: %v\n", err)
			return
		}

		switch result {
		case "Clear history":
			clearHistory(deps)
		case "Back to Main Menu":
			return
		}
	}
}

func clearHistory(deps Deps) {
	if deps.Store == nil {
		fmt.Println("History is disabled.")
		return
	}

	confirm := promptui.Prompt{
		Label:     "Delete every recorded replacement",
		IsConfirm: true,
	}
	if _, err := confirm.Run(); err != nil {
		fmt.Println("History kept.")
		return
	}

	if err := deps.Store.FlushDB(); err != nil {
		fmt.Printf("Failed to clear history: %v\n", err)
		return
	}

	deps.Log.Info("history cleared from settings")
	fmt.Println("History cleared.")
}
