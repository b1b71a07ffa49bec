package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/osse101/craftlab/internal/domain"
	"github.com/osse101/craftlab/internal/naming"
)

var (
	headerStyle     = lipgloss.NewStyle().Bold(true)
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#71717a"))
	discoveredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#86efac"))

	rarityStyles = map[domain.Rarity]lipgloss.Style{
		domain.RarityCommon:    lipgloss.NewStyle().Foreground(lipgloss.Color("#a1a1aa")),
		domain.RarityUncommon:  lipgloss.NewStyle().Foreground(lipgloss.Color("#86efac")),
		domain.RarityRare:      lipgloss.NewStyle().Foreground(lipgloss.Color("#93c5fd")),
		domain.RarityEpic:      lipgloss.NewStyle().Foreground(lipgloss.Color("#c4b5fd")),
		domain.RarityLegendary: lipgloss.NewStyle().Foreground(lipgloss.Color("#fde68a")).Bold(true),
	}
)

// rarityLabel renders "Legendary" in the rarity's colour
func rarityLabel(r domain.Rarity) string {
	label := naming.Title(string(r))
	if style, ok := rarityStyles[r]; ok {
		return style.Render(label)
	}
	return label
}

// ingredientList renders "2x Spark + 1x Water Drop"
func ingredientList(ings []domain.IngredientRequirement) string {
	parts := make([]string, len(ings))
	for i, ing := range ings {
		parts[i] = fmt.Sprintf("%dx %s", ing.Quantity, naming.Title(ing.IngredientID))
	}
	return strings.Join(parts, " + ")
}

// resultLabel renders "1x Storm Keyboard (Rare)"
func resultLabel(res domain.RecipeResult) string {
	return fmt.Sprintf("%dx %s (%s)", res.Quantity, naming.Title(res.ItemID), rarityLabel(res.Rarity))
}

// slotView renders the staged tokens as fixed slots: "[Spark] [Spark] [ ] [ ]"
func slotView(tokens []string, limit int) string {
	n := limit
	if len(tokens) > n {
		n = len(tokens)
	}
	slots := make([]string, n)
	for i := range slots {
		if i < len(tokens) {
			slots[i] = "[" + naming.Title(tokens[i]) + "]"
		} else {
			slots[i] = mutedStyle.Render("[ ]")
		}
	}
	return strings.Join(slots, " ")
}
