package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/kits/internal/models"
	"github.com/KirkDiggler/kits/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

const (
	colorGreen  = 0x00ff00
	colorYellow = 0xffcc00
	colorRed    = 0xff0000
	colorBlue   = 0x3498db
)

// statusColor picks an embed color for a redemption status
func statusColor(status models.RedeemStatus) int {
	switch status {
	case models.RedeemStatusSuccess:
		return colorGreen
	case models.RedeemStatusPartialSuccess, models.RedeemStatusCooldownNotExpired:
		return colorYellow
	default:
		return colorRed
	}
}

// renderRedeemResult builds the embed shown after a redemption
func renderRedeemResult(kitName string, result *models.RedeemResult, msg *messaging.GetRedeemResultMessageOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Kit: %s", kitName),
		Description: msg.Message,
		Color:       statusColor(result.Status),
	}

	if len(result.RejectedItems) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Did not fit",
			Value: describeStacks(result.RejectedItems),
		})
	}

	return embed
}

// renderKitInfo builds the embed describing a kit and the caller's standing
func renderKitInfo(k *models.Kit, redeemed bool, nextUse *string) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Items", Value: describeStacks(k.Stacks)},
	}

	if k.HasCooldown() {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Cooldown", Value: k.Cooldown.String(), Inline: true})
	}

	var flags []string
	if k.OneTime {
		flags = append(flags, "one-time")
	}
	if k.Hidden {
		flags = append(flags, "hidden")
	}
	if k.FirstJoin {
		flags = append(flags, "first join")
	}
	if k.AutoRedeem {
		flags = append(flags, "auto-redeem")
	}
	if len(flags) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Flags", Value: strings.Join(flags, ", "), Inline: true})
	}

	status := "Never redeemed"
	if redeemed {
		status = "Redeemed before"
	}
	if nextUse != nil {
		status += "\nAvailable " + *nextUse
	}
	fields = append(fields, &discordgo.MessageEmbedField{Name: "You", Value: status})

	return &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("Kit: %s", k.Name),
		Color:  colorBlue,
		Fields: fields,
	}
}

// describeStacks lists stacks one per line
func describeStacks(stacks []*models.ItemStack) string {
	var lines []string
	for _, stack := range stacks {
		if stack.IsNone() {
			continue
		}
		line := fmt.Sprintf("%d × %s", stack.Quantity, stack.Type)
		if stack.DisplayName != "" {
			line += fmt.Sprintf(" (%s)", stack.DisplayName)
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return "Nothing"
	}
	return strings.Join(lines, "\n")
}
