package discord

import (
	"github.com/bwmarrin/discordgo"
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// response is what a command replies with
type response struct {
	Content   string
	Embed     *discordgo.MessageEmbed
	Ephemeral bool
}

// respond sends the response to an interaction
func respond(s *discordgo.Session, i *discordgo.InteractionCreate, r *response) error {
	data := &discordgo.InteractionResponseData{
		Content: r.Content,
	}

	if r.Embed != nil {
		data.Embeds = []*discordgo.MessageEmbed{r.Embed}
	}

	if r.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// ephemeral builds a plain text response only the caller can see
func ephemeral(message string) *response {
	return &response{Content: message, Ephemeral: true}
}

// errorResponse builds a red embed only the caller can see
func errorResponse(message string) *response {
	return &response{
		Embed: &discordgo.MessageEmbed{
			Title:       "Error",
			Description: message,
			Color:       colorRed,
		},
		Ephemeral: true,
	}
}

// interactionUser returns the user behind an interaction and their nickname
func interactionUser(i *discordgo.InteractionCreate) (*discordgo.User, string) {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User, i.Member.Nick
	}
	return i.User, ""
}

// options indexes a subcommand's options by name
func options(opts []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}
