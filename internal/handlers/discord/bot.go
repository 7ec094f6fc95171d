package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/kits/internal/services/autoredeem"
	"github.com/KirkDiggler/kits/internal/services/catalog"
	"github.com/KirkDiggler/kits/internal/services/kit"
	"github.com/KirkDiggler/kits/internal/services/messaging"
	"github.com/KirkDiggler/kits/internal/services/permission"
	"github.com/KirkDiggler/kits/internal/services/player"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// JoinHandler is told when a member joins a guild
type JoinHandler interface {
	OnJoin(ctx context.Context, input *autoredeem.OnJoinInput) (*autoredeem.OnJoinOutput, error)
}

// SessionHandler is told when a member's session ends
type SessionHandler interface {
	Evict(playerID string)
}

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	joins      JoinHandler
	sessions   SessionHandler
	logger     logrus.FieldLogger
	config     *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	Catalog     catalog.Catalog
	Kits        kit.Service
	Players     player.Service
	Permissions permission.Checker
	Messaging   messaging.Service
	Joins       JoinHandler
	Sessions    SessionHandler
	Logger      logrus.FieldLogger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.Joins == nil {
		return nil, errors.New("join handler cannot be nil")
	}

	if cfg.Sessions == nil {
		return nil, errors.New("session handler cannot be nil")
	}

	if cfg.Logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	kitCmd, err := NewKitCommand(&KitCommandConfig{
		Catalog:     cfg.Catalog,
		Kits:        cfg.Kits,
		Players:     cfg.Players,
		Permissions: cfg.Permissions,
		Messaging:   cfg.Messaging,
		Logger:      cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create kit command: %w", err)
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

	bot := &Bot{
		session:    session,
		commands:   map[string]CommandHandler{kitCmd.GetName(): kitCmd},
		commandIDs: make(map[string]string),
		joins:      cfg.Joins,
		sessions:   cfg.Sessions,
		logger:     cfg.Logger,
		config:     cfg,
	}

	session.AddHandler(bot.handleInteraction)
	session.AddHandler(bot.handleMemberAdd)
	session.AddHandler(bot.handleMemberRemove)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, cmd := range b.commands {
		if err := b.RegisterCommand(cmd); err != nil {
			return err
		}
	}

	b.logger.Info("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop removes registered commands and closes the connection
func (b *Bot) Stop() error {
	appID, guildID := b.target()

	for cmdName, cmdID := range b.commandIDs {
		log := b.logger.WithFields(logrus.Fields{"command": cmdName, "command_id": cmdID})
		if err := b.session.ApplicationCommandDelete(appID, guildID, cmdID); err != nil {
			log.WithError(err).Warn("Failed to delete command")
		} else {
			log.Debug("Deleted command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID, guildID := b.target()

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.WithFields(logrus.Fields{
		"command":    cmd.GetName(),
		"command_id": createdCmd.ID,
		"guild_id":   guildID,
	}).Info("Registered command")

	return nil
}

// target returns the application and guild commands are registered under.
// An empty guild registers globally.
func (b *Bot) target() (string, string) {
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}
	return appID, b.config.GuildID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	if h, ok := b.commands[name]; ok {
		if err := h.Handle(s, i); err != nil {
			b.logger.WithError(err).WithField("command", name).Error("Error handling command")
		}
	}
}

// handleMemberAdd redeems join kits for a new guild member
func (b *Bot) handleMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	if m.Member == nil || m.User == nil || m.User.Bot {
		return
	}

	output, err := b.joins.OnJoin(context.Background(), &autoredeem.OnJoinInput{
		PlayerID:    m.User.ID,
		Name:        m.User.Username,
		DisplayName: m.Nick,
	})
	if err != nil {
		b.logger.WithError(err).WithField("player_id", m.User.ID).Error("Failed to handle join")
		return
	}

	b.logger.WithFields(logrus.Fields{
		"player_id":  m.User.ID,
		"first_join": output.FirstJoin,
		"kits":       len(output.Results),
	}).Debug("Handled join")
}

// handleMemberRemove ends the session of a member who left
func (b *Bot) handleMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	if m.Member == nil || m.User == nil {
		return
	}

	b.sessions.Evict(m.User.ID)
	b.logger.WithField("player_id", m.User.ID).Debug("Ended session")
}

// Announce returns a sink that posts messages to a channel
func (b *Bot) Announce(channelID string) func(ctx context.Context, message string) error {
	return func(ctx context.Context, message string) error {
		_, err := b.session.ChannelMessageSend(channelID, message, discordgo.WithContext(ctx))
		return err
	}
}
