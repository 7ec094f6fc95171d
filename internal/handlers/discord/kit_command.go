package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/kits/internal/models"
	"github.com/KirkDiggler/kits/internal/services/catalog"
	"github.com/KirkDiggler/kits/internal/services/kit"
	"github.com/KirkDiggler/kits/internal/services/messaging"
	"github.com/KirkDiggler/kits/internal/services/permission"
	"github.com/KirkDiggler/kits/internal/services/player"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// Subcommands of /kit
const (
	SubRedeem    = "redeem"
	SubList      = "list"
	SubInfo      = "info"
	SubCreate    = "create"
	SubRename    = "rename"
	SubRemove    = "remove"
	SubReset     = "reset"
	SubAddItem   = "additem"
	SubConfigure = "configure"
)

// KitCommandConfig holds the services the /kit command uses
type KitCommandConfig struct {
	Catalog     catalog.Catalog
	Kits        kit.Service
	Players     player.Service
	Permissions permission.Checker
	Messaging   messaging.Service
	Logger      logrus.FieldLogger
}

// KitCommand handles the /kit command
type KitCommand struct {
	BaseCommand
	catalog     catalog.Catalog
	kits        kit.Service
	players     player.Service
	permissions permission.Checker
	messaging   messaging.Service
	logger      logrus.FieldLogger
}

func kitNameOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "name",
		Description: description,
		Required:    true,
	}
}

// NewKitCommand creates a new kit command handler
func NewKitCommand(cfg *KitCommandConfig) (*KitCommand, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Catalog == nil || cfg.Kits == nil || cfg.Players == nil || cfg.Permissions == nil || cfg.Messaging == nil {
		return nil, errors.New("catalog, kit, player, permission and messaging services are required")
	}

	if cfg.Logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &KitCommand{
		BaseCommand: BaseCommand{
			Name:        "kit",
			Description: "Redeem and manage kits",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubRedeem,
					Description: "Redeem a kit",
					Options:     []*discordgo.ApplicationCommandOption{kitNameOption("Kit to redeem")},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubList,
					Description: "List the kits you can redeem",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubInfo,
					Description: "Show what a kit contains",
					Options:     []*discordgo.ApplicationCommandOption{kitNameOption("Kit to show")},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubCreate,
					Description: "Create an empty kit",
					Options:     []*discordgo.ApplicationCommandOption{kitNameOption("Name of the new kit")},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubRename,
					Description: "Rename a kit",
					Options: []*discordgo.ApplicationCommandOption{
						kitNameOption("Kit to rename"),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "new_name",
							Description: "New name",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubRemove,
					Description: "Delete a kit",
					Options:     []*discordgo.ApplicationCommandOption{kitNameOption("Kit to delete")},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubReset,
					Description: "Let a player redeem a kit again",
					Options: []*discordgo.ApplicationCommandOption{
						kitNameOption("Kit to reset"),
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "player",
							Description: "Player to reset",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubAddItem,
					Description: "Add an item stack to a kit",
					Options: []*discordgo.ApplicationCommandOption{
						kitNameOption("Kit to change"),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "item",
							Description: "Item type",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "quantity",
							Description: "How many",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "display_name",
							Description: "Custom name; {{player}} and {{kit}} are replaced",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubConfigure,
					Description: "Change a kit's settings",
					Options: []*discordgo.ApplicationCommandOption{
						kitNameOption("Kit to change"),
						{Type: discordgo.ApplicationCommandOptionString, Name: "cooldown", Description: "Cooldown such as 1h30m, or 0 for none"},
						{Type: discordgo.ApplicationCommandOptionBoolean, Name: "one_time", Description: "Redeemable once per player"},
						{Type: discordgo.ApplicationCommandOptionBoolean, Name: "hidden", Description: "Left out of /kit list"},
						{Type: discordgo.ApplicationCommandOptionBoolean, Name: "first_join", Description: "Granted on a player's first join"},
						{Type: discordgo.ApplicationCommandOptionBoolean, Name: "auto_redeem", Description: "Redeemed whenever a player joins"},
						{Type: discordgo.ApplicationCommandOptionString, Name: "command", Description: "Console command to add; {{player}} is replaced"},
					},
				},
			},
		},
		catalog:     cfg.Catalog,
		kits:        cfg.Kits,
		players:     cfg.Players,
		permissions: cfg.Permissions,
		messaging:   cfg.Messaging,
		logger:      cfg.Logger,
	}, nil
}

// Handle processes a Discord interaction for the kit command
func (c *KitCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	user, nick := interactionUser(i)
	if user == nil {
		return errors.New("interaction has no user")
	}

	r, err := c.run(context.Background(), user, nick, data.Options[0])
	if err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"subcommand": data.Options[0].Name,
			"player_id":  user.ID,
		}).Error("Kit command failed")
		r = c.errorFor(context.Background(), err)
	}

	return respond(s, i, r)
}

// run executes a subcommand for the caller
func (c *KitCommand) run(ctx context.Context, user *discordgo.User, nick string, sub *discordgo.ApplicationCommandInteractionDataOption) (*response, error) {
	opts := options(sub.Options)

	switch sub.Name {
	case SubRedeem:
		return c.handleRedeem(ctx, user, nick, opts["name"].StringValue())
	case SubList:
		return c.handleList(ctx, user)
	case SubInfo:
		return c.handleInfo(ctx, user, opts["name"].StringValue())
	}

	if !c.permissions.HasPermission(ctx, user.ID, permission.KitAdmin) {
		return ephemeral("You don't have permission to manage kits."), nil
	}

	switch sub.Name {
	case SubCreate:
		return c.handleCreate(ctx, opts["name"].StringValue())
	case SubRename:
		return c.handleRename(ctx, opts["name"].StringValue(), opts["new_name"].StringValue())
	case SubRemove:
		return c.handleRemove(ctx, opts["name"].StringValue())
	case SubReset:
		return c.handleReset(ctx, opts["name"].StringValue(), opts["player"].UserValue(nil).ID)
	case SubAddItem:
		return c.handleAddItem(ctx, opts)
	case SubConfigure:
		return c.handleConfigure(ctx, opts)
	default:
		return nil, fmt.Errorf("unknown subcommand %q", sub.Name)
	}
}

// errorFor turns an error into the response shown to the caller
func (c *KitCommand) errorFor(ctx context.Context, err error) *response {
	output, msgErr := c.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		return errorResponse("Something went wrong.")
	}
	return errorResponse(output.Message)
}

func (c *KitCommand) lookup(name string) (*models.Kit, error) {
	k, ok := c.catalog.GetKit(name)
	if !ok {
		return nil, fmt.Errorf("kit %s: %w", name, catalog.ErrKitNotFound)
	}
	return k, nil
}

func (c *KitCommand) canRedeem(ctx context.Context, playerID string, k *models.Kit) bool {
	return k.IgnoresPermission || c.permissions.HasPermission(ctx, playerID, permission.KitPermission(k.Name))
}

// handleRedeem redeems a kit for the caller with every check applied
func (c *KitCommand) handleRedeem(ctx context.Context, user *discordgo.User, nick, name string) (*response, error) {
	k, err := c.lookup(name)
	if err != nil {
		return nil, err
	}

	if !c.canRedeem(ctx, user.ID, k) {
		return ephemeral(fmt.Sprintf("You don't have permission to redeem the %s kit.", k.Name)), nil
	}

	p, err := c.players.LoadOrCreate(ctx, &player.LoadOrCreateInput{
		PlayerID:    user.ID,
		Name:        user.Username,
		DisplayName: nick,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load player: %w", err)
	}

	result, err := c.kits.RedeemKit(ctx, &kit.RedeemKitInput{
		Kit:           k,
		Player:        p,
		CheckOneTime:  true,
		CheckCooldown: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to redeem kit: %w", err)
	}

	if result.IsSuccess() {
		if err := c.players.Save(ctx, p); err != nil {
			return nil, fmt.Errorf("failed to save player: %w", err)
		}
	}

	msg, err := c.messaging.GetRedeemResultMessage(ctx, &messaging.GetRedeemResultMessageInput{
		KitName:    k.Name,
		PlayerName: p.VisibleName(),
		Result:     result,
	})
	if err != nil {
		return nil, err
	}

	return &response{
		Embed:     renderRedeemResult(k.Name, result, msg),
		Ephemeral: !result.IsSuccess(),
	}, nil
}

// handleList lists the kits the caller may redeem
func (c *KitCommand) handleList(ctx context.Context, user *discordgo.User) (*response, error) {
	showHidden := c.permissions.HasPermission(ctx, user.ID, permission.KitAdmin)

	var names []string
	for _, name := range c.catalog.KitNames(showHidden) {
		k, ok := c.catalog.GetKit(name)
		if !ok || !c.canRedeem(ctx, user.ID, k) {
			continue
		}
		names = append(names, k.Name)
	}

	output, err := c.messaging.GetKitListMessage(ctx, &messaging.GetKitListMessageInput{KitNames: names})
	if err != nil {
		return nil, err
	}

	return ephemeral(output.Message), nil
}

// handleInfo shows a kit and when the caller can next redeem it
func (c *KitCommand) handleInfo(ctx context.Context, user *discordgo.User, name string) (*response, error) {
	k, err := c.lookup(name)
	if err != nil {
		return nil, err
	}

	query := &kit.QueryInput{Kit: k, PlayerID: user.ID}

	redeemed, err := c.kits.HasPreviouslyRedeemed(ctx, query)
	if err != nil {
		return nil, err
	}

	var nextUse *string
	expiry, err := c.kits.GetCooldownExpiry(ctx, query)
	if err != nil {
		return nil, err
	}
	if expiry != nil {
		formatted := fmt.Sprintf("<t:%d:R>", expiry.Unix())
		nextUse = &formatted
	}

	return &response{Embed: renderKitInfo(k, redeemed, nextUse), Ephemeral: true}, nil
}

func (c *KitCommand) handleCreate(ctx context.Context, name string) (*response, error) {
	k, err := c.catalog.CreateKit(ctx, name)
	if err != nil {
		return nil, err
	}

	return ephemeral(fmt.Sprintf("Created kit %s. Add items with /kit %s.", k.Name, SubAddItem)), nil
}

func (c *KitCommand) handleRename(ctx context.Context, oldName, newName string) (*response, error) {
	if err := c.catalog.RenameKit(ctx, oldName, newName); err != nil {
		return nil, err
	}

	return ephemeral(fmt.Sprintf("Renamed kit %s to %s.", oldName, newName)), nil
}

func (c *KitCommand) handleRemove(ctx context.Context, name string) (*response, error) {
	if !c.catalog.RemoveKit(ctx, name) {
		return nil, fmt.Errorf("kit %s: %w", name, catalog.ErrKitNotFound)
	}

	return ephemeral(fmt.Sprintf("Removed kit %s.", name)), nil
}

func (c *KitCommand) handleReset(ctx context.Context, name, playerID string) (*response, error) {
	k, err := c.lookup(name)
	if err != nil {
		return nil, err
	}

	if err := c.kits.ResetRedemption(ctx, &kit.QueryInput{Kit: k, PlayerID: playerID}); err != nil {
		return nil, err
	}

	return ephemeral(fmt.Sprintf("<@%s> can redeem the %s kit again.", playerID, k.Name)), nil
}

func (c *KitCommand) handleAddItem(ctx context.Context, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*response, error) {
	k, err := c.lookup(opts["name"].StringValue())
	if err != nil {
		return nil, err
	}

	quantity := int(opts["quantity"].IntValue())
	if quantity <= 0 {
		return ephemeral("Quantity must be at least 1."), nil
	}

	stack := &models.ItemStack{
		Type:     models.ItemType(opts["item"].StringValue()),
		Quantity: quantity,
	}
	if o, ok := opts["display_name"]; ok {
		stack.DisplayName = o.StringValue()
	}

	k.Stacks = append(k.Stacks, stack)
	if err := c.catalog.SaveKit(ctx, k); err != nil {
		return nil, err
	}

	return ephemeral(fmt.Sprintf("Added %d × %s to kit %s.", quantity, stack.Type, k.Name)), nil
}

func (c *KitCommand) handleConfigure(ctx context.Context, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*response, error) {
	k, err := c.lookup(opts["name"].StringValue())
	if err != nil {
		return nil, err
	}

	if o, ok := opts["cooldown"]; ok {
		cooldown, err := time.ParseDuration(o.StringValue())
		if err != nil || cooldown < 0 {
			return ephemeral(fmt.Sprintf("%q is not a valid cooldown.", o.StringValue())), nil
		}
		if cooldown == 0 {
			k.Cooldown = nil
		} else {
			k.Cooldown = &cooldown
		}
	}

	for name, field := range map[string]*bool{
		"one_time":    &k.OneTime,
		"hidden":      &k.Hidden,
		"first_join":  &k.FirstJoin,
		"auto_redeem": &k.AutoRedeem,
	} {
		if o, ok := opts[name]; ok {
			*field = o.BoolValue()
		}
	}

	if o, ok := opts["command"]; ok {
		k.Commands = append(k.Commands, o.StringValue())
	}

	if err := c.catalog.SaveKit(ctx, k); err != nil {
		return nil, err
	}

	return &response{Embed: renderKitInfo(k, false, nil), Ephemeral: true}, nil
}
