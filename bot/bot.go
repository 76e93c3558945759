package bot

import (
	"context"
	"fmt"
	"strconv"

	"indexbot/bot/features/admin"
	"indexbot/bot/features/games"
	"indexbot/bot/features/notifier"
	"indexbot/domain/interfaces"
	"indexbot/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// gatewayIntents is the minimal intent set the bot needs: guilds for role
// state, members for live member counts, messages plus content for the
// mention scanner
const gatewayIntents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMembers |
	discordgo.IntentsGuildMessages |
	discordgo.IntentMessageContent

// Config holds bot configuration
type Config struct {
	Token         string
	ApplicationID string
	GuildIDs      []string // Guilds to register commands in; empty registers globally
}

// Bot manages the Discord bot and all feature modules
type Bot struct {
	config      Config
	session     *discordgo.Session
	uowFactory  interfaces.UnitOfWorkFactory
	roleManager interfaces.RoleManager

	// Feature modules
	games    *games.Feature
	admin    *admin.Feature
	notifier *notifier.Feature
}

// New creates a new bot instance with all features
func New(config Config, uowFactory interfaces.UnitOfWorkFactory) (*Bot, error) {
	// Create Discord session
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = gatewayIntents

	roleManager := NewRoleManager(dg)

	bot := &Bot{
		config:      config,
		session:     dg,
		uowFactory:  uowFactory,
		roleManager: roleManager,
	}

	// Create feature modules
	bot.games = games.NewFeature(dg, uowFactory, roleManager)
	bot.admin = admin.NewFeature(dg, uowFactory, roleManager)
	bot.notifier = notifier.NewFeature(dg, uowFactory, roleManager)

	// Register handlers
	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(bot.handleReady)
	dg.AddHandler(bot.handleGuildCreate)
	dg.AddHandler(bot.handleMessageCreate)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	return bot, nil
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	return b.session.Close()
}

// GetSession returns the Discord session
func (b *Bot) GetSession() *discordgo.Session {
	return b.session
}

// handleCommands routes slash commands to appropriate feature handlers
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "game", "join", "remove", "mygames", "roles", "help":
		b.games.HandleCommand(s, i)
	case "forcejoin", "forceremove", "removerole":
		b.admin.HandleCommand(s, i)
	}
}

// handleReady ensures a namespace for every joined guild and sets presence
func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	ctx := context.Background()

	for _, guild := range r.Guilds {
		guildID, err := strconv.ParseInt(guild.ID, 10, 64)
		if err != nil {
			log.Errorf("Failed to parse guild ID %s: %v", guild.ID, err)
			continue
		}
		if err := b.ensureGuild(ctx, guildID); err != nil {
			log.Errorf("Failed to ensure guild %d: %v", guildID, err)
		}
	}

	if err := s.UpdateGameStatus(0, "/help"); err != nil {
		log.Errorf("Failed to set presence: %v", err)
	}

	log.Infof("Connected as %s#%s (%s)", r.User.Username, r.User.Discriminator, r.User.ID)
}

// handleGuildCreate handles when the bot joins a new guild
func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	guildID, err := strconv.ParseInt(g.ID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse guild ID %s: %v", g.ID, err)
		return
	}

	if err := b.ensureGuild(context.Background(), guildID); err != nil {
		log.Errorf("Failed to track new guild %s (%s): %v", g.Name, g.ID, err)
		return
	}

	log.Infof("Connected to guild %d", guildID)
}

// handleMessageCreate scans incoming messages for game role mentions
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	b.notifier.HandleMessage(s, m)
}

// ensureGuild lazily initializes the guild's namespace inside its own transaction
func (b *Bot) ensureGuild(ctx context.Context, guildID int64) error {
	uow := b.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	service := services.NewSubscriptionService(
		uow.SubscriptionRepository(),
		uow.GuildRepository(),
		b.roleManager,
	)
	if err := service.EnsureGuild(ctx, guildID); err != nil {
		return err
	}

	return uow.Commit()
}
