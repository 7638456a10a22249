package notifier

import (
	"fmt"
	"log"

	"github.com/RUTHVIKRAO04/HackConnect/internal/models"
	"github.com/bwmarrin/discordgo"
)

// Notifier announces platform events to the operators' channel. This is ops
// tooling, not registrant notification; callers log failures and move on.
type Notifier interface {
	NotifyRegistration(user models.User, hackathon models.Hackathon, registration models.Registration) error
}

type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(session *discordgo.Session, channelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}
}

func (n *DiscordNotifier) NotifyRegistration(user models.User, hackathon models.Hackathon, registration models.Registration) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	message := fmt.Sprintf("🎉 **New Team Registration**\n**Hackathon:** %s\n**Team:** %s (%d member(s))\n**Leader:** %s <%s>\n**Submitted by:** %s",
		hackathon.Title,
		registration.TeamName,
		1+len(registration.Members),
		registration.Leader.Name,
		registration.Leader.Email,
		user.FullName,
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}
