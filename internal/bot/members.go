package bot

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// memberFetchLimit caps the gateway member fetch per request.
const memberFetchLimit = 100

// AssignableMember is a guild member eligible to be a ticket assignee.
type AssignableMember struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Username    string `json:"username"`
}

// MemberDirectory lists assignable guild members, with a short-lived Redis
// cache in front of the platform fetch.
type MemberDirectory struct {
	session *discordgo.Session
	cache   *redis.Client
	ttl     time.Duration
	logger  *zap.Logger
}

// NewMemberDirectory builds the directory. cache may be nil, in which case
// every call goes to the platform.
func NewMemberDirectory(session *discordgo.Session, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *MemberDirectory {
	return &MemberDirectory{session: session, cache: cache, ttl: ttl, logger: logger}
}

func memberCacheKey(guildID string) string {
	return "ticketbot:members:" + guildID
}

// Assignable returns the guild's non-bot members.
func (d *MemberDirectory) Assignable(ctx context.Context, guildID string) ([]AssignableMember, error) {
	if cached, ok := d.fromCache(ctx, guildID); ok {
		return cached, nil
	}

	members, err := d.session.GuildMembers(guildID, "", memberFetchLimit, discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	result := make([]AssignableMember, 0, len(members))
	for _, member := range members {
		if member.User == nil || member.User.Bot {
			continue
		}
		result = append(result, AssignableMember{
			ID:          member.User.ID,
			DisplayName: displayName(member),
			Username:    member.User.Username,
		})
	}

	d.toCache(ctx, guildID, result)
	return result, nil
}

// DisplayName resolves one member's display name, falling back to a mention
// when the member cannot be fetched.
func (d *MemberDirectory) DisplayName(ctx context.Context, guildID, userID string) string {
	member, err := d.session.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		d.logger.Debug("member fetch failed", zap.String("user_id", userID), zap.Error(err))
		return "<@" + userID + ">"
	}
	return displayName(member)
}

func (d *MemberDirectory) fromCache(ctx context.Context, guildID string) ([]AssignableMember, bool) {
	if d.cache == nil {
		return nil, false
	}
	raw, err := d.cache.Get(ctx, memberCacheKey(guildID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			d.logger.Debug("member cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var members []AssignableMember
	if err := json.Unmarshal(raw, &members); err != nil {
		return nil, false
	}
	return members, true
}

func (d *MemberDirectory) toCache(ctx context.Context, guildID string, members []AssignableMember) {
	if d.cache == nil {
		return
	}
	raw, err := json.Marshal(members)
	if err != nil {
		return
	}
	if err := d.cache.Set(ctx, memberCacheKey(guildID), raw, d.ttl).Err(); err != nil {
		d.logger.Debug("member cache write failed", zap.Error(err))
	}
}

func displayName(member *discordgo.Member) string {
	if member.Nick != "" {
		return member.Nick
	}
	if member.User.GlobalName != "" {
		return member.User.GlobalName
	}
	return member.User.Username
}
