package event

import "strings"

// Standard Slack Events API event types. The list mirrors the events the
// upstream platform documents; routing accepts names outside this
// vocabulary as custom keys, so the list exists for discoverability and
// for the generated registration helpers, not for validation.
const (
	AppDeleted                    = "app_deleted"
	AppHomeOpened                 = "app_home_opened"
	AppInstalled                  = "app_installed"
	AppMention                    = "app_mention"
	AppRateLimited                = "app_rate_limited"
	AppRequested                  = "app_requested"
	AppUninstalled                = "app_uninstalled"
	AppUninstalledTeam            = "app_uninstalled_team"
	AssistantThreadContextChanged = "assistant_thread_context_changed"
	AssistantThreadStarted        = "assistant_thread_started"
	CallRejected                  = "call_rejected"
	ChannelArchive                = "channel_archive"
	ChannelCreated                = "channel_created"
	ChannelDeleted                = "channel_deleted"
	ChannelHistoryChanged         = "channel_history_changed"
	ChannelIDChanged              = "channel_id_changed"
	ChannelLeft                   = "channel_left"
	ChannelRename                 = "channel_rename"
	ChannelShared                 = "channel_shared"
	ChannelUnarchive              = "channel_unarchive"
	ChannelUnshared               = "channel_unshared"
	DNDUpdated                    = "dnd_updated"
	DNDUpdatedUser                = "dnd_updated_user"
	EmailDomainChanged            = "email_domain_changed"
	EmojiChanged                  = "emoji_changed"
	FileChange                    = "file_change"
	FileCommentAdded              = "file_comment_added"
	FileCommentDeleted            = "file_comment_deleted"
	FileCommentEdited             = "file_comment_edited"
	FileCreated                   = "file_created"
	FileDeleted                   = "file_deleted"
	FilePublic                    = "file_public"
	FileShared                    = "file_shared"
	FileUnshared                  = "file_unshared"
	FunctionExecuted              = "function_executed"
	GridMigrationFinished         = "grid_migration_finished"
	GridMigrationStarted          = "grid_migration_started"
	GroupArchive                  = "group_archive"
	GroupClose                    = "group_close"
	GroupDeleted                  = "group_deleted"
	GroupHistoryChanged           = "group_history_changed"
	GroupLeft                     = "group_left"
	GroupOpen                     = "group_open"
	GroupRename                   = "group_rename"
	GroupUnarchive                = "group_unarchive"
	IMClose                       = "im_close"
	IMCreated                     = "im_created"
	IMHistoryChanged              = "im_history_changed"
	IMOpen                        = "im_open"
	InviteRequested               = "invite_requested"
	LinkShared                    = "link_shared"
	MemberJoinedChannel           = "member_joined_channel"
	MemberLeftChannel             = "member_left_channel"
	Message                       = "message"
	MessageMetadataDeleted        = "message_metadata_deleted"
	MessageMetadataPosted         = "message_metadata_posted"
	MessageMetadataUpdated        = "message_metadata_updated"
	PinAdded                      = "pin_added"
	PinRemoved                    = "pin_removed"
	ReactionAdded                 = "reaction_added"
	ReactionRemoved               = "reaction_removed"
	ResourcesAdded                = "resources_added"
	ResourcesRemoved              = "resources_removed"
	ScopeDenied                   = "scope_denied"
	ScopeGranted                  = "scope_granted"
	SharedChannelInviteAccepted   = "shared_channel_invite_accepted"
	SharedChannelInviteApproved   = "shared_channel_invite_approved"
	SharedChannelInviteDeclined   = "shared_channel_invite_declined"
	SharedChannelInviteReceived   = "shared_channel_invite_received"
	SharedChannelInviteRequested  = "shared_channel_invite_requested"
	StarAdded                     = "star_added"
	StarRemoved                   = "star_removed"
	SubteamCreated                = "subteam_created"
	SubteamMembersChanged         = "subteam_members_changed"
	SubteamSelfAdded              = "subteam_self_added"
	SubteamSelfRemoved            = "subteam_self_removed"
	SubteamUpdated                = "subteam_updated"
	TeamAccessGranted             = "team_access_granted"
	TeamAccessRevoked             = "team_access_revoked"
	TeamDomainChange              = "team_domain_change"
	TeamJoin                      = "team_join"
	TeamRename                    = "team_rename"
	TokensRevoked                 = "tokens_revoked"
	URLVerification               = "url_verification"
	UserChange                    = "user_change"
	UserHuddleChanged             = "user_huddle_changed"
	UserResourceDenied            = "user_resource_denied"
	UserResourceGranted           = "user_resource_granted"
	UserResourceRemoved           = "user_resource_removed"
	WorkflowDeleted               = "workflow_deleted"
	WorkflowPublished             = "workflow_published"
	WorkflowStepDeleted           = "workflow_step_deleted"
	WorkflowStepExecute           = "workflow_step_execute"
	WorkflowUnpublished           = "workflow_unpublished"
)

// Message subtype compound keys (dot-separated, registry convention).
const (
	MessageAppHome  = "message.app_home"
	MessageChannels = "message.channels"
	MessageGroups   = "message.groups"
	MessageIM       = "message.im"
	MessageMPIM     = "message.mpim"
)

// Standard lists every known vocabulary key in lexical order.
var Standard = []string{
	"app_deleted",
	"app_home_opened",
	"app_installed",
	"app_mention",
	"app_rate_limited",
	"app_requested",
	"app_uninstalled",
	"app_uninstalled_team",
	"assistant_thread_context_changed",
	"assistant_thread_started",
	"call_rejected",
	"channel_archive",
	"channel_created",
	"channel_deleted",
	"channel_history_changed",
	"channel_id_changed",
	"channel_left",
	"channel_rename",
	"channel_shared",
	"channel_unarchive",
	"channel_unshared",
	"dnd_updated",
	"dnd_updated_user",
	"email_domain_changed",
	"emoji_changed",
	"file_change",
	"file_comment_added",
	"file_comment_deleted",
	"file_comment_edited",
	"file_created",
	"file_deleted",
	"file_public",
	"file_shared",
	"file_unshared",
	"function_executed",
	"grid_migration_finished",
	"grid_migration_started",
	"group_archive",
	"group_close",
	"group_deleted",
	"group_history_changed",
	"group_left",
	"group_open",
	"group_rename",
	"group_unarchive",
	"im_close",
	"im_created",
	"im_history_changed",
	"im_open",
	"invite_requested",
	"link_shared",
	"member_joined_channel",
	"member_left_channel",
	"message",
	"message.app_home",
	"message.channels",
	"message.groups",
	"message.im",
	"message.mpim",
	"message_metadata_deleted",
	"message_metadata_posted",
	"message_metadata_updated",
	"pin_added",
	"pin_removed",
	"reaction_added",
	"reaction_removed",
	"resources_added",
	"resources_removed",
	"scope_denied",
	"scope_granted",
	"shared_channel_invite_accepted",
	"shared_channel_invite_approved",
	"shared_channel_invite_declined",
	"shared_channel_invite_received",
	"shared_channel_invite_requested",
	"star_added",
	"star_removed",
	"subteam_created",
	"subteam_members_changed",
	"subteam_self_added",
	"subteam_self_removed",
	"subteam_updated",
	"team_access_granted",
	"team_access_revoked",
	"team_domain_change",
	"team_join",
	"team_rename",
	"tokens_revoked",
	"url_verification",
	"user_change",
	"user_huddle_changed",
	"user_resource_denied",
	"user_resource_granted",
	"user_resource_removed",
	"workflow_deleted",
	"workflow_published",
	"workflow_step_deleted",
	"workflow_step_execute",
	"workflow_unpublished",
}

var known = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Standard))
	for _, name := range Standard {
		m[name] = struct{}{}
	}
	return m
}()

// Known reports whether name is part of the standard vocabulary.
func Known(name string) bool {
	_, ok := known[name]
	return ok
}

// Resolve maps a snake_case registration name to a canonical routing key.
// Resolution order: exact vocabulary match, then underscores replaced with
// dots and retried against the vocabulary, then the raw name as a custom
// key. Resolve never fails: unrecognised names become custom keys so
// forward-compatible event types register cleanly.
func Resolve(name string) string {
	if Known(name) {
		return name
	}
	if dotted := strings.ReplaceAll(name, "_", "."); Known(dotted) {
		return dotted
	}
	return name
}
