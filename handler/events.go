package handler

import "github.com/relaymq/eventflow/event"

// Typed registration helpers, one per known vocabulary key, so call sites
// get completion and a typo in an event name is a compile error instead of
// a silent custom-key registration. Each is shorthand for Register with the
// matching event constant. Keep this file in sync with event.Standard.

// AppDeleted registers fn for "app_deleted" events.
func (r *Registry) AppDeleted(fn Callback) {
	r.Register(event.AppDeleted, fn)
}

// AppHomeOpened registers fn for "app_home_opened" events.
func (r *Registry) AppHomeOpened(fn Callback) {
	r.Register(event.AppHomeOpened, fn)
}

// AppInstalled registers fn for "app_installed" events.
func (r *Registry) AppInstalled(fn Callback) {
	r.Register(event.AppInstalled, fn)
}

// AppMention registers fn for "app_mention" events.
func (r *Registry) AppMention(fn Callback) {
	r.Register(event.AppMention, fn)
}

// AppRateLimited registers fn for "app_rate_limited" events.
func (r *Registry) AppRateLimited(fn Callback) {
	r.Register(event.AppRateLimited, fn)
}

// AppRequested registers fn for "app_requested" events.
func (r *Registry) AppRequested(fn Callback) {
	r.Register(event.AppRequested, fn)
}

// AppUninstalled registers fn for "app_uninstalled" events.
func (r *Registry) AppUninstalled(fn Callback) {
	r.Register(event.AppUninstalled, fn)
}

// AppUninstalledTeam registers fn for "app_uninstalled_team" events.
func (r *Registry) AppUninstalledTeam(fn Callback) {
	r.Register(event.AppUninstalledTeam, fn)
}

// AssistantThreadContextChanged registers fn for "assistant_thread_context_changed" events.
func (r *Registry) AssistantThreadContextChanged(fn Callback) {
	r.Register(event.AssistantThreadContextChanged, fn)
}

// AssistantThreadStarted registers fn for "assistant_thread_started" events.
func (r *Registry) AssistantThreadStarted(fn Callback) {
	r.Register(event.AssistantThreadStarted, fn)
}

// CallRejected registers fn for "call_rejected" events.
func (r *Registry) CallRejected(fn Callback) {
	r.Register(event.CallRejected, fn)
}

// ChannelArchive registers fn for "channel_archive" events.
func (r *Registry) ChannelArchive(fn Callback) {
	r.Register(event.ChannelArchive, fn)
}

// ChannelCreated registers fn for "channel_created" events.
func (r *Registry) ChannelCreated(fn Callback) {
	r.Register(event.ChannelCreated, fn)
}

// ChannelDeleted registers fn for "channel_deleted" events.
func (r *Registry) ChannelDeleted(fn Callback) {
	r.Register(event.ChannelDeleted, fn)
}

// ChannelHistoryChanged registers fn for "channel_history_changed" events.
func (r *Registry) ChannelHistoryChanged(fn Callback) {
	r.Register(event.ChannelHistoryChanged, fn)
}

// ChannelIDChanged registers fn for "channel_id_changed" events.
func (r *Registry) ChannelIDChanged(fn Callback) {
	r.Register(event.ChannelIDChanged, fn)
}

// ChannelLeft registers fn for "channel_left" events.
func (r *Registry) ChannelLeft(fn Callback) {
	r.Register(event.ChannelLeft, fn)
}

// ChannelRename registers fn for "channel_rename" events.
func (r *Registry) ChannelRename(fn Callback) {
	r.Register(event.ChannelRename, fn)
}

// ChannelShared registers fn for "channel_shared" events.
func (r *Registry) ChannelShared(fn Callback) {
	r.Register(event.ChannelShared, fn)
}

// ChannelUnarchive registers fn for "channel_unarchive" events.
func (r *Registry) ChannelUnarchive(fn Callback) {
	r.Register(event.ChannelUnarchive, fn)
}

// ChannelUnshared registers fn for "channel_unshared" events.
func (r *Registry) ChannelUnshared(fn Callback) {
	r.Register(event.ChannelUnshared, fn)
}

// DNDUpdated registers fn for "dnd_updated" events.
func (r *Registry) DNDUpdated(fn Callback) {
	r.Register(event.DNDUpdated, fn)
}

// DNDUpdatedUser registers fn for "dnd_updated_user" events.
func (r *Registry) DNDUpdatedUser(fn Callback) {
	r.Register(event.DNDUpdatedUser, fn)
}

// EmailDomainChanged registers fn for "email_domain_changed" events.
func (r *Registry) EmailDomainChanged(fn Callback) {
	r.Register(event.EmailDomainChanged, fn)
}

// EmojiChanged registers fn for "emoji_changed" events.
func (r *Registry) EmojiChanged(fn Callback) {
	r.Register(event.EmojiChanged, fn)
}

// FileChange registers fn for "file_change" events.
func (r *Registry) FileChange(fn Callback) {
	r.Register(event.FileChange, fn)
}

// FileCommentAdded registers fn for "file_comment_added" events.
func (r *Registry) FileCommentAdded(fn Callback) {
	r.Register(event.FileCommentAdded, fn)
}

// FileCommentDeleted registers fn for "file_comment_deleted" events.
func (r *Registry) FileCommentDeleted(fn Callback) {
	r.Register(event.FileCommentDeleted, fn)
}

// FileCommentEdited registers fn for "file_comment_edited" events.
func (r *Registry) FileCommentEdited(fn Callback) {
	r.Register(event.FileCommentEdited, fn)
}

// FileCreated registers fn for "file_created" events.
func (r *Registry) FileCreated(fn Callback) {
	r.Register(event.FileCreated, fn)
}

// FileDeleted registers fn for "file_deleted" events.
func (r *Registry) FileDeleted(fn Callback) {
	r.Register(event.FileDeleted, fn)
}

// FilePublic registers fn for "file_public" events.
func (r *Registry) FilePublic(fn Callback) {
	r.Register(event.FilePublic, fn)
}

// FileShared registers fn for "file_shared" events.
func (r *Registry) FileShared(fn Callback) {
	r.Register(event.FileShared, fn)
}

// FileUnshared registers fn for "file_unshared" events.
func (r *Registry) FileUnshared(fn Callback) {
	r.Register(event.FileUnshared, fn)
}

// FunctionExecuted registers fn for "function_executed" events.
func (r *Registry) FunctionExecuted(fn Callback) {
	r.Register(event.FunctionExecuted, fn)
}

// GridMigrationFinished registers fn for "grid_migration_finished" events.
func (r *Registry) GridMigrationFinished(fn Callback) {
	r.Register(event.GridMigrationFinished, fn)
}

// GridMigrationStarted registers fn for "grid_migration_started" events.
func (r *Registry) GridMigrationStarted(fn Callback) {
	r.Register(event.GridMigrationStarted, fn)
}

// GroupArchive registers fn for "group_archive" events.
func (r *Registry) GroupArchive(fn Callback) {
	r.Register(event.GroupArchive, fn)
}

// GroupClose registers fn for "group_close" events.
func (r *Registry) GroupClose(fn Callback) {
	r.Register(event.GroupClose, fn)
}

// GroupDeleted registers fn for "group_deleted" events.
func (r *Registry) GroupDeleted(fn Callback) {
	r.Register(event.GroupDeleted, fn)
}

// GroupHistoryChanged registers fn for "group_history_changed" events.
func (r *Registry) GroupHistoryChanged(fn Callback) {
	r.Register(event.GroupHistoryChanged, fn)
}

// GroupLeft registers fn for "group_left" events.
func (r *Registry) GroupLeft(fn Callback) {
	r.Register(event.GroupLeft, fn)
}

// GroupOpen registers fn for "group_open" events.
func (r *Registry) GroupOpen(fn Callback) {
	r.Register(event.GroupOpen, fn)
}

// GroupRename registers fn for "group_rename" events.
func (r *Registry) GroupRename(fn Callback) {
	r.Register(event.GroupRename, fn)
}

// GroupUnarchive registers fn for "group_unarchive" events.
func (r *Registry) GroupUnarchive(fn Callback) {
	r.Register(event.GroupUnarchive, fn)
}

// IMClose registers fn for "im_close" events.
func (r *Registry) IMClose(fn Callback) {
	r.Register(event.IMClose, fn)
}

// IMCreated registers fn for "im_created" events.
func (r *Registry) IMCreated(fn Callback) {
	r.Register(event.IMCreated, fn)
}

// IMHistoryChanged registers fn for "im_history_changed" events.
func (r *Registry) IMHistoryChanged(fn Callback) {
	r.Register(event.IMHistoryChanged, fn)
}

// IMOpen registers fn for "im_open" events.
func (r *Registry) IMOpen(fn Callback) {
	r.Register(event.IMOpen, fn)
}

// InviteRequested registers fn for "invite_requested" events.
func (r *Registry) InviteRequested(fn Callback) {
	r.Register(event.InviteRequested, fn)
}

// LinkShared registers fn for "link_shared" events.
func (r *Registry) LinkShared(fn Callback) {
	r.Register(event.LinkShared, fn)
}

// MemberJoinedChannel registers fn for "member_joined_channel" events.
func (r *Registry) MemberJoinedChannel(fn Callback) {
	r.Register(event.MemberJoinedChannel, fn)
}

// MemberLeftChannel registers fn for "member_left_channel" events.
func (r *Registry) MemberLeftChannel(fn Callback) {
	r.Register(event.MemberLeftChannel, fn)
}

// Message registers fn for "message" events.
func (r *Registry) Message(fn Callback) {
	r.Register(event.Message, fn)
}

// MessageMetadataDeleted registers fn for "message_metadata_deleted" events.
func (r *Registry) MessageMetadataDeleted(fn Callback) {
	r.Register(event.MessageMetadataDeleted, fn)
}

// MessageMetadataPosted registers fn for "message_metadata_posted" events.
func (r *Registry) MessageMetadataPosted(fn Callback) {
	r.Register(event.MessageMetadataPosted, fn)
}

// MessageMetadataUpdated registers fn for "message_metadata_updated" events.
func (r *Registry) MessageMetadataUpdated(fn Callback) {
	r.Register(event.MessageMetadataUpdated, fn)
}

// PinAdded registers fn for "pin_added" events.
func (r *Registry) PinAdded(fn Callback) {
	r.Register(event.PinAdded, fn)
}

// PinRemoved registers fn for "pin_removed" events.
func (r *Registry) PinRemoved(fn Callback) {
	r.Register(event.PinRemoved, fn)
}

// ReactionAdded registers fn for "reaction_added" events.
func (r *Registry) ReactionAdded(fn Callback) {
	r.Register(event.ReactionAdded, fn)
}

// ReactionRemoved registers fn for "reaction_removed" events.
func (r *Registry) ReactionRemoved(fn Callback) {
	r.Register(event.ReactionRemoved, fn)
}

// ResourcesAdded registers fn for "resources_added" events.
func (r *Registry) ResourcesAdded(fn Callback) {
	r.Register(event.ResourcesAdded, fn)
}

// ResourcesRemoved registers fn for "resources_removed" events.
func (r *Registry) ResourcesRemoved(fn Callback) {
	r.Register(event.ResourcesRemoved, fn)
}

// ScopeDenied registers fn for "scope_denied" events.
func (r *Registry) ScopeDenied(fn Callback) {
	r.Register(event.ScopeDenied, fn)
}

// ScopeGranted registers fn for "scope_granted" events.
func (r *Registry) ScopeGranted(fn Callback) {
	r.Register(event.ScopeGranted, fn)
}

// SharedChannelInviteAccepted registers fn for "shared_channel_invite_accepted" events.
func (r *Registry) SharedChannelInviteAccepted(fn Callback) {
	r.Register(event.SharedChannelInviteAccepted, fn)
}

// SharedChannelInviteApproved registers fn for "shared_channel_invite_approved" events.
func (r *Registry) SharedChannelInviteApproved(fn Callback) {
	r.Register(event.SharedChannelInviteApproved, fn)
}

// SharedChannelInviteDeclined registers fn for "shared_channel_invite_declined" events.
func (r *Registry) SharedChannelInviteDeclined(fn Callback) {
	r.Register(event.SharedChannelInviteDeclined, fn)
}

// SharedChannelInviteReceived registers fn for "shared_channel_invite_received" events.
func (r *Registry) SharedChannelInviteReceived(fn Callback) {
	r.Register(event.SharedChannelInviteReceived, fn)
}

// SharedChannelInviteRequested registers fn for "shared_channel_invite_requested" events.
func (r *Registry) SharedChannelInviteRequested(fn Callback) {
	r.Register(event.SharedChannelInviteRequested, fn)
}

// StarAdded registers fn for "star_added" events.
func (r *Registry) StarAdded(fn Callback) {
	r.Register(event.StarAdded, fn)
}

// StarRemoved registers fn for "star_removed" events.
func (r *Registry) StarRemoved(fn Callback) {
	r.Register(event.StarRemoved, fn)
}

// SubteamCreated registers fn for "subteam_created" events.
func (r *Registry) SubteamCreated(fn Callback) {
	r.Register(event.SubteamCreated, fn)
}

// SubteamMembersChanged registers fn for "subteam_members_changed" events.
func (r *Registry) SubteamMembersChanged(fn Callback) {
	r.Register(event.SubteamMembersChanged, fn)
}

// SubteamSelfAdded registers fn for "subteam_self_added" events.
func (r *Registry) SubteamSelfAdded(fn Callback) {
	r.Register(event.SubteamSelfAdded, fn)
}

// SubteamSelfRemoved registers fn for "subteam_self_removed" events.
func (r *Registry) SubteamSelfRemoved(fn Callback) {
	r.Register(event.SubteamSelfRemoved, fn)
}

// SubteamUpdated registers fn for "subteam_updated" events.
func (r *Registry) SubteamUpdated(fn Callback) {
	r.Register(event.SubteamUpdated, fn)
}

// TeamAccessGranted registers fn for "team_access_granted" events.
func (r *Registry) TeamAccessGranted(fn Callback) {
	r.Register(event.TeamAccessGranted, fn)
}

// TeamAccessRevoked registers fn for "team_access_revoked" events.
func (r *Registry) TeamAccessRevoked(fn Callback) {
	r.Register(event.TeamAccessRevoked, fn)
}

// TeamDomainChange registers fn for "team_domain_change" events.
func (r *Registry) TeamDomainChange(fn Callback) {
	r.Register(event.TeamDomainChange, fn)
}

// TeamJoin registers fn for "team_join" events.
func (r *Registry) TeamJoin(fn Callback) {
	r.Register(event.TeamJoin, fn)
}

// TeamRename registers fn for "team_rename" events.
func (r *Registry) TeamRename(fn Callback) {
	r.Register(event.TeamRename, fn)
}

// TokensRevoked registers fn for "tokens_revoked" events.
func (r *Registry) TokensRevoked(fn Callback) {
	r.Register(event.TokensRevoked, fn)
}

// URLVerification registers fn for "url_verification" events.
func (r *Registry) URLVerification(fn Callback) {
	r.Register(event.URLVerification, fn)
}

// UserChange registers fn for "user_change" events.
func (r *Registry) UserChange(fn Callback) {
	r.Register(event.UserChange, fn)
}

// UserHuddleChanged registers fn for "user_huddle_changed" events.
func (r *Registry) UserHuddleChanged(fn Callback) {
	r.Register(event.UserHuddleChanged, fn)
}

// UserResourceDenied registers fn for "user_resource_denied" events.
func (r *Registry) UserResourceDenied(fn Callback) {
	r.Register(event.UserResourceDenied, fn)
}

// UserResourceGranted registers fn for "user_resource_granted" events.
func (r *Registry) UserResourceGranted(fn Callback) {
	r.Register(event.UserResourceGranted, fn)
}

// UserResourceRemoved registers fn for "user_resource_removed" events.
func (r *Registry) UserResourceRemoved(fn Callback) {
	r.Register(event.UserResourceRemoved, fn)
}

// WorkflowDeleted registers fn for "workflow_deleted" events.
func (r *Registry) WorkflowDeleted(fn Callback) {
	r.Register(event.WorkflowDeleted, fn)
}

// WorkflowPublished registers fn for "workflow_published" events.
func (r *Registry) WorkflowPublished(fn Callback) {
	r.Register(event.WorkflowPublished, fn)
}

// WorkflowStepDeleted registers fn for "workflow_step_deleted" events.
func (r *Registry) WorkflowStepDeleted(fn Callback) {
	r.Register(event.WorkflowStepDeleted, fn)
}

// WorkflowStepExecute registers fn for "workflow_step_execute" events.
func (r *Registry) WorkflowStepExecute(fn Callback) {
	r.Register(event.WorkflowStepExecute, fn)
}

// WorkflowUnpublished registers fn for "workflow_unpublished" events.
func (r *Registry) WorkflowUnpublished(fn Callback) {
	r.Register(event.WorkflowUnpublished, fn)
}

// MessageAppHome registers fn for "message.app_home" events.
func (r *Registry) MessageAppHome(fn Callback) {
	r.Register(event.MessageAppHome, fn)
}

// MessageChannels registers fn for "message.channels" events.
func (r *Registry) MessageChannels(fn Callback) {
	r.Register(event.MessageChannels, fn)
}

// MessageGroups registers fn for "message.groups" events.
func (r *Registry) MessageGroups(fn Callback) {
	r.Register(event.MessageGroups, fn)
}

// MessageIM registers fn for "message.im" events.
func (r *Registry) MessageIM(fn Callback) {
	r.Register(event.MessageIM, fn)
}

// MessageMPIM registers fn for "message.mpim" events.
func (r *Registry) MessageMPIM(fn Callback) {
	r.Register(event.MessageMPIM, fn)
}
