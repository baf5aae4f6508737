package socket

import "fmt"

// Broadcaster provides high-level methods for broadcasting workspace
// events to the right rooms.
type Broadcaster struct {
	hub *Hub
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hub *Hub) *Broadcaster {
	return &Broadcaster{hub: hub}
}

func workspaceRoom(workspaceID string) string {
	return fmt.Sprintf("workspace:%s", workspaceID)
}

// ============================================
// Workspace Broadcasting
// ============================================

// WorkspaceUpdated broadcasts workspace changes to all workspace members
func (b *Broadcaster) WorkspaceUpdated(workspaceID, name string) {
	b.hub.SendToRoom(workspaceRoom(workspaceID), MessageWorkspaceUpdated, map[string]interface{}{
		"workspaceId": workspaceID,
		"name":        name,
	}, "")
}

// WorkspaceDeleted broadcasts workspace deletion to all workspace members
func (b *Broadcaster) WorkspaceDeleted(workspaceID string) {
	b.hub.SendToRoom(workspaceRoom(workspaceID), MessageWorkspaceDeleted, map[string]interface{}{
		"workspaceId": workspaceID,
	}, "")
}

// ============================================
// Member Broadcasting
// ============================================

// MemberAdded broadcasts a new membership to the workspace room and
// notifies the new member directly.
func (b *Broadcaster) MemberAdded(workspaceID, userID, role string) {
	payload := map[string]interface{}{
		"workspaceId": workspaceID,
		"userId":      userID,
		"role":        role,
	}
	b.hub.SendToRoom(workspaceRoom(workspaceID), MessageMemberAdded, payload, "")
	b.hub.SendToUser(userID, MessageMemberAdded, payload)
}

// MemberRemoved broadcasts member removal to the workspace room and the
// removed user.
func (b *Broadcaster) MemberRemoved(workspaceID, userID string) {
	payload := map[string]interface{}{
		"workspaceId": workspaceID,
		"userId":      userID,
	}
	b.hub.SendToRoom(workspaceRoom(workspaceID), MessageMemberRemoved, payload, "")
	b.hub.SendToUser(userID, MessageMemberRemoved, payload)
}

// MemberRoleUpdated broadcasts a role change to the workspace room
func (b *Broadcaster) MemberRoleUpdated(workspaceID, userID, role string) {
	b.hub.SendToRoom(workspaceRoom(workspaceID), MessageMemberRoleUpdated, map[string]interface{}{
		"workspaceId": workspaceID,
		"userId":      userID,
		"newRole":     role,
	}, "")
}

// ============================================
// Calendar Broadcasting
// ============================================

// EventCreated broadcasts calendar event creation to the workspace room
func (b *Broadcaster) EventCreated(workspaceID, eventID, title string) {
	b.hub.SendToRoom(workspaceRoom(workspaceID), MessageEventCreated, map[string]interface{}{
		"workspaceId": workspaceID,
		"eventId":     eventID,
		"title":       title,
	}, "")
}

// EventUpdated broadcasts calendar event changes to the workspace room
func (b *Broadcaster) EventUpdated(workspaceID, eventID, status string) {
	b.hub.SendToRoom(workspaceRoom(workspaceID), MessageEventUpdated, map[string]interface{}{
		"workspaceId": workspaceID,
		"eventId":     eventID,
		"status":      status,
	}, "")
}

// EventDeleted broadcasts calendar event deletion to the workspace room
func (b *Broadcaster) EventDeleted(workspaceID, eventID string) {
	b.hub.SendToRoom(workspaceRoom(workspaceID), MessageEventDeleted, map[string]interface{}{
		"workspaceId": workspaceID,
		"eventId":     eventID,
	}, "")
}

// ============================================
// Idea Broadcasting
// ============================================

// IdeaCreated broadcasts idea creation to the workspace room
func (b *Broadcaster) IdeaCreated(workspaceID, ideaID, title string) {
	b.hub.SendToRoom(workspaceRoom(workspaceID), MessageIdeaCreated, map[string]interface{}{
		"workspaceId": workspaceID,
		"ideaId":      ideaID,
		"title":       title,
	}, "")
}

// IdeaUpdated broadcasts idea changes to the workspace room
func (b *Broadcaster) IdeaUpdated(workspaceID, ideaID, status string) {
	b.hub.SendToRoom(workspaceRoom(workspaceID), MessageIdeaUpdated, map[string]interface{}{
		"workspaceId": workspaceID,
		"ideaId":      ideaID,
		"status":      status,
	}, "")
}

// ============================================
// Script Broadcasting
// ============================================

// ScriptCreated broadcasts script creation to the workspace room
func (b *Broadcaster) ScriptCreated(workspaceID, scriptID, title string) {
	b.hub.SendToRoom(workspaceRoom(workspaceID), MessageScriptCreated, map[string]interface{}{
		"workspaceId": workspaceID,
		"scriptId":    scriptID,
		"title":       title,
	}, "")
}

// ScriptUpdated broadcasts script changes to the workspace room
func (b *Broadcaster) ScriptUpdated(workspaceID, scriptID, status string) {
	b.hub.SendToRoom(workspaceRoom(workspaceID), MessageScriptUpdated, map[string]interface{}{
		"workspaceId": workspaceID,
		"scriptId":    scriptID,
		"status":      status,
	}, "")
}

// ============================================
// Chat Broadcasting
// ============================================

// ChatMessage broadcasts a new chat message to the workspace room
func (b *Broadcaster) ChatMessage(workspaceID, messageID, role string) {
	b.hub.SendToRoom(workspaceRoom(workspaceID), MessageChatMessage, map[string]interface{}{
		"workspaceId": workspaceID,
		"messageId":   messageID,
		"role":        role,
	}, "")
}

// ============================================
// Reminder Broadcasting
// ============================================

// PostingReminder broadcasts an upcoming scheduled event to the
// workspace room.
func (b *Broadcaster) PostingReminder(workspaceID, eventID, title string, scheduledAt string) {
	b.hub.SendToRoom(workspaceRoom(workspaceID), MessagePostingReminder, map[string]interface{}{
		"workspaceId": workspaceID,
		"eventId":     eventID,
		"title":       title,
		"scheduledAt": scheduledAt,
	}, "")
}
