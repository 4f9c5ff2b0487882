package handlers

import (
	"encoding/json"
	"sync"

	"career-path-api/internal/catalog"
	"career-path-api/internal/database"
	"career-path-api/internal/realtime"

	"gorm.io/gorm"
)

var (
	resolverMu sync.Mutex
	resolver   *catalog.Resolver
	resolverDB *gorm.DB
)

// catalogResolver returns a resolver bound to the current DB handle,
// rebuilding it when tests swap database.DB.
func catalogResolver() *catalog.Resolver {
	resolverMu.Lock()
	defer resolverMu.Unlock()
	db := database.GetDB()
	if resolver == nil || resolverDB != db {
		resolver = catalog.NewResolver(db)
		resolverDB = db
	}
	return resolver
}

// broadcastChange pushes a change event to the team's websocket channel.
// Role-default catalog edits have no team channel; callers pass an empty
// teamID and the event is dropped.
func broadcastChange(teamID string, action realtime.ChangeAction, entity, id string, payload any) {
	if teamID == "" {
		return
	}
	evt := realtime.NewChangeEvent(action, entity, id, payload)
	if bytes, err := json.Marshal(evt); err == nil {
		realtime.GetHub().Broadcast(teamID, bytes)
	}
}
