package crafting

import "time"

// ==================== Crafting Mechanics ====================

// DefaultCraftDelay is the pause between starting a craft and committing its result
const DefaultCraftDelay = 2000 * time.Millisecond

// ==================== Event Sources ====================

// EventSource identifies crafting events in metadata
const EventSource = "crafting"

// Cancellation reasons carried on craft.cancelled events
const (
	CancelReasonSessionClosed = "session_closed"
	CancelReasonContextDone   = "context_done"
	CancelReasonStoreFailed   = "store_failed"
)

// ==================== Log Messages ====================

// Session log messages
const (
	LogMsgSessionOpened      = "Crafting session opened"
	LogMsgSessionClosed      = "Crafting session closed"
	LogMsgTokenAdded         = "Ingredient staged"
	LogMsgTokenRemoved       = "Ingredient removed"
	LogMsgBufferCleared      = "Crafting slots cleared"
	LogMsgMutationRejected   = "Slot change ignored while crafting or showing a result"
	LogMsgMatchChanged       = "Recipe match changed"
	LogMsgCraftRejected      = "Craft ignored: no recipe matched"
	LogMsgCraftStarted       = "Craft started"
	LogMsgCraftCompleted     = "Craft completed"
	LogMsgRecipeDiscovered   = "Recipe discovered!"
	LogMsgCraftCancelled     = "Craft cancelled before completion"
	LogMsgRecordCraftFailed  = "Failed to record craft"
	LogMsgResultDismissed    = "Craft result dismissed"
	LogMsgPublishEventFailed = "Failed to publish crafting event"

	LogMsgProgressUnavailable = "Recipe progress unavailable; using catalog definition"
)
