package handler

import (
	"context"
	"strconv"
	"sync"

	"github.com/gofiber/contrib/websocket"

	"salon_manager/database"
	"salon_manager/dto"
	"salon_manager/model"
	"salon_manager/search"
)

var (
	recordClients = make(map[uint]map[*websocket.Conn]bool)
	recordMu      sync.Mutex
)

// RecordFeed streams record changes for one salon over a websocket. Each
// salon is a room backed by a redis channel; every publish from the record
// handlers fans out to the room's connections.
func RecordFeed(c *websocket.Conn) {
	id64, _ := strconv.ParseUint(c.Params("id"), 10, 64)
	salonID := uint(id64)

	defer func() {
		recordMu.Lock()
		if recordClients[salonID] != nil {
			delete(recordClients[salonID], c)
		}
		recordMu.Unlock()
		c.Close()
	}()

	recordMu.Lock()
	if recordClients[salonID] == nil {
		recordClients[salonID] = make(map[*websocket.Conn]bool)
	}
	recordClients[salonID][c] = true
	recordMu.Unlock()

	// Initial snapshot so new clients do not wait for the next change.
	var records []model.Record
	database.DB.
		Preload("Master").Preload("Variant").Preload("User").Preload("Salon").Preload("Options").
		Where("salon_id = ?", salonID).
		Find(&records)
	snapshot := make([]dto.RecordDTO, 0, len(records))
	for i := range records {
		snapshot = append(snapshot, *dto.NewRecordDTO(&records[i]))
	}
	c.WriteJSON(snapshot)

	pubsub := search.Client().Subscribe(context.Background(), recordChannel(salonID))
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		payload := []byte(msg.Payload)

		recordMu.Lock()
		for conn := range recordClients[salonID] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(recordClients[salonID], conn)
			}
		}
		recordMu.Unlock()
	}
}
