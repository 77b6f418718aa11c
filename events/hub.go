package events

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/restotrack/restaurant-app/models"
)

// Event types
const (
	EventOrderUpdate       = "order_update"
	EventTableUpdate       = "table_update"
	EventReservationUpdate = "reservation_update"
	EventLowStockAlert     = "low_stock_alert"
	EventStaffNotif        = "staff_notification"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds all connected dashboard clients (staff, admin) and fans
// out domain events to them.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient adds a connection to the set with its role.
func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

// UnregisterClient releases a connection.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastOrderUpdate announces an order state change to all clients.
func BroadcastOrderUpdate(order models.Order) {
	broadcast(Message{
		Event: EventOrderUpdate,
		Data:  order,
	})
}

// BroadcastTableUpdate announces a table status change.
func BroadcastTableUpdate(table models.Table) {
	broadcast(Message{
		Event: EventTableUpdate,
		Data:  table,
	})
}

// BroadcastReservationUpdate announces a reservation change.
func BroadcastReservationUpdate(reservation models.Reservation) {
	broadcast(Message{
		Event: EventReservationUpdate,
		Data:  reservation,
	})
}

// BroadcastLowStockAlert warns staff that an item crossed its
// minimum threshold.
func BroadcastLowStockAlert(inv models.Inventory) {
	broadcast(Message{
		Event: EventLowStockAlert,
		Data:  inv,
	})
}

// BroadcastStaffNotification sends a free-form notice to staff.
func BroadcastStaffNotification(message string) {
	broadcast(Message{
		Event: EventStaffNotif,
		Data:  message,
	})
}

// BroadcastMessage sends an arbitrary message.
func BroadcastMessage(msg Message) {
	broadcast(msg)
}

func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("Error sending message to client: %v", err)
			continue
		}
	}
}
