// websocket/manager.go
package websocket

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Client represents a connected admin UI session
type Client struct {
	Conn   *websocket.Conn
	UserID string
	Topics map[string]bool // event topics this client subscribes to
	Send   chan []byte
}

// Message structure for WebSocket communication
type Message struct {
	Type  string      `json:"type"`            // "subscribe", "unsubscribe", "event", "ping", "pong"
	Topic string      `json:"topic,omitempty"` // "cascade", "orders", "products"
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// WebSocketManager manages all WebSocket connections
type WebSocketManager struct {
	Clients    map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	Broadcast  chan []byte
	Mutex      sync.Mutex
}

var Manager = WebSocketManager{
	Clients:    make(map[*Client]bool),
	Register:   make(chan *Client),
	Unregister: make(chan *Client),
	Broadcast:  make(chan []byte),
}

// Start initializes the WebSocket manager
func (manager *WebSocketManager) Start() {
	go manager.start()
}

func (manager *WebSocketManager) start() {
	for {
		select {
		case client := <-manager.Register:
			manager.Mutex.Lock()
			manager.Clients[client] = true
			log.Printf("Client registered. Total clients: %d", len(manager.Clients))
			manager.Mutex.Unlock()

		case client := <-manager.Unregister:
			manager.Mutex.Lock()
			if _, ok := manager.Clients[client]; ok {
				delete(manager.Clients, client)
				close(client.Send)
				log.Printf("Client unregistered. Total clients: %d", len(manager.Clients))
			}
			manager.Mutex.Unlock()

		case message := <-manager.Broadcast:
			manager.Mutex.Lock()
			for client := range manager.Clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(manager.Clients, client)
				}
			}
			manager.Mutex.Unlock()
		}
	}
}

// SendToTopicSubscribers delivers an event to clients subscribed to
// the topic. Clients with no explicit subscriptions get everything.
func (manager *WebSocketManager) SendToTopicSubscribers(topic string, data interface{}) {
	message := Message{
		Type:  "event",
		Topic: topic,
		Data:  data,
	}
	payload, err := json.Marshal(message)
	if err != nil {
		log.Printf("Error marshalling event: %v", err)
		return
	}

	manager.Mutex.Lock()
	defer manager.Mutex.Unlock()
	for client := range manager.Clients {
		if len(client.Topics) > 0 && !client.Topics[topic] {
			continue
		}
		select {
		case client.Send <- payload:
		default:
			close(client.Send)
			delete(manager.Clients, client)
		}
	}
}

// BroadcastEvent publishes a back-office event (cascade summary, order
// status change) to subscribed admin sessions.
func BroadcastEvent(topic string, data interface{}) {
	Manager.SendToTopicSubscribers(topic, data)
}
