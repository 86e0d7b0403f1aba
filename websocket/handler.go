// websocket/handler.go
package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// HandleWebSocket upgrades HTTP connection to WebSocket
func HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	userID := c.Query("user_id")

	client := &Client{
		Conn:   conn,
		UserID: userID,
		Topics: make(map[string]bool),
		Send:   make(chan []byte, 256),
	}

	Manager.Register <- client

	go client.readPump()
	go client.writePump()

	log.Printf("New WebSocket connection established for user: %s", userID)
}

// readPump handles incoming messages from client
func (c *Client) readPump() {
	defer func() {
		Manager.Unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(512)
	c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		var msg Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("Invalid message format: %v", err)
			continue
		}

		switch msg.Type {
		case "subscribe":
			c.handleSubscribe(msg)
		case "unsubscribe":
			c.handleUnsubscribe(msg)
		case "ping":
			c.handlePing()
		default:
			log.Printf("Unknown message type: %s", msg.Type)
		}
	}
}

// writePump sends messages to client
func (c *Client) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("Error writing message: %v", err)
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("Error sending ping: %v", err)
				return
			}
		}
	}
}

// handleSubscribe subscribes the client to an event topic
func (c *Client) handleSubscribe(msg Message) {
	if msg.Topic == "" {
		return
	}

	c.Topics[msg.Topic] = true
	log.Printf("Client %s subscribed to topic: %s", c.UserID, msg.Topic)
}

// handleUnsubscribe removes a topic subscription
func (c *Client) handleUnsubscribe(msg Message) {
	if msg.Topic == "" {
		return
	}

	delete(c.Topics, msg.Topic)
	log.Printf("Client %s unsubscribed from topic: %s", c.UserID, msg.Topic)
}

// handlePing responds to ping
func (c *Client) handlePing() {
	response := Message{
		Type: "pong",
	}
	jsonResponse, _ := json.Marshal(response)
	c.Send <- jsonResponse
}
