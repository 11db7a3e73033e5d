// Package status broadcasts resource loading and rendering progress
// to connected websocket clients of the scene inspector.
package status

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

type Kind int

const (
	KindInfo Kind = iota
	KindError
	KindProgress
)

type event struct {
	Message  string
	Time     time.Time
	Kind     Kind
	Progress float32
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

const writeDeadline = 40 * time.Second

func (c *client) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		unregisterClient(c)
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Printf("[status] ws write msg error: %v", err)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("[status] ws write ping error: %v", err)
				return
			}
		}
	}
}

// NewClient adopts a websocket connection and starts streaming events
// to it, beginning with the most recent one.
func NewClient(conn *websocket.Conn) {
	c := &client{conn: conn, send: make(chan []byte, 32)}
	registerClient(c)
	go c.writePump()
	globalLock.Lock()
	defer globalLock.Unlock()
	if lastMessage != nil {
		c.send <- lastMessage
	}
}

var eventBroadcast chan *event
var broadcastList map[*client]bool
var globalLock sync.Mutex
var lastMessage []byte

func registerClient(c *client) {
	globalLock.Lock()
	defer globalLock.Unlock()
	broadcastList[c] = true
}

func unregisterClient(c *client) {
	globalLock.Lock()
	defer globalLock.Unlock()
	delete(broadcastList, c)
}

func init() {
	eventBroadcast = make(chan *event, 16)
	broadcastList = make(map[*client]bool)
	go func() {
		for e := range eventBroadcast {
			data, err := json.Marshal(e)
			if err != nil {
				panic(err)
			}
			globalLock.Lock()
			lastMessage = data
			for c := range broadcastList {
				select {
				case c.send <- data:
				default:
				}
			}
			globalLock.Unlock()
		}
	}()
}

func emit(msg string, kind Kind, progress float32) {
	if math.IsNaN(float64(progress)) || math.IsInf(float64(progress), 0) {
		progress = 0
	}
	eventBroadcast <- &event{
		Message:  msg,
		Time:     time.Now(),
		Kind:     kind,
		Progress: progress,
	}
}

func Info(format string, a ...interface{}) {
	emit(fmt.Sprintf(format, a...), KindInfo, 0.0)
}

func Error(format string, a ...interface{}) {
	emit(fmt.Sprintf(format, a...), KindError, 0.0)
}

func Progress(progress float32, format string, a ...interface{}) {
	emit(fmt.Sprintf(format, a...), KindProgress, progress)
}
