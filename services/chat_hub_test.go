package services

import (
	"testing"
	"time"
)

func waitForSessionCount(t *testing.T, hub *ChatHub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		hub.mutex.RLock()
		got := len(hub.clients)
		hub.mutex.RUnlock()
		if got == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("hub never reached %d sessions", want)
}

// A prompt handler may still be running when its client disconnects; the
// late reply must be dropped, not crash the process.
func TestSendMessageAfterDisconnect(t *testing.T) {
	hub := NewChatHub(nil)
	go hub.Run()

	client := &ChatClient{
		hub:    hub,
		id:     "session-under-test",
		userID: 7,
		send:   make(chan []byte, 8),
	}

	hub.register <- client
	waitForSessionCount(t, hub, 1)

	hub.unregister <- client
	waitForSessionCount(t, hub, 0)

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("sendMessage panicked after disconnect: %v", r)
		}
	}()
	client.sendMessage("advice", &ChatReply{Response: "too late"})
}

func TestSendMessageBeforeDisconnect(t *testing.T) {
	client := &ChatClient{
		id:   "live-session",
		send: make(chan []byte, 8),
	}

	client.sendMessage("advice", &ChatReply{Response: "on time"})

	select {
	case data := <-client.send:
		if len(data) == 0 {
			t.Error("expected a marshaled message, got empty payload")
		}
	default:
		t.Error("expected message queued on live session")
	}
}

func TestClientCloseIdempotent(t *testing.T) {
	client := &ChatClient{
		id:   "closing-session",
		send: make(chan []byte, 1),
	}

	client.close()

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("second close panicked: %v", r)
		}
	}()
	client.close()

	if _, open := <-client.send; open {
		t.Error("send channel still open after close")
	}
}
