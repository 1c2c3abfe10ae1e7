package orderControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Umar-Zansphere/shoeShop-sub001/models"
	"github.com/gorilla/websocket"
)

func clientCount() int {
	wsMu.Lock()
	defer wsMu.Unlock()
	return len(wsClients)
}

func TestBroadcastDropsDeadConnections(t *testing.T) {
	// Register the server side of a connection without a read loop, so the
	// only thing that can reap it is the broadcast's write-error handling.
	registered := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		wsMu.Lock()
		wsClients[conn] = true
		wsMu.Unlock()
		close(registered)
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	<-registered
	if clientCount() != 1 {
		t.Fatalf("registered clients = %d, want 1", clientCount())
	}

	client.Close()

	order := &models.Order{
		OrderNumber:   "SM-TEST",
		Status:        models.OrderStatusPaid,
		PaymentStatus: models.PaymentStatusSuccess,
		TotalAmount:   100,
	}

	// The first write after the close may still land in the socket buffer;
	// keep broadcasting until the error surfaces and the client is dropped.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		broadcastOrderEvent(order)
		if clientCount() == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Errorf("dead connection still registered after repeated broadcasts")
}
