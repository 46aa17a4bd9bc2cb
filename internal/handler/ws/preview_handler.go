package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"pivotchat-backend/internal/pipeline"
	"pivotchat-backend/pkg/logger"
	"pivotchat-backend/pkg/metrics"
)

const (
	// debounceInterval is how long after the last keystroke a preview is
	// computed. Typing faster than this never reaches the pipeline.
	debounceInterval = 500 * time.Millisecond

	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second

	maxMessageSize = 4096
)

// Event types exchanged over the preview socket.
const (
	EventTypeKeystroke = "keystroke"
	EventTypePreview   = "preview"
	EventTypeError     = "error"
)

// KeystrokeEvent is one client input event. Sequence numbers are assigned
// by the client and must be monotonically increasing per connection; a
// preview is only delivered for the highest sequence seen.
type KeystrokeEvent struct {
	Type     string `json:"type"`
	Text     string `json:"text"`
	Sequence uint64 `json:"sequence"`
}

// PreviewEvent is the server's reply to the most recent keystroke.
type PreviewEvent struct {
	Type     string `json:"type"`
	Sequence uint64 `json:"sequence"`
	Preview  string `json:"preview"`
	English  string `json:"english"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in dev, restrict in production
	},
}

// PreviewHandler serves live translation previews over WebSocket. Each
// connection is independent: keystrokes are debounced and only the newest
// one is ever computed; an in-flight preview made stale by a newer
// keystroke is cancelled, not delivered.
type PreviewHandler struct {
	pipeline *pipeline.Pipeline
	metrics  *metrics.Metrics
}

// NewPreviewHandler creates a new live-preview handler
func NewPreviewHandler(p *pipeline.Pipeline, m *metrics.Metrics) *PreviewHandler {
	return &PreviewHandler{
		pipeline: p,
		metrics:  m,
	}
}

// previewClient holds per-connection preview state
type previewClient struct {
	handler      *PreviewHandler
	conn         *websocket.Conn
	send         chan []byte
	senderLang   string
	receiverLang string

	// latestSeq is the highest keystroke sequence seen on this connection.
	latestSeq atomic.Uint64

	mu       sync.Mutex
	debounce *time.Timer
	cancel   context.CancelFunc
	closed   bool
}

// ServeWS upgrades the connection and starts the preview session.
// GET /v1/preview/live?sender_language=telugu&receiver_language=english
func (h *PreviewHandler) ServeWS(c *gin.Context) {
	senderLang := c.Query("sender_language")
	receiverLang := c.Query("receiver_language")
	if senderLang == "" || receiverLang == "" {
		c.JSON(400, gin.H{"error": "sender_language and receiver_language required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}

	client := &previewClient{
		handler:      h,
		conn:         conn,
		send:         make(chan []byte, 64),
		senderLang:   senderLang,
		receiverLang: receiverLang,
	}

	if h.metrics != nil {
		h.metrics.IncrementPreviewConnections()
	}

	go client.writePump()
	go client.readPump()
}

// readPump reads keystroke events until the connection closes.
func (pc *previewClient) readPump() {
	defer func() {
		pc.shutdown()
		pc.conn.Close()
		if pc.handler.metrics != nil {
			pc.handler.metrics.DecrementPreviewConnections()
		}
	}()

	pc.conn.SetReadLimit(maxMessageSize)
	pc.conn.SetReadDeadline(time.Now().Add(pongWait))
	pc.conn.SetPongHandler(func(string) error {
		pc.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := pc.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Debug("Preview socket closed unexpectedly", zap.Error(err))
			}
			break
		}

		var event KeystrokeEvent
		if err := json.Unmarshal(message, &event); err != nil {
			pc.sendError("invalid event format")
			continue
		}
		if event.Type != EventTypeKeystroke {
			continue
		}

		pc.onKeystroke(event)
	}
}

// onKeystroke records the newest sequence and (re)arms the debounce timer.
// A timer already pending means the previous keystroke never got computed.
func (pc *previewClient) onKeystroke(event KeystrokeEvent) {
	seq := event.Sequence
	if seq == 0 {
		seq = pc.latestSeq.Load() + 1
	}
	pc.latestSeq.Store(seq)

	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.debounce != nil {
		if pc.debounce.Stop() && pc.handler.metrics != nil {
			pc.handler.metrics.RecordPreviewSuperseded()
		}
	}
	text := event.Text
	pc.debounce = time.AfterFunc(debounceInterval, func() {
		pc.compute(text, seq)
	})
}

// compute cancels any in-flight preview and computes one for this keystroke.
func (pc *previewClient) compute(text string, seq uint64) {
	pc.mu.Lock()
	if pc.cancel != nil {
		pc.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	pc.cancel = cancel
	pc.mu.Unlock()

	preview := pc.handler.pipeline.Preview(ctx, text, pc.senderLang, pc.receiverLang)

	if ctx.Err() != nil || seq < pc.latestSeq.Load() {
		// A newer keystroke arrived while this preview was being computed.
		if pc.handler.metrics != nil {
			pc.handler.metrics.RecordPreviewSuperseded()
		}
		return
	}

	payload, err := json.Marshal(PreviewEvent{
		Type:     EventTypePreview,
		Sequence: seq,
		Preview:  preview.Preview,
		English:  preview.English,
	})
	if err != nil {
		return
	}

	if pc.deliver(payload) && pc.handler.metrics != nil {
		pc.handler.metrics.RecordPreviewComputed()
	}
}

// sendError delivers a non-fatal error event to the client.
func (pc *previewClient) sendError(message string) {
	payload, err := json.Marshal(gin.H{"type": EventTypeError, "message": message})
	if err != nil {
		return
	}
	pc.deliver(payload)
}

// deliver queues a payload for the write pump. A slow consumer or a closed
// connection drops the payload rather than blocking the pipeline.
func (pc *previewClient) deliver(payload []byte) bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.closed {
		return false
	}
	select {
	case pc.send <- payload:
		return true
	default:
		return false
	}
}

// shutdown stops the debounce timer, cancels in-flight work, and closes
// the send channel so the write pump exits.
func (pc *previewClient) shutdown() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.closed {
		return
	}
	pc.closed = true

	if pc.debounce != nil {
		pc.debounce.Stop()
	}
	if pc.cancel != nil {
		pc.cancel()
	}
	close(pc.send)
}

// writePump writes preview events and keepalive pings to the socket.
func (pc *previewClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		pc.conn.Close()
	}()

	for {
		select {
		case message, ok := <-pc.send:
			pc.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				pc.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := pc.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)
			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			pc.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := pc.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
