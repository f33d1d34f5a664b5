package ws

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Client - соединение пользователя. Запись сериализуется мьютексом:
// gorilla/websocket допускает не больше одного писателя на соединение,
// а одному получателю могут одновременно писать несколько отправителей.
type Client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *Client) Send(event Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(event)
}

// Registry - единственное разделяемое состояние процесса: отображение
// пользователя на его соединение. Живёт только в памяти, после рестарта
// строится заново. Наружу отдаётся Client, а не голое соединение.
type Registry interface {
	Register(userID string, conn *websocket.Conn)
	Unregister(userID string)
	Lookup(userID string) (*Client, bool)
}

type memoryRegistry struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

func NewRegistry() Registry {
	return &memoryRegistry{clients: make(map[string]*Client)}
}

func (r *memoryRegistry) Register(userID string, conn *websocket.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[userID] = &Client{conn: conn}
}

func (r *memoryRegistry) Unregister(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, userID)
}

func (r *memoryRegistry) Lookup(userID string) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.clients[userID]
	return client, ok
}
