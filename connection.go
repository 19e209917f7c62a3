package ant

// Connection is the capability to remove one slot registration. Each call to
// Connect hands out exactly one; whoever holds it decides when the slot goes
// away. The removal closure is bound at connect time and self-contained, so
// disconnecting remains safe even after the signal itself is unreachable.
type Connection struct {
	disconnect func()
	connected  bool
}

func newConnection(disconnect func()) *Connection {
	return &Connection{disconnect: disconnect, connected: true}
}

// Disconnect removes the slot this connection guards. The removal runs at
// most once; calling Disconnect again, on a zero value or on a nil receiver
// does nothing.
func (c *Connection) Disconnect() {
	if c == nil {
		return
	}
	if c.connected && c.disconnect != nil {
		c.disconnect()
	}
	c.connected = false
}

// Connected reports whether the connection still holds its removal right.
func (c *Connection) Connected() bool {
	return c != nil && c.connected && c.disconnect != nil
}
