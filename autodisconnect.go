package ant

// AutoDisconnect collects connections on behalf of an embedding object and
// severs them all when the object is done, so a subscriber with bounded
// lifetime needs no per-connection bookkeeping:
//
//	type display struct {
//		ant.AutoDisconnect
//	}
//
//	d := &display{}
//	d.AddConnection(station.TemperatureChanged.Connect(d.onTemperature))
//	...
//	d.Close()
type AutoDisconnect struct {
	connections []*Connection
}

// AddConnection adopts connections; each is disconnected no later than Close.
func (ad *AutoDisconnect) AddConnection(conns ...*Connection) {
	ad.connections = append(ad.connections, conns...)
}

// Close disconnects every adopted connection. Idempotent; disconnect order
// is unspecified.
func (ad *AutoDisconnect) Close() {
	for _, c := range ad.connections {
		c.Disconnect()
	}
	ad.connections = nil
}
