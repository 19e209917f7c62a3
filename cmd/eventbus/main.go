package main

import (
	"fmt"
	"log"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/dustin/go-humanize"
	"github.com/rubenromani/ant"
)

// EventBus is the mediator: components publish and subscribe here without
// depending on each other.
type EventBus struct {
	// user events
	UserRegistered *ant.Signal2[string, string] // username, email
	UserLoggedIn   *ant.Signal1[string]         // username
	UserLoggedOut  *ant.Signal1[string]         // username

	// system events
	SystemError        *ant.Signal1[string]          // message
	PerformanceWarning *ant.Signal2[string, float64] // component, metric

	// application events
	FileUploaded *ant.Signal3[string, string, uint64] // user, filename, size
	MessageSent  *ant.Signal3[string, string, string] // from, to, message

	// business events
	OrderCreated     *ant.Signal3[int, string, float64] // order id, customer, amount
	PaymentProcessed *ant.Signal2[int, float64]         // order id, amount
}

func NewEventBus() *EventBus {
	return &EventBus{
		UserRegistered:     ant.NewSignal2[string, string](),
		UserLoggedIn:       ant.NewSignal1[string](),
		UserLoggedOut:      ant.NewSignal1[string](),
		SystemError:        ant.NewSignal1[string](),
		PerformanceWarning: ant.NewSignal2[string, float64](),
		FileUploaded:       ant.NewSignal3[string, string, uint64](),
		MessageSent:        ant.NewSignal3[string, string, string](),
		OrderCreated:       ant.NewSignal3[int, string, float64](),
		PaymentProcessed:   ant.NewSignal2[int, float64](),
	}
}

// UserManager publishes user events and tracks who is logged in.
type UserManager struct {
	bus      *EventBus
	users    map[string]string
	loggedIn mapset.Set[string]
}

func NewUserManager(bus *EventBus) *UserManager {
	return &UserManager{
		bus:      bus,
		users:    map[string]string{},
		loggedIn: mapset.NewSet[string](),
	}
}

func (um *UserManager) RegisterUser(username, email string) {
	if _, ok := um.users[username]; ok {
		um.bus.SystemError.Emit("user already exists: " + username)
		return
	}
	um.users[username] = email
	log.Printf("[UserManager] registering user %s", username)
	um.bus.UserRegistered.Emit(username, email)
}

func (um *UserManager) LoginUser(username string) {
	if _, ok := um.users[username]; !ok {
		um.bus.SystemError.Emit("user not found: " + username)
		return
	}
	um.loggedIn.Add(username)
	log.Printf("[UserManager] user %s logged in", username)
	um.bus.UserLoggedIn.Emit(username)
}

func (um *UserManager) LogoutUser(username string) {
	if !um.loggedIn.Contains(username) {
		um.bus.SystemError.Emit("user not logged in: " + username)
		return
	}
	um.loggedIn.Remove(username)
	log.Printf("[UserManager] user %s logged out", username)
	um.bus.UserLoggedOut.Emit(username)
}

func (um *UserManager) ActiveUsers() int {
	return um.loggedIn.Cardinality()
}

type notification struct {
	id      uint64
	message string
}

// NotificationSystem reacts to events from the other components. Every
// notification carries a stable hash id so repeat deliveries are visible.
type NotificationSystem struct {
	ant.AutoDisconnect
	notifications map[string][]notification
}

func NewNotificationSystem(bus *EventBus) *NotificationSystem {
	ns := &NotificationSystem{
		notifications: map[string][]notification{},
	}
	ns.AddConnection(
		bus.UserRegistered.Connect(func(username, _ string) {
			ns.send(username, "Welcome to the platform!")
		}),
		bus.FileUploaded.Connect(func(username, filename string, size uint64) {
			ns.send(username, fmt.Sprintf("File uploaded: %s (%s)", filename, humanize.Bytes(size)))
		}),
		bus.MessageSent.Connect(func(_, to, message string) {
			if len(message) > 30 {
				message = message[:30] + "..."
			}
			ns.send(to, "New message: "+message)
		}),
		bus.OrderCreated.Connect(func(orderID int, customer string, amount float64) {
			ns.send(customer, fmt.Sprintf("Order #%d created for $%.2f", orderID, amount))
		}),
	)
	return ns
}

func (ns *NotificationSystem) send(username, message string) {
	n := notification{
		id:      xxhash.Sum64String(username + "\x00" + message),
		message: message,
	}
	ns.notifications[username] = append(ns.notifications[username], n)
	log.Printf("[NotificationSystem] -> %s: %s (id %x)", username, message, n.id)
}

func (ns *NotificationSystem) total() int64 {
	total := int64(0)
	for _, n := range ns.notifications {
		total += int64(len(n))
	}
	return total
}

// ActivityMonitor follows sessions and performance across the system.
type ActivityMonitor struct {
	ant.AutoDisconnect
	logins int
}

func NewActivityMonitor(bus *EventBus) *ActivityMonitor {
	am := &ActivityMonitor{}
	am.AddConnection(
		bus.UserLoggedIn.Connect(func(username string) {
			am.logins++
			log.Printf("[ActivityMonitor] session opened for %s", username)
		}),
		bus.UserLoggedOut.Connect(func(username string) {
			log.Printf("[ActivityMonitor] session closed for %s", username)
		}),
		bus.PerformanceWarning.Connect(func(component string, metric float64) {
			log.Printf("[ActivityMonitor] %s is slow: %.1fms", component, metric)
		}),
	)
	return am
}

// AuditLog watches system and payment events through an owner handle, so
// dropping the handle silences it without touching the bus.
type AuditLog struct {
	entries int
}

func (a *AuditLog) onSystemError(message string) {
	a.entries++
	log.Printf("[AuditLog] error: %s", message)
}

func (a *AuditLog) onPayment(orderID int, amount float64) {
	a.entries++
	log.Printf("[AuditLog] payment of $%.2f for order #%d", amount, orderID)
}

func main() {
	bus := NewEventBus()
	users := NewUserManager(bus)
	notifications := NewNotificationSystem(bus)
	activity := NewActivityMonitor(bus)

	audit := ant.NewHandle(&AuditLog{})
	ant.ConnectOwned1(bus.SystemError, audit, (*AuditLog).onSystemError)
	ant.ConnectOwned2(bus.PaymentProcessed, audit, (*AuditLog).onPayment)

	users.RegisterUser("alice", "alice@example.com")
	users.RegisterUser("bob", "bob@example.com")
	users.RegisterUser("alice", "alice@example.com") // duplicate, audited

	users.LoginUser("alice")
	users.LoginUser("bob")
	log.Printf("active users: %d", users.ActiveUsers())

	bus.FileUploaded.Emit("alice", "report.pdf", 2_340_000)
	bus.MessageSent.Emit("alice", "bob", "Did you see the quarterly report I just uploaded?")

	bus.OrderCreated.Emit(1001, "bob", 79.99)
	bus.PaymentProcessed.Emit(1001, 79.99)
	bus.PerformanceWarning.Emit("payments", 412.5)

	// Releasing the audit handle drops its slots without unsubscribing;
	// the bus prunes them lazily on the next activity.
	entries := audit.Value().entries
	audit.Release()
	bus.SystemError.Emit("disk almost full") // nobody listens anymore
	log.Printf("audit entries before release: %d", entries)

	users.LogoutUser("bob")
	users.LogoutUser("carol") // not logged in, error event

	log.Printf("delivered %s notifications to %s users across %s logins",
		humanize.Comma(notifications.total()),
		humanize.Comma(int64(len(notifications.notifications))),
		humanize.Comma(int64(activity.logins)))

	activity.Close()
	notifications.Close()
}
