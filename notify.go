package popup

// NotificationName identifies a kind of scene notification.
type NotificationName uint8

const (
	NotificationOrientationChanged   NotificationName = iota // scene bounds changed
	NotificationKeyboardWillShow                             // keyboard is appearing
	NotificationKeyboardWillHide                             // keyboard is going away
	NotificationKeyboardFrameChanged                         // keyboard height changed
)

func (n NotificationName) String() string {
	switch n {
	case NotificationOrientationChanged:
		return "orientation-changed"
	case NotificationKeyboardWillShow:
		return "keyboard-will-show"
	case NotificationKeyboardWillHide:
		return "keyboard-will-hide"
	case NotificationKeyboardFrameChanged:
		return "keyboard-frame-changed"
	default:
		return "unknown"
	}
}

// Notification carries the scene state that changed.
type Notification struct {
	Name NotificationName
	// Bounds is the scene bounds at posting time.
	Bounds Rect
	// KeyboardHeight is the keyboard height; zero when it is hidden.
	KeyboardHeight float64
}

type observer struct {
	id uint32
	fn func(Notification)
}

// NotificationCenter dispatches keyboard and orientation notifications to
// registered observers, synchronously and in registration order.
type NotificationCenter struct {
	observers map[NotificationName][]observer
	nextID    uint32
}

// CallbackHandle allows removing a registered observer.
type CallbackHandle struct {
	id     uint32
	center *NotificationCenter
	name   NotificationName
}

// Remove unregisters this observer so it no longer fires. Safe to call more
// than once.
func (h CallbackHandle) Remove() {
	if h.center == nil {
		return
	}
	s := h.center.observers[h.name]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = observer{}
			h.center.observers[h.name] = s[:len(s)-1]
			return
		}
	}
}

// Observe registers fn for notifications with the given name.
func (c *NotificationCenter) Observe(name NotificationName, fn func(Notification)) CallbackHandle {
	if c.observers == nil {
		c.observers = make(map[NotificationName][]observer)
	}
	c.nextID++
	id := c.nextID
	c.observers[name] = append(c.observers[name], observer{id: id, fn: fn})
	return CallbackHandle{id: id, center: c, name: name}
}

// Post delivers n to every observer of n.Name.
func (c *NotificationCenter) Post(n Notification) {
	obs := c.observers[n.Name]
	if len(obs) == 0 {
		return
	}
	// Observers may unregister while being notified.
	snapshot := append([]observer(nil), obs...)
	for _, o := range snapshot {
		o.fn(n)
	}
}

// count returns the number of observers for name.
func (c *NotificationCenter) count(name NotificationName) int {
	return len(c.observers[name])
}
