// internal/event/event.go
package event

// EventType — тип события кадра
type EventType string

// Event — событие, произошедшее во время тика или отрисовки
type Event struct {
	Type EventType
	Data interface{} // WallHitData, ActorSkippedData
}

// Listener — подписчик на события кадра (звук, лог)
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher — шина событий приложения. Вызывается только из кадра, поэтому
// без блокировок. Нулевой указатель допустим: тогда события просто теряются.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// HasListeners позволяет не собирать данные события, если их никто не ждёт
func (d *Dispatcher) HasListeners(eventType EventType) bool {
	return d != nil && len(d.listeners[eventType]) > 0
}

func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Publish рассылает событие eventType с данными data
func (d *Dispatcher) Publish(eventType EventType, data interface{}) {
	d.Dispatch(Event{Type: eventType, Data: data})
}

// Dispatch вызывает подписчиков синхронно, в порядке подписки
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
