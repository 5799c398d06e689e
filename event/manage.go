package event

import (
	"sync"

	"github.com/xuenqlve/properties/errors"
)

// Manage 按事件类型分组的事件总线，Upload 在调用方协程内同步派发。
// Register 与 Upload 可以在多个协程中并发调用。
type Manage struct {
	mu       sync.Mutex
	observer map[Type]*Notifier[Event]
}

func NewManage() *Manage {
	return &Manage{observer: map[Type]*Notifier[Event]{}}
}

func (e *Manage) Register(et Type, observer ObserverFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.observer == nil {
		e.observer = map[Type]*Notifier[Event]{}
	}
	n, ok := e.observer[et]
	if !ok {
		n = NewNotifier[Event]()
		e.observer[et] = n
	}
	n.Register(Callback[Event](observer))
}

// Upload 在持锁时拷贝观察者列表，释放锁后再派发，观察者可以在回调中继续 Register
func (e *Manage) Upload(event Event) {
	e.mu.Lock()
	n, ok := e.observer[event.Type]
	if !ok {
		e.mu.Unlock()
		return
	}
	snapshot := Notifier[Event]{listeners: append([]Callback[Event](nil), n.listeners...)}
	e.mu.Unlock()
	snapshot.Fire(event)
}

// Subject 返回只处理 et 类型事件的视图
func (e *Manage) Subject(et Type) Subject {
	return &typedSubject{manage: e, typ: et}
}

type typedSubject struct {
	manage *Manage
	typ    Type
}

func (s *typedSubject) Register(observer ObserverFunc) {
	s.manage.Register(s.typ, observer)
}

func (s *typedSubject) Upload(event Event) {
	event.Type = s.typ
	s.manage.Upload(event)
}

const (
	Error = "error"
	Value = "value"
)

func ErrorEvent(t Type, err error) Event {
	return Event{
		Type:  t,
		Value: errorValue(err),
	}
}

func errorValue(err error) map[string]any {
	return map[string]any{
		Error: err.Error(),
	}
}

func ValueError(data map[string]any) error {
	if data == nil {
		return nil
	}
	if err, ok := data[Error]; ok {
		return errors.Errorf("%v", err)
	}
	return nil
}
