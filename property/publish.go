package property

import (
	"github.com/xuenqlve/properties/event"
)

// Publish 把 p 的每次变更作为 PropertyChanged 事件上报给 bus，新值存放在 event.Value 键下。
// bus 由 Manage.Subject 得到时，事件类型以 bus 的类型为准。
func Publish[T any](p Observable[T], bus event.Subject, key string) {
	p.OnChange(func(v *T) {
		bus.Upload(event.Event{
			Type: event.PropertyChanged,
			Key:  key,
			Value: map[string]any{
				event.Value: *v,
			},
		})
	})
}
