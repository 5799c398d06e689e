package event

import (
	"github.com/xuenqlve/properties/errors"
)

// Callback 接收 Notifier 触发时传入的值
type Callback[Out any] func(Out)

// Notifier 按注册顺序保存回调，只能追加不能移除。零值可直接使用，不是并发安全的。
type Notifier[Out any] struct {
	listeners []Callback[Out]
}

func NewNotifier[Out any]() *Notifier[Out] {
	return &Notifier[Out]{}
}

// Register 追加回调，nil 回调会被忽略
func (n *Notifier[Out]) Register(callback Callback[Out]) {
	if callback == nil {
		return
	}
	n.listeners = append(n.listeners, callback)
}

// Fire 按注册顺序调用回调。Out 为指针时，前一个回调对值的修改对后续回调可见。
// 回调 panic 会中止本次触发并原样向上传递。
// 触发过程中新注册的回调要到下一次触发才会被调用。
func (n *Notifier[Out]) Fire(value Out) {
	for _, listener := range n.listeners {
		listener(value)
	}
}

// SafeFire 与 Fire 相同，但会 recover 回调的 panic 并返回 ErrCodePanic 错误，
// 失败回调之后的回调不再执行。
func (n *Notifier[Out]) SafeFire(value Out) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Recovered(r)
		}
	}()
	n.Fire(value)
	return nil
}

func (n *Notifier[Out]) Len() int {
	return len(n.listeners)
}
