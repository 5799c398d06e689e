package property

import (
	"fmt"

	"github.com/xuenqlve/properties/errors"
	"github.com/xuenqlve/properties/event"
)

// Mode 表示属性值的存储方式
type Mode int

const (
	// Reference 引用调用方持有的变量，写操作直接写回该变量
	Reference Mode = iota
	// Owned 属性自己持有一份值的拷贝
	Owned
)

func (m Mode) String() string {
	switch m {
	case Reference:
		return "reference"
	case Owned:
		return "owned"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

type Getter[T any] interface {
	Get() T
}

type Setter[T any] interface {
	Set(value T)
}

// Observable 是 Property 两种模式共有的能力
type Observable[T any] interface {
	Getter[T]
	Setter[T]
	OnChange(callback func(*T))
}

// Property 持有（或引用）一个 T 类型的值，每次通过 Set/Assign 修改后触发变更事件。
// 回调拿到的是指向已提交值的指针。Property 不是并发安全的。
type Property[T any] struct {
	_ noCopy

	mode    Mode
	slot    *T
	changed event.Notifier[*T]
}

// NewReference 创建引用模式的属性，ref 不会被拷贝。
// 属性的生命周期不能超过 ref 指向的变量。
func NewReference[T any](ref *T) (*Property[T], error) {
	if ref == nil {
		return nil, errors.Trace(errors.ErrNilReference)
	}
	return &Property[T]{mode: Reference, slot: ref}, nil
}

func MustReference[T any](ref *T) *Property[T] {
	p, err := NewReference(ref)
	if err != nil {
		panic(err)
	}
	return p
}

// NewOwned 创建持有 val 拷贝的属性
func NewOwned[T any](val T) *Property[T] {
	return &Property[T]{mode: Owned, slot: &val}
}

// Clone 拷贝构造。引用模式不允许拷贝；持有模式返回相同值、没有回调的新属性。
func (p *Property[T]) Clone() (*Property[T], error) {
	if p.mode == Reference {
		return nil, errors.Trace(errors.ErrCopyReference)
	}
	return NewOwned(*p.slot), nil
}

// Move 将存储（引用模式下是别名，持有模式下是值）转移到新属性上，新属性没有回调。
// 之后不应再使用 p。
func (p *Property[T]) Move() *Property[T] {
	moved := &Property[T]{mode: p.mode, slot: p.slot}
	p.detach()
	return moved
}

func (p *Property[T]) Mode() Mode {
	return p.mode
}

// Get 返回当前值的拷贝
func (p *Property[T]) Get() T {
	return *p.slot
}

// Ref 返回指向存储的指针。通过它修改值不会触发变更事件。
func (p *Property[T]) Ref() *T {
	return p.slot
}

// Set 写入 value 后触发变更事件
func (p *Property[T]) Set(value T) {
	*p.slot = value
	p.changed.Fire(p.slot)
}

// SafeSet 与 Set 相同，但回调 panic 时返回 ErrCodePanic 错误。
// 无论回调是否失败，值都已经写入。
func (p *Property[T]) SafeSet(value T) error {
	*p.slot = value
	return p.changed.SafeFire(p.slot)
}

func (p *Property[T]) SetFrom(other Getter[T]) {
	p.Set(other.Get())
}

// Assign 等同于 Set，返回写入后的值
func (p *Property[T]) Assign(value T) T {
	p.Set(value)
	return *p.slot
}

// AssignFrom 将 other 的值拷贝到 p 并触发事件，返回 p 以便链式调用。
// 自赋值不写入也不触发事件。
func (p *Property[T]) AssignFrom(other *Property[T]) *Property[T] {
	if p.isSelf(other) {
		return p
	}
	p.Set(*other.slot)
	return p
}

// MoveFrom 将 other 的值移入 p 并触发事件。other 随后脱离原存储
// （引用模式下不会修改 other 引用的变量），之后不应再使用。
func (p *Property[T]) MoveFrom(other *Property[T]) *Property[T] {
	if p == other {
		return p
	}
	*p.slot = *other.slot
	other.detach()
	p.changed.Fire(p.slot)
	return p
}

// OnChange 注册变更回调，回调按注册顺序执行
func (p *Property[T]) OnChange(callback func(*T)) {
	p.changed.Register(callback)
}

func (p *Property[T]) String() string {
	return fmt.Sprintf("%v", *p.slot)
}

// isSelf 按身份判断自赋值。两种模式下结果相同：引用模式只有源也是引用模式时才可能是同一个属性，
// 而同一个指针的模式必然一致。
func (p *Property[T]) isSelf(other *Property[T]) bool {
	return p == other
}

func (p *Property[T]) detach() {
	var zero T
	p.mode = Owned
	p.slot = &zero
	p.changed = event.Notifier[*T]{}
}

// noCopy 让 go vet 的 copylocks 检查拒绝按值拷贝 Property
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
