package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuenqlve/properties/errors"
)

// 没有回调时触发事件不做任何事
func TestNotifierWithoutCallback(t *testing.T) {
	var n Notifier[*int]
	v := 8

	n.Fire(&v)
	require.Equal(t, 8, v)
	require.Equal(t, 0, n.Len())
}

func TestNotifierSimple(t *testing.T) {
	n := NewNotifier[int]()

	calls := 0
	n.Register(func(v int) {
		calls++
		assert.Equal(t, 8, v)
	})

	n.Fire(8)
	require.Equal(t, 1, calls)
}

func TestNotifierIgnoresNilCallback(t *testing.T) {
	n := NewNotifier[int]()
	n.Register(nil)
	require.Equal(t, 0, n.Len())
	require.NotPanics(t, func() { n.Fire(1) })
}

func TestNotifierOrder(t *testing.T) {
	n := NewNotifier[int]()
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		n.Register(func(int) { order = append(order, i) })
	}

	n.Fire(0)
	n.Fire(0)
	require.Equal(t, []int{0, 1, 2, 3, 4, 0, 1, 2, 3, 4}, order)
}

type counting struct {
	counter *int
}

func (c counting) call(v *int) {
	if *v != 19 {
		panic("unexpected value")
	}
	*v = 18
	*c.counter++
}

func lastCallback(t *testing.T) Callback[*int] {
	return func(v *int) {
		assert.Equal(t, 18, *v)
	}
}

// 回调按注册顺序执行，前一个回调对值的修改对后续回调可见
func TestNotifierMutableChain(t *testing.T) {
	var n Notifier[*int]
	val := 8
	calls := 0

	n.Register(func(v *int) {
		assert.Equal(t, 8, *v)
		calls++
		*v = 19
	})
	n.Register(counting{counter: &calls}.call)
	n.Register(lastCallback(t))

	n.Fire(&val)

	require.Equal(t, 2, calls)
	require.Equal(t, 18, val)
}

func TestNotifierRegisterDuringFire(t *testing.T) {
	n := NewNotifier[int]()
	late := 0
	n.Register(func(int) {
		n.Register(func(int) { late++ })
	})

	n.Fire(1)
	require.Equal(t, 0, late)
	require.Equal(t, 2, n.Len())

	n.Fire(1)
	require.Equal(t, 1, late)
}

func TestNotifierPanicAbortsFiring(t *testing.T) {
	n := NewNotifier[int]()
	after := 0
	n.Register(func(int) { panic("boom") })
	n.Register(func(int) { after++ })

	require.PanicsWithValue(t, "boom", func() { n.Fire(1) })
	require.Equal(t, 0, after)
}

func TestNotifierSafeFire(t *testing.T) {
	t.Run("no panic", func(t *testing.T) {
		n := NewNotifier[int]()
		got := 0
		n.Register(func(v int) { got = v })
		require.NoError(t, n.SafeFire(3))
		require.Equal(t, 3, got)
	})

	t.Run("panic value", func(t *testing.T) {
		n := NewNotifier[int]()
		after := 0
		n.Register(func(int) { panic("boom") })
		n.Register(func(int) { after++ })

		err := n.SafeFire(1)
		require.Error(t, err)
		require.Equal(t, uint16(errors.ErrCodePanic), errors.CodeOf(err))
		require.Contains(t, err.Error(), "boom")
		require.Equal(t, 0, after)
	})

	t.Run("panic error", func(t *testing.T) {
		n := NewNotifier[int]()
		cause := errors.New("bad value")
		n.Register(func(int) { panic(cause) })

		err := n.SafeFire(1)
		require.Equal(t, uint16(errors.ErrCodePanic), errors.CodeOf(err))
		require.Contains(t, err.Error(), "bad value")
	})
}
