package property

import (
	"github.com/rs/zerolog"
	uuid "github.com/satori/go.uuid"

	"github.com/xuenqlve/properties/log"
)

// Trace 在 p 上注册一个回调，以 debug 级别记录每次变更。
// name 为空时生成随机名称；logger 为 nil 时使用 log.Logger()。
// 返回实际使用的名称。
func Trace[T any](p Observable[T], name string, logger *zerolog.Logger) string {
	if name == "" {
		name = uuid.NewV4().String()
	}
	if logger == nil {
		logger = log.Logger()
	}
	p.OnChange(func(v *T) {
		logger.Debug().
			Str("property", name).
			Interface("value", *v).
			Msg("property changed")
	})
	return name
}
