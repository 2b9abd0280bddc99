package optional

// Int holds either an integer or nothing, for terminal operations that may
// see an empty sequence (min of nothing, first of nothing).
type Int interface {
	Get() int
	IsNone() bool
	OrElse(fallback int) int
}

type None struct{}

func (o None) Get() int                { return 0 }
func (o None) IsNone() bool            { return true }
func (o None) OrElse(fallback int) int { return fallback }

type Some struct {
	Value int
}

func (o Some) Get() int         { return o.Value }
func (o Some) IsNone() bool     { return false }
func (o Some) OrElse(_ int) int { return o.Value }
