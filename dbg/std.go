package dbg

// Enabled reports whether Std is enabled.
func Enabled() bool { return Std.Enabled }

// SetEnabled sets Std's flag directly.
func SetEnabled(on bool) { Std.Enabled = on }

func Configure(s Settings) { Std.Configure(s) }

func On() { Std.On() }
func Off() { Std.Off() }

func OnScope() *Scope { return Std.OnScope() }
func OffScope() *Scope { return Std.OffScope() }
func Enter() *Scope { return Std.Enter() }

func Out(v interface{}, args ...interface{}) { Std.Out(v, args...) }

func OutWith(opts Options, v interface{}, args ...interface{}) {
	Std.OutWith(opts, v, args...)
}

func Log(v interface{}, args ...interface{}) { Std.Log(v, args...) }

func LogWith(opts Options, v interface{}, args ...interface{}) {
	Std.LogWith(opts, v, args...)
}

func Now(v interface{}, args ...interface{}) { Std.Now(v, args...) }

func NowWith(opts Options, v interface{}, args ...interface{}) {
	Std.NowWith(opts, v, args...)
}
