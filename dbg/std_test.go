package dbg

import (
	"bytes"
	"testing"
)

func useStd(t *testing.T) *bytes.Buffer {
	saved := *Std
	t.Cleanup(func() { *Std = saved })

	var buf bytes.Buffer
	*Std = *New()
	Std.w = &buf
	return &buf
}

func TestStdPackageFunctions(t *testing.T) {
	buf := useStd(t)

	Out("a")
	Log("b")
	Off()
	if Enabled() {
		t.Fatal("Off did not disable Std")
	}
	Out("hidden")
	Log("hidden")
	Now("c")
	On()
	OutWith(Options{Sep: "-"}, "d", "e")

	if got, want := buf.String(), "a\nb\nc\nd-e\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStdScopes(t *testing.T) {
	buf := useStd(t)

	s := OffScope()
	NowWith(Options{}, "hidden")
	LogWith(Options{}, "hidden")
	s.Exit()
	if buf.Len() > 0 {
		t.Errorf("output inside off scope: %q", buf.String())
	}

	SetEnabled(false)
	on := OnScope()
	if !Enabled() {
		t.Error("OnScope did not enable Std")
	}
	on.Exit()
	if Enabled() {
		t.Error("OnScope exit left Std enabled")
	}

	e := Enter()
	if !Enabled() {
		t.Error("Enter did not enable Std")
	}
	e.Exit()
	if Enabled() {
		t.Error("Enter exit left Std enabled")
	}
}

func TestStdConfigure(t *testing.T) {
	useStd(t)
	Configure(Settings{HideZeroValues: true})
	if !Std.Settings().HideZeroValues {
		t.Error("Configure did not reach Std")
	}
}
