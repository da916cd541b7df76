package option_test

import (
	"testing"

	. "github.com/npillmayer/fiber/option"
)

func TestOptionSimple(t *testing.T) {
	x := Some(7) // infers type
	y := None[int]()

	if v, ok := x.Get(); !ok || v != 7 {
		t.Errorf("expected x to hold 7, is %v", x)
	}
	if _, ok := y.Get(); ok {
		t.Errorf("expected y to hold nothing, is %v", y)
	}
	if y.IsSome() {
		t.Error("expected None to report IsSome() == false, doesn't")
	}
}

func TestOptionZeroValueIsNone(t *testing.T) {
	var o Option[string]
	if o.IsSome() {
		t.Error("expected zero-value Option to be None, isn't")
	}
}

func TestOptionWithDefault(t *testing.T) {
	x := Some(7)
	if xx := x.WithDefault(100); xx != 7 {
		t.Logf("x = %d", xx)
		t.Error("expected Some(7) to have value 7, hasn't")
	}

	y := None[int]()
	if yy := y.WithDefault(100); yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected None to default to 100, doesn't")
	}
}

func TestOptionMap(t *testing.T) {
	x := Some(7)
	xx := x.Map(func(n int) int {
		return n * 2
	})
	if v, _ := xx.Get(); v != 14 {
		t.Logf("x * 2 = %d", v)
		t.Error("expected Some(7).Map(…) to return 14, didn't")
	}

	s := Map(func(n int) string {
		if n > 0 {
			return "positive"
		}
		return "negative"
	}, Some(10))
	if v, _ := s.Get(); v != "positive" {
		t.Logf("mapped = %q", v)
		t.Error("expected Map(…, Some 10) to return \"positive\", didn't")
	}

	y := None[int]()
	yy := y.Map(func(n int) int {
		return n * 2
	})
	if yy.IsSome() {
		t.Error("expected None.Map(…) to stay None, didn't")
	}
}

func TestOptionAndThen(t *testing.T) {
	gt0 := func(n int) Option[bool] {
		if n > 0 {
			return Some(true)
		}
		return None[bool]()
	}

	gt := AndThen(gt0, Some(7))
	if isGreater, ok := gt.Get(); !ok || !isGreater {
		t.Error("expected Some(7) |> andThen(gt0) to be true, isn't")
	}
	if AndThen(gt0, None[int]()).IsSome() {
		t.Error("expected None |> andThen(gt0) to be None, isn't")
	}
}
