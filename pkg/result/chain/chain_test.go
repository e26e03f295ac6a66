package chain

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/result3/pkg/result"
)

func TestFromAndResult_Success(t *testing.T) {
	t.Parallel()

	out := From(result.OkOf(5)).Result()
	if !out.IsOk() || out.Unwrap() != 5 {
		t.Fatalf("expected success with 5, got: ok=%v, err=%v", out.IsOk(), out.IsErr())
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()

	out := FromValue[int, result.Error](7).Result()
	if !out.IsOk() || out.Unwrap() != 7 {
		t.Fatalf("expected success with 7, got: ok=%v", out.IsOk())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()

	called := false
	out := From(result.ErrMsg[int]("boom", 0)).
		Then(func(v int) result.Of[int] {
			called = true
			return result.OkOf(v + 1)
		}).
		Result()

	if out.IsOk() || out.UnwrapErr().Message != "boom" {
		t.Fatalf("expected failure 'boom', got: ok=%v", out.IsOk())
	}
	if called {
		t.Fatalf("onOk should not be called when the chain carries a failure")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()

	out := From(result.OkOf(3)).
		Then(func(v int) result.Of[int] { return result.OkOf(v * 2) }).
		Result()

	if !out.IsOk() || out.Unwrap() != 6 {
		t.Fatalf("expected success with 6, got: ok=%v", out.IsOk())
	}
}

func TestFreeThen_SwitchesType(t *testing.T) {
	t.Parallel()

	out := Then(From(result.OkOf("21")), func(s string) result.Of[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return result.ErrMsg[int]("parse", 0)
		}
		return result.OkOf(n)
	}).Result()

	if !out.IsOk() || out.Unwrap() != 21 {
		t.Fatalf("expected success with 21, got: ok=%v", out.IsOk())
	}
}

func TestMap_Success(t *testing.T) {
	t.Parallel()

	out := From(result.OkOf(5)).
		Map(func(v int) int { return v + 3 }).
		Result()

	if !out.IsOk() || out.Unwrap() != 8 {
		t.Fatalf("expected success with 8, got: ok=%v", out.IsOk())
	}
}

func TestFreeMap_SwitchesType(t *testing.T) {
	t.Parallel()

	out := Map(From(result.OkOf(9)), strconv.Itoa).Result()
	if !out.IsOk() || out.Unwrap() != "9" {
		t.Fatalf("expected success with \"9\", got: ok=%v", out.IsOk())
	}
}

func TestTry_ErrorPropagation(t *testing.T) {
	t.Parallel()

	out := Try(FromValue[string, error]("bad"), strconv.Atoi).Result()
	if out.IsOk() || out.UnwrapErr() == nil {
		t.Fatalf("expected parse failure, got: ok=%v", out.IsOk())
	}

	ok := Try(FromValue[string, error]("4"), strconv.Atoi).Result()
	if !ok.IsOk() || ok.Unwrap() != 4 {
		t.Fatalf("expected success with 4, got: ok=%v", ok.IsOk())
	}
}

func TestEnsure_SideEffects(t *testing.T) {
	t.Parallel()

	okSeen := false
	errSeen := false
	out := From(result.OkOf(11)).
		Ensure(func(int) { okSeen = true }).
		EnsureErr(func(result.Error) { errSeen = true }).
		Result()

	if !out.IsOk() || out.Unwrap() != 11 {
		t.Fatalf("expected unchanged success, got: ok=%v", out.IsOk())
	}
	if !okSeen || errSeen {
		t.Fatalf("expected success side-effect only; okSeen=%v, errSeen=%v", okSeen, errSeen)
	}

	okSeen, errSeen = false, false
	out = From(result.ErrMsg[int]("bad", 0)).
		Ensure(func(int) { okSeen = true }).
		EnsureErr(func(result.Error) { errSeen = true }).
		Result()

	if out.IsOk() || out.UnwrapErr().Message != "bad" {
		t.Fatalf("expected failure 'bad', got: ok=%v", out.IsOk())
	}
	if okSeen || !errSeen {
		t.Fatalf("expected failure side-effect only; okSeen=%v, errSeen=%v", okSeen, errSeen)
	}

	// nil callbacks are safe
	out = From(result.OkOf(1)).Ensure(nil).EnsureErr(nil).Result()
	if !out.IsOk() || out.Unwrap() != 1 {
		t.Fatalf("expected unchanged success with nil callbacks")
	}
}

func TestRecover(t *testing.T) {
	t.Parallel()

	out := From(result.ErrMsg[int]("down", 3)).
		Recover(func(e result.Error) result.Of[int] { return result.OkOf(e.Code) }).
		Result()

	if !out.IsOk() || out.Unwrap() != 3 {
		t.Fatalf("expected recovered success with 3, got: ok=%v", out.IsOk())
	}

	called := false
	out = From(result.OkOf(2)).
		Recover(func(result.Error) result.Of[int] {
			called = true
			return result.OkOf(0)
		}).
		Result()
	if !out.IsOk() || out.Unwrap() != 2 || called {
		t.Fatalf("Recover must pass a success through untouched; called=%v", called)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()

	s := From(result.OkOf(3)).Finally(
		func(v int) int { return v + 100 },
		func(result.Error) int { return -1 })
	if s != 103 {
		t.Fatalf("expected 103, got %d", s)
	}

	f := Finally(From(result.ErrMsg[int]("x", 0)),
		func(v int) string { return strconv.Itoa(v) },
		func(e result.Error) string { return "fail:" + e.Message })
	if f != "fail:x" {
		t.Fatalf("expected 'fail:x', got %q", f)
	}
}

func TestTry_WrappedCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("refused")
	out := Try(FromValue[int, error](1), func(int) (int, error) { return 0, cause }).Result()
	if !errors.Is(out.UnwrapErr(), cause) {
		t.Fatalf("expected original cause to survive, got %v", out.UnwrapErr())
	}
}
