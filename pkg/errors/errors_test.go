package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

type captureHandler struct {
	errs   []*CastellaError
	panics []*PanicError
}

func (h *captureHandler) HandleError(err *CastellaError) { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *PanicError)    { h.panics = append(h.panics, err) }

func TestCastellaErrorFormatting(t *testing.T) {
	inner := stderrors.New("boom")
	err := &CastellaError{Op: "theme.LoadScheme", Kind: KindConfig, Err: inner}

	got := err.Error()
	if !strings.Contains(got, "theme.LoadScheme") || !strings.Contains(got, "config") {
		t.Errorf("unexpected message: %q", got)
	}
	if !stderrors.Is(err, inner) {
		t.Error("Unwrap should expose the underlying error")
	}
}

func TestNewContract(t *testing.T) {
	err := NewContract("core.Layout.Add", "bad child %d", 3)

	if err.Op != "core.Layout.Add" {
		t.Errorf("unexpected op %q", err.Op)
	}
	if err.Reason != "bad child 3" {
		t.Errorf("unexpected reason %q", err.Reason)
	}
	if !strings.Contains(err.Error(), "core.Layout.Add: bad child 3") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestReportUsesConfiguredHandler(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(&CastellaError{Op: "op", Kind: KindRender, Err: stderrors.New("x")})
	Report(nil)

	if len(h.errs) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(h.errs))
	}
	if h.errs[0].Timestamp.IsZero() {
		t.Error("Report should stamp the error time")
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	func() {
		defer Recover("widget.redraw")
		panic("kaboom")
	}()

	if len(h.panics) != 1 {
		t.Fatalf("expected 1 reported panic, got %d", len(h.panics))
	}
	p := h.panics[0]
	if p.Op != "widget.redraw" || p.Value != "kaboom" {
		t.Errorf("unexpected panic report %+v", p)
	}
	if p.StackTrace == "" {
		t.Error("panic report should carry a stack trace")
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&captureHandler{})
	SetHandler(nil)

	if _, ok := getHandler().(*LogHandler); !ok {
		t.Errorf("expected LogHandler default, got %T", getHandler())
	}
}
