package gldispatch

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gogpu/gldispatch/internal/fake"
	"github.com/gogpu/gldispatch/slot"
)

// noFaults is a Platform without a FaultSource: its CurrentError hides the
// embedded one and has the wrong signature.
type noFaults struct {
	*fake.Platform
}

func (noFaults) CurrentError() {}

func newValidated(t *testing.T, p Platform, opts ...Option) *Context {
	t.Helper()
	opts = append([]Option{WithSchema(activateSchema()), WithValidation(true)}, opts...)
	c, err := New(p, opts...)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	return c
}

func TestValidatorNonInterference(t *testing.T) {
	ret := func(args ...uintptr) uintptr { return args[0] * 2 }

	plain := fake.New("4.6")
	plain.Define("core.Activate", ret)
	checked := fake.New("4.6")
	checked.Define("core.Activate", ret)

	off, err := New(plain, WithSchema(activateSchema()))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	on := newValidated(t, checked)

	for _, arg := range []uintptr{0, 1, 21, 1 << 20} {
		a, errA := off.Call(cmdActivate, arg)
		b, errB := on.Call(cmdActivate, arg)
		if a != b || errA != errB {
			t.Errorf("Call(%d): validation changed result: %+v/%v vs %+v/%v", arg, a, errA, b, errB)
		}
	}
	if !reflect.DeepEqual(plain.Calls(), checked.Calls()) {
		t.Errorf("validation changed native calls:\n%+v\n%+v", plain.Calls(), checked.Calls())
	}
}

func TestValidatorAttachesFault(t *testing.T) {
	p := fake.New("4.6")
	p.Define("core.Activate", func(...uintptr) uintptr {
		p.RaiseError(InvalidEnum, InvalidValue)
		return 5
	})

	var handled []*NativeFault
	c := newValidated(t, p, WithFaultHandler(func(f *NativeFault) { handled = append(handled, f) }))

	res, err := c.Call(cmdActivate)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if res.Value != 5 {
		t.Errorf("Value = %d, want 5", res.Value)
	}
	if res.Fault == nil {
		t.Fatal("Fault = nil, want a native fault")
	}
	if want := []uint32{InvalidEnum, InvalidValue}; !reflect.DeepEqual(res.Fault.Codes, want) {
		t.Errorf("Codes = %v, want %v", res.Fault.Codes, want)
	}
	if res.Fault.Command != "Activate" || res.Fault.Alias != "core.Activate" {
		t.Errorf("Fault = %+v, want Activate via core.Activate", res.Fault)
	}
	if !errors.Is(res.Err(), ErrNativeFault) {
		t.Errorf("Err() = %v, want ErrNativeFault", res.Err())
	}
	if len(handled) != 1 || handled[0] != res.Fault {
		t.Errorf("handler saw %v, want the attached fault", handled)
	}

	// The error state was drained.
	res, _ = c.Call(cmdActivate)
	if res.Fault == nil || len(res.Fault.Codes) != 2 {
		t.Errorf("second call Fault = %v, want the freshly raised codes", res.Fault)
	}
}

func TestValidatorRunsAfterCall(t *testing.T) {
	p := fake.New("4.6")
	p.Define("core.Activate", nil)
	// Raised before the call: a validator running first would consume it.
	p.RaiseError(OutOfMemory)

	var order []string
	probe := func(next Dispatcher) Dispatcher {
		return DispatcherFunc(func(e *slot.Entry, args []uintptr) (Result, error) {
			res, err := next.Dispatch(e, args)
			if res.Fault != nil {
				order = append(order, "fault")
			}
			return res, err
		})
	}
	c := newValidated(t, p, WithMiddleware(probe))

	res, err := c.Call(cmdActivate)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if res.Fault == nil || res.Fault.Codes[0] != OutOfMemory {
		t.Errorf("Fault = %v, want GL_OUT_OF_MEMORY", res.Fault)
	}
	if len(p.Calls()) != 1 {
		t.Errorf("native calls = %d, want 1", len(p.Calls()))
	}
	if !reflect.DeepEqual(order, []string{"fault"}) {
		t.Errorf("outer middleware saw %v, want the fault", order)
	}
}

func TestValidatorNoErrorQuery(t *testing.T) {
	p := fake.New("4.6")
	p.Define("core.Activate", func(...uintptr) uintptr { return 9 })
	p.RaiseError(InvalidOperation)
	p.DisableErrorQuery()
	c := newValidated(t, p)

	res, err := c.Call(cmdActivate)
	if err != nil || res.Value != 9 || res.Fault != nil {
		t.Errorf("Call() = %+v, %v, want value 9 and no fault", res, err)
	}
}

func TestValidatorPlatformWithoutFaultSource(t *testing.T) {
	p := fake.New("4.6")
	p.Define("core.Activate", func(...uintptr) uintptr { return 3 })
	p.RaiseError(InvalidOperation)
	c := newValidated(t, noFaults{p})

	res, err := c.Call(cmdActivate)
	if err != nil || res.Value != 3 || res.Fault != nil {
		t.Errorf("Call() = %+v, %v, want value 3 and no fault", res, err)
	}
}

func TestValidatorPassesDispatchErrors(t *testing.T) {
	p := fake.New("4.6")
	p.RaiseError(InvalidEnum)
	c := newValidated(t, p)

	res, err := c.Call(cmdNever)
	if !errors.Is(err, ErrCommandUnavailable) {
		t.Fatalf("Call(Never) error = %v, want ErrCommandUnavailable", err)
	}
	if res.Fault != nil {
		t.Errorf("Fault = %v, want none for an unavailable command", res.Fault)
	}
	// The pending error was not drained.
	if code, _ := p.CurrentError(); code != InvalidEnum {
		t.Errorf("pending error = %#x, want GL_INVALID_ENUM", code)
	}
}

func TestValidateMaxDrain(t *testing.T) {
	tests := []struct {
		name string
		opts []ValidateOption
		want int
	}{
		{"default", nil, DefaultMaxDrain},
		{"two", []ValidateOption{ValidateMaxDrain(2)}, 2},
		{"ignored", []ValidateOption{ValidateMaxDrain(0)}, DefaultMaxDrain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := fake.New("4.6")
			proc := p.Define("core.Activate", nil)
			for range tt.want + 4 {
				p.RaiseError(InvalidValue)
			}
			e := &slot.Entry{Command: activateSchema().Command(cmdActivate), Proc: proc, Alias: 0}

			d := Validate(p, tt.opts...)(invokeDispatcher{inv: p})
			res, err := d.Dispatch(e, nil)
			if err != nil {
				t.Fatalf("Dispatch() error = %v", err)
			}
			if res.Fault == nil || len(res.Fault.Codes) != tt.want {
				t.Errorf("drained %v, want %d codes", res.Fault, tt.want)
			}
		})
	}
}

func TestValidateNilSource(t *testing.T) {
	inner := DispatcherFunc(func(*slot.Entry, []uintptr) (Result, error) { return Result{Value: 1}, nil })
	d := Validate(nil)(inner)
	res, err := d.Dispatch(nil, nil)
	if err != nil || res.Value != 1 {
		t.Errorf("Dispatch() = %+v, %v", res, err)
	}
}
