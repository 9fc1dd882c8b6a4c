package byteshow

import (
	"testing"
	"time"
)

func TestDecompose_ShiftAndMask(t *testing.T) {
	rep := decompose(0xA1B2C3D4, Little)
	want := [Width]byte{0xD4, 0xC3, 0xB2, 0xA1}
	for i, rec := range rep.Records {
		if rec.Value != want[i] {
			t.Fatalf("byte %d = %#x want %#x", i+1, rec.Value, want[i])
		}
	}
}

func TestDecompose_Roles(t *testing.T) {
	cases := []struct {
		order Order
		roles [Width]Role
	}{
		{Little, [Width]Role{LSB, RoleNone, RoleNone, MSB}},
		{Big, [Width]Role{MSB, RoleNone, RoleNone, LSB}},
	}
	for _, c := range cases {
		rep := decompose(Value, c.order)
		if rep.Order != c.order {
			t.Fatalf("Order=%v want %v", rep.Order, c.order)
		}
		for i, rec := range rep.Records {
			if rec.Role != c.roles[i] {
				t.Fatalf("%v byte %d role=%v want %v", c.order, i+1, rec.Role, c.roles[i])
			}
		}
	}
}

func TestReporter_NilWriter(t *testing.T) {
	rp := newReporter(nil, defaultOptions)
	if _, err := rp.write(NewReport(Little)); err != ErrInvalidArgument {
		t.Fatalf("err=%v want ErrInvalidArgument", err)
	}
}

func TestDefaultOptions(t *testing.T) {
	if defaultOptions.Order != 0 {
		t.Fatalf("default Order=%v want probe", defaultOptions.Order)
	}
	if defaultOptions.RetryDelay >= 0 {
		t.Fatalf("default RetryDelay=%v want nonblock", defaultOptions.RetryDelay)
	}
}

func TestReporter_Pause(t *testing.T) {
	if (&reporter{retryDelay: -1}).pause() {
		t.Fatal("negative delay should not retry")
	}
	if !(&reporter{retryDelay: 0}).pause() {
		t.Fatal("zero delay should retry")
	}
	if !(&reporter{retryDelay: time.Microsecond}).pause() {
		t.Fatal("positive delay should retry")
	}
}
