package serial

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type fakeDevice struct {
	bytes.Buffer
	closed bool
	fail   bool
}

func (d *fakeDevice) Write(b []byte) (int, error) {
	if d.fail {
		return 0, errors.New("unplugged")
	}
	return d.Buffer.Write(b)
}

func (d *fakeDevice) Close() error {
	d.closed = true
	return nil
}

func TestBaudRates(t *testing.T) {
	if !IsValidBaudRate(MIDIBaudRate) || !IsValidBaudRate(57600) {
		t.Error("standard rates rejected")
	}
	if IsValidBaudRate(1234) {
		t.Error("1234 accepted")
	}
	if got := BaudRateList(); got[0] != '(' || !strings.Contains(got, "|31250|") {
		t.Errorf("BaudRateList = %q", got)
	}
}

func TestOpenNullDevice(t *testing.T) {
	for _, name := range []string{"/dev/null", "--"} {
		sp, err := Open(name, MIDIBaudRate)
		if err != nil {
			t.Fatalf("Open(%q): %v", name, err)
		}
		sp.Write([]byte{0x90, 45, 96})
		if err := sp.Flush(); err != nil {
			t.Fatal(err)
		}
		if sp.SentTotal() != 3 {
			t.Errorf("%s: sent %d bytes", name, sp.SentTotal())
		}
		if err := sp.Close(); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := Open("--", 1234); err == nil {
		t.Error("Open accepted an invalid baud rate")
	}
}

func TestPortBuffersUntilFlush(t *testing.T) {
	dev := &fakeDevice{}
	sp := newPort("fake", dev)
	sp.Write([]byte{0x90, 45, 96})
	sp.Write([]byte{0x80, 45, 0})
	if dev.Len() != 0 {
		t.Fatalf("wrote %d bytes before Flush", dev.Len())
	}
	if err := sp.Flush(); err != nil {
		t.Fatal(err)
	}
	if want := []byte{0x90, 45, 96, 0x80, 45, 0}; !bytes.Equal(dev.Bytes(), want) {
		t.Errorf("device got % X", dev.Bytes())
	}
	if err := sp.Close(); err != nil || !dev.closed {
		t.Errorf("Close: %v, closed=%v", err, dev.closed)
	}
	if _, err := sp.Write([]byte{0xF8}); err == nil {
		t.Error("Write after Close succeeded")
	}
}

func TestCloseFlushes(t *testing.T) {
	dev := &fakeDevice{}
	sp := newPort("fake", dev)
	sp.Write([]byte{0xFE})
	sp.Close()
	if !bytes.Equal(dev.Bytes(), []byte{0xFE}) {
		t.Errorf("device got % X", dev.Bytes())
	}
}

func TestFlushError(t *testing.T) {
	dev := &fakeDevice{fail: true}
	sp := newPort("fake", dev)
	sp.Write([]byte{0xFE})
	if err := sp.Flush(); err == nil {
		t.Error("Flush hid the device error")
	}
}
