package serial

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/but80/harppedal/harp/log"
	"github.com/but80/harppedal/harp/util"
	"github.com/jacobsa/go-serial/serial"
	"github.com/pkg/errors"
	"github.com/xlab/closer"
)

// MIDIBaudRate is the baud rate of a MIDI DIN link.
const MIDIBaudRate = 31250

const flushInterval = 4 * time.Millisecond

// BaudRates are the accepted baud rates.
var BaudRates = []int{300, 600, 1200, 2400, 4800, 9600, 14400, 19200, 28800, MIDIBaudRate, 38400, 57600, 115200}

// IsValidBaudRate reports whether r is one of BaudRates.
func IsValidBaudRate(r int) bool {
	for _, v := range BaudRates {
		if v == r {
			return true
		}
	}
	return false
}

// BaudRateList formats BaudRates for messages, e.g. "(300|600|...)".
func BaudRateList() string {
	s := fmt.Sprint(BaudRates)
	return "(" + strings.Replace(s[1:len(s)-1], " ", "|", -1) + ")"
}

// IsNullDevice reports whether output to deviceName is discarded.
func IsNullDevice(deviceName string) bool {
	return deviceName == "/dev/null" || deviceName == "--" || deviceName == ""
}

// Port sends MIDI messages over a serial port.
// Write only buffers. Data is sent by Flush or in the background.
type Port struct {
	deviceName  string
	ser         io.WriteCloser
	closed      bool
	buffer      []byte
	sentTotal   int
	bufferMutex sync.Mutex
	stop        chan struct{}
}

// Open creates a Port. Output is discarded when deviceName is "/dev/null",
// "--" or empty.
func Open(deviceName string, baudRate int) (*Port, error) {
	if !IsValidBaudRate(baudRate) {
		return nil, errors.Errorf("invalid baud rate %d, want one of %s", baudRate, BaudRateList())
	}
	if IsNullDevice(deviceName) {
		log.Debugf("using null device")
		return newPort(deviceName, nil), nil
	}
	log.Infof("opening serial port %s", deviceName)
	ser, err := serial.Open(serial.OpenOptions{
		PortName:              deviceName,
		BaudRate:              uint(baudRate),
		DataBits:              8,
		StopBits:              1,
		ParityMode:            serial.PARITY_NONE,
		InterCharacterTimeout: 10000,
		MinimumReadSize:       0,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", deviceName)
	}
	sp := newPort(deviceName, ser)
	closer.Bind(func() {
		sp.Close()
	})
	sp.startFlusher(flushInterval)
	return sp, nil
}

func newPort(deviceName string, ser io.WriteCloser) *Port {
	return &Port{
		deviceName: deviceName,
		ser:        ser,
		buffer:     []byte{},
	}
}

func (sp *Port) startFlusher(interval time.Duration) {
	sp.stop = make(chan struct{})
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-sp.stop:
				return
			case <-ticker.C:
				if err := sp.Flush(); err != nil {
					log.Warnf("serial port error: %s", err.Error())
				}
			}
		}
	}()
}

// DeviceName returns the name passed to Open.
func (sp *Port) DeviceName() string {
	return sp.deviceName
}

// Write appends p to the send buffer.
func (sp *Port) Write(b []byte) (int, error) {
	sp.bufferMutex.Lock()
	defer sp.bufferMutex.Unlock()
	if sp.closed {
		return 0, errors.New("serial port is closed")
	}
	sp.buffer = append(sp.buffer, b...)
	return len(b), nil
}

// Flush sends the buffered data and empties the buffer.
func (sp *Port) Flush() error {
	sp.bufferMutex.Lock()
	defer sp.bufferMutex.Unlock()
	return sp.flush()
}

func (sp *Port) flush() error {
	if len(sp.buffer) == 0 {
		return nil
	}
	if sp.ser == nil {
		sp.sentTotal += len(sp.buffer)
		sp.buffer = sp.buffer[:0]
		return nil
	}
	log.Debugf("OUT: %s", util.Hex(sp.buffer))
	n, err := sp.ser.Write(sp.buffer)
	sp.sentTotal += n
	sp.buffer = sp.buffer[n:]
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// SentTotal returns the number of bytes sent so far.
func (sp *Port) SentTotal() int {
	sp.bufferMutex.Lock()
	defer sp.bufferMutex.Unlock()
	return sp.sentTotal
}

// Close flushes the remaining data and closes the port.
func (sp *Port) Close() error {
	sp.bufferMutex.Lock()
	defer sp.bufferMutex.Unlock()
	if sp.closed {
		return nil
	}
	if sp.stop != nil {
		close(sp.stop)
	}
	err := sp.flush()
	sp.closed = true
	if sp.ser != nil {
		log.Infof("closing serial port")
		if cerr := sp.ser.Close(); cerr != nil && err == nil {
			err = errors.WithStack(cerr)
		}
	}
	sp.ser = nil
	return err
}
