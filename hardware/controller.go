package hardware

import (
	"io"
	"log/slog"

	"go.bug.st/serial"

	"github.com/safepathshield/safepath/planner"
)

// Controller pushes door-state frames to the lock firmware. A disabled
// controller (no port) accepts updates and discards them, so callers never
// branch on hardware availability.
type Controller struct {
	log     *slog.Logger
	port    io.WriteCloser
	updates chan map[string]planner.DoorState
	stop    chan struct{}
	done    chan struct{}
}

// Open connects to the lock firmware on the named serial port. If the port
// cannot be opened the failure is logged and the returned controller is a
// no-op; the planning service runs without actuation.
func Open(portName string, baud int, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	port, err := serial.Open(portName, &serial.Mode{BaudRate: baud})
	if err != nil {
		log.Warn("door controller disabled", "port", portName, "error", err)
		return &Controller{log: log}
	}
	log.Info("door controller connected", "port", portName, "baud", baud)
	return start(port, log)
}

// start wires a controller over an already-open line and launches its
// writer goroutine.
func start(port io.WriteCloser, log *slog.Logger) *Controller {
	c := &Controller{
		log:     log,
		port:    port,
		updates: make(chan map[string]planner.DoorState, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go c.run()
	return c
}

// Apply hands the controller a fresh door map. It never blocks: a pending
// frame that has not been written yet is replaced by the newer one.
func (c *Controller) Apply(doors map[string]planner.DoorState) {
	if c.port == nil {
		return
	}
	select {
	case <-c.updates:
	default:
	}
	select {
	case c.updates <- doors:
	default:
	}
}

// Close stops the writer goroutine and releases the port. Safe on a
// disabled controller.
func (c *Controller) Close() {
	if c.port == nil {
		return
	}
	close(c.stop)
	<-c.done
	if err := c.port.Close(); err != nil {
		c.log.Warn("door controller close failed", "error", err)
	}
}

func (c *Controller) run() {
	defer close(c.done)
	for {
		select {
		case <-c.stop:
			return
		case doors := <-c.updates:
			if err := Encode(c.port, doors); err != nil {
				c.log.Warn("door frame dropped", "error", err)
			}
		}
	}
}
