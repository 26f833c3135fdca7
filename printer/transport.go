package printer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/exec"
	"strconv"
	"time"

	"go-restaurant-pos/models"
)

const (
	DefaultPort    = 9100
	defaultTimeout = 5 * time.Second
)

var ErrUnsupportedPrinter = errors.New("unsupported printer type")

// Sender delivers raw ESC/POS data to a printer target.
type Sender struct {
	Timeout time.Duration
	// LprPath is the spooler binary used for system printers.
	LprPath string
}

func NewSender() *Sender {
	return &Sender{Timeout: defaultTimeout, LprPath: "lpr"}
}

func (s *Sender) Send(ctx context.Context, target models.PrinterTarget, data []byte) error {
	switch target.Type {
	case "", models.PrinterNetwork:
		return s.sendNetwork(ctx, target, data)
	case models.PrinterSystem:
		return s.sendSystem(ctx, target, data)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedPrinter, target.Type)
}

func (s *Sender) sendNetwork(ctx context.Context, target models.PrinterTarget, data []byte) error {
	if target.Ip == "" {
		return errors.New("network printer has no address")
	}
	port := target.Port
	if port == 0 {
		port = DefaultPort
	}
	addr := net.JoinHostPort(target.Ip, strconv.Itoa(port))

	dialer := net.Dialer{Timeout: s.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("connect printer %s: %w", addr, err)
	}
	defer conn.Close()

	if err := conn.SetWriteDeadline(time.Now().Add(s.Timeout)); err != nil {
		return err
	}
	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("write printer %s: %w", addr, err)
	}
	return nil
}

func (s *Sender) sendSystem(ctx context.Context, target models.PrinterTarget, data []byte) error {
	f, err := os.CreateTemp("", "receipt-*.prn")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	args := []string{f.Name()}
	if target.Name != "" {
		args = append([]string{"-P", target.Name}, args...)
	}
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, s.LprPath, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("lpr: %w: %s", err, out)
	}
	return nil
}
