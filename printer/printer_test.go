package printer

import (
	"bytes"
	"context"
	"io"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"go-restaurant-pos/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReceipt() models.Receipt {
	return models.Receipt{
		Issuer: models.Issuer{
			Restaurant_name: "KHAN SAHAB RESTAURANT",
			Address:         "4, BANSAL NAGAR FATEHABAD ROAD AGRA",
			State:           "Uttar Pradesh",
			State_code:      "09",
			Phone:           "9319209322",
			Gstin:           "09AHDPA1039P2ZB",
			Fssai:           "12722001001504",
			Place_of_supply: "Uttar Pradesh",
		},
		Invoice_number: "3",
		Date:           "20/07/2025",
		Time:           "09:41 pm",
		Items: []models.ReceiptItem{
			{Name: "Banana Lassi", Qty: 1, Price: 150},
			{Name: "Chicken Makhani Boneless Extra Large", Qty: 1, Price: 699},
			{Name: "Butter Naan", Qty: 2, Price: 70},
		},
		Tax_rate:       0.05,
		Payment_method: models.PaymentCash,
		Receipt_url:    "https://example.com/receipt/3",
	}
}

func TestBuilderCommands(t *testing.T) {
	out := NewBuilder().Init().Bold(true).Text("A").Newline().Align(AlignCenter).Cut().Bytes()
	assert.Equal(t, []byte{0x1B, 0x40, 0x1B, 0x45, 1, 'A', 0x0A, 0x1B, 0x61, 1, 0x1D, 0x56, 0x00}, out)
}

func TestBuilderQRLengthPrefix(t *testing.T) {
	out := NewBuilder().QR("abc", 6).Bytes()
	store := []byte{0x1D, 0x28, 0x6B, 6, 0, 0x31, 0x50, 0x30, 'a', 'b', 'c'}
	assert.True(t, bytes.Contains(out, store))
}

func TestRestaurantReceiptContent(t *testing.T) {
	out := string(RestaurantReceipt(sampleReceipt()))

	assert.Contains(t, out, "KHAN SAHAB RESTAURANT")
	assert.Contains(t, out, "State: Uttar Pradesh (09)")
	assert.Contains(t, out, "Tax Invoice")
	assert.Contains(t, out, "Cash Sale")
	assert.Contains(t, out, "Invoice no: 3")
	assert.Contains(t, out, "Chicken Makhani Bone")
	assert.NotContains(t, out, "Boneless Extra")
	assert.Contains(t, out, "140.00")
	// 150 + 699 + 140 = 989, 5% = 49.45
	assert.Contains(t, out, "989.00")
	assert.Contains(t, out, "49.45")
	assert.Contains(t, out, "1038.45")
	assert.Contains(t, out, "GST@5%")
	assert.Contains(t, out, "https://example.com/receipt/3")
	assert.True(t, bytes.HasSuffix([]byte(out), []byte{0x1D, 0x56, 0x00}))
}

func TestRestaurantReceiptWithoutTax(t *testing.T) {
	r := sampleReceipt()
	r.Tax_rate = 0
	r.Payment_method = models.PaymentCard
	out := string(RestaurantReceipt(r))

	assert.Contains(t, out, "Card Sale")
	assert.NotContains(t, out, "Taxes")
	assert.NotContains(t, out, "GST@")
}

func TestSendNetwork(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	received := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		data, _ := io.ReadAll(conn)
		received <- data
	}()

	addr := ln.Addr().(*net.TCPAddr)
	target := models.PrinterTarget{Type: models.PrinterNetwork, Ip: "127.0.0.1", Port: addr.Port}
	require.NoError(t, NewSender().Send(context.Background(), target, []byte("hello")))

	select {
	case data := <-received:
		assert.Equal(t, []byte("hello"), data)
	case <-time.After(2 * time.Second):
		t.Fatal("printer received nothing")
	}
}

func TestSendNetworkUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	s := NewSender()
	s.Timeout = 500 * time.Millisecond
	err = s.Send(context.Background(), models.PrinterTarget{Ip: "127.0.0.1", Port: port}, []byte("x"))
	assert.Error(t, err)
}

func TestSendUnsupportedType(t *testing.T) {
	err := NewSender().Send(context.Background(), models.PrinterTarget{Type: "serial"}, []byte("x"))
	assert.ErrorIs(t, err, ErrUnsupportedPrinter)
}

func TestSendSystemUsesSpooler(t *testing.T) {
	dir := t.TempDir()
	captured := filepath.Join(dir, "args")
	script := filepath.Join(dir, "lpr")
	body := "#!/bin/sh\necho \"$@\" > " + strconv.Quote(captured) + "\n"
	require.NoError(t, os.WriteFile(script, []byte(body), 0o755))

	s := NewSender()
	s.LprPath = script
	err := s.Send(context.Background(), models.PrinterTarget{Type: models.PrinterSystem, Name: "kitchen"}, []byte("x"))
	require.NoError(t, err)

	args, err := os.ReadFile(captured)
	require.NoError(t, err)
	assert.Contains(t, string(args), "-P kitchen")
}
