package services

import (
	"context"
	"fmt"
	"log"

	"go-restaurant-pos/models"
	"go-restaurant-pos/printer"
)

type PrinterSender interface {
	Send(ctx context.Context, target models.PrinterTarget, data []byte) error
}

type PrintService struct {
	sender        PrinterSender
	issuer        models.Issuer
	defaultTarget models.PrinterTarget
}

func NewPrintService(sender PrinterSender, issuer models.Issuer, defaultTarget models.PrinterTarget) *PrintService {
	return &PrintService{sender: sender, issuer: issuer, defaultTarget: defaultTarget}
}

// Print renders the receipt and sends it to the requested printer, or the
// restaurant's default printer when the request names none.
func (s *PrintService) Print(ctx context.Context, req models.PrintRequest) error {
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: receipt has no items", ErrInvalidInput)
	}
	target := s.defaultTarget
	if req.Printer != nil {
		target = *req.Printer
	}
	receipt := req.Receipt
	receipt.Issuer.FillFrom(s.issuer)

	if err := s.sender.Send(ctx, target, printer.RestaurantReceipt(receipt)); err != nil {
		return err
	}
	log.Printf("Bill printed successfully: %s", receipt.Invoice_number)
	return nil
}
