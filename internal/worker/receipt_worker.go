package worker

// receipt_worker.go
// Processes receipt jobs from QueueReceipt: renders the PDF ticket for a
// settled sale and, when the sale is linked to a customer with an email
// address, enqueues the delivery job.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/InhotaEverton/Aromas-Caf/internal/infra"
	"github.com/InhotaEverton/Aromas-Caf/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ReceiptWorker struct {
	sales          repository.SaleRepository
	dispatcher     *Dispatcher
	storeName      string
	pdfStoragePath string
}

func NewReceiptWorker(
	sales repository.SaleRepository,
	dispatcher *Dispatcher,
	storeName string,
	pdfStoragePath string,
) *ReceiptWorker {
	return &ReceiptWorker{
		sales:          sales,
		dispatcher:     dispatcher,
		storeName:      storeName,
		pdfStoragePath: pdfStoragePath,
	}
}

func (w *ReceiptWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ReceiptJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("receipt_worker: invalid payload")
		return
	}
	saleID, err := uuid.Parse(payload.SaleID)
	if err != nil {
		log.Error().Str("sale_id", payload.SaleID).Msg("receipt_worker: invalid sale_id")
		return
	}

	sale, err := w.sales.FindByID(ctx, saleID)
	if err != nil {
		log.Error().Err(err).Str("sale_id", payload.SaleID).Msg("receipt_worker: sale not found")
		return
	}

	pdfPath, err := infra.GenerateReceiptPDF(sale, w.storeName, w.pdfStoragePath)
	if err != nil {
		log.Error().Err(err).Str("sale_id", payload.SaleID).Msg("receipt_worker: PDF generation failed")
		return
	}
	log.Info().Str("pdf", pdfPath).Str("sale_id", payload.SaleID).Msg("receipt_worker: PDF generated")

	if sale.Customer == nil || sale.Customer.Email == nil || *sale.Customer.Email == "" {
		return
	}
	emailJob := EmailJobPayload{
		ToEmail: *sale.Customer.Email,
		Subject: fmt.Sprintf("%s — your receipt", w.storeName),
		Body:    fmt.Sprintf("Thank you for your purchase!\nTotal: $%s", sale.Total.StringFixed(2)),
		PDFPath: pdfPath,
	}
	if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
		log.Warn().Err(err).Str("email", *sale.Customer.Email).Msg("receipt_worker: failed to enqueue email")
	}
}
