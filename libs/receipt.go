package libs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/dendisetiawann/kejora-frontend/models"
	"github.com/dendisetiawann/kejora-frontend/utils"
)

// ReceiptGenerator produces the downloadable order receipt. Implementations
// must be safe to call from the reconciliation goroutine.
type ReceiptGenerator interface {
	Generate(payload models.OrderSuccessPayload, paid bool) (string, error)
}

// PDFReceiptGenerator writes receipts as PDF files under Dir and returns the
// file name. Paid and unpaid receipts are named distinctly.
type PDFReceiptGenerator struct {
	Dir        string
	MerchantID string
}

func NewPDFReceiptGenerator(dir, merchantID string) *PDFReceiptGenerator {
	return &PDFReceiptGenerator{Dir: dir, MerchantID: merchantID}
}

func (g *PDFReceiptGenerator) Generate(payload models.OrderSuccessPayload, paid bool) (string, error) {
	if err := os.MkdirAll(g.Dir, os.ModePerm); err != nil {
		return "", err
	}

	const lineHeight = 8.0
	y := 20.0

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	writeLine := func(x float64, text string) {
		if y > 270 {
			pdf.AddPage()
			y = 20
		}
		pdf.Text(x, y, text)
		y += lineHeight
	}

	pdf.SetFont("Helvetica", "B", 16)
	writeLine(14, "Kejora Café")
	pdf.SetFont("Helvetica", "", 10)
	if paid {
		writeLine(14, "Bukti Pembayaran Lunas")
	} else {
		writeLine(14, "Bukti Pemesanan Pembayaran Tunai")
	}
	y += lineHeight

	method := "Tunai di kasir"
	if payload.PaymentMethod == models.PaymentMethodQRIS {
		method = fmt.Sprintf("QRIS (Merchant ID %s)", g.MerchantID)
	}

	summary := []string{
		fmt.Sprintf("Nomor Pesanan : %s", payload.OrderCode),
		fmt.Sprintf("Nama Pelanggan : %s", payload.CustomerName),
		fmt.Sprintf("Nomor Meja : %s", payload.TableNumber),
		fmt.Sprintf("Metode : %s", method),
		fmt.Sprintf("Total : %s", utils.FormatCurrency(payload.Total)),
		fmt.Sprintf("Waktu : %s", utils.FormatDateTime(payload.CreatedAt)),
	}
	for _, text := range summary {
		writeLine(14, text)
	}
	y += lineHeight

	pdf.SetFont("Helvetica", "B", 12)
	writeLine(14, "Rincian Item")
	pdf.SetFont("Helvetica", "", 10)

	for _, item := range payload.Items {
		subtotal := item.Price * float64(item.Qty)
		writeLine(14, fmt.Sprintf("%dx %s @ %s = %s",
			item.Qty, item.Name, utils.FormatCurrency(item.Price), utils.FormatCurrency(subtotal)))
		if item.Note != "" {
			writeLine(18, fmt.Sprintf("Catatan: %s", item.Note))
		}
	}
	y += lineHeight

	if paid {
		writeLine(14, "Status: LUNAS. Simpan struk ini sebagai bukti pembayaran.")
	} else {
		writeLine(14, "Status: BELUM LUNAS. Tunjukkan struk ini ke kasir untuk menyelesaikan pembayaran.")
	}

	name := receiptFileName(payload.OrderCode, paid)
	if err := pdf.OutputFileAndClose(filepath.Join(g.Dir, name)); err != nil {
		return "", err
	}
	return name, nil
}

func receiptFileName(orderCode string, paid bool) string {
	if paid {
		return fmt.Sprintf("Kejora-%s-lunas.pdf", orderCode)
	}
	return fmt.Sprintf("KejoraCash-%s.pdf", orderCode)
}
