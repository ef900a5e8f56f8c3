package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateVoucherQR renders the voucher code as a PNG QR code
	GenerateVoucherQR(code string) ([]byte, error)

	// ParseVoucherQR parses QR code data and returns the voucher code
	ParseVoucherQR(qrData string) (string, error)
}
