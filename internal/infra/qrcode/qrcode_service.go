package qrcode

import (
	"encoding/json"
	"net/url"
	"strings"

	"crm/config"
	"crm/internal/domain/service"
	"crm/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize   = 256
	voucherQRType = "voucher"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	Type string `json:"type"`
	Code string `json:"code"`
	// URL lets a phone camera open the voucher page directly
	URL string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance from the qrcode config section
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qrCfg := cfg.QRCode
	if qrCfg == nil {
		qrCfg = &config.QRCodeConfig{}
	}

	return newQRCodeService(qrCfg.Size, qrCfg.ErrorCorrectionLevel, qrCfg.BaseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	if size <= 0 {
		size = defaultSize
	}

	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateVoucherQR renders the voucher code as a PNG QR code
func (s *qrcodeService) GenerateVoucherQR(code string) ([]byte, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errors.New("voucher code is required")
	}

	data := QRCodeData{Type: voucherQRType, Code: code}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/vouchers/" + url.PathEscape(code)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseVoucherQR parses QR code data and returns the voucher code
func (s *qrcodeService) ParseVoucherQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != voucherQRType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if strings.TrimSpace(data.Code) == "" {
		return "", errors.New("QR code carries no voucher code")
	}

	return data.Code, nil
}
