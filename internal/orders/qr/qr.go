// Package qr renders an encrypted QR receipt for a confirmed purchase.
package qr

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"

	"github.com/skip2/go-qrcode"

	"gp-ticketing/internal/models"
)

type ReceiptGenerator struct {
	secret []byte
}

func NewReceiptGenerator(secret string) *ReceiptGenerator {
	hashed := sha256.Sum256([]byte(secret)) // normalize to 32 bytes
	return &ReceiptGenerator{secret: hashed[:]}
}

// receiptPayload is what gate staff scan: enough to verify the purchase
// without exposing account data.
type receiptPayload struct {
	OrderID       string               `json:"order_id"`
	CustomerID    string               `json:"customer_id"`
	TicketNames   []string             `json:"ticket_names"`
	TotalPrice    float64              `json:"total_price"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	PurchasedAt   string               `json:"purchased_at"`
}

// GenerateReceipt returns a 256px PNG of the AES-encrypted order summary.
func (g *ReceiptGenerator) GenerateReceipt(order *models.PurchaseOrder) ([]byte, error) {
	names := make([]string, len(order.Tickets))
	for i, t := range order.Tickets {
		names[i] = t.Name
	}
	payload := receiptPayload{
		OrderID:       order.OrderID,
		CustomerID:    order.CustomerID,
		TicketNames:   names,
		TotalPrice:    order.TotalPrice,
		PaymentMethod: order.PaymentMethod,
		PurchasedAt:   order.PurchasedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	encrypted, err := encryptAES(data, g.secret)
	if err != nil {
		return nil, err
	}

	return qrcode.Encode(encrypted, qrcode.Medium, 256)
}

func encryptAES(data []byte, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	ciphertext := make([]byte, aes.BlockSize+len(data))
	iv := ciphertext[:aes.BlockSize]

	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", err
	}

	stream := cipher.NewCFBEncrypter(block, iv)
	stream.XORKeyStream(ciphertext[aes.BlockSize:], data)

	return base64.URLEncoding.EncodeToString(ciphertext), nil
}
