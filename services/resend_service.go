package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
)

// ResendClient handles email sending via the Resend API.
type ResendClient struct {
	apiKey string
	from   string
	apiURL string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, from string) *ResendClient {
	if from == "" {
		from = "factures@myks-sports.com"
	}
	return &ResendClient{
		apiKey: apiKey,
		from:   from,
		apiURL: "https://api.resend.com/emails",
	}
}

// OrderInvoiceEmailItem represents a line item in an invoice email.
type OrderInvoiceEmailItem struct {
	Name     string
	Size     string
	Color    string
	Quantity int
	Price    float64
	Subtotal float64
}

// OrderInvoiceEmailData holds data for an order invoice email.
type OrderInvoiceEmailData struct {
	CustomerName  string
	CustomerEmail string
	OrderID       string
	OrderDate     string
	Status        string
	Items         []OrderInvoiceEmailItem
	Total         float64
	PDFContent    []byte
}

// SendOrderInvoiceEmail sends an order invoice with an HTML preview and the
// PDF attached via Resend.
func (r *ResendClient) SendOrderInvoiceEmail(data OrderInvoiceEmailData) error {
	var itemsRows strings.Builder
	for _, item := range data.Items {
		variant := item.Size
		if item.Color != "" {
			if variant != "" {
				variant += " / "
			}
			variant += item.Color
		}
		itemsRows.WriteString(fmt.Sprintf(`
      <tr>
        <td style="padding: 8px 0; font-size: 14px; color: #262622;">%s</td>
        <td style="padding: 8px 0; font-size: 14px; color: #79776d;">%s</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">%d</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">%.2f €</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; font-weight: 600; color: #262622;">%.2f €</td>
      </tr>
    `, item.Name, variant, item.Quantity, item.Price, item.Subtotal))
	}

	var html strings.Builder
	html.WriteString(fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Facture - Commande %s</title>
</head>
<body style="margin: 0; padding: 16px; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; background-color: #fafaf7; line-height: 1.5;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 900px; margin: auto; background: #ffffff; padding: 24px;">
    <tr>
      <td style="border-bottom: 1px solid #e5e5e0; padding-bottom: 16px;">
        <h1 style="margin: 0; font-size: 30px; font-weight: bold; color: #262622;">FACTURE</h1>
      </td>
    </tr>

    <tr>
      <td style="padding: 16px 0;">
        <h2 style="margin: 0; font-size: 24px; font-weight: bold; color: #262622;">MYKS SPORTS</h2>
        <p style="margin: 4px 0; font-size: 14px; color: #79776d;">contact@myks-sports.com</p>
      </td>
    </tr>

    <tr>
      <td style="padding: 16px 0;">
        <table width="100%%" cellpadding="0" cellspacing="0" border="0">
          <tr>
            <td style="vertical-align: top;">
              <p style="margin: 0; font-size: 14px; font-weight: bold; color: #262622;">Facturer à</p>
              <p style="margin: 4px 0; font-size: 14px; color: #262622;">%s</p>
              <p style="margin: 4px 0; font-size: 14px; color: #79776d;">%s</p>
            </td>
            <td style="text-align: right; vertical-align: top;">
              <p style="margin: 0; font-size: 14px; color: #79776d;">Commande</p>
              <p style="margin: 4px 0; font-size: 14px; font-weight: bold; color: #262622;">%s</p>
              <p style="margin: 8px 0 0 0; font-size: 14px; color: #79776d;">Date</p>
              <p style="margin: 4px 0; font-size: 14px; font-weight: bold; color: #262622;">%s</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>

    <tr>
      <td style="padding: 16px 0; border-top: 1px solid #e5e5e0; border-bottom: 1px solid #e5e5e0;">
        <table width="100%%" cellpadding="0" cellspacing="0" border="0">
          <thead>
            <tr>
              <th style="text-align: left; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">Article</th>
              <th style="text-align: left; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">Variante</th>
              <th style="text-align: right; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">Qté</th>
              <th style="text-align: right; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">Prix</th>
              <th style="text-align: right; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">Sous-total</th>
            </tr>
          </thead>
          <tbody>
            %s
          </tbody>
        </table>
      </td>
    </tr>

    <tr>
      <td style="padding: 16px 0;">
        <table align="right" width="300" cellpadding="0" cellspacing="0" border="0">
          <tr>
            <td style="font-size: 14px; font-weight: bold; border-top: 1px solid #e5e5e0; padding-top: 8px;">Total</td>
            <td style="text-align: right; font-size: 16px; font-weight: bold; color: #262622; border-top: 1px solid #e5e5e0; padding-top: 8px;">%.2f €</td>
          </tr>
        </table>
      </td>
    </tr>

    <tr>
      <td style="padding: 16px 0; border-top: 1px solid #e5e5e0;">
        <p style="font-size: 14px; color: #79776d;">Statut: %s, paiement à la livraison.</p>
        <p style="font-size: 14px; font-weight: bold; color: #262622;">Merci pour votre commande !</p>
      </td>
    </tr>

  </table>
</body>
</html>
`, data.OrderID,
		data.CustomerName, data.CustomerEmail,
		data.OrderID, data.OrderDate,
		itemsRows.String(),
		data.Total,
		data.Status,
	))

	pdfBase64 := base64.StdEncoding.EncodeToString(data.PDFContent)

	payload := map[string]interface{}{
		"from":    r.from,
		"to":      data.CustomerEmail,
		"subject": fmt.Sprintf("Votre facture MYKS Sports - Commande %s", data.OrderID),
		"html":    html.String(),
		"attachments": []map[string]interface{}{
			{
				"filename": fmt.Sprintf("invoice-%s.pdf", data.OrderID),
				"content":  pdfBase64,
			},
		},
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", r.apiURL, bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Printf("[resend] failed to create request: %v", err)
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[resend] failed to read response: %v", err)
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[resend] api returned status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}

	log.Printf("[resend] order invoice email sent to %s for order %s", data.CustomerEmail, data.OrderID)
	return nil
}
