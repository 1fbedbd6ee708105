package order_controller

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/SOf1AN3/myks-sports-bolt/models"
)

// generateOrderInvoicePDF renders an in-memory invoice for the order.
func generateOrderInvoicePDF(order *models.Order) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	var customer models.CustomerInfo
	if len(order.CustomerInfo) > 0 {
		_ = json.Unmarshal(order.CustomerInfo, &customer)
	}
	if customer.Name == "" {
		customer.Name = "Client MYKS"
	}

	// Title
	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("FACTURE", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	// Company info
	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("MYKS SPORTS", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("contact@myks-sports.com", props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	// Billing section
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("FACTURER À", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text("DÉTAILS", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(customer.Name, props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Commande %s", order.ID), props.Text{
				Size:  10,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(customer.Email, props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
		m.Col(6, func() {
			m.Text(order.CreatedAt.Format("02/01/2006"), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(8, func() {})

	// Items table
	header := []string{"Article", "Taille", "Couleur", "Qté", "Prix", "Sous-total"}
	contents := make([][]string, 0, len(order.Items))
	for _, item := range order.Items {
		contents = append(contents, []string{
			item.Name,
			item.Size,
			item.Color,
			fmt.Sprintf("%d", item.Quantity),
			fmt.Sprintf("%.2f €", item.Price),
			fmt.Sprintf("%.2f €", item.Price*float64(item.Quantity)),
		})
	}

	m.TableList(header, contents, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      9,
			Style:     consts.Bold,
			GridSizes: []uint{4, 2, 2, 1, 1, 2},
		},
		ContentProp: props.TableListContent{
			Size:      9,
			GridSizes: []uint{4, 2, 2, 1, 1, 2},
		},
		Align:              consts.Left,
		HeaderContentSpace: 1,
		Line:               false,
	})

	m.Row(8, func() {})

	// Total
	m.Row(8, func() {
		m.Col(8, func() {})
		m.Col(4, func() {
			m.Text(fmt.Sprintf("TOTAL: %.2f €", order.Total), props.Text{
				Size:  12,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(6, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Statut: %s — paiement à la livraison", order.Status), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	out, err := m.Output()
	if err != nil {
		return nil, err
	}
	return &out, nil
}
