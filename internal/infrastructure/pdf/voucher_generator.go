// Package pdf implementa la generación del voucher PDF de una reserva.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del sitio  │  Código de reserva + Fecha     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PAQUETE: nombre del tour + fecha de viaje + pasajeros       │
//	│  CLIENTE: nombre + email                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ESTADO: reserva / pago   |   TOTAL                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con el código + leyenda                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbooking "github.com/malithvisio/magcin-api/internal/application/booking"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 94, Blue: 68}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoVoucherGenerator implementa booking.VoucherGenerator usando Maroto v2.
type MarotoVoucherGenerator struct{}

// NewMarotoVoucherGenerator construye el generador.
func NewMarotoVoucherGenerator() *MarotoVoucherGenerator { return &MarotoVoucherGenerator{} }

// GenerateVoucher genera el PDF del voucher y devuelve sus bytes.
func (g *MarotoVoucherGenerator) GenerateVoucher(data appbooking.VoucherData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Voucher de reserva "+data.BookingCode, true).
		WithAuthor(data.SiteName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(packageRow(data))
	m.AddRows(customerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(statusRow(data))
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(data)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar voucher: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del sitio (izq) y código de reserva + fecha de emisión (der).
func headerRow(data appbooking.VoucherData) core.Row {
	emitida := data.IssuedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(data.SiteName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Voucher de reserva", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CÓDIGO DE RESERVA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(data.BookingCode, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Emitido: "+emitida, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// packageRow: paquete reservado, fecha de viaje y cantidad de pasajeros.
func packageRow(data appbooking.VoucherData) core.Row {
	viaje := data.TravelDate.Format("02/01/2006")
	return row.New(14).Add(
		col.New(12).Add(
			text.New("DETALLE DEL VIAJE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(data.PackageName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Fecha de viaje: %s   |   Pasajeros: %d",
				viaje, data.GuestCount,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// customerRow: datos del cliente titular de la reserva.
func customerRow(data appbooking.VoucherData) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("TITULAR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Email: %s",
				data.CustomerName, data.CustomerEmail,
			), props.Text{Size: 9, Top: 7}),
		),
	)
}

// statusRow: estados de la reserva/pago (izq) y total (der).
func statusRow(data appbooking.VoucherData) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Estado de la reserva: "+data.Status, props.Text{
				Size: 9, Top: 2,
			}),
			text.New("Estado del pago: "+data.PaymentStatus, props.Text{
				Size: 9, Top: 8,
			}),
		),
		col.New(5).Add(
			text.New("TOTAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("$"+data.TotalAmount.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 7,
			}),
		),
	)
}

// footerRows: QR con el código de reserva + leyenda.
func footerRows(data appbooking.VoucherData) []core.Row {
	return []core.Row{
		row.New(50).Add(
			col.New(4).Add(code.NewQr(data.BookingCode, props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Presenta este voucher (o el código QR)\nal inicio del tour.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New("Comprobante de\nRESERVA DE TOUR", props.Text{
					Style: fontstyle.Bold, Size: 10, Top: 22,
					Left: 3, Color: colorPrimary,
				}),
			),
		),
		row.New(8).Add(col.New(12).Add(
			text.New(
				"Este voucher no es válido como comprobante de pago. "+
					"Ante cualquier cambio de itinerario, contacta al operador con tu código de reserva.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		)),
	}
}
