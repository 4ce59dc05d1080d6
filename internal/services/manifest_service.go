package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"seaboat-backend/internal/domain"
	"seaboat-backend/internal/domain/models"
	"seaboat-backend/internal/utils"
)

// ManifestService membangun PDF manifest penumpang untuk order berstatus
// Cek-in, dipakai kru sebelum keberangkatan.
type ManifestService struct {
	Orders    OrderService
	RequestID string

	Now func() time.Time
}

func (s ManifestService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ExportCheckIn menghasilkan PDF manifest untuk satu tab sumber
// (FASTBOAT / TOUR) dengan filter yang sama seperti daftar dashboard.
// Hanya order Cek-in yang ikut; bila tidak ada satupun, ekspor ditolak.
func (s ManifestService) ExportCheckIn(sourceType string, f OrderFilters) ([]byte, string, error) {
	orders, err := s.Orders.ListOrders(sourceType, f)
	if err != nil {
		return nil, "", err
	}

	checkedIn := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == models.StatusCheckIn {
			checkedIn = append(checkedIn, o)
		}
	}
	if len(checkedIn) == 0 {
		return nil, "", domain.ValidationError{Msg: "tidak ada data Cek-in untuk diekspor"}
	}

	pdf, err := s.buildManifestPDF(sourceType, checkedIn)
	if err != nil {
		return nil, "", domain.InternalError{Msg: "tidak bisa membuat PDF manifest", Err: err}
	}

	filename := fmt.Sprintf("manifest_checkin_%s_%s.pdf",
		strings.ToLower(sourceType), s.now().Format("20060102"))
	utils.LogEvent(s.RequestID, "manifest", "export",
		fmt.Sprintf("source=%s orders=%d file=%s", sourceType, len(checkedIn), filename))
	return pdf, filename, nil
}

func (s ManifestService) buildManifestPDF(sourceType string, orders []models.Order) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Manifest Penumpang", false)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 9, "Manifest Penumpang Cek-in")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Tipe layanan: %s   Dicetak: %s",
		sourceType, utils.FormatDateTime(s.now())))
	pdf.Ln(9)

	headers := []string{"No", "Nama Penumpang", "Kategori", "Tipe Layanan",
		"Kapal/Tour", "Rute/Layanan", "Tanggal", "ETD", "Agen", "Kode Pemesanan", "Status"}
	widths := []float64{9, 48, 28, 22, 32, 38, 20, 13, 26, 26, 15}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	no := 0
	var totalPrice int64
	for _, o := range orders {
		totalPrice += o.TotalPrice
		vessel := o.BoatName
		route := o.TripRoute
		tipe := "Fastboat"
		if o.SourceType == models.SourceTour {
			vessel = utils.FirstNonEmpty(o.TourName, o.BoatName)
			route = o.ServiceType
			tipe = "Tour"
		}

		passengers := o.Passengers
		if len(passengers) == 0 {
			// baris booking lama tanpa rincian penumpang tetap masuk manifest
			passengers = []models.Passenger{{FullName: "-", Type: models.PassengerAdult, Nationality: o.PassengerType}}
		}

		for _, p := range passengers {
			no++
			cols := []string{
				fmt.Sprintf("%d", no),
				safeCell(p.FullName),
				passengerCategory(p, o.PassengerType),
				tipe,
				safeCell(vessel),
				safeCell(route),
				safeCell(o.TripDate),
				safeCell(o.ETD),
				safeCell(o.AgentName),
				safeCell(o.OrderID),
				o.Status,
			}
			for i, v := range cols {
				pdf.CellFormat(widths[i], 6, v, "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.Cell(0, 5, fmt.Sprintf("Total penumpang: %d   Total nilai: %s", no, utils.FormatRupiah(totalPrice)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// passengerCategory menggabungkan kategori usia dan kewarganegaraan jadi
// satu label kolom, mis. "Dewasa / Domestik".
func passengerCategory(p models.Passenger, fallbackNationality string) string {
	age := "Dewasa"
	if p.Type == models.PassengerChild {
		age = "Anak"
	}
	nat := p.Nationality
	if nat == "" {
		nat = fallbackNationality
	}
	label := "Domestik"
	if nat == models.NationalityForeign {
		label = "Mancanegara"
	}
	return age + " / " + label
}

func safeCell(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "-"
	}
	return v
}
