package repositories

import (
	"database/sql"
	"encoding/json"
	"log"
	"strings"

	"seaboat-backend/internal/domain"
	"seaboat-backend/internal/domain/models"
)

type TourRepository struct {
	DB *sql.DB
}

const tourColumns = `id, name, service_type, COALESCE(overview,''),
	COALESCE(highlights,'[]'), COALESCE(trip_itinerary,'[]'),
	COALESCE(inclusions,'[]'), COALESCE(exclusions,'[]'),
	price_domestic_adult, price_domestic_child, price_foreigner_adult, price_foreigner_child,
	COALESCE(images,'[]')`

// List mengambil paket tour/yacht/fishing, opsional difilter service_type.
func (r TourRepository) List(serviceType string) ([]models.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM tours`
	args := []any{}
	if strings.TrimSpace(serviceType) != "" {
		query += ` WHERE service_type = ?`
		args = append(args, serviceType)
	}
	query += ` ORDER BY name ASC`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Tour{}
	for rows.Next() {
		t, err := scanTour(rows)
		if err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TourRepository) GetByID(id int64) (models.Tour, error) {
	row := r.DB.QueryRow(`SELECT `+tourColumns+` FROM tours WHERE id = ?`, id)
	t, err := scanTour(row)
	if err == sql.ErrNoRows {
		return t, domain.NotFoundError{Resource: "tour"}
	}
	return t, err
}

func (r TourRepository) Create(t models.Tour) (int64, error) {
	res, err := r.DB.Exec(`INSERT INTO tours
		(name, service_type, overview, highlights, trip_itinerary, inclusions, exclusions,
		 price_domestic_adult, price_domestic_child, price_foreigner_adult, price_foreigner_child,
		 images, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		t.Name, t.ServiceType, t.Overview,
		marshalList(t.Highlights), marshalList(t.Itinerary), marshalList(t.Inclusions), marshalList(t.Exclusions),
		t.PriceDomesticAdult, t.PriceDomesticChild, t.PriceForeignAdult, t.PriceForeignChild,
		marshalList(t.Images))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TourRepository) Update(t models.Tour) error {
	res, err := r.DB.Exec(`UPDATE tours SET
		name = ?, service_type = ?, overview = ?, highlights = ?, trip_itinerary = ?,
		inclusions = ?, exclusions = ?,
		price_domestic_adult = ?, price_domestic_child = ?, price_foreigner_adult = ?, price_foreigner_child = ?,
		images = ?, updated_at = NOW()
		WHERE id = ?`,
		t.Name, t.ServiceType, t.Overview,
		marshalList(t.Highlights), marshalList(t.Itinerary), marshalList(t.Inclusions), marshalList(t.Exclusions),
		t.PriceDomesticAdult, t.PriceDomesticChild, t.PriceForeignAdult, t.PriceForeignChild,
		marshalList(t.Images), t.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "tour"}
	}
	return nil
}

func (r TourRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM tours WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "tour"}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTour(row rowScanner) (models.Tour, error) {
	var (
		t                                              models.Tour
		highlights, itinerary, inclusions, exclusions  string
		images                                         string
	)
	err := row.Scan(&t.ID, &t.Name, &t.ServiceType, &t.Overview,
		&highlights, &itinerary, &inclusions, &exclusions,
		&t.PriceDomesticAdult, &t.PriceDomesticChild, &t.PriceForeignAdult, &t.PriceForeignChild,
		&images)
	if err != nil {
		return t, err
	}
	t.Highlights = unmarshalList(highlights)
	t.Itinerary = unmarshalList(itinerary)
	t.Inclusions = unmarshalList(inclusions)
	t.Exclusions = unmarshalList(exclusions)
	t.Images = unmarshalList(images)
	return t, nil
}

func marshalList(items []string) string {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// unmarshalList memperlakukan kolom JSON rusak sebagai list kosong; data lama
// tidak boleh membuat listing gagal.
func unmarshalList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("[TOUR] kolom list tidak valid, dianggap kosong: %v", err)
		return []string{}
	}
	return items
}
