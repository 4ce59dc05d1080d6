package repositories

import (
	"database/sql"

	"seaboat-backend/internal/domain"
	"seaboat-backend/internal/domain/models"
)

type TripTemplateRepository struct {
	DB *sql.DB
}

func (r TripTemplateRepository) List() ([]models.TripTemplate, error) {
	rows, err := r.DB.Query(`
		SELECT tt.template_id, tt.boat_id, b.boat_name, tt.route_from, tt.route_to,
		       tt.trip_type, tt.etd, tt.eta,
		       tt.price_domestic_adult, tt.price_domestic_child,
		       tt.price_foreigner_adult, tt.price_foreigner_child
		FROM trip_templates tt
		JOIN boats b ON b.boat_id = tt.boat_id
		ORDER BY b.boat_name ASC, tt.etd ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TripTemplate{}
	for rows.Next() {
		var t models.TripTemplate
		if err := rows.Scan(&t.TemplateID, &t.BoatID, &t.BoatName, &t.RouteFrom, &t.RouteTo,
			&t.TripType, &t.ETD, &t.ETA,
			&t.PriceDomesticAdult, &t.PriceDomesticChild,
			&t.PriceForeignAdult, &t.PriceForeignChild); err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TripTemplateRepository) Create(t models.TripTemplate) (int64, error) {
	res, err := r.DB.Exec(`INSERT INTO trip_templates
		(boat_id, route_from, route_to, trip_type, etd, eta,
		 price_domestic_adult, price_domestic_child, price_foreigner_adult, price_foreigner_child,
		 created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		t.BoatID, t.RouteFrom, t.RouteTo, t.TripType, t.ETD, t.ETA,
		t.PriceDomesticAdult, t.PriceDomesticChild, t.PriceForeignAdult, t.PriceForeignChild)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TripTemplateRepository) Update(t models.TripTemplate) error {
	res, err := r.DB.Exec(`UPDATE trip_templates SET
		boat_id = ?, route_from = ?, route_to = ?, trip_type = ?, etd = ?, eta = ?,
		price_domestic_adult = ?, price_domestic_child = ?,
		price_foreigner_adult = ?, price_foreigner_child = ?, updated_at = NOW()
		WHERE template_id = ?`,
		t.BoatID, t.RouteFrom, t.RouteTo, t.TripType, t.ETD, t.ETA,
		t.PriceDomesticAdult, t.PriceDomesticChild, t.PriceForeignAdult, t.PriceForeignChild,
		t.TemplateID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "trip template"}
	}
	return nil
}

func (r TripTemplateRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM trip_templates WHERE template_id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "trip template"}
	}
	return nil
}
