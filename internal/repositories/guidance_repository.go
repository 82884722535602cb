package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	intconfig "guidance-portal/internal/config"
	"guidance-portal/internal/domain"
	"guidance-portal/internal/domain/models"
)

type GuidanceRepository struct {
	DB *sql.DB
}

func (r GuidanceRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const guidanceWithSchoolQuery = `
	SELECT
		g.guidance_id,
		COALESCE(DATE_FORMAT(g.guidance_date, '%Y-%m-%d'), ''),
		COALESCE(TIME_FORMAT(g.start_time, '%H:%i:%s'), ''),
		COALESCE(TIME_FORMAT(g.end_time, '%H:%i:%s'), ''),
		COALESCE(g.category, ''),
		COALESCE(g.status, ''),
		COALESCE(g.study_plan, ''),
		COALESCE(g.faculty, ''),
		COALESCE(g.professor, ''),
		COALESCE(g.school_id, 0),
		COALESCE(g.vehicle_registration, ''),
		COALESCE(g.vehicle_seats, 0),
		COALESCE(g.vehicle_type, ''),
		COALESCE(g.driver_phone, ''),
		s.school_id,
		s.school_name,
		s.address,
		s.district,
		s.province,
		s.postal_code,
		s.phone,
		s.email,
		s.website,
		s.contact_name,
		s.contact_phone,
		s.is_approved
	FROM guidance g
	LEFT JOIN school s ON s.school_id = g.school_id
	WHERE g.guidance_id = ?
	LIMIT 1
`

// GetWithSchool loads one guidance event and its school. The school is nil
// when the join finds no row.
func (r GuidanceRepository) GetWithSchool(ctx context.Context, id int64) (models.Guidance, *models.School, error) {
	if id <= 0 {
		return models.Guidance{}, nil, domain.ValidationError{Field: "id", Msg: "รหัสกิจกรรมไม่ถูกต้อง"}
	}
	db := r.db()
	if db == nil {
		return models.Guidance{}, nil, errNoDB
	}

	var (
		g      models.Guidance
		school struct {
			id                                sql.NullInt64
			name, address, district, province sql.NullString
			postal, phone, email, website     sql.NullString
			contactName, contactPhone         sql.NullString
			approved                          sql.NullBool
		}
	)
	err := db.QueryRowContext(ctx, guidanceWithSchoolQuery, id).Scan(
		&g.ID,
		&g.Date,
		&g.StartTime,
		&g.EndTime,
		&g.Category,
		&g.Status,
		&g.StudyPlan,
		&g.Faculty,
		&g.Professor,
		&g.SchoolID,
		&g.VehicleRegistration,
		&g.VehicleSeats,
		&g.VehicleType,
		&g.DriverPhone,
		&school.id,
		&school.name,
		&school.address,
		&school.district,
		&school.province,
		&school.postal,
		&school.phone,
		&school.email,
		&school.website,
		&school.contactName,
		&school.contactPhone,
		&school.approved,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Guidance{}, nil, domain.NotFoundError{Resource: fmt.Sprintf("guidance %d", id), Err: err}
		}
		return models.Guidance{}, nil, fmt.Errorf("query guidance %d: %w", id, err)
	}

	if !school.id.Valid {
		return g, nil, nil
	}
	return g, &models.School{
		ID:           school.id.Int64,
		Name:         school.name.String,
		Address:      school.address.String,
		District:     school.district.String,
		Province:     school.province.String,
		PostalCode:   school.postal.String,
		Phone:        school.phone.String,
		Email:        school.email.String,
		Website:      school.website.String,
		ContactName:  school.contactName.String,
		ContactPhone: school.contactPhone.String,
		Approved:     school.approved.Valid && school.approved.Bool,
	}, nil
}
