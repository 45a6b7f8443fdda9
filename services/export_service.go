package services

import (
	"fmt"
	"strconv"

	"srvices-backend/entity"
	"srvices-backend/repository"
)

// ExportService prepares the CSV downloads for the admin views.
type ExportService struct {
	Users    *repository.UserRepository
	Bookings *repository.BookingRepository
}

func NewExportService(users *repository.UserRepository, bookings *repository.BookingRepository) *ExportService {
	return &ExportService{Users: users, Bookings: bookings}
}

var UserExportHeader = []string{"Email", "Full Name", "User Type", "Status", "Created At"}

func (s *ExportService) UserRows() ([][]string, error) {
	customers, err := s.Users.ListByType(entity.UserTypeCustomer)
	if err != nil {
		return nil, err
	}
	admins, err := s.Users.ListByType(entity.UserTypeAdmin)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(customers)+len(admins))
	for _, u := range append(customers, admins...) {
		rows = append(rows, []string{
			u.Email,
			u.FullName,
			string(u.UserType),
			string(u.Status),
			u.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return rows, nil
}

var DriverExportHeader = []string{"Email", "Full Name", "License Number", "Vehicle", "Status", "Rating", "Total Rides"}

func (s *ExportService) DriverRows() ([][]string, error) {
	drivers, err := s.Users.ListByType(entity.UserTypeDriver)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(drivers))
	for _, d := range drivers {
		vehicle := fmt.Sprintf("%s %s", d.VehicleMake, d.VehicleModel)
		rides, err := s.Bookings.CountForDriver(d.ID, entity.BookingCompleted)
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string{
			d.Email,
			d.FullName,
			d.LicenseNumber,
			vehicle,
			string(d.Status),
			strconv.FormatFloat(d.Rating, 'f', 1, 64),
			strconv.FormatInt(rides, 10),
		})
	}
	return rows, nil
}
