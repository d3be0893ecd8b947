package appointment

import (
	"context"
	"errors"
	"time"

	domain "github.com/Trend-White-Oficial/cuide-se-sub002/internal/domain/appointment"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/models"
)

// fakeRepo é um Repository em memória para os testes de use case.
// Um único profissional (ID 1) com expediente por weekday.
type fakeRepo struct {
	pro      *models.Professional
	services map[uint]*models.Service
	hours    map[int]*models.WorkingHours

	appointments map[uint]*models.Appointment
	nextID       uint

	hoursErr  error
	createErr error
	updateErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		pro: &models.Professional{
			ID:                1,
			UserID:            10,
			Timezone:          "America/Sao_Paulo",
			MinAdvanceMinutes: 120,
			Active:            true,
		},
		services: map[uint]*models.Service{
			1: {ID: 1, ProfessionalID: 1, Name: "Corte", DurationMin: 30, Price: 80, Active: true},
			2: {ID: 2, ProfessionalID: 1, Name: "Coloração", DurationMin: 90, Price: 250, Active: true},
		},
		hours:        map[int]*models.WorkingHours{},
		appointments: map[uint]*models.Appointment{},
	}
}

func (f *fakeRepo) openWeekday(weekday int, start, end string) {
	f.hours[weekday] = &models.WorkingHours{
		ProfessionalID: 1,
		Weekday:        weekday,
		StartTime:      start,
		EndTime:        end,
		Active:         true,
	}
}

func (f *fakeRepo) setBreak(weekday int, start, end string) {
	if wh, ok := f.hours[weekday]; ok {
		wh.BreakStart = start
		wh.BreakEnd = end
	}
}

func (f *fakeRepo) GetProfessionalByID(_ context.Context, id uint) (*models.Professional, error) {
	if f.pro != nil && f.pro.ID == id {
		return f.pro, nil
	}
	return nil, errors.New("record not found")
}

func (f *fakeRepo) GetProfessionalByUserID(_ context.Context, userID uint) (*models.Professional, error) {
	if f.pro != nil && f.pro.UserID == userID {
		return f.pro, nil
	}
	return nil, errors.New("record not found")
}

func (f *fakeRepo) GetService(_ context.Context, professionalID, serviceID uint) (*models.Service, error) {
	svc, ok := f.services[serviceID]
	if !ok || svc.ProfessionalID != professionalID {
		return nil, errors.New("record not found")
	}
	return svc, nil
}

func (f *fakeRepo) GetWorkingHours(_ context.Context, professionalID uint, weekday int) (*models.WorkingHours, error) {
	if f.hoursErr != nil {
		return nil, f.hoursErr
	}
	wh, ok := f.hours[weekday]
	if !ok || wh.ProfessionalID != professionalID {
		return nil, nil
	}
	return wh, nil
}

func (f *fakeRepo) ListActiveAppointments(
	_ context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
) ([]models.Appointment, error) {

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ProfessionalID != professionalID {
			continue
		}
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		if !domain.IsActive(domain.Status(ap.Status)) {
			continue
		}
		if ap.StartTime.Before(end) && start.Before(ap.EndTime) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	ap.ID = f.nextID
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(
	_ context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ProfessionalID != professionalID {
			continue
		}
		if ap.StartTime.Before(end) && !ap.StartTime.Before(start) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForClient(_ context.Context, userID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.UserID == userID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakeNotifier registra as chamadas para os asserts
type fakeNotifier struct {
	created     []uint
	rescheduled []uint
	changed     []string
}

func (f *fakeNotifier) NotifyAppointmentCreated(ap *models.Appointment) {
	f.created = append(f.created, ap.ID)
}

func (f *fakeNotifier) NotifyAppointmentRescheduled(ap *models.Appointment) {
	f.rescheduled = append(f.rescheduled, ap.ID)
}

func (f *fakeNotifier) NotifyAppointmentStatusChanged(ap *models.Appointment, from, to domain.Status) {
	f.changed = append(f.changed, string(from)+"→"+string(to))
}

var _ domain.Notifier = (*fakeNotifier)(nil)
