package appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	domain "github.com/Trend-White-Oficial/cuide-se-sub002/internal/domain/appointment"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/httperr"
)

// terça-feira, bem no futuro para passar na antecedência mínima
const testDate = "2030-03-12"

func TestCreateAppointment(t *testing.T) {
	repo := newFakeRepo()
	repo.openWeekday(2, "09:00", "17:00")

	notifier := &fakeNotifier{}
	uc := NewCreateAppointment(repo, notifier, nil)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID:         5,
		ProfessionalID: 1,
		ServiceID:      1,
		Date:           testDate,
		Time:           "10:00",
	})
	if err != nil {
		t.Fatal(err)
	}

	if ap.Status != string(domain.StatusScheduled) {
		t.Errorf("status inicial deveria ser scheduled, veio %s", ap.Status)
	}
	if got := ap.EndTime.Sub(ap.StartTime).Minutes(); got != 30 {
		t.Errorf("duração deveria seguir o serviço (30min), veio %.0f", got)
	}
	if len(notifier.created) != 1 {
		t.Errorf("notificação de criação não disparou")
	}
}

func TestCreateAppointmentSlotTaken(t *testing.T) {
	repo := newFakeRepo()
	repo.openWeekday(2, "09:00", "17:00")

	uc := NewCreateAppointment(repo, &fakeNotifier{}, nil)

	first := CreateAppointmentInput{
		UserID:         5,
		ProfessionalID: 1,
		ServiceID:      1,
		Date:           testDate,
		Time:           "10:00",
	}
	if _, err := uc.Execute(context.Background(), first); err != nil {
		t.Fatal(err)
	}

	// segunda criação no mesmo horário cai na pré-checagem
	second := first
	second.UserID = 6
	_, err := uc.Execute(context.Background(), second)
	if !httperr.IsBusiness(err, httperr.CodeSlotUnavailable) {
		t.Fatalf("esperava slot_unavailable, veio %v", err)
	}

	if len(repo.appointments) != 1 {
		t.Errorf("criação rejeitada não pode persistir linha: %d", len(repo.appointments))
	}
}

func TestCreateAppointmentLongServiceBlocks(t *testing.T) {
	repo := newFakeRepo()
	repo.openWeekday(2, "09:00", "17:00")

	uc := NewCreateAppointment(repo, &fakeNotifier{}, nil)

	// 90min a partir das 10:00 ocupa 10:00, 10:30 e 11:00
	if _, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID:         5,
		ProfessionalID: 1,
		ServiceID:      2,
		Date:           testDate,
		Time:           "10:00",
	}); err != nil {
		t.Fatal(err)
	}

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID:         6,
		ProfessionalID: 1,
		ServiceID:      1,
		Date:           testDate,
		Time:           "11:00",
	})
	if !httperr.IsBusiness(err, httperr.CodeSlotUnavailable) {
		t.Fatalf("bloco no meio do serviço deveria estar ocupado, veio %v", err)
	}
}

func TestCreateAppointmentSpillsPastClosing(t *testing.T) {
	repo := newFakeRepo()
	repo.openWeekday(2, "09:00", "17:00")

	uc := NewCreateAppointment(repo, &fakeNotifier{}, nil)

	// 90min começando 16:30 estoura o fim do expediente
	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID:         5,
		ProfessionalID: 1,
		ServiceID:      2,
		Date:           testDate,
		Time:           "16:30",
	})
	if !httperr.IsBusiness(err, httperr.CodeSlotUnavailable) {
		t.Fatalf("serviço estourando o expediente deveria falhar, veio %v", err)
	}
}

func TestCreateAppointmentDayOff(t *testing.T) {
	repo := newFakeRepo()
	// nenhum expediente configurado

	uc := NewCreateAppointment(repo, &fakeNotifier{}, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID:         5,
		ProfessionalID: 1,
		ServiceID:      1,
		Date:           testDate,
		Time:           "10:00",
	})
	if !httperr.IsBusiness(err, httperr.CodeSlotUnavailable) {
		t.Fatalf("dia sem expediente deveria ser slot_unavailable, veio %v", err)
	}
}

func TestCreateAppointmentTooSoon(t *testing.T) {
	repo := newFakeRepo()
	repo.openWeekday(2, "09:00", "17:00")

	uc := NewCreateAppointment(repo, &fakeNotifier{}, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID:         5,
		ProfessionalID: 1,
		ServiceID:      1,
		Date:           "2020-03-10",
		Time:           "10:00",
	})
	if !httperr.IsBusiness(err, "too_soon") {
		t.Fatalf("horário no passado deveria ser too_soon, veio %v", err)
	}
}

func TestCreateAppointmentRaceMapsExclusionToSlotUnavailable(t *testing.T) {
	repo := newFakeRepo()
	repo.openWeekday(2, "09:00", "17:00")

	// a pré-checagem passa, mas o store derruba a corrida
	repo.createErr = &pgconn.PgError{Code: "23P01"}

	uc := NewCreateAppointment(repo, &fakeNotifier{}, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID:         5,
		ProfessionalID: 1,
		ServiceID:      1,
		Date:           testDate,
		Time:           "10:00",
	})
	if !httperr.IsBusiness(err, httperr.CodeSlotUnavailable) {
		t.Fatalf("conflito de exclusão deveria virar slot_unavailable, veio %v", err)
	}
}

func TestCreateAppointmentPropagatesStoreError(t *testing.T) {
	repo := newFakeRepo()
	repo.openWeekday(2, "09:00", "17:00")

	errStore := errors.New("connection refused")
	repo.hoursErr = errStore

	uc := NewCreateAppointment(repo, &fakeNotifier{}, nil)

	// indisponibilidade é resposta de negócio; falha do store não é
	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID:         5,
		ProfessionalID: 1,
		ServiceID:      1,
		Date:           testDate,
		Time:           "10:00",
	})
	if !errors.Is(err, errStore) {
		t.Fatalf("erro do store deveria propagar intacto, veio %v", err)
	}
	if httperr.IsBusiness(err, httperr.CodeSlotUnavailable) {
		t.Fatal("falha do store não pode virar slot_unavailable")
	}
}

func TestCreateAppointmentInactiveProfessional(t *testing.T) {
	repo := newFakeRepo()
	repo.openWeekday(2, "09:00", "17:00")
	repo.pro.Active = false

	uc := NewCreateAppointment(repo, &fakeNotifier{}, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID:         5,
		ProfessionalID: 1,
		ServiceID:      1,
		Date:           testDate,
		Time:           "10:00",
	})
	if !httperr.IsBusiness(err, "professional_inactive") {
		t.Fatalf("profissional desativado não recebe reserva, veio %v", err)
	}
	if len(repo.appointments) != 0 {
		t.Errorf("criação rejeitada não pode persistir linha: %d", len(repo.appointments))
	}
}

func TestCreateAppointmentUnknownService(t *testing.T) {
	repo := newFakeRepo()
	repo.openWeekday(2, "09:00", "17:00")

	uc := NewCreateAppointment(repo, &fakeNotifier{}, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID:         5,
		ProfessionalID: 1,
		ServiceID:      99,
		Date:           testDate,
		Time:           "10:00",
	})
	if !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("esperava service_not_found, veio %v", err)
	}
}
