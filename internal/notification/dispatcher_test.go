package notification

import "testing"

func TestDispatchReportsEnqueue(t *testing.T) {
	// sem worker drenando, a capacidade da fila limita o aceite
	d := &Dispatcher{queue: make(chan Event, 1)}

	if !d.Dispatch(Event{UserID: 1, Kind: "appointment_reminder"}) {
		t.Fatal("fila com espaço deveria aceitar o evento")
	}

	if d.Dispatch(Event{UserID: 2, Kind: "appointment_reminder"}) {
		t.Fatal("fila cheia deveria reportar o descarte")
	}

	// drenado um evento, volta a aceitar
	<-d.queue
	if !d.Dispatch(Event{UserID: 3, Kind: "appointment_reminder"}) {
		t.Fatal("fila drenada deveria voltar a aceitar")
	}
}
