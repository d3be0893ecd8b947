package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/models"
)

type Event struct {
	UserID        uint
	AppointmentID *uint

	Kind  string
	Title string
	Body  string

	// Phone habilita o canal SMS para este evento
	Phone string
}

// Dispatcher entrega notificações fora do caminho da mutação de
// agendamento: persiste a linha, publica no canal realtime e tenta
// SMS. Tudo best-effort — falha vira log, nunca erro do caller.
type Dispatcher struct {
	db    *gorm.DB
	rdb   *redis.Client
	sms   *SMSSender
	queue chan Event
}

func NewDispatcher(db *gorm.DB, rdb *redis.Client, sms *SMSSender) *Dispatcher {
	d := &Dispatcher{
		db:    db,
		rdb:   rdb,
		sms:   sms,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

// Dispatch devolve false quando a fila cheia descartou o evento,
// para callers que precisam reapresentar (lembretes).
func (d *Dispatcher) Dispatch(ev Event) bool {
	select {
	case d.queue <- ev:
		return true
	default:
		// fila cheia → descartamos (nunca quebrar a API)
		log.Println("notification queue full, dropping event")
		return false
	}
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		d.deliver(ev)
	}
}

func (d *Dispatcher) deliver(ev Event) {
	n := models.Notification{
		UserID:        ev.UserID,
		AppointmentID: ev.AppointmentID,
		Kind:          ev.Kind,
		Title:         ev.Title,
		Body:          ev.Body,
	}

	if err := d.db.Create(&n).Error; err != nil {
		log.Println("notification persist error:", err)
		return
	}

	if d.rdb != nil {
		payload, err := json.Marshal(n)
		if err == nil {
			channel := fmt.Sprintf("notifications:%d", ev.UserID)
			if err := d.rdb.Publish(context.Background(), channel, payload).Err(); err != nil {
				log.Println("notification publish error:", err)
			}
		}
	}

	if d.sms != nil && ev.Phone != "" {
		if err := d.sms.Send(ev.Phone, ev.Body); err != nil {
			log.Println("notification sms error:", err)
		}
	}
}
