package queue

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"

	"github.com/aalvarez-ortega/sisaep-api/internal/application/verificacion"
)

var _ verificacion.Publisher = (*Producer)(nil)

// Producer publica eventos de ciclo de vida de solicitudes (aceptada/rechazada)
// para el servicio de correo aguas abajo. Si el broker no está configurado el
// productor es nil-safe: publica skip, nunca hace fallar la verificación.
type Producer struct {
	writer *kafka.Writer
}

// NewProducer construye el productor. Broker vacío devuelve un productor inerte.
// Username vacío desactiva SASL/TLS (broker local de desarrollo).
func NewProducer(broker, topic, username, password string) *Producer {
	if broker == "" {
		return &Producer{}
	}

	w := &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		WriteTimeout: 10 * time.Second,
	}
	if username != "" {
		w.Transport = &kafka.Transport{
			SASL: plain.Mechanism{Username: username, Password: password},
			TLS:  &tls.Config{},
		}
	}
	return &Producer{writer: w}
}

// PublicarEventoSolicitud serializa el evento y lo escribe con la solicitud como key
// (mismo orden por partición para una misma solicitud).
func (p *Producer) PublicarEventoSolicitud(ctx context.Context, ev verificacion.EventoSolicitud) error {
	if p == nil || p.writer == nil {
		return nil
	}

	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.SolicitudID),
		Value: value,
		Time:  time.Now(),
	})
}

// Close libera el writer si existe.
func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
